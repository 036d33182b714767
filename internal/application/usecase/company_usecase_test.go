package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caramelo-app/caramelo-api-sub001/internal/application/dto"
	"github.com/caramelo-app/caramelo-api-sub001/internal/application/usecase"
	"github.com/caramelo-app/caramelo-api-sub001/internal/domain/entity"
	"github.com/caramelo-app/caramelo-api-sub001/internal/infrastructure/geocode"
	"github.com/caramelo-app/caramelo-api-sub001/pkg/logger"
)

type fakeCompanyRepo struct {
	companies map[string]entity.Company
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{companies: map[string]entity.Company{}}
}

func (f *fakeCompanyRepo) Create(_ context.Context, c *entity.Company) error {
	if c.ID == "" {
		c.ID = "company-" + c.Document
	}
	f.companies[c.ID] = *c
	return nil
}

func (f *fakeCompanyRepo) GetByID(_ context.Context, id string) (*entity.Company, error) {
	c, ok := f.companies[id]
	if !ok {
		return nil, nil
	}
	copy := c
	return &copy, nil
}

func (f *fakeCompanyRepo) List(_ context.Context, limit, offset int64) ([]*entity.Company, error) {
	var out []*entity.Company
	for _, c := range f.companies {
		if !c.Excluded {
			copy := c
			out = append(out, &copy)
		}
	}
	return out, nil
}

func (f *fakeCompanyRepo) Update(_ context.Context, c *entity.Company) error {
	f.companies[c.ID] = *c
	return nil
}

func (f *fakeCompanyRepo) SoftDelete(_ context.Context, id string) error {
	c := f.companies[id]
	c.Excluded = true
	c.Status = entity.StatusUnavailable
	f.companies[id] = c
	return nil
}

// fakeGeocoder devolve coordenadas fixas ou um erro, contando as chamadas.
type fakeGeocoder struct {
	coords entity.Coordinates
	err    error
	calls  int
}

func (f *fakeGeocoder) Geocode(_ context.Context, _ entity.Address) (geocode.Result, error) {
	f.calls++
	if f.err != nil {
		return geocode.Result{}, f.err
	}
	return geocode.Result{Coordinates: f.coords}, nil
}

func buildCompanyUseCase(geo *fakeGeocoder) (*usecase.CompanyUseCase, *fakeCompanyRepo) {
	repo := newFakeCompanyRepo()
	uc := usecase.NewCompanyUseCase(repo, geo, logger.New(logger.Config{Level: "error"}))
	return uc, repo
}

func validCompanyRequest() dto.CreateCompanyRequest {
	return dto.CreateCompanyRequest{
		Name:     "Padaria Central",
		Phone:    "5541984012834",
		Document: "12345678000190",
		Address: dto.AddressRequest{
			Street:  "Rua XV de Novembro",
			Number:  "100",
			City:    "Curitiba",
			State:   "PR",
			ZipCode: "80020-310",
		},
	}
}

func TestCompanyCreate_GeocodificaEndereco(t *testing.T) {
	geo := &fakeGeocoder{coords: entity.Coordinates{Latitude: -25.43, Longitude: -49.27}}
	uc, repo := buildCompanyUseCase(geo)

	out, err := uc.Create(context.Background(), validCompanyRequest())
	require.NoError(t, err)

	assert.Equal(t, 1, geo.calls)
	assert.Equal(t, -25.43, out.Address.Coordinates.Latitude)
	assert.Equal(t, -49.27, out.Address.Coordinates.Longitude)

	stored, err := repo.GetByID(context.Background(), out.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusAvailable, stored.Status)
}

// Provedor de geocodificação fora do ar não bloqueia o cadastro: a empresa é
// criada sem coordenadas (modo degradado, com warning no log).
func TestCompanyCreate_GeocoderIndisponivelNaoBloqueia(t *testing.T) {
	geo := &fakeGeocoder{err: errors.New("provider unreachable")}
	uc, repo := buildCompanyUseCase(geo)

	out, err := uc.Create(context.Background(), validCompanyRequest())
	require.NoError(t, err)

	assert.Equal(t, 1, geo.calls)
	assert.Zero(t, out.Address.Coordinates)

	stored, err := repo.GetByID(context.Background(), out.ID)
	require.NoError(t, err)
	assert.Equal(t, "Padaria Central", stored.Name)
}

func TestCompanyUpdate_EnderecoNovoRegeocodifica(t *testing.T) {
	geo := &fakeGeocoder{coords: entity.Coordinates{Latitude: -25.43, Longitude: -49.27}}
	uc, _ := buildCompanyUseCase(geo)

	created, err := uc.Create(context.Background(), validCompanyRequest())
	require.NoError(t, err)

	geo.coords = entity.Coordinates{Latitude: -23.55, Longitude: -46.63}
	updated, err := uc.Update(context.Background(), created.ID, dto.UpdateCompanyRequest{
		Address: &dto.AddressRequest{
			Street:  "Avenida Paulista",
			Number:  "1000",
			City:    "São Paulo",
			State:   "SP",
			ZipCode: "01310-100",
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, geo.calls)
	assert.Equal(t, -23.55, updated.Address.Coordinates.Latitude)
}

// Falha na re-geocodificação também não bloqueia: o endereço novo é gravado
// sem coordenadas.
func TestCompanyUpdate_GeocoderIndisponivelGravaSemCoordenadas(t *testing.T) {
	geo := &fakeGeocoder{coords: entity.Coordinates{Latitude: -25.43, Longitude: -49.27}}
	uc, _ := buildCompanyUseCase(geo)

	created, err := uc.Create(context.Background(), validCompanyRequest())
	require.NoError(t, err)

	geo.err = errors.New("provider unreachable")
	updated, err := uc.Update(context.Background(), created.ID, dto.UpdateCompanyRequest{
		Address: &dto.AddressRequest{
			Street:  "Avenida Paulista",
			City:    "São Paulo",
			State:   "SP",
			ZipCode: "01310-100",
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "Avenida Paulista", updated.Address.Street)
	assert.Zero(t, updated.Address.Coordinates)
}

func TestCompanyDelete_SoftDelete(t *testing.T) {
	geo := &fakeGeocoder{}
	uc, repo := buildCompanyUseCase(geo)

	created, err := uc.Create(context.Background(), validCompanyRequest())
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), created.ID))

	stored, err := repo.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.True(t, stored.Excluded)
	assert.Equal(t, entity.StatusUnavailable, stored.Status)

	// Excluída é terminal: segunda remoção responde NotFound.
	err = uc.Delete(context.Background(), created.ID)
	assert.Error(t, err)
}
