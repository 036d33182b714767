package usecase

import (
	"context"
	"time"

	"github.com/caramelo-app/caramelo-api-sub001/internal/application/dto"
	"github.com/caramelo-app/caramelo-api-sub001/internal/domain"
	"github.com/caramelo-app/caramelo-api-sub001/internal/domain/entity"
	"github.com/caramelo-app/caramelo-api-sub001/internal/domain/repository"
	"github.com/caramelo-app/caramelo-api-sub001/internal/infrastructure/geocode"
	"github.com/caramelo-app/caramelo-api-sub001/pkg/logger"
	"github.com/caramelo-app/caramelo-api-sub001/pkg/phone"
)

// Geocoder porta para resolução endereço → coordenadas (colaborador externo).
type Geocoder interface {
	Geocode(ctx context.Context, addr entity.Address) (geocode.Result, error)
}

// CompanyUseCase gestão de empresas (admin).
type CompanyUseCase struct {
	companyRepo repository.CompanyRepository
	geocoder    Geocoder
	log         *logger.Logger
}

// NewCompanyUseCase constrói o caso de uso de empresas.
func NewCompanyUseCase(companyRepo repository.CompanyRepository, geocoder Geocoder, log *logger.Logger) *CompanyUseCase {
	return &CompanyUseCase{companyRepo: companyRepo, geocoder: geocoder, log: log}
}

// Create cria uma empresa; o endereço é geocodificado na criação.
func (uc *CompanyUseCase) Create(ctx context.Context, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, domain.NewValidationError(err.Error(), "Check the submitted data and try again.")
	}
	normalized, err := phone.Normalize(in.Phone)
	if err != nil {
		return nil, domain.NewValidationError("invalid phone", "Submit a valid phone number.")
	}

	// Falha de geocodificação não bloqueia o cadastro; fica sem coordenadas.
	addr := in.Address.ToAddress()
	if geo, err := uc.geocoder.Geocode(ctx, addr); err == nil {
		addr.Coordinates = geo.Coordinates
	} else {
		uc.log.Warn().Err(err).Str("city", addr.City).Msg("falha ao geocodificar endereço da empresa")
	}

	now := time.Now()
	company := &entity.Company{
		Name:      in.Name,
		Phone:     normalized,
		Address:   addr,
		Logo:      in.Logo,
		SegmentID: in.SegmentID,
		Document:  in.Document,
		Status:    entity.StatusAvailable,
		Excluded:  false,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.companyRepo.Create(ctx, company); err != nil {
		return nil, err
	}
	resp := dto.ToCompanyResponse(company)
	return &resp, nil
}

// List devolve empresas não excluídas com paginação.
func (uc *CompanyUseCase) List(ctx context.Context, page dto.PageRequest) ([]dto.CompanyResponse, error) {
	page.DefaultPage()
	companies, err := uc.companyRepo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CompanyResponse, 0, len(companies))
	for _, c := range companies {
		out = append(out, dto.ToCompanyResponse(c))
	}
	return out, nil
}

// GetByID obtém uma empresa por id.
func (uc *CompanyUseCase) GetByID(ctx context.Context, id string) (*dto.CompanyResponse, error) {
	company, err := uc.companyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil || company.Excluded {
		return nil, domain.NewNotFoundError("resource not found", "Check the submitted company and try again.")
	}
	resp := dto.ToCompanyResponse(company)
	return &resp, nil
}

// Update atualiza os campos enviados; endereço novo é re-geocodificado.
func (uc *CompanyUseCase) Update(ctx context.Context, id string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	company, err := uc.companyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil || company.Excluded {
		return nil, domain.NewNotFoundError("resource not found", "Check the submitted company and try again.")
	}

	if in.Name != "" {
		company.Name = in.Name
	}
	if in.Phone != "" {
		normalized, err := phone.Normalize(in.Phone)
		if err != nil {
			return nil, domain.NewValidationError("invalid phone", "Submit a valid phone number.")
		}
		company.Phone = normalized
	}
	if in.Logo != "" {
		company.Logo = in.Logo
	}
	if in.SegmentID != "" {
		company.SegmentID = in.SegmentID
	}
	if in.Address != nil {
		if err := in.Address.Validate(); err != nil {
			return nil, domain.NewValidationError(err.Error(), "Check the submitted address and try again.")
		}
		addr := in.Address.ToAddress()
		if geo, err := uc.geocoder.Geocode(ctx, addr); err == nil {
			addr.Coordinates = geo.Coordinates
		} else {
			uc.log.Warn().Err(err).Str("city", addr.City).Msg("falha ao geocodificar endereço da empresa")
		}
		company.Address = addr
	}

	if err := uc.companyRepo.Update(ctx, company); err != nil {
		return nil, err
	}
	resp := dto.ToCompanyResponse(company)
	return &resp, nil
}

// Delete exclui (soft) uma empresa: excluded = true, status = unavailable,
// permanente e irreversível.
func (uc *CompanyUseCase) Delete(ctx context.Context, id string) error {
	company, err := uc.companyRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if company == nil || company.Excluded {
		return domain.NewNotFoundError("resource not found", "Check the submitted company and try again.")
	}
	return uc.companyRepo.SoftDelete(ctx, id)
}
