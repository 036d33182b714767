package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/caramelo-app/caramelo-api-sub001/internal/domain/entity"
	"github.com/caramelo-app/caramelo-api-sub001/internal/infrastructure/mongodb"
	"github.com/caramelo-app/caramelo-api-sub001/pkg/config"
	"github.com/caramelo-app/caramelo-api-sub001/pkg/logger"
)

// Result resultado da geocodificação, com a flag de cache.
type Result struct {
	Coordinates entity.Coordinates
	Cached      bool
}

// Geocoder resolve endereço → coordenadas via API HTTP, com cache em coleção
// própria para não repetir chamadas ao provedor.
type Geocoder struct {
	cfg        config.GeocodeConfig
	cache      *mongodb.DataStore
	httpClient *http.Client
	log        *logger.Logger
}

// cacheEntry documento da coleção de cache.
type cacheEntry struct {
	ID          string             `bson:"_id"` // endereço normalizado
	Coordinates entity.Coordinates `bson:"coordinates"`
	CreatedAt   time.Time          `bson:"created_at"`
}

// NewGeocoder constrói o geocoder com cache.
func NewGeocoder(cfg config.GeocodeConfig, db *mongo.Database, log *logger.Logger) *Geocoder {
	return &Geocoder{
		cfg:        cfg,
		cache:      mongodb.NewDataStore(db, mongodb.GeocodeCacheCollection),
		httpClient: &http.Client{Timeout: 10 * time.Second},
		log:        log,
	}
}

// Geocode devolve as coordenadas de um endereço. Consulta o cache primeiro;
// em acerto, Cached = true.
func (g *Geocoder) Geocode(ctx context.Context, addr entity.Address) (Result, error) {
	key := cacheKey(addr)

	var entry cacheEntry
	found, err := g.cache.ReadOne(ctx, bson.M{"_id": key}, nil, &entry)
	if err == nil && found {
		return Result{Coordinates: entry.Coordinates, Cached: true}, nil
	}

	coords, err := g.lookup(ctx, key)
	if err != nil {
		return Result{}, err
	}

	// Falha de escrita no cache não invalida o resultado.
	if _, err := g.cache.Create(ctx, cacheEntry{ID: key, Coordinates: coords, CreatedAt: time.Now()}); err != nil {
		g.log.Warn().Err(err).Msg("falha ao gravar cache de geocodificação")
	}

	return Result{Coordinates: coords, Cached: false}, nil
}

func (g *Geocoder) lookup(ctx context.Context, address string) (entity.Coordinates, error) {
	q := url.Values{}
	q.Set("address", address)
	q.Set("key", g.cfg.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.cfg.BaseURL+"?"+q.Encode(), nil)
	if err != nil {
		return entity.Coordinates{}, fmt.Errorf("geocode: criar requisição: %w", err)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return entity.Coordinates{}, fmt.Errorf("geocode: consultar provedor: %w", err)
	}
	defer resp.Body.Close()

	var payload struct {
		Status  string `json:"status"`
		Results []struct {
			Geometry struct {
				Location struct {
					Lat float64 `json:"lat"`
					Lng float64 `json:"lng"`
				} `json:"location"`
			} `json:"geometry"`
		} `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return entity.Coordinates{}, fmt.Errorf("geocode: decodificar resposta: %w", err)
	}
	if payload.Status != "OK" || len(payload.Results) == 0 {
		return entity.Coordinates{}, fmt.Errorf("geocode: endereço não resolvido (status %s)", payload.Status)
	}

	loc := payload.Results[0].Geometry.Location
	return entity.Coordinates{Latitude: loc.Lat, Longitude: loc.Lng}, nil
}

// cacheKey normaliza o endereço em uma chave estável.
func cacheKey(a entity.Address) string {
	parts := []string{a.Street, a.Number, a.Neighborhood, a.City, a.State, a.ZipCode}
	return strings.ToLower(strings.Join(parts, ", "))
}
