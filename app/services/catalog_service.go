package services

import (
	"fmt"
	"time"

	"github.com/freshpress/freshpress/app/models"
	"github.com/freshpress/freshpress/app/repositories"
	"github.com/freshpress/freshpress/pkg/cache"
)

const (
	servicesCacheKey = "freshpress:services:all"
	servicesCacheTTL = 5 * time.Minute
)

// CreateServiceRequest is the body of POST /services.
type CreateServiceRequest struct {
	Name         string  `json:"name" validate:"required,min=2,max=255"`
	Category     string  `json:"category" validate:"required,in=WASH|DRY_CLEAN|IRON|FOLD|WASH_AND_IRON|SPECIAL_CARE"`
	PricePerUnit float64 `json:"pricePerUnit" validate:"required,gte=0"`
	UnitType     string  `json:"unitType" validate:"required,in=KG|PIECE|LOAD"`
}

// CatalogService manages the service pricing catalog.
type CatalogService struct {
	catalog *repositories.ServiceItemRepository
}

func NewCatalogService() *CatalogService {
	return &CatalogService{catalog: repositories.NewServiceItemRepository()}
}

// List returns the full catalog, served from Redis when warm.
func (s *CatalogService) List() ([]models.ServiceItem, error) {
	items := []models.ServiceItem{}
	if cache.Get(servicesCacheKey, &items) {
		return items, nil
	}

	items, err := s.catalog.All()
	if err != nil {
		return nil, fmt.Errorf("catalog: list: %w", err)
	}

	cache.Set(servicesCacheKey, items, servicesCacheTTL) //nolint:errcheck
	return items, nil
}

// Create adds a catalog entry and invalidates the cached list.
func (s *CatalogService) Create(req CreateServiceRequest) (models.ServiceItem, error) {
	item := models.ServiceItem{
		Name:         req.Name,
		Category:     req.Category,
		PricePerUnit: req.PricePerUnit,
		UnitType:     req.UnitType,
	}

	if err := s.catalog.Create(&item); err != nil {
		return models.ServiceItem{}, fmt.Errorf("catalog: create: %w", err)
	}

	cache.Del(servicesCacheKey) //nolint:errcheck
	return item, nil
}
