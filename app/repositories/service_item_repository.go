package repositories

import (
	"github.com/freshpress/freshpress/app/models"
	"github.com/freshpress/freshpress/pkg/database"
)

// ServiceItemRepository handles database operations for the pricing catalog.
type ServiceItemRepository struct{}

func NewServiceItemRepository() *ServiceItemRepository {
	return &ServiceItemRepository{}
}

// All returns every catalog entry ordered by ID.
func (r *ServiceItemRepository) All() ([]models.ServiceItem, error) {
	items := []models.ServiceItem{}
	err := database.DB.Order("id").Find(&items).Error
	return items, err
}

// FindByID looks up a catalog entry by primary key.
func (r *ServiceItemRepository) FindByID(id uint) (models.ServiceItem, error) {
	var item models.ServiceItem
	err := database.DB.First(&item, id).Error
	return item, err
}

// Create persists a new catalog entry.
func (r *ServiceItemRepository) Create(item *models.ServiceItem) error {
	return database.DB.Create(item).Error
}
