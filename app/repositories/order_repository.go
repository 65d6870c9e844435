package repositories

import (
	"github.com/freshpress/freshpress/app/models"
	"github.com/freshpress/freshpress/pkg/database"
	"gorm.io/gorm"
)

// OrderRepository handles database operations for Order.
type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

func withAssociations(q *gorm.DB) *gorm.DB {
	return q.Preload("Customer").Preload("Items.ServiceItem")
}

// List returns one page of orders, newest first, optionally filtered by
// status, plus the total match count.
func (r *OrderRepository) List(status models.OrderStatus, page, size int) ([]models.Order, int64, error) {
	q := database.DB.Model(&models.Order{})
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	orders := []models.Order{}
	err := withAssociations(q).Order("id DESC").Offset(page * size).Limit(size).Find(&orders).Error
	return orders, total, err
}

// FindByID loads one order with its customer and items.
func (r *OrderRepository) FindByID(id uint) (models.Order, error) {
	var order models.Order
	err := withAssociations(database.DB).First(&order, id).Error
	return order, err
}

// Create persists a new order together with its items.
func (r *OrderRepository) Create(order *models.Order) error {
	return database.DB.Create(order).Error
}

// Save persists changes to an existing order.
func (r *OrderRepository) Save(order *models.Order) error {
	return database.DB.Save(order).Error
}

// Count returns the total number of orders.
func (r *OrderRepository) Count() (int64, error) {
	var count int64
	err := database.DB.Model(&models.Order{}).Count(&count).Error
	return count, err
}

// CountByStatus returns the number of orders in the given status.
func (r *OrderRepository) CountByStatus(status models.OrderStatus) (int64, error) {
	var count int64
	err := database.DB.Model(&models.Order{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

// TotalRevenue sums totalAmount across all orders.
func (r *OrderRepository) TotalRevenue() (float64, error) {
	var revenue float64
	err := database.DB.Model(&models.Order{}).
		Select("COALESCE(SUM(total_amount), 0)").Scan(&revenue).Error
	return revenue, err
}
