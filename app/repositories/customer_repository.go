package repositories

import (
	"github.com/freshpress/freshpress/app/models"
	"github.com/freshpress/freshpress/pkg/database"
)

// CustomerRepository handles database operations for Customer.
type CustomerRepository struct{}

func NewCustomerRepository() *CustomerRepository {
	return &CustomerRepository{}
}

// Search returns one page of customers, optionally filtered by a
// case-insensitive name substring, plus the total match count.
func (r *CustomerRepository) Search(search string, page, size int) ([]models.Customer, int64, error) {
	q := database.DB.Model(&models.Customer{})
	if search != "" {
		q = q.Where("LOWER(name) LIKE LOWER(?)", "%"+search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	customers := []models.Customer{}
	err := q.Order("id").Offset(page * size).Limit(size).Find(&customers).Error
	return customers, total, err
}

// FindByID looks up a customer by primary key.
func (r *CustomerRepository) FindByID(id uint) (models.Customer, error) {
	var customer models.Customer
	err := database.DB.First(&customer, id).Error
	return customer, err
}

// Create persists a new customer record.
func (r *CustomerRepository) Create(customer *models.Customer) error {
	return database.DB.Create(customer).Error
}

// Update persists changes to an existing customer.
func (r *CustomerRepository) Update(customer *models.Customer) error {
	return database.DB.Save(customer).Error
}

// Count returns the total number of customers.
func (r *CustomerRepository) Count() (int64, error) {
	var count int64
	err := database.DB.Model(&models.Customer{}).Count(&count).Error
	return count, err
}
