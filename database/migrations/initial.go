package migrations

import (
	"github.com/freshpress/freshpress/app/models"
	"github.com/freshpress/freshpress/pkg/migration"
	"gorm.io/gorm"
)

func init() {
	migration.Register("20260201000000_create_users_table", &CreateUsersTable{})
	migration.Register("20260201000001_create_customers_table", &CreateCustomersTable{})
	migration.Register("20260201000002_create_service_items_table", &CreateServiceItemsTable{})
	migration.Register("20260201000003_create_orders_tables", &CreateOrdersTables{})
}

type CreateUsersTable struct{}

func (m *CreateUsersTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{})
}

func (m *CreateUsersTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("users")
}

type CreateCustomersTable struct{}

func (m *CreateCustomersTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Customer{})
}

func (m *CreateCustomersTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("customers")
}

type CreateServiceItemsTable struct{}

func (m *CreateServiceItemsTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.ServiceItem{})
}

func (m *CreateServiceItemsTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("service_items")
}

// CreateOrdersTables creates orders and order_items together since the
// item table has no meaning without its parent.
type CreateOrdersTables struct{}

func (m *CreateOrdersTables) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Order{}, &models.OrderItem{})
}

func (m *CreateOrdersTables) Down(db *gorm.DB) error {
	if err := db.Migrator().DropTable("order_items"); err != nil {
		return err
	}
	return db.Migrator().DropTable("orders")
}
