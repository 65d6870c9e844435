package services

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freshpress/freshpress/app/models"
	"github.com/freshpress/freshpress/pkg/database"
)

func TestMain(m *testing.M) {
	if err := database.ConnectDSN("sqlite", "file::memory:?cache=shared"); err != nil {
		panic(err)
	}
	if err := database.DB.AutoMigrate(
		&models.User{}, &models.Customer{}, &models.ServiceItem{},
		&models.Order{}, &models.OrderItem{},
	); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func resetDB(t *testing.T) {
	t.Helper()
	for _, table := range []string{"order_items", "orders", "service_items", "customers", "users"} {
		require.NoError(t, database.DB.Exec("DELETE FROM "+table).Error)
	}
}

func seedCustomer(t *testing.T) models.Customer {
	t.Helper()
	c := models.Customer{Name: "Amara Okafor", Phone: "+2348012345678"}
	require.NoError(t, database.DB.Create(&c).Error)
	return c
}

func seedService(t *testing.T, name string, price float64) models.ServiceItem {
	t.Helper()
	s := models.ServiceItem{Name: name, Category: models.CategoryWash, PricePerUnit: price, UnitType: models.UnitKG}
	require.NoError(t, database.DB.Create(&s).Error)
	return s
}

func TestAuthRegisterAndLogin(t *testing.T) {
	resetDB(t)
	svc := NewAuthService()

	resp, err := svc.Register(RegisterRequest{
		FullName: "Goodness Mbakara",
		Email:    "admin@freshpress.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "ADMIN", resp.Role)
	assert.Equal(t, "Goodness Mbakara", resp.FullName)

	logged, err := svc.Login(LoginRequest{Email: "admin@freshpress.com", Password: "password123"})
	require.NoError(t, err)
	assert.NotEmpty(t, logged.Token)
	assert.Equal(t, "admin@freshpress.com", logged.Email)
}

func TestAuthRegisterRejectsDuplicateEmail(t *testing.T) {
	resetDB(t)
	svc := NewAuthService()

	_, err := svc.Register(RegisterRequest{FullName: "A", Email: "dup@freshpress.com", Password: "password123"})
	require.NoError(t, err)

	_, err = svc.Register(RegisterRequest{FullName: "B", Email: "dup@freshpress.com", Password: "password456"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestAuthLoginInvalidCredentials(t *testing.T) {
	resetDB(t)
	svc := NewAuthService()

	_, err := svc.Register(RegisterRequest{FullName: "A", Email: "a@freshpress.com", Password: "password123"})
	require.NoError(t, err)

	_, err = svc.Login(LoginRequest{Email: "a@freshpress.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(LoginRequest{Email: "ghost@freshpress.com", Password: "password123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestOrderCreatePricesFromCatalog(t *testing.T) {
	resetDB(t)
	customer := seedCustomer(t)
	wash := seedService(t, "Wash & Fold", 1500)
	dry := seedService(t, "Dry Cleaning", 3000)

	svc := NewOrderService()
	order, err := svc.Create(CreateOrderRequest{
		CustomerID: customer.ID,
		Notes:      "silk items",
		Items: []OrderItemRequest{
			{ServiceItemID: wash.ID, Quantity: 3},
			{ServiceItemID: dry.ID, Quantity: 2},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, models.StatusPending, order.Status)
	require.Len(t, order.Items, 2)
	assert.InDelta(t, 4500, order.Items[0].Subtotal, 0.001)
	assert.InDelta(t, 6000, order.Items[1].Subtotal, 0.001)
	assert.InDelta(t, 10500, order.TotalAmount, 0.001)
}

func TestOrderCreateRejectsUnknownReferences(t *testing.T) {
	resetDB(t)
	customer := seedCustomer(t)
	wash := seedService(t, "Wash & Fold", 1500)

	svc := NewOrderService()

	_, err := svc.Create(CreateOrderRequest{
		CustomerID: 999,
		Items:      []OrderItemRequest{{ServiceItemID: wash.ID, Quantity: 1}},
	})
	assert.ErrorContains(t, err, "customer not found")

	_, err = svc.Create(CreateOrderRequest{
		CustomerID: customer.ID,
		Items:      []OrderItemRequest{{ServiceItemID: 999, Quantity: 1}},
	})
	assert.ErrorContains(t, err, "service item not found")

	_, err = svc.Create(CreateOrderRequest{
		CustomerID: customer.ID,
		Items:      []OrderItemRequest{{ServiceItemID: wash.ID, Quantity: 0}},
	})
	assert.ErrorContains(t, err, "quantity")
}

func TestOrderUpdateStatus(t *testing.T) {
	resetDB(t)
	customer := seedCustomer(t)
	wash := seedService(t, "Wash & Fold", 1500)

	svc := NewOrderService()
	order, err := svc.Create(CreateOrderRequest{
		CustomerID: customer.ID,
		Items:      []OrderItemRequest{{ServiceItemID: wash.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(order.ID, models.StatusProcessing)
	require.NoError(t, err)
	assert.Equal(t, models.StatusProcessing, updated.Status)

	_, err = svc.UpdateStatus(999, models.StatusReady)
	assert.ErrorContains(t, err, "order not found")
}

func TestOrderListFiltersByStatus(t *testing.T) {
	resetDB(t)
	customer := seedCustomer(t)
	wash := seedService(t, "Wash & Fold", 1500)

	svc := NewOrderService()
	for i := 0; i < 3; i++ {
		_, err := svc.Create(CreateOrderRequest{
			CustomerID: customer.ID,
			Items:      []OrderItemRequest{{ServiceItemID: wash.ID, Quantity: 1}},
		})
		require.NoError(t, err)
	}
	first, _, err := svc.List("", 0, 10)
	require.NoError(t, err)
	_, err = svc.UpdateStatus(first[0].ID, models.StatusReady)
	require.NoError(t, err)

	all, total, err := svc.List("", 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, all, 3)

	ready, total, err := svc.List(models.StatusReady, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, ready, 1)
	assert.Equal(t, models.StatusReady, ready[0].Status)
}

func TestDashboardStats(t *testing.T) {
	resetDB(t)
	customer := seedCustomer(t)
	wash := seedService(t, "Wash & Fold", 1500)

	svc := NewOrderService()
	order, err := svc.Create(CreateOrderRequest{
		CustomerID: customer.ID,
		Items:      []OrderItemRequest{{ServiceItemID: wash.ID, Quantity: 2}},
	})
	require.NoError(t, err)
	_, err = svc.Create(CreateOrderRequest{
		CustomerID: customer.ID,
		Items:      []OrderItemRequest{{ServiceItemID: wash.ID, Quantity: 1}},
	})
	require.NoError(t, err)
	_, err = svc.UpdateStatus(order.ID, models.StatusDelivered)
	require.NoError(t, err)

	stats, err := svc.Stats()
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalOrders)
	assert.Equal(t, int64(1), stats.TotalCustomers)
	assert.InDelta(t, 4500, stats.TotalRevenue, 0.001)
	assert.Equal(t, int64(1), stats.PendingOrders)
	assert.Equal(t, int64(1), stats.DeliveredOrders)
	assert.Equal(t, int64(1), stats.StatusBreakdown["DELIVERED"])
}

func TestCatalogCreateAndList(t *testing.T) {
	resetDB(t)
	svc := NewCatalogService()

	created, err := svc.Create(CreateServiceRequest{
		Name:         "Iron Only",
		Category:     models.CategoryIron,
		PricePerUnit: 500,
		UnitType:     models.UnitPiece,
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	items, err := svc.List()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Iron Only", items[0].Name)
}
