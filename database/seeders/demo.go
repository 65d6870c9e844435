package seeders

import (
	"time"

	"github.com/freshpress/freshpress/app/models"
	"github.com/freshpress/freshpress/pkg/auth"
	"gorm.io/gorm"
)

func init() {
	Register("demo", SeedDemoData)
}

// SeedDemoData loads the demo dataset: one admin account, the pricing
// catalog, a few customers and orders. Skips when users already exist.
func SeedDemoData(db *gorm.DB) error {
	var userCount int64
	if err := db.Model(&models.User{}).Count(&userCount).Error; err != nil {
		return err
	}
	if userCount > 0 {
		return nil
	}

	hash, err := auth.HashPassword("password123")
	if err != nil {
		return err
	}
	admin := models.User{
		FullName: "Goodness Mbakara",
		Email:    "admin@freshpress.com",
		Password: hash,
		Role:     "ADMIN",
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	catalog := []models.ServiceItem{
		{Name: "Wash & Fold", Category: models.CategoryWash, PricePerUnit: 1500, UnitType: models.UnitKG},
		{Name: "Dry Cleaning", Category: models.CategoryDryClean, PricePerUnit: 3000, UnitType: models.UnitPiece},
		{Name: "Iron Only", Category: models.CategoryIron, PricePerUnit: 500, UnitType: models.UnitPiece},
		{Name: "Wash & Iron", Category: models.CategoryWashAndIron, PricePerUnit: 2000, UnitType: models.UnitKG},
		{Name: "Special Care (Delicates)", Category: models.CategorySpecialCare, PricePerUnit: 5000, UnitType: models.UnitPiece},
	}
	if err := db.Create(&catalog).Error; err != nil {
		return err
	}

	customers := []models.Customer{
		{Name: "Amara Okafor", Phone: "+2348012345678", Email: "amara@email.com", Address: "12 Aba Road, Uyo"},
		{Name: "Emeka Nwosu", Phone: "+2348098765432", Email: "emeka@email.com", Address: "45 Ikot Ekpene Rd, Uyo"},
		{Name: "Funke Adeyemi", Phone: "+2349011223344", Address: "8 Wellington Bassey Way, Uyo"},
	}
	if err := db.Create(&customers).Error; err != nil {
		return err
	}

	now := time.Now()
	daysAgo := func(d int) *time.Time { t := now.AddDate(0, 0, -d); return &t }
	daysAhead := func(d int) *time.Time { t := now.AddDate(0, 0, d); return &t }

	orders := []models.Order{
		{
			CustomerID:   customers[0].ID,
			Status:       models.StatusProcessing,
			PickupDate:   daysAgo(2),
			DeliveryDate: daysAhead(1),
			Notes:        "Handle with care, silk items included",
			Items: []models.OrderItem{
				{ServiceItemID: catalog[0].ID, Quantity: 3, Subtotal: catalog[0].PricePerUnit * 3},
				{ServiceItemID: catalog[1].ID, Quantity: 2, Subtotal: catalog[1].PricePerUnit * 2},
			},
		},
		{
			CustomerID:   customers[1].ID,
			Status:       models.StatusPending,
			PickupDate:   daysAgo(0),
			DeliveryDate: daysAhead(3),
			Items: []models.OrderItem{
				{ServiceItemID: catalog[3].ID, Quantity: 5, Subtotal: catalog[3].PricePerUnit * 5},
			},
		},
		{
			CustomerID:   customers[2].ID,
			Status:       models.StatusDelivered,
			PickupDate:   daysAgo(5),
			DeliveryDate: daysAgo(2),
			Items: []models.OrderItem{
				{ServiceItemID: catalog[2].ID, Quantity: 10, Subtotal: catalog[2].PricePerUnit * 10},
			},
		},
	}
	for i := range orders {
		orders[i].RecalculateTotal()
		if err := db.Create(&orders[i]).Error; err != nil {
			return err
		}
	}

	return nil
}
