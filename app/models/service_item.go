package models

// Service categories in the pricing catalog.
const (
	CategoryWash        = "WASH"
	CategoryDryClean    = "DRY_CLEAN"
	CategoryIron        = "IRON"
	CategoryFold        = "FOLD"
	CategoryWashAndIron = "WASH_AND_IRON"
	CategorySpecialCare = "SPECIAL_CARE"
)

// Billing units.
const (
	UnitKG    = "KG"
	UnitPiece = "PIECE"
	UnitLoad  = "LOAD"
)

// ServiceItem is one entry in the pricing catalog.
type ServiceItem struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	Name         string  `gorm:"size:255;not null" json:"name"`
	Category     string  `gorm:"size:50;not null" json:"category"`
	PricePerUnit float64 `gorm:"not null" json:"pricePerUnit"`
	UnitType     string  `gorm:"size:20;not null" json:"unitType"`
}
