package models

// Ingredient is a catalog entry identified by its unique name. Entries
// are seeded or imported in bulk and treated as immutable once recipes
// reference them.
type Ingredient struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	Name            string `gorm:"size:128;uniqueIndex;not null" json:"name"`
	MeasurementUnit string `gorm:"size:64;not null" json:"measurement_unit"`
}
