package models

// Restaurant is a single catalog record. The catalog is owned by the
// database; the API only ever reads these.
type Restaurant struct {
	ID        uint    `json:"id" gorm:"primaryKey"`
	Name      string  `json:"name"`
	Address   string  `json:"address"`
	Cuisine   string  `json:"cuisine"` // free text, possibly comma-joined ("North Indian, Italian")
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
