package models

import (
	"time"

	"gorm.io/datatypes"
)

type Vendor struct {
	ID          uint                        `gorm:"primaryKey" json:"id"`
	Name        string                      `gorm:"not null" json:"name"`
	Category    string                      `gorm:"not null;index" json:"category"`
	Description string                      `gorm:"type:text" json:"description"`
	Location    string                      `gorm:"index" json:"location"`
	PriceRange  string                      `json:"priceRange"`
	Rating      float64                     `gorm:"not null;default:0" json:"rating"`
	ReviewCount int                         `gorm:"not null;default:0" json:"reviewCount"`
	Phone       string                      `json:"phone"`
	Email       string                      `json:"email"`
	Website     string                      `json:"website"`
	Instagram   string                      `json:"instagram"`
	Images      datatypes.JSONSlice[string] `json:"images"`
	Services    datatypes.JSONSlice[string] `json:"services"`
	Featured    bool                        `gorm:"not null;default:false" json:"featured"`
	CreatedAt   time.Time                   `json:"createdAt"`
	UpdatedAt   time.Time                   `json:"updatedAt"`
}

type Category struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null;uniqueIndex" json:"name"`
	Slug        string    `gorm:"not null;uniqueIndex" json:"slug"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Review struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	VendorID  uint      `gorm:"not null;index" json:"vendorId"`
	Name      string    `gorm:"not null" json:"name"`
	Rating    int       `gorm:"not null" json:"rating"`
	Comment   string    `gorm:"type:text" json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

// VendorFilter narrows vendor listings; zero values mean "no filter".
type VendorFilter struct {
	Category string
	Location string
	Search   string
	Featured *bool
	Limit    int
	Offset   int
}
