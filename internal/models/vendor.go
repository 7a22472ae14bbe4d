package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// VendorPackage is a priced offering. Deleting a package only clears IsActive.
type VendorPackage struct {
	ID          uuid.UUID                   `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	VendorID    uuid.UUID                   `gorm:"type:uuid;not null;index" json:"vendorId"`
	Name        string                      `gorm:"size:255;not null" json:"name"`
	Description string                      `gorm:"type:text" json:"description,omitempty"`
	Price       float64                     `gorm:"type:decimal(10,2);not null" json:"price"`
	Duration    string                      `gorm:"size:100" json:"duration,omitempty"`
	Features    datatypes.JSONSlice[string] `json:"features"`
	IsActive    bool                        `gorm:"default:true" json:"isActive"`
	CreatedAt   time.Time                   `json:"createdAt"`
	Vendor      Vendor                      `gorm:"foreignKey:VendorID;constraint:OnDelete:CASCADE" json:"-"`
}

type PortfolioItem struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	VendorID    uuid.UUID `gorm:"type:uuid;not null;index" json:"vendorId"`
	Title       string    `gorm:"size:255" json:"title,omitempty"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	ImageURL    string    `gorm:"size:500;not null" json:"imageUrl"`
	OrderIndex  int       `gorm:"default:0" json:"orderIndex"`
	CreatedAt   time.Time `json:"createdAt"`
	Vendor      Vendor    `gorm:"foreignKey:VendorID;constraint:OnDelete:CASCADE" json:"-"`
}

// VendorAvailability holds at most one row per vendor per calendar day.
// Date is always midnight UTC.
type VendorAvailability struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	VendorID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_vendor_availability_day" json:"vendorId"`
	Date        time.Time `gorm:"type:date;not null;uniqueIndex:idx_vendor_availability_day" json:"date"`
	IsAvailable bool      `gorm:"not null" json:"isAvailable"`
	EventType   string    `gorm:"size:100" json:"eventType,omitempty"`
	EventTitle  string    `gorm:"size:255" json:"eventTitle,omitempty"`
	Notes       string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	Vendor      Vendor    `gorm:"foreignKey:VendorID;constraint:OnDelete:CASCADE" json:"-"`
}

func (VendorAvailability) TableName() string {
	return "vendor_availability"
}

type SavedVendor struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_saved_vendor_pair" json:"userId"`
	VendorID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_saved_vendor_pair" json:"vendorId"`
	CreatedAt time.Time `json:"createdAt"`
	User      User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Vendor    *Vendor   `gorm:"foreignKey:VendorID;constraint:OnDelete:CASCADE" json:"vendor,omitempty"`
}
