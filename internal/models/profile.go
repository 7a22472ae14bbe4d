package models

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the role-specific record attached to a User during profile setup.
// Only *Couple, *Individual and *Vendor implement it.
type Profile interface {
	ProfileRole() Role
	ProfileID() uuid.UUID
	sealed()
}

type Couple struct {
	ID          uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex" json:"userId"`
	CoupleName  string     `gorm:"size:255" json:"coupleName"`
	Email       string     `gorm:"size:255" json:"email,omitempty"`
	PartnerName string     `gorm:"size:255" json:"partnerName,omitempty"`
	WeddingDate *time.Time `json:"weddingDate,omitempty"`
	Budget      *float64   `gorm:"type:decimal(10,2)" json:"budget,omitempty"`
	SpentAmount float64    `gorm:"type:decimal(10,2);default:0" json:"spentAmount"`
	Venue       string     `gorm:"size:255" json:"venue,omitempty"`
	GuestCount  *int       `json:"guestCount,omitempty"`
	Style       string     `gorm:"size:100" json:"style,omitempty"`
	Location    string     `gorm:"size:255" json:"location,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	User        User       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (c *Couple) ProfileRole() Role    { return RoleCouple }
func (c *Couple) ProfileID() uuid.UUID { return c.ID }
func (c *Couple) sealed()              {}

type Individual struct {
	ID        uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex" json:"userId"`
	FullName  string     `gorm:"size:255" json:"fullName"`
	Email     string     `gorm:"size:255" json:"email,omitempty"`
	Phone     string     `gorm:"size:50" json:"phone,omitempty"`
	EventType string     `gorm:"size:100" json:"eventType,omitempty"`
	EventDate *time.Time `json:"eventDate,omitempty"`
	Budget    *float64   `gorm:"type:decimal(10,2)" json:"budget,omitempty"`
	Location  string     `gorm:"size:255" json:"location,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	User      User       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (i *Individual) ProfileRole() Role    { return RoleIndividual }
func (i *Individual) ProfileID() uuid.UUID { return i.ID }
func (i *Individual) sealed()              {}

type Vendor struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"userId"`
	BusinessName string    `gorm:"size:255;not null" json:"businessName"`
	Category     string    `gorm:"size:100;not null;index" json:"category"`
	Description  string    `gorm:"type:text" json:"description"`
	Country      string    `gorm:"size:100" json:"country"`
	State        string    `gorm:"size:100" json:"state"`
	City         string    `gorm:"size:100" json:"city"`
	Location     string    `gorm:"size:255" json:"location"`
	Phone        string    `gorm:"size:50" json:"phone,omitempty"`
	Email        string    `gorm:"size:255" json:"email,omitempty"`
	Website      string    `gorm:"size:255" json:"website,omitempty"`
	Instagram    string    `gorm:"size:255" json:"instagram,omitempty"`
	Facebook     string    `gorm:"size:255" json:"facebook,omitempty"`
	TikTok       string    `gorm:"size:255" json:"tiktok,omitempty"`
	Pinterest    string    `gorm:"size:255" json:"pinterest,omitempty"`
	Rating       float64   `gorm:"type:decimal(2,1);default:0;index" json:"rating"`
	ReviewCount  int       `gorm:"default:0" json:"reviewCount"`
	IsActive     bool      `gorm:"default:true;index" json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
	User         User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (v *Vendor) ProfileRole() Role    { return RoleVendor }
func (v *Vendor) ProfileID() uuid.UUID { return v.ID }
func (v *Vendor) sealed()              {}
