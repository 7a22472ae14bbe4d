package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is the authenticated account. Role decides which profile table is consulted.
type User struct {
	ID              uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Email           string    `gorm:"not null;size:255;uniqueIndex" json:"email"`
	Password        string    `gorm:"not null" json:"-"`
	FirstName       string    `gorm:"size:100" json:"firstName"`
	LastName        string    `gorm:"size:100" json:"lastName"`
	ProfileImageURL string    `gorm:"size:500" json:"profileImageUrl,omitempty"`
	Role            Role      `gorm:"size:20;not null;default:'couple'" json:"role"`
	AuthProvider    string    `gorm:"size:50;default:'email'" json:"authProvider"`
	ProviderID      string    `gorm:"size:255;index" json:"providerId"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// FullName joins first and last name, skipping empty parts.
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}
