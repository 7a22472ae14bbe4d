package models

import (
	"time"

	"github.com/google/uuid"
)

type BudgetItem struct {
	ID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ConsumerOwned
	Category      string      `gorm:"size:100;not null" json:"category"`
	Description   string      `gorm:"size:500;not null" json:"description"`
	EstimatedCost *float64    `gorm:"type:decimal(10,2)" json:"estimatedCost,omitempty"`
	ActualCost    *float64    `gorm:"type:decimal(10,2)" json:"actualCost,omitempty"`
	IsPaid        bool        `gorm:"default:false" json:"isPaid"`
	Notes         string      `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt     time.Time   `json:"createdAt"`
	Couple        *Couple     `gorm:"foreignKey:CoupleID;constraint:OnDelete:CASCADE" json:"-"`
	Individual    *Individual `gorm:"foreignKey:IndividualID;constraint:OnDelete:CASCADE" json:"-"`
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) Valid() bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

type TimelineItem struct {
	ID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ConsumerOwned
	Title       string      `gorm:"size:255;not null" json:"title"`
	Description string      `gorm:"type:text" json:"description,omitempty"`
	DueDate     *time.Time  `gorm:"index" json:"dueDate,omitempty"`
	Category    string      `gorm:"size:100" json:"category,omitempty"`
	IsCompleted bool        `gorm:"default:false" json:"isCompleted"`
	Priority    Priority    `gorm:"size:10;not null;default:'medium'" json:"priority"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
	Couple      *Couple     `gorm:"foreignKey:CoupleID;constraint:OnDelete:CASCADE" json:"-"`
	Individual  *Individual `gorm:"foreignKey:IndividualID;constraint:OnDelete:CASCADE" json:"-"`
}
