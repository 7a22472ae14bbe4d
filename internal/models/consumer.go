package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ConsumerRef points at the couple or individual profile that owns a row.
type ConsumerRef struct {
	Role      Role
	ProfileID uuid.UUID
	UserID    uuid.UUID
}

// Column is the foreign key column that stores this reference.
func (r ConsumerRef) Column() string {
	if r.Role == RoleIndividual {
		return "individual_id"
	}
	return "couple_id"
}

// Scope restricts a query to rows owned by this consumer.
func (r ConsumerRef) Scope() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(r.Column()+" = ?", r.ProfileID)
	}
}

// ConsumerOwned is embedded in every row that belongs to a consumer profile.
// Exactly one of CoupleID and IndividualID is set.
type ConsumerOwned struct {
	CoupleID     *uuid.UUID `gorm:"type:uuid;index" json:"coupleId,omitempty"`
	IndividualID *uuid.UUID `gorm:"type:uuid;index" json:"individualId,omitempty"`
}

// OwnedBy builds the column pair for ref.
func OwnedBy(ref ConsumerRef) ConsumerOwned {
	id := ref.ProfileID
	if ref.Role == RoleIndividual {
		return ConsumerOwned{IndividualID: &id}
	}
	return ConsumerOwned{CoupleID: &id}
}

// Owner reconstructs the reference stored in the row. UserID is not stored and stays zero.
func (o ConsumerOwned) Owner() ConsumerRef {
	if o.IndividualID != nil {
		return ConsumerRef{Role: RoleIndividual, ProfileID: *o.IndividualID}
	}
	if o.CoupleID != nil {
		return ConsumerRef{Role: RoleCouple, ProfileID: *o.CoupleID}
	}
	return ConsumerRef{}
}

// IsOwnedBy compares the stored owner with ref.
func (o ConsumerOwned) IsOwnedBy(ref ConsumerRef) bool {
	owner := o.Owner()
	return owner.Role == ref.Role && owner.ProfileID == ref.ProfileID
}
