package models

import "time"

// SubscriptionTier is a creator-defined support tier. Price is in the
// smallest currency unit (cents).
type SubscriptionTier struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Price       int       `json:"price"`
	Benefits    []string  `json:"benefits"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type SubscriptionTierPatch struct {
	Name        *string
	Description *string
	Price       *int
	Benefits    *[]string
}

func (p SubscriptionTierPatch) Apply(t *SubscriptionTier) {
	if p.Name != nil {
		t.Name = *p.Name
	}
	if p.Description != nil {
		t.Description = p.Description
	}
	if p.Price != nil {
		t.Price = *p.Price
	}
	if p.Benefits != nil {
		t.Benefits = *p.Benefits
	}
}
