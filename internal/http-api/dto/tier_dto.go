package dto

import "storyhive/internal/models"

// CreateSubscriptionTierDTO used for POST /api/subscription-tiers.
// Price is in the smallest currency unit.
type CreateSubscriptionTierDTO struct {
	UserID      int64    `json:"user_id" binding:"required"`
	Name        string   `json:"name" binding:"required"`
	Description *string  `json:"description,omitempty"`
	Price       int      `json:"price" binding:"required,min=0"`
	Benefits    []string `json:"benefits,omitempty"`
}

// UpdateSubscriptionTierDTO used for PATCH /api/subscription-tiers/:id
type UpdateSubscriptionTierDTO struct {
	Name        *string   `json:"name,omitempty"`
	Description *string   `json:"description,omitempty"`
	Price       *int      `json:"price,omitempty" binding:"omitempty,min=0"`
	Benefits    *[]string `json:"benefits,omitempty"`
}

func (d CreateSubscriptionTierDTO) ToModel() models.SubscriptionTier {
	return models.SubscriptionTier{
		UserID:      d.UserID,
		Name:        d.Name,
		Description: d.Description,
		Price:       d.Price,
		Benefits:    d.Benefits,
	}
}

func (d UpdateSubscriptionTierDTO) ToPatch() models.SubscriptionTierPatch {
	return models.SubscriptionTierPatch{
		Name:        d.Name,
		Description: d.Description,
		Price:       d.Price,
		Benefits:    d.Benefits,
	}
}
