package service

import (
	"storyhive/internal/models"
	"storyhive/internal/store"
)

type SubscriptionTierService interface {
	GetByID(id int64) (models.SubscriptionTier, bool)
	ByUserID(userID int64) []models.SubscriptionTier
	Create(t models.SubscriptionTier) models.SubscriptionTier
	Update(id int64, p models.SubscriptionTierPatch) (models.SubscriptionTier, bool)
	Delete(id int64) bool
}

type tierService struct {
	store *store.Store
}

func NewSubscriptionTierService(s *store.Store) SubscriptionTierService {
	return &tierService{store: s}
}

func (s *tierService) GetByID(id int64) (models.SubscriptionTier, bool) {
	return s.store.GetSubscriptionTier(id)
}

func (s *tierService) ByUserID(userID int64) []models.SubscriptionTier {
	return s.store.SubscriptionTiersByUserID(userID)
}

func (s *tierService) Create(t models.SubscriptionTier) models.SubscriptionTier {
	return s.store.CreateSubscriptionTier(t)
}

func (s *tierService) Update(id int64, p models.SubscriptionTierPatch) (models.SubscriptionTier, bool) {
	return s.store.UpdateSubscriptionTier(id, p)
}

func (s *tierService) Delete(id int64) bool {
	return s.store.DeleteSubscriptionTier(id)
}
