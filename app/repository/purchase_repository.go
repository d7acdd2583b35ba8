package repository

import (
	"gorm.io/gorm"

	"github.com/lucasfabbrim/noteplanning-backend-sub000/app/models"
)

// purchaseRepository implements the PurchaseRepository interface
type purchaseRepository struct {
	db *gorm.DB
}

// NewPurchaseRepository creates a new purchase repository instance
func NewPurchaseRepository(db *gorm.DB) PurchaseRepository {
	return &purchaseRepository{db: db}
}

// Create appends a new ledger entry. Every webhook delivery gets its own
// row; existing entries are never merged into or updated.
func (r *purchaseRepository) Create(purchase *models.Purchase) error {
	return r.db.Create(purchase).Error
}

// GetByUUID retrieves a purchase by its public UUID
func (r *purchaseRepository) GetByUUID(uuid string) (*models.Purchase, error) {
	var purchase models.Purchase
	err := r.db.Where("uuid = ?", uuid).First(&purchase).Error
	if err != nil {
		return nil, err
	}
	return &purchase, nil
}

// ListByMember retrieves all purchases for a member, newest first
func (r *purchaseRepository) ListByMember(memberID uint) ([]models.Purchase, error) {
	var purchases []models.Purchase
	err := r.db.Where("member_id = ?", memberID).Order("created_at DESC").Find(&purchases).Error
	return purchases, err
}

// CountByMember returns the number of ledger entries for a member
func (r *purchaseRepository) CountByMember(memberID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Purchase{}).Where("member_id = ?", memberID).Count(&count).Error
	return count, err
}
