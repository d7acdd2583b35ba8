package repository

import (
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/lucasfabbrim/noteplanning-backend-sub000/app/models"
)

// memberRepository implements the MemberRepository interface
type memberRepository struct {
	db *gorm.DB
}

// NewMemberRepository creates a new member repository instance
func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &memberRepository{db: db}
}

// Create creates a new member in the database
func (r *memberRepository) Create(member *models.Member) error {
	return r.db.Create(member).Error
}

// GetByID retrieves a member by their ID
func (r *memberRepository) GetByID(id uint) (*models.Member, error) {
	var member models.Member
	err := r.db.First(&member, id).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// GetByEmail retrieves a non-deleted member by their email address
func (r *memberRepository) GetByEmail(email string) (*models.Member, error) {
	var member models.Member
	err := r.db.Where("email = ?", email).First(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// GetByEmailIncludingDeleted retrieves a member by email, soft-deleted or not
func (r *memberRepository) GetByEmailIncludingDeleted(email string) (*models.Member, error) {
	var member models.Member
	err := r.db.Unscoped().Where("email = ?", email).First(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// Update updates an existing member in the database
func (r *memberRepository) Update(member *models.Member) error {
	return r.db.Save(member).Error
}

// Reactivate clears the soft-deletion timestamp and re-activates the member.
// The stored credential is left untouched.
func (r *memberRepository) Reactivate(member *models.Member) error {
	err := r.db.Unscoped().
		Model(&models.Member{}).
		Where("id = ?", member.ID).
		Updates(map[string]interface{}{
			"deleted_at": nil,
			"status":     models.STATUS_ACTIVE,
			"name":       strings.TrimSpace(member.Name),
			"updated_at": time.Now(),
		}).Error
	if err != nil {
		return err
	}
	member.DeletedAt = gorm.DeletedAt{}
	member.Status = models.STATUS_ACTIVE
	return nil
}

// List retrieves a paginated list of members
func (r *memberRepository) List(offset, limit int) ([]models.Member, error) {
	var members []models.Member
	err := r.db.Order("created_at DESC").Offset(offset).Limit(limit).Find(&members).Error
	return members, err
}

// Count returns the total number of members
func (r *memberRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Member{}).Count(&count).Error
	return count, err
}
