package repository

import (
	"github.com/lucasfabbrim/noteplanning-backend-sub000/app/models"
)

// MemberRepository defines the interface for member data access
type MemberRepository interface {
	Create(member *models.Member) error
	GetByID(id uint) (*models.Member, error)
	GetByEmail(email string) (*models.Member, error)
	// GetByEmailIncludingDeleted also returns soft-deleted members so the
	// webhook reconciliation can reactivate them.
	GetByEmailIncludingDeleted(email string) (*models.Member, error)
	Update(member *models.Member) error
	// Reactivate clears the soft-deletion mark, flips the member active and
	// persists the refreshed display name.
	Reactivate(member *models.Member) error
	List(offset, limit int) ([]models.Member, error)
	Count() (int64, error)
}

// PurchaseRepository defines the interface for purchase ledger access.
// Ledger entries are append-only; there is no update operation.
type PurchaseRepository interface {
	Create(purchase *models.Purchase) error
	GetByUUID(uuid string) (*models.Purchase, error)
	ListByMember(memberID uint) ([]models.Purchase, error)
	CountByMember(memberID uint) (int64, error)
}
