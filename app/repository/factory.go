package repository

import (
	"gorm.io/gorm"
)

// Factory bundles the repositories over one DB handle. It is constructed
// once in main and passed explicitly to whoever needs it; there is no
// global instance.
type Factory struct {
	members   MemberRepository
	purchases PurchaseRepository
}

// NewFactory creates a repository factory for the given database handle
func NewFactory(db *gorm.DB) *Factory {
	return &Factory{
		members:   NewMemberRepository(db),
		purchases: NewPurchaseRepository(db),
	}
}

// GetMemberRepository returns the member repository
func (f *Factory) GetMemberRepository() MemberRepository {
	return f.members
}

// GetPurchaseRepository returns the purchase repository
func (f *Factory) GetPurchaseRepository() PurchaseRepository {
	return f.purchases
}
