package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PURCHASE_STATUS_COMPLETED = "completed"
	PURCHASE_STATUS_PENDING   = "pending"
	PURCHASE_STATUS_FAILED    = "failed"
	PURCHASE_STATUS_REFUNDED  = "refunded"
)

// Purchase is one immutable ledger entry per reconciled webhook delivery.
// The customer snapshot is intentionally denormalized: it records the payer
// data at purchase time regardless of later member edits.
type Purchase struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	UUID           string         `gorm:"type:varchar(36);uniqueIndex" json:"uuid"`
	MemberID       uint           `gorm:"not null;index" json:"member_id"`
	Amount         float64        `gorm:"not null" json:"amount"`
	PaymentAmount  float64        `gorm:"not null" json:"payment_amount"`
	Event          string         `gorm:"type:varchar(100);not null;index" json:"event"`
	Status         string         `gorm:"type:varchar(50);not null;index" json:"status"`
	CustomerName   string         `gorm:"type:varchar(150)" json:"customer_name"`
	CustomerEmail  string         `gorm:"type:varchar(200)" json:"customer_email"`
	CustomerPhone  string         `gorm:"type:varchar(50)" json:"customer_phone"`
	CustomerTaxID  string         `gorm:"type:varchar(50)" json:"customer_tax_id"`
	ProductsJSON   string         `gorm:"type:longtext" json:"products_json"`
	RawPayloadJSON string         `gorm:"type:longtext" json:"raw_payload_json"`
	Sandbox        bool           `gorm:"default:false" json:"sandbox"`
	CreatedAt      time.Time      `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

func (p *Purchase) BeforeCreate(tx *gorm.DB) error {
	if p.UUID == "" {
		p.UUID = uuid.New().String()
	}
	return nil
}

// IsValidPurchaseStatus reports whether s is one of the known ledger statuses.
func IsValidPurchaseStatus(s string) bool {
	switch s {
	case PURCHASE_STATUS_COMPLETED, PURCHASE_STATUS_PENDING, PURCHASE_STATUS_FAILED, PURCHASE_STATUS_REFUNDED:
		return true
	default:
		return false
	}
}
