package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestIsValidPurchaseStatus(t *testing.T) {
	for _, s := range []string{PURCHASE_STATUS_COMPLETED, PURCHASE_STATUS_PENDING, PURCHASE_STATUS_FAILED, PURCHASE_STATUS_REFUNDED} {
		assert.True(t, IsValidPurchaseStatus(s))
	}
	assert.False(t, IsValidPurchaseStatus("chargeback"))
	assert.False(t, IsValidPurchaseStatus(""))
}

func TestPurchaseBeforeCreateAssignsUUID(t *testing.T) {
	p := &Purchase{}
	assert.NoError(t, p.BeforeCreate(nil))
	parsed, err := uuid.Parse(p.UUID)
	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, parsed)

	// An explicitly assigned UUID is preserved.
	fixed := uuid.New().String()
	p = &Purchase{UUID: fixed}
	assert.NoError(t, p.BeforeCreate(nil))
	assert.Equal(t, fixed, p.UUID)
}
