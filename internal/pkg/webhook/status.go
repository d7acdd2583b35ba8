package webhook

import (
	"strings"

	"github.com/lucasfabbrim/noteplanning-backend-sub000/app/models"
)

// Event names the provider is known to deliver.
const (
	EventPaymentCompleted = "payment.completed"
	EventSaleCompleted    = "sale.completed"
	EventPaymentApproved  = "payment.approved"
	EventPaymentPending   = "payment.pending"
	EventPaymentFailed    = "payment.failed"
	EventPaymentRefunded  = "payment.refunded"
)

func normalizeEvent(event string) string {
	return strings.ToLower(strings.TrimSpace(event))
}

// MapEventStatus maps a provider event name to the internal ledger status.
// Unrecognized events fall back to pending as the conservative default, so
// the mapping is total over all strings.
func MapEventStatus(event string) string {
	switch normalizeEvent(event) {
	case EventPaymentCompleted, EventSaleCompleted, EventPaymentApproved:
		return models.PURCHASE_STATUS_COMPLETED
	case EventPaymentPending:
		return models.PURCHASE_STATUS_PENDING
	case EventPaymentFailed:
		return models.PURCHASE_STATUS_FAILED
	case EventPaymentRefunded:
		return models.PURCHASE_STATUS_REFUNDED
	default:
		return models.PURCHASE_STATUS_PENDING
	}
}

// IsActionableEvent reports whether the event triggers reconciliation
// (account resolution plus a ledger write).
func IsActionableEvent(event string) bool {
	switch normalizeEvent(event) {
	case EventPaymentCompleted, EventSaleCompleted, EventPaymentApproved:
		return true
	default:
		return false
	}
}

// IsKnownInactionableEvent reports whether the event is recognized but
// deliberately performs no mutation.
func IsKnownInactionableEvent(event string) bool {
	switch normalizeEvent(event) {
	case EventPaymentPending, EventPaymentFailed, EventPaymentRefunded:
		return true
	default:
		return false
	}
}
