package webhook

import (
	"testing"

	"github.com/lucasfabbrim/noteplanning-backend-sub000/app/models"
)

func TestMapEventStatus(t *testing.T) {
	tests := []struct {
		event string
		want  string
	}{
		{event: "payment.completed", want: models.PURCHASE_STATUS_COMPLETED},
		{event: "sale.completed", want: models.PURCHASE_STATUS_COMPLETED},
		{event: "payment.approved", want: models.PURCHASE_STATUS_COMPLETED},
		{event: "payment.pending", want: models.PURCHASE_STATUS_PENDING},
		{event: "payment.failed", want: models.PURCHASE_STATUS_FAILED},
		{event: "payment.refunded", want: models.PURCHASE_STATUS_REFUNDED},
		{event: "PAYMENT.COMPLETED", want: models.PURCHASE_STATUS_COMPLETED},
		{event: " payment.completed ", want: models.PURCHASE_STATUS_COMPLETED},
		// Anything else falls back to pending.
		{event: "subscription.renewed", want: models.PURCHASE_STATUS_PENDING},
		{event: "payment.chargeback", want: models.PURCHASE_STATUS_PENDING},
		{event: "", want: models.PURCHASE_STATUS_PENDING},
	}

	for _, tt := range tests {
		if got := MapEventStatus(tt.event); got != tt.want {
			t.Fatalf("MapEventStatus(%q) = %q, want %q", tt.event, got, tt.want)
		}
	}
}

func TestEventClassification(t *testing.T) {
	for _, event := range []string{"payment.completed", "sale.completed", "payment.approved"} {
		if !IsActionableEvent(event) {
			t.Fatalf("expected event %q to be actionable", event)
		}
		if IsKnownInactionableEvent(event) {
			t.Fatalf("event %q cannot be both actionable and inactionable", event)
		}
	}
	for _, event := range []string{"payment.pending", "payment.failed", "payment.refunded"} {
		if IsActionableEvent(event) {
			t.Fatalf("expected event %q to not be actionable", event)
		}
		if !IsKnownInactionableEvent(event) {
			t.Fatalf("expected event %q to be known-inactionable", event)
		}
	}
	for _, event := range []string{"subscription.created", "something.new", ""} {
		if IsActionableEvent(event) || IsKnownInactionableEvent(event) {
			t.Fatalf("expected event %q to be unknown", event)
		}
	}
}
