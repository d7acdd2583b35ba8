package webhook

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Envelope is the validated provider notification payload. Business logic
// only ever sees an Envelope produced by ParseEnvelope; raw request bodies
// stop at the validation boundary.
type Envelope struct {
	Event    string    `json:"event" validate:"required"`
	Sandbox  bool      `json:"sandbox"`
	Billing  Billing   `json:"billing" validate:"required"`
	Payment  Payment   `json:"payment" validate:"required"`
	Products []Product `json:"products" validate:"omitempty,dive"`
}

type Billing struct {
	Amount   float64  `json:"amount" validate:"required,gt=0"`
	Customer Customer `json:"customer" validate:"required"`
}

type Customer struct {
	Metadata CustomerMetadata `json:"metadata" validate:"required"`
}

type CustomerMetadata struct {
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Cellphone string `json:"cellphone" validate:"required"`
	TaxID     string `json:"taxId"`
}

type Payment struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

type Product struct {
	ID       string  `json:"id" validate:"required"`
	Name     string  `json:"name" validate:"required"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// FieldError is one field-level validation violation.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrInvalidEnvelope is returned by ParseEnvelope when the body failed
// structural validation; the accompanying FieldError slice has the detail.
var ErrInvalidEnvelope = errors.New("invalid webhook envelope")

// ParseEnvelope decodes and validates a raw webhook body. It returns either
// a fully-shaped envelope or the list of field violations, never both.
func ParseEnvelope(raw []byte) (*Envelope, []FieldError, error) {
	var envelope Envelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, []FieldError{{Field: "body", Message: "must be a valid JSON object"}}, ErrInvalidEnvelope
	}

	v := validator.New()
	if err := v.Struct(&envelope); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]FieldError, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, FieldError{
					Field:   fieldPath(fe),
					Message: fieldMessage(fe),
				})
			}
			return nil, fields, ErrInvalidEnvelope
		}
		return nil, []FieldError{{Field: "body", Message: err.Error()}}, ErrInvalidEnvelope
	}

	return &envelope, nil, nil
}

// fieldPath turns the validator namespace into a lowered JSON-ish path,
// e.g. "Envelope.Billing.Customer.Metadata.Email" -> "billing.customer.metadata.email".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		ns = ns[idx+1:]
	}
	parts := strings.Split(ns, ".")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToLower(p[:1]) + p[1:]
	}
	return strings.Join(parts, ".")
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	default:
		return fmt.Sprintf("failed validation on '%s'", fe.Tag())
	}
}
