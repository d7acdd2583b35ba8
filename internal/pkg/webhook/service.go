package webhook

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/lucasfabbrim/noteplanning-backend-sub000/app/models"
	"github.com/lucasfabbrim/noteplanning-backend-sub000/app/repository"
	"github.com/lucasfabbrim/noteplanning-backend-sub000/internal/pkg/mail"
)

// Outcome is the terminal state of processing one webhook delivery.
type Outcome string

const (
	OutcomeReconciled Outcome = "reconciled"
	OutcomeIgnored    Outcome = "ignored"
	OutcomeUnknown    Outcome = "unknown"
)

// Branch names which account-resolution path ran. Exactly one branch fires
// per reconciled delivery.
type Branch string

const (
	BranchNew         Branch = "new"
	BranchExisting    Branch = "existing"
	BranchReactivated Branch = "reactivated"
)

// Result carries the outcome of one processed delivery. Member and
// Purchase are only set when Outcome is OutcomeReconciled.
type Result struct {
	Outcome  Outcome
	Branch   Branch
	Member   *models.Member
	Purchase *models.Purchase
}

const welcomeMailTimeout = 10 * time.Second

// Service turns authenticated webhook envelopes into durable member and
// ledger state. All collaborators are injected once at construction.
type Service struct {
	members   repository.MemberRepository
	purchases repository.PurchaseRepository
	mailer    mail.Mailer
}

// NewService creates a webhook reconciliation service.
func NewService(members repository.MemberRepository, purchases repository.PurchaseRepository, mailer mail.Mailer) *Service {
	return &Service{
		members:   members,
		purchases: purchases,
		mailer:    mailer,
	}
}

// Process routes one validated, authenticated envelope. Actionable events
// are reconciled; known-inactionable and unknown events return without any
// mutation. The raw body is stored verbatim on the ledger entry for audit.
//
// Processing is deliberately not cancellable: a client disconnect must not
// abort an in-progress write, so the passed context is not threaded into
// the persistence calls.
func (s *Service) Process(ctx context.Context, envelope *Envelope, rawBody []byte) (*Result, error) {
	_ = ctx

	event := normalizeEvent(envelope.Event)
	switch {
	case IsActionableEvent(event):
		return s.reconcile(envelope, rawBody)
	case IsKnownInactionableEvent(event):
		log.Printf("[Webhook] event %q requires no action", event)
		return &Result{Outcome: OutcomeIgnored}, nil
	default:
		log.Printf("[Webhook] WARN unknown event %q, ignoring", event)
		return &Result{Outcome: OutcomeUnknown}, nil
	}
}

func (s *Service) reconcile(envelope *Envelope, rawBody []byte) (*Result, error) {
	meta := envelope.Billing.Customer.Metadata

	member, branch, credential, err := s.resolveMember(meta)
	if err != nil {
		return nil, err
	}

	purchase, err := s.appendLedgerEntry(member, envelope, rawBody)
	if err != nil {
		// The member mutation above stays: an account's existence or
		// reactivation is valid on its own even when the ledger write fails.
		return nil, err
	}

	if branch == BranchNew {
		s.sendWelcomeMail(member, credential)
	}

	return &Result{
		Outcome:  OutcomeReconciled,
		Branch:   branch,
		Member:   member,
		Purchase: purchase,
	}, nil
}

// resolveMember maps the payer email to exactly one of three branches:
// create a new member, reuse an active one, or reactivate a soft-deleted
// one. The plaintext credential is only returned on the new branch.
func (s *Service) resolveMember(meta CustomerMetadata) (*models.Member, Branch, string, error) {
	email := strings.TrimSpace(meta.Email)

	member, err := s.members.GetByEmailIncludingDeleted(email)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", "", err
		}
		return s.createMember(meta, email)
	}

	if member.DeletedAt.Valid {
		member.Name = strings.TrimSpace(meta.Name)
		if err := s.members.Reactivate(member); err != nil {
			return nil, "", "", err
		}
		log.Printf("[Webhook] reactivated member %d (%s)", member.ID, email)
		return member, BranchReactivated, "", nil
	}

	return member, BranchExisting, "", nil
}

func (s *Service) createMember(meta CustomerMetadata, email string) (*models.Member, Branch, string, error) {
	credential, err := models.GenerateCredential()
	if err != nil {
		return nil, "", "", err
	}

	member, err := models.NewMember(strings.TrimSpace(meta.Name), email, credential)
	if err != nil {
		return nil, "", "", err
	}

	if err := s.members.Create(member); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost the race against a concurrent delivery for the same new
			// email; the unique constraint is the authority, so fall back to
			// the row the winner created.
			existing, lookupErr := s.members.GetByEmailIncludingDeleted(email)
			if lookupErr != nil {
				return nil, "", "", lookupErr
			}
			log.Printf("[Webhook] member %s created concurrently, reusing", email)
			return existing, BranchExisting, "", nil
		}
		return nil, "", "", err
	}

	log.Printf("[Webhook] created member %d (%s)", member.ID, email)
	return member, BranchNew, credential, nil
}

// appendLedgerEntry writes one new purchase row for this delivery. Repeated
// deliveries of the same logical purchase each append their own entry; the
// provider payload carries no transaction id to deduplicate on.
func (s *Service) appendLedgerEntry(member *models.Member, envelope *Envelope, rawBody []byte) (*models.Purchase, error) {
	meta := envelope.Billing.Customer.Metadata

	productsJSON := ""
	if len(envelope.Products) > 0 {
		b, err := json.Marshal(envelope.Products)
		if err != nil {
			return nil, err
		}
		productsJSON = string(b)
	}

	purchase := &models.Purchase{
		MemberID:       member.ID,
		Amount:         envelope.Billing.Amount,
		PaymentAmount:  envelope.Payment.Amount,
		Event:          normalizeEvent(envelope.Event),
		Status:         MapEventStatus(envelope.Event),
		CustomerName:   strings.TrimSpace(meta.Name),
		CustomerEmail:  strings.TrimSpace(meta.Email),
		CustomerPhone:  strings.TrimSpace(meta.Cellphone),
		CustomerTaxID:  strings.TrimSpace(meta.TaxID),
		ProductsJSON:   productsJSON,
		RawPayloadJSON: string(rawBody),
		Sandbox:        envelope.Sandbox,
	}

	if err := s.purchases.Create(purchase); err != nil {
		return nil, err
	}
	return purchase, nil
}

// sendWelcomeMail delivers the generated credential on its own deadline.
// Failure or timeout is logged and discarded so a slow mail provider can
// neither fail nor stall the webhook response.
func (s *Service) sendWelcomeMail(member *models.Member, credential string) {
	if s.mailer == nil {
		return
	}

	done := make(chan error, 1)
	go func() {
		done <- s.mailer.Send(member.Email, mail.WelcomeSubject(), mail.WelcomeBody(member.Name, member.Email, credential))
	}()

	select {
	case err := <-done:
		if err != nil {
			log.Printf("[Webhook] WARN welcome mail to %s failed: %v", member.Email, err)
		}
	case <-time.After(welcomeMailTimeout):
		log.Printf("[Webhook] WARN welcome mail to %s timed out", member.Email)
	}
}
