package controllers

import (
	"errors"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/lucasfabbrim/noteplanning-backend-sub000/app/models"
	"github.com/lucasfabbrim/noteplanning-backend-sub000/app/repository"
)

const defaultPageSize = 25
const maxPageSize = 100

// MemberController serves the admin read surface over members and their
// purchase history.
type MemberController struct {
	members   repository.MemberRepository
	purchases repository.PurchaseRepository
}

// NewMemberController creates the member controller.
func NewMemberController(members repository.MemberRepository, purchases repository.PurchaseRepository) *MemberController {
	return &MemberController{members: members, purchases: purchases}
}

// HandleListMembers returns a paginated member list.
func (mc *MemberController) HandleListMembers(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.Query("limit", strconv.Itoa(defaultPageSize)))
	if limit < 1 || limit > maxPageSize {
		limit = defaultPageSize
	}

	members, err := mc.members.List((page-1)*limit, limit)
	if err != nil {
		log.Printf("[Members] list failed: %v", err)
		return respondError(c, fiber.StatusInternalServerError, "Internal server error", nil, err)
	}
	total, err := mc.members.Count()
	if err != nil {
		log.Printf("[Members] count failed: %v", err)
		return respondError(c, fiber.StatusInternalServerError, "Internal server error", nil, err)
	}

	items := make([]fiber.Map, 0, len(members))
	for i := range members {
		items = append(items, memberData(&members[i]))
	}

	return respondSuccess(c, fiber.StatusOK, "Members retrieved", fiber.Map{
		"members": items,
		"page":    page,
		"limit":   limit,
		"total":   total,
	})
}

// HandleGetMember returns a single member by email.
func (mc *MemberController) HandleGetMember(c *fiber.Ctx) error {
	email := c.Params("email")
	member, err := mc.members.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return respondError(c, fiber.StatusNotFound, "Member not found", nil, nil)
		}
		log.Printf("[Members] lookup failed for %s: %v", email, err)
		return respondError(c, fiber.StatusInternalServerError, "Internal server error", nil, err)
	}
	return respondSuccess(c, fiber.StatusOK, "Member retrieved", fiber.Map{"member": memberData(member)})
}

// HandleListMemberPurchases returns the purchase ledger for one member.
func (mc *MemberController) HandleListMemberPurchases(c *fiber.Ctx) error {
	email := c.Params("email")
	member, err := mc.members.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return respondError(c, fiber.StatusNotFound, "Member not found", nil, nil)
		}
		log.Printf("[Members] lookup failed for %s: %v", email, err)
		return respondError(c, fiber.StatusInternalServerError, "Internal server error", nil, err)
	}

	purchases, err := mc.purchases.ListByMember(member.ID)
	if err != nil {
		log.Printf("[Members] purchase list failed for member %d: %v", member.ID, err)
		return respondError(c, fiber.StatusInternalServerError, "Internal server error", nil, err)
	}

	items := make([]fiber.Map, 0, len(purchases))
	for i := range purchases {
		p := &purchases[i]
		items = append(items, fiber.Map{
			"id":            p.UUID,
			"amount":        p.Amount,
			"paymentAmount": p.PaymentAmount,
			"event":         p.Event,
			"status":        p.Status,
			"sandbox":       p.Sandbox,
			"createdAt":     formatTime(p.CreatedAt),
		})
	}

	return respondSuccess(c, fiber.StatusOK, "Purchases retrieved", fiber.Map{
		"member":    fiber.Map{"id": member.ID, "email": member.Email},
		"purchases": items,
	})
}

func memberData(m *models.Member) fiber.Map {
	return fiber.Map{
		"id":          m.ID,
		"name":        m.Name,
		"email":       m.Email,
		"role":        m.Role,
		"status":      m.Status,
		"lastLoginAt": formatTimePtr(m.LastLoginAt),
		"createdAt":   formatTime(m.CreatedAt),
	}
}
