package controllers

import (
	"errors"
	"log"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"github.com/lucasfabbrim/noteplanning-backend-sub000/app/repository"
	"github.com/lucasfabbrim/noteplanning-backend-sub000/internal/pkg/middleware"
)

const accessTokenTTL = 24 * time.Hour

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthController issues API access tokens for members.
type AuthController struct {
	members   repository.MemberRepository
	jwtSecret string
}

// NewAuthController creates the auth controller.
func NewAuthController(members repository.MemberRepository, jwtSecret string) *AuthController {
	return &AuthController{members: members, jwtSecret: jwtSecret}
}

// HandleLogin checks email+password and returns a signed access token.
func (ac *AuthController) HandleLogin(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil || req.Email == "" || req.Password == "" {
		return respondError(c, fiber.StatusBadRequest, "Invalid request", nil, err)
	}

	member, err := ac.members.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return respondError(c, fiber.StatusUnauthorized, "Invalid credentials", nil, nil)
		}
		log.Printf("[Auth] login lookup failed: %v", err)
		return respondError(c, fiber.StatusInternalServerError, "Internal server error", nil, err)
	}

	if !member.IsActive() || !member.CheckPassword(req.Password) {
		return respondError(c, fiber.StatusUnauthorized, "Invalid credentials", nil, nil)
	}

	now := time.Now()
	claims := middleware.Claims{
		Email: member.Email,
		Role:  member.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(member.ID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(accessTokenTTL)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(ac.jwtSecret))
	if err != nil {
		log.Printf("[Auth] token signing failed: %v", err)
		return respondError(c, fiber.StatusInternalServerError, "Internal server error", nil, err)
	}

	lastLogin := now
	member.LastLoginAt = &lastLogin
	if err := ac.members.Update(member); err != nil {
		// Best-effort; the login itself already succeeded.
		log.Printf("[Auth] failed to update last login for member %d: %v", member.ID, err)
	}

	return respondSuccess(c, fiber.StatusOK, "Login successful", fiber.Map{
		"token":     token,
		"expiresAt": formatTime(now.Add(accessTokenTTL)),
	})
}
