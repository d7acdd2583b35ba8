package models

import (
	"crypto/rand"
	"encoding/base64"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	ROLE_MEMBER    = "member"
	ROLE_MODERATOR = "moderator"
	ROLE_ADMIN     = "admin"

	STATUS_ACTIVE   = "active"
	STATUS_INACTIVE = "inactive"
)

const generatedCredentialBytes = 24

type Member struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"type:varchar(150)" json:"name" validate:"required,min=2,max=150"`
	Email       string         `gorm:"uniqueIndex;type:varchar(200) CHARACTER SET utf8 COLLATE utf8_bin" json:"email" validate:"required,email,min=5,max=200"`
	Password    string         `gorm:"type:text" json:"-" validate:"required,min=6"`
	Role        string         `gorm:"type:varchar(50);default:'member'" json:"role" validate:"oneof=member moderator admin"`
	Status      string         `gorm:"type:varchar(50);default:'active'" json:"status" validate:"oneof=active inactive"`
	LastLoginAt *time.Time     `gorm:"type:timestamp;default:null" json:"last_login_at"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (m *Member) Validate() error {
	v := validator.New()

	return v.Struct(m)
}

// NewMember builds a validated member with a hashed password and default role.
func NewMember(name string, email string, password string) (*Member, error) {
	pw, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	m := &Member{
		Name:     name,
		Email:    email,
		Password: pw,
		Role:     ROLE_MEMBER,
		Status:   STATUS_ACTIVE,
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}

	return m, nil
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	return string(bytes), err
}

// CheckPasswordHash compares the given password with the stored hash.
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))

	return err == nil
}

// GenerateCredential returns a random password for provisioned accounts.
// The plaintext is only ever handed to the welcome mail; storage always
// goes through HashPassword.
func GenerateCredential() (string, error) {
	b := make([]byte, generatedCredentialBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// IsActive reports whether the member is active and not soft-deleted.
func (m *Member) IsActive() bool {
	return m.Status == STATUS_ACTIVE && !m.DeletedAt.Valid
}

// CheckPassword verifies if the provided password matches the member's stored password
func (m *Member) CheckPassword(password string) bool {
	return CheckPasswordHash(password, m.Password)
}

// SetPassword hashes and sets a new password for the member
func (m *Member) SetPassword(password string) error {
	hashedPassword, err := HashPassword(password)
	if err != nil {
		return err
	}
	m.Password = hashedPassword
	return nil
}
