package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestNewMember(t *testing.T) {
	m, err := NewMember("Ana Souza", "ana@example.com", "some-password")
	assert.NoError(t, err)
	assert.Equal(t, ROLE_MEMBER, m.Role)
	assert.Equal(t, STATUS_ACTIVE, m.Status)
	assert.NotEqual(t, "some-password", m.Password)
	assert.True(t, m.CheckPassword("some-password"))
	assert.False(t, m.CheckPassword("wrong-password"))
}

func TestNewMember_Invalid(t *testing.T) {
	_, err := NewMember("Ana", "not-an-email", "some-password")
	assert.Error(t, err)

	_, err = NewMember("", "ana@example.com", "some-password")
	assert.Error(t, err)
}

func TestGenerateCredential(t *testing.T) {
	a, err := GenerateCredential()
	assert.NoError(t, err)
	b, err := GenerateCredential()
	assert.NoError(t, err)

	assert.NotEmpty(t, a)
	assert.GreaterOrEqual(t, len(a), 24)
	assert.NotEqual(t, a, b)
}

func TestMemberIsActive(t *testing.T) {
	m := &Member{Status: STATUS_ACTIVE}
	assert.True(t, m.IsActive())

	m.Status = STATUS_INACTIVE
	assert.False(t, m.IsActive())

	m.Status = STATUS_ACTIVE
	m.DeletedAt = gorm.DeletedAt{Valid: true}
	assert.False(t, m.IsActive())
}
