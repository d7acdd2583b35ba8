package mail

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWelcomeBody(t *testing.T) {
	body := WelcomeBody("Ana Souza", "ana@example.com", "generated-credential")

	assert.Contains(t, body, "Ana Souza")
	assert.Contains(t, body, "ana@example.com")
	assert.Contains(t, body, "generated-credential")
	assert.NotEmpty(t, WelcomeSubject())
}
