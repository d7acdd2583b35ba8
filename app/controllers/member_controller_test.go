package controllers

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"github.com/lucasfabbrim/noteplanning-backend-sub000/app/models"
)

func newMemberTestApp(members *memoryMemberRepo, purchases *memoryPurchaseRepo) *fiber.App {
	controller := NewMemberController(members, purchases)
	app := fiber.New()
	app.Get("/api/v1/members", controller.HandleListMembers)
	app.Get("/api/v1/members/:email", controller.HandleGetMember)
	app.Get("/api/v1/members/:email/purchases", controller.HandleListMemberPurchases)
	return app
}

func getJSON(t *testing.T, app *fiber.App, target string) (int, map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest("GET", target, nil)
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(raw, &body))
	return resp.StatusCode, body
}

func TestListMembers(t *testing.T) {
	members := newMemoryMemberRepo()
	for _, email := range []string{"a@x.com", "b@x.com"} {
		m, err := models.NewMember("Member", email, "some-password")
		assert.NoError(t, err)
		assert.NoError(t, members.Create(m))
	}
	app := newMemberTestApp(members, &memoryPurchaseRepo{})

	status, body := getJSON(t, app, "/api/v1/members")
	assert.Equal(t, fiber.StatusOK, status)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(2), data["total"])
	assert.Len(t, data["members"], 2)
}

func TestGetMember(t *testing.T) {
	members := newMemoryMemberRepo()
	m, err := models.NewMember("Ana Souza", "ana@example.com", "some-password")
	assert.NoError(t, err)
	assert.NoError(t, members.Create(m))
	app := newMemberTestApp(members, &memoryPurchaseRepo{})

	status, body := getJSON(t, app, "/api/v1/members/ana@example.com")
	assert.Equal(t, fiber.StatusOK, status)
	data := body["data"].(map[string]interface{})
	member := data["member"].(map[string]interface{})
	assert.Equal(t, "ana@example.com", member["email"])

	status, body = getJSON(t, app, "/api/v1/members/missing@example.com")
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "Member not found", body["message"])
}

func TestListMemberPurchases(t *testing.T) {
	members := newMemoryMemberRepo()
	purchases := &memoryPurchaseRepo{}
	m, err := models.NewMember("Ana Souza", "ana@example.com", "some-password")
	assert.NoError(t, err)
	assert.NoError(t, members.Create(m))

	for i := 0; i < 2; i++ {
		assert.NoError(t, purchases.Create(&models.Purchase{
			MemberID:      m.ID,
			Amount:        100,
			PaymentAmount: 97.5,
			Event:         "payment.completed",
			Status:        models.PURCHASE_STATUS_COMPLETED,
		}))
	}
	app := newMemberTestApp(members, purchases)

	status, body := getJSON(t, app, "/api/v1/members/ana@example.com/purchases")
	assert.Equal(t, fiber.StatusOK, status)
	data := body["data"].(map[string]interface{})
	assert.Len(t, data["purchases"], 2)
}
