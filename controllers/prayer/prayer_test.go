package prayerController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"os"
	"testing"

	"reinvent/config"
	"reinvent/database"
	"reinvent/middleware"
	"reinvent/models"
	"reinvent/routers/prayerRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var app *fiber.App

func TestMain(m *testing.M) {
	config.AppConfig = &config.Config{JWTKey: "test-secret", SaltRound: 4}

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		panic(err)
	}
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	if err := database.Migrate(db); err != nil {
		panic(err)
	}
	database.Database = database.DbInstance{Db: db}

	app = fiber.New()
	prayerRoutes.SetupPrayerRoutes(app)

	os.Exit(m.Run())
}

func createUser(t *testing.T, name, email string) (models.User, string) {
	user := models.User{FullName: name, Email: email, Password: "x", Role: models.RoleMember, IsActive: true}
	assert.NoError(t, database.Database.Db.Create(&user).Error)

	token, err := middleware.GenerateJWT(user.ID, user.FullName, user.Role, user.Email)
	assert.NoError(t, err)
	return user, token
}

func TestToggleSupportTwiceRestoresState(t *testing.T) {
	author, _ := createUser(t, "Grace Author", "grace.author@example.com")
	_, supporterToken := createUser(t, "Paul Supporter", "paul.supporter@example.com")

	request := models.PrayerRequest{UserID: author.ID, Title: "Healing", Category: "health", IsActive: true}
	assert.NoError(t, database.Database.Db.Create(&request).Error)

	path := fmt.Sprintf("/prayer/%d/support", request.ID)

	// First toggle: supporting
	req := httptest.NewRequest("POST", path, nil)
	req.Header.Set("Authorization", "Bearer "+supporterToken)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)
	data := result["data"].(map[string]interface{})
	assert.Equal(t, true, data["supporting"])
	assert.Equal(t, float64(1), data["supporter_count"])

	// Second toggle: back to not supporting
	req = httptest.NewRequest("POST", path, nil)
	req.Header.Set("Authorization", "Bearer "+supporterToken)
	resp, err = app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	json.NewDecoder(resp.Body).Decode(&result)
	data = result["data"].(map[string]interface{})
	assert.Equal(t, false, data["supporting"])
	assert.Equal(t, float64(0), data["supporter_count"])

	var count int64
	database.Database.Db.Model(&models.PrayerSupporter{}).Where("prayer_request_id = ?", request.ID).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestAddResponseRejectsWhitespace(t *testing.T) {
	author, token := createUser(t, "Ruth Writer", "ruth.writer@example.com")

	request := models.PrayerRequest{UserID: author.ID, Title: "Guidance", Category: "guidance", IsActive: true}
	assert.NoError(t, database.Database.Db.Create(&request).Error)

	body, _ := json.Marshal(map[string]interface{}{"content": "   \n\t "})
	req := httptest.NewRequest("POST", fmt.Sprintf("/prayer/%d/response", request.ID), bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	var count int64
	database.Database.Db.Model(&models.PrayerResponse{}).Where("prayer_request_id = ?", request.ID).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestAddResponseNotifiesAuthor(t *testing.T) {
	author, _ := createUser(t, "Mary Asks", "mary.asks@example.com")
	responder, responderToken := createUser(t, "John Replies", "john.replies@example.com")

	request := models.PrayerRequest{UserID: author.ID, Title: "New Job", Category: "work", IsActive: true}
	assert.NoError(t, database.Database.Db.Create(&request).Error)

	body, _ := json.Marshal(map[string]interface{}{"content": "Praying for you!"})
	req := httptest.NewRequest("POST", fmt.Sprintf("/prayer/%d/response", request.ID), bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+responderToken)

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var responses []models.PrayerResponse
	database.Database.Db.Where("prayer_request_id = ?", request.ID).Find(&responses)
	assert.Len(t, responses, 1)
	assert.Equal(t, responder.ID, responses[0].UserID)
	assert.Equal(t, "Praying for you!", responses[0].Content)

	var notif models.Notification
	err = database.Database.Db.Where("user_id = ? AND type = ?", author.ID, models.NotificationPrayerResponse).First(&notif).Error
	assert.NoError(t, err)
	assert.False(t, notif.IsRead)
}

func TestAnonymousRequestMasksAuthor(t *testing.T) {
	author, token := createUser(t, "Hidden Name", "hidden.name@example.com")

	request := models.PrayerRequest{UserID: author.ID, Title: "Private Matter", Category: "general", IsAnonymous: true, IsActive: true}
	assert.NoError(t, database.Database.Db.Create(&request).Error)

	req := httptest.NewRequest("GET", "/prayer/list", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)

	found := false
	for _, item := range result["data"].([]interface{}) {
		entry := item.(map[string]interface{})
		if entry["title"] == "Private Matter" {
			found = true
			assert.Equal(t, "Anonymous", entry["author_name"])
		}
	}
	assert.True(t, found)
}

func TestDeactivateRequestOnlyByAuthor(t *testing.T) {
	author, authorToken := createUser(t, "Owner User", "owner.user@example.com")
	_, strangerToken := createUser(t, "Other User", "other.user@example.com")

	request := models.PrayerRequest{UserID: author.ID, Title: "Family Peace", Category: "family", IsActive: true}
	assert.NoError(t, database.Database.Db.Create(&request).Error)

	path := fmt.Sprintf("/prayer/%d", request.ID)

	req := httptest.NewRequest("DELETE", path, nil)
	req.Header.Set("Authorization", "Bearer "+strangerToken)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	req = httptest.NewRequest("DELETE", path, nil)
	req.Header.Set("Authorization", "Bearer "+authorToken)
	resp, err = app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var reloaded models.PrayerRequest
	database.Database.Db.First(&reloaded, request.ID)
	assert.False(t, reloaded.IsActive)
}
