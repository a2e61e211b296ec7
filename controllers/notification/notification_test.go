package notificationController_test

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"reinvent/config"
	"reinvent/database"
	"reinvent/middleware"
	"reinvent/models"
	"reinvent/routers/notificationRoutes"

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
	notificationRoutes.SetupNotificationRoutes(app)

	os.Exit(m.Run())
}

func createUser(t *testing.T, email string) (models.User, string) {
	user := models.User{FullName: "Test User", Email: email, Password: "x", Role: models.RoleMember, IsActive: true}
	assert.NoError(t, database.Database.Db.Create(&user).Error)

	token, err := middleware.GenerateJWT(user.ID, user.FullName, user.Role, user.Email)
	assert.NoError(t, err)
	return user, token
}

func seedNotifications(t *testing.T, userID uint, unread, read int) {
	for i := 0; i < unread; i++ {
		n := models.Notification{UserID: userID, Type: models.NotificationSystem, Title: fmt.Sprintf("unread %d", i)}
		assert.NoError(t, database.Database.Db.Create(&n).Error)
	}
	for i := 0; i < read; i++ {
		n := models.Notification{UserID: userID, Type: models.NotificationSystem, Title: fmt.Sprintf("read %d", i)}
		n.MarkRead(time.Now())
		assert.NoError(t, database.Database.Db.Create(&n).Error)
	}
}

func getJSON(t *testing.T, path, token string) (int, map[string]interface{}) {
	req := httptest.NewRequest("GET", path, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	assert.NoError(t, err)

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)
	return resp.StatusCode, result
}

func TestListAndFilter(t *testing.T) {
	user, token := createUser(t, "inbox.list@example.com")
	seedNotifications(t, user.ID, 2, 1)

	status, result := getJSON(t, "/notification/list", token)
	assert.Equal(t, fiber.StatusOK, status)

	data := result["data"].(map[string]interface{})
	assert.Len(t, data["notifications"].([]interface{}), 3)
	assert.Equal(t, float64(2), data["unread_count"])

	status, result = getJSON(t, "/notification/list?filter=unread", token)
	assert.Equal(t, fiber.StatusOK, status)
	data = result["data"].(map[string]interface{})
	assert.Len(t, data["notifications"].([]interface{}), 2)
	// Unread count stays the same whatever the filter
	assert.Equal(t, float64(2), data["unread_count"])

	status, _ = getJSON(t, "/notification/list?filter=bogus", token)
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
}

func TestMarkReadIsIdempotent(t *testing.T) {
	user, token := createUser(t, "inbox.markread@example.com")

	n := models.Notification{UserID: user.ID, Type: models.NotificationAchievement, Title: "Module Completed"}
	assert.NoError(t, database.Database.Db.Create(&n).Error)

	path := fmt.Sprintf("/notification/%d/read", n.ID)

	req := httptest.NewRequest("POST", path, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var first models.Notification
	database.Database.Db.First(&first, n.ID)
	assert.True(t, first.IsRead)
	assert.NotNil(t, first.ReadAt)

	// Second call changes nothing, including ReadAt
	req = httptest.NewRequest("POST", path, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var second models.Notification
	database.Database.Db.First(&second, n.ID)
	assert.Equal(t, first.ReadAt.Unix(), second.ReadAt.Unix())

	status, result := getJSON(t, "/notification/unread-count", token)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, float64(0), result["data"].(map[string]interface{})["unread_count"])
}

func TestMarkAllRead(t *testing.T) {
	user, token := createUser(t, "inbox.readall@example.com")
	seedNotifications(t, user.ID, 3, 0)

	req := httptest.NewRequest("POST", "/notification/read-all", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var count int64
	database.Database.Db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", user.ID, false).
		Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestDeleteReturnsRecountedUnread(t *testing.T) {
	user, token := createUser(t, "inbox.delete@example.com")
	seedNotifications(t, user.ID, 2, 0)

	var target models.Notification
	database.Database.Db.Where("user_id = ?", user.ID).First(&target)

	req := httptest.NewRequest("DELETE", fmt.Sprintf("/notification/%d", target.ID), nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)
	assert.Equal(t, float64(1), result["data"].(map[string]interface{})["unread_count"])
}

func TestNotificationsAreScopedToOwner(t *testing.T) {
	owner, _ := createUser(t, "inbox.owner@example.com")
	_, strangerToken := createUser(t, "inbox.stranger@example.com")

	n := models.Notification{UserID: owner.ID, Type: models.NotificationSystem, Title: "private"}
	assert.NoError(t, database.Database.Db.Create(&n).Error)

	req := httptest.NewRequest("POST", fmt.Sprintf("/notification/%d/read", n.ID), nil)
	req.Header.Set("Authorization", "Bearer "+strangerToken)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestUpdatePreferencesPatchesOnlySentFields(t *testing.T) {
	_, token := createUser(t, "inbox.prefs@example.com")

	body := `{"session_reminders": false}`
	req := httptest.NewRequest("PUT", "/notification/preferences", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	status, result := getJSON(t, "/notification/preferences", token)
	assert.Equal(t, fiber.StatusOK, status)
	data := result["data"].(map[string]interface{})
	assert.Equal(t, false, data["session_reminders"])
	assert.Equal(t, true, data["email_enabled"])
}
