package enrollmentController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"reinvent/config"
	"reinvent/database"
	"reinvent/middleware"
	"reinvent/models"
	"reinvent/routers/enrollmentRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var app *fiber.App

func TestMain(m *testing.M) {
	config.AppConfig = &config.Config{
		JWTKey:          "test-secret",
		SaltRound:       4,
		PaymentProvider: "http",
		FrontendBaseURL: "http://localhost:5173",
	}

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
	enrollmentRoutes.SetupEnrollmentRoutes(app)

	os.Exit(m.Run())
}

func createUser(t *testing.T, email string) (models.User, string) {
	user := models.User{FullName: "Enroll Tester", Email: email, Password: "x", Role: models.RoleMember, IsActive: true}
	assert.NoError(t, database.Database.Db.Create(&user).Error)

	token, err := middleware.GenerateJWT(user.ID, user.FullName, user.Role, user.Email)
	assert.NoError(t, err)
	return user, token
}

func createProgram(t *testing.T, slug string) models.Program {
	program := models.Program{Name: "Program " + slug, Slug: slug, Price: 149, IsActive: true}
	assert.NoError(t, database.Database.Db.Create(&program).Error)
	return program
}

func confirm(t *testing.T, reference string) (int, map[string]interface{}) {
	body, _ := json.Marshal(map[string]string{"reference": reference})
	req := httptest.NewRequest("POST", "/enrollment/confirm", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)
	return resp.StatusCode, result
}

func TestConfirmPaymentReplayIsIdempotent(t *testing.T) {
	user, _ := createUser(t, "replay@example.com")
	program := createProgram(t, "replay-program")

	enrollment := models.Enrollment{
		UserID:        user.ID,
		ProgramID:     program.ID,
		PaymentAmount: program.Price,
		PaymentStatus: models.PaymentPending,
		Status:        models.EnrollmentActive,
		CheckoutRef:   "ref-replay-1",
		EnrolledAt:    time.Now(),
	}
	assert.NoError(t, database.Database.Db.Create(&enrollment).Error)

	status, result := confirm(t, "ref-replay-1")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Payment confirmed!", result["message"])

	// Webhook retries replay the same reference; the second call is a no-op
	status, result = confirm(t, "ref-replay-1")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Payment already confirmed!", result["message"])

	var payments int64
	database.Database.Db.Model(&models.Payment{}).
		Where("enrollment_id = ?", enrollment.ID).
		Count(&payments)
	assert.Equal(t, int64(1), payments)

	var reloaded models.Enrollment
	database.Database.Db.First(&reloaded, enrollment.ID)
	assert.Equal(t, models.PaymentPaid, reloaded.PaymentStatus)
}

func TestConfirmPaymentUnknownReference(t *testing.T) {
	status, _ := confirm(t, "ref-does-not-exist")
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestCheckoutSurfacesProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"Amount below provider minimum."}`))
	}))
	defer server.Close()
	config.AppConfig.CheckoutApiURL = server.URL

	_, token := createUser(t, "declined@example.com")
	program := createProgram(t, "declined-program")

	req := httptest.NewRequest("POST", fmt.Sprintf("/enrollment/checkout/%d", program.ID), nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadGateway, resp.StatusCode)

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)
	assert.Equal(t, "Amount below provider minimum.", result["message"])
}

func TestCheckoutHandsOffToProvider(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"checkout_url":"https://pay.example.com/cs_900","reference":"cs_900"}`))
	}))
	defer server.Close()
	config.AppConfig.CheckoutApiURL = server.URL

	user, token := createUser(t, "handoff@example.com")
	program := createProgram(t, "handoff-program")

	req := httptest.NewRequest("POST", fmt.Sprintf("/enrollment/checkout/%d", program.ID), nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)
	data := result["data"].(map[string]interface{})
	assert.Equal(t, "https://pay.example.com/cs_900", data["checkout_url"])
	assert.Equal(t, "cs_900", data["reference"])

	var enrollment models.Enrollment
	assert.NoError(t, database.Database.Db.
		Where("user_id = ? AND program_id = ?", user.ID, program.ID).
		First(&enrollment).Error)
	assert.Equal(t, models.PaymentPending, enrollment.PaymentStatus)
	assert.Equal(t, "cs_900", enrollment.CheckoutRef)
}
