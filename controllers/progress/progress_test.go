package progressController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"reinvent/config"
	"reinvent/database"
	"reinvent/middleware"
	"reinvent/models"
	"reinvent/routers/courseRoutes"

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
	courseRoutes.SetupCourseRoutes(app)

	os.Exit(m.Run())
}

// seedCourse creates a user enrolled in a fresh program with the given number
// of modules and returns the user's token alongside the records.
func seedCourse(t *testing.T, email string, moduleCount int) (models.User, string, models.Program, []models.ProgramModule) {
	user := models.User{FullName: "Course Taker", Email: email, Password: "x", Role: models.RoleMember, IsActive: true}
	assert.NoError(t, database.Database.Db.Create(&user).Error)

	token, err := middleware.GenerateJWT(user.ID, user.FullName, user.Role, user.Email)
	assert.NoError(t, err)

	program := models.Program{Name: "Test Program " + email, Slug: "test-program-" + email, Price: 99, IsActive: true}
	assert.NoError(t, database.Database.Db.Create(&program).Error)

	modules := make([]models.ProgramModule, moduleCount)
	for i := 0; i < moduleCount; i++ {
		modules[i] = models.ProgramModule{
			ProgramID:            program.ID,
			Title:                fmt.Sprintf("Module %d", i+1),
			OrderIndex:           i,
			VideoDurationSeconds: 600,
		}
		assert.NoError(t, database.Database.Db.Create(&modules[i]).Error)
	}

	enrollment := models.Enrollment{
		UserID:        user.ID,
		ProgramID:     program.ID,
		PaymentAmount: program.Price,
		PaymentStatus: models.PaymentPaid,
		Status:        models.EnrollmentActive,
		EnrolledAt:    time.Now(),
	}
	assert.NoError(t, database.Database.Db.Create(&enrollment).Error)

	return user, token, program, modules
}

func postJSON(t *testing.T, path, token string, body interface{}) (int, map[string]interface{}) {
	jsonData, _ := json.Marshal(body)
	req := httptest.NewRequest("POST", path, bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	assert.NoError(t, err)

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)
	return resp.StatusCode, result
}

func TestVideoProgressThrottle(t *testing.T) {
	user, token, _, modules := seedCourse(t, "throttle@example.com", 1)
	path := fmt.Sprintf("/course/module/%d/video", modules[0].ID)

	// Position 29: echoed back but not written
	status, result := postJSON(t, path, token, map[string]interface{}{
		"current_time_seconds": 29.0,
		"duration_seconds":     600.0,
	})
	assert.Equal(t, fiber.StatusOK, status)
	data := result["data"].(map[string]interface{})
	assert.Equal(t, false, data["persisted"])
	record := data["record"].(map[string]interface{})
	assert.Equal(t, 29.0, record["video_progress_seconds"])

	var stored models.UserModuleProgress
	err := database.Database.Db.Where("user_id = ? AND module_id = ?", user.ID, modules[0].ID).First(&stored).Error
	assert.Error(t, err) // nothing written yet

	// Position 30: written
	status, result = postJSON(t, path, token, map[string]interface{}{
		"current_time_seconds": 30.0,
		"duration_seconds":     600.0,
	})
	assert.Equal(t, fiber.StatusOK, status)
	data = result["data"].(map[string]interface{})
	assert.Equal(t, true, data["persisted"])

	err = database.Database.Db.Where("user_id = ? AND module_id = ?", user.ID, modules[0].ID).First(&stored).Error
	assert.NoError(t, err)
	assert.Equal(t, 30.0, stored.VideoPositionSeconds)

	// Position 45.5 after that: echoed but the stored row still says 30
	status, result = postJSON(t, path, token, map[string]interface{}{
		"current_time_seconds": 45.5,
		"duration_seconds":     600.0,
	})
	assert.Equal(t, fiber.StatusOK, status)
	data = result["data"].(map[string]interface{})
	assert.Equal(t, false, data["persisted"])
	record = data["record"].(map[string]interface{})
	assert.Equal(t, 45.5, record["video_progress_seconds"])

	database.Database.Db.Where("user_id = ? AND module_id = ?", user.ID, modules[0].ID).First(&stored)
	assert.Equal(t, 30.0, stored.VideoPositionSeconds)
}

func TestMarkSectionsCompletesModule(t *testing.T) {
	_, token, _, modules := seedCourse(t, "sections@example.com", 1)
	path := fmt.Sprintf("/course/module/%d/section", modules[0].ID)

	status, result := postJSON(t, path, token, map[string]string{"section": "video"})
	assert.Equal(t, fiber.StatusOK, status)
	data := result["data"].(map[string]interface{})
	assert.Equal(t, false, data["module_completed"])
	assert.Equal(t, float64(33), data["module_percentage"])

	status, result = postJSON(t, path, token, map[string]string{"section": "reading"})
	assert.Equal(t, fiber.StatusOK, status)
	data = result["data"].(map[string]interface{})
	assert.Equal(t, false, data["module_completed"])
	assert.Equal(t, float64(67), data["module_percentage"])

	status, result = postJSON(t, path, token, map[string]string{"section": "assignment"})
	assert.Equal(t, fiber.StatusOK, status)
	data = result["data"].(map[string]interface{})
	assert.Equal(t, true, data["module_completed"])
	assert.Equal(t, float64(100), data["module_percentage"])
	assert.Equal(t, float64(100), data["overall_progress"])

	// Re-marking a finished section never re-fires the completion
	status, result = postJSON(t, path, token, map[string]string{"section": "assignment"})
	assert.Equal(t, fiber.StatusOK, status)
	data = result["data"].(map[string]interface{})
	assert.Equal(t, false, data["module_completed"])
	assert.Equal(t, float64(100), data["module_percentage"])
}

func TestInvalidSectionRejected(t *testing.T) {
	_, token, _, modules := seedCourse(t, "badsection@example.com", 1)
	path := fmt.Sprintf("/course/module/%d/section", modules[0].ID)

	status, _ := postJSON(t, path, token, map[string]string{"section": "quiz"})
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
}

func TestEnrollmentProgressIsMeanOfModules(t *testing.T) {
	user, token, program, modules := seedCourse(t, "overall@example.com", 2)

	// Finish all of module 1
	path := fmt.Sprintf("/course/module/%d/section", modules[0].ID)
	for _, section := range []string{"video", "reading", "assignment"} {
		status, _ := postJSON(t, path, token, map[string]string{"section": section})
		assert.Equal(t, fiber.StatusOK, status)
	}

	// One section of module 2: overall = (100 + 33) / 2 = 67
	path = fmt.Sprintf("/course/module/%d/section", modules[1].ID)
	status, result := postJSON(t, path, token, map[string]string{"section": "video"})
	assert.Equal(t, fiber.StatusOK, status)
	data := result["data"].(map[string]interface{})
	assert.Equal(t, float64(67), data["overall_progress"])

	var enrollment models.Enrollment
	assert.NoError(t, database.Database.Db.
		Where("user_id = ? AND program_id = ?", user.ID, program.ID).
		First(&enrollment).Error)
	assert.Equal(t, 67, enrollment.Progress)
	assert.Equal(t, models.EnrollmentActive, enrollment.Status)
}

func TestCompletingAllModulesCompletesEnrollment(t *testing.T) {
	user, token, program, modules := seedCourse(t, "finish@example.com", 1)

	path := fmt.Sprintf("/course/module/%d/section", modules[0].ID)
	for _, section := range []string{"video", "reading", "assignment"} {
		status, _ := postJSON(t, path, token, map[string]string{"section": section})
		assert.Equal(t, fiber.StatusOK, status)
	}

	var enrollment models.Enrollment
	assert.NoError(t, database.Database.Db.
		Where("user_id = ? AND program_id = ?", user.ID, program.ID).
		First(&enrollment).Error)
	assert.Equal(t, 100, enrollment.Progress)
	assert.Equal(t, models.EnrollmentCompleted, enrollment.Status)
	assert.NotNil(t, enrollment.CompletedAt)
}

func TestGetModuleProgress(t *testing.T) {
	_, token, program, modules := seedCourse(t, "fetch@example.com", 2)

	// One section of the first module only
	path := fmt.Sprintf("/course/module/%d/section", modules[0].ID)
	status, _ := postJSON(t, path, token, map[string]string{"section": "reading"})
	assert.Equal(t, fiber.StatusOK, status)

	req := httptest.NewRequest("GET", fmt.Sprintf("/course/%d/progress", program.ID), nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)
	data := result["data"].(map[string]interface{})

	moduleList := data["modules"].([]interface{})
	assert.Len(t, moduleList, 2)

	first := moduleList[0].(map[string]interface{})
	assert.Equal(t, float64(33), first["percentage"])
	assert.NotNil(t, first["record"])

	second := moduleList[1].(map[string]interface{})
	assert.Equal(t, float64(0), second["percentage"])
	assert.Nil(t, second["record"])

	// (33 + 0) / 2 = 17
	assert.Equal(t, float64(17), data["overall_progress"])
}
