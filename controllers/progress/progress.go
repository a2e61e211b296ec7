package progressController

import (
	"log"
	"time"

	"reinvent/database"
	"reinvent/middleware"
	"reinvent/models"
	"reinvent/utils"

	"github.com/gofiber/fiber/v2"
)

// GetModuleProgress returns the user's progress rows for every module of a
// program, plus the derived per-module and overall percentages
func GetModuleProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	programID := c.Locals("programID").(int)

	var modules []models.ProgramModule
	if err := database.Database.Db.
		Where("program_id = ? AND is_deleted = ?", programID, false).
		Order("order_index asc").
		Find(&modules).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch modules!", nil)
	}

	moduleIDs := make([]uint, len(modules))
	for i, m := range modules {
		moduleIDs[i] = m.ID
	}

	var records []models.UserModuleProgress
	if len(moduleIDs) > 0 {
		database.Database.Db.
			Where("user_id = ? AND module_id IN ?", userID, moduleIDs).
			Find(&records)
	}

	progressByModule := make(map[uint]*models.UserModuleProgress, len(records))
	for i := range records {
		progressByModule[records[i].ModuleID] = &records[i]
	}

	type moduleProgress struct {
		ModuleID   uint                       `json:"module_id"`
		Percentage int                        `json:"percentage"`
		Record     *models.UserModuleProgress `json:"record"`
	}

	result := make([]moduleProgress, len(modules))
	for i, m := range modules {
		entry := moduleProgress{ModuleID: m.ID}
		if record, ok := progressByModule[m.ID]; ok {
			entry.Percentage = record.Percentage()
			entry.Record = record
		}
		result[i] = entry
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", fiber.Map{
		"modules":          result,
		"overall_progress": models.EnrollmentPercentage(moduleIDs, progressByModule),
	})
}

// RecordVideoProgress stores the current playback position. Writes are
// throttled to every 30th playback second; the echoed record always carries
// the live position so the player stays accurate between writes.
func RecordVideoProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	moduleID := c.Locals("moduleID").(int)

	reqData, ok := c.Locals("validatedVideoProgress").(*struct {
		CurrentTimeSeconds float64 `json:"current_time_seconds"`
		DurationSeconds    float64 `json:"duration_seconds"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	var module models.ProgramModule
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", moduleID, false).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	record := models.UserModuleProgress{
		UserID:   userID,
		ModuleID: uint(moduleID),
	}
	database.Database.Db.Where("user_id = ? AND module_id = ?", userID, moduleID).First(&record)

	// Scrubbing backward is legal; the position simply follows the player
	record.VideoPositionSeconds = reqData.CurrentTimeSeconds
	record.VideoDurationSeconds = reqData.DurationSeconds
	record.LastAccessedAt = time.Now()

	persisted := models.ShouldPersistVideoPosition(reqData.CurrentTimeSeconds)
	if persisted {
		if err := database.Database.Db.Save(&record).Error; err != nil {
			// The live position is still reported back; only the write failed
			return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Failed to save video progress!", record)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Video progress recorded!", fiber.Map{
		"record":    record,
		"persisted": persisted,
	})
}

// MarkSectionComplete adds a section to the module's completed set. Marking
// the same section twice is a no-op. The call that completes the final
// required section stamps the completion time and reports the one-shot
// transition; enrollment progress is recomputed as the mean of module
// percentages.
func MarkSectionComplete(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	moduleID := c.Locals("moduleID").(int)
	section := c.Locals("section").(string)

	var module models.ProgramModule
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", moduleID, false).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	record := models.UserModuleProgress{
		UserID:   userID,
		ModuleID: uint(moduleID),
	}
	database.Database.Db.Where("user_id = ? AND module_id = ?", userID, moduleID).First(&record)

	justCompleted := record.MarkSection(section, time.Now())

	if err := database.Database.Db.Save(&record).Error; err != nil {
		// Optimistic update is kept; the caller sees both the failure and
		// the state it will reconcile against on next fetch
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Failed to save section progress!", record)
	}

	overall := updateEnrollmentProgress(userID, module.ProgramID)

	if justCompleted {
		utils.Notify(userID, models.NotificationAchievement,
			"Module Completed",
			"You finished \""+module.Title+"\". Keep going!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Section marked complete!", fiber.Map{
		"record":            record,
		"module_completed":  justCompleted,
		"module_percentage": record.Percentage(),
		"overall_progress":  overall,
	})
}

// updateEnrollmentProgress recomputes an enrollment's percentage as the mean
// of its program's module percentages and flips the enrollment to completed
// at 100
func updateEnrollmentProgress(userID uint, programID uint) int {
	db := database.Database.Db

	var moduleIDs []uint
	db.Model(&models.ProgramModule{}).
		Where("program_id = ? AND is_deleted = ?", programID, false).
		Pluck("id", &moduleIDs)

	var records []models.UserModuleProgress
	if len(moduleIDs) > 0 {
		db.Where("user_id = ? AND module_id IN ?", userID, moduleIDs).Find(&records)
	}

	progressByModule := make(map[uint]*models.UserModuleProgress, len(records))
	for i := range records {
		progressByModule[records[i].ModuleID] = &records[i]
	}

	overall := models.EnrollmentPercentage(moduleIDs, progressByModule)

	var enrollment models.Enrollment
	if err := db.
		Where("user_id = ? AND program_id = ? AND status <> ?", userID, programID, models.EnrollmentCancelled).
		First(&enrollment).Error; err != nil {
		return overall
	}

	enrollment.Progress = overall
	if overall >= 100 && enrollment.Status != models.EnrollmentCompleted {
		enrollment.Status = models.EnrollmentCompleted
		completedAt := time.Now()
		enrollment.CompletedAt = &completedAt

		var program models.Program
		if err := db.First(&program, programID).Error; err == nil {
			utils.Notify(userID, models.NotificationCourseProgress,
				"Program Completed",
				"Congratulations! You completed "+program.Name+".")
		}
	}
	// The section mark itself already succeeded; a failed enrollment write is
	// logged and reconciled on the next mark or fetch
	if err := db.Save(&enrollment).Error; err != nil {
		log.Printf("Error updating enrollment %d progress: %v", enrollment.ID, err)
	}

	return overall
}
