package prayerController

import (
	"reinvent/database"
	"reinvent/middleware"
	"reinvent/models"
	"reinvent/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetPrayerRequests lists active requests newest first, with responses,
// supporters and display names. Anonymous authors stay anonymous.
func GetPrayerRequests(c *fiber.Ctx) error {
	var requests []models.PrayerRequest
	if err := database.Database.Db.
		Where("is_active = ?", true).
		Preload("Responses", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at asc")
		}).
		Preload("Supporters").
		Order("created_at desc").
		Find(&requests).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch prayer requests!", nil)
	}

	fillAuthorNames(requests)

	type requestWithCount struct {
		models.PrayerRequest
		SupporterCount int `json:"supporter_count"`
	}

	result := make([]requestWithCount, len(requests))
	for i, request := range requests {
		result[i] = requestWithCount{
			PrayerRequest:  request,
			SupporterCount: len(request.Supporters),
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Prayer requests fetched successfully!", result)
}

// fillAuthorNames resolves display names for requests and responses in one
// user query. Anonymous requests show "Anonymous" regardless of author.
func fillAuthorNames(requests []models.PrayerRequest) {
	userIDs := make([]uint, 0)
	seen := make(map[uint]bool)
	for _, request := range requests {
		if !seen[request.UserID] {
			seen[request.UserID] = true
			userIDs = append(userIDs, request.UserID)
		}
		for _, response := range request.Responses {
			if !seen[response.UserID] {
				seen[response.UserID] = true
				userIDs = append(userIDs, response.UserID)
			}
		}
	}
	if len(userIDs) == 0 {
		return
	}

	var users []models.User
	database.Database.Db.Where("id IN ?", userIDs).Find(&users)
	names := make(map[uint]string, len(users))
	for _, user := range users {
		names[user.ID] = user.FullName
	}

	for i := range requests {
		if requests[i].IsAnonymous {
			requests[i].AuthorName = "Anonymous"
		} else {
			requests[i].AuthorName = names[requests[i].UserID]
		}
		for j := range requests[i].Responses {
			requests[i].Responses[j].AuthorName = names[requests[i].Responses[j].UserID]
		}
	}
}

// CreatePrayerRequest posts a new request to the prayer wall
func CreatePrayerRequest(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedPrayerRequest").(*struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Category    string `json:"category"`
		IsAnonymous bool   `json:"is_anonymous"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	request := models.PrayerRequest{
		UserID:      userID,
		Title:       reqData.Title,
		Description: reqData.Description,
		Category:    reqData.Category,
		IsAnonymous: reqData.IsAnonymous,
		IsActive:    true,
	}

	if err := database.Database.Db.Create(&request).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create prayer request!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Prayer request posted!", request)
}

// AddResponse appends a response to a prayer request. Responses are never
// deduplicated; a user may respond as often as they like.
func AddResponse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	requestID := c.Locals("requestID").(int)
	content := c.Locals("responseContent").(string)

	var request models.PrayerRequest
	if err := database.Database.Db.Where("id = ? AND is_active = ?", requestID, true).First(&request).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Prayer request not found!", nil)
	}

	response := models.PrayerResponse{
		PrayerRequestID: request.ID,
		UserID:          userID,
		Content:         content,
	}

	if err := database.Database.Db.Create(&response).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to add response!", nil)
	}

	// Tell the author someone responded, unless they responded themselves or
	// asked to stay anonymous
	if request.UserID != userID && !request.IsAnonymous {
		utils.Notify(request.UserID, models.NotificationPrayerResponse,
			"New Prayer Response",
			"Someone responded to your prayer request \""+request.Title+"\".")
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Response added!", response)
}

// ToggleSupport flips the user's membership in the request's supporter set.
// Each call changes membership exactly once; two calls in a row restore the
// original state.
func ToggleSupport(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	requestID := c.Locals("requestID").(int)

	var request models.PrayerRequest
	if err := database.Database.Db.Where("id = ? AND is_active = ?", requestID, true).First(&request).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Prayer request not found!", nil)
	}

	db := database.Database.Db
	supporting := false

	var existing models.PrayerSupporter
	if err := db.Where("prayer_request_id = ? AND user_id = ?", request.ID, userID).First(&existing).Error; err == nil {
		// Withdraw support
		if err := db.Unscoped().Delete(&existing).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update support!", nil)
		}
	} else {
		// Give support
		supporter := models.PrayerSupporter{
			PrayerRequestID: request.ID,
			UserID:          userID,
		}
		if err := db.Create(&supporter).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update support!", nil)
		}
		supporting = true
	}

	var count int64
	db.Model(&models.PrayerSupporter{}).Where("prayer_request_id = ?", request.ID).Count(&count)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Support updated!", fiber.Map{
		"supporting":      supporting,
		"supporter_count": count,
	})
}

// DeactivateRequest takes a request off the wall; the record is kept
func DeactivateRequest(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	requestID := c.Locals("requestID").(int)

	var request models.PrayerRequest
	if err := database.Database.Db.Where("id = ?", requestID).First(&request).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Prayer request not found!", nil)
	}

	role, _ := c.Locals("role").(string)
	if request.UserID != userID && role != models.RoleAdmin {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Only the author can remove this request!", nil)
	}

	request.IsActive = false
	if err := database.Database.Db.Save(&request).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to remove prayer request!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Prayer request removed!", nil)
}
