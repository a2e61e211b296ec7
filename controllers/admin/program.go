package adminController

import (
	"reinvent/database"
	"reinvent/middleware"
	"reinvent/models"

	"github.com/gofiber/fiber/v2"
)

// CreateProgram adds a new training program
func CreateProgram(c *fiber.Ctx) error {
	reqData := new(models.Program)
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if reqData.Name == "" || reqData.Slug == "" {
		return middleware.ValidationErrorResponse(c, map[string]string{
			"name": "Program name and slug are required!",
		})
	}

	// Slugs are unique across programs
	if err := database.Database.Db.Where("slug = ?", reqData.Slug).First(&models.Program{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "A program with this slug already exists!", nil)
	}

	if err := database.Database.Db.Create(reqData).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create program!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Program created!", reqData)
}

// UpdateProgram updates program fields
func UpdateProgram(c *fiber.Ctx) error {
	programID := c.Locals("programID").(int)

	var program models.Program
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", programID, false).First(&program).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Program not found!", nil)
	}

	reqData := new(struct {
		Name             *string  `json:"name"`
		Description      *string  `json:"description"`
		Price            *float64 `json:"price"`
		DurationWeeks    *int     `json:"duration_weeks"`
		FeaturedImageURL *string  `json:"featured_image_url"`
		DisplayOrder     *int     `json:"display_order"`
		IsActive         *bool    `json:"is_active"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if reqData.Name != nil {
		program.Name = *reqData.Name
	}
	if reqData.Description != nil {
		program.Description = *reqData.Description
	}
	if reqData.Price != nil {
		program.Price = *reqData.Price
	}
	if reqData.DurationWeeks != nil {
		program.DurationWeeks = *reqData.DurationWeeks
	}
	if reqData.FeaturedImageURL != nil {
		program.FeaturedImageURL = *reqData.FeaturedImageURL
	}
	if reqData.DisplayOrder != nil {
		program.DisplayOrder = *reqData.DisplayOrder
	}
	if reqData.IsActive != nil {
		program.IsActive = *reqData.IsActive
	}

	if err := database.Database.Db.Save(&program).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update program!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Program updated!", program)
}

// CreateModule adds a module to a program
func CreateModule(c *fiber.Ctx) error {
	programID := c.Locals("programID").(int)

	var program models.Program
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", programID, false).First(&program).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Program not found!", nil)
	}

	reqData := new(models.ProgramModule)
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if reqData.Title == "" {
		return middleware.ValidationErrorResponse(c, map[string]string{"title": "Module title is required!"})
	}

	reqData.ProgramID = program.ID
	if err := database.Database.Db.Create(reqData).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create module!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Module created!", reqData)
}

// UpdateModule updates a module's content fields
func UpdateModule(c *fiber.Ctx) error {
	moduleID := c.Locals("moduleID").(int)

	var module models.ProgramModule
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", moduleID, false).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	reqData := new(struct {
		Title                *string `json:"title"`
		Description          *string `json:"description"`
		OrderIndex           *int    `json:"order_index"`
		VideoURL             *string `json:"video_url"`
		VideoDurationSeconds *int    `json:"video_duration_seconds"`
		ReadingContent       *string `json:"reading_content"`
		AssignmentPrompt     *string `json:"assignment_prompt"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if reqData.Title != nil {
		module.Title = *reqData.Title
	}
	if reqData.Description != nil {
		module.Description = *reqData.Description
	}
	if reqData.OrderIndex != nil {
		module.OrderIndex = *reqData.OrderIndex
	}
	if reqData.VideoURL != nil {
		module.VideoURL = *reqData.VideoURL
	}
	if reqData.VideoDurationSeconds != nil {
		module.VideoDurationSeconds = *reqData.VideoDurationSeconds
	}
	if reqData.ReadingContent != nil {
		module.ReadingContent = *reqData.ReadingContent
	}
	if reqData.AssignmentPrompt != nil {
		module.AssignmentPrompt = *reqData.AssignmentPrompt
	}

	if err := database.Database.Db.Save(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update module!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module updated!", module)
}
