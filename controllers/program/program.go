package programController

import (
	"reinvent/database"
	"reinvent/middleware"
	"reinvent/models"

	"github.com/gofiber/fiber/v2"
)

// GetAllPrograms lists active programs with their module counts
func GetAllPrograms(c *fiber.Ctx) error {
	var programs []models.Program
	if err := database.Database.Db.
		Where("is_active = ? AND is_deleted = ?", true, false).
		Order("display_order asc").
		Find(&programs).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch programs!", nil)
	}

	type programWithCount struct {
		models.Program
		ModuleCount int64 `json:"module_count"`
	}

	result := make([]programWithCount, len(programs))
	for i, program := range programs {
		var count int64
		database.Database.Db.Model(&models.ProgramModule{}).
			Where("program_id = ? AND is_deleted = ?", program.ID, false).
			Count(&count)
		result[i] = programWithCount{Program: program, ModuleCount: count}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Programs fetched successfully!", result)
}

// GetProgramBySlug returns one program with its ordered modules
func GetProgramBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")
	if slug == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Program slug is required!", nil)
	}

	var program models.Program
	if err := database.Database.Db.
		Where("slug = ? AND is_active = ? AND is_deleted = ?", slug, true, false).
		First(&program).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Program not found!", nil)
	}

	var modules []models.ProgramModule
	database.Database.Db.
		Where("program_id = ? AND is_deleted = ?", program.ID, false).
		Order("order_index asc").
		Find(&modules)
	program.Modules = modules

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Program fetched successfully!", program)
}
