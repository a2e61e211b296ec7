package main

import (
	"encoding/csv"
	"log"
	"os"
	"strconv"
	"strings"

	"reinvent/config"
	"reinvent/database"
	"reinvent/models"
)

// Imports the program catalog from programs.csv. Programs are matched by
// slug; existing rows are updated, new ones inserted. Module rows come from
// modules.csv keyed by the program slug and order index.
func main() {
	config.LoadConfig()
	database.ConnectDb()

	programsBySlug := importPrograms("programs.csv")
	importModules("modules.csv", programsBySlug)
}

func importPrograms(path string) map[string]uint {
	records := readCSV(path)
	header := records[0]
	log.Printf("Program CSV headers: %v", header)
	log.Printf("Total rows to import: %d", len(records)-1)

	headerIndex := make(map[string]int)
	for i, h := range header {
		headerIndex[strings.TrimSpace(h)] = i
	}

	inserted := 0
	updated := 0
	skipped := 0
	programsBySlug := make(map[string]uint)

	for _, row := range records[1:] {
		program := models.Program{
			Name:             getField(row, headerIndex, "name"),
			Slug:             getField(row, headerIndex, "slug"),
			Description:      getField(row, headerIndex, "description"),
			Price:            parseFloat(getField(row, headerIndex, "price")),
			DurationWeeks:    parseInt(getField(row, headerIndex, "duration_weeks")),
			FeaturedImageURL: getField(row, headerIndex, "featured_image_url"),
			DisplayOrder:     parseInt(getField(row, headerIndex, "display_order")),
			IsActive:         true,
		}

		if program.Slug == "" || program.Name == "" {
			skipped++
			continue
		}

		var existing models.Program
		result := database.Database.Db.Where("slug = ?", program.Slug).First(&existing)

		if result.Error != nil {
			if err := database.Database.Db.Create(&program).Error; err != nil {
				log.Printf("Error inserting program %s: %v", program.Slug, err)
				continue
			}
			programsBySlug[program.Slug] = program.ID
			inserted++
		} else {
			existing.Name = program.Name
			existing.Description = program.Description
			existing.Price = program.Price
			existing.DurationWeeks = program.DurationWeeks
			existing.FeaturedImageURL = program.FeaturedImageURL
			existing.DisplayOrder = program.DisplayOrder

			if err := database.Database.Db.Save(&existing).Error; err != nil {
				log.Printf("Error updating program %s: %v", program.Slug, err)
				continue
			}
			programsBySlug[existing.Slug] = existing.ID
			updated++
		}
	}

	log.Printf("=== Program Import Complete ===")
	log.Printf("Inserted: %d", inserted)
	log.Printf("Updated: %d", updated)
	log.Printf("Skipped: %d", skipped)

	return programsBySlug
}

func importModules(path string, programsBySlug map[string]uint) {
	records := readCSV(path)
	header := records[0]
	log.Printf("Module CSV headers: %v", header)

	headerIndex := make(map[string]int)
	for i, h := range header {
		headerIndex[strings.TrimSpace(h)] = i
	}

	inserted := 0
	updated := 0
	skipped := 0

	for _, row := range records[1:] {
		slug := getField(row, headerIndex, "program_slug")
		programID, ok := programsBySlug[slug]
		if !ok {
			// The program may predate this run
			var program models.Program
			if err := database.Database.Db.Where("slug = ?", slug).First(&program).Error; err != nil {
				skipped++
				continue
			}
			programID = program.ID
		}

		module := models.ProgramModule{
			ProgramID:            programID,
			Title:                getField(row, headerIndex, "title"),
			Description:          getField(row, headerIndex, "description"),
			OrderIndex:           parseInt(getField(row, headerIndex, "order_index")),
			VideoURL:             getField(row, headerIndex, "video_url"),
			VideoDurationSeconds: parseInt(getField(row, headerIndex, "video_duration_seconds")),
			ReadingContent:       getField(row, headerIndex, "reading_content"),
			AssignmentPrompt:     getField(row, headerIndex, "assignment_prompt"),
		}

		if module.Title == "" {
			skipped++
			continue
		}

		var existing models.ProgramModule
		result := database.Database.Db.
			Where("program_id = ? AND order_index = ?", programID, module.OrderIndex).
			First(&existing)

		if result.Error != nil {
			if err := database.Database.Db.Create(&module).Error; err != nil {
				log.Printf("Error inserting module %s: %v", module.Title, err)
				continue
			}
			inserted++
		} else {
			existing.Title = module.Title
			existing.Description = module.Description
			existing.VideoURL = module.VideoURL
			existing.VideoDurationSeconds = module.VideoDurationSeconds
			existing.ReadingContent = module.ReadingContent
			existing.AssignmentPrompt = module.AssignmentPrompt

			if err := database.Database.Db.Save(&existing).Error; err != nil {
				log.Printf("Error updating module %s: %v", module.Title, err)
				continue
			}
			updated++
		}
	}

	log.Printf("=== Module Import Complete ===")
	log.Printf("Inserted: %d", inserted)
	log.Printf("Updated: %d", updated)
	log.Printf("Skipped: %d", skipped)
}

func readCSV(path string) [][]string {
	file, err := os.Open(path)
	if err != nil {
		log.Fatalf("Failed to open CSV file %s: %v", path, err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		log.Fatalf("Failed to read CSV %s: %v", path, err)
	}
	if len(records) < 2 {
		log.Fatalf("CSV file %s is empty or has only headers", path)
	}
	return records
}

// getField safely gets a field from the row by header name
func getField(row []string, headerIndex map[string]int, field string) string {
	if idx, ok := headerIndex[field]; ok && idx < len(row) {
		return strings.TrimSpace(row[idx])
	}
	return ""
}

// parseInt converts string to int
func parseInt(s string) int {
	if s == "" {
		return 0
	}
	val, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return val
}

// parseFloat converts string to float64
func parseFloat(s string) float64 {
	if s == "" {
		return 0
	}
	val, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return val
}
