package forumValidator

import (
	"strconv"
	"strings"

	"reinvent/middleware"

	"github.com/gofiber/fiber/v2"
)

// PostID validates the forum post route parameter
func PostID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		if idStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Post ID is required!", nil)
		}

		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid post ID!", nil)
		}

		c.Locals("postID", id)
		return c.Next()
	}
}

// CreatePost validates a new thread payload
func CreatePost() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			ForumID uint   `json:"forum_id"`
			Title   string `json:"title"`
			Content string `json:"content"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.ForumID == 0 {
			errors["forum_id"] = "Forum is required!"
		}
		reqData.Title = strings.TrimSpace(reqData.Title)
		if reqData.Title == "" {
			errors["title"] = "Title is required!"
		}
		if strings.TrimSpace(reqData.Content) == "" {
			errors["content"] = "Content is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedForumPost", reqData)
		return c.Next()
	}
}

// ReplyContent rejects empty or whitespace-only reply text
func ReplyContent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Content string `json:"content"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		content := strings.TrimSpace(reqData.Content)
		if content == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"content": "Reply text cannot be empty!",
			})
		}

		c.Locals("replyContent", content)
		return c.Next()
	}
}
