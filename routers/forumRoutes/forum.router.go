package forumRoutes

import (
	forumController "reinvent/controllers/forum"
	"reinvent/middleware"
	forumValidator "reinvent/validators/forum"

	"github.com/gofiber/fiber/v2"
)

// SetupForumRoutes sets up the community forum routes
func SetupForumRoutes(app *fiber.App) {
	forumGroup := app.Group("/forum", middleware.JWTMiddleware)

	forumGroup.Get("/list", forumController.GetForums)
	forumGroup.Get("/posts", forumController.GetForumPosts)
	forumGroup.Post("/post", forumValidator.CreatePost(), forumController.CreatePost)
	forumGroup.Get("/post/:id/replies", forumValidator.PostID(), forumController.GetReplies)
	forumGroup.Post("/post/:id/reply", forumValidator.PostID(), forumValidator.ReplyContent(), forumController.CreateReply)
	forumGroup.Post("/post/:id/like", forumValidator.PostID(), forumController.ToggleLike)
}
