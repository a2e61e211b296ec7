package forumController

import (
	"reinvent/database"
	"reinvent/middleware"
	"reinvent/models"
	"reinvent/utils"

	"github.com/gofiber/fiber/v2"
)

// GetForums lists active forums, pinned first, with post counts
func GetForums(c *fiber.Ctx) error {
	var forums []models.Forum
	if err := database.Database.Db.
		Where("is_active = ?", true).
		Order("is_pinned desc").
		Order("created_at desc").
		Find(&forums).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch forums!", nil)
	}

	type forumWithCount struct {
		models.Forum
		PostCount int64 `json:"post_count"`
	}

	result := make([]forumWithCount, len(forums))
	for i, forum := range forums {
		var count int64
		database.Database.Db.Model(&models.ForumPost{}).
			Where("forum_id = ? AND is_deleted = ?", forum.ID, false).
			Count(&count)
		result[i] = forumWithCount{Forum: forum, PostCount: count}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Forums fetched successfully!", result)
}

// GetForumPosts lists posts newest first, optionally scoped to one forum via
// ?forum_id, with reply and like counts
func GetForumPosts(c *fiber.Ctx) error {
	query := database.Database.Db.Where("is_deleted = ?", false)
	if forumID := c.QueryInt("forum_id"); forumID > 0 {
		query = query.Where("forum_id = ?", forumID)
	}
	if limit := c.QueryInt("limit"); limit > 0 {
		query = query.Limit(limit)
	}

	var posts []models.ForumPost
	if err := query.Order("created_at desc").Find(&posts).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch posts!", nil)
	}

	fillPostAuthorNames(posts)

	type postWithCounts struct {
		models.ForumPost
		ReplyCount int64 `json:"reply_count"`
		LikeCount  int64 `json:"like_count"`
	}

	result := make([]postWithCounts, len(posts))
	for i, post := range posts {
		var replies, likes int64
		database.Database.Db.Model(&models.ForumReply{}).
			Where("post_id = ? AND is_deleted = ?", post.ID, false).
			Count(&replies)
		database.Database.Db.Model(&models.ForumLike{}).
			Where("post_id = ?", post.ID).
			Count(&likes)
		result[i] = postWithCounts{ForumPost: post, ReplyCount: replies, LikeCount: likes}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Posts fetched successfully!", result)
}

func fillPostAuthorNames(posts []models.ForumPost) {
	userIDs := make([]uint, 0, len(posts))
	seen := make(map[uint]bool)
	for _, post := range posts {
		if !seen[post.UserID] {
			seen[post.UserID] = true
			userIDs = append(userIDs, post.UserID)
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
	for i := range posts {
		posts[i].AuthorName = names[posts[i].UserID]
	}
}

// CreatePost starts a new thread in a forum
func CreatePost(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedForumPost").(*struct {
		ForumID uint   `json:"forum_id"`
		Title   string `json:"title"`
		Content string `json:"content"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	var forum models.Forum
	if err := database.Database.Db.Where("id = ? AND is_active = ?", reqData.ForumID, true).First(&forum).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Forum not found!", nil)
	}

	post := models.ForumPost{
		ForumID: forum.ID,
		UserID:  userID,
		Title:   reqData.Title,
		Content: reqData.Content,
	}

	if err := database.Database.Db.Create(&post).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create post!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Post created!", post)
}

// GetReplies lists a post's replies oldest first
func GetReplies(c *fiber.Ctx) error {
	postID := c.Locals("postID").(int)

	var post models.ForumPost
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", postID, false).First(&post).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Post not found!", nil)
	}

	var replies []models.ForumReply
	if err := database.Database.Db.
		Where("post_id = ? AND is_deleted = ?", post.ID, false).
		Order("created_at asc").
		Find(&replies).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch replies!", nil)
	}

	userIDs := make([]uint, 0, len(replies))
	seen := make(map[uint]bool)
	for _, reply := range replies {
		if !seen[reply.UserID] {
			seen[reply.UserID] = true
			userIDs = append(userIDs, reply.UserID)
		}
	}
	if len(userIDs) > 0 {
		var users []models.User
		database.Database.Db.Where("id IN ?", userIDs).Find(&users)
		names := make(map[uint]string, len(users))
		for _, user := range users {
			names[user.ID] = user.FullName
		}
		for i := range replies {
			replies[i].AuthorName = names[replies[i].UserID]
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Replies fetched successfully!", replies)
}

// CreateReply adds a reply to a thread and notifies the thread author
func CreateReply(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	postID := c.Locals("postID").(int)
	content := c.Locals("replyContent").(string)

	var post models.ForumPost
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", postID, false).First(&post).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Post not found!", nil)
	}

	reply := models.ForumReply{
		PostID:  post.ID,
		UserID:  userID,
		Content: content,
	}

	if err := database.Database.Db.Create(&reply).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to add reply!", nil)
	}

	if post.UserID != userID {
		utils.Notify(post.UserID, models.NotificationForumReply,
			"New Reply",
			"Someone replied to your post \""+post.Title+"\".")
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Reply added!", reply)
}

// ToggleLike flips the user's like on a post, one like per user per post
func ToggleLike(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	postID := c.Locals("postID").(int)

	var post models.ForumPost
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", postID, false).First(&post).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Post not found!", nil)
	}

	db := database.Database.Db
	liked := false

	var existing models.ForumLike
	if err := db.Where("post_id = ? AND user_id = ?", post.ID, userID).First(&existing).Error; err == nil {
		if err := db.Unscoped().Delete(&existing).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update like!", nil)
		}
	} else {
		like := models.ForumLike{PostID: post.ID, UserID: userID}
		if err := db.Create(&like).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update like!", nil)
		}
		liked = true
	}

	var count int64
	db.Model(&models.ForumLike{}).Where("post_id = ?", post.ID).Count(&count)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Like updated!", fiber.Map{
		"liked":      liked,
		"like_count": count,
	})
}
