package models

import "gorm.io/gorm"

// Forum is a discussion area on the community page
type Forum struct {
	gorm.Model
	Name        string `json:"name" gorm:"not null"`
	Description string `json:"description" gorm:"type:text"`
	IsPinned    bool   `json:"is_pinned" gorm:"default:false"`
	IsActive    bool   `json:"is_active" gorm:"default:true"`
}

// ForumPost is a thread started by a member
type ForumPost struct {
	gorm.Model
	ForumID    uint   `json:"forum_id" gorm:"index;not null"`
	UserID     uint   `json:"user_id" gorm:"index;not null"`
	Title      string `json:"title" gorm:"not null"`
	Content    string `json:"content" gorm:"type:text"`
	AuthorName string `json:"author_name" gorm:"-"`
	IsDeleted  bool   `json:"-" gorm:"default:false"`
}

// ForumReply is one reply in a thread, ordered oldest first
type ForumReply struct {
	gorm.Model
	PostID     uint   `json:"post_id" gorm:"index;not null"`
	UserID     uint   `json:"user_id" gorm:"index;not null"`
	Content    string `json:"content" gorm:"type:text;not null"`
	AuthorName string `json:"author_name" gorm:"-"`
	IsDeleted  bool   `json:"-" gorm:"default:false"`
}

// ForumLike marks that a user liked a post, at most once per (user, post)
type ForumLike struct {
	gorm.Model
	PostID uint `json:"post_id" gorm:"index:idx_post_like,unique;not null"`
	UserID uint `json:"user_id" gorm:"index:idx_post_like,unique;not null"`
}
