package models

import "time"

// Comment is a reply to a post. Password is the per-comment secret used to
// authorize edits and deletes, it is never serialized.
type Comment struct {
	ID              int64     `db:"id" json:"id"`
	PostID          int64     `db:"post_id" json:"post_id"`
	UserID          int64     `db:"user_id" json:"user_id"`
	Username        string    `db:"username" json:"username"`
	Content         string    `db:"content" json:"content"`
	Password        string    `db:"password" json:"-"`
	ParentCommentID *int64    `db:"parent_comment_id" json:"parent_comment_id"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}
