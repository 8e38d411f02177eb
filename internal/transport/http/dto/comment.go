package dto

import "gallery_board/internal/domain/models"

type ListCommentsInput struct {
	PostID int64 `query:"post_id" example:"12"`
}

type CreateCommentInput struct {
	PostID          int64  `json:"post_id" example:"12"`
	UserID          int64  `json:"user_id" swaggerignore:"true"`
	UserName        string `json:"user_name" example:"kim"`
	Content         string `json:"content" example:"Agreed!"`
	Password        string `json:"password" example:"1234"`
	ParentCommentID *int64 `json:"parent_comment_id,omitempty"`
}

func (in CreateCommentInput) ToDomain() models.Comment {
	return models.Comment{
		PostID:          in.PostID,
		UserID:          in.UserID,
		Username:        in.UserName,
		Content:         in.Content,
		Password:        in.Password,
		ParentCommentID: in.ParentCommentID,
	}
}

type UpdateCommentInput struct {
	PostID    int64  `json:"post_id" example:"12"`
	CommentID int64  `json:"comment_id" example:"40"`
	UserID    int64  `json:"user_id" swaggerignore:"true"`
	Password  string `json:"password" example:"1234"`
	Content   string `json:"content" example:"Agreed, twice."`
}

type DeleteCommentInput struct {
	PostID    int64  `json:"post_id" example:"12"`
	CommentID int64  `json:"comment_id" example:"40"`
	UserID    int64  `json:"user_id" swaggerignore:"true"`
	Password  string `json:"password" example:"1234"`
}
