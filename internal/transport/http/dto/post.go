package dto

import "gallery_board/internal/domain/models"

type ListPostsInput struct {
	GalleryID int64 `query:"gallery_id" example:"3"`
	Page      int   `query:"page" example:"1"`
}

type ViewPostInput struct {
	GalleryID int64 `query:"gallery_id" example:"3"`
	PostID    int64 `query:"post_id" example:"12"`
}

type CreatePostInput struct {
	GalleryID int64  `json:"gallery_id" example:"3"`
	UserID    int64  `json:"user_id" swaggerignore:"true"`
	UserName  string `json:"user_name" example:"kim"`
	Title     string `json:"title" example:"Best tteokbokki in town"`
	Content   string `json:"content" example:"<p>Found it!</p>"`
}

func (in CreatePostInput) ToDomain() models.Post {
	return models.Post{
		GalleryID: in.GalleryID,
		UserID:    in.UserID,
		UserName:  in.UserName,
		Title:     in.Title,
		Content:   in.Content,
	}
}

type UpdatePostInput struct {
	GalleryID int64  `json:"gallery_id" example:"3"`
	PostID    int64  `json:"post_id" example:"12"`
	UserID    int64  `json:"user_id" swaggerignore:"true"`
	Title     string `json:"title" example:"Best tteokbokki in town (updated)"`
	Content   string `json:"content" example:"<p>Still the best.</p>"`
}

type DeletePostInput struct {
	GalleryID int64 `json:"gallery_id" example:"3"`
	PostID    int64 `json:"post_id" example:"12"`
	UserID    int64 `json:"user_id" swaggerignore:"true"`
}
