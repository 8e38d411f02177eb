package response

import "gallery_board/internal/domain/models"

// Message is the plain body used by most successes and non-validation failures.
type Message struct {
	Message string `json:"message"`
}

// Error is the body of a 422 answered with a single field message.
type Error struct {
	Error string `json:"error"`
}

// ValidationErrors is the body of a 422 that reports every field.
type ValidationErrors struct {
	Message string              `json:"message,omitempty"`
	Errors  map[string][]string `json:"errors"`
}

type Register struct {
	Message string      `json:"message"`
	User    models.User `json:"user"`
}

type Me struct {
	User models.User `json:"user"`
}

type RegionCreated struct {
	Message string        `json:"message"`
	Region  models.Region `json:"region"`
}

type GalleryCreated struct {
	Message     string         `json:"message"`
	GalleryInfo models.Gallery `json:"gallery_info"`
}

type GalleryDeleted struct {
	Message        string         `json:"message"`
	DeletedGallery models.Gallery `json:"deleted_gallery"`
}

type PostSaved struct {
	Message string      `json:"message"`
	Post    models.Post `json:"post"`
}

type PostDeleted struct {
	Message     string      `json:"message"`
	DeletedPost models.Post `json:"deleted_post"`
}

type CommentSaved struct {
	Message string         `json:"message"`
	Comment models.Comment `json:"comment"`
}

// NoComments is answered with 200 when a post has no comments yet.
type NoComments struct {
	Message       string `json:"message"`
	CommentStatus string `json:"comment_status"`
}

type Upload struct {
	URL string `json:"url"`
}

type Health struct {
	Status   string `json:"status"`
	Postgres string `json:"postgres"`
	Redis    string `json:"redis"`
}
