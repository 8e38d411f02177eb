package repository

import (
	"context"
	"time"

	"gallery_board/internal/domain/models"
)

type UserRepository interface {
	SaveUser(ctx context.Context, user models.User) (models.User, error)
	UserByEmail(ctx context.Context, email string) (models.User, error)
	UserByID(ctx context.Context, userID int64) (models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

type TokenRepository interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type RegionRepository interface {
	Regions(ctx context.Context) ([]models.Region, error)
	SaveRegion(ctx context.Context, name string) (models.Region, error)
}

type GalleryRepository interface {
	SaveGallery(ctx context.Context, gallery models.Gallery) (models.Gallery, error)
	GalleriesByRegion(ctx context.Context, regionID int64, limit, offset uint64) ([]models.Gallery, int64, error)
	GalleryByID(ctx context.Context, regionID, galleryID int64) (models.Gallery, error)
	DeleteGallery(ctx context.Context, regionID, galleryID int64) error
}

type PostRepository interface {
	SavePost(ctx context.Context, post models.Post) (models.Post, error)
	PostsByGallery(ctx context.Context, galleryID int64, limit, offset uint64) ([]models.Post, int64, error)
	PostByID(ctx context.Context, galleryID, postID int64) (models.Post, error)
	IncrementViews(ctx context.Context, galleryID, postID int64) (models.Post, error)
	UpdatePost(ctx context.Context, postID int64, title, content string) (models.Post, error)
	DeletePost(ctx context.Context, postID int64) error
}

type CommentRepository interface {
	SaveComment(ctx context.Context, comment models.Comment) (models.Comment, error)
	CommentsByPost(ctx context.Context, postID int64) ([]models.Comment, error)
	CommentByID(ctx context.Context, postID, commentID int64) (models.Comment, error)
	UpdateCommentContent(ctx context.Context, commentID int64, content string) (models.Comment, error)
	DeleteComment(ctx context.Context, commentID int64) error
}
