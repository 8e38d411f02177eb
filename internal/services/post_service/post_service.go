package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"gallery_board/internal/domain/models"
	"gallery_board/internal/lib/apperr"
	"gallery_board/internal/lib/logger/sl"
	"gallery_board/internal/lib/sanitize"
	"gallery_board/internal/metrics"
	"gallery_board/internal/repository"
	"gallery_board/internal/services/access"
	"gallery_board/internal/storage"
	"gallery_board/internal/transport/http/dto"
)

const (
	MsgPostCreated       = "Post created."
	MsgPostUpdated       = "The post has been updated."
	MsgPostDeleted       = "The post has been deleted."
	MsgPostMissing       = "The post does not exist."
	MsgPostsMissing      = "There are no posts yet."
	MsgPostNotFound      = "Post not found."
	MsgGalleryNotFound   = "Gallery not found."
	MsgPostEditForbidden = "You do not have permission to edit this."
	MsgPostDelForbidden  = "You do not have permission to delete this."
)

type PostService struct {
	log       *slog.Logger
	repo      repository.PostRepository
	sanitizer sanitize.Sanitizer
}

func NewPostService(log *slog.Logger, repo repository.PostRepository, sanitizer sanitize.Sanitizer) *PostService {
	return &PostService{
		log:       log,
		repo:      repo,
		sanitizer: sanitizer,
	}
}

// ListPosts returns one page of a gallery's posts, newest first.
func (s *PostService) ListPosts(ctx context.Context, in dto.ListPostsInput) (models.Page[models.Post], error) {
	const op = "service.PostService.ListPosts"
	log := s.log.With(
		slog.String("op", op),
		slog.Int64("gallery_id", in.GalleryID),
	)

	page := max(in.Page, 1)

	posts, total, err := s.repo.PostsByGallery(ctx, in.GalleryID, models.PageSize, uint64(models.Offset(page, models.PageSize)))
	if err != nil {
		log.Error("failed to list posts", sl.Err(err))
		return models.Page[models.Post]{}, apperr.Internal("failed to list posts", fmt.Errorf("%s: %w", op, err))
	}

	if len(posts) == 0 {
		return models.Page[models.Post]{}, apperr.Empty(MsgPostsMissing)
	}

	return models.NewPage(posts, page, models.PageSize, int(total)), nil
}

// ViewPost counts a view and returns the post with the new count. A missing
// post is reported as apperr.KindEmpty.
func (s *PostService) ViewPost(ctx context.Context, in dto.ViewPostInput) (models.Post, error) {
	const op = "service.PostService.ViewPost"
	log := s.log.With(
		slog.String("op", op),
		slog.Int64("post_id", in.PostID),
	)

	post, err := s.repo.IncrementViews(ctx, in.GalleryID, in.PostID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return models.Post{}, apperr.Empty(MsgPostMissing)
		}

		log.Error("failed to view post", sl.Err(err))
		return models.Post{}, apperr.Internal("failed to view post", fmt.Errorf("%s: %w", op, err))
	}

	metrics.PostViewsTotal.Inc()

	return post, nil
}

func (s *PostService) CreatePost(ctx context.Context, in dto.CreatePostInput) (models.Post, error) {
	const op = "service.PostService.CreatePost"
	log := s.log.With(
		slog.String("op", op),
		slog.Int64("gallery_id", in.GalleryID),
		slog.Int64("user_id", in.UserID),
	)

	log.Info("creating post")

	post := in.ToDomain()
	post.Content = s.sanitizer.Sanitize(post.Content)

	saved, err := s.repo.SavePost(ctx, post)
	if err != nil {
		if errors.Is(err, storage.ErrForeignKey) {
			log.Warn("unknown gallery or user", sl.Err(err))
			return models.Post{}, apperr.NotFound(MsgGalleryNotFound, fmt.Errorf("%s: %w", op, err))
		}

		log.Error("failed to create post", sl.Err(err))
		return models.Post{}, apperr.Internal("failed to create post", fmt.Errorf("%s: %w", op, err))
	}

	log.Info("post created", slog.Int64("id", saved.ID))

	return saved, nil
}

func (s *PostService) UpdatePost(ctx context.Context, in dto.UpdatePostInput) (models.Post, error) {
	const op = "service.PostService.UpdatePost"
	log := s.log.With(
		slog.String("op", op),
		slog.Int64("post_id", in.PostID),
	)

	if _, err := s.ownedPost(ctx, log, op, in.GalleryID, in.PostID, in.UserID, MsgPostEditForbidden); err != nil {
		return models.Post{}, err
	}

	updated, err := s.repo.UpdatePost(ctx, in.PostID, in.Title, s.sanitizer.Sanitize(in.Content))
	if err != nil {
		return models.Post{}, s.storageErr(log, op, err)
	}

	log.Info("post updated")

	return updated, nil
}

// DeletePost removes a post and returns it as it was before deletion.
func (s *PostService) DeletePost(ctx context.Context, in dto.DeletePostInput) (models.Post, error) {
	const op = "service.PostService.DeletePost"
	log := s.log.With(
		slog.String("op", op),
		slog.Int64("post_id", in.PostID),
	)

	post, err := s.ownedPost(ctx, log, op, in.GalleryID, in.PostID, in.UserID, MsgPostDelForbidden)
	if err != nil {
		return models.Post{}, err
	}

	if err := s.repo.DeletePost(ctx, in.PostID); err != nil {
		return models.Post{}, s.storageErr(log, op, err)
	}

	log.Info("post deleted")

	return post, nil
}

func (s *PostService) ownedPost(ctx context.Context, log *slog.Logger, op string, galleryID, postID, userID int64, forbidden string) (models.Post, error) {
	post, err := s.repo.PostByID(ctx, galleryID, postID)
	if err != nil {
		return models.Post{}, s.storageErr(log, op, err)
	}

	owner := access.Owner{ResourceID: post.ID, UserID: post.UserID}
	if err := access.Authorize(owner, access.AccountOwner{UserID: userID}); err != nil {
		log.Warn("change refused", slog.Int64("caller", userID), sl.Err(err))
		return models.Post{}, apperr.Forbidden(forbidden)
	}

	return post, nil
}

func (s *PostService) storageErr(log *slog.Logger, op string, err error) error {
	if errors.Is(err, storage.ErrNotFound) {
		return apperr.NotFound(MsgPostNotFound, fmt.Errorf("%s: %w", op, err))
	}

	log.Error("post storage failure", sl.Err(err))

	return apperr.Internal("post storage failure", fmt.Errorf("%s: %w", op, err))
}
