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
	"gallery_board/internal/repository"
	"gallery_board/internal/services/access"
	"gallery_board/internal/storage"
	"gallery_board/internal/transport/http/dto"
)

const (
	MsgNoComments       = "The comment does not exist."
	MsgCommentCreated   = "Comment created."
	MsgCommentUpdated   = "The comment has been updated."
	MsgCommentDeleted   = "The comment has been deleted."
	MsgCommentNotFound  = "Comment not found."
	MsgPostNotFound     = "The post or parent comment does not exist."
	MsgEditForbidden    = "You do not have permission to edit this."
	MsgDeleteForbidden  = "You do not have permission to delete this."
	MsgPasswordMismatch = "The password is incorrect."
)

type CommentService struct {
	log       *slog.Logger
	repo      repository.CommentRepository
	sanitizer sanitize.Sanitizer
}

func NewCommentService(log *slog.Logger, repo repository.CommentRepository, sanitizer sanitize.Sanitizer) *CommentService {
	return &CommentService{
		log:       log,
		repo:      repo,
		sanitizer: sanitizer,
	}
}

// ListComments returns every comment on a post, oldest first. A post with no
// comments yields an empty slice and no error.
func (s *CommentService) ListComments(ctx context.Context, in dto.ListCommentsInput) ([]models.Comment, error) {
	const op = "service.CommentService.ListComments"

	comments, err := s.repo.CommentsByPost(ctx, in.PostID)
	if err != nil {
		s.log.Error("failed to list comments", slog.String("op", op), sl.Err(err))
		return nil, apperr.Internal("failed to list comments", fmt.Errorf("%s: %w", op, err))
	}

	return comments, nil
}

func (s *CommentService) CreateComment(ctx context.Context, in dto.CreateCommentInput) (models.Comment, error) {
	const op = "service.CommentService.CreateComment"
	log := s.log.With(
		slog.String("op", op),
		slog.Int64("post_id", in.PostID),
		slog.Int64("user_id", in.UserID),
	)

	// a reply must stay on its parent's post
	if in.ParentCommentID != nil {
		if _, err := s.repo.CommentByID(ctx, in.PostID, *in.ParentCommentID); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				log.Warn("parent comment not on post", slog.Int64("parent_comment_id", *in.ParentCommentID))
				return models.Comment{}, apperr.NotFound(MsgPostNotFound, fmt.Errorf("%s: %w", op, err))
			}

			log.Error("failed to load parent comment", sl.Err(err))
			return models.Comment{}, apperr.Internal("failed to create comment", fmt.Errorf("%s: %w", op, err))
		}
	}

	comment := in.ToDomain()
	comment.Content = s.sanitizer.Sanitize(comment.Content)

	saved, err := s.repo.SaveComment(ctx, comment)
	if err != nil {
		if errors.Is(err, storage.ErrForeignKey) {
			log.Warn("unknown post or parent comment", sl.Err(err))
			return models.Comment{}, apperr.NotFound(MsgPostNotFound, fmt.Errorf("%s: %w", op, err))
		}

		log.Error("failed to create comment", sl.Err(err))
		return models.Comment{}, apperr.Internal("failed to create comment", fmt.Errorf("%s: %w", op, err))
	}

	log.Info("comment created", slog.Int64("id", saved.ID))

	return saved, nil
}

func (s *CommentService) UpdateComment(ctx context.Context, in dto.UpdateCommentInput) (models.Comment, error) {
	const op = "service.CommentService.UpdateComment"
	log := s.log.With(
		slog.String("op", op),
		slog.Int64("comment_id", in.CommentID),
	)

	err := s.authorize(ctx, log, op, in.PostID, in.CommentID, in.UserID, in.Password, MsgEditForbidden)
	if err != nil {
		return models.Comment{}, err
	}

	updated, err := s.repo.UpdateCommentContent(ctx, in.CommentID, s.sanitizer.Sanitize(in.Content))
	if err != nil {
		return models.Comment{}, s.storageErr(log, op, err)
	}

	log.Info("comment updated")

	return updated, nil
}

func (s *CommentService) DeleteComment(ctx context.Context, in dto.DeleteCommentInput) error {
	const op = "service.CommentService.DeleteComment"
	log := s.log.With(
		slog.String("op", op),
		slog.Int64("comment_id", in.CommentID),
	)

	err := s.authorize(ctx, log, op, in.PostID, in.CommentID, in.UserID, in.Password, MsgDeleteForbidden)
	if err != nil {
		return err
	}

	if err := s.repo.DeleteComment(ctx, in.CommentID); err != nil {
		return s.storageErr(log, op, err)
	}

	log.Info("comment deleted")

	return nil
}

// authorize requires both the author's account and the comment password.
func (s *CommentService) authorize(ctx context.Context, log *slog.Logger, op string, postID, commentID, userID int64, password, forbidden string) error {
	comment, err := s.repo.CommentByID(ctx, postID, commentID)
	if err != nil {
		return s.storageErr(log, op, err)
	}

	owner := access.Owner{
		ResourceID: comment.ID,
		UserID:     comment.UserID,
		Secret:     comment.Password,
	}

	err = access.Authorize(owner,
		access.AccountOwner{UserID: userID},
		access.SharedSecret{CommentID: commentID, Password: password},
	)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, access.ErrWrongSecret):
		log.Warn("wrong comment password", slog.Int64("caller", userID))
		return apperr.PasswordMismatch(MsgPasswordMismatch)
	default:
		log.Warn("change refused", slog.Int64("caller", userID), sl.Err(err))
		return apperr.Forbidden(forbidden)
	}
}

func (s *CommentService) storageErr(log *slog.Logger, op string, err error) error {
	if errors.Is(err, storage.ErrNotFound) {
		return apperr.NotFound(MsgCommentNotFound, fmt.Errorf("%s: %w", op, err))
	}

	log.Error("comment storage failure", sl.Err(err))

	return apperr.Internal("comment storage failure", fmt.Errorf("%s: %w", op, err))
}
