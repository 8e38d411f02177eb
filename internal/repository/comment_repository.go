package repository

import (
	"context"
	"fmt"

	"gallery_board/internal/domain/models"
	"gallery_board/internal/storage"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

var commentColumns = []string{
	"id",
	"post_id",
	"user_id",
	"username",
	"content",
	"password",
	"parent_comment_id",
	"created_at",
	"updated_at",
}

type CommentRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewCommentRepository(db *pgxpool.Pool) *CommentRepo {
	return &CommentRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func scanComment(row pgx.Row) (models.Comment, error) {
	var c models.Comment
	err := row.Scan(
		&c.ID,
		&c.PostID,
		&c.UserID,
		&c.Username,
		&c.Content,
		&c.Password,
		&c.ParentCommentID,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	return c, err
}

// SaveComment inserts a comment. An unknown post or parent comment yields
// storage.ErrForeignKey.
func (r *CommentRepo) SaveComment(ctx context.Context, comment models.Comment) (models.Comment, error) {
	const op = "repository.CommentRepo.SaveComment"

	query, args, err := r.sb.Insert(commentsTable).
		Columns("post_id", "user_id", "username", "content", "password", "parent_comment_id").
		Values(
			comment.PostID,
			comment.UserID,
			comment.Username,
			comment.Content,
			comment.Password,
			comment.ParentCommentID,
		).
		Suffix("RETURNING " + joinColumns(commentColumns)).
		ToSql()
	if err != nil {
		return models.Comment{}, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	saved, err := scanComment(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return models.Comment{}, fmt.Errorf("%s: %w", op, storageErr(err))
	}

	return saved, nil
}

// CommentsByPost returns every comment on a post in creation order.
func (r *CommentRepo) CommentsByPost(ctx context.Context, postID int64) ([]models.Comment, error) {
	const op = "repository.CommentRepo.CommentsByPost"

	query, args, err := r.sb.Select(commentColumns...).
		From(commentsTable).
		Where(sq.Eq{"post_id": postID}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	comments := make([]models.Comment, 0)
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		comments = append(comments, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return comments, nil
}

func (r *CommentRepo) CommentByID(ctx context.Context, postID, commentID int64) (models.Comment, error) {
	const op = "repository.CommentRepo.CommentByID"

	query, args, err := r.sb.Select(commentColumns...).
		From(commentsTable).
		Where(sq.Eq{"id": commentID, "post_id": postID}).
		ToSql()
	if err != nil {
		return models.Comment{}, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	c, err := scanComment(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return models.Comment{}, fmt.Errorf("%s: %w", op, storageErr(err))
	}

	return c, nil
}

func (r *CommentRepo) UpdateCommentContent(ctx context.Context, commentID int64, content string) (models.Comment, error) {
	const op = "repository.CommentRepo.UpdateCommentContent"

	query, args, err := r.sb.Update(commentsTable).
		Set("content", content).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": commentID}).
		Suffix("RETURNING " + joinColumns(commentColumns)).
		ToSql()
	if err != nil {
		return models.Comment{}, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	c, err := scanComment(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return models.Comment{}, fmt.Errorf("%s: %w", op, storageErr(err))
	}

	return c, nil
}

func (r *CommentRepo) DeleteComment(ctx context.Context, commentID int64) error {
	const op = "repository.CommentRepo.DeleteComment"

	query, args, err := r.sb.Delete(commentsTable).Where(sq.Eq{"id": commentID}).ToSql()
	if err != nil {
		return fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}
