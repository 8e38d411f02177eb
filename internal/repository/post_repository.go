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

var postColumns = []string{
	"id",
	"gallery_id",
	"user_id",
	"user_name",
	"title",
	"content",
	"views",
	"created_at",
	"updated_at",
}

type PostRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewPostRepository(db *pgxpool.Pool) *PostRepo {
	return &PostRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func scanPost(row pgx.Row) (models.Post, error) {
	var p models.Post
	err := row.Scan(
		&p.ID,
		&p.GalleryID,
		&p.UserID,
		&p.UserName,
		&p.Title,
		&p.Content,
		&p.Views,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}

func (r *PostRepo) SavePost(ctx context.Context, post models.Post) (models.Post, error) {
	const op = "repository.PostRepo.SavePost"

	query, args, err := r.sb.Insert(postsTable).
		Columns("gallery_id", "user_id", "user_name", "title", "content").
		Values(post.GalleryID, post.UserID, post.UserName, post.Title, post.Content).
		Suffix("RETURNING " + joinColumns(postColumns)).
		ToSql()
	if err != nil {
		return models.Post{}, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	saved, err := scanPost(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return models.Post{}, fmt.Errorf("%s: %w", op, storageErr(err))
	}

	return saved, nil
}

// PostsByGallery returns one page of a gallery's posts, newest first.
func (r *PostRepo) PostsByGallery(ctx context.Context, galleryID int64, limit, offset uint64) ([]models.Post, int64, error) {
	const op = "repository.PostRepo.PostsByGallery"

	where := sq.Eq{"gallery_id": galleryID}

	countQuery, countArgs, err := r.sb.Select("COUNT(*)").From(postsTable).Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%s: can't build count sql: %w", op, err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("%s: count: %w", op, err)
	}

	query, args, err := r.sb.Select(postColumns...).
		From(postsTable).
		Where(where).
		OrderBy("created_at DESC", "id DESC").
		Limit(limit).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	posts := make([]models.Post, 0, limit)
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("%s: scan: %w", op, err)
		}
		posts = append(posts, p)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	return posts, total, nil
}

func (r *PostRepo) PostByID(ctx context.Context, galleryID, postID int64) (models.Post, error) {
	const op = "repository.PostRepo.PostByID"

	query, args, err := r.sb.Select(postColumns...).
		From(postsTable).
		Where(sq.Eq{"id": postID, "gallery_id": galleryID}).
		ToSql()
	if err != nil {
		return models.Post{}, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	p, err := scanPost(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return models.Post{}, fmt.Errorf("%s: %w", op, storageErr(err))
	}

	return p, nil
}

// IncrementViews bumps the view counter in a single statement and returns
// the post as it is after the increment.
func (r *PostRepo) IncrementViews(ctx context.Context, galleryID, postID int64) (models.Post, error) {
	const op = "repository.PostRepo.IncrementViews"

	query, args, err := r.sb.Update(postsTable).
		Set("views", sq.Expr("views + 1")).
		Where(sq.Eq{"id": postID, "gallery_id": galleryID}).
		Suffix("RETURNING " + joinColumns(postColumns)).
		ToSql()
	if err != nil {
		return models.Post{}, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	p, err := scanPost(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return models.Post{}, fmt.Errorf("%s: %w", op, storageErr(err))
	}

	return p, nil
}

func (r *PostRepo) UpdatePost(ctx context.Context, postID int64, title, content string) (models.Post, error) {
	const op = "repository.PostRepo.UpdatePost"

	query, args, err := r.sb.Update(postsTable).
		Set("title", title).
		Set("content", content).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": postID}).
		Suffix("RETURNING " + joinColumns(postColumns)).
		ToSql()
	if err != nil {
		return models.Post{}, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	p, err := scanPost(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return models.Post{}, fmt.Errorf("%s: %w", op, storageErr(err))
	}

	return p, nil
}

func (r *PostRepo) DeletePost(ctx context.Context, postID int64) error {
	const op = "repository.PostRepo.DeletePost"

	query, args, err := r.sb.Delete(postsTable).Where(sq.Eq{"id": postID}).ToSql()
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
