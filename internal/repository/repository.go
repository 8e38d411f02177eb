package repository

import (
	"context"
	"errors"
	"strings"

	"gallery_board/internal/storage"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

const (
	usersTable    = "users"
	regionsTable  = "regions"
	galleryTable  = "galleries"
	postsTable    = "gallery_posts"
	commentsTable = "comments"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

type Repository struct {
	db      *pgxpool.Pool
	User    UserRepository
	Region  RegionRepository
	Gallery GalleryRepository
	Post    PostRepository
	Comment CommentRepository
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{
		db:      db,
		User:    NewUserRepository(db),
		Region:  NewRegionRepository(db),
		Gallery: NewGalleryRepository(db),
		Post:    NewPostRepository(db),
		Comment: NewCommentRepository(db),
	}
}

func (r *Repository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}

func (r *Repository) Close() {
	r.db.Close()
}

// storageErr translates driver errors into storage sentinels. Anything it
// does not recognise is returned unchanged.
func storageErr(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return storage.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolation:
			return storage.ErrUserExists
		case foreignKeyViolation:
			return storage.ErrForeignKey
		}
	}

	return err
}

func joinColumns(cols []string) string {
	return strings.Join(cols, ", ")
}
