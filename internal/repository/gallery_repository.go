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

var galleryColumns = []string{
	"id",
	"region_id",
	"name",
	"description",
	"manager_id",
	"sub_manager_1",
	"sub_manager_2",
	"sub_manager_3",
	"sub_manager_4",
	"sub_manager_5",
	"created_at",
	"updated_at",
}

type GalleryRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewGalleryRepository(db *pgxpool.Pool) *GalleryRepo {
	return &GalleryRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func scanGallery(row pgx.Row) (models.Gallery, error) {
	var g models.Gallery
	err := row.Scan(
		&g.ID,
		&g.RegionID,
		&g.Name,
		&g.Description,
		&g.ManagerID,
		&g.SubManager1,
		&g.SubManager2,
		&g.SubManager3,
		&g.SubManager4,
		&g.SubManager5,
		&g.CreatedAt,
		&g.UpdatedAt,
	)
	return g, err
}

// SaveGallery inserts a gallery. An unknown region yields storage.ErrForeignKey.
func (r *GalleryRepo) SaveGallery(ctx context.Context, gallery models.Gallery) (models.Gallery, error) {
	const op = "repository.GalleryRepo.SaveGallery"

	query, args, err := r.sb.Insert(galleryTable).
		Columns(
			"region_id",
			"name",
			"description",
			"manager_id",
			"sub_manager_1",
			"sub_manager_2",
			"sub_manager_3",
			"sub_manager_4",
			"sub_manager_5",
		).
		Values(
			gallery.RegionID,
			gallery.Name,
			gallery.Description,
			gallery.ManagerID,
			gallery.SubManager1,
			gallery.SubManager2,
			gallery.SubManager3,
			gallery.SubManager4,
			gallery.SubManager5,
		).
		Suffix("RETURNING " + joinColumns(galleryColumns)).
		ToSql()
	if err != nil {
		return models.Gallery{}, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	saved, err := scanGallery(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return models.Gallery{}, fmt.Errorf("%s: %w", op, storageErr(err))
	}

	return saved, nil
}

// GalleriesByRegion returns one page of a region's galleries and the total count.
func (r *GalleryRepo) GalleriesByRegion(ctx context.Context, regionID int64, limit, offset uint64) ([]models.Gallery, int64, error) {
	const op = "repository.GalleryRepo.GalleriesByRegion"

	where := sq.Eq{"region_id": regionID}

	countQuery, countArgs, err := r.sb.Select("COUNT(*)").From(galleryTable).Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%s: can't build count sql: %w", op, err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("%s: count: %w", op, err)
	}

	query, args, err := r.sb.Select(galleryColumns...).
		From(galleryTable).
		Where(where).
		OrderBy("id").
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

	galleries := make([]models.Gallery, 0, limit)
	for rows.Next() {
		g, err := scanGallery(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("%s: scan: %w", op, err)
		}
		galleries = append(galleries, g)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	return galleries, total, nil
}

func (r *GalleryRepo) GalleryByID(ctx context.Context, regionID, galleryID int64) (models.Gallery, error) {
	const op = "repository.GalleryRepo.GalleryByID"

	query, args, err := r.sb.Select(galleryColumns...).
		From(galleryTable).
		Where(sq.Eq{"id": galleryID, "region_id": regionID}).
		ToSql()
	if err != nil {
		return models.Gallery{}, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	g, err := scanGallery(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return models.Gallery{}, fmt.Errorf("%s: %w", op, storageErr(err))
	}

	return g, nil
}

// DeleteGallery removes a gallery; its posts and comments go with it.
func (r *GalleryRepo) DeleteGallery(ctx context.Context, regionID, galleryID int64) error {
	const op = "repository.GalleryRepo.DeleteGallery"

	query, args, err := r.sb.Delete(galleryTable).
		Where(sq.Eq{"id": galleryID, "region_id": regionID}).
		ToSql()
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
