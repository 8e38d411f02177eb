package repository

import (
	"context"
	"fmt"

	"gallery_board/internal/domain/models"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

var regionColumns = []string{"id", "name", "created_at", "updated_at"}

type RegionRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewRegionRepository(db *pgxpool.Pool) *RegionRepo {
	return &RegionRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func scanRegion(row pgx.Row) (models.Region, error) {
	var r models.Region
	err := row.Scan(&r.ID, &r.Name, &r.CreatedAt, &r.UpdatedAt)
	return r, err
}

func (r *RegionRepo) Regions(ctx context.Context) ([]models.Region, error) {
	const op = "repository.RegionRepo.Regions"

	query, args, err := r.sb.Select(regionColumns...).From(regionsTable).OrderBy("id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	regions := make([]models.Region, 0)
	for rows.Next() {
		region, err := scanRegion(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		regions = append(regions, region)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return regions, nil
}

func (r *RegionRepo) SaveRegion(ctx context.Context, name string) (models.Region, error) {
	const op = "repository.RegionRepo.SaveRegion"

	query, args, err := r.sb.Insert(regionsTable).
		Columns("name").
		Values(name).
		Suffix("RETURNING " + joinColumns(regionColumns)).
		ToSql()
	if err != nil {
		return models.Region{}, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	region, err := scanRegion(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return models.Region{}, fmt.Errorf("%s: %w", op, storageErr(err))
	}

	return region, nil
}
