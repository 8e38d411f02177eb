package services

import (
	"context"
	"fmt"
	"log/slog"

	"gallery_board/internal/domain/models"
	"gallery_board/internal/lib/apperr"
	"gallery_board/internal/lib/logger/sl"
	"gallery_board/internal/repository"
	"gallery_board/internal/transport/http/dto"
)

const (
	MsgRegionsUnavailable = "The server connection is unstable."
	MsgRegionCreated      = "Region created."
)

type RegionService struct {
	log  *slog.Logger
	repo repository.RegionRepository
}

func NewRegionService(log *slog.Logger, repo repository.RegionRepository) *RegionService {
	return &RegionService{
		log:  log,
		repo: repo,
	}
}

// ListRegions returns every region. No regions at all is reported as a
// server fault.
func (s *RegionService) ListRegions(ctx context.Context) ([]models.Region, error) {
	const op = "service.RegionService.ListRegions"
	log := s.log.With(slog.String("op", op))

	regions, err := s.repo.Regions(ctx)
	if err != nil {
		log.Error("failed to list regions", sl.Err(err))
		return nil, apperr.InternalPublic(MsgRegionsUnavailable, fmt.Errorf("%s: %w", op, err))
	}

	if len(regions) == 0 {
		log.Warn("no regions configured")
		return nil, apperr.Empty(MsgRegionsUnavailable)
	}

	return regions, nil
}

func (s *RegionService) CreateRegion(ctx context.Context, in dto.CreateRegionInput) (models.Region, error) {
	const op = "service.RegionService.CreateRegion"
	log := s.log.With(
		slog.String("op", op),
		slog.String("name", in.Name),
	)

	region, err := s.repo.SaveRegion(ctx, in.Name)
	if err != nil {
		log.Error("failed to create region", sl.Err(err))
		return models.Region{}, apperr.Internal("failed to create region", fmt.Errorf("%s: %w", op, err))
	}

	log.Info("region created", slog.Int64("id", region.ID))

	return region, nil
}
