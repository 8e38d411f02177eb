package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"gallery_board/internal/domain/models"
	"gallery_board/internal/lib/apperr"
	"gallery_board/internal/lib/logger/sl"
	"gallery_board/internal/repository"
	"gallery_board/internal/services/access"
	"gallery_board/internal/storage"
	"gallery_board/internal/transport/http/dto"
)

const (
	MsgGalleryCreated   = "Gallery created."
	MsgGalleryDeleted   = "The gallery has been deleted."
	MsgGalleriesMissing = "Gallery does not exist."
	MsgGalleryNotFound  = "Gallery not found."
	MsgRegionNotFound   = "Region not found."
	MsgGalleryForbidden = "Permission denied. The gallery cannot be deleted."
)

type GalleryService struct {
	log  *slog.Logger
	repo repository.GalleryRepository
}

func NewGalleryService(log *slog.Logger, repo repository.GalleryRepository) *GalleryService {
	return &GalleryService{
		log:  log,
		repo: repo,
	}
}

// ListGalleries returns one page of a region's galleries. An empty page is
// reported as apperr.KindEmpty.
func (s *GalleryService) ListGalleries(ctx context.Context, in dto.ListGalleriesInput) (models.Page[models.Gallery], error) {
	const op = "service.GalleryService.ListGalleries"
	log := s.log.With(
		slog.String("op", op),
		slog.Int64("region_id", in.RegionID),
		slog.Int("page", in.Page),
	)

	page := max(in.Page, 1)

	galleries, total, err := s.repo.GalleriesByRegion(ctx, in.RegionID, models.PageSize, uint64(models.Offset(page, models.PageSize)))
	if err != nil {
		log.Error("failed to list galleries", sl.Err(err))
		return models.Page[models.Gallery]{}, apperr.Internal("failed to list galleries", fmt.Errorf("%s: %w", op, err))
	}

	if len(galleries) == 0 {
		return models.Page[models.Gallery]{}, apperr.Empty(MsgGalleriesMissing)
	}

	return models.NewPage(galleries, page, models.PageSize, int(total)), nil
}

func (s *GalleryService) CreateGallery(ctx context.Context, in dto.CreateGalleryInput) (models.Gallery, error) {
	const op = "service.GalleryService.CreateGallery"
	log := s.log.With(
		slog.String("op", op),
		slog.Int64("region_id", in.RegionID),
		slog.Int64("manager_id", in.ManagerID),
	)

	log.Info("creating gallery")

	gallery, err := s.repo.SaveGallery(ctx, in.ToDomain())
	if err != nil {
		if errors.Is(err, storage.ErrForeignKey) {
			log.Warn("unknown region", sl.Err(err))
			return models.Gallery{}, apperr.NotFound(MsgRegionNotFound, fmt.Errorf("%s: %w", op, err))
		}

		log.Error("failed to create gallery", sl.Err(err))
		return models.Gallery{}, apperr.Internal("failed to create gallery", fmt.Errorf("%s: %w", op, err))
	}

	log.Info("gallery created", slog.Int64("id", gallery.ID))

	return gallery, nil
}

// DeleteGallery removes a gallery owned by the caller and returns the row as
// it was before deletion.
func (s *GalleryService) DeleteGallery(ctx context.Context, in dto.DeleteGalleryInput) (models.Gallery, error) {
	const op = "service.GalleryService.DeleteGallery"
	log := s.log.With(
		slog.String("op", op),
		slog.Int64("gallery_id", in.GalleryID),
	)

	gallery, err := s.repo.GalleryByID(ctx, in.RegionID, in.GalleryID)
	if err != nil {
		return models.Gallery{}, s.lookupErr(log, op, err)
	}

	owner := access.Owner{ResourceID: gallery.ID, UserID: gallery.ManagerID}
	if err := access.Authorize(owner, access.AccountOwner{UserID: in.ManagerID}); err != nil {
		log.Warn("delete refused", slog.Int64("caller", in.ManagerID), sl.Err(err))
		return models.Gallery{}, apperr.Forbidden(MsgGalleryForbidden)
	}

	if err := s.repo.DeleteGallery(ctx, in.RegionID, in.GalleryID); err != nil {
		return models.Gallery{}, s.lookupErr(log, op, err)
	}

	log.Info("gallery deleted")

	return gallery, nil
}

func (s *GalleryService) lookupErr(log *slog.Logger, op string, err error) error {
	if errors.Is(err, storage.ErrNotFound) {
		return apperr.NotFound(MsgGalleryNotFound, fmt.Errorf("%s: %w", op, err))
	}

	log.Error("gallery storage failure", sl.Err(err))

	return apperr.Internal("failed to delete gallery", fmt.Errorf("%s: %w", op, err))
}
