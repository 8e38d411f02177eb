package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"gallery_board/internal/lib/apperr"
	"gallery_board/internal/lib/logger/sl"
	storage "gallery_board/internal/storage/filestorage"
	"gallery_board/internal/transport/http/dto"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

const (
	UploadDir = "uploads"

	MsgInvalidData = "The given data was invalid."
	MsgImageNeeded = "The image field is required."
	MsgNotImage    = "The image field must be an image."
	MsgImageTypes  = "The image field must be a file of type: jpeg, png, jpg, gif."
)

var allowedImages = []string{"image/jpeg", "image/png", "image/gif"}

type MediaService struct {
	log         *slog.Logger
	fileStorage storage.FileStorage
	maxBytes    int64
}

func NewMediaService(log *slog.Logger, fileStorage storage.FileStorage, maxBytes int64) *MediaService {
	return &MediaService{
		log:         log,
		fileStorage: fileStorage,
		maxBytes:    maxBytes,
	}
}

// UploadImage stores an image under a random name and returns its public URL.
// The file type is decided by content, not by the client's extension or
// Content-Type header.
func (s *MediaService) UploadImage(ctx context.Context, in dto.UploadImageInput) (string, error) {
	const op = "media_service.UploadImage"
	log := s.log.With(slog.String("op", op))

	if in.Image == nil {
		return "", invalidImage(MsgImageNeeded)
	}

	log = log.With(slog.String("filename", in.Image.Filename), slog.Int64("size", in.Image.Size))

	if in.Image.Size > s.maxBytes {
		log.Warn("image too large")
		return "", s.tooLarge()
	}

	src, err := in.Image.Open()
	if err != nil {
		log.Error("failed to open upload", sl.Err(err))
		return "", apperr.Internal("failed to read upload", fmt.Errorf("%s: %w", op, err))
	}
	defer src.Close()

	mtype, err := mimetype.DetectReader(src)
	if err != nil {
		log.Error("failed to sniff upload", sl.Err(err))
		return "", apperr.Internal("failed to read upload", fmt.Errorf("%s: %w", op, err))
	}

	if !mimetype.EqualsAny(mtype.String(), allowedImages...) {
		log.Warn("rejected upload type", slog.String("mime", mtype.String()))
		return "", invalidImage(MsgNotImage, MsgImageTypes)
	}

	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return "", apperr.Internal("failed to read upload", fmt.Errorf("%s: %w", op, err))
	}

	name := uuid.NewString() + mtype.Extension()

	// the header size is client supplied, so cap what is written
	rel, size, err := s.fileStorage.Save(ctx, io.LimitReader(src, s.maxBytes+1), UploadDir, name)
	if err != nil {
		log.Error("failed to save image", sl.Err(err))
		return "", apperr.Internal("failed to save image", fmt.Errorf("%s: %w", op, err))
	}

	if size > s.maxBytes {
		log.Warn("stored image over limit", slog.Int64("written", size))
		if err := s.fileStorage.Delete(ctx, rel); err != nil {
			log.Error("failed to remove oversized image", slog.String("path", rel), sl.Err(err))
		}
		return "", s.tooLarge()
	}

	log.Info("image stored", slog.String("path", rel), slog.Int64("written", size))

	return s.fileStorage.URL(rel), nil
}

func (s *MediaService) tooLarge() error {
	return invalidImage(fmt.Sprintf("The image field must not be greater than %s kilobytes.",
		strconv.FormatInt(s.maxBytes>>10, 10)))
}

func invalidImage(msgs ...string) error {
	return apperr.ValidationFields(MsgInvalidData, map[string][]string{"image": msgs})
}
