package services_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gallery_board/internal/lib/apperr"
	services "gallery_board/internal/services/media_service"
	"gallery_board/internal/transport/http/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockFileStorage struct {
	mock.Mock
}

func (m *MockFileStorage) Save(ctx context.Context, src io.Reader, subPath, name string) (string, int64, error) {
	args := m.Called(ctx, src, subPath, name)
	return args.String(0), args.Get(1).(int64), args.Error(2)
}

func (m *MockFileStorage) Delete(ctx context.Context, filePath string) error {
	args := m.Called(ctx, filePath)
	return args.Error(0)
}

func (m *MockFileStorage) URL(relativePath string) string {
	args := m.Called(relativePath)
	return args.String(0)
}

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

func createTestFile(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("image", filename)
	require.NoError(t, err)

	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	file, header, err := req.FormFile("image")
	require.NoError(t, err)
	file.Close()

	return header
}

func newService(fs *MockFileStorage) *services.MediaService {
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{}))
	return services.NewMediaService(log, fs, 2048<<10)
}

func TestMediaService_UploadImage(t *testing.T) {
	ctx := context.Background()

	t.Run("png stored under uploads", func(t *testing.T) {
		fs := new(MockFileStorage)
		service := newService(fs)

		fs.On("Save", ctx, mock.Anything, services.UploadDir, mock.MatchedBy(func(name string) bool {
			return strings.HasSuffix(name, ".png") && len(name) == 36+len(".png")
		})).Return(filepath.Join("uploads", "x.png"), int64(len(pngHeader)), nil).Once()
		fs.On("URL", filepath.Join("uploads", "x.png")).
			Return("http://localhost:8080/storage/uploads/x.png").Once()

		url, err := service.UploadImage(ctx, dto.UploadImageInput{Image: createTestFile(t, "cat.jpg", pngHeader)})
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:8080/storage/uploads/x.png", url)
		fs.AssertExpectations(t)
	})

	t.Run("missing image", func(t *testing.T) {
		fs := new(MockFileStorage)

		_, err := newService(fs).UploadImage(ctx, dto.UploadImageInput{})
		appErr := apperr.As(err)
		assert.Equal(t, apperr.KindValidation, appErr.Kind)
		assert.Equal(t, []string{services.MsgImageNeeded}, appErr.Fields["image"])
	})

	t.Run("text disguised as image", func(t *testing.T) {
		fs := new(MockFileStorage)

		_, err := newService(fs).UploadImage(ctx, dto.UploadImageInput{
			Image: createTestFile(t, "evil.png", []byte("just some text")),
		})
		appErr := apperr.As(err)
		assert.Equal(t, apperr.KindValidation, appErr.Kind)
		assert.Equal(t, []string{services.MsgNotImage, services.MsgImageTypes}, appErr.Fields["image"])
		fs.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("too large", func(t *testing.T) {
		fs := new(MockFileStorage)
		big := append(append([]byte{}, pngHeader...), make([]byte, 2048<<10)...)

		_, err := newService(fs).UploadImage(ctx, dto.UploadImageInput{Image: createTestFile(t, "big.png", big)})
		appErr := apperr.As(err)
		assert.Equal(t, apperr.KindValidation, appErr.Kind)
		assert.Contains(t, appErr.Fields["image"][0], "2048 kilobytes")
	})

	t.Run("written bytes over limit are removed", func(t *testing.T) {
		fs := new(MockFileStorage)
		rel := filepath.Join("uploads", "y.png")

		fs.On("Save", ctx, mock.Anything, services.UploadDir, mock.Anything).
			Return(rel, int64(2048<<10)+1, nil).Once()
		fs.On("Delete", ctx, rel).Return(nil).Once()

		_, err := newService(fs).UploadImage(ctx, dto.UploadImageInput{Image: createTestFile(t, "y.png", pngHeader)})
		appErr := apperr.As(err)
		assert.Equal(t, apperr.KindValidation, appErr.Kind)
		assert.Contains(t, appErr.Fields["image"][0], "2048 kilobytes")
		fs.AssertExpectations(t)
		fs.AssertNotCalled(t, "URL", mock.Anything)
	})
}
