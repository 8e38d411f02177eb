package http_test

import (
	"context"
	"errors"

	"gallery_board/internal/domain/models"
	"gallery_board/internal/lib/apperr"
	"gallery_board/internal/transport/http/dto"

	"github.com/stretchr/testify/mock"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, in dto.RegisterInput) (models.User, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (models.Token, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(models.Token), args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, identity models.Identity) error {
	args := m.Called(ctx, identity)
	return args.Error(0)
}

func (m *MockAuthService) Me(ctx context.Context, identity models.Identity) (models.User, error) {
	args := m.Called(ctx, identity)
	return args.Get(0).(models.User), args.Error(1)
}

// Verify accepts "user-token" and "admin-token" only.
func (m *MockAuthService) Verify(_ context.Context, raw string) (models.Identity, error) {
	switch raw {
	case "user-token":
		return models.Identity{UserID: 7, UserName: "kim", Role: models.RoleUser, TokenID: "jti-user"}, nil
	case "admin-token":
		return models.Identity{UserID: 1, UserName: "root", Role: models.RoleAdmin, TokenID: "jti-admin"}, nil
	}
	return models.Identity{}, apperr.Unauthenticated("Invalid token.", errors.New("unknown token"))
}

type MockRegionService struct {
	mock.Mock
}

func (m *MockRegionService) ListRegions(ctx context.Context) ([]models.Region, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Region), args.Error(1)
}

func (m *MockRegionService) CreateRegion(ctx context.Context, in dto.CreateRegionInput) (models.Region, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(models.Region), args.Error(1)
}

type MockGalleryService struct {
	mock.Mock
}

func (m *MockGalleryService) ListGalleries(ctx context.Context, in dto.ListGalleriesInput) (models.Page[models.Gallery], error) {
	args := m.Called(ctx, in)
	return args.Get(0).(models.Page[models.Gallery]), args.Error(1)
}

func (m *MockGalleryService) CreateGallery(ctx context.Context, in dto.CreateGalleryInput) (models.Gallery, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(models.Gallery), args.Error(1)
}

func (m *MockGalleryService) DeleteGallery(ctx context.Context, in dto.DeleteGalleryInput) (models.Gallery, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(models.Gallery), args.Error(1)
}

type MockPostService struct {
	mock.Mock
}

func (m *MockPostService) ListPosts(ctx context.Context, in dto.ListPostsInput) (models.Page[models.Post], error) {
	args := m.Called(ctx, in)
	return args.Get(0).(models.Page[models.Post]), args.Error(1)
}

func (m *MockPostService) ViewPost(ctx context.Context, in dto.ViewPostInput) (models.Post, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(models.Post), args.Error(1)
}

func (m *MockPostService) CreatePost(ctx context.Context, in dto.CreatePostInput) (models.Post, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(models.Post), args.Error(1)
}

func (m *MockPostService) UpdatePost(ctx context.Context, in dto.UpdatePostInput) (models.Post, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(models.Post), args.Error(1)
}

func (m *MockPostService) DeletePost(ctx context.Context, in dto.DeletePostInput) (models.Post, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(models.Post), args.Error(1)
}

type MockCommentService struct {
	mock.Mock
}

func (m *MockCommentService) ListComments(ctx context.Context, in dto.ListCommentsInput) ([]models.Comment, error) {
	args := m.Called(ctx, in)
	return args.Get(0).([]models.Comment), args.Error(1)
}

func (m *MockCommentService) CreateComment(ctx context.Context, in dto.CreateCommentInput) (models.Comment, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(models.Comment), args.Error(1)
}

func (m *MockCommentService) UpdateComment(ctx context.Context, in dto.UpdateCommentInput) (models.Comment, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(models.Comment), args.Error(1)
}

func (m *MockCommentService) DeleteComment(ctx context.Context, in dto.DeleteCommentInput) error {
	args := m.Called(ctx, in)
	return args.Error(0)
}

type MockMediaService struct {
	mock.Mock
}

func (m *MockMediaService) UploadImage(ctx context.Context, in dto.UploadImageInput) (string, error) {
	args := m.Called(ctx, in)
	return args.String(0), args.Error(1)
}
