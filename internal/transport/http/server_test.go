package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	httpapp "gallery_board/internal/app/http"
	"gallery_board/internal/config"
	"gallery_board/internal/domain/models"
	"gallery_board/internal/lib/apperr"
	"gallery_board/internal/lib/validation"
	comments "gallery_board/internal/services/comment_service"
	galleries "gallery_board/internal/services/gallery_service"
	httprouters "gallery_board/internal/transport/http"
	"gallery_board/internal/transport/http/dto"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type RoutesTestSuite struct {
	suite.Suite
	handler  http.Handler
	auth     *MockAuthService
	regions  *MockRegionService
	gallery  *MockGalleryService
	posts    *MockPostService
	comments *MockCommentService
	media    *MockMediaService
	redisErr error
}

func TestRoutes(t *testing.T) {
	suite.Run(t, new(RoutesTestSuite))
}

func (s *RoutesTestSuite) SetupTest() {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	s.auth = new(MockAuthService)
	s.regions = new(MockRegionService)
	s.gallery = new(MockGalleryService)
	s.posts = new(MockPostService)
	s.comments = new(MockCommentService)
	s.media = new(MockMediaService)
	s.redisErr = nil

	validator := validation.New()
	err := validator.RegisterRule("unique_email", "The email has already been taken.", func(_ context.Context, value any) bool {
		return value != "taken@example.com"
	})
	require.NoError(s.T(), err)

	routers := httprouters.NewRouter(log, validator,
		s.auth, s.regions, s.gallery, s.posts, s.comments, s.media,
		httprouters.PingFunc(func(context.Context) error { return nil }),
		httprouters.PingFunc(func(context.Context) error { return s.redisErr }),
	)

	server := httpapp.New(log,
		config.HTTPConfig{Port: "0"},
		config.FileStorageConfig{BaseDir: s.T().TempDir(), MaxSize: 2048},
		routers,
		s.auth,
	)
	server.BuildRouters()

	s.handler = server.Handler()
}

func (s *RoutesTestSuite) do(method, target, token string, body any) (*httptest.ResponseRecorder, map[string]any) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)

	var decoded map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &decoded)

	return rec, decoded
}

func (s *RoutesTestSuite) TestRegister_MissingEmail() {
	rec, body := s.do(http.MethodPost, "/api/register", "", map[string]any{
		"user_name":             "kim",
		"password":              "secret-pass",
		"password_confirmation": "secret-pass",
	})

	s.Equal(http.StatusUnprocessableEntity, rec.Code)
	errs := body["errors"].(map[string]any)
	s.Equal([]any{"The email field is required."}, errs["email"])
	s.auth.AssertNotCalled(s.T(), "Register", mock.Anything, mock.Anything)
}

func (s *RoutesTestSuite) TestRegister_DuplicateEmail() {
	rec, body := s.do(http.MethodPost, "/api/register", "", map[string]any{
		"user_name":             "kim",
		"email":                 "taken@example.com",
		"password":              "secret-pass",
		"password_confirmation": "secret-pass",
	})

	s.Equal(http.StatusUnprocessableEntity, rec.Code)
	errs := body["errors"].(map[string]any)
	s.Equal([]any{"The email has already been taken."}, errs["email"])
}

func (s *RoutesTestSuite) TestRegister_Created() {
	s.auth.On("Register", mock.Anything, dto.RegisterInput{
		UserName:             "kim",
		Email:                "kim@example.com",
		Password:             "secret-pass",
		PasswordConfirmation: "secret-pass",
	}).Return(models.User{ID: 3, UserName: "kim", Email: "kim@example.com", Password: []byte("hash")}, nil).Once()

	rec, body := s.do(http.MethodPost, "/api/register", "", map[string]any{
		"user_name":             "kim",
		"email":                 "kim@example.com",
		"password":              "secret-pass",
		"password_confirmation": "secret-pass",
	})

	s.Equal(http.StatusCreated, rec.Code)
	user := body["user"].(map[string]any)
	s.Equal("kim@example.com", user["email"])
	s.NotContains(user, "password")
}

func (s *RoutesTestSuite) TestLogin_WrongPassword() {
	s.auth.On("Login", mock.Anything, "kim@example.com", "nope").
		Return(models.Token{}, apperr.Unauthenticated("Password does not match.", errors.New("mismatch"))).Once()

	rec, body := s.do(http.MethodPost, "/api/login", "", map[string]any{
		"email":    "kim@example.com",
		"password": "nope",
	})

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.NotContains(body, "token")
	s.Equal("Password does not match.", body["message"])
}

func (s *RoutesTestSuite) TestProtectedRouteNeedsToken() {
	rec, _ := s.do(http.MethodPost, "/api/regions/gallery/post", "", map[string]any{"gallery_id": 3})
	s.Equal(http.StatusUnauthorized, rec.Code)

	rec, _ = s.do(http.MethodPost, "/api/regions/gallery/post", "forged", map[string]any{"gallery_id": 3})
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.posts.AssertNotCalled(s.T(), "CreatePost", mock.Anything, mock.Anything)
}

func (s *RoutesTestSuite) TestCreateRegion_AdminOnly() {
	rec, _ := s.do(http.MethodPost, "/api/regions", "user-token", map[string]any{"name": "Busan"})
	s.Equal(http.StatusForbidden, rec.Code)

	s.regions.On("CreateRegion", mock.Anything, dto.CreateRegionInput{Name: "Busan"}).
		Return(models.Region{ID: 2, Name: "Busan"}, nil).Once()

	rec, _ = s.do(http.MethodPost, "/api/regions", "admin-token", map[string]any{"name": "Busan"})
	s.Equal(http.StatusCreated, rec.Code)
}

func (s *RoutesTestSuite) TestListGalleries_EmptyRegion() {
	s.gallery.On("ListGalleries", mock.Anything, dto.ListGalleriesInput{RegionID: 4, Page: 1}).
		Return(models.Page[models.Gallery]{}, apperr.Empty(galleries.MsgGalleriesMissing)).Once()

	rec, body := s.do(http.MethodGet, "/api/regions/gallery?region_id=4", "", nil)

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Equal("Gallery does not exist.", body["message"])
}

func (s *RoutesTestSuite) TestListGalleries_InvalidRegion() {
	rec, body := s.do(http.MethodGet, "/api/regions/gallery?region_id=abc", "", nil)

	s.Equal(http.StatusUnprocessableEntity, rec.Code)
	s.Equal("Invalid access.", body["error"])
}

func (s *RoutesTestSuite) TestCreateGallery_FirstFailingFieldWins() {
	rec, body := s.do(http.MethodPost, "/api/regions/gallery", "user-token", map[string]any{
		"region_id": 1,
	})

	s.Equal(http.StatusUnprocessableEntity, rec.Code)
	s.Equal("Gallery name is required.", body["error"])
}

func (s *RoutesTestSuite) TestCreatePost_IdentityFromToken() {
	s.posts.On("CreatePost", mock.Anything, dto.CreatePostInput{
		GalleryID: 3,
		UserID:    7,
		UserName:  "kim",
		Title:     "Hello",
		Content:   "<p>hi</p>",
	}).Return(models.Post{ID: 12, GalleryID: 3, UserID: 7, Title: "Hello"}, nil).Once()

	rec, body := s.do(http.MethodPost, "/api/regions/gallery/post", "user-token", map[string]any{
		"gallery_id": 3,
		"user_id":    999,
		"title":      "Hello",
		"content":    "<p>hi</p>",
	})

	s.Equal(http.StatusCreated, rec.Code)
	s.Equal("Post created.", body["message"])
	s.posts.AssertExpectations(s.T())
}

func (s *RoutesTestSuite) TestViewPost() {
	s.posts.On("ViewPost", mock.Anything, dto.ViewPostInput{GalleryID: 3, PostID: 12}).
		Return(models.Post{ID: 12, Views: 2}, nil).Once()

	rec, body := s.do(http.MethodGet, "/api/regions/gallery/post?gallery_id=3&post_id=12", "", nil)

	s.Equal(http.StatusOK, rec.Code)
	s.EqualValues(2, body["views"])
}

func (s *RoutesTestSuite) TestViewPost_MissingPostID() {
	rec, body := s.do(http.MethodGet, "/api/regions/gallery/post?gallery_id=3", "", nil)

	s.Equal(http.StatusUnprocessableEntity, rec.Code)
	s.Equal("Invalid access.", body["error"])
}

func (s *RoutesTestSuite) TestListComments_Empty() {
	s.comments.On("ListComments", mock.Anything, dto.ListCommentsInput{PostID: 12}).
		Return([]models.Comment{}, nil).Once()

	rec, body := s.do(http.MethodGet, "/api/regions/gallery/post/comments?post_id=12", "", nil)

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("0", body["comment_status"])
	s.Equal(comments.MsgNoComments, body["message"])
}

func (s *RoutesTestSuite) TestSearchDelegatesToCommentView() {
	s.comments.On("ListComments", mock.Anything, dto.ListCommentsInput{PostID: 12}).
		Return([]models.Comment{{ID: 40, PostID: 12, Content: "hello"}}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/search?post_id=12", nil)
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)

	s.Equal(http.StatusOK, rec.Code)

	var list []map[string]any
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &list))
	s.Len(list, 1)
	s.NotContains(list[0], "password")
}

func (s *RoutesTestSuite) TestCreateComment_MissingPassword() {
	rec, body := s.do(http.MethodPost, "/api/regions/gallery/post/comments", "user-token", map[string]any{
		"post_id": 12,
		"content": "hello",
	})

	s.Equal(http.StatusUnprocessableEntity, rec.Code)
	s.Equal("The password is not correct.", body["error"])
}

func (s *RoutesTestSuite) TestCreateComment_NumericPasswordRejected() {
	rec, body := s.do(http.MethodPost, "/api/regions/gallery/post/comments", "user-token", map[string]any{
		"post_id":  12,
		"content":  "hello",
		"password": 1234,
	})

	s.Equal(http.StatusUnprocessableEntity, rec.Code)
	s.Equal("The password is not correct.", body["error"])
}

func (s *RoutesTestSuite) TestDeleteComment_WrongPassword() {
	s.comments.On("DeleteComment", mock.Anything, dto.DeleteCommentInput{
		PostID: 12, CommentID: 40, UserID: 7, Password: "0000",
	}).Return(apperr.PasswordMismatch(comments.MsgPasswordMismatch)).Once()

	rec, body := s.do(http.MethodDelete, "/api/regions/gallery/post/comments", "user-token", map[string]any{
		"post_id":    12,
		"comment_id": 40,
		"password":   "0000",
	})

	s.Equal(http.StatusPaymentRequired, rec.Code)
	s.Equal("The password is incorrect.", body["message"])
}

func (s *RoutesTestSuite) TestDeleteComment_Deleted() {
	s.comments.On("DeleteComment", mock.Anything, dto.DeleteCommentInput{
		PostID: 12, CommentID: 40, UserID: 7, Password: "1234",
	}).Return(nil).Once()

	rec, body := s.do(http.MethodDelete, "/api/regions/gallery/post/comments", "user-token", map[string]any{
		"post_id":    12,
		"comment_id": 40,
		"password":   "1234",
	})

	s.Equal(http.StatusOK, rec.Code)
	s.Equal(comments.MsgCommentDeleted, body["message"])
}

func (s *RoutesTestSuite) TestUpdatePost_Forbidden() {
	s.posts.On("UpdatePost", mock.Anything, mock.Anything).
		Return(models.Post{}, apperr.Forbidden("You do not have permission to edit this.")).Once()

	rec, _ := s.do(http.MethodPut, "/api/regions/gallery/post", "user-token", map[string]any{
		"gallery_id": 3,
		"post_id":    12,
		"title":      "t",
		"content":    "c",
	})

	s.Equal(http.StatusForbidden, rec.Code)
}

func (s *RoutesTestSuite) TestUploadImage() {
	s.media.On("UploadImage", mock.Anything, mock.MatchedBy(func(in dto.UploadImageInput) bool {
		return in.Image != nil && in.Image.Filename == "cat.png"
	})).Return("http://localhost:8080/storage/uploads/x.png", nil).Once()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("image", "cat.png")
	s.Require().NoError(err)
	_, err = part.Write([]byte("\x89PNG\r\n\x1a\n"))
	s.Require().NoError(err)
	s.Require().NoError(writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload-image", body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "/storage/uploads/x.png")
}

func (s *RoutesTestSuite) TestHealth() {
	rec, body := s.do(http.MethodGet, "/health", "", nil)
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("ok", body["status"])

	s.redisErr = errors.New("connection refused")

	rec, body = s.do(http.MethodGet, "/health", "", nil)
	s.Equal(http.StatusServiceUnavailable, rec.Code)
	s.Equal("degraded", body["status"])
	s.Equal("down", body["redis"])
}

func (s *RoutesTestSuite) TestLogout() {
	s.auth.On("Logout", mock.Anything, mock.MatchedBy(func(identity models.Identity) bool {
		return identity.TokenID == "jti-user"
	})).Return(nil).Once()

	rec, _ := s.do(http.MethodPost, "/api/logout", "user-token", nil)

	s.Equal(http.StatusOK, rec.Code)
	s.auth.AssertExpectations(s.T())
}

func (s *RoutesTestSuite) TestViewPost_LeadingZeroIDIsDecimal() {
	s.posts.On("ViewPost", mock.Anything, dto.ViewPostInput{GalleryID: 3, PostID: 10}).
		Return(models.Post{ID: 10}, nil).Once()

	rec, _ := s.do(http.MethodGet, "/api/regions/gallery/post?gallery_id=3&post_id=010", "", nil)

	s.Equal(http.StatusOK, rec.Code)
	s.posts.AssertExpectations(s.T())
}

func (s *RoutesTestSuite) TestViewPost_NonIntegerID() {
	for _, id := range []string{"1.5", "99999999999999999999", "0x10"} {
		rec, body := s.do(http.MethodGet, "/api/regions/gallery/post?gallery_id=3&post_id="+id, "", nil)

		s.Equal(http.StatusUnprocessableEntity, rec.Code, id)
		s.Equal("Invalid access.", body["error"], id)
	}
	s.posts.AssertNotCalled(s.T(), "ViewPost", mock.Anything, mock.Anything)
}

func (s *RoutesTestSuite) TestUpdateComment_FormLeadingZeroIDs() {
	s.comments.On("UpdateComment", mock.Anything, dto.UpdateCommentInput{
		PostID:    12,
		CommentID: 40,
		UserID:    7,
		Password:  "1234",
		Content:   "edited",
	}).Return(models.Comment{ID: 40, PostID: 12, Content: "edited"}, nil).Once()

	form := url.Values{}
	form.Set("post_id", "012")
	form.Set("comment_id", "040")
	form.Set("password", "1234")
	form.Set("content", "edited")

	req := httptest.NewRequest(http.MethodPut, "/api/regions/gallery/post/comments", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	req.Header.Set(echo.HeaderAuthorization, "Bearer user-token")
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)

	s.Equal(http.StatusOK, rec.Code)
	s.comments.AssertExpectations(s.T())
}

// The caller's identity fills owner fields, so the token is checked before
// the payload.
func (s *RoutesTestSuite) TestCreateGallery_TokenCheckedBeforeValidation() {
	rec, body := s.do(http.MethodPost, "/api/regions/gallery", "", map[string]any{
		"region_id": "abc",
	})

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.NotContains(body, "error")
	s.gallery.AssertNotCalled(s.T(), "CreateGallery", mock.Anything, mock.Anything)
}

func (s *RoutesTestSuite) TestCreateComment_LongFieldsRejected() {
	long := strings.Repeat("x", 256)

	rec, body := s.do(http.MethodPost, "/api/regions/gallery/post/comments", "user-token", map[string]any{
		"post_id":   12,
		"user_name": long,
		"content":   "hi",
		"password":  "1234",
	})
	s.Equal(http.StatusUnprocessableEntity, rec.Code)
	s.Equal("Please log in to continue.", body["error"])

	rec, body = s.do(http.MethodPost, "/api/regions/gallery/post/comments", "user-token", map[string]any{
		"post_id":  12,
		"content":  "hi",
		"password": long,
	})
	s.Equal(http.StatusUnprocessableEntity, rec.Code)
	s.Equal("The password is not correct.", body["error"])

	s.comments.AssertNotCalled(s.T(), "CreateComment", mock.Anything, mock.Anything)
}

func (s *RoutesTestSuite) TestInternalErrorMessageHidden() {
	s.gallery.On("ListGalleries", mock.Anything, dto.ListGalleriesInput{RegionID: 4, Page: 1}).
		Return(models.Page[models.Gallery]{}, apperr.Internal("failed to list galleries", errors.New("pool closed"))).Once()

	rec, body := s.do(http.MethodGet, "/api/regions/gallery?region_id=4", "", nil)

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Equal("Internal server error.", body["message"])
}

func (s *RoutesTestSuite) TestPublicInternalMessageShown() {
	s.regions.On("ListRegions", mock.Anything).
		Return([]models.Region(nil), apperr.InternalPublic("The server connection is unstable.", errors.New("pool closed"))).Once()

	rec, body := s.do(http.MethodGet, "/api/regions", "", nil)

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Equal("The server connection is unstable.", body["message"])
}
