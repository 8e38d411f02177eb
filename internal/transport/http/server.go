package http

import (
	"context"
	"log/slog"
	"net/http"

	"gallery_board/internal/domain/models"
	"gallery_board/internal/lib/apperr"
	"gallery_board/internal/lib/logger/sl"
	"gallery_board/internal/lib/validation"
	"gallery_board/internal/middleware"
	"gallery_board/internal/transport/http/dto"
	"gallery_board/internal/transport/http/dto/response"

	"github.com/labstack/echo/v4"

	_ "gallery_board/docs"
)

type AuthService interface {
	Register(ctx context.Context, in dto.RegisterInput) (models.User, error)
	Login(ctx context.Context, email, password string) (models.Token, error)
	Logout(ctx context.Context, identity models.Identity) error
	Me(ctx context.Context, identity models.Identity) (models.User, error)
}

type RegionService interface {
	ListRegions(ctx context.Context) ([]models.Region, error)
	CreateRegion(ctx context.Context, in dto.CreateRegionInput) (models.Region, error)
}

type GalleryService interface {
	ListGalleries(ctx context.Context, in dto.ListGalleriesInput) (models.Page[models.Gallery], error)
	CreateGallery(ctx context.Context, in dto.CreateGalleryInput) (models.Gallery, error)
	DeleteGallery(ctx context.Context, in dto.DeleteGalleryInput) (models.Gallery, error)
}

type PostService interface {
	ListPosts(ctx context.Context, in dto.ListPostsInput) (models.Page[models.Post], error)
	ViewPost(ctx context.Context, in dto.ViewPostInput) (models.Post, error)
	CreatePost(ctx context.Context, in dto.CreatePostInput) (models.Post, error)
	UpdatePost(ctx context.Context, in dto.UpdatePostInput) (models.Post, error)
	DeletePost(ctx context.Context, in dto.DeletePostInput) (models.Post, error)
}

type CommentService interface {
	ListComments(ctx context.Context, in dto.ListCommentsInput) ([]models.Comment, error)
	CreateComment(ctx context.Context, in dto.CreateCommentInput) (models.Comment, error)
	UpdateComment(ctx context.Context, in dto.UpdateCommentInput) (models.Comment, error)
	DeleteComment(ctx context.Context, in dto.DeleteCommentInput) error
}

type MediaService interface {
	UploadImage(ctx context.Context, in dto.UploadImageInput) (string, error)
}

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error {
	return f(ctx)
}

type Routers struct {
	log            *slog.Logger
	validator      *validation.Engine
	AuthService    AuthService
	RegionService  RegionService
	GalleryService GalleryService
	PostService    PostService
	CommentService CommentService
	MediaService   MediaService
	Postgres       Pinger
	Redis          Pinger
}

func NewRouter(
	log *slog.Logger,
	validator *validation.Engine,
	authService AuthService,
	regionService RegionService,
	galleryService GalleryService,
	postService PostService,
	commentService CommentService,
	mediaService MediaService,
	postgres, redis Pinger,
) *Routers {
	return &Routers{
		log:            log,
		validator:      validator,
		AuthService:    authService,
		RegionService:  regionService,
		GalleryService: galleryService,
		PostService:    postService,
		CommentService: commentService,
		MediaService:   mediaService,
		Postgres:       postgres,
		Redis:          redis,
	}
}

// input reads the request payload and checks it against table. The first
// failing field in table order decides the 422 message.
func (r *Routers) input(c echo.Context, table validation.Table, fill func(payload)) (payload, error) {
	p, err := readPayload(c)
	if err != nil {
		return nil, apperr.Validation(response.ErrInvalidRequestFormat.Message)
	}

	if fill != nil {
		fill(p)
	}

	errs := r.validator.Check(c.Request().Context(), p, table)
	if field, ok := table.First(errs); ok {
		return nil, apperr.Validation(field.Message)
	}

	return p, nil
}

// asOwner fills the caller's identity into the payload, overriding whatever
// the client sent.
func asOwner(c echo.Context, idField string) func(payload) {
	return func(p payload) {
		identity, ok := middleware.IdentityFrom(c)
		if !ok {
			delete(p, idField)
			return
		}

		p[idField] = identity.UserID

		if _, set := p["user_name"]; !set && identity.UserName != "" {
			p["user_name"] = identity.UserName
		}
	}
}

// fail writes err as a JSON response with the status its kind maps to.
func (r *Routers) fail(c echo.Context, op string, err error) error {
	e := apperr.As(err)

	switch e.Kind {
	case apperr.KindValidation:
		if e.Fields != nil {
			return c.JSON(http.StatusUnprocessableEntity, response.ValidationErrors{
				Message: e.Message,
				Errors:  e.Fields,
			})
		}
		return c.JSON(http.StatusUnprocessableEntity, response.Error{Error: e.Message})
	case apperr.KindUnauthenticated:
		return c.JSON(http.StatusUnauthorized, response.Message{Message: e.Message})
	case apperr.KindForbidden:
		return c.JSON(http.StatusForbidden, response.Message{Message: e.Message})
	case apperr.KindPasswordMismatch:
		return c.JSON(http.StatusPaymentRequired, response.Message{Message: e.Message})
	case apperr.KindNotFound:
		return c.JSON(http.StatusNotFound, response.Message{Message: e.Message})
	case apperr.KindEmpty:
		return c.JSON(http.StatusInternalServerError, response.Message{Message: e.Message})
	}

	r.log.Error("request failed", slog.String("op", op), sl.Err(err))

	msg := response.ErrInternal.Message
	if e.Public && e.Message != "" {
		msg = e.Message
	}

	return c.JSON(http.StatusInternalServerError, response.Message{Message: msg})
}
