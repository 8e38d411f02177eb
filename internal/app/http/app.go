package httpapp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"gallery_board/internal/config"
	"gallery_board/internal/domain/models"
	appmiddleware "gallery_board/internal/middleware"
	storage "gallery_board/internal/storage/filestorage"
	httprouters "gallery_board/internal/transport/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// multipart framing on top of the largest accepted image
const bodyOverhead = 64 << 10

type Server struct {
	log      *slog.Logger
	e        *echo.Echo
	routers  *httprouters.Routers
	verifier appmiddleware.TokenVerifier
	host     string
	port     string
	filesDir string
}

func New(
	log *slog.Logger,
	cfg config.HTTPConfig,
	files config.FileStorageConfig,
	routers *httprouters.Routers,
	verifier appmiddleware.TokenVerifier,
) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.ReadTimeout
	e.Server.WriteTimeout = cfg.WriteTimeout

	e.Use(middleware.CORS())
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit(strconv.FormatInt((files.MaxBytes()+bodyOverhead)>>10, 10) + "K"))
	e.Use(appmiddleware.PrometheusMetrics)

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:      true,
		LogMethod:   true,
		LogStatus:   true,
		LogRemoteIP: true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				slog.String("method", v.Method),
				slog.String("URI", v.URI),
				slog.Int("status", v.Status),
				slog.String("remote ip", v.RemoteIP),
				slog.Duration("latency", v.Latency),
			}

			if v.Error != nil {
				log.Error("request", append(attrs, slog.String("error", v.Error.Error()))...)
				return nil
			}

			log.Info("request", attrs...)

			return nil
		},
	}))

	return &Server{
		log:      log,
		e:        e,
		routers:  routers,
		verifier: verifier,
		host:     cfg.Host,
		port:     cfg.Port,
		filesDir: files.BaseDir,
	}
}

func (s *Server) MustRun() {
	const op = "http.Server.MustRun"

	s.log.Info(op, slog.String("start", "server"), slog.String("addr", s.addr()))

	if err := s.Start(); err != nil {
		panic(err)
	}
}

func (s *Server) Start() error {
	const op = "http.Server.Start"

	if err := s.e.Start(s.addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("%s server stopped: %w", op, err)
	}

	return nil
}

func (s *Server) Stop() error {
	const op = "http.Server.Stop"

	optCtx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()

	s.log.Info("stopping http server", slog.String("op", op))

	if err := s.e.Shutdown(optCtx); err != nil {
		return fmt.Errorf("%s could not shutdown server gracefuly: %w", op, err)
	}

	return nil
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.e
}

func (s *Server) addr() string {
	return net.JoinHostPort(s.host, s.port)
}

func (s *Server) BuildRouters() {
	bearer := appmiddleware.BearerAuth(s.log, s.verifier)
	adminOnly := appmiddleware.RequireRole(models.RoleAdmin)

	s.e.GET("/health", s.routers.Health)
	s.e.GET("/metrics", echoprometheus.NewHandler())
	s.e.GET("/swagger/*", echoSwagger.WrapHandler)
	s.e.Static(storage.PublicPrefix, s.filesDir)

	api := s.e.Group("/api")
	{
		api.POST("/register", s.routers.Register)
		api.POST("/login", s.routers.Login)
		api.POST("/logout", s.routers.Logout, bearer)
		api.GET("/me", s.routers.Me, bearer)

		api.POST("/upload-image", s.routers.UploadImage)
		api.GET("/search", s.routers.Search)

		regions := api.Group("/regions")
		{
			regions.GET("", s.routers.ListRegions)
			regions.POST("", s.routers.CreateRegion, bearer, adminOnly)

			regions.GET("/gallery", s.routers.ListGalleries)
			regions.POST("/gallery", s.routers.CreateGallery, bearer)
			regions.DELETE("/gallery", s.routers.DeleteGallery, bearer)

			regions.GET("/gallery/posts", s.routers.ListPosts)

			regions.GET("/gallery/post", s.routers.ViewPost)
			regions.POST("/gallery/post", s.routers.CreatePost, bearer)
			regions.PUT("/gallery/post", s.routers.UpdatePost, bearer)
			regions.DELETE("/gallery/post", s.routers.DeletePost, bearer)

			regions.GET("/gallery/post/comments", s.routers.ListComments)
			regions.POST("/gallery/post/comments", s.routers.CreateComment, bearer)
			regions.PUT("/gallery/post/comments", s.routers.UpdateComment, bearer)
			regions.DELETE("/gallery/post/comments", s.routers.DeleteComment, bearer)
		}
	}
}
