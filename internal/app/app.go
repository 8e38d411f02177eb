package app

import (
	"context"
	"fmt"
	"log/slog"

	httpapp "gallery_board/internal/app/http"
	"gallery_board/internal/config"
	"gallery_board/internal/lib/jwt"
	"gallery_board/internal/lib/logger/sl"
	"gallery_board/internal/lib/sanitize"
	"gallery_board/internal/lib/validation"
	"gallery_board/internal/repository"
	"gallery_board/internal/services/auth"
	comments "gallery_board/internal/services/comment_service"
	galleries "gallery_board/internal/services/gallery_service"
	media "gallery_board/internal/services/media_service"
	posts "gallery_board/internal/services/post_service"
	regions "gallery_board/internal/services/region_service"
	storage "gallery_board/internal/storage/filestorage"
	"gallery_board/internal/storage/postgresql"
	redisapp "gallery_board/internal/storage/redis"
	httprouters "gallery_board/internal/transport/http"
)

type App struct {
	HTTPServer *httpapp.Server
	log        *slog.Logger
	repo       *repository.Repository
	redis      *redisapp.Client
}

func New(ctx context.Context, log *slog.Logger, cfg *config.Config) (*App, error) {
	const op = "app.New"

	if cfg.MigrateOnStart {
		if err := postgresql.Migrate(ctx, cfg.DSN, log); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	pool, err := postgresql.New(ctx, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	repo := repository.NewRepository(pool)

	redisClient, err := redisapp.Connect(ctx, cfg.Redis.RedisAddr, cfg.Redis.RedisPassword, cfg.Redis.RedisDB)
	if err != nil {
		repo.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	fileStorage, err := storage.NewLocalFileStorage(cfg.FileStorage.BaseDir, cfg.FileStorage.BaseURL)
	if err != nil {
		repo.Close()
		_ = redisClient.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	issuer := jwt.New(cfg.TokenSecret, cfg.TokenTTL)
	sanitizer := sanitize.New()

	authService := auth.New(log, repo.User, repository.NewRedisTokenRepo(redisClient), issuer)
	regionService := regions.NewRegionService(log, repo.Region)
	galleryService := galleries.NewGalleryService(log, repo.Gallery)
	postService := posts.NewPostService(log, repo.Post, sanitizer)
	commentService := comments.NewCommentService(log, repo.Comment, sanitizer)
	mediaService := media.NewMediaService(log, fileStorage, cfg.FileStorage.MaxBytes())

	validator := validation.New()
	err = validator.RegisterRule("unique_email", auth.MsgEmailTaken, func(ctx context.Context, value any) bool {
		email, _ := value.(string)

		taken, err := authService.EmailTaken(ctx, email)
		if err != nil {
			// the insert still enforces uniqueness
			log.Warn("email uniqueness check failed", sl.Err(err))
			return true
		}

		return !taken
	})
	if err != nil {
		repo.Close()
		_ = redisClient.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	routers := httprouters.NewRouter(
		log,
		validator,
		authService,
		regionService,
		galleryService,
		postService,
		commentService,
		mediaService,
		repo,
		httprouters.PingFunc(redisClient.HealthCheck),
	)

	server := httpapp.New(log, cfg.HTTP, cfg.FileStorage, routers, authService)
	server.BuildRouters()

	return &App{
		HTTPServer: server,
		log:        log,
		repo:       repo,
		redis:      redisClient,
	}, nil
}

// Stop shuts the HTTP server down, then releases the stores.
func (a *App) Stop() {
	const op = "app.Stop"

	if err := a.HTTPServer.Stop(); err != nil {
		a.log.Error("failed to stop http server", slog.String("op", op), sl.Err(err))
	}

	if err := a.redis.Close(); err != nil {
		a.log.Error("failed to close redis", slog.String("op", op), sl.Err(err))
	}

	a.repo.Close()
}
