package http

import (
	"context"
	"net/http"
	"time"

	"gallery_board/internal/transport/http/dto/response"

	"github.com/labstack/echo/v4"
)

const healthTimeout = 2 * time.Second

// Health godoc
// @Summary Liveness and dependency check
// @Tags system
// @Produce json
// @Success 200 {object} response.Health
// @Failure 503 {object} response.Health
// @Router /health [get]
func (r *Routers) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthTimeout)
	defer cancel()

	resp := response.Health{
		Status:   response.StatusOK,
		Postgres: r.probe(ctx, "postgres", r.Postgres),
		Redis:    r.probe(ctx, "redis", r.Redis),
	}

	if resp.Postgres != response.StatusOK || resp.Redis != response.StatusOK {
		resp.Status = response.StatusDegraded
		return c.JSON(http.StatusServiceUnavailable, resp)
	}

	return c.JSON(http.StatusOK, resp)
}

func (r *Routers) probe(ctx context.Context, name string, p Pinger) string {
	if p == nil {
		return response.StatusOK
	}

	if err := p.Ping(ctx); err != nil {
		r.log.Warn("health probe failed", "store", name, "error", err.Error())
		return "down"
	}

	return response.StatusOK
}
