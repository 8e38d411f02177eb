package http

import (
	"net/http"

	services "gallery_board/internal/services/region_service"
	"gallery_board/internal/transport/http/dto"
	"gallery_board/internal/transport/http/dto/response"

	"github.com/labstack/echo/v4"
)

// ListRegions godoc
// @Summary List regions
// @Tags regions
// @Produce json
// @Success 200 {array} models.Region
// @Failure 500 {object} response.Message "No regions"
// @Router /regions [get]
func (r *Routers) ListRegions(c echo.Context) error {
	const op = "http.routers.ListRegions"

	regions, err := r.RegionService.ListRegions(c.Request().Context())
	if err != nil {
		return r.fail(c, op, err)
	}

	return c.JSON(http.StatusOK, regions)
}

// CreateRegion godoc
// @Summary Create a region
// @Tags regions
// @Accept json
// @Produce json
// @Param request body dto.CreateRegionInput true "Region"
// @Success 201 {object} response.RegionCreated
// @Failure 401 {object} response.Message
// @Failure 403 {object} response.Message
// @Failure 422 {object} response.Error
// @Security BearerAuth
// @Router /regions [post]
func (r *Routers) CreateRegion(c echo.Context) error {
	const op = "http.routers.CreateRegion"

	p, err := r.input(c, createRegionRules, nil)
	if err != nil {
		return r.fail(c, op, err)
	}

	region, err := r.RegionService.CreateRegion(c.Request().Context(), dto.CreateRegionInput{
		Name: p.asString("name"),
	})
	if err != nil {
		return r.fail(c, op, err)
	}

	return c.JSON(http.StatusCreated, response.RegionCreated{
		Message: services.MsgRegionCreated,
		Region:  region,
	})
}
