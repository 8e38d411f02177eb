package http

import (
	"net/http"

	services "gallery_board/internal/services/gallery_service"
	"gallery_board/internal/transport/http/dto"
	"gallery_board/internal/transport/http/dto/response"

	"github.com/labstack/echo/v4"
)

// ListGalleries godoc
// @Summary List the galleries of a region
// @Description Ten galleries per page. An empty page answers 500.
// @Tags galleries
// @Produce json
// @Param region_id query int true "Region id"
// @Param page query int false "Page, from 1"
// @Success 200 {object} models.Page[models.Gallery]
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Message "No galleries"
// @Router /regions/gallery [get]
func (r *Routers) ListGalleries(c echo.Context) error {
	const op = "http.routers.ListGalleries"

	p, err := r.input(c, listGalleriesRules, nil)
	if err != nil {
		return r.fail(c, op, err)
	}

	page, err := r.GalleryService.ListGalleries(c.Request().Context(), dto.ListGalleriesInput{
		RegionID: p.asInt64("region_id"),
		Page:     p.page(),
	})
	if err != nil {
		return r.fail(c, op, err)
	}

	return c.JSON(http.StatusOK, page)
}

// CreateGallery godoc
// @Summary Create a gallery
// @Description The caller becomes the gallery manager.
// @Tags galleries
// @Accept json
// @Produce json
// @Param request body dto.CreateGalleryInput true "Gallery"
// @Success 201 {object} response.GalleryCreated
// @Failure 401 {object} response.Message
// @Failure 404 {object} response.Message "Unknown region"
// @Failure 422 {object} response.Error
// @Security BearerAuth
// @Router /regions/gallery [post]
func (r *Routers) CreateGallery(c echo.Context) error {
	const op = "http.routers.CreateGallery"

	p, err := r.input(c, createGalleryRules, asOwner(c, "manager_id"))
	if err != nil {
		return r.fail(c, op, err)
	}

	gallery, err := r.GalleryService.CreateGallery(c.Request().Context(), dto.CreateGalleryInput{
		RegionID:    p.asInt64("region_id"),
		Name:        p.asString("name"),
		Description: p.asString("description"),
		ManagerID:   p.asInt64("manager_id"),
		SubManager1: p.optInt64("sub_manager_1"),
		SubManager2: p.optInt64("sub_manager_2"),
		SubManager3: p.optInt64("sub_manager_3"),
		SubManager4: p.optInt64("sub_manager_4"),
		SubManager5: p.optInt64("sub_manager_5"),
	})
	if err != nil {
		return r.fail(c, op, err)
	}

	return c.JSON(http.StatusCreated, response.GalleryCreated{
		Message:     services.MsgGalleryCreated,
		GalleryInfo: gallery,
	})
}

// DeleteGallery godoc
// @Summary Delete a gallery
// @Description Only the gallery manager may delete it. Its posts and comments go with it.
// @Tags galleries
// @Accept json
// @Produce json
// @Param request body dto.DeleteGalleryInput true "Gallery"
// @Success 200 {object} response.GalleryDeleted
// @Failure 401 {object} response.Message
// @Failure 403 {object} response.Message
// @Failure 404 {object} response.Message
// @Failure 422 {object} response.Error
// @Security BearerAuth
// @Router /regions/gallery [delete]
func (r *Routers) DeleteGallery(c echo.Context) error {
	const op = "http.routers.DeleteGallery"

	p, err := r.input(c, deleteGalleryRules, asOwner(c, "manager_id"))
	if err != nil {
		return r.fail(c, op, err)
	}

	gallery, err := r.GalleryService.DeleteGallery(c.Request().Context(), dto.DeleteGalleryInput{
		RegionID:  p.asInt64("region_id"),
		GalleryID: p.asInt64("gallery_id"),
		ManagerID: p.asInt64("manager_id"),
	})
	if err != nil {
		return r.fail(c, op, err)
	}

	return c.JSON(http.StatusOK, response.GalleryDeleted{
		Message:        services.MsgGalleryDeleted,
		DeletedGallery: gallery,
	})
}
