package http

import (
	"log/slog"
	"net/http"

	"gallery_board/internal/transport/http/dto"
	"gallery_board/internal/transport/http/dto/response"

	"github.com/labstack/echo/v4"
)

// UploadImage godoc
// @Summary Upload an image
// @Description Stores a jpeg, png or gif and returns its public URL.
// @Tags media
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Image, at most file_storage.max_size KiB"
// @Success 200 {object} response.Upload
// @Failure 422 {object} response.ValidationErrors
// @Router /upload-image [post]
func (r *Routers) UploadImage(c echo.Context) error {
	const op = "http.routers.UploadImage"

	log := r.log.With(
		slog.String("op", op),
	)

	var in dto.UploadImageInput

	// an unreadable form is reported like a missing image
	file, err := c.FormFile("image")
	if err != nil {
		log.Debug("no image in request", slog.String("reason", err.Error()))
	} else {
		in.Image = file
	}

	url, err := r.MediaService.UploadImage(c.Request().Context(), in)
	if err != nil {
		return r.fail(c, op, err)
	}

	return c.JSON(http.StatusOK, response.Upload{URL: url})
}
