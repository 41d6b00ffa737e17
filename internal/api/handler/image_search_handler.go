package handler

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/spartancutz/barber-discovery/internal/core/ports"
)

// uploadSaver persists the raw upload; failures are logged but do not fail
// the search, since the saved copy is only kept for later inspection.
type uploadSaver interface {
	Save(originalName string, data []byte) (string, error)
}

// ImageSearchHandler handles HTTP requests for similarity search on an
// uploaded image.
type ImageSearchHandler struct {
	service ports.ImageSearchService
	uploads uploadSaver
	logger  zerolog.Logger
}

func NewImageSearchHandler(service ports.ImageSearchService, uploads uploadSaver, logger zerolog.Logger) *ImageSearchHandler {
	return &ImageSearchHandler{service: service, uploads: uploads, logger: logger}
}

// Search handles POST /image_search.
//
// @Summary      Find barbers whose example work resembles an uploaded image
// @Tags         barbers
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Image to search with"
// @Success      200   {object}  imageSearchResponse
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /image_search [post]
func (h *ImageSearchHandler) Search(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "file is required")
	}
	if fileHeader.Filename == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "empty filename")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unreadable upload")
	}
	defer src.Close()

	image, err := io.ReadAll(src)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unreadable upload")
	}
	if len(image) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "empty file")
	}

	if path, err := h.uploads.Save(fileHeader.Filename, image); err != nil {
		h.logger.Warn().Err(err).Msg("failed to persist upload")
	} else {
		h.logger.Debug().Str("path", path).Msg("upload saved")
	}

	ids, err := h.service.SearchByImage(c.Request().Context(), image)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, imageSearchResponse{SimilarBarbers: ids})
}
