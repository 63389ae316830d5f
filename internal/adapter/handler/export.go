package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-notes/errors"
	dto "github.com/johnquangdev/meeting-notes/internal/adapter/dto/meeting"
	"github.com/johnquangdev/meeting-notes/internal/usecase/export"
)

// Export handles document downloads
type Export struct {
	service *export.Service
	logger  *zap.Logger
}

// NewExportHandler creates a new export handler
func NewExportHandler(service *export.Service, logger *zap.Logger) *Export {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Export{service: service, logger: logger}
}

// Download handles GET /api/download/:id/:format
// @Summary      Download meeting notes
// @Description  Renders the notes as a Word (word) or PDF (pdf) attachment
// @Tags         Export
// @Produce      application/pdf
// @Produce      application/vnd.openxmlformats-officedocument.wordprocessingml.document
// @Param        id      path  int     true  "Meeting ID"
// @Param        format  path  string  true  "word or pdf"
// @Success      200  {file}    binary
// @Failure      400  {object}  common.ErrorResponse  "Invalid format"
// @Failure      404  {object}  common.ErrorResponse  "Meeting not found"
// @Router       /download/{id}/{format} [get]
func (h *Export) Download(c echo.Context) error {
	var req dto.DownloadRequest
	if err := bindID(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	f, err := h.service.Export(c.Request().Context(), req.ID, req.Format)
	if err != nil {
		return HandleError(h.logger, c, toAppError(err, strconv.FormatUint(uint64(req.ID), 10), req.Format))
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", f.Filename))
	return c.Blob(http.StatusOK, f.ContentType, f.Content)
}

// bindID binds path parameters into req. A malformed or zero id is reported
// as an unknown meeting.
func bindID(c echo.Context, req interface{}) error {
	if err := (&echo.DefaultBinder{}).BindPathParams(c, req); err != nil {
		return errors.ErrMeetingNotFound(c.Param("id"))
	}
	if err := c.Validate(req); err != nil {
		return errors.ErrMeetingNotFound(c.Param("id")).WithDetail("reason", err.Error())
	}
	return nil
}
