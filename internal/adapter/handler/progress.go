package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-notes/internal/usecase/progress"
)

// UploadWithProgress handles POST /api/upload_with_progress
// @Summary      Upload with progress
// @Description  Streams progress events as server-sent events. The last event carries the notes.
// @Tags         Meetings
// @Accept       multipart/form-data
// @Produce      text/event-stream
// @Param        file  formData  file  true  "Meeting audio"
// @Success      200   {object}  progress.Event
// @Failure      400   {object}  common.ErrorResponse
// @Router       /upload_with_progress [post]
func (h *Meeting) UploadWithProgress(c echo.Context) error {
	up, err := readUpload(c)
	if err != nil {
		return HandleError(h.logger, c, toAppError(err, "", ""))
	}

	ctx := c.Request().Context()
	future, err := h.service.StartProcessing(ctx, up)
	if err != nil {
		return HandleError(h.logger, c, toAppError(err, "", ""))
	}

	defer h.metrics.StreamOpened()()

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set(echo.HeaderCacheControl, "no-cache")
	res.Header().Set(echo.HeaderConnection, "keep-alive")
	res.Header().Set("X-Accel-Buffering", "no")
	res.WriteHeader(http.StatusOK)

	sink := func(ev progress.Event) error {
		b, err := json.Marshal(ev)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(res, "data: %s\n\n", b); err != nil {
			return err
		}
		res.Flush()
		if ev.Terminal() {
			h.logger.Info("progress.stream.completed",
				zap.String("request_id", getRequestID(c)),
				zap.String("filename", up.Filename),
			)
		}
		return nil
	}

	if err := h.emitter.Run(ctx, future, sink); err != nil {
		// Client went away; the background task still stores the meeting.
		h.logger.Warn("progress.stream.aborted",
			zap.String("request_id", getRequestID(c)),
			zap.String("filename", up.Filename),
			zap.Error(err),
		)
	}
	return nil
}
