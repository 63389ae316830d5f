package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	dto "github.com/johnquangdev/meeting-notes/internal/adapter/dto/meeting"
	"github.com/johnquangdev/meeting-notes/internal/adapter/presenter"
	"github.com/johnquangdev/meeting-notes/internal/infrastructure/metrics"
	"github.com/johnquangdev/meeting-notes/internal/usecase/meeting"
	"github.com/johnquangdev/meeting-notes/internal/usecase/progress"
)

// Meeting handles upload and history requests
type Meeting struct {
	service *meeting.Service
	emitter *progress.Emitter
	metrics *metrics.Metrics
	logger  *zap.Logger
}

// NewMeetingHandler creates a new meeting handler
func NewMeetingHandler(service *meeting.Service, emitter *progress.Emitter, m *metrics.Metrics, logger *zap.Logger) *Meeting {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Meeting{
		service: service,
		emitter: emitter,
		metrics: m,
		logger:  logger,
	}
}

// Upload handles POST /api/upload
// @Summary      Upload a meeting recording
// @Description  Extracts structured notes from the audio file and stores the meeting
// @Tags         Meetings
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Meeting audio"
// @Success      200   {object}  meeting.MeetingResponse
// @Failure      400   {object}  common.ErrorResponse  "No file uploaded or no selected file"
// @Failure      500   {object}  common.ErrorResponse
// @Router       /upload [post]
func (h *Meeting) Upload(c echo.Context) error {
	up, err := readUpload(c)
	if err != nil {
		return HandleError(h.logger, c, toAppError(err, "", ""))
	}

	m, err := h.service.Process(c.Request().Context(), up)
	if err != nil {
		return HandleError(h.logger, c, toAppError(err, "", ""))
	}

	return HandleSuccess(h.logger, c, presenter.ToMeetingResponse(m))
}

// History handles GET /api/history
// @Summary      List meetings
// @Description  Returns every stored meeting, newest first
// @Tags         Meetings
// @Produce      json
// @Success      200  {array}   meeting.MeetingResponse
// @Failure      500  {object}  common.ErrorResponse
// @Router       /history [get]
func (h *Meeting) History(c echo.Context) error {
	list, err := h.service.History(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, toAppError(err, "", ""))
	}
	return HandleSuccess(h.logger, c, presenter.ToMeetingListResponse(list))
}

// Get handles GET /api/meetings/:id
// @Summary      Get a meeting
// @Tags         Meetings
// @Produce      json
// @Param        id   path      int  true  "Meeting ID"
// @Success      200  {object}  meeting.MeetingResponse
// @Failure      404  {object}  common.ErrorResponse
// @Router       /meetings/{id} [get]
func (h *Meeting) Get(c echo.Context) error {
	var req dto.MeetingIDRequest
	if err := bindID(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	m, err := h.service.Get(c.Request().Context(), req.ID)
	if err != nil {
		return HandleError(h.logger, c, toAppError(err, strconv.FormatUint(uint64(req.ID), 10), ""))
	}
	return HandleSuccess(h.logger, c, presenter.ToMeetingResponse(m))
}
