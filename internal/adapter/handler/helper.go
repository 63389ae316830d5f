package handler

import (
	stdErrors "errors"
	"fmt"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-notes/errors"
	"github.com/johnquangdev/meeting-notes/internal/adapter/dto/common"
	ucerrors "github.com/johnquangdev/meeting-notes/internal/usecase/errors"
	"github.com/johnquangdev/meeting-notes/internal/usecase/meeting"
)

// getRequestID reads the request id set by the RequestID middleware
func getRequestID(c echo.Context) string {
	if c == nil || c.Request() == nil {
		return ""
	}
	if id := c.Response().Header().Get(echo.HeaderXRequestID); id != "" {
		return id
	}
	return c.Request().Header.Get(echo.HeaderXRequestID)
}

// HandleSuccess writes data as a 200 JSON response
func HandleSuccess(logger *zap.Logger, c echo.Context, data interface{}) error {
	if logger != nil {
		logger.Debug("http.response.success",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
		)
	}
	return c.JSON(http.StatusOK, data)
}

// HandleError centralizes error handling and logging
func HandleError(logger *zap.Logger, c echo.Context, err error) error {
	reqID := getRequestID(c)

	var appErr errors.AppError
	if !stdErrors.As(err, &appErr) {
		appErr = errors.ErrInternal(err)
	}

	if logger != nil {
		log := logger.Warn
		if appErr.HTTPCode >= http.StatusInternalServerError {
			log = logger.Error
		}
		log("http.response.error",
			zap.String("request_id", reqID),
			zap.String("path", c.Path()),
			zap.String("app_code", appErr.Code.String()),
			zap.Error(err),
		)
	}

	body := common.ErrorResponse{
		Error:   appErr.Message,
		Details: appErr.Details,
		Code:    appErr.Code.String(),
	}
	if appErr.Raw != nil && appErr.HTTPCode < http.StatusInternalServerError {
		body.Message = appErr.Raw.Error()
	}

	return c.JSON(appErr.HTTPCode, body)
}

// toAppError translates use-case errors to application errors
func toAppError(err error, id, format string) error {
	var appErr errors.AppError
	switch {
	case stdErrors.As(err, &appErr):
		return appErr
	case stdErrors.Is(err, ucerrors.ErrMissingFile):
		return errors.ErrMissingFile("No file uploaded")
	case stdErrors.Is(err, ucerrors.ErrEmptyFilename):
		return errors.ErrMissingFile("No selected file")
	case stdErrors.Is(err, ucerrors.ErrMeetingNotFound):
		return errors.ErrMeetingNotFound(id)
	case stdErrors.Is(err, ucerrors.ErrInvalidFormat):
		return errors.ErrInvalidExportFormat(format)
	case stdErrors.Is(err, ucerrors.ErrRenderFailed):
		return errors.ErrExportFailed(format, err)
	case stdErrors.Is(err, ucerrors.ErrStorageFailed):
		return errors.ErrStorageFailed("save", err)
	case stdErrors.Is(err, ucerrors.ErrPersistFailed):
		return errors.ErrDBQueryFailed("meetings", err)
	default:
		return errors.ErrInternal(err)
	}
}

// readUpload extracts the multipart "file" part
func readUpload(c echo.Context) (meeting.Upload, error) {
	fh, err := c.FormFile("file")
	if err != nil {
		if stdErrors.Is(err, http.ErrMissingFile) {
			// A part named "file" without a filename is parsed as a plain form value
			if form, ferr := c.MultipartForm(); ferr == nil && len(form.Value["file"]) > 0 {
				return meeting.Upload{}, ucerrors.ErrEmptyFilename
			}
			return meeting.Upload{}, ucerrors.ErrMissingFile
		}
		return meeting.Upload{}, fmt.Errorf("%w: %v", ucerrors.ErrMissingFile, err)
	}
	if fh.Filename == "" {
		return meeting.Upload{}, ucerrors.ErrEmptyFilename
	}

	f, err := fh.Open()
	if err != nil {
		return meeting.Upload{}, fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return meeting.Upload{}, fmt.Errorf("read upload: %w", err)
	}
	return meeting.Upload{Filename: fh.Filename, Data: data}, nil
}
