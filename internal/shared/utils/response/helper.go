package response

import (
	"errors"
	"net/http"

	"holidaze/internal/shared/errs"
	"holidaze/pkg/logger"
	"holidaze/pkg/noroff"

	"github.com/gin-gonic/gin"
)

func RespondJSON(c *gin.Context, status string, code int, message string, data interface{}, errors interface{}) {
	c.JSON(code, StandardApiResponse{
		Status:     status,
		StatusCode: code,
		Message:    message,
		Data:       data,
		Errors:     errors,
	})
}

// RespondError converts err into the status code and error detail the front-end shows
func RespondError(c *gin.Context, message string, err error) {
	code := StatusCode(err)
	if code >= http.StatusInternalServerError {
		logger.GetDefault().LogHTTPError(c, err, code)
	}
	RespondJSON(c, "error", code, message, nil, Detail(err))
}

// StatusCode maps application and upstream errors to an HTTP status
func StatusCode(err error) int {
	if code := errs.StatusOf(err); code != 0 {
		return code
	}

	var apiErr *noroff.APIError
	if errors.As(err, &apiErr) {
		if apiErr.StatusCode >= 400 && apiErr.StatusCode < 500 {
			return apiErr.StatusCode
		}
		return http.StatusBadGateway
	}

	if errors.Is(err, noroff.ErrTransport) {
		return http.StatusBadGateway
	}

	return http.StatusInternalServerError
}

// Detail is the human readable error text
func Detail(err error) string {
	var apiErr *noroff.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message()
	}
	return err.Error()
}
