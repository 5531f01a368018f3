package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"videotube/domain/dto"
	"videotube/domain/model"
)

const ErrorUnmarshal = "Error while unmarshal"

// statusFor maps the domain error taxonomy onto HTTP status codes. Anything
// outside the taxonomy is treated as a server-side failure.
func statusFor(err error) int {
	switch {
	case errors.Is(err, model.ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, model.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	c.JSON(status, dto.Res{
		ResponseCode:    strconv.Itoa(status),
		ResponseMessage: err.Error(),
	})
}

func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.Res{
		ResponseCode:    "400",
		ResponseMessage: ErrorUnmarshal + ": " + err.Error(),
	})
}

// callerID returns the authenticated user id set by the auth middleware.
func callerID(c *gin.Context) string {
	return c.GetString("user_id")
}
