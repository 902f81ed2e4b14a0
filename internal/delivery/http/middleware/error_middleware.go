package middleware

import (
	"errors"
	"net/http"

	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/pkg/apperror"
	"portfolio-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Check if there are errors appended to the context
		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if !errors.As(err, &appErr) {
			// SECURITY: Never expose internal error details to clients.
			logger.Log.Error("Internal Server Error", "error", err, "request_id", c.GetString(RequestIDKey))
			response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
			return
		}

		if appErr.Err != nil {
			logger.Log.Warn("Request failed", "status", appErr.Code, "error", appErr.Err, "request_id", c.GetString(RequestIDKey))
		}

		// Field errors are the whole body so the form can map them to inputs
		if appErr.Fields != nil {
			c.JSON(appErr.Code, appErr.Fields)
			return
		}
		response.Error(c, appErr.Code, appErr.Message, nil)
	}
}
