package utils

import (
	"net/http"

	"hotelvoice/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse defines the structure of error responses. Spoken always
// carries a complete German sentence for the voice agent; raw errors or
// silence never reach the caller.
type ErrorResponse struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
	Spoken  string `json:"spoken"`
}

const internalSpoken = "Es gab leider ein technisches Problem. Bitte versuchen Sie es gleich noch einmal."

// ErrorHandler is a middleware that catches panics and returns structured errors.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger := GetLogger()
				logger.Error("Unhandled panic", zap.Any("error", err))

				c.JSON(http.StatusInternalServerError, ErrorResponse{
					Message: "Internal Server Error",
					Spoken:  internalSpoken,
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// JSONError sends a standardized JSON error response.
func JSONError(c *gin.Context, status int, code, message, spoken string) {
	logger := GetLogger()
	logger.Warn(message, zap.String("code", code))
	if spoken == "" {
		spoken = internalSpoken
	}
	c.JSON(status, ErrorResponse{Code: code, Message: message, Spoken: spoken})
}

// RespondDomainError maps a typed core error to a transport response. The
// core itself never formats HTTP responses; this is the single place where
// the taxonomy meets status codes.
func RespondDomainError(c *gin.Context, err error) {
	switch e := err.(type) {
	case *models.DateParseError:
		JSONError(c, http.StatusUnprocessableEntity, "DATE_PARSE_ERROR", e.Error(), e.Spoken())
	case *models.ValidationError:
		JSONError(c, http.StatusBadRequest, e.Code, e.Error(), e.Spoken())
	case *models.BusinessRuleViolation:
		JSONError(c, http.StatusConflict, e.Code, e.Error(), e.Spoken())
	case *models.UpstreamUnavailable:
		JSONError(c, http.StatusBadGateway, "UPSTREAM_UNAVAILABLE", e.Error(), e.Spoken())
	default:
		JSONError(c, http.StatusInternalServerError, "INTERNAL", "internal error", internalSpoken)
	}
}
