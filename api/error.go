package api

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var (
	errorInvalidParameters = errorResponse{1001, "invalid parameters"}
	errorUnknownAccount    = errorResponse{1002, "unknown account"}
	errorInternalServer    = errorResponse{1500, "internal server error"}
	errorExtractionFailed  = errorResponse{1503, "indicator extraction unavailable"}
)

// abortWithEncoding aborts the request with a coded error body and logs
// the underlying errors.
func abortWithEncoding(c *gin.Context, statusCode int, resp errorResponse, errors ...error) {
	for _, err := range errors {
		log.WithFields(logrus.Fields{
			"prefix": "api",
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
		}).WithError(err).Error(resp.Message)
	}
	c.AbortWithStatusJSON(statusCode, gin.H{"error": resp})
}
