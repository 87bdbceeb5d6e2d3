package api

import (
	"net/http"
	"net/http/httputil"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

var log = logrus.StandardLogger()

// DumpRequest is a middleware to dump incoming http requests if the
// trace mode is enabled.
func (s *Server) DumpRequest(c *gin.Context) {
	if s.traceMode {
		dump, err := httputil.DumpRequest(c.Request, false)
		if err != nil {
			log.WithFields(logrus.Fields{
				"prefix": "gin",
				"status": c.Writer.Status(),
				"method": c.Request.Method,
				"path":   c.Request.URL.Path,
			}).Error("fail to dump request")
		}

		log.WithFields(logrus.Fields{
			"prefix": "gin",
			"req":    string(dump),
		}).Debug("incoming request")
	}

	c.Next()
}

// recognizeAccount resolves the requester identity set by the fronting
// auth layer. Session issuance itself happens outside this service.
func (s *Server) recognizeAccount(c *gin.Context) {
	account := c.GetHeader("X-User-ID")
	if account == "" {
		abortWithEncoding(c, http.StatusUnauthorized, errorUnknownAccount)
		return
	}

	c.Set("requester", account)
	c.Next()
}
