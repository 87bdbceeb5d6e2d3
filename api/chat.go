package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mindpulse/nowcast-api/external/indicator"
	"github.com/mindpulse/nowcast-api/schema"
)

// createChatEvent records the psychological indicators of one coaching
// conversation. Callers either submit pre-extracted indicators or a raw
// message, in which case the extraction service is consulted.
func (s *Server) createChatEvent(c *gin.Context) {
	account := c.GetString("requester")

	var params struct {
		Timestamp int64                    `json:"ts"`
		Message   string                   `json:"message"`
		Extracted *indicator.ExtractResult `json:"extracted"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if params.Timestamp == 0 {
		params.Timestamp = time.Now().UTC().Unix()
	}

	extracted := params.Extracted
	if extracted == nil {
		if params.Message == "" {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
			return
		}
		result, err := s.extractor.Extract(params.Message)
		if err != nil {
			abortWithEncoding(c, http.StatusServiceUnavailable, errorExtractionFailed, err)
			return
		}
		extracted = result
	}

	id, err := s.mongoStore.CreateChatEvent(schema.ChatEvent{
		UserID:          account,
		Timestamp:       params.Timestamp,
		Distress:        extracted.Distress,
		Rumination:      extracted.Rumination,
		SleepDifficulty: extracted.SleepDifficulty,
		Distortion:      extracted.Distortion,
	})
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id})
}
