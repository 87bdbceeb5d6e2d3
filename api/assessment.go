package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mindpulse/nowcast-api/schema"
)

// createAssessment scores a submitted PHQ-9 questionnaire and stores the
// resulting assessment event.
func (s *Server) createAssessment(c *gin.Context) {
	account := c.GetString("requester")

	var params struct {
		Timestamp int64 `json:"ts"`
		Items     []int `json:"items" binding:"required"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	total, err := schema.ScorePHQ9(params.Items)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if params.Timestamp == 0 {
		params.Timestamp = time.Now().UTC().Unix()
	}

	id, err := s.mongoStore.CreateAssessment(schema.AssessmentEvent{
		UserID:     account,
		Timestamp:  params.Timestamp,
		TotalScore: total,
	})
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":          id,
		"total_score": total,
		"band":        schema.PHQ9BandOf(total),
	})
}
