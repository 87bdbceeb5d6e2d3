package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mindpulse/nowcast-api/schema"
)

// createCheckin is the api to record a daily mood/sleep check-in
func (s *Server) createCheckin(c *gin.Context) {
	account := c.GetString("requester")

	var params struct {
		Timestamp          int64    `json:"ts"`
		MoodScore          int      `json:"mood_score" binding:"required,min=1,max=10"`
		SleepHours         *float64 `json:"sleep_hours"`
		ChallengeCompleted int      `json:"challenge_completed_count"`
		ChallengeTotal     int      `json:"challenge_total_count"`
		Exercised          bool     `json:"exercised"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if params.Timestamp == 0 {
		params.Timestamp = time.Now().UTC().Unix()
	}

	id, err := s.mongoStore.CreateCheckin(schema.CheckinEvent{
		UserID:             account,
		Timestamp:          params.Timestamp,
		MoodScore:          params.MoodScore,
		SleepHours:         params.SleepHours,
		ChallengeCompleted: params.ChallengeCompleted,
		ChallengeTotal:     params.ChallengeTotal,
		Exercised:          params.Exercised,
	})
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id})
}
