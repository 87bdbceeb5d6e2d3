package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mindpulse/nowcast-api/score"
)

// getWeeklyDashboard recomputes the weekly nowcast rows from the
// requester's full event history and returns them.
func (s *Server) getWeeklyDashboard(c *gin.Context) {
	account := c.GetString("requester")

	events, err := s.mongoStore.ListRawEvents(account)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"weeks": score.ComputeWeeklyDashboard(events),
	})
}

// refreshWeeklyDashboard recomputes the requester's dashboard and persists
// it for the admin triage view.
func (s *Server) refreshWeeklyDashboard(c *gin.Context) {
	account := c.GetString("requester")

	events, err := s.mongoStore.ListRawEvents(account)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	records := score.ComputeWeeklyDashboard(events)
	if err := s.mongoStore.SaveWeeklyRecords(account, records); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"weeks": records,
	})
}

// listLatestAlerts returns each user's most recent persisted week with the
// alert flag set.
func (s *Server) listLatestAlerts(c *gin.Context) {
	alerts, err := s.mongoStore.ListLatestAlerts()
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	results := make([]gin.H, 0, len(alerts))
	for _, record := range alerts {
		results = append(results, gin.H{
			"owner":  record.Owner,
			"record": record,
		})
	}

	c.JSON(http.StatusOK, gin.H{"alerts": results})
}
