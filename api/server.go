package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mindpulse/nowcast-api/external/indicator"
	"github.com/mindpulse/nowcast-api/store"
)

// Server serves the nowcast dashboard HTTP API.
type Server struct {
	mongoStore store.MongoStore
	extractor  *indicator.IndicatorClient
	traceMode  bool
}

func NewServer(mongoStore store.MongoStore, extractor *indicator.IndicatorClient, traceMode bool) *Server {
	return &Server{
		mongoStore: mongoStore,
		extractor:  extractor,
		traceMode:  traceMode,
	}
}

func (s *Server) Run(addr string) error {
	router := s.setupRouter()

	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}
	return srv.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(s.DumpRequest)

	r.GET("/healthz", s.healthz)

	events := r.Group("/api/events")
	events.Use(s.recognizeAccount)
	{
		events.POST("/checkins", s.createCheckin)
		events.POST("/chats", s.createChatEvent)
		events.POST("/assessments", s.createAssessment)
	}

	dashboard := r.Group("/api/dashboard")
	dashboard.Use(s.recognizeAccount)
	{
		dashboard.GET("/weekly", s.getWeeklyDashboard)
		dashboard.POST("/weekly/refresh", s.refreshWeeklyDashboard)
	}

	admin := r.Group("/api/admin")
	{
		admin.GET("/alerts", s.listLatestAlerts)
	}

	return r
}

func (s *Server) healthz(c *gin.Context) {
	if err := s.mongoStore.Ping(); err != nil {
		abortWithEncoding(c, http.StatusServiceUnavailable, errorInternalServer, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
