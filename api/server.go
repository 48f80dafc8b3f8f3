package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/sirupsen/logrus"

	"github.com/MilesT98/Actify-2/store"
	"github.com/MilesT98/Actify-2/utils"
)

var log = logrus.WithField("prefix", "api")

// Server serves the Actify REST API and the websocket event stream.
type Server struct {
	router     *gin.Engine
	mongoStore store.ActifyStore
	hub        *Hub

	// now supplies the reference time for ranking windows; injected so the
	// handlers stay deterministic under test
	now func() time.Time

	traceMode bool
}

func NewServer(mongoStore store.ActifyStore, traceMode bool) *Server {
	hub := newHub()
	go hub.run()

	return &Server{
		mongoStore: mongoStore,
		hub:        hub,
		now:        time.Now,
		traceMode:  traceMode,
	}
}

// Run starts the HTTP server on the given address.
func (s *Server) Run(addr string) error {
	s.router = s.setupRouter()

	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return srv.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(s.CORS)
	r.Use(s.DumpRequest)

	apiRoute := r.Group("/api")

	apiRoute.GET("/", s.root)

	apiRoute.POST("/users", s.createUser)
	apiRoute.GET("/users/:userID", s.getUser)

	apiRoute.POST("/groups", s.createGroup)
	apiRoute.GET("/groups", s.listGroups)
	apiRoute.GET("/groups/:groupID", s.getGroup)
	apiRoute.POST("/groups/:groupID/join", s.joinGroup)
	apiRoute.POST("/groups/:groupID/leave", s.leaveGroup)

	apiRoute.GET("/notifications/:userID", s.listNotifications)
	apiRoute.POST("/notifications/:notificationID/read", s.markNotificationRead)

	apiRoute.POST("/submissions", s.createSubmission)
	apiRoute.GET("/submissions", s.listSubmissions)
	apiRoute.POST("/submissions/:submissionID/vote", s.voteSubmission)
	apiRoute.POST("/submissions/:submissionID/react", s.reactSubmission)

	apiRoute.GET("/rankings/weekly", s.weeklyRankings)
	apiRoute.GET("/rankings/alltime", s.allTimeRankings)

	apiRoute.GET("/health", s.healthCheck)
	apiRoute.GET("/stats", s.getStats)

	apiRoute.GET("/ws", s.handleWebSocket)

	return r
}

// CORS mirrors the permissive policy of the mobile clients.
func (s *Server) CORS(c *gin.Context) {
	c.Header("Access-Control-Allow-Origin", "*")
	c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
	c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

	if c.Request.Method == http.MethodOptions {
		c.AbortWithStatus(http.StatusNoContent)
		return
	}

	c.Next()
}

func (s *Server) root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "ACTIFY API"})
}

// localizedMessage renders a notification message in the requested language,
// falling back to the message id when rendering fails.
func (s *Server) localizedMessage(c *gin.Context, messageID string, data map[string]interface{}) string {
	localizer := utils.NewLocalizer(c.Query("lang"))

	message, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    messageID,
		TemplateData: data,
	})
	if err != nil {
		log.WithError(err).WithField("message_id", messageID).Warn("localize message")
		return messageID
	}

	return message
}
