package httpapi

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Leganyst/meetpoint/internal/service"
)

// storageTimeout bounds every request's storage work; the core imposes no
// timeout of its own.
const storageTimeout = 5 * time.Second

// API exposes the core command/query surface as loopback JSON for the UI
// collaborator.
type API struct {
	directory    *service.DirectoryService
	appointments *service.AppointmentService
	log          zerolog.Logger
}

func New(directory *service.DirectoryService, appointments *service.AppointmentService, log zerolog.Logger) *API {
	return &API{
		directory:    directory,
		appointments: appointments,
		log:          log,
	}
}

// Router builds the gin engine with all routes registered.
func (api *API) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), api.requestLogger())

	r.GET("/participants", api.listParticipants)
	r.GET("/participants/nearby", api.nearbyParticipants)
	r.GET("/participants/:id", api.getParticipant)
	r.PUT("/participants/:id/location", api.updateLocation)

	r.GET("/session", api.getSession)
	r.PUT("/session", api.setSession)
	r.DELETE("/session", api.clearSession)

	r.POST("/appointments", api.createAppointment)
	r.GET("/appointments", api.listMyAppointments)
	r.GET("/appointments/:id", api.getAppointment)
	r.POST("/appointments/:id/status", api.setAppointmentStatus)
	r.POST("/appointments/:id/ratings", api.submitRating)

	return r
}

func (api *API) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		api.log.Debug().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	}
}

// reqContext derives a storage-bounded context from the request.
func reqContext(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), storageTimeout)
}
