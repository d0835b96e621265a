// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"evconnect/internal/http/handlers"
	"evconnect/internal/http/middleware"
	"evconnect/internal/maps"
	"evconnect/internal/modules/assist"
	"evconnect/internal/modules/booking"
	"evconnect/internal/modules/catalog"
)

// RouterDeps carries the services the API exposes. Assist and Distance may
// be nil when their API keys are not configured; the endpoints then answer
// 503.
type RouterDeps struct {
	Catalog  *catalog.Service
	Booking  *booking.Service
	Assist   *assist.Service
	Distance *maps.DistanceService
	Logger   *zap.Logger
}

func NewRouter(deps RouterDeps) http.Handler {
	r := gin.New()
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.Logging(deps.Logger))

	stationHandler := handlers.NewStationHandler(deps.Catalog, deps.Distance)
	r.GET("/api/stations", stationHandler.List)
	r.GET("/api/stations/:id", stationHandler.Get)
	r.GET("/api/stations/:id/distance", stationHandler.Distance)
	r.POST("/api/stations/refresh", stationHandler.Refresh)

	bookingHandler := handlers.NewBookingHandler(deps.Booking)
	r.POST("/api/quotes", bookingHandler.Quote)
	r.GET("/api/bookings/options", bookingHandler.Options)

	assistHandler := handlers.NewAssistHandler(deps.Assist)
	r.POST("/api/assist/chat", assistHandler.Chat)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
