package api

import (
	stdhttp "net/http"
	"time"

	intconfig "railbook/internal/config"
	h "railbook/internal/http/handlers"
	"railbook/internal/http/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	middleware.SetJWTSecret(env.JWTSecret)
	h.Configure(env)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), corsMiddleware(env))

	_ = r.SetTrustedProxies(nil)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)
		api.GET("/routes", h.Routes)

		// Auth
		auth := api.Group("/auth")
		auth.POST("/login", h.Login)
		auth.POST("/register", h.Register)
		auth.GET("/me", middleware.RequireAuth(), h.Me)

		// Public catalog
		api.GET("/stations", h.GetStations)
		api.GET("/trains", h.GetTrains)

		// Booking pipeline (guest-friendly; user attached when authenticated)
		flow := api.Group("/booking-sessions", middleware.AuthOptional())
		flow.POST("", h.CreateBookingSession)
		flow.GET("/:id", h.GetBookingSession)
		flow.POST("/:id/search", h.SubmitSearch)
		flow.POST("/:id/select-train", h.SelectTrain)
		flow.POST("/:id/seats/toggle", h.ToggleSeat)
		flow.POST("/:id/seats/confirm", h.ConfirmSeats)
		flow.POST("/:id/back", h.StepBack)
		flow.POST("/:id/confirm", h.ConfirmSummary)
		flow.POST("/:id/pay", h.Pay)
		flow.POST("/:id/reset", h.ResetSession)

		// My bookings
		bookings := api.Group("/bookings", middleware.RequireAuth())
		bookings.GET("", h.GetMyBookings)
		bookings.GET("/:reference", h.GetBookingDetail)
		bookings.GET("/:reference/ticket", h.GetBookingETicketPDF)

		// Admin panels
		admin := api.Group("/admin", middleware.RequireAdmin())
		{
			stations := admin.Group("/stations")
			stations.GET("", h.GetStations)
			stations.POST("", h.CreateStation)
			stations.PUT("/:id", h.UpdateStation)
			stations.DELETE("/:id", h.DeleteStation)

			trains := admin.Group("/trains")
			trains.GET("", h.GetTrains)
			trains.POST("", h.CreateTrain)
			trains.PUT("/:id", h.UpdateTrain)
			trains.DELETE("/:id", h.DeleteTrain)
			trains.POST("/:id/seats", h.GenerateTrainSeats)

			routes := admin.Group("/routes")
			routes.GET("", h.GetAdminRoutes)
			routes.POST("", h.CreateRoute)
			routes.PUT("/:id", h.UpdateRoute)
			routes.DELETE("/:id", h.DeleteRoute)

			schedules := admin.Group("/schedules")
			schedules.GET("", h.GetSchedules)
			schedules.POST("", h.CreateSchedule)
			schedules.PUT("/:id", h.UpdateSchedule)
			schedules.DELETE("/:id", h.DeleteSchedule)

			users := admin.Group("/users")
			users.GET("", h.GetUsers)
			users.POST("", h.CreateUser)
			users.PUT("/:id", h.UpdateUser)
			users.DELETE("/:id", h.DeleteUser)
		}
	}

	h.SetRouter(r)
	return r
}

func corsMiddleware(env intconfig.Env) gin.HandlerFunc {
	origins := env.CORSAllowedOrigins
	if len(origins) == 0 {
		origins = []string{
			"http://localhost:3000",
			"http://127.0.0.1:3000",
			"http://localhost:5173",
			"http://127.0.0.1:5173",
		}
	}

	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "Accept", "Origin", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	})
}
