package sandbox

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gescomph/gescomph-mobile/internal/config"
)

// NewEngine arma el backend de pruebas con la misma superficie REST que
// el servidor de GESCOMPH, contra datos en memoria.
func NewEngine(store *Store, cfg *config.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authHandler := NewAuthHandler(store, cfg.JWTSecret)
	appointmentHandler := NewAppointmentHandler(store)
	catalogHandler := NewCatalogHandler(store)
	personHandler := NewPersonHandler(store)
	contractHandler := NewContractHandler(store)
	notificationHandler := NewNotificationHandler(store)

	// ------------------------------
	// AUTH
	// ------------------------------
	r.POST("/auth/login", authHandler.Login)
	r.POST("/auth/logout", authHandler.Logout)

	// ------------------------------
	// PÚBLICO
	// ------------------------------
	r.GET("/establishments", catalogHandler.ListEstablishments)
	r.GET("/establishments/:id", catalogHandler.GetEstablishment)
	r.POST("/establishments", catalogHandler.CreateEstablishment)
	r.GET("/plazas", catalogHandler.ListPlazas)

	r.GET("/city/:id", catalogHandler.GetCity)
	r.GET("/city/by-department/:id", catalogHandler.ListCitiesByDepartment)
	r.GET("/department", catalogHandler.ListDepartments)

	// la casing de /Appointment/GetByDate viene del backend real
	r.GET("/Appointment/GetByDate", appointmentHandler.ListByDate)
	r.GET("/appointment", appointmentHandler.List)
	r.POST("/appointment", OptionalAuthMiddleware(cfg.JWTSecret), appointmentHandler.Create)

	// ------------------------------
	// PRIVADO
	// ------------------------------
	secured := r.Group("/")
	secured.Use(AuthMiddleware(cfg.JWTSecret))
	{
		secured.GET("/Appointment/GetByPersonId", appointmentHandler.ListByPerson)

		secured.GET("/person/:id", personHandler.Get)
		secured.PUT("/person/:id", personHandler.Update)

		secured.GET("/contract/mine", contractHandler.Mine)
		secured.GET("/contract/metrics", contractHandler.Metrics)
		secured.GET("/contract/:id", contractHandler.Get)
		secured.GET("/contract/:id/obligations", contractHandler.Obligations)
		secured.POST("/contract/obligation/:id/checkout", contractHandler.Checkout)

		secured.GET("/notification/feed/:userId", notificationHandler.Feed)
		secured.GET("/notification/unread/:userId", notificationHandler.Unread)
		secured.PATCH("/notification/:id/read", notificationHandler.MarkRead)
		secured.PATCH("/notification/read-all/:userId", notificationHandler.MarkAllRead)
	}

	return r
}
