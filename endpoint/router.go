package endpoint

import (
	"fmt"
	"net/http"

	"github.com/ariebrainware/medi-help/config"
	"github.com/ariebrainware/medi-help/controller"
	"github.com/ariebrainware/medi-help/middleware"
	"github.com/ariebrainware/medi-help/model"
	"github.com/gin-gonic/gin"
)

// SetupRouter wires every route onto a new gin engine.
func SetupRouter(cfg *config.Config, ctrl *controller.Controller) *gin.Engine {
	registerValidators()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.EndpointCallLogger())
	router.Use(middleware.ControllerMiddleware(ctrl))

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": fmt.Sprintf("Welcome to %s!", cfg.AppName),
		})
	})
	router.GET("/catalog", Catalog)
	router.GET("/settings", GetSettings)
	router.GET("/prices", ListPrices)
	router.POST("/register", Register)
	router.POST("/login", middleware.RateLimiter(middleware.RateLimitConfig{Limit: cfg.LoginRateLimit}), Login)

	auth := router.Group("/", middleware.ValidateLoginToken())
	auth.DELETE("/logout", Logout)

	patient := auth.Group("/", middleware.RequireRole(model.RolePatient))
	patient.GET("/me", GetProfile)
	patient.PATCH("/me", UpdateProfile)
	patient.GET("/orders", ListMyOrders)
	patient.POST("/orders", PlaceOrder)
	patient.PATCH("/orders/:id/confirm", ConfirmOrder)
	patient.POST("/diagnosis", Diagnose)
	patient.GET("/prescriptions", ListPrescriptions)
	patient.POST("/medicine/info", MedicineInfo)
	patient.POST("/medicine/alternatives", MedicineAlternatives)

	admin := auth.Group("/admin", middleware.RequireRole(model.RoleAdmin))
	admin.GET("/dashboard", Dashboard)
	admin.GET("/users", ListUsers)
	admin.GET("/orders", ListOrders)
	admin.PATCH("/orders/:id/reply", ReplyOrder)
	admin.PUT("/settings", UpdateSettings)
	admin.POST("/prices", AddPrice)
	admin.PUT("/prices", ReplacePrices)
	admin.DELETE("/prices/:id", DeletePrice)

	return router
}
