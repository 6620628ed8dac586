package router

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"record-tracker/internal/auth"
	"record-tracker/internal/config"
	"record-tracker/internal/controllers"
	"record-tracker/internal/middleware"
	"record-tracker/internal/services"
)

// New assembles the gin engine: templates, session store, middleware chain
// and the full route table. Everything the handlers need is constructed here
// and injected; no package-level state.
func New(cfg *config.Config, db *gorm.DB) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestLogger())
	engine.Use(middleware.SecurityHeaders())
	engine.Use(sessions.Sessions(auth.SessionName, auth.NewSessionStore(db, cfg.SessionSecret)))

	engine.LoadHTMLGlob(cfg.TemplatesGlob)
	engine.Static("/static", cfg.StaticDir)

	userService := services.NewUserService(db)
	recordService := services.NewRecordService(db)

	authController := controllers.NewAuthController(userService)
	recordController := controllers.NewRecordController(recordService)
	adminController := controllers.NewAdminController(recordService)

	engine.GET("/", authController.Root)
	engine.GET("/register", authController.ShowRegister)
	engine.POST("/register", authController.Register)
	engine.GET("/login", authController.ShowLogin)
	engine.POST("/login", authController.Login)
	engine.POST("/logout", authController.Logout)

	user := engine.Group("/")
	user.Use(middleware.RequireUser())
	{
		user.GET("/dashboard", recordController.Dashboard)
		user.POST("/records", recordController.Submit)
	}

	admin := engine.Group("/admin")
	admin.Use(middleware.RequireAdmin())
	{
		admin.GET("", adminController.Panel)
		admin.GET("/export", adminController.Export)
	}

	return engine
}
