package routes

import (
	"foodlog/controllers"
	"foodlog/middlewares"
	"foodlog/repositories"
	"foodlog/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	userRepo := repositories.NewUserRepository(db)
	foodRepo := repositories.NewFoodRepository(db)
	diaryRepo := repositories.NewDiaryRepository(db)

	hub := services.NewRealtimeHub()
	catalogSvc := services.NewFoodCatalogService(foodRepo)
	diarySvc := services.NewDiaryService(diaryRepo, userRepo, catalogSvc, hub)
	summarySvc := services.NewSummaryService(diarySvc, userRepo)
	userSvc := services.NewUserService(userRepo)
	authSvc := services.NewAuthService(userRepo)

	authCtl := controllers.NewAuthController(authSvc)
	userCtl := controllers.NewUserController(userSvc)
	diaryCtl := controllers.NewDiaryController(diarySvc, summarySvc)
	foodCtl := controllers.NewFoodController(catalogSvc)
	realtimeCtl := controllers.NewRealtimeController(hub)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", authCtl.Register)
		auth.POST("/login", authCtl.Login)
	}

	authed := middlewares.AuthMiddleware(userRepo)

	user := r.Group("/user")
	user.Use(authed)
	{
		user.GET("/profile", userCtl.GetProfile)
		user.PUT("/profile", userCtl.UpdateProfile)
	}

	diary := r.Group("/diary")
	diary.Use(authed)
	{
		diary.POST("", diaryCtl.CreateEntry)
		diary.GET("", diaryCtl.ListEntries)
		diary.GET("/summary", diaryCtl.GetDailySummary)
		diary.PATCH("/entry/:id", diaryCtl.UpdateEntry)
		diary.DELETE("/entry/:id", diaryCtl.DeleteEntry)
	}

	r.GET("/foods", authed, foodCtl.GetByName)
	r.GET("/ws/diary", authed, realtimeCtl.DiaryWS)

	return r
}
