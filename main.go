package main

import (
	"fmt"
	"log"
	"os"
	_ "sport_school/docs"
	"sport_school/internal/auth"
	"sport_school/internal/handlers"
	"sport_school/internal/models"
	"sport_school/internal/storage"
	"sport_school/internal/tasks"
	"sport_school/internal/ws"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @Title						SPORT SCHOOL
// @Description				API спортивной школы: группы, залы, тренеры и расписание тренировок
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
func main() {
	key := os.Getenv("ENV_CHEK")
	if key == "" {
		fmt.Println("Подключение к .env")
		err := godotenv.Load()
		if err != nil {
			log.Fatal("Ошибка получения .env")
		}
	}

	storage.ConnectDatabase()

	if err := storage.DB.AutoMigrate(models.All()...); err != nil {
		log.Fatal("Ошибка при миграции... ", err.Error())
	}

	storage.InitRedis()

	tasks.InitScheduler()

	go ws.HubInstance.Run()

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", handlers.Login)
		authGroup.POST("/register", handlers.Register)
		authGroup.POST("/refresh", handlers.RefreshToken)
	}

	apiGroup := r.Group("", auth.AuthMiddleware())
	{
		apiGroup.GET("/users/me", handlers.Me)
		apiGroup.GET("/groups", handlers.GetGroupsHandler)
		apiGroup.GET("/halls", handlers.GetHallsHandler)
		apiGroup.GET("/coaches", handlers.GetCoachesHandler)
		apiGroup.GET("/coaches/:id", handlers.GetCoachHandler)
		apiGroup.GET("/schedule", handlers.GetScheduleHandler)
		apiGroup.POST("/schedule", handlers.CreateTrainingHandler)
	}

	groupsWS := r.Group("/api/groups")
	{
		groupsWS.GET("/:id/ws", ws.GroupWebSocketHandler)
	}

	testsGroup := r.Group("/tests")
	{
		testsGroup.POST("/coaches", handlers.SeedCoachesHandler)
		testsGroup.POST("/trainings", handlers.SeedTrainingsHandler)
	}

	if err := r.Run(":8080"); err != nil {
		log.Fatal("Ошибка запуска сервера...", err.Error())
	}
}
