package main

import (
	"log"

	"hostelhub-backend/db"
	_ "hostelhub-backend/docs"
	"hostelhub-backend/routes"
	"hostelhub-backend/utils"

	"github.com/gin-gonic/gin"
)

// @title HostelHub API
// @version 1.0
// @description Campus facility management backend
// @host localhost:8080
// @BasePath /
// @SecurityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter the JWT with the Bearer prefix: Bearer <JWT>
func main() {

	gin.SetMode(gin.ReleaseMode)

	db.InitDB()

	// Rate limiting is skipped when Redis is not configured
	db.InitRedis()

	if err := utils.InitCloudinary(); err != nil {
		log.Printf("Warning: Cloudinary initialization failed: %v", err)
		log.Println("Media uploads will not work correctly.")
	}

	r := routes.SetupRouter()

	if err := r.Run(":8080"); err != nil {
		log.Fatal("Error starting the server:", err)
	}
}
