package main

import (
	"fmt"
	"os"
	"serenityspa-backend/config"
	"serenityspa-backend/models"
	"serenityspa-backend/routes"
	"serenityspa-backend/services"
	"serenityspa-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found")
	}
	utils.InitializeLogger()
	config.ConnectDB()
	utils.InitCache()

	config.DB.AutoMigrate(
		&models.User{},
		&models.Service{},
		&models.Appointment{},
		&models.Notification{},
		&models.MessageThread{},
		&models.MessageReply{},
		&models.BlogPost{},
		&models.Review{},
		&models.ReminderLog{},
	)

	seedCatalog()
}

func main() {
	log := utils.GetLogger()
	defer log.Sync()

	services.NewReminderService(config.DB).StartScheduler()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r := routes.SetupRouter()
	printRoutes(r)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Server exited", zap.Error(err))
	}
}

// seedCatalog installs the starter massage menu on an empty database so the
// site and the chat concierge have something to offer.
func seedCatalog() {
	var count int64
	config.DB.Model(&models.Service{}).Count(&count)
	if count > 0 {
		return
	}

	starter := []models.Service{
		{
			Name:            "Swedish Massage",
			Category:        "Massage",
			Price:           75,
			DurationLabel:   "60 min",
			CardDescription: "A gentle full-body massage with long, flowing strokes.",
			Benefits:        models.StringList{"Relaxation", "Improved sleep", "Lighter muscle tension"},
			Included:        models.StringList{"Consultation", "Herbal tea"},
			Status:          models.ServiceActive,
			Featured:        true,
		},
		{
			Name:            "Deep Tissue Massage",
			Category:        "Massage",
			Price:           95,
			DurationLabel:   "60 min",
			CardDescription: "Firm, targeted pressure for chronic muscle pain and knots.",
			Benefits:        models.StringList{"Pain relief", "Faster recovery", "Better mobility"},
			Included:        models.StringList{"Consultation", "Heat pack"},
			Status:          models.ServiceActive,
			Featured:        true,
		},
		{
			Name:            "Hot Stone Massage",
			Category:        "Massage",
			Price:           110,
			DurationLabel:   "75 min",
			CardDescription: "Heated basalt stones that melt tension and boost circulation.",
			Benefits:        models.StringList{"Improved circulation", "Deep warmth", "Stress relief"},
			Included:        models.StringList{"Consultation", "Herbal tea"},
			Status:          models.ServiceActive,
		},
		{
			Name:            "Aromatherapy Massage",
			Category:        "Massage",
			Price:           85,
			DurationLabel:   "60 min",
			CardDescription: "Essential-oil massage to calm the mind and lift the mood.",
			Benefits:        models.StringList{"Stress relief", "Better mood", "Relaxation"},
			Included:        models.StringList{"Oil selection", "Herbal tea"},
			Status:          models.ServiceActive,
		},
	}

	for _, svc := range starter {
		if err := config.DB.Create(&svc).Error; err != nil {
			utils.GetLogger().Warn("Failed to seed service", zap.String("name", svc.Name), zap.Error(err))
		}
	}
}

func printRoutes(r *gin.Engine) {
	for _, route := range r.Routes() {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
