package main

import (
	"context"
	"log"
	"os"

	"carebase-api/config"
	"carebase-api/internal/attendance"
	"carebase-api/internal/auth"
	"carebase-api/internal/child"
	"carebase-api/internal/company"
	"carebase-api/internal/facility"
	"carebase-api/internal/lead"
	"carebase-api/internal/logs"
	"carebase-api/internal/resume"
	"carebase-api/internal/schedule"
	"carebase-api/internal/staff"
	"carebase-api/internal/usagerecord"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"google.golang.org/genai"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	cfg := config.LoadConfig()

	dsn := "host=" + cfg.DBHost +
		" user=" + cfg.DBUser +
		" password=" + cfg.DBPassword +
		" dbname=" + cfg.DBName +
		" port=" + cfg.DBPort +
		" sslmode=disable"

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "https://app.carebase.jp"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	logService := &logs.LogService{DB: db}
	logs.RegisterRoutes(r, logService)

	userService := &auth.AuthService{DB: db, CFG: &cfg}
	auth.RegisterRoutes(r, userService, logService)

	facilityService := &facility.FacilityService{DB: db}
	facility.RegisterRoutes(r, facilityService)

	childService := &child.ChildService{DB: db}
	child.RegisterRoutes(r, childService)

	usageRecordService := &usagerecord.UsageRecordService{DB: db}
	usagerecord.RegisterRoutes(r, usageRecordService)

	scheduleService := &schedule.ScheduleService{
		DB:           db,
		UsageRecords: usageRecordService,
		Settings:     facilityService,
		Children:     childService,
	}
	schedule.RegisterRoutes(r, scheduleService)

	attendanceService := &attendance.AttendanceService{DB: db}
	attendance.RegisterRoutes(r, attendanceService)

	staffService := &staff.StaffService{DB: db, CFG: &cfg, Logs: logService}
	staff.RegisterRoutes(r, staffService)

	// Create client with ADC (production)
	ctx := context.Background()
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		Backend:  genai.BackendVertexAI,
		Project:  cfg.GenAIProject,
		Location: cfg.GenAILocation,
		// Note: No APIKey is needed when using Vertex AI with ADC.
	})
	if err != nil {
		log.Printf("GenAI client unavailable, resume drafting disabled: %v", err)
	}

	resumeService := &resume.ResumeService{DB: db, Client: client}
	resume.RegisterRoutes(r, resumeService)

	leadService := &lead.LeadService{DB: db}
	lead.RegisterRoutes(r, leadService)

	companyService := &company.CompanyService{DB: db}
	company.RegisterRoutes(r, companyService)

	// --- Cloud Run expects plain HTTP, on $PORT, bind to 0.0.0.0 ---
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Starting server on 0.0.0.0:%s ...", port)
	log.Fatal(r.Run("0.0.0.0:" + port))
}
