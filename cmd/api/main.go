package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/tracklabs/workforce-backend-go/internal/config"
	appHTTP "github.com/tracklabs/workforce-backend-go/internal/handler/http"
	"github.com/tracklabs/workforce-backend-go/internal/pkg/database"
	"github.com/tracklabs/workforce-backend-go/internal/pkg/jwt"
	"github.com/tracklabs/workforce-backend-go/internal/pkg/storage"
	"github.com/tracklabs/workforce-backend-go/internal/repository/postgresql"
	attendanceService "github.com/tracklabs/workforce-backend-go/internal/service/attendance"
	serviceAuth "github.com/tracklabs/workforce-backend-go/internal/service/auth"
	commentService "github.com/tracklabs/workforce-backend-go/internal/service/comment"
	foodRequestService "github.com/tracklabs/workforce-backend-go/internal/service/foodrequest"
	leaveService "github.com/tracklabs/workforce-backend-go/internal/service/leave"
	"github.com/tracklabs/workforce-backend-go/internal/service/master"
	scoringService "github.com/tracklabs/workforce-backend-go/internal/service/scoring"
	workerService "github.com/tracklabs/workforce-backend-go/internal/service/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	loc, err := time.LoadLocation(cfg.Attendance.Timezone)
	if err != nil {
		fmt.Println("Error loading attendance timezone:", err)
		return
	}

	tenantRepo := postgresql.NewTenantRepository(db)
	adminRepo := postgresql.NewAdminRepository(db)
	workerRepo := postgresql.NewWorkerRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	topicRepo := postgresql.NewTopicRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	taskRepo := postgresql.NewTaskRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	commentRepo := postgresql.NewCommentRepository(db)
	foodRequestRepo := postgresql.NewFoodRequestRepository(db)
	settingsRepo := postgresql.NewSettingsRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(
			cfg.Storage.BasePath,
			cfg.Storage.BaseURL,
		)
		if err != nil {
			log.Fatal("Failed to initialize local storage:", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	attendanceSvc := attendanceService.NewAttendanceService(db, loc, attendanceRepo, workerRepo)
	scoringSvc := scoringService.NewScoringService(db, cfg.Scoring.AllowEmptyData, taskRepo, topicRepo, workerRepo)
	authSvc := serviceAuth.NewAuthService(db, JWTService, adminRepo, tenantRepo, workerRepo)
	workerSvc := workerService.NewWorkerService(
		db,
		fileStorage,
		workerRepo,
		taskRepo,
		attendanceSvc,
		scoringSvc,
	)
	masterSvc := master.NewMasterService(db, departmentRepo, topicRepo, workerRepo)
	leaveSvc := leaveService.NewLeaveService(db, leaveRepo)
	commentSvc := commentService.NewCommentService(db, commentRepo)
	foodRequestSvc := foodRequestService.NewFoodRequestService(db, loc, foodRequestRepo, settingsRepo)

	router := appHTTP.NewRouter(cfg, JWTService, appHTTP.Handlers{
		Auth:        appHTTP.NewAuthHandler(JWTService, authSvc),
		Attendance:  appHTTP.NewAttendanceHandler(attendanceSvc),
		Task:        appHTTP.NewTaskHandler(scoringSvc),
		Worker:      appHTTP.NewWorkerHandler(workerSvc, scoringSvc, fileStorage),
		Master:      appHTTP.NewMasterHandler(masterSvc),
		Leave:       appHTTP.NewLeaveHandler(leaveSvc, fileStorage),
		Comment:     appHTTP.NewCommentHandler(commentSvc),
		FoodRequest: appHTTP.NewFoodRequestHandler(foodRequestSvc),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
