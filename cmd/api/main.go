package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/andinaops/attendance-backend-go/internal/config"
	appHTTP "github.com/andinaops/attendance-backend-go/internal/handler/http"
	"github.com/andinaops/attendance-backend-go/internal/pkg/civiltime"
	"github.com/andinaops/attendance-backend-go/internal/pkg/database"
	"github.com/andinaops/attendance-backend-go/internal/pkg/jwt"
	"github.com/andinaops/attendance-backend-go/internal/pkg/storage"
	"github.com/andinaops/attendance-backend-go/internal/repository/postgresql"
	accesstokenService "github.com/andinaops/attendance-backend-go/internal/service/accesstoken"
	checkinService "github.com/andinaops/attendance-backend-go/internal/service/checkin"
	complianceService "github.com/andinaops/attendance-backend-go/internal/service/compliance"
	"github.com/andinaops/attendance-backend-go/internal/service/evidence"
	"github.com/andinaops/attendance-backend-go/internal/service/geofence"
	"github.com/andinaops/attendance-backend-go/internal/service/summary"
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

	cal, err := civiltime.NewCalendar(cfg.Attendance.TimezoneName)
	if err != nil {
		log.Fatal("Failed to load attendance timezone: ", err)
	}

	personRepo := postgresql.NewPersonRepository(db)
	siteRepo := postgresql.NewSiteRepository(db)
	tokenRepo := postgresql.NewAccessTokenRepository(db)
	markRepo := postgresql.NewMarkRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret)

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(cfg.Storage.BasePath)
		if err != nil {
			log.Fatal("Failed to initialize local storage:", err)
		}
	default:
		log.Fatal("Unsupported storage types: ", cfg.Storage.Type)
	}

	evidenceService := evidence.NewService(fileStorage)
	geofenceValidator := geofence.NewValidator(cfg.Attendance.AccuracyCeilingM)
	tokenService := accesstokenService.NewService(tokenRepo, siteRepo, cfg.Attendance.TokenTTL)
	checkinSvc := checkinService.NewCheckinService(
		personRepo,
		siteRepo,
		markRepo,
		geofenceValidator,
		tokenService,
		evidenceService,
	)
	aggregator := summary.NewAggregator(cal)
	calculator := complianceService.NewCalculator(cal, cfg.Attendance.ScheduleStartMin, cfg.Attendance.ScheduleEndMin)
	reportSvc := complianceService.NewReportService(markRepo, cal, aggregator, calculator)

	checkinHandler := appHTTP.NewCheckinHandler(checkinSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)
	accessTokenHandler := appHTTP.NewAccessTokenHandler(tokenService)

	router := appHTTP.NewRouter(
		cfg,
		JWTService,
		checkinHandler,
		reportHandler,
		accessTokenHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
