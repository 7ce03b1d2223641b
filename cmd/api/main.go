package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/timeflow-hr/timeflow-backend-go/internal/config"
	"github.com/timeflow-hr/timeflow-backend-go/internal/fixtures"
	appHTTP "github.com/timeflow-hr/timeflow-backend-go/internal/handler/http"
	"github.com/timeflow-hr/timeflow-backend-go/internal/pkg/database"
	"github.com/timeflow-hr/timeflow-backend-go/internal/pkg/jwt"
	"github.com/timeflow-hr/timeflow-backend-go/internal/pkg/week"
	"github.com/timeflow-hr/timeflow-backend-go/internal/repository/postgresql"
	absenceService "github.com/timeflow-hr/timeflow-backend-go/internal/service/absence"
	authService "github.com/timeflow-hr/timeflow-backend-go/internal/service/auth"
	timesheetService "github.com/timeflow-hr/timeflow-backend-go/internal/service/timesheet"
	validationService "github.com/timeflow-hr/timeflow-backend-go/internal/service/validation"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	projectRepo := postgresql.NewProjectRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	hourEntryRepo := postgresql.NewHourEntryRepository(db)
	absenceRepo := postgresql.NewAbsenceRepository(db)
	weekValidationRepo := postgresql.NewWeekValidationRepository(db)
	refreshTokenRepo := postgresql.NewRefreshTokenRepository(db)

	// Seed the holiday calendar for the current and next year.
	seedCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	year, _ := week.Current()
	holidays := append(fixtures.FrenchHolidays(year), fixtures.FrenchHolidays(year+1)...)
	if err := holidayRepo.InsertMissing(seedCtx, holidays); err != nil {
		fmt.Println("Error seeding holidays:", err)
	}
	cancel()

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(userRepo, employeeRepo, refreshTokenRepo, jwtService)
	timesheetSvc := timesheetService.NewTimesheetService(hourEntryRepo, absenceRepo, weekValidationRepo, holidayRepo, projectRepo)
	absenceSvc := absenceService.NewAbsenceService(absenceRepo, hourEntryRepo, weekValidationRepo, holidayRepo)
	validationSvc := validationService.NewWeekValidationService(db, weekValidationRepo, hourEntryRepo, absenceRepo, holidayRepo)

	authHandler := appHTTP.NewAuthHandler(jwtService, authSvc)
	timesheetHandler := appHTTP.NewTimesheetHandler(timesheetSvc)
	absenceHandler := appHTTP.NewAbsenceHandler(absenceSvc)
	validationHandler := appHTTP.NewValidationHandler(validationSvc)

	router := appHTTP.NewRouter(
		jwtService,
		cfg.App.CORSOrigin,
		authHandler,
		timesheetHandler,
		absenceHandler,
		validationHandler,
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
