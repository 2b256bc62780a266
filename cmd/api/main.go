package main

import (
	"fmt"
	"net/http"

	"github.com/gsh-hris/roster-backend-go/internal/config"
	appHTTP "github.com/gsh-hris/roster-backend-go/internal/handler/http"
	"github.com/gsh-hris/roster-backend-go/internal/pkg/database"
	"github.com/gsh-hris/roster-backend-go/internal/pkg/jwt"
	"github.com/gsh-hris/roster-backend-go/internal/repository/postgresql"
	authService "github.com/gsh-hris/roster-backend-go/internal/service/auth"
	dutyService "github.com/gsh-hris/roster-backend-go/internal/service/duty"
	employeeService "github.com/gsh-hris/roster-backend-go/internal/service/employee"
	exportService "github.com/gsh-hris/roster-backend-go/internal/service/export"
	masterService "github.com/gsh-hris/roster-backend-go/internal/service/master"
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

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	shiftTemplateRepo := postgresql.NewShiftTemplateRepository(db)
	leaveTemplateRepo := postgresql.NewLeaveTemplateRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	scheduleRepo := postgresql.NewDutyScheduleRepository(db)

	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(userRepo, jwtSvc)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	masterSvc := masterService.NewMasterService(shiftTemplateRepo, leaveTemplateRepo, holidayRepo)
	dutySvc := dutyService.NewDutyService(db, scheduleRepo, holidayRepo, employeeRepo, shiftTemplateRepo, leaveTemplateRepo)
	exportSvc := exportService.NewExportService(dutySvc)

	authHandler := appHTTP.NewAuthHandler(jwtSvc, authSvc)
	dutyHandler := appHTTP.NewDutyScheduleHandler(dutySvc, exportSvc)
	masterHandler := appHTTP.NewMasterHandler(masterSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)

	router := appHTTP.NewRouter(
		jwtSvc,
		authHandler,
		dutyHandler,
		masterHandler,
		employeeHandler,
		cfg.App.AllowedOrigins,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
