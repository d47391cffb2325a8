package main

import (
	"fmt"
	"net/http"

	"github.com/pontocerto/ponto-backend-go/internal/config"
	appHTTP "github.com/pontocerto/ponto-backend-go/internal/handler/http"
	"github.com/pontocerto/ponto-backend-go/internal/pkg/database"
	"github.com/pontocerto/ponto-backend-go/internal/pkg/jwt"
	"github.com/pontocerto/ponto-backend-go/internal/repository/postgresql"
	adjustmentService "github.com/pontocerto/ponto-backend-go/internal/service/adjustment"
	afdService "github.com/pontocerto/ponto-backend-go/internal/service/afd"
	authService "github.com/pontocerto/ponto-backend-go/internal/service/auth"
	companyService "github.com/pontocerto/ponto-backend-go/internal/service/company"
	employeeService "github.com/pontocerto/ponto-backend-go/internal/service/employee"
	"github.com/pontocerto/ponto-backend-go/internal/service/mirror"
	punchService "github.com/pontocerto/ponto-backend-go/internal/service/punch"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), cfg.Database.MaxConns, cfg.Database.MinConns)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	txManager := postgresql.NewTxManager(db)

	employeeRepo := postgresql.NewEmployeeRepository(db)
	settingsRepo := postgresql.NewSettingsRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	punchRepo := postgresql.NewPunchRepository(db)
	adjustmentRepo := postgresql.NewAdjustmentRepository(db)
	auditRepo := postgresql.NewAuditRepository(db)

	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(employeeRepo, jwtSvc)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	companySvc := companyService.NewCompanyService(settingsRepo, holidayRepo)
	afdSvc := afdService.NewAfdService(txManager, punchRepo, employeeRepo)
	punchSvc := punchService.NewPunchService(txManager, punchRepo, employeeRepo, auditRepo)
	adjustmentSvc := adjustmentService.NewAdjustmentService(txManager, adjustmentRepo, punchRepo, employeeRepo, auditRepo)
	mirrorSvc := mirror.NewMirrorService(employeeRepo, settingsRepo, holidayRepo, punchRepo, adjustmentRepo)

	authHandler := appHTTP.NewAuthHandler(jwtSvc, authSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	companyHandler := appHTTP.NewCompanyHandler(companySvc)
	afdHandler := appHTTP.NewAfdHandler(afdSvc)
	punchHandler := appHTTP.NewPunchHandler(punchSvc)
	adjustmentHandler := appHTTP.NewAdjustmentHandler(adjustmentSvc)
	timesheetHandler := appHTTP.NewTimesheetHandler(mirrorSvc)
	auditHandler := appHTTP.NewAuditHandler(auditRepo)

	router := appHTTP.NewRouter(
		jwtSvc,
		authHandler,
		employeeHandler,
		companyHandler,
		afdHandler,
		punchHandler,
		adjustmentHandler,
		timesheetHandler,
		auditHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
