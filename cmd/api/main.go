package main

import (
	"fmt"
	"net/http"

	"github.com/clockdesk/timeclock-backend-go/internal/config"
	appHTTP "github.com/clockdesk/timeclock-backend-go/internal/handler/http"
	"github.com/clockdesk/timeclock-backend-go/internal/pkg/database"
	"github.com/clockdesk/timeclock-backend-go/internal/pkg/jwt"
	"github.com/clockdesk/timeclock-backend-go/internal/repository/postgresql"
	authService "github.com/clockdesk/timeclock-backend-go/internal/service/auth"
	clockService "github.com/clockdesk/timeclock-backend-go/internal/service/clock"
	employeeService "github.com/clockdesk/timeclock-backend-go/internal/service/employee"
	shiftService "github.com/clockdesk/timeclock-backend-go/internal/service/shift"
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

	employeeRepo := postgresql.NewEmployeeRepository(db)
	clockEventRepo := postgresql.NewClockEventRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	adminUserRepo := postgresql.NewAdminUserRepository(db)

	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	clockSvc := clockService.NewClockService(db, employeeRepo, clockEventRepo, shiftRepo)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo, clockSvc)
	shiftSvc := shiftService.NewShiftService(shiftRepo)
	authSvc := authService.NewAuthService(adminUserRepo, jwtSvc)

	kioskHandler := appHTTP.NewKioskHandler(clockSvc)
	authHandler := appHTTP.NewAuthHandler(authSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	shiftHandler := appHTTP.NewShiftHandler(shiftSvc)

	router := appHTTP.NewRouter(
		jwtSvc,
		kioskHandler,
		authHandler,
		employeeHandler,
		shiftHandler,
		cfg.App.Env,
		cfg.CORS.AllowedOrigins,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
