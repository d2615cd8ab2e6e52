package main

import (
	"fmt"
	"net/http"

	"github.com/clockwork-hr/timeclock-backend-go/internal/config"
	appHTTP "github.com/clockwork-hr/timeclock-backend-go/internal/handler/http"
	"github.com/clockwork-hr/timeclock-backend-go/internal/pkg/database"
	"github.com/clockwork-hr/timeclock-backend-go/internal/pkg/jwt"
	"github.com/clockwork-hr/timeclock-backend-go/internal/repository/postgresql"
	payrollService "github.com/clockwork-hr/timeclock-backend-go/internal/service/payrollrun"
	timesheetService "github.com/clockwork-hr/timeclock-backend-go/internal/service/timesheet"
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

	punchRepo := postgresql.NewPunchRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	payrollRunRepo := postgresql.NewPayrollRunRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	timesheetSvc := timesheetService.NewTimesheetService(punchRepo, employeeRepo, cfg.Attendance.Policy())
	payrollSvc := payrollService.NewPayrollService(payrollRunRepo)

	reportHandler := appHTTP.NewReportHandler(timesheetSvc, payrollSvc)

	router := appHTTP.NewRouter(
		JWTService,
		reportHandler,
		cfg.App.FrontendURL,
		cfg.App.Env,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
