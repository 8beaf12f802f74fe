package main

import (
	"fmt"
	"net/http"

	"github.com/suweldo-hq/payroll-engine-go/internal/config"
	"github.com/suweldo-hq/payroll-engine-go/internal/domain/contribution"
	appHTTP "github.com/suweldo-hq/payroll-engine-go/internal/handler/http"
	"github.com/suweldo-hq/payroll-engine-go/internal/pkg/cron"
	"github.com/suweldo-hq/payroll-engine-go/internal/pkg/database"
	"github.com/suweldo-hq/payroll-engine-go/internal/pkg/jwt"
	"github.com/suweldo-hq/payroll-engine-go/internal/repository/postgresql"
	adjustmentService "github.com/suweldo-hq/payroll-engine-go/internal/service/adjustment"
	contributionService "github.com/suweldo-hq/payroll-engine-go/internal/service/contribution"
	loanService "github.com/suweldo-hq/payroll-engine-go/internal/service/loan"
	payrollService "github.com/suweldo-hq/payroll-engine-go/internal/service/payroll"
	periodService "github.com/suweldo-hq/payroll-engine-go/internal/service/period"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), int32(cfg.Database.MaxConns))
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	periodRepo := postgresql.NewPeriodRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	adjustmentRepo := postgresql.NewAdjustmentRepository(db)
	loanRepo := postgresql.NewLoanRepository(db)
	contributionRepo := postgresql.NewContributionRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	sssSchedule := contributionService.NewSchedule(contribution.SchemeSSS, contributionRepo)
	philHealthSchedule := contributionService.NewSchedule(contribution.SchemePhilHealth, contributionRepo)
	pagIbigSchedule := contributionService.NewSchedule(contribution.SchemePagIbig, contributionRepo)
	taxTable := contributionService.NewTaxTable(contributionRepo)

	periodSvc := periodService.NewPeriodService(periodRepo)
	adjustmentSvc := adjustmentService.NewAdjustmentService(adjustmentRepo, employeeRepo)
	loanSvc := loanService.NewLoanService(loanRepo, employeeRepo)
	payrollSvc := payrollService.NewPayrollService(
		db,
		payrollRepo,
		employeeRepo,
		periodRepo,
		attendanceRepo,
		adjustmentRepo,
		loanRepo,
		sssSchedule,
		philHealthSchedule,
		pagIbigSchedule,
		taxTable,
		cfg.Payroll.Workers,
		nil,
	)

	scheduler := cron.NewScheduler()
	cron.NewPeriodJobs(periodRepo).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	periodHandler := appHTTP.NewPeriodHandler(periodSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(adjustmentSvc, loanSvc)

	router := appHTTP.NewRouter(JWTService, periodHandler, payrollHandler, employeeHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
