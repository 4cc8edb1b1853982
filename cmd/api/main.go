package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/workforge-hr/workforge-backend-go/internal/config"
	appHTTP "github.com/workforge-hr/workforge-backend-go/internal/handler/http"
	"github.com/workforge-hr/workforge-backend-go/internal/pkg/database"
	"github.com/workforge-hr/workforge-backend-go/internal/pkg/jwt"
	"github.com/workforge-hr/workforge-backend-go/internal/repository/postgresql"
	attendanceService "github.com/workforge-hr/workforge-backend-go/internal/service/attendance"
	authService "github.com/workforge-hr/workforge-backend-go/internal/service/auth"
	dashboardService "github.com/workforge-hr/workforge-backend-go/internal/service/dashboard"
	employeeService "github.com/workforge-hr/workforge-backend-go/internal/service/employee"
	payrollService "github.com/workforge-hr/workforge-backend-go/internal/service/payroll"
	settingsService "github.com/workforge-hr/workforge-backend-go/internal/service/settings"
	taskService "github.com/workforge-hr/workforge-backend-go/internal/service/task"
	teamService "github.com/workforge-hr/workforge-backend-go/internal/service/team"
	userService "github.com/workforge-hr/workforge-backend-go/internal/service/user"
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
	teamRepo := postgresql.NewTeamRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	taskRepo := postgresql.NewTaskRepository(db)
	settingsRepo := postgresql.NewSettingsRepository(db)

	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(userRepo, settingsRepo, jwtSvc)
	userSvc := userService.NewUserService(db, userRepo)
	teamSvc := teamService.NewTeamService(teamRepo, userRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, userRepo, teamRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo)
	payrollSvc := payrollService.NewPayrollService(payrollRepo, employeeRepo, attendanceRepo)
	taskSvc := taskService.NewTaskService(taskRepo, userRepo)
	settingsSvc := settingsService.NewSettingsService(settingsRepo)
	dashboardSvc := dashboardService.NewDashboardService(employeeRepo, attendanceRepo, taskRepo)

	handlers := appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(authSvc),
		User:       appHTTP.NewUserHandler(userSvc),
		Team:       appHTTP.NewTeamHandler(teamSvc),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Payroll:    appHTTP.NewPayrollHandler(payrollSvc),
		Task:       appHTTP.NewTaskHandler(taskSvc),
		Settings:   appHTTP.NewSettingsHandler(settingsSvc),
		Dashboard:  appHTTP.NewDashboardHandler(dashboardSvc),
	}

	router := appHTTP.NewRouter(cfg, jwtSvc, handlers)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Listening on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal(err)
	}
}
