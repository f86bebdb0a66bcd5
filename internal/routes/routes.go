package routes

import (
	"hospital-info-server/internal/config"
	"hospital-info-server/internal/handlers"
	"hospital-info-server/internal/middleware"
	"hospital-info-server/internal/models"
	"hospital-info-server/internal/repository"

	"github.com/gin-gonic/gin"
)

// SetupRoutes configures the application routes.
func SetupRoutes(router *gin.Engine, repos *repository.Repositories, cfg *config.Config) {
	// Initialize handlers
	authHandler := handlers.NewAuthHandler(repos.Users, cfg)
	adminHandler := handlers.NewAdminHandler(repos.Users, repos.Departments)
	doctorHandler := handlers.NewDoctorHandler(repos.Patients, repos.Appointments, repos.Prescriptions, repos.Leaves)
	nurseHandler := handlers.NewNurseHandler(repos.Vitals, repos.Medications)
	staffHandler := handlers.NewStaffHandler(repos.Tasks, repos.Registrations, repos.Appointments, repos.Patients)
	leaveHandler := handlers.NewLeaveHandler(repos.Leaves)
	resourceHandler := handlers.NewResourceHandler(repos)

	// Public routes (no authentication required)
	public := router.Group("/api")
	{
		authRoutes := public.Group("/auth")
		{
			authRoutes.POST("/register", authHandler.Register)
			authRoutes.POST("/login", authHandler.Login)
		}
	}

	// Authenticated routes
	private := router.Group("/api")
	private.Use(middleware.AuthMiddleware(cfg)) // Apply JWT authentication middleware
	{
		private.GET("/auth/me", authHandler.Me)

		// Role dashboards and role-scoped writes
		adminRoutes := private.Group("/admin")
		adminRoutes.Use(middleware.RoleAuthMiddleware(models.RoleAdmin))
		{
			adminRoutes.GET("/dashboard", adminHandler.Dashboard)
			adminRoutes.POST("/departments", adminHandler.CreateDepartment)
			adminRoutes.GET("/users", adminHandler.ListUsers)
		}

		doctorRoutes := private.Group("/doctor")
		doctorRoutes.Use(middleware.RoleAuthMiddleware(models.RoleDoctor))
		{
			doctorRoutes.GET("/dashboard", doctorHandler.Dashboard)
			doctorRoutes.GET("/patients/:id", doctorHandler.GetPatient)
			doctorRoutes.POST("/prescriptions", doctorHandler.CreatePrescription)
		}

		nurseRoutes := private.Group("/nurse")
		nurseRoutes.Use(middleware.RoleAuthMiddleware(models.RoleNurse))
		{
			nurseRoutes.GET("/dashboard", nurseHandler.Dashboard)
			nurseRoutes.PUT("/patients/:patient/vitals", nurseHandler.UpdateVitals)
		}

		staffRoutes := private.Group("/staff")
		staffRoutes.Use(middleware.RoleAuthMiddleware(models.RoleStaff))
		{
			staffRoutes.GET("/dashboard", staffHandler.Dashboard)
		}
		private.POST("/patients", middleware.RoleAuthMiddleware(models.RoleStaff), staffHandler.RegisterPatient)

		// Leave applications: submission is nurse-only (checked in the
		// handler), review is doctor/admin.
		leaveRoutes := private.Group("/leaves")
		{
			leaveRoutes.POST("", leaveHandler.Create)
			leaveRoutes.PUT("/:id", middleware.RoleAuthMiddleware(models.RoleDoctor, models.RoleAdmin), leaveHandler.UpdateStatus)
		}

		// Flat collection reads for list views
		private.GET("/appointments", resourceHandler.ListAppointments)
		private.GET("/patients", resourceHandler.ListPatients)
		private.GET("/prescriptions", resourceHandler.ListPrescriptions)
		private.GET("/doctors", resourceHandler.ListDoctors)
		private.GET("/departments", resourceHandler.ListDepartments)
		private.POST("/departments", resourceHandler.CreateDepartment)
		private.GET("/alerts", resourceHandler.ListAlerts)
		private.GET("/vitals", resourceHandler.ListVitals)
		private.GET("/tasks", resourceHandler.ListTasks)
		private.GET("/registrations", resourceHandler.ListRegistrations)
		private.GET("/staff", resourceHandler.ListStaff)
	}

	// Simple health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "UP"})
	})
}
