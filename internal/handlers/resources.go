package handlers

import (
	"hospital-info-server/internal/models"
	"hospital-info-server/internal/repository"
	"hospital-info-server/internal/utils"

	"github.com/gin-gonic/gin"
)

// ResourceHandler serves the flat, authenticated collection reads used by the
// client's list views. Each endpoint is a direct repository read; role-scoped
// composition lives in the dashboard handlers.
type ResourceHandler struct {
	Repos *repository.Repositories
}

// NewResourceHandler creates a new ResourceHandler.
func NewResourceHandler(repos *repository.Repositories) *ResourceHandler {
	return &ResourceHandler{Repos: repos}
}

func (h *ResourceHandler) ListAppointments(c *gin.Context) {
	appointments, err := h.Repos.Appointments.All()
	if err != nil {
		utils.InternalServerError(c, "Server error")
		return
	}
	c.JSON(200, appointments)
}

func (h *ResourceHandler) ListPatients(c *gin.Context) {
	patients, err := h.Repos.Patients.All()
	if err != nil {
		utils.InternalServerError(c, "Server error")
		return
	}
	c.JSON(200, patients)
}

func (h *ResourceHandler) ListPrescriptions(c *gin.Context) {
	prescriptions, err := h.Repos.Prescriptions.All()
	if err != nil {
		utils.InternalServerError(c, "Server error")
		return
	}
	c.JSON(200, prescriptions)
}

func (h *ResourceHandler) ListDoctors(c *gin.Context) {
	doctors, err := h.Repos.Doctors.All()
	if err != nil {
		utils.InternalServerError(c, "Server error")
		return
	}
	c.JSON(200, doctors)
}

func (h *ResourceHandler) ListDepartments(c *gin.Context) {
	departments, err := h.Repos.Departments.All()
	if err != nil {
		utils.InternalServerError(c, "Server error")
		return
	}
	c.JSON(200, departments)
}

// CreateDepartment creates a department from any authenticated identity.
// The admin dashboard exposes the same write under its own group; this one
// serves the shared departments view.
func (h *ResourceHandler) CreateDepartment(c *gin.Context) {
	var req CreateDepartmentRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	department := models.Department{
		Name:         req.Name,
		StaffCount:   req.StaffCount,
		PatientCount: req.PatientCount,
		Budget:       req.Budget,
	}
	if err := h.Repos.Departments.Insert(&department); err != nil {
		utils.InternalServerError(c, "Server error")
		return
	}

	c.JSON(201, gin.H{"success": true, "department": department})
}

func (h *ResourceHandler) ListAlerts(c *gin.Context) {
	alerts, err := h.Repos.Alerts.All()
	if err != nil {
		utils.InternalServerError(c, "Server error")
		return
	}
	c.JSON(200, alerts)
}

func (h *ResourceHandler) ListVitals(c *gin.Context) {
	vitals, err := h.Repos.Vitals.All()
	if err != nil {
		utils.InternalServerError(c, "Server error")
		return
	}
	c.JSON(200, vitals)
}

func (h *ResourceHandler) ListTasks(c *gin.Context) {
	tasks, err := h.Repos.Tasks.All()
	if err != nil {
		utils.InternalServerError(c, "Server error")
		return
	}
	c.JSON(200, tasks)
}

func (h *ResourceHandler) ListRegistrations(c *gin.Context) {
	registrations, err := h.Repos.Registrations.All()
	if err != nil {
		utils.InternalServerError(c, "Server error")
		return
	}
	c.JSON(200, registrations)
}

// ListStaff returns the workforce (doctors, nurses, staff) as display rows.
func (h *ResourceHandler) ListStaff(c *gin.Context) {
	users, err := h.Repos.Users.Workforce()
	if err != nil {
		utils.InternalServerError(c, "Server error")
		return
	}

	rows := make([]StaffRow, len(users))
	for i, u := range users {
		rows[i] = staffRowFromUser(u)
	}
	c.JSON(200, rows)
}
