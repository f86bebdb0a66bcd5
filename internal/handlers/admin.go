package handlers

import (
	"strings"

	"hospital-info-server/internal/models"
	"hospital-info-server/internal/repository"
	"hospital-info-server/internal/utils"

	"github.com/gin-gonic/gin"
)

// AdminHandler handles the admin dashboard and admin-only writes.
type AdminHandler struct {
	Users       repository.UserRepository
	Departments repository.DepartmentRepository
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(users repository.UserRepository, departments repository.DepartmentRepository) *AdminHandler {
	return &AdminHandler{Users: users, Departments: departments}
}

// StaffRow is the display row for a staff member on the admin dashboard.
type StaffRow struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	Department string `json:"department"`
	Status     string `json:"status"`
}

// DashboardAlert is a static system notice shown on the admin dashboard.
type DashboardAlert struct {
	ID      int              `json:"id"`
	Type    models.AlertType `json:"type"`
	Title   string           `json:"title"`
	Message string           `json:"message"`
}

var dashboardAlerts = []DashboardAlert{
	{ID: 1, Type: models.AlertCritical, Title: "System Maintenance", Message: "Scheduled downtime at 2 AM"},
	{ID: 2, Type: models.AlertWarning, Title: "Staff Shortage", Message: "Need more nurses in ER"},
	{ID: 3, Type: models.AlertInfo, Title: "New Policy", Message: "Updated privacy policy effective tomorrow"},
}

// AdminDashboard aggregates the reads composed for the admin view.
type AdminDashboard struct {
	Staff       []StaffRow          `json:"staff"`
	Departments []models.Department `json:"departments"`
	Alerts      []DashboardAlert    `json:"alerts"`
}

// Dashboard composes non-admin identities, departments and static alerts.
// The reads are independent; the aggregate may mix slightly different points
// in time, which is accepted.
func (h *AdminHandler) Dashboard(c *gin.Context) {
	users, err := h.Users.NonAdmins()
	if err != nil {
		utils.InternalServerError(c, "Server error")
		return
	}

	departments, err := h.Departments.All()
	if err != nil {
		utils.InternalServerError(c, "Server error")
		return
	}

	staff := make([]StaffRow, len(users))
	for i, u := range users {
		staff[i] = staffRowFromUser(u)
	}

	c.JSON(200, AdminDashboard{Staff: staff, Departments: departments, Alerts: dashboardAlerts})
}

// CreateDepartmentRequest represents the request body for creating a department.
type CreateDepartmentRequest struct {
	Name         string  `json:"name" binding:"required"`
	StaffCount   int     `json:"staffCount"`
	PatientCount int     `json:"patientCount"`
	Budget       float64 `json:"budget"`
}

// CreateDepartment creates a new hospital department.
func (h *AdminHandler) CreateDepartment(c *gin.Context) {
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
	if err := h.Departments.Insert(&department); err != nil {
		utils.InternalServerError(c, "Server error")
		return
	}

	c.JSON(201, gin.H{"success": true, "department": department})
}

// ListUsers returns every identity's public fields.
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.Users.All()
	if err != nil {
		utils.InternalServerError(c, "Server error")
		return
	}

	sanitized := make([]models.UserSanitized, len(users))
	for i, u := range users {
		sanitized[i] = u.Sanitize()
	}
	c.JSON(200, sanitized)
}

// staffRowFromUser builds the dashboard display row for a user.
func staffRowFromUser(u models.User) StaffRow {
	department := u.Department
	if department == "" {
		department = "Unassigned"
	}
	status := u.Status
	if status == "" {
		status = "Active"
	}
	return StaffRow{
		ID:         u.ID,
		Name:       u.FullName(),
		Role:       titleRole(u.Role),
		Department: department,
		Status:     status,
	}
}

// titleRole capitalizes a role for display ("doctor" -> "Doctor").
func titleRole(role models.Role) string {
	s := string(role)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
