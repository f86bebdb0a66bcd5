package handlers

import (
	"hospital-info-server/internal/middleware"
	"hospital-info-server/internal/models"
	"hospital-info-server/internal/repository"
	"hospital-info-server/internal/utils"

	"github.com/gin-gonic/gin"
)

// StaffHandler handles the staff dashboard and patient registration.
type StaffHandler struct {
	Tasks         repository.TaskRepository
	Registrations repository.RegistrationRepository
	Appointments  repository.AppointmentRepository
	Patients      repository.PatientRepository
}

// NewStaffHandler creates a new StaffHandler.
func NewStaffHandler(
	tasks repository.TaskRepository,
	registrations repository.RegistrationRepository,
	appointments repository.AppointmentRepository,
	patients repository.PatientRepository,
) *StaffHandler {
	return &StaffHandler{
		Tasks:         tasks,
		Registrations: registrations,
		Appointments:  appointments,
		Patients:      patients,
	}
}

// StaffDashboard aggregates the reads composed for the staff view.
type StaffDashboard struct {
	Tasks         []models.Task         `json:"tasks"`
	Registrations []models.Registration `json:"registrations"`
	Schedule      []models.Appointment  `json:"schedule"`
}

// Dashboard composes the member's own tasks (by assignee email), all patient
// registrations and the full appointment schedule.
func (h *StaffHandler) Dashboard(c *gin.Context) {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		utils.Unauthorized(c, "Authentication token required")
		return
	}

	tasks, err := h.Tasks.ByAssignee(claims.Email)
	if err != nil {
		utils.InternalServerError(c, "Server error")
		return
	}

	registrations, err := h.Registrations.All()
	if err != nil {
		utils.InternalServerError(c, "Server error")
		return
	}

	schedule, err := h.Appointments.All()
	if err != nil {
		utils.InternalServerError(c, "Server error")
		return
	}

	c.JSON(200, StaffDashboard{Tasks: tasks, Registrations: registrations, Schedule: schedule})
}

// RegisterPatientRequest represents the request body for registering a patient.
type RegisterPatientRequest struct {
	Name       string `json:"name" binding:"required"`
	Age        int    `json:"age" binding:"required"`
	Diagnosis  string `json:"diagnosis"`
	Department string `json:"department"`
	Status     string `json:"status" binding:"required"`
	DoctorID   string `json:"doctorId"`
}

// RegisterPatient creates a new patient record.
func (h *StaffHandler) RegisterPatient(c *gin.Context) {
	var req RegisterPatientRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	patient := models.Patient{
		Name:       req.Name,
		Age:        req.Age,
		Diagnosis:  req.Diagnosis,
		Department: req.Department,
		Status:     req.Status,
		DoctorID:   req.DoctorID,
	}
	if err := h.Patients.Insert(&patient); err != nil {
		utils.InternalServerError(c, "Server error")
		return
	}

	c.JSON(201, gin.H{"success": true, "patient": patient})
}
