package handlers

import (
	"errors"

	"hospital-info-server/internal/middleware"
	"hospital-info-server/internal/models"
	"hospital-info-server/internal/repository"
	"hospital-info-server/internal/utils"

	"github.com/gin-gonic/gin"
)

// DoctorHandler handles the doctor dashboard and prescription writes.
type DoctorHandler struct {
	Patients      repository.PatientRepository
	Appointments  repository.AppointmentRepository
	Prescriptions repository.PrescriptionRepository
	Leaves        repository.LeaveRepository
}

// NewDoctorHandler creates a new DoctorHandler.
func NewDoctorHandler(
	patients repository.PatientRepository,
	appointments repository.AppointmentRepository,
	prescriptions repository.PrescriptionRepository,
	leaves repository.LeaveRepository,
) *DoctorHandler {
	return &DoctorHandler{
		Patients:      patients,
		Appointments:  appointments,
		Prescriptions: prescriptions,
		Leaves:        leaves,
	}
}

// DoctorDashboard aggregates the reads composed for the doctor view.
type DoctorDashboard struct {
	Patients      []models.Patient      `json:"patients"`
	Appointments  []models.Appointment  `json:"appointments"`
	Prescriptions []models.Prescription `json:"prescriptions"`
	Leaves        []models.Leave        `json:"leaves"`
}

// Dashboard composes the doctor's own patients and appointments, all
// prescriptions, and the pending leave applications awaiting review.
// Appointments carry the doctor's display name, so scoping matches on it.
func (h *DoctorHandler) Dashboard(c *gin.Context) {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		utils.Unauthorized(c, "Authentication token required")
		return
	}

	patients, err := h.Patients.ByDoctor(claims.UserID)
	if err != nil {
		utils.InternalServerError(c, "Server error")
		return
	}

	appointments, err := h.Appointments.ByDoctor(claims.FullName())
	if err != nil {
		utils.InternalServerError(c, "Server error")
		return
	}

	prescriptions, err := h.Prescriptions.All()
	if err != nil {
		utils.InternalServerError(c, "Server error")
		return
	}

	leaves, err := h.Leaves.ByStatus(models.LeavePending)
	if err != nil {
		utils.InternalServerError(c, "Server error")
		return
	}

	c.JSON(200, DoctorDashboard{
		Patients:      patients,
		Appointments:  appointments,
		Prescriptions: prescriptions,
		Leaves:        leaves,
	})
}

// GetPatient returns a single patient record by id.
func (h *DoctorHandler) GetPatient(c *gin.Context) {
	patient, err := h.Patients.ByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFound(c, "Patient not found")
		} else {
			utils.InternalServerError(c, "Server error")
		}
		return
	}
	c.JSON(200, patient)
}

// CreatePrescriptionRequest represents the request body for a new prescription.
type CreatePrescriptionRequest struct {
	PatientID    string `json:"patientId" binding:"required"`
	Medication   string `json:"medication" binding:"required"`
	Dosage       string `json:"dosage" binding:"required"`
	Instructions string `json:"instructions"`
}

// CreatePrescription creates a prescription for an existing patient. The
// patient must exist; nothing is stored otherwise.
func (h *DoctorHandler) CreatePrescription(c *gin.Context) {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		utils.Unauthorized(c, "Authentication token required")
		return
	}

	var req CreatePrescriptionRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	if _, err := h.Patients.ByID(req.PatientID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFound(c, "Patient not found")
		} else {
			utils.InternalServerError(c, "Server error")
		}
		return
	}

	prescription := models.Prescription{
		PatientID:    req.PatientID,
		DoctorID:     claims.UserID,
		Medication:   req.Medication,
		Dosage:       req.Dosage,
		Instructions: req.Instructions,
	}
	if err := h.Prescriptions.Insert(&prescription); err != nil {
		utils.InternalServerError(c, "Server error")
		return
	}

	c.JSON(201, gin.H{"message": "Prescription created successfully", "prescription": prescription})
}
