package handlers

import (
	"hospital-info-server/internal/models"
	"hospital-info-server/internal/repository"
	"hospital-info-server/internal/utils"

	"github.com/gin-gonic/gin"
)

// NurseHandler handles the nurse dashboard and vitals updates.
type NurseHandler struct {
	Vitals      repository.VitalRepository
	Medications repository.MedicationRepository
}

// NewNurseHandler creates a new NurseHandler.
func NewNurseHandler(vitals repository.VitalRepository, medications repository.MedicationRepository) *NurseHandler {
	return &NurseHandler{Vitals: vitals, Medications: medications}
}

// NurseDashboard aggregates the reads composed for the nurse view.
type NurseDashboard struct {
	PatientVitals []models.Vital      `json:"patientVitals"`
	Medications   []models.Medication `json:"medications"`
}

// Dashboard composes all patient vitals and medication schedules.
func (h *NurseHandler) Dashboard(c *gin.Context) {
	vitals, err := h.Vitals.All()
	if err != nil {
		utils.InternalServerError(c, "Server error")
		return
	}

	medications, err := h.Medications.All()
	if err != nil {
		utils.InternalServerError(c, "Server error")
		return
	}

	c.JSON(200, NurseDashboard{PatientVitals: vitals, Medications: medications})
}

// UpdateVitalsRequest represents the request body for a vitals update.
type UpdateVitalsRequest struct {
	BP    string `json:"bp" binding:"required"`
	Temp  string `json:"temp" binding:"required"`
	Pulse string `json:"pulse" binding:"required"`
}

// UpdateVitals upserts the latest vitals reading for the patient named in the
// path. The collection keeps one row per patient; each update replaces the
// previous reading.
func (h *NurseHandler) UpdateVitals(c *gin.Context) {
	var req UpdateVitalsRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	vital, err := h.Vitals.UpsertByPatient(c.Param("patient"), &models.Vital{
		BP:    req.BP,
		Temp:  req.Temp,
		Pulse: req.Pulse,
	})
	if err != nil {
		utils.InternalServerError(c, "Server error")
		return
	}

	c.JSON(200, gin.H{"success": true, "vital": vital})
}
