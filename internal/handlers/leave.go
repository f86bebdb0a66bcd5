package handlers

import (
	"errors"
	"time"

	"hospital-info-server/internal/middleware"
	"hospital-info-server/internal/models"
	"hospital-info-server/internal/repository"
	"hospital-info-server/internal/utils"

	"github.com/gin-gonic/gin"
)

// LeaveHandler handles leave applications and their status transitions.
type LeaveHandler struct {
	Leaves repository.LeaveRepository
}

// NewLeaveHandler creates a new LeaveHandler.
func NewLeaveHandler(leaves repository.LeaveRepository) *LeaveHandler {
	return &LeaveHandler{Leaves: leaves}
}

// CreateLeaveRequest represents the request body for a leave application.
// Dates come in as strings from the form and are validated here.
type CreateLeaveRequest struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Reason    string `json:"reason"`
}

// Create submits a leave application. Only nurses can apply; this check is
// deliberately explicit here, separate from the route-level role gate.
func (h *LeaveHandler) Create(c *gin.Context) {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		utils.Unauthorized(c, "Authentication token required")
		return
	}

	if claims.Role != models.RoleNurse {
		utils.Forbidden(c, "Access denied: Only nurses can submit leave applications")
		return
	}

	var req CreateLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	if req.StartDate == "" || req.EndDate == "" || req.Reason == "" {
		utils.BadRequest(c, "All fields are required")
		return
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		utils.BadRequest(c, "Invalid start date")
		return
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		utils.BadRequest(c, "Invalid end date")
		return
	}

	if endDate.Before(startDate) {
		utils.BadRequest(c, "End date must be after start date")
		return
	}

	if len(req.Reason) < 5 {
		utils.BadRequest(c, "Reason must be at least 5 characters")
		return
	}

	leave := models.Leave{
		NurseID:   claims.UserID,
		NurseName: claims.FullName(),
		StartDate: startDate,
		EndDate:   endDate,
		Reason:    req.Reason,
		Status:    models.LeavePending,
	}
	if err := h.Leaves.Insert(&leave); err != nil {
		utils.InternalServerError(c, "Server error")
		return
	}

	c.JSON(201, gin.H{"message": "Leave application submitted", "leave": leave})
}

// UpdateLeaveStatusRequest represents the request body for a status transition.
type UpdateLeaveStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateStatus transitions a pending leave to approved or rejected. Both
// outcomes are terminal: re-submitting the current terminal status is a
// no-op success, any other transition out of a terminal state is rejected.
func (h *LeaveHandler) UpdateStatus(c *gin.Context) {
	var req UpdateLeaveStatusRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	status, ok := models.ParseLeaveStatus(req.Status)
	if !ok {
		utils.BadRequest(c, "Status must be approved or rejected")
		return
	}

	leave, err := h.Leaves.ByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFound(c, "Leave not found")
		} else {
			utils.InternalServerError(c, "Server error")
		}
		return
	}

	if leave.Terminal() {
		if leave.Status == status {
			c.JSON(200, gin.H{"message": "Leave status updated", "leave": leave})
			return
		}
		utils.BadRequest(c, "Leave has already been "+string(leave.Status))
		return
	}

	updated, err := h.Leaves.UpdateStatus(leave.ID, status)
	if err != nil {
		utils.InternalServerError(c, "Server error")
		return
	}

	c.JSON(200, gin.H{"message": "Leave status updated", "leave": updated})
}

// parseDate accepts the form's plain date format as well as RFC 3339.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
