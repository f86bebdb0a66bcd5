package models

import "time"

// LeaveStatus enumerates the leave application states.
type LeaveStatus string

const (
	LeavePending  LeaveStatus = "pending"
	LeaveApproved LeaveStatus = "approved"
	LeaveRejected LeaveStatus = "rejected"
)

// ParseLeaveStatus validates a requested status transition value.
// Only the two terminal states can be requested; applications start pending.
func ParseLeaveStatus(s string) (LeaveStatus, bool) {
	switch LeaveStatus(s) {
	case LeaveApproved:
		return LeaveApproved, true
	case LeaveRejected:
		return LeaveRejected, true
	}
	return "", false
}

// Leave represents a nurse's leave application. NurseName is a display
// snapshot of the applicant's name at submission time. The status moves
// pending -> approved or pending -> rejected and never reverts.
type Leave struct {
	BaseModel
	NurseID   string      `gorm:"size:36;not null;index" json:"nurseId"`
	NurseName string      `gorm:"size:255;not null" json:"nurseName"`
	StartDate time.Time   `gorm:"not null" json:"startDate"`
	EndDate   time.Time   `gorm:"not null" json:"endDate"`
	Reason    string      `gorm:"size:255;not null" json:"reason"`
	Status    LeaveStatus `gorm:"size:10;default:'pending'" json:"status"`
}

// Terminal reports whether the leave has reached a final status.
func (l *Leave) Terminal() bool {
	return l.Status == LeaveApproved || l.Status == LeaveRejected
}
