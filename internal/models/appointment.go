package models

// VisitType enumerates the kinds of appointment visits.
type VisitType string

const (
	VisitNewPatient VisitType = "New Patient"
	VisitFollowUp   VisitType = "Follow-up"
	VisitUrgent     VisitType = "Urgent"
	VisitPreOp      VisitType = "Pre-Op"
)

// Appointment represents a scheduled visit. Patient and Doctor are display
// snapshots taken at creation time; they are not re-synced when the
// underlying records change.
type Appointment struct {
	BaseModel
	Patient   string    `gorm:"size:255;not null" json:"patient"`
	Doctor    string    `gorm:"size:255;not null" json:"doctor"`
	Date      string    `gorm:"size:20;not null" json:"date"`
	Time      string    `gorm:"size:20;not null" json:"time"`
	Room      string    `gorm:"size:50" json:"room"`
	VisitType VisitType `gorm:"size:20;default:'New Patient'" json:"visitType"`
}
