package models

// Registration represents a front-desk patient registration entry.
type Registration struct {
	BaseModel
	PatientName string `gorm:"size:255;not null" json:"patientName"`
	Date        string `gorm:"size:20;not null" json:"date"`
	Department  string `gorm:"size:100;not null" json:"department"`
	Status      string `gorm:"size:20;not null" json:"status"` // Completed or Pending
}
