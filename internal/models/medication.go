package models

// Medication represents a medication schedule entry for a patient.
type Medication struct {
	BaseModel
	Patient    string `gorm:"size:255;not null" json:"patient"`
	Medication string `gorm:"size:255;not null" json:"medication"`
	Dosage     string `gorm:"size:100;not null" json:"dosage"`
	Schedule   string `gorm:"size:100;not null" json:"schedule"`
}
