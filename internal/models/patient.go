package models

// Patient represents an admitted or registered patient record.
// DoctorID is a weak reference to the treating doctor's User id; it is
// used for lookups and dashboard scoping only, not ownership.
type Patient struct {
	BaseModel
	Name       string `gorm:"size:255;not null" json:"name"`
	Age        int    `gorm:"not null" json:"age"`
	Diagnosis  string `gorm:"size:255" json:"diagnosis"`
	Department string `gorm:"size:100" json:"department"`
	Status     string `gorm:"size:50;not null" json:"status"`
	DoctorID   string `gorm:"size:36;index" json:"doctorId,omitempty"`
}
