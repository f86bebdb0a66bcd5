package models

// Prescription links a doctor to a patient with a prescribed medication.
// Prescriptions are immutable once created; there is no update path.
type Prescription struct {
	BaseModel
	PatientID    string `gorm:"size:36;not null;index" json:"patientId"`
	DoctorID     string `gorm:"size:36;not null;index" json:"doctorId"`
	Medication   string `gorm:"size:255;not null" json:"medication"`
	Dosage       string `gorm:"size:100;not null" json:"dosage"`
	Instructions string `gorm:"size:255" json:"instructions"`
}
