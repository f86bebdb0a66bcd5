package models

// Vital holds the latest recorded vitals for a patient. Patient is a name
// reference; the nurse vitals endpoint upserts on it, so the collection keeps
// at most one row per patient.
type Vital struct {
	BaseModel
	Patient string `gorm:"size:255;not null;uniqueIndex" json:"patient"`
	BP      string `gorm:"size:20;not null" json:"bp"`
	Temp    string `gorm:"size:20;not null" json:"temp"`
	Pulse   string `gorm:"size:20;not null" json:"pulse"`
}
