package models

// Department represents a hospital department summary row.
type Department struct {
	BaseModel
	Name         string  `gorm:"size:255;not null" json:"name"`
	StaffCount   int     `gorm:"default:0" json:"staffCount"`
	PatientCount int     `gorm:"default:0" json:"patientCount"`
	Budget       float64 `gorm:"default:0" json:"budget"`
}
