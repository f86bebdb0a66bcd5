package models

// Doctor is a directory entry for the appointment booking view.
// Slots maps dates ("2025-05-07") to available time slots (["09:00", "10:00"]).
type Doctor struct {
	BaseModel
	Name           string              `gorm:"size:255;not null" json:"name"`
	Specialization string              `gorm:"size:100;not null" json:"specialization"`
	Slots          map[string][]string `gorm:"serializer:json" json:"slots"`
}
