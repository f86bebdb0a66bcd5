package models

// AlertType enumerates alert severities.
type AlertType string

const (
	AlertInfo     AlertType = "info"
	AlertWarning  AlertType = "warning"
	AlertCritical AlertType = "critical"
)

// Alert is a system-wide notice shown on dashboards. Alerts are seeded and
// read-only; there is no write endpoint for them.
type Alert struct {
	BaseModel
	Title   string    `gorm:"size:255;not null" json:"title"`
	Message string    `gorm:"size:255;not null" json:"message"`
	Type    AlertType `gorm:"size:10;not null" json:"type"`
}
