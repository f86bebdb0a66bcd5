package models

// TaskPriority enumerates task priorities.
type TaskPriority string

const (
	PriorityHigh   TaskPriority = "High"
	PriorityMedium TaskPriority = "Medium"
	PriorityLow    TaskPriority = "Low"
)

// TaskStatus enumerates task progress states.
type TaskStatus string

const (
	TaskPending    TaskStatus = "Pending"
	TaskInProgress TaskStatus = "In Progress"
	TaskCompleted  TaskStatus = "Completed"
	TaskUrgent     TaskStatus = "Urgent"
)

// Task represents a work item assigned to a staff member by email.
type Task struct {
	BaseModel
	Name       string       `gorm:"size:255;not null" json:"name"`
	Priority   TaskPriority `gorm:"size:10;not null" json:"priority"`
	DueDate    string       `gorm:"size:20;not null" json:"dueDate"`
	Status     TaskStatus   `gorm:"size:20;default:'Pending'" json:"status"`
	AssignedTo string       `gorm:"size:255;index" json:"assignedTo"`
}
