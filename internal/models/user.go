package models

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Role enum
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleDoctor  Role = "doctor"
	RoleNurse   Role = "nurse"
	RoleStaff   Role = "staff"
	RolePatient Role = "patient"
)

// ParseRole normalizes a free-text role value into the closed Role set.
// Roles are normalized exactly once at the boundary; downstream code
// compares Role values, never raw strings.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleDoctor:
		return RoleDoctor, nil
	case RoleNurse:
		return RoleNurse, nil
	case RoleStaff:
		return RoleStaff, nil
	case RolePatient:
		return RolePatient, nil
	}
	return "", fmt.Errorf("unknown role: %q", s)
}

// User represents a hospital system account (admin, doctor, nurse, staff or patient)
type User struct {
	BaseModel
	Email          string `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Password       string `gorm:"size:255;not null" json:"-"` // Never send password in JSON
	FirstName      string `gorm:"size:100" json:"firstName"`
	LastName       string `gorm:"size:100" json:"lastName"`
	Role           Role   `gorm:"size:20;default:'staff'" json:"role"`
	Specialization string `gorm:"size:100" json:"specialization,omitempty"` // doctors only
	LicenseNumber  string `gorm:"size:50" json:"licenseNumber,omitempty"`   // doctors only
	Department     string `gorm:"size:100" json:"department,omitempty"`
	Status         string `gorm:"size:20;default:'Active'" json:"status,omitempty"`
}

// UserSanitized represents the user data that is safe to send in API responses.
type UserSanitized struct {
	ID             string `json:"id"`
	Email          string `json:"email"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Role           Role   `json:"role"`
	Specialization string `json:"specialization,omitempty"`
	LicenseNumber  string `json:"licenseNumber,omitempty"`
	Department     string `json:"department,omitempty"`
	Status         string `json:"status,omitempty"`
}

// FullName returns the display name used in token claims and denormalized
// snapshot fields such as Leave.NurseName.
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// SetPassword hashes a password and sets it on the user
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword compares a password with the user's hashed password
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

// Sanitize creates a UserSanitized struct from a User model, excluding sensitive data.
func (u *User) Sanitize() UserSanitized {
	return UserSanitized{
		ID:             u.ID,
		Email:          u.Email,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		Role:           u.Role,
		Specialization: u.Specialization,
		LicenseNumber:  u.LicenseNumber,
		Department:     u.Department,
		Status:         u.Status,
	}
}
