package repository

import (
	"errors"

	"hospital-info-server/internal/models"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a record does not exist in its collection.
var ErrNotFound = errors.New("record not found")

// ErrConflict is returned when an insert violates a unique key (e.g. email).
var ErrConflict = errors.New("duplicate record")

// UserRepository is the sole access point for user persistence.
type UserRepository interface {
	Insert(user *models.User) error
	ByID(id string) (*models.User, error)
	ByEmailAndRole(email string, role models.Role) (*models.User, error)
	All() ([]models.User, error)
	NonAdmins() ([]models.User, error)
	Workforce() ([]models.User, error)
}

type PatientRepository interface {
	Insert(patient *models.Patient) error
	All() ([]models.Patient, error)
	ByID(id string) (*models.Patient, error)
	ByDoctor(doctorID string) ([]models.Patient, error)
}

type DoctorRepository interface {
	Insert(doctor *models.Doctor) error
	All() ([]models.Doctor, error)
}

type PrescriptionRepository interface {
	Insert(prescription *models.Prescription) error
	All() ([]models.Prescription, error)
}

type AppointmentRepository interface {
	Insert(appointment *models.Appointment) error
	All() ([]models.Appointment, error)
	ByDoctor(doctorName string) ([]models.Appointment, error)
}

type DepartmentRepository interface {
	Insert(department *models.Department) error
	All() ([]models.Department, error)
}

type VitalRepository interface {
	All() ([]models.Vital, error)
	// UpsertByPatient stores the latest vitals for a patient, replacing any
	// previous reading.
	UpsertByPatient(patient string, vital *models.Vital) (*models.Vital, error)
}

type MedicationRepository interface {
	Insert(medication *models.Medication) error
	All() ([]models.Medication, error)
}

type TaskRepository interface {
	Insert(task *models.Task) error
	All() ([]models.Task, error)
	ByAssignee(email string) ([]models.Task, error)
}

type RegistrationRepository interface {
	Insert(registration *models.Registration) error
	All() ([]models.Registration, error)
}

type LeaveRepository interface {
	Insert(leave *models.Leave) error
	All() ([]models.Leave, error)
	ByID(id string) (*models.Leave, error)
	ByStatus(status models.LeaveStatus) ([]models.Leave, error)
	UpdateStatus(id string, status models.LeaveStatus) (*models.Leave, error)
}

type AlertRepository interface {
	All() ([]models.Alert, error)
}

// Repositories bundles one repository per entity collection.
type Repositories struct {
	Users         UserRepository
	Patients      PatientRepository
	Doctors       DoctorRepository
	Prescriptions PrescriptionRepository
	Appointments  AppointmentRepository
	Departments   DepartmentRepository
	Vitals        VitalRepository
	Medications   MedicationRepository
	Tasks         TaskRepository
	Registrations RegistrationRepository
	Leaves        LeaveRepository
	Alerts        AlertRepository
}

// NewRepositories wires the gorm-backed implementations.
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Users:         &userRepo{db: db},
		Patients:      &patientRepo{db: db},
		Doctors:       &doctorRepo{db: db},
		Prescriptions: &prescriptionRepo{db: db},
		Appointments:  &appointmentRepo{db: db},
		Departments:   &departmentRepo{db: db},
		Vitals:        &vitalRepo{db: db},
		Medications:   &medicationRepo{db: db},
		Tasks:         &taskRepo{db: db},
		Registrations: &registrationRepo{db: db},
		Leaves:        &leaveRepo{db: db},
		Alerts:        &alertRepo{db: db},
	}
}
