package repository

import (
	"errors"

	"hospital-info-server/internal/models"

	"gorm.io/gorm"
)

// translate maps gorm errors onto the repository error taxonomy. Anything
// unrecognized passes through and surfaces to the client as a storage error.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrConflict
	}
	return err
}

type userRepo struct {
	db *gorm.DB
}

func (r *userRepo) Insert(user *models.User) error {
	return translate(r.db.Create(user).Error)
}

func (r *userRepo) ByID(id string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *userRepo) ByEmailAndRole(email string, role models.Role) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ? AND role = ?", email, role).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *userRepo) All() ([]models.User, error) {
	var users []models.User
	if err := r.db.Find(&users).Error; err != nil {
		return nil, translate(err)
	}
	return users, nil
}

func (r *userRepo) NonAdmins() ([]models.User, error) {
	var users []models.User
	if err := r.db.Where("role <> ?", models.RoleAdmin).Find(&users).Error; err != nil {
		return nil, translate(err)
	}
	return users, nil
}

func (r *userRepo) Workforce() ([]models.User, error) {
	var users []models.User
	roles := []models.Role{models.RoleDoctor, models.RoleNurse, models.RoleStaff}
	if err := r.db.Where("role IN ?", roles).Find(&users).Error; err != nil {
		return nil, translate(err)
	}
	return users, nil
}

type patientRepo struct {
	db *gorm.DB
}

func (r *patientRepo) Insert(patient *models.Patient) error {
	return translate(r.db.Create(patient).Error)
}

func (r *patientRepo) All() ([]models.Patient, error) {
	var patients []models.Patient
	if err := r.db.Find(&patients).Error; err != nil {
		return nil, translate(err)
	}
	return patients, nil
}

func (r *patientRepo) ByID(id string) (*models.Patient, error) {
	var patient models.Patient
	if err := r.db.First(&patient, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &patient, nil
}

func (r *patientRepo) ByDoctor(doctorID string) ([]models.Patient, error) {
	var patients []models.Patient
	if err := r.db.Where("doctor_id = ?", doctorID).Find(&patients).Error; err != nil {
		return nil, translate(err)
	}
	return patients, nil
}

type doctorRepo struct {
	db *gorm.DB
}

func (r *doctorRepo) Insert(doctor *models.Doctor) error {
	return translate(r.db.Create(doctor).Error)
}

func (r *doctorRepo) All() ([]models.Doctor, error) {
	var doctors []models.Doctor
	if err := r.db.Find(&doctors).Error; err != nil {
		return nil, translate(err)
	}
	return doctors, nil
}

type prescriptionRepo struct {
	db *gorm.DB
}

func (r *prescriptionRepo) Insert(prescription *models.Prescription) error {
	return translate(r.db.Create(prescription).Error)
}

func (r *prescriptionRepo) All() ([]models.Prescription, error) {
	var prescriptions []models.Prescription
	if err := r.db.Find(&prescriptions).Error; err != nil {
		return nil, translate(err)
	}
	return prescriptions, nil
}

type appointmentRepo struct {
	db *gorm.DB
}

func (r *appointmentRepo) Insert(appointment *models.Appointment) error {
	return translate(r.db.Create(appointment).Error)
}

func (r *appointmentRepo) All() ([]models.Appointment, error) {
	var appointments []models.Appointment
	if err := r.db.Find(&appointments).Error; err != nil {
		return nil, translate(err)
	}
	return appointments, nil
}

func (r *appointmentRepo) ByDoctor(doctorName string) ([]models.Appointment, error) {
	var appointments []models.Appointment
	if err := r.db.Where("doctor = ?", doctorName).Find(&appointments).Error; err != nil {
		return nil, translate(err)
	}
	return appointments, nil
}

type departmentRepo struct {
	db *gorm.DB
}

func (r *departmentRepo) Insert(department *models.Department) error {
	return translate(r.db.Create(department).Error)
}

func (r *departmentRepo) All() ([]models.Department, error) {
	var departments []models.Department
	if err := r.db.Find(&departments).Error; err != nil {
		return nil, translate(err)
	}
	return departments, nil
}

type vitalRepo struct {
	db *gorm.DB
}

func (r *vitalRepo) All() ([]models.Vital, error) {
	var vitals []models.Vital
	if err := r.db.Find(&vitals).Error; err != nil {
		return nil, translate(err)
	}
	return vitals, nil
}

func (r *vitalRepo) UpsertByPatient(patient string, vital *models.Vital) (*models.Vital, error) {
	var existing models.Vital
	err := r.db.Where("patient = ?", patient).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		vital.Patient = patient
		if err := r.db.Create(vital).Error; err != nil {
			return nil, translate(err)
		}
		return vital, nil
	}
	if err != nil {
		return nil, translate(err)
	}

	existing.BP = vital.BP
	existing.Temp = vital.Temp
	existing.Pulse = vital.Pulse
	if err := r.db.Save(&existing).Error; err != nil {
		return nil, translate(err)
	}
	return &existing, nil
}

type medicationRepo struct {
	db *gorm.DB
}

func (r *medicationRepo) Insert(medication *models.Medication) error {
	return translate(r.db.Create(medication).Error)
}

func (r *medicationRepo) All() ([]models.Medication, error) {
	var medications []models.Medication
	if err := r.db.Find(&medications).Error; err != nil {
		return nil, translate(err)
	}
	return medications, nil
}

type taskRepo struct {
	db *gorm.DB
}

func (r *taskRepo) Insert(task *models.Task) error {
	return translate(r.db.Create(task).Error)
}

func (r *taskRepo) All() ([]models.Task, error) {
	var tasks []models.Task
	if err := r.db.Find(&tasks).Error; err != nil {
		return nil, translate(err)
	}
	return tasks, nil
}

func (r *taskRepo) ByAssignee(email string) ([]models.Task, error) {
	var tasks []models.Task
	if err := r.db.Where("assigned_to = ?", email).Find(&tasks).Error; err != nil {
		return nil, translate(err)
	}
	return tasks, nil
}

type registrationRepo struct {
	db *gorm.DB
}

func (r *registrationRepo) Insert(registration *models.Registration) error {
	return translate(r.db.Create(registration).Error)
}

func (r *registrationRepo) All() ([]models.Registration, error) {
	var registrations []models.Registration
	if err := r.db.Find(&registrations).Error; err != nil {
		return nil, translate(err)
	}
	return registrations, nil
}

type leaveRepo struct {
	db *gorm.DB
}

func (r *leaveRepo) Insert(leave *models.Leave) error {
	return translate(r.db.Create(leave).Error)
}

func (r *leaveRepo) All() ([]models.Leave, error) {
	var leaves []models.Leave
	if err := r.db.Find(&leaves).Error; err != nil {
		return nil, translate(err)
	}
	return leaves, nil
}

func (r *leaveRepo) ByID(id string) (*models.Leave, error) {
	var leave models.Leave
	if err := r.db.First(&leave, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &leave, nil
}

func (r *leaveRepo) ByStatus(status models.LeaveStatus) ([]models.Leave, error) {
	var leaves []models.Leave
	if err := r.db.Where("status = ?", status).Find(&leaves).Error; err != nil {
		return nil, translate(err)
	}
	return leaves, nil
}

func (r *leaveRepo) UpdateStatus(id string, status models.LeaveStatus) (*models.Leave, error) {
	leave, err := r.ByID(id)
	if err != nil {
		return nil, err
	}
	leave.Status = status
	if err := r.db.Save(leave).Error; err != nil {
		return nil, translate(err)
	}
	return leave, nil
}

type alertRepo struct {
	db *gorm.DB
}

func (r *alertRepo) All() ([]models.Alert, error) {
	var alerts []models.Alert
	if err := r.db.Find(&alerts).Error; err != nil {
		return nil, translate(err)
	}
	return alerts, nil
}
