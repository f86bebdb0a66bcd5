package routes

import (
	"hospital-info-server/internal/models"
	"hospital-info-server/internal/repository"

	"github.com/google/uuid"
)

// Map-backed repository fakes. Each mirrors the gorm implementation's
// contract, including the NotFound/Conflict error taxonomy.

type mockUserRepo struct {
	users map[string]*models.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*models.User)}
}

func (m *mockUserRepo) Insert(user *models.User) error {
	for _, existing := range m.users {
		if existing.Email == user.Email {
			return repository.ErrConflict
		}
	}
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	stored := *user
	m.users[user.ID] = &stored
	return nil
}

func (m *mockUserRepo) ByID(id string) (*models.User, error) {
	user, ok := m.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return user, nil
}

func (m *mockUserRepo) ByEmailAndRole(email string, role models.Role) (*models.User, error) {
	for _, user := range m.users {
		if user.Email == email && user.Role == role {
			return user, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *mockUserRepo) All() ([]models.User, error) {
	var users []models.User
	for _, user := range m.users {
		users = append(users, *user)
	}
	return users, nil
}

func (m *mockUserRepo) NonAdmins() ([]models.User, error) {
	var users []models.User
	for _, user := range m.users {
		if user.Role != models.RoleAdmin {
			users = append(users, *user)
		}
	}
	return users, nil
}

func (m *mockUserRepo) Workforce() ([]models.User, error) {
	var users []models.User
	for _, user := range m.users {
		switch user.Role {
		case models.RoleDoctor, models.RoleNurse, models.RoleStaff:
			users = append(users, *user)
		}
	}
	return users, nil
}

type mockPatientRepo struct {
	patients map[string]*models.Patient
}

func newMockPatientRepo() *mockPatientRepo {
	return &mockPatientRepo{patients: make(map[string]*models.Patient)}
}

func (m *mockPatientRepo) Insert(patient *models.Patient) error {
	if patient.ID == "" {
		patient.ID = uuid.New().String()
	}
	stored := *patient
	m.patients[patient.ID] = &stored
	return nil
}

func (m *mockPatientRepo) All() ([]models.Patient, error) {
	var patients []models.Patient
	for _, p := range m.patients {
		patients = append(patients, *p)
	}
	return patients, nil
}

func (m *mockPatientRepo) ByID(id string) (*models.Patient, error) {
	p, ok := m.patients[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return p, nil
}

func (m *mockPatientRepo) ByDoctor(doctorID string) ([]models.Patient, error) {
	var patients []models.Patient
	for _, p := range m.patients {
		if p.DoctorID == doctorID {
			patients = append(patients, *p)
		}
	}
	return patients, nil
}

type mockDoctorRepo struct {
	doctors []models.Doctor
}

func (m *mockDoctorRepo) Insert(doctor *models.Doctor) error {
	if doctor.ID == "" {
		doctor.ID = uuid.New().String()
	}
	m.doctors = append(m.doctors, *doctor)
	return nil
}

func (m *mockDoctorRepo) All() ([]models.Doctor, error) {
	return m.doctors, nil
}

type mockPrescriptionRepo struct {
	prescriptions []models.Prescription
}

func (m *mockPrescriptionRepo) Insert(prescription *models.Prescription) error {
	if prescription.ID == "" {
		prescription.ID = uuid.New().String()
	}
	m.prescriptions = append(m.prescriptions, *prescription)
	return nil
}

func (m *mockPrescriptionRepo) All() ([]models.Prescription, error) {
	return m.prescriptions, nil
}

type mockAppointmentRepo struct {
	appointments []models.Appointment
}

func (m *mockAppointmentRepo) Insert(appointment *models.Appointment) error {
	if appointment.ID == "" {
		appointment.ID = uuid.New().String()
	}
	m.appointments = append(m.appointments, *appointment)
	return nil
}

func (m *mockAppointmentRepo) All() ([]models.Appointment, error) {
	return m.appointments, nil
}

func (m *mockAppointmentRepo) ByDoctor(doctorName string) ([]models.Appointment, error) {
	var appointments []models.Appointment
	for _, a := range m.appointments {
		if a.Doctor == doctorName {
			appointments = append(appointments, a)
		}
	}
	return appointments, nil
}

type mockDepartmentRepo struct {
	departments []models.Department
}

func (m *mockDepartmentRepo) Insert(department *models.Department) error {
	if department.ID == "" {
		department.ID = uuid.New().String()
	}
	m.departments = append(m.departments, *department)
	return nil
}

func (m *mockDepartmentRepo) All() ([]models.Department, error) {
	return m.departments, nil
}

type mockVitalRepo struct {
	vitals map[string]*models.Vital
}

func newMockVitalRepo() *mockVitalRepo {
	return &mockVitalRepo{vitals: make(map[string]*models.Vital)}
}

func (m *mockVitalRepo) All() ([]models.Vital, error) {
	var vitals []models.Vital
	for _, v := range m.vitals {
		vitals = append(vitals, *v)
	}
	return vitals, nil
}

func (m *mockVitalRepo) UpsertByPatient(patient string, vital *models.Vital) (*models.Vital, error) {
	existing, ok := m.vitals[patient]
	if !ok {
		vital.Patient = patient
		if vital.ID == "" {
			vital.ID = uuid.New().String()
		}
		stored := *vital
		m.vitals[patient] = &stored
		return &stored, nil
	}
	existing.BP = vital.BP
	existing.Temp = vital.Temp
	existing.Pulse = vital.Pulse
	return existing, nil
}

type mockMedicationRepo struct {
	medications []models.Medication
}

func (m *mockMedicationRepo) Insert(medication *models.Medication) error {
	if medication.ID == "" {
		medication.ID = uuid.New().String()
	}
	m.medications = append(m.medications, *medication)
	return nil
}

func (m *mockMedicationRepo) All() ([]models.Medication, error) {
	return m.medications, nil
}

type mockTaskRepo struct {
	tasks []models.Task
}

func (m *mockTaskRepo) Insert(task *models.Task) error {
	if task.ID == "" {
		task.ID = uuid.New().String()
	}
	m.tasks = append(m.tasks, *task)
	return nil
}

func (m *mockTaskRepo) All() ([]models.Task, error) {
	return m.tasks, nil
}

func (m *mockTaskRepo) ByAssignee(email string) ([]models.Task, error) {
	var tasks []models.Task
	for _, t := range m.tasks {
		if t.AssignedTo == email {
			tasks = append(tasks, t)
		}
	}
	return tasks, nil
}

type mockRegistrationRepo struct {
	registrations []models.Registration
}

func (m *mockRegistrationRepo) Insert(registration *models.Registration) error {
	if registration.ID == "" {
		registration.ID = uuid.New().String()
	}
	m.registrations = append(m.registrations, *registration)
	return nil
}

func (m *mockRegistrationRepo) All() ([]models.Registration, error) {
	return m.registrations, nil
}

type mockLeaveRepo struct {
	leaves map[string]*models.Leave
}

func newMockLeaveRepo() *mockLeaveRepo {
	return &mockLeaveRepo{leaves: make(map[string]*models.Leave)}
}

func (m *mockLeaveRepo) Insert(leave *models.Leave) error {
	if leave.ID == "" {
		leave.ID = uuid.New().String()
	}
	stored := *leave
	m.leaves[leave.ID] = &stored
	return nil
}

func (m *mockLeaveRepo) All() ([]models.Leave, error) {
	var leaves []models.Leave
	for _, l := range m.leaves {
		leaves = append(leaves, *l)
	}
	return leaves, nil
}

func (m *mockLeaveRepo) ByID(id string) (*models.Leave, error) {
	l, ok := m.leaves[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *l
	return &copied, nil
}

func (m *mockLeaveRepo) ByStatus(status models.LeaveStatus) ([]models.Leave, error) {
	var leaves []models.Leave
	for _, l := range m.leaves {
		if l.Status == status {
			leaves = append(leaves, *l)
		}
	}
	return leaves, nil
}

func (m *mockLeaveRepo) UpdateStatus(id string, status models.LeaveStatus) (*models.Leave, error) {
	l, ok := m.leaves[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	l.Status = status
	copied := *l
	return &copied, nil
}

type mockAlertRepo struct {
	alerts []models.Alert
}

func (m *mockAlertRepo) All() ([]models.Alert, error) {
	return m.alerts, nil
}
