package routes

import (
	"net/http"
	"testing"

	"hospital-info-server/internal/models"

	"github.com/stretchr/testify/require"
)

func submitLeave(t *testing.T, env *testEnv, token, start, end, reason string) *httpResult {
	t.Helper()
	rec := env.do(t, http.MethodPost, "/api/leaves", map[string]string{
		"startDate": start,
		"endDate":   end,
		"reason":    reason,
	}, token)
	return &httpResult{rec.Code, rec.Body.String()}
}

type httpResult struct {
	code int
	body string
}

func TestLeaveSubmissionIsNurseOnly(t *testing.T) {
	env := newTestEnv(t)
	doctor := env.addUser(t, "John", "Doe", "doctor@example.com", "password123", models.RoleDoctor)

	res := submitLeave(t, env, env.tokenFor(t, doctor), "2025-09-10", "2025-09-12", "family event")
	require.Equal(t, http.StatusForbidden, res.code)
	require.Contains(t, res.body, "Only nurses can submit leave applications")
}

func TestLeaveReasonLengthBoundary(t *testing.T) {
	env := newTestEnv(t)
	nurse := env.addUser(t, "Emma", "Williams", "nurse@example.com", "password123", models.RoleNurse)
	token := env.tokenFor(t, nurse)

	// Four characters is rejected, five is accepted.
	res := submitLeave(t, env, token, "2025-09-10", "2025-09-12", "rest")
	require.Equal(t, http.StatusBadRequest, res.code)
	require.Contains(t, res.body, "at least 5 characters")

	res = submitLeave(t, env, token, "2025-09-10", "2025-09-12", "rests")
	require.Equal(t, http.StatusCreated, res.code)
}

func TestLeaveDateBoundary(t *testing.T) {
	env := newTestEnv(t)
	nurse := env.addUser(t, "Emma", "Williams", "nurse@example.com", "password123", models.RoleNurse)
	token := env.tokenFor(t, nurse)

	// End before start is rejected; equal dates are accepted.
	res := submitLeave(t, env, token, "2025-09-12", "2025-09-10", "family event")
	require.Equal(t, http.StatusBadRequest, res.code)
	require.Contains(t, res.body, "End date must be after start date")

	res = submitLeave(t, env, token, "2025-09-10", "2025-09-10", "family event")
	require.Equal(t, http.StatusCreated, res.code)
}

func TestLeaveMissingFields(t *testing.T) {
	env := newTestEnv(t)
	nurse := env.addUser(t, "Emma", "Williams", "nurse@example.com", "password123", models.RoleNurse)

	res := submitLeave(t, env, env.tokenFor(t, nurse), "", "2025-09-12", "family event")
	require.Equal(t, http.StatusBadRequest, res.code)
	require.Contains(t, res.body, "All fields are required")
}

func TestLeaveRecordsApplicantSnapshot(t *testing.T) {
	env := newTestEnv(t)
	nurse := env.addUser(t, "Emma", "Williams", "nurse@example.com", "password123", models.RoleNurse)

	res := submitLeave(t, env, env.tokenFor(t, nurse), "2025-09-10", "2025-09-12", "family event")
	require.Equal(t, http.StatusCreated, res.code)

	leaves, err := env.leaves.All()
	require.NoError(t, err)
	require.Len(t, leaves, 1)
	require.Equal(t, nurse.ID, leaves[0].NurseID)
	require.Equal(t, "Emma Williams", leaves[0].NurseName)
	require.Equal(t, models.LeavePending, leaves[0].Status)
}

func TestLeaveStatusTransitions(t *testing.T) {
	env := newTestEnv(t)
	doctor := env.addUser(t, "John", "Doe", "doctor@example.com", "password123", models.RoleDoctor)
	nurse := env.addUser(t, "Emma", "Williams", "nurse@example.com", "password123", models.RoleNurse)
	token := env.tokenFor(t, doctor)

	leave := &models.Leave{NurseID: "n1", NurseName: "Emma Williams", Reason: "family event", Status: models.LeavePending}
	require.NoError(t, env.leaves.Insert(leave))

	// A nurse cannot review applications.
	rec := env.do(t, http.MethodPut, "/api/leaves/"+leave.ID, map[string]string{"status": "approved"}, env.tokenFor(t, nurse))
	require.Equal(t, http.StatusForbidden, rec.Code)

	// pending -> approved
	rec = env.do(t, http.MethodPut, "/api/leaves/"+leave.ID, map[string]string{"status": "approved"}, token)
	require.Equal(t, http.StatusOK, rec.Code)
	stored, err := env.leaves.ByID(leave.ID)
	require.NoError(t, err)
	require.Equal(t, models.LeaveApproved, stored.Status)

	// Re-approving an approved leave is a no-op success.
	rec = env.do(t, http.MethodPut, "/api/leaves/"+leave.ID, map[string]string{"status": "approved"}, token)
	require.Equal(t, http.StatusOK, rec.Code)
	stored, err = env.leaves.ByID(leave.ID)
	require.NoError(t, err)
	require.Equal(t, models.LeaveApproved, stored.Status)

	// Approved is terminal: it cannot become rejected or pending.
	rec = env.do(t, http.MethodPut, "/api/leaves/"+leave.ID, map[string]string{"status": "rejected"}, token)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodPut, "/api/leaves/"+leave.ID, map[string]string{"status": "pending"}, token)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	stored, err = env.leaves.ByID(leave.ID)
	require.NoError(t, err)
	require.Equal(t, models.LeaveApproved, stored.Status)
}

func TestLeaveStatusUpdateUnknownID(t *testing.T) {
	env := newTestEnv(t)
	admin := env.addUser(t, "Admin", "User", "admin@example.com", "password123", models.RoleAdmin)

	rec := env.do(t, http.MethodPut, "/api/leaves/missing-id", map[string]string{"status": "approved"}, env.tokenFor(t, admin))
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "Leave not found", message(t, rec))
}
