package repository

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"salon-booking/config"
	"salon-booking/internal/domain/entity"
	"salon-booking/internal/infrastructure/backend"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBackend(t *testing.T, handler http.Handler) *backend.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	log := logrus.New()
	log.SetOutput(io.Discard)
	return backend.NewClient(config.BackendConfig{BaseURL: server.URL, Timeout: time.Second}, log)
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestAppointmentRepository_FindAllNewestFirst(t *testing.T) {
	client := newBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/appointments", r.URL.Path)
		w.Write([]byte(`{"success":true,"data":{"appointments":[
			{"_id":"a1","status":"completed","totalPrice":100000},
			{"_id":"a2","status":"pending","serviceId":{"_id":"sv1","name":"Cắt tóc nam"}}
		]}}`))
	}))
	repo := NewAppointmentRepository(client, nil, quietLogger())

	appointments, err := repo.FindAll(context.Background())

	require.NoError(t, err)
	require.Len(t, appointments, 2)
	assert.Equal(t, "a2", appointments[0].ID)
	assert.Equal(t, "Cắt tóc nam", appointments[0].ServiceID.Name)
	assert.Equal(t, int64(100000), appointments[1].TotalPrice)
}

func TestAppointmentRepository_TransitionPaths(t *testing.T) {
	var got []string
	client := newBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = append(got, r.Method+" "+r.URL.Path)
		w.Write([]byte(`{"success":true,"message":"done"}`))
	}))
	repo := NewAppointmentRepository(client, nil, quietLogger())
	ctx := context.Background()

	for _, call := range []func(context.Context, string) (string, error){repo.Confirm, repo.Complete, repo.Cancel, repo.Delete} {
		msg, err := call(ctx, "a1")
		require.NoError(t, err)
		assert.Equal(t, "done", msg)
	}

	assert.Equal(t, []string{
		"PUT /api/appointments/confirm/a1",
		"PUT /api/appointments/complete/a1",
		"PUT /api/appointments/cancel/a1",
		"DELETE /api/appointments/a1",
	}, got)
}

func TestWorkShiftRepository_Paths(t *testing.T) {
	var got []string
	client := newBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = append(got, r.Method+" "+r.URL.Path)
		if r.Method == http.MethodGet {
			w.Write([]byte(`{"success":true,"data":[{"_id":"w1","staffId":"s1","shiftId":{"_id":"sh1"},"status":"approved"}]}`))
			return
		}
		w.Write([]byte(`{"success":true}`))
	}))
	repo := NewWorkShiftRepository(client, nil, quietLogger())
	ctx := context.Background()

	regs, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, regs, 1)
	assert.Equal(t, entity.RegistrationStatusApproved, regs[0].Status)

	reg := &entity.NewWorkShiftRegistration{StaffID: "s1", ShiftID: "sh1"}
	_, err = repo.Register(ctx, reg)
	require.NoError(t, err)
	_, err = repo.AdminCreate(ctx, reg)
	require.NoError(t, err)
	_, err = repo.Approve(ctx, "w1")
	require.NoError(t, err)
	_, err = repo.Reject(ctx, "w1")
	require.NoError(t, err)
	_, err = repo.Cancel(ctx, "w1")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"GET /api/workshifts",
		"POST /api/workshifts/register",
		"POST /api/workshifts/create",
		"PUT /api/workshifts/w1",
		"PUT /api/workshifts/reject/w1",
		"PUT /api/workshifts/cancel/w1",
	}, got)
}

func TestAuthRepository_Login(t *testing.T) {
	client := newBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		w.Write([]byte(`{"success":true,"token":"tok","user":{"_id":"u1","name":"Lan","role":"staff"}}`))
	}))
	repo := NewAuthRepository(client, nil, quietLogger())

	session, err := repo.Login(context.Background(), "lan@example.com", "secret")

	require.NoError(t, err)
	assert.Equal(t, "tok", session.Token)
	assert.Equal(t, entity.RoleStaff, session.User.Role)
}

func TestServiceRepository_FindByIDMissing(t *testing.T) {
	client := newBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"data":null}`))
	}))
	repo := NewServiceRepository(client, nil, quietLogger())

	svc, err := repo.FindByID(context.Background(), "missing")

	require.NoError(t, err)
	assert.Nil(t, svc)
}

func TestFavoriteRepository_ReadsTopLevelFavorites(t *testing.T) {
	var got []string
	client := newBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = append(got, r.Method+" "+r.URL.Path)
		if r.Method == http.MethodGet {
			w.Write([]byte(`{"success":true,"favorites":[{"_id":"f1","serviceId":"sv1"},{"_id":"f2","serviceId":{"_id":"sv2","name":"Gội đầu"}}]}`))
			return
		}
		w.Write([]byte(`{"success":true,"message":"ok"}`))
	}))
	repo := NewFavoriteRepository(client, nil, quietLogger())
	ctx := context.Background()

	favorites, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, favorites, 2)
	assert.Equal(t, "sv1", favorites[0].ServiceID.ID)
	assert.Equal(t, "Gội đầu", favorites[1].ServiceID.Name)

	_, err = repo.Add(ctx, "sv3")
	require.NoError(t, err)
	_, err = repo.Remove(ctx, "f1")
	require.NoError(t, err)

	assert.Equal(t, []string{"GET /api/favorites", "POST /api/favorites", "DELETE /api/favorites/f1"}, got)
}

func TestFavoriteRepository_EmptyListIsNotNil(t *testing.T) {
	client := newBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true}`))
	}))

	favorites, err := NewFavoriteRepository(client, nil, quietLogger()).FindAll(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, favorites)
	assert.Empty(t, favorites)
}

func TestAuthRepository_SignUpAndUpdateProfile(t *testing.T) {
	var signUpBody map[string]string
	var form map[string]string
	client := newBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/register":
			require.NoError(t, json.NewDecoder(r.Body).Decode(&signUpBody))
			w.Write([]byte(`{"success":true,"message":"registered"}`))
		case "/api/user/update-profile":
			assert.Equal(t, http.MethodPut, r.Method)
			assert.True(t, strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data"))
			require.NoError(t, r.ParseMultipartForm(1<<20))
			form = map[string]string{}
			for key, values := range r.MultipartForm.Value {
				form[key] = values[0]
			}
			w.Write([]byte(`{"success":true,"message":"updated"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	repo := NewAuthRepository(client, nil, quietLogger())
	ctx := context.Background()

	message, err := repo.SignUp(ctx, &entity.SignUp{Name: "Lan", Email: "lan@example.com", Phone: "0901234567", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "registered", message)
	assert.Equal(t, map[string]string{"name": "Lan", "email": "lan@example.com", "phone": "0901234567", "password": "secret1"}, signUpBody)

	message, err = repo.UpdateProfile(ctx, &entity.ProfileUpdate{UserID: "u1", Name: "Lan", Gender: "female"})
	require.NoError(t, err)
	assert.Equal(t, "updated", message)
	assert.Equal(t, map[string]string{
		"userId": "u1", "name": "Lan", "phone": "", "address": "", "dob": "", "gender": "female",
	}, form)
}

func TestNotificationRepository_SendReminders(t *testing.T) {
	var body map[string][]string
	client := newBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/notifications/send-reminders", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Write([]byte(`{"success":true}`))
	}))

	_, err := NewNotificationRepository(client).SendReminders(context.Background(), []string{"a1", "a2"})

	require.NoError(t, err)
	assert.Equal(t, map[string][]string{"appointmentIds": {"a1", "a2"}}, body)
}
