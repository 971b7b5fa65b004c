package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"salon-booking/config"
	"salon-booking/internal/domain/entity"
	"salon-booking/internal/infrastructure/backend"
	"salon-booking/internal/repository"
	"salon-booking/internal/service"
	"salon-booking/pkg/jwt"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// fakeSalon is an in-memory salon backend. It enforces the appointment state
// machine the way the real backend does, so use cases can be exercised end
// to end through the REST repositories.
type fakeSalon struct {
	mu sync.Mutex

	appointments  []entity.Appointment
	services      map[string]entity.Service
	shifts        []entity.Shift
	registrations []entity.WorkShiftRegistration
	reminded      []string

	mutations []string
	nextID    int

	// failLists makes every GET of a collection fail.
	failLists bool
	// gate, when set, blocks appointment transitions until it is closed.
	// Each blocked request is announced on arrived.
	gate    chan struct{}
	arrived chan struct{}
}

func newFakeSalon() *fakeSalon {
	return &fakeSalon{services: map[string]entity.Service{}}
}

func (f *fakeSalon) client(t *testing.T) *backend.Client {
	t.Helper()
	server := httptest.NewServer(f.router())
	t.Cleanup(server.Close)
	return backend.NewClient(config.BackendConfig{BaseURL: server.URL, Timeout: 2 * time.Second}, quietLogger())
}

func (f *fakeSalon) router() http.Handler {
	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/appointments", f.listAppointments).Methods(http.MethodGet)
	api.HandleFunc("/appointments", f.createAppointment).Methods(http.MethodPost)
	api.HandleFunc("/appointments/{action:confirm|complete|cancel}/{id}", f.transitionAppointment).Methods(http.MethodPut)
	api.HandleFunc("/appointments/{id}", f.deleteAppointment).Methods(http.MethodDelete)
	api.HandleFunc("/services/{id}", f.getService).Methods(http.MethodGet)

	api.HandleFunc("/shifts", f.listShifts).Methods(http.MethodGet)
	api.HandleFunc("/shifts/create", f.createShift).Methods(http.MethodPost)
	api.HandleFunc("/shifts/delete/{id}", f.deleteShift).Methods(http.MethodDelete)

	api.HandleFunc("/workshifts", f.listRegistrations).Methods(http.MethodGet)
	api.HandleFunc("/workshifts/register", f.createRegistration).Methods(http.MethodPost)
	api.HandleFunc("/workshifts/create", f.createRegistration).Methods(http.MethodPost)
	api.HandleFunc("/workshifts/reject/{id}", f.decideRegistration(entity.RegistrationStatusRejected)).Methods(http.MethodPut)
	api.HandleFunc("/workshifts/cancel/{id}", f.decideRegistration(entity.RegistrationStatusCanceled)).Methods(http.MethodPut)
	api.HandleFunc("/workshifts/{id}", f.decideRegistration(entity.RegistrationStatusApproved)).Methods(http.MethodPut)

	api.HandleFunc("/notifications/send-reminders", f.sendReminders).Methods(http.MethodPost)

	return r
}

func (f *fakeSalon) record(r *http.Request) {
	f.mutations = append(f.mutations, r.Method+" "+r.URL.Path)
}

func (f *fakeSalon) mutationCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.mutations)
}

func (f *fakeSalon) remindedIDs() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.reminded...)
}

func (f *fakeSalon) appointment(id string) entity.Appointment {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.appointments {
		if a.ID == id {
			return a
		}
	}
	return entity.Appointment{}
}

func (f *fakeSalon) id(prefix string) string {
	f.nextID++
	return fmt.Sprintf("%s%d", prefix, f.nextID)
}

func writeEnvelope(w http.ResponseWriter, status int, success bool, message string, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": success,
		"message": message,
		"data":    data,
	})
}

func (f *fakeSalon) listAppointments(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failLists {
		writeEnvelope(w, http.StatusInternalServerError, false, "database error", nil)
		return
	}
	writeEnvelope(w, http.StatusOK, true, "", map[string]interface{}{"appointments": f.appointments})
}

func (f *fakeSalon) createAppointment(w http.ResponseWriter, r *http.Request) {
	var payload entity.NewAppointment
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeEnvelope(w, http.StatusBadRequest, false, "invalid body", nil)
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.record(r)

	appointment := entity.Appointment{
		ID:         f.id("a"),
		CustomerID: entity.Ref{ID: payload.CustomerID},
		ServiceID:  entity.Ref{ID: payload.ServiceID},
		Date:       payload.Date,
		StartTime:  payload.StartTime,
		TotalPrice: payload.TotalPrice,
		Status:     entity.AppointmentStatusPending,
		Notes:      payload.Notes,
	}
	if payload.StaffID != nil {
		appointment.StaffID = entity.Ref{ID: *payload.StaffID}
	}
	f.appointments = append(f.appointments, appointment)
	writeEnvelope(w, http.StatusCreated, true, "Đặt lịch thành công", appointment)
}

func (f *fakeSalon) transitionAppointment(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	action := entity.AppointmentAction(vars["action"])

	if f.gate != nil {
		f.arrived <- struct{}{}
		<-f.gate
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.record(r)

	for i := range f.appointments {
		a := &f.appointments[i]
		if a.ID != vars["id"] {
			continue
		}
		if !entity.ValidTransition(action, a.Status) {
			writeEnvelope(w, http.StatusBadRequest, false, "Không thể cập nhật lịch hẹn ở trạng thái "+string(a.Status), nil)
			return
		}
		a.Status, _ = action.Target()
		writeEnvelope(w, http.StatusOK, true, "Appointment "+string(a.Status), nil)
		return
	}
	writeEnvelope(w, http.StatusNotFound, false, "Không tìm thấy lịch hẹn", nil)
}

func (f *fakeSalon) deleteAppointment(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record(r)

	id := mux.Vars(r)["id"]
	for i, a := range f.appointments {
		if a.ID == id {
			f.appointments = append(f.appointments[:i], f.appointments[i+1:]...)
			writeEnvelope(w, http.StatusOK, true, "Deleted", nil)
			return
		}
	}
	writeEnvelope(w, http.StatusNotFound, false, "Không tìm thấy lịch hẹn", nil)
}

func (f *fakeSalon) getService(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	svc, ok := f.services[mux.Vars(r)["id"]]
	if !ok {
		writeEnvelope(w, http.StatusOK, true, "", nil)
		return
	}
	writeEnvelope(w, http.StatusOK, true, "", svc)
}

func (f *fakeSalon) listShifts(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failLists {
		writeEnvelope(w, http.StatusInternalServerError, false, "database error", nil)
		return
	}
	writeEnvelope(w, http.StatusOK, true, "", f.shifts)
}

func (f *fakeSalon) createShift(w http.ResponseWriter, r *http.Request) {
	var payload entity.NewShift
	json.NewDecoder(r.Body).Decode(&payload)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.record(r)
	f.shifts = append(f.shifts, entity.Shift{
		ID:        f.id("s"),
		ShiftType: payload.ShiftType,
		Date:      payload.Date,
		StartTime: payload.StartTime,
		EndTime:   payload.EndTime,
		Max:       payload.Max,
	})
	writeEnvelope(w, http.StatusCreated, true, "Shift created", nil)
}

func (f *fakeSalon) deleteShift(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record(r)
	id := mux.Vars(r)["id"]
	for i, s := range f.shifts {
		if s.ID == id {
			f.shifts = append(f.shifts[:i], f.shifts[i+1:]...)
			writeEnvelope(w, http.StatusOK, true, "Shift deleted", nil)
			return
		}
	}
	writeEnvelope(w, http.StatusNotFound, false, "Không tìm thấy ca làm", nil)
}

func (f *fakeSalon) listRegistrations(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failLists {
		writeEnvelope(w, http.StatusInternalServerError, false, "database error", nil)
		return
	}
	writeEnvelope(w, http.StatusOK, true, "", map[string]interface{}{"workShifts": f.registrations})
}

func (f *fakeSalon) createRegistration(w http.ResponseWriter, r *http.Request) {
	var payload entity.NewWorkShiftRegistration
	json.NewDecoder(r.Body).Decode(&payload)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.record(r)
	f.registrations = append(f.registrations, entity.WorkShiftRegistration{
		ID:      f.id("w"),
		StaffID: entity.Ref{ID: payload.StaffID},
		ShiftID: entity.Ref{ID: payload.ShiftID},
		Status:  entity.RegistrationStatusPending,
	})
	writeEnvelope(w, http.StatusCreated, true, "Registered", nil)
}

func (f *fakeSalon) decideRegistration(status entity.RegistrationStatus) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.record(r)
		id := mux.Vars(r)["id"]
		for i := range f.registrations {
			if f.registrations[i].ID == id {
				f.registrations[i].Status = status
				writeEnvelope(w, http.StatusOK, true, "Registration "+string(status), nil)
				return
			}
		}
		writeEnvelope(w, http.StatusNotFound, false, "Không tìm thấy đăng ký", nil)
	}
}

func (f *fakeSalon) sendReminders(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		AppointmentIDs []string `json:"appointmentIds"`
	}
	json.NewDecoder(r.Body).Decode(&payload)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.record(r)
	f.reminded = append(f.reminded, payload.AppointmentIDs...)
	writeEnvelope(w, http.StatusOK, true, "Notifications sent", nil)
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func asUser(userID string, role entity.Role) context.Context {
	token := "token-" + userID
	ctx := backend.WithToken(context.Background(), token)
	return jwt.WithIdentity(ctx, jwt.Identity{Token: token, UserID: userID, Role: string(role)})
}

type salonFixture struct {
	salon        *fakeSalon
	appointments AppointmentUsecase
	shifts       WorkShiftUsecase
	reviews      ReviewUsecase
	reminders    ReminderUsecase
}

func newSalonFixture(t *testing.T, policy AdminAssignPolicy, now time.Time) *salonFixture {
	t.Helper()
	salon := newFakeSalon()
	client := salon.client(t)
	log := quietLogger()

	appointmentRepo := repository.NewAppointmentRepository(client, nil, log)
	serviceRepo := repository.NewServiceRepository(client, nil, log)
	shiftRepo := repository.NewShiftRepository(client, nil, log)
	workShiftRepo := repository.NewWorkShiftRepository(client, nil, log)
	reviewRepo := repository.NewReviewRepository(client, nil, log)

	activity := service.NewActivityService(log)
	guard := service.NewInFlightGuard()
	loc := time.FixedZone("ICT", 7*60*60)

	appointments := NewAppointmentUsecase(log, appointmentRepo, serviceRepo, activity, guard, loc).(*appointmentUsecase)
	appointments.now = func() time.Time { return now }

	return &salonFixture{
		salon:        salon,
		appointments: appointments,
		shifts:       NewWorkShiftUsecase(log, shiftRepo, workShiftRepo, activity, guard, policy),
		reviews:      NewReviewUsecase(log, reviewRepo, appointmentRepo, activity),
		reminders:    NewReminderUsecase(log, repository.NewNotificationRepository(client), appointmentRepo, activity),
	}
}
