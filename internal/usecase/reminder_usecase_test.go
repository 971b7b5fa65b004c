package usecase

import (
	"context"
	"testing"

	"salon-booking/internal/delivery/dto"
	"salon-booking/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReminderUsecase_SendsToSelectedCustomers(t *testing.T) {
	fx := newSalonFixture(t, AssignOverride, fixtureNow)
	seedAppointment(fx.salon, "a1", entity.AppointmentStatusPending)
	seedAppointment(fx.salon, "a2", entity.AppointmentStatusConfirmed)

	resp, err := fx.reminders.Send(asUser("admin-1", entity.RoleAdmin), &dto.SendRemindersRequest{
		AppointmentIDs: []string{"a1", " a2 ", "a1", ""},
	})

	require.NoError(t, err)
	assert.Equal(t, "Đã gửi thông báo cho 2 khách hàng", resp.Message)
	assert.Equal(t, 2, resp.Sent)
	assert.Equal(t, []string{"a1", "a2"}, fx.salon.remindedIDs())
}

func TestReminderUsecase_EmptySelection(t *testing.T) {
	fx := newSalonFixture(t, AssignOverride, fixtureNow)

	_, err := fx.reminders.Send(asUser("admin-1", entity.RoleAdmin), &dto.SendRemindersRequest{AppointmentIDs: []string{" "}})

	assert.ErrorIs(t, err, ErrNoAppointmentsSelected)
	assert.Zero(t, fx.salon.mutationCount())
}

func TestReminderUsecase_RejectsFinishedOrUnknownAppointments(t *testing.T) {
	fx := newSalonFixture(t, AssignOverride, fixtureNow)
	seedAppointment(fx.salon, "a1", entity.AppointmentStatusPending)
	seedAppointment(fx.salon, "a2", entity.AppointmentStatusCompleted)
	ctx := asUser("admin-1", entity.RoleAdmin)

	_, err := fx.reminders.Send(ctx, &dto.SendRemindersRequest{AppointmentIDs: []string{"a1", "a2"}})
	assert.ErrorIs(t, err, ErrReminderNotAllowed)

	_, err = fx.reminders.Send(ctx, &dto.SendRemindersRequest{AppointmentIDs: []string{"missing"}})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)

	assert.Zero(t, fx.salon.mutationCount())
}

func TestReminderUsecase_NeedsLogin(t *testing.T) {
	fx := newSalonFixture(t, AssignOverride, fixtureNow)

	_, err := fx.reminders.Send(context.Background(), &dto.SendRemindersRequest{AppointmentIDs: []string{"a1"}})

	assert.ErrorIs(t, err, ErrUnauthenticated)
}
