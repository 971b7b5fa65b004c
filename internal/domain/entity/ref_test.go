package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRef_DecodesIDOrDocument(t *testing.T) {
	var reg WorkShiftRegistration
	err := json.Unmarshal([]byte(`{"_id":"w1","staffId":"s1","shiftId":{"_id":"sh1","name":"Ca sáng"},"status":"pending"}`), &reg)

	require.NoError(t, err)
	assert.Equal(t, "s1", reg.StaffID.ID)
	assert.Equal(t, "sh1", reg.ShiftID.ID)
	assert.Equal(t, "Ca sáng", reg.ShiftID.Name)
}

func TestRef_NullAndRoundTrip(t *testing.T) {
	var a Appointment
	require.NoError(t, json.Unmarshal([]byte(`{"_id":"a1","staffId":null,"serviceId":{"_id":"sv1","name":"Cắt tóc nam"}}`), &a))
	assert.True(t, a.StaffID.IsZero())

	out, err := json.Marshal(a.ServiceID)
	require.NoError(t, err)
	assert.JSONEq(t, `{"_id":"sv1","name":"Cắt tóc nam"}`, string(out))

	out, err = json.Marshal(Ref{ID: "c1"})
	require.NoError(t, err)
	assert.Equal(t, `"c1"`, string(out))

	out, err = json.Marshal(a.StaffID)
	require.NoError(t, err)
	assert.Equal(t, `null`, string(out))
}

func TestRef_PopulatedFieldsSurviveRoundTrip(t *testing.T) {
	var reg WorkShiftRegistration
	err := json.Unmarshal([]byte(`{"_id":"w1",
		"staffId":{"_id":"st1","name":"Lan","phone":"0901234567"},
		"shiftId":{"_id":"sh1","shiftType":"Ca sáng","date":"2025-06-11T00:00:00.000Z","startTime":"08:00","endTime":"12:00"},
		"status":"pending"}`), &reg)
	require.NoError(t, err)
	assert.Equal(t, "Ca sáng", reg.ShiftID.ShiftType)
	assert.Equal(t, "2025-06-11", reg.ShiftID.Day())
	assert.Equal(t, "12:00", reg.ShiftID.EndTime)

	out, err := json.Marshal(reg)
	require.NoError(t, err)

	var again WorkShiftRegistration
	require.NoError(t, json.Unmarshal(out, &again))
	assert.Equal(t, reg, again)

	// A shift populated without a name is still written as a document.
	out, err = json.Marshal(Ref{ID: "sh2", StartTime: "13:00"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"_id":"sh2","startTime":"13:00"}`, string(out))
}
