package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleDescriptorUnmarshal(t *testing.T) {
	t.Run("text form", func(t *testing.T) {
		var c Course
		err := json.Unmarshal([]byte(`{"id":1,"schedule":"월 9:00-10:00, 수 14:00-15:00"}`), &c)
		require.NoError(t, err)
		assert.Equal(t, "월 9:00-10:00, 수 14:00-15:00", c.Schedule.Text)
		assert.Empty(t, c.Schedule.Records)
	})

	t.Run("structured form", func(t *testing.T) {
		var c Course
		err := json.Unmarshal([]byte(`{"id":1,"schedule":[{"day":"화","startHour":10,"endHour":12}]}`), &c)
		require.NoError(t, err)
		require.Len(t, c.Schedule.Records, 1)
		assert.Equal(t, ScheduleRecord{Day: "화", StartHour: 10, EndHour: 12}, c.Schedule.Records[0])
		assert.Empty(t, c.Schedule.Text)
	})

	t.Run("null and absent are zero", func(t *testing.T) {
		var c Course
		require.NoError(t, json.Unmarshal([]byte(`{"id":1,"schedule":null}`), &c))
		assert.True(t, c.Schedule.IsZero())

		var c2 Course
		require.NoError(t, json.Unmarshal([]byte(`{"id":1}`), &c2))
		assert.True(t, c2.Schedule.IsZero())
	})
}

func TestScheduleDescriptorDisplay(t *testing.T) {
	assert.Equal(t, "월 9:00-10:00", ScheduleDescriptor{Text: "월 9:00-10:00"}.Display())
	assert.Equal(t, "화 10:00-12:00, 목 15:00-16:00", ScheduleDescriptor{
		Records: []ScheduleRecord{
			{Day: "화", StartHour: 10, EndHour: 12},
			{Day: "목", StartHour: 15, EndHour: 16},
		},
	}.Display())
	assert.Empty(t, ScheduleDescriptor{}.Display())
}

func TestCourseRemainingSeats(t *testing.T) {
	assert.Equal(t, 5, Course{Capacity: 30, CurrentEnrollment: 25}.RemainingSeats())
	assert.Zero(t, Course{Capacity: 30, CurrentEnrollment: 30}.RemainingSeats())
	// A stale snapshot may report more enrollments than seats.
	assert.Zero(t, Course{Capacity: 30, CurrentEnrollment: 35}.RemainingSeats())
}
