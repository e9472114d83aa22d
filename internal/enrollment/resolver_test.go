package enrollment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yeongbeomSong/CourseEnroll/models"
)

func course(id int64, capacity, current int) models.Course {
	return models.Course{Id: id, Capacity: capacity, CurrentEnrollment: current}
}

func TestNewMembershipSet(t *testing.T) {
	t.Run("indexes registration ids", func(t *testing.T) {
		set, err := NewMembershipSet([]models.MembershipRecord{
			{CourseId: 1, RegistrationId: 100},
			{CourseId: 2, RegistrationId: 200},
		})
		require.NoError(t, err)
		assert.Equal(t, int64(100), set[1])
		assert.Equal(t, int64(200), set[2])
	})

	t.Run("rejects duplicate course", func(t *testing.T) {
		_, err := NewMembershipSet([]models.MembershipRecord{
			{CourseId: 1, RegistrationId: 100},
			{CourseId: 1, RegistrationId: 101},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate membership")
	})

	t.Run("empty input", func(t *testing.T) {
		set, err := NewMembershipSet(nil)
		require.NoError(t, err)
		assert.Empty(t, set)
	})
}

func TestNewWaitlistIndex(t *testing.T) {
	index := NewWaitlistIndex([]models.WaitlistEntry{
		{CourseId: 1, Position: 3},
		{CourseId: 2, Position: 0},
		{CourseId: 3, Position: -1},
	})
	assert.Equal(t, 3, index[1])
	_, ok := index[2]
	assert.False(t, ok)
	_, ok = index[3]
	assert.False(t, ok)
}

func TestResolveStatus(t *testing.T) {
	t.Run("available with remaining seats", func(t *testing.T) {
		status := ResolveStatus(course(1, 30, 25), MembershipSet{}, WaitlistIndex{})
		assert.Equal(t, StatusAvailable, status.Kind)
		assert.Equal(t, 5, status.RemainingSeats)
	})

	t.Run("full at capacity", func(t *testing.T) {
		status := ResolveStatus(course(1, 30, 30), MembershipSet{}, WaitlistIndex{})
		assert.Equal(t, StatusFull, status.Kind)
		assert.Zero(t, status.RemainingSeats)
	})

	t.Run("stale over-enrolled snapshot clamps to zero", func(t *testing.T) {
		status := ResolveStatus(course(1, 30, 35), MembershipSet{}, WaitlistIndex{})
		assert.Equal(t, StatusFull, status.Kind)
		assert.Zero(t, status.RemainingSeats)
	})

	t.Run("enrolled carries the registration id", func(t *testing.T) {
		status := ResolveStatus(course(1, 30, 30), MembershipSet{1: 900}, WaitlistIndex{})
		assert.Equal(t, StatusEnrolled, status.Kind)
		assert.Equal(t, int64(900), status.RegistrationId)
		assert.Zero(t, status.WaitingPosition)
	})

	t.Run("waitlisted carries the position", func(t *testing.T) {
		status := ResolveStatus(course(1, 30, 30), MembershipSet{}, WaitlistIndex{1: 4})
		assert.Equal(t, StatusWaitlisted, status.Kind)
		assert.Equal(t, 4, status.WaitingPosition)
		assert.Zero(t, status.RegistrationId)
	})

	t.Run("membership beats a stale waitlist entry", func(t *testing.T) {
		status := ResolveStatus(course(1, 30, 10), MembershipSet{1: 900}, WaitlistIndex{1: 3})
		assert.Equal(t, StatusEnrolled, status.Kind)
		assert.Equal(t, int64(900), status.RegistrationId)
		assert.Zero(t, status.WaitingPosition)
	})

	t.Run("statuses refer to the course asked about", func(t *testing.T) {
		status := ResolveStatus(course(2, 30, 10), MembershipSet{1: 900}, WaitlistIndex{3: 1})
		assert.Equal(t, StatusAvailable, status.Kind)
	})
}
