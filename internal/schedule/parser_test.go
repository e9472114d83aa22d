package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yeongbeomSong/CourseEnroll/models"
)

func textDescriptor(text string) models.ScheduleDescriptor {
	return models.ScheduleDescriptor{Text: text}
}

func TestParseDescriptorText(t *testing.T) {
	t.Run("two korean segments", func(t *testing.T) {
		got := ParseDescriptor(textDescriptor("월 9:00-10:00, 수 14:00-15:00"))
		require.Len(t, got, 2)
		assert.Equal(t, Interval{Day: Monday, StartHour: 9, EndHour: 10}, got[0])
		assert.Equal(t, Interval{Day: Wednesday, StartHour: 14, EndHour: 15}, got[1])
	})

	t.Run("english day names", func(t *testing.T) {
		got := ParseDescriptor(textDescriptor("Mon 09:00-11:00, Fri 13:00-14:00"))
		require.Len(t, got, 2)
		assert.Equal(t, Interval{Day: Monday, StartHour: 9, EndHour: 11}, got[0])
		assert.Equal(t, Interval{Day: Friday, StartHour: 13, EndHour: 14}, got[1])
	})

	t.Run("missing minutes is not a valid segment", func(t *testing.T) {
		got := ParseDescriptor(textDescriptor("월 9-10"))
		assert.Empty(t, got)
	})

	t.Run("one bad segment does not blank the rest", func(t *testing.T) {
		got := ParseDescriptor(textDescriptor("월 9:00-10:00, garbage, 금 15:00-17:00"))
		require.Len(t, got, 2)
		assert.Equal(t, Monday, got[0].Day)
		assert.Equal(t, Friday, got[1].Day)
	})

	t.Run("outside teaching hours dropped", func(t *testing.T) {
		got := ParseDescriptor(textDescriptor("화 7:00-9:00, 화 20:00-22:00"))
		assert.Empty(t, got)
	})

	t.Run("inverted range dropped", func(t *testing.T) {
		got := ParseDescriptor(textDescriptor("목 15:00-14:00"))
		assert.Empty(t, got)
	})

	t.Run("empty descriptor", func(t *testing.T) {
		assert.Empty(t, ParseDescriptor(textDescriptor("")))
		assert.Empty(t, ParseDescriptor(textDescriptor("   ")))
	})

	t.Run("last startable hour accepted", func(t *testing.T) {
		got := ParseDescriptor(textDescriptor("금 20:00-21:00"))
		require.Len(t, got, 1)
		assert.Equal(t, Interval{Day: Friday, StartHour: 20, EndHour: 21}, got[0])
	})
}

func TestParseDescriptorRecords(t *testing.T) {
	t.Run("structured records win over text", func(t *testing.T) {
		d := models.ScheduleDescriptor{
			Text: "월 9:00-10:00",
			Records: []models.ScheduleRecord{
				{Day: "화", StartHour: 10, EndHour: 12},
				{Day: "Thu", StartHour: 15, EndHour: 16},
			},
		}
		got := ParseDescriptor(d)
		require.Len(t, got, 2)
		assert.Equal(t, Interval{Day: Tuesday, StartHour: 10, EndHour: 12}, got[0])
		assert.Equal(t, Interval{Day: Thursday, StartHour: 15, EndHour: 16}, got[1])
	})

	t.Run("unknown day dropped", func(t *testing.T) {
		d := models.ScheduleDescriptor{
			Records: []models.ScheduleRecord{
				{Day: "Sat", StartHour: 10, EndHour: 12},
				{Day: "금", StartHour: 10, EndHour: 12},
			},
		}
		got := ParseDescriptor(d)
		require.Len(t, got, 1)
		assert.Equal(t, Friday, got[0].Day)
	})

	t.Run("out of range record dropped", func(t *testing.T) {
		d := models.ScheduleDescriptor{
			Records: []models.ScheduleRecord{{Day: "수", StartHour: 8, EndHour: 10}},
		}
		assert.Empty(t, ParseDescriptor(d))
	})
}
