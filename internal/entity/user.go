package entity

import (
	"math"
	"time"
)

// Study-hour bounds applied whenever a user edits their settings.
const (
	MinWeekdayStudyHours = 0.5
	MinWeekendStudyHours = 0
	MaxStudyHours        = 12

	DefaultWeekdayStudyHours = 2.0
	DefaultWeekendStudyHours = 3.0
)

// User is an account with study-schedule preferences.
type User struct {
	ID                int64
	Email             string
	Username          string
	PasswordHash      string
	StudyHoursPerDay  float64
	WeekendStudyHours float64
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// StudyHoursFor returns the configured study hours for the given weekday,
// falling back to the defaults when the user never set them.
func (u User) StudyHoursFor(day time.Weekday) float64 {
	if day == time.Saturday || day == time.Sunday {
		if u.WeekendStudyHours > 0 {
			return u.WeekendStudyHours
		}
		return DefaultWeekendStudyHours
	}
	if u.StudyHoursPerDay > 0 {
		return u.StudyHoursPerDay
	}
	return DefaultWeekdayStudyHours
}

// ClampWeekdayHours bounds a weekday study-hours setting.
func ClampWeekdayHours(hours float64) float64 {
	return math.Min(MaxStudyHours, math.Max(MinWeekdayStudyHours, hours))
}

// ClampWeekendHours bounds a weekend study-hours setting.
func ClampWeekendHours(hours float64) float64 {
	return math.Min(MaxStudyHours, math.Max(MinWeekendStudyHours, hours))
}

// DailyTaskCount derives how many tasks a day should hold: roughly one task
// per 30 minutes of configured study time, never less than one.
func DailyTaskCount(studyHours float64) int {
	n := int(math.Round(studyHours * 2))
	if n < 1 {
		return 1
	}
	return n
}

// TaskTypePreference enables or disables a task type for a user.
type TaskTypePreference struct {
	UserID     int64
	TaskTypeID int64
	Enabled    bool
}

// SubjectPreference holds per-user, per-subject generation settings. When
// ExclusiveTaskTypeID is set, task generation for the subject is restricted
// to exactly that type.
type SubjectPreference struct {
	UserID              int64
	SubjectID           int64
	ExclusiveTaskTypeID *int64
}
