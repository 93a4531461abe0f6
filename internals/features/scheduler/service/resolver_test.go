package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	defaultScheduleModel "presensiku_backend/internals/features/scheduler/default_schedules/model"
	holidayModel "presensiku_backend/internals/features/scheduler/holidays/model"
	"presensiku_backend/internals/helpers/timezone"
)

func newResolverTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&holidayModel.HolidayModel{},
		&defaultScheduleModel.DefaultScheduleModel{},
	))
	return db
}

// Senin 2 Maret 2026
var monday = time.Date(2026, 3, 2, 7, 0, 0, 0, time.UTC)

func seedSchedule(t *testing.T, db *gorm.DB, institutionGUID string, days []defaultScheduleModel.DaySchedule) {
	t.Helper()

	schedule := defaultScheduleModel.DefaultScheduleModel{
		DefaultScheduleInstitutionGUID: institutionGUID,
	}
	require.NoError(t, schedule.SetDays(days))
	require.NoError(t, db.Create(&schedule).Error)
}

var weekdays = []defaultScheduleModel.DaySchedule{
	{ID: 1, Day: "Senin"},
	{ID: 2, Day: "Selasa"},
	{ID: 3, Day: "Rabu"},
	{ID: 4, Day: "Kamis"},
	{ID: 5, Day: "Jumat"},
}

func TestResolveWorkingDay_WorkingDay(t *testing.T) {
	db := newResolverTestDB(t)
	seedSchedule(t, db, "institution-a", weekdays)

	resolver := NewScheduleResolver(timezone.Fixed{Time: monday})

	decision, err := resolver.ResolveWorkingDay(db, "institution-a")
	require.NoError(t, err)
	require.Equal(t, DayWorking, decision)
}

func TestResolveWorkingDay_DayOff(t *testing.T) {
	db := newResolverTestDB(t)
	seedSchedule(t, db, "institution-a", weekdays)

	sunday := monday.AddDate(0, 0, -1)
	resolver := NewScheduleResolver(timezone.Fixed{Time: sunday})

	decision, err := resolver.ResolveWorkingDay(db, "institution-a")
	require.NoError(t, err)
	require.Equal(t, DayOff, decision)
}

func TestResolveWorkingDay_UnconfiguredWhenScheduleMissing(t *testing.T) {
	db := newResolverTestDB(t)

	resolver := NewScheduleResolver(timezone.Fixed{Time: monday})

	decision, err := resolver.ResolveWorkingDay(db, "institution-a")
	require.NoError(t, err)
	require.Equal(t, DayUnconfigured, decision)
}

func TestResolveWorkingDay_UnconfiguredWhenDaysEmpty(t *testing.T) {
	db := newResolverTestDB(t)
	seedSchedule(t, db, "institution-a", []defaultScheduleModel.DaySchedule{})

	resolver := NewScheduleResolver(timezone.Fixed{Time: monday})

	decision, err := resolver.ResolveWorkingDay(db, "institution-a")
	require.NoError(t, err)
	require.Equal(t, DayUnconfigured, decision)
}

func TestResolveWorkingDay_HolidayBeatsWorkingDay(t *testing.T) {
	db := newResolverTestDB(t)
	seedSchedule(t, db, "institution-a", weekdays)
	require.NoError(t, db.Create(&holidayModel.HolidayModel{
		HolidayTitle:           "Cuti bersama",
		HolidayDate:            monday.Format("2006-01-02"),
		HolidayInstitutionGUID: "institution-a",
	}).Error)

	resolver := NewScheduleResolver(timezone.Fixed{Time: monday})

	decision, err := resolver.ResolveWorkingDay(db, "institution-a")
	require.NoError(t, err)
	require.Equal(t, DayHoliday, decision)
}

// Hari libur tetap menang walau jadwal default belum pernah dibuat.
func TestResolveWorkingDay_HolidayWithoutSchedule(t *testing.T) {
	db := newResolverTestDB(t)
	require.NoError(t, db.Create(&holidayModel.HolidayModel{
		HolidayTitle:           "Hari pendirian",
		HolidayDate:            monday.Format("2006-01-02"),
		HolidayInstitutionGUID: "institution-a",
	}).Error)

	resolver := NewScheduleResolver(timezone.Fixed{Time: monday})

	decision, err := resolver.ResolveWorkingDay(db, "institution-a")
	require.NoError(t, err)
	require.Equal(t, DayHoliday, decision)
}

// Hari libur institusi lain tidak berpengaruh.
func TestResolveWorkingDay_HolidayScopedPerInstitution(t *testing.T) {
	db := newResolverTestDB(t)
	seedSchedule(t, db, "institution-a", weekdays)
	require.NoError(t, db.Create(&holidayModel.HolidayModel{
		HolidayTitle:           "Libur institusi lain",
		HolidayDate:            monday.Format("2006-01-02"),
		HolidayInstitutionGUID: "institution-b",
	}).Error)

	resolver := NewScheduleResolver(timezone.Fixed{Time: monday})

	decision, err := resolver.ResolveWorkingDay(db, "institution-a")
	require.NoError(t, err)
	require.Equal(t, DayWorking, decision)
}
