package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"presensiku_backend/internals/constants"
	institutionModel "presensiku_backend/internals/features/institutions/model"
	presenceModel "presensiku_backend/internals/features/presences/model"
	defaultScheduleModel "presensiku_backend/internals/features/scheduler/default_schedules/model"
	holidayModel "presensiku_backend/internals/features/scheduler/holidays/model"
	unitModel "presensiku_backend/internals/features/units/model"
	userModel "presensiku_backend/internals/features/users/users/model"
	"presensiku_backend/internals/helpers/timezone"
)

// Senin 2 Maret 2026, 00:05 WIB
var generateAt = time.Date(2026, 3, 2, 0, 5, 0, 0, time.FixedZone("WIB", 7*3600))

func newPresenceTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&institutionModel.InstitutionModel{},
		&unitModel.UnitModel{},
		&userModel.UserModel{},
		&defaultScheduleModel.DefaultScheduleModel{},
		&holidayModel.HolidayModel{},
		&presenceModel.PresenceModel{},
	))
	return db
}

func seedInstitution(t *testing.T, db *gorm.DB, guid string, workdays []int) {
	t.Helper()

	require.NoError(t, db.Create(&institutionModel.InstitutionModel{
		InstitutionGUID: guid,
		InstitutionName: "Institusi " + guid,
		InstitutionType: constants.InstitutionTypeCompany,
	}).Error)

	if workdays == nil {
		return
	}
	days := make([]defaultScheduleModel.DaySchedule, 0, len(workdays))
	for _, id := range workdays {
		days = append(days, defaultScheduleModel.DaySchedule{ID: id})
	}
	schedule := defaultScheduleModel.DefaultScheduleModel{DefaultScheduleInstitutionGUID: guid}
	require.NoError(t, schedule.SetDays(days))
	require.NoError(t, db.Create(&schedule).Error)
}

func seedUnit(t *testing.T, db *gorm.DB, guid, institutionGUID string) {
	t.Helper()

	require.NoError(t, db.Create(&unitModel.UnitModel{
		UnitGUID:            guid,
		UnitName:            "Unit " + guid,
		UnitInstitutionGUID: institutionGUID,
		UnitShiftGUID:       "shifting-x",
	}).Error)
}

func seedUser(t *testing.T, db *gorm.DB, guid, role string, institutionGUID string, unitGUID *string) {
	t.Helper()

	require.NoError(t, db.Create(&userModel.UserModel{
		UserGUID:            guid,
		UserName:            "User " + guid,
		UserEmail:           guid + "@example.com",
		UserPassword:        "hash",
		UserRole:            role,
		UserInstitutionGUID: &institutionGUID,
		UserUnitGUID:        unitGUID,
	}).Error)
}

func strPtr(s string) *string { return &s }

func TestCreateDailyDefaultPresence_GeneratesAlphaForEligibleUsers(t *testing.T) {
	db := newPresenceTestDB(t)
	allDays := []int{0, 1, 2, 3, 4, 5, 6}

	// Institusi A: hari kerja. Institusi B: libur hari ini.
	seedInstitution(t, db, "institution-a", allDays)
	seedInstitution(t, db, "institution-b", allDays)
	require.NoError(t, db.Create(&holidayModel.HolidayModel{
		HolidayTitle:           "Libur B",
		HolidayDate:            generateAt.Format("2006-01-02"),
		HolidayInstitutionGUID: "institution-b",
	}).Error)

	seedUnit(t, db, "unit-a1", "institution-a")
	seedUnit(t, db, "unit-b1", "institution-b")

	seedUser(t, db, "user-1", constants.RoleUser, "institution-a", strPtr("unit-a1"))
	seedUser(t, db, "user-2", constants.RoleUser, "institution-a", strPtr("unit-a1"))
	seedUser(t, db, "user-3", constants.RoleUser, "institution-a", nil)              // tanpa unit
	seedUser(t, db, "user-4", constants.RoleAdmin, "institution-a", strPtr("unit-a1")) // admin tidak ikut
	seedUser(t, db, "user-5", constants.RoleUser, "institution-b", strPtr("unit-b1")) // institusi libur

	svc := NewPresenceService(db, timezone.Fixed{Time: generateAt})
	require.NoError(t, svc.CreateDailyDefaultPresence(context.Background()))

	var presences []presenceModel.PresenceModel
	require.NoError(t, db.Order("presence_user_guid").Find(&presences).Error)
	require.Len(t, presences, 2)

	require.Equal(t, "user-1", presences[0].PresenceUserGUID)
	require.Equal(t, "user-2", presences[1].PresenceUserGUID)
	for _, p := range presences {
		require.Equal(t, constants.PresenceStatusAlpha, p.PresenceStatus)
		require.Equal(t, constants.DeviceTypeNone, p.PresenceType)
		require.Equal(t, "institution-a", p.PresenceInstitutionGUID)
		require.Equal(t, "unit-a1", p.PresenceUnitGUID)
		require.Equal(t, generateAt.Format("2006-01-02"), p.PresenceDate)
		require.Nil(t, p.PresenceCheckIn)
		require.Nil(t, p.PresenceCheckOut)
	}
}

func TestCreateDailyDefaultPresence_NoInstitutions(t *testing.T) {
	db := newPresenceTestDB(t)

	svc := NewPresenceService(db, timezone.Fixed{Time: generateAt})
	require.NoError(t, svc.CreateDailyDefaultPresence(context.Background()))

	var count int64
	require.NoError(t, db.Model(&presenceModel.PresenceModel{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestCreateDailyDefaultPresence_UnconfiguredInstitutionSkipped(t *testing.T) {
	db := newPresenceTestDB(t)

	seedInstitution(t, db, "institution-a", nil) // tanpa jadwal default
	seedUnit(t, db, "unit-a1", "institution-a")
	seedUser(t, db, "user-1", constants.RoleUser, "institution-a", strPtr("unit-a1"))

	svc := NewPresenceService(db, timezone.Fixed{Time: generateAt})
	require.NoError(t, svc.CreateDailyDefaultPresence(context.Background()))

	var count int64
	require.NoError(t, db.Model(&presenceModel.PresenceModel{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestCreateDailyDefaultPresence_DanglingUnitSkipped(t *testing.T) {
	db := newPresenceTestDB(t)

	seedInstitution(t, db, "institution-a", []int{0, 1, 2, 3, 4, 5, 6})
	seedUnit(t, db, "unit-a1", "institution-a")
	seedUser(t, db, "user-1", constants.RoleUser, "institution-a", strPtr("unit-a1"))
	seedUser(t, db, "user-2", constants.RoleUser, "institution-a", strPtr("unit-hilang"))

	svc := NewPresenceService(db, timezone.Fixed{Time: generateAt})
	require.NoError(t, svc.CreateDailyDefaultPresence(context.Background()))

	var presences []presenceModel.PresenceModel
	require.NoError(t, db.Find(&presences).Error)
	require.Len(t, presences, 1)
	require.Equal(t, "user-1", presences[0].PresenceUserGUID)
}

// Insert gagal di tengah run: seluruh transaksi harus batal, tidak ada
// record parsial yang tersisa.
func TestCreateDailyDefaultPresence_RollbackOnInsertFailure(t *testing.T) {
	db := newPresenceTestDB(t)

	seedInstitution(t, db, "institution-a", []int{0, 1, 2, 3, 4, 5, 6})
	seedUnit(t, db, "unit-a1", "institution-a")
	seedUser(t, db, "user-1", constants.RoleUser, "institution-a", strPtr("unit-a1"))
	seedUser(t, db, "user-2", constants.RoleUser, "institution-a", strPtr("unit-a1"))

	failInsert := errors.New("disk penuh")
	require.NoError(t, db.Callback().Create().Before("gorm:create").
		Register("test:fail_presence_insert", func(tx *gorm.DB) {
			if tx.Statement.Table == "presences" {
				tx.AddError(failInsert)
			}
		}))

	svc := NewPresenceService(db, timezone.Fixed{Time: generateAt})
	err := svc.CreateDailyDefaultPresence(context.Background())
	require.Error(t, err)
	require.ErrorIs(t, err, failInsert)

	var count int64
	require.NoError(t, db.Model(&presenceModel.PresenceModel{}).Count(&count).Error)
	require.Zero(t, count)
}

// Generate ulang di hari yang sama menabrak unique index (user, tanggal):
// run kedua gagal total dan jumlah record tidak bertambah.
func TestCreateDailyDefaultPresence_RerunSameDayDoesNotDuplicate(t *testing.T) {
	db := newPresenceTestDB(t)

	seedInstitution(t, db, "institution-a", []int{0, 1, 2, 3, 4, 5, 6})
	seedUnit(t, db, "unit-a1", "institution-a")
	seedUser(t, db, "user-1", constants.RoleUser, "institution-a", strPtr("unit-a1"))

	svc := NewPresenceService(db, timezone.Fixed{Time: generateAt})
	require.NoError(t, svc.CreateDailyDefaultPresence(context.Background()))
	require.Error(t, svc.CreateDailyDefaultPresence(context.Background()))

	var count int64
	require.NoError(t, db.Model(&presenceModel.PresenceModel{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestCheckingFullyPresence(t *testing.T) {
	db := newPresenceTestDB(t)
	today := generateAt.Format("2006-01-02")
	yesterday := generateAt.AddDate(0, 0, -1)

	seed := []presenceModel.PresenceModel{
		{
			// check-in tanpa check-out hari ini: harus jadi ALPHA
			PresenceUserGUID:        "user-1",
			PresenceInstitutionGUID: "institution-a",
			PresenceUnitGUID:        "unit-a1",
			PresenceStatus:          constants.PresenceStatusPresence,
			PresenceCheckIn:         strPtr("07:12"),
			PresenceDate:            today,
			CreatedAt:               generateAt,
		},
		{
			// sudah lengkap: tidak disentuh
			PresenceUserGUID:        "user-2",
			PresenceInstitutionGUID: "institution-a",
			PresenceUnitGUID:        "unit-a1",
			PresenceStatus:          constants.PresenceStatusPresence,
			PresenceCheckIn:         strPtr("07:03"),
			PresenceCheckOut:        strPtr("16:01"),
			PresenceDate:            today,
			CreatedAt:               generateAt,
		},
		{
			// record kemarin di luar jangkauan sapu hari ini
			PresenceUserGUID:        "user-3",
			PresenceInstitutionGUID: "institution-a",
			PresenceUnitGUID:        "unit-a1",
			PresenceStatus:          constants.PresenceStatusPresence,
			PresenceCheckIn:         strPtr("07:30"),
			PresenceDate:            yesterday.Format("2006-01-02"),
			CreatedAt:               yesterday,
		},
	}
	require.NoError(t, db.Create(&seed).Error)

	svc := NewPresenceService(db, timezone.Fixed{Time: generateAt})
	affected, err := svc.CheckingFullyPresence(context.Background())
	require.NoError(t, err)
	require.EqualValues(t, 1, affected)

	byUser := map[string]string{}
	var presences []presenceModel.PresenceModel
	require.NoError(t, db.Find(&presences).Error)
	for _, p := range presences {
		byUser[p.PresenceUserGUID] = p.PresenceStatus
	}
	require.Equal(t, constants.PresenceStatusAlpha, byUser["user-1"])
	require.Equal(t, constants.PresenceStatusPresence, byUser["user-2"])
	require.Equal(t, constants.PresenceStatusPresence, byUser["user-3"])
}
