package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"presensiku_backend/internals/constants"
	"presensiku_backend/internals/features/presences/dto"
	presenceModel "presensiku_backend/internals/features/presences/model"
	trxUserDeviceModel "presensiku_backend/internals/features/devices/trx_user_devices/model"
	deviceModel "presensiku_backend/internals/features/devices/devices/model"
	"presensiku_backend/internals/helpers/timezone"
)

func seedPresence(t *testing.T, db *gorm.DB, userGUID, institutionGUID, unitGUID, status, date string, createdAt time.Time) {
	t.Helper()

	require.NoError(t, db.Create(&presenceModel.PresenceModel{
		PresenceUserGUID:        userGUID,
		PresenceInstitutionGUID: institutionGUID,
		PresenceUnitGUID:        unitGUID,
		PresenceStatus:          status,
		PresenceDate:            date,
		CreatedAt:               createdAt,
	}).Error)
}

func TestFindAllPresence_Filters(t *testing.T) {
	db := newPresenceTestDB(t)
	require.NoError(t, db.AutoMigrate(
		&deviceModel.DeviceModel{},
		&trxUserDeviceModel.TrxUserDeviceModel{},
	))

	seedInstitution(t, db, "institution-a", nil)
	seedUnit(t, db, "unit-a1", "institution-a")
	seedUnit(t, db, "unit-a2", "institution-a")
	seedUser(t, db, "user-1", constants.RoleUser, "institution-a", strPtr("unit-a1"))
	seedUser(t, db, "user-2", constants.RoleUser, "institution-a", strPtr("unit-a2"))

	base := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	seedPresence(t, db, "user-1", "institution-a", "unit-a1", constants.PresenceStatusPresence, "2026-03-02", base)
	seedPresence(t, db, "user-2", "institution-a", "unit-a2", constants.PresenceStatusAlpha, "2026-03-02", base.Add(time.Minute))
	seedPresence(t, db, "user-1", "institution-a", "unit-a1", constants.PresenceStatusSick, "2026-04-06", base.AddDate(0, 1, 4))
	// institusi lain tidak boleh ikut terbaca
	seedPresence(t, db, "user-9", "institution-z", "unit-z1", constants.PresenceStatusPresence, "2026-03-02", base)

	svc := NewPresenceService(db, timezone.Fixed{Time: base})
	ctx := context.Background()

	rows, err := svc.FindAllPresence(ctx, dto.PresenceFilter{InstitutionGUID: "institution-a"})
	require.NoError(t, err)
	require.Len(t, rows, 3)

	// urut created_at DESC
	require.Equal(t, "2026-04-06", rows[0].PresenceDate)

	// join user & unit ter-resolve
	require.NotNil(t, rows[0].UserName)
	require.Equal(t, "User user-1", *rows[0].UserName)
	require.NotNil(t, rows[0].UnitName)
	require.Equal(t, "Unit unit-a1", *rows[0].UnitName)

	rows, err = svc.FindAllPresence(ctx, dto.PresenceFilter{
		InstitutionGUID: "institution-a",
		Date:            "2026-03-02",
	})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	rows, err = svc.FindAllPresence(ctx, dto.PresenceFilter{
		InstitutionGUID: "institution-a",
		Status:          constants.PresenceStatusAlpha,
	})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "user-2", rows[0].PresenceUserGUID)

	rows, err = svc.FindAllPresence(ctx, dto.PresenceFilter{
		InstitutionGUID: "institution-a",
		UnitGUID:        "unit-a1",
	})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// rentang bulan: bulan akhir inklusif
	rows, err = svc.FindAllPresence(ctx, dto.PresenceFilter{
		InstitutionGUID: "institution-a",
		StartMonth:      "2026-03",
		EndMonth:        "2026-04",
	})
	require.NoError(t, err)
	require.Len(t, rows, 3)

	rows, err = svc.FindAllPresence(ctx, dto.PresenceFilter{
		InstitutionGUID: "institution-a",
		StartMonth:      "2026-04",
		EndMonth:        "2026-04",
	})
	require.NoError(t, err)
	require.Len(t, rows, 1)

	rows, err = svc.FindAllPresence(ctx, dto.PresenceFilter{
		InstitutionGUID: "institution-a",
		Year:            "2026",
	})
	require.NoError(t, err)
	require.Len(t, rows, 3)
}

func TestFindDetailPresence(t *testing.T) {
	db := newPresenceTestDB(t)
	require.NoError(t, db.AutoMigrate(
		&deviceModel.DeviceModel{},
		&trxUserDeviceModel.TrxUserDeviceModel{},
	))

	seedInstitution(t, db, "institution-a", nil)
	seedUnit(t, db, "unit-a1", "institution-a")
	seedUser(t, db, "user-1", constants.RoleUser, "institution-a", strPtr("unit-a1"))

	base := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	seedPresence(t, db, "user-1", "institution-a", "unit-a1", constants.PresenceStatusPresence, "2026-03-02", base)

	var seeded presenceModel.PresenceModel
	require.NoError(t, db.First(&seeded).Error)

	svc := NewPresenceService(db, timezone.Fixed{Time: base})
	ctx := context.Background()

	row, err := svc.FindDetailPresence(ctx, seeded.PresenceGUID, "institution-a")
	require.NoError(t, err)
	require.Equal(t, "user-1", row.PresenceUserGUID)

	// guid benar tapi institusi lain: tidak ketemu
	_, err = svc.FindDetailPresence(ctx, seeded.PresenceGUID, "institution-z")
	require.Error(t, err)

	_, err = svc.FindDetailPresence(ctx, "presence-tidak-ada", "institution-a")
	require.Error(t, err)
}
