package database

import (
	"log"

	"gorm.io/gorm"

	deviceModel "presensiku_backend/internals/features/devices/devices/model"
	trxUserDeviceModel "presensiku_backend/internals/features/devices/trx_user_devices/model"
	institutionModel "presensiku_backend/internals/features/institutions/model"
	presenceModel "presensiku_backend/internals/features/presences/model"
	defaultScheduleModel "presensiku_backend/internals/features/scheduler/default_schedules/model"
	holidayModel "presensiku_backend/internals/features/scheduler/holidays/model"
	shiftingModel "presensiku_backend/internals/features/scheduler/shiftings/model"
	unitModel "presensiku_backend/internals/features/units/model"
	authModel "presensiku_backend/internals/features/users/auth/model"
	userModel "presensiku_backend/internals/features/users/users/model"
)

// MigrateAll menjalankan auto-migrate seluruh tabel aplikasi.
// Urutan mengikuti dependensi logis antar tabel.
func MigrateAll(db *gorm.DB) error {
	log.Println("[INFO] Menjalankan auto-migrate database...")

	err := db.AutoMigrate(
		&institutionModel.InstitutionModel{},
		&shiftingModel.ShiftingModel{},
		&unitModel.UnitModel{},
		&userModel.UserModel{},
		&defaultScheduleModel.DefaultScheduleModel{},
		&holidayModel.HolidayModel{},
		&deviceModel.DeviceModel{},
		&trxUserDeviceModel.TrxUserDeviceModel{},
		&presenceModel.PresenceModel{},
		&authModel.RefreshTokenModel{},
		&authModel.TokenBlacklistModel{},
		&authModel.TokenForgotPasswordModel{},
	)
	if err != nil {
		log.Println("❌ Auto-migrate gagal:", err)
		return err
	}

	log.Println("✅ Auto-migrate selesai")
	return nil
}
