package service

import (
	"context"
	"fmt"
	"log"

	"gorm.io/gorm"

	"presensiku_backend/internals/constants"
	database "presensiku_backend/internals/databases"
	presenceModel "presensiku_backend/internals/features/presences/model"
	schedulerService "presensiku_backend/internals/features/scheduler/service"
	unitModel "presensiku_backend/internals/features/units/model"
	userModel "presensiku_backend/internals/features/users/users/model"
	institutionModel "presensiku_backend/internals/features/institutions/model"
	"presensiku_backend/internals/helpers/timezone"
)

// PresenceService memuat logika inti presensi: generate harian, sapu sore,
// query gabungan, export, dan override status.
type PresenceService struct {
	DB       *gorm.DB
	Clock    timezone.Clock
	Resolver *schedulerService.ScheduleResolver
}

func NewPresenceService(db *gorm.DB, clock timezone.Clock) *PresenceService {
	return &PresenceService{
		DB:       db,
		Clock:    clock,
		Resolver: schedulerService.NewScheduleResolver(clock),
	}
}

// CreateDailyDefaultPresence membuat record presensi default (ALPHA) untuk
// semua user eligible di semua institusi pada hari ini.
//
// Satu run = satu transaksi: error apapun membatalkan SELURUH staging run
// ini, tidak ada insert parsial yang selamat. Kondisi skip per institusi /
// per user (libur, jadwal belum dikonfigurasi, unit kosong) BUKAN error,
// hanya dicatat lalu lanjut.
func (s *PresenceService) CreateDailyDefaultPresence(ctx context.Context) error {
	err := database.WithTransaction(ctx, s.DB, func(tx *gorm.DB) error {
		var stagedPayloads []presenceModel.PresenceModel

		var institutions []institutionModel.InstitutionModel
		if err := tx.Find(&institutions).Error; err != nil {
			return fmt.Errorf("gagal memuat institusi: %w", err)
		}

		if len(institutions) == 0 {
			// bukan fatal untuk proses: run berikutnya tetap berjalan
			log.Println("[INFO] Tidak ada institusi terdaftar, generate presensi dilewati")
			return nil
		}

		today := s.Clock.CurrentFullDate()

		for _, institution := range institutions {
			decision, err := s.Resolver.ResolveWorkingDay(tx, institution.InstitutionGUID)
			if err != nil {
				return fmt.Errorf("gagal resolve jadwal %s: %w", institution.InstitutionName, err)
			}

			if decision != schedulerService.DayWorking {
				log.Printf("[INFO] Skip generate presensi %s: %s", institution.InstitutionName, decision)
				continue
			}

			var users []userModel.UserModel
			if err := tx.Where("user_institution_guid = ? AND user_role = ?",
				institution.InstitutionGUID, constants.RoleUser).
				Find(&users).Error; err != nil {
				return fmt.Errorf("gagal memuat user %s: %w", institution.InstitutionName, err)
			}

			for _, user := range users {
				if user.UserUnitGUID == nil || *user.UserUnitGUID == "" {
					log.Printf("[INFO] User %s belum punya unit, dilewati", user.UserName)
					continue
				}

				var unit unitModel.UnitModel
				if err := tx.Where("unit_guid = ?", *user.UserUnitGUID).
					First(&unit).Error; err != nil {
					// inkonsistensi data, bukan alasan membatalkan run
					log.Printf("[ERROR] Unit user %s tidak ditemukan, dilewati", user.UserName)
					continue
				}

				stagedPayloads = append(stagedPayloads, presenceModel.PresenceModel{
					PresenceUserGUID:        user.UserGUID,
					PresenceInstitutionGUID: institution.InstitutionGUID,
					PresenceUnitGUID:        unit.UnitGUID,
					PresenceDate:            today,
					CreatedAt:               s.Clock.Now(),
				})
			}
		}

		if len(stagedPayloads) > 0 {
			if err := tx.Create(&stagedPayloads).Error; err != nil {
				return fmt.Errorf("gagal bulk insert presensi: %w", err)
			}
			log.Printf("[SUCCESS] %d record presensi harian dibuat untuk %s", len(stagedPayloads), today)
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("createDailyDefaultPresence: %w", err)
	}
	return nil
}

// CheckingFullyPresence adalah sapu akhir hari: record hari ini yang sudah
// check-in tapi belum check-out ditandai ALPHA. Best effort, satu bulk
// update, tanpa transaksi.
func (s *PresenceService) CheckingFullyPresence(ctx context.Context) (int64, error) {
	res := s.DB.WithContext(ctx).
		Model(&presenceModel.PresenceModel{}).
		Where("presence_check_in IS NOT NULL AND presence_check_out IS NULL").
		Where("created_at >= ? AND created_at <= ?", s.Clock.StartOfToday(), s.Clock.EndOfToday()).
		Update("presence_status", constants.PresenceStatusAlpha)

	if res.Error != nil {
		return 0, fmt.Errorf("checkingFullyPresence: %w", res.Error)
	}

	log.Printf("[INFO] Checking fully presence: %d record ditandai %s", res.RowsAffected, constants.PresenceStatusAlpha)
	return res.RowsAffected, nil
}
