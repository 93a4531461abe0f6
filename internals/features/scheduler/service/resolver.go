package service

import (
	"errors"

	"gorm.io/gorm"

	defaultScheduleModel "presensiku_backend/internals/features/scheduler/default_schedules/model"
	holidayModel "presensiku_backend/internals/features/scheduler/holidays/model"
	"presensiku_backend/internals/helpers/timezone"
)

// DayDecision adalah hasil penentuan hari kerja sebuah institusi.
type DayDecision int

const (
	// DayUnconfigured: jadwal default tidak ada / kosong. Berbeda makna dengan
	// DayOff: institusi di-skip karena TIDAK BISA ditentukan, bukan libur.
	DayUnconfigured DayDecision = iota
	// DayHoliday: ada hari libur bertanggal hari ini, apapun jadwal mingguannya.
	DayHoliday
	// DayOff: hari ini bukan anggota set hari kerja mingguan.
	DayOff
	// DayWorking: hari kerja, presensi harian boleh digenerate.
	DayWorking
)

func (d DayDecision) String() string {
	switch d {
	case DayUnconfigured:
		return "unconfigured"
	case DayHoliday:
		return "holiday"
	case DayOff:
		return "day off"
	default:
		return "working day"
	}
}

// ScheduleResolver menentukan apakah "hari ini" hari kerja untuk sebuah
// institusi: cek hari libur dulu, baru pola mingguan.
type ScheduleResolver struct {
	Clock timezone.Clock
}

func NewScheduleResolver(clock timezone.Clock) *ScheduleResolver {
	return &ScheduleResolver{Clock: clock}
}

// ResolveWorkingDay berjalan di atas tx milik pemanggil supaya pembacaan
// jadwal ikut sesi transaksi generate.
func (r *ScheduleResolver) ResolveWorkingDay(tx *gorm.DB, institutionGUID string) (DayDecision, error) {
	today := r.Clock.CurrentFullDate()

	// 1) Hari libur dicek lebih dulu dan independen dari keberadaan jadwal:
	// institusi tanpa jadwal default tetap libur bila ada holiday hari ini.
	var holiday holidayModel.HolidayModel
	err := tx.Where("holiday_institution_guid = ? AND holiday_date = ?", institutionGUID, today).
		First(&holiday).Error
	if err == nil {
		return DayHoliday, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return DayUnconfigured, err
	}

	// 2) Jadwal default; tidak ada record = belum dikonfigurasi
	var schedule defaultScheduleModel.DefaultScheduleModel
	err = tx.Where("default_schedule_institution_guid = ?", institutionGUID).
		First(&schedule).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return DayUnconfigured, nil
	}
	if err != nil {
		return DayUnconfigured, err
	}

	days, err := schedule.Days()
	if err != nil {
		return DayUnconfigured, err
	}
	if len(days) == 0 {
		return DayUnconfigured, nil
	}

	// 3) Keanggotaan index hari ini pada set hari kerja
	currentDay := r.Clock.CurrentDay()
	for _, day := range days {
		if day.ID == currentDay {
			return DayWorking, nil
		}
	}
	return DayOff, nil
}
