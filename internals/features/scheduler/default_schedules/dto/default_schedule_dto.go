package dto

type DayScheduleItem struct {
	// Index hari dalam minggu, Minggu = 0 .. Sabtu = 6
	ID  int    `json:"id" validate:"min=0,max=6"`
	Day string `json:"day" validate:"required"`
}

// UpsertDefaultScheduleRequest mengganti seluruh set hari kerja institusi.
// Set kosong diperbolehkan = jadwal dianggap belum dikonfigurasi.
type UpsertDefaultScheduleRequest struct {
	DaySchedule []DayScheduleItem `json:"daySchedule" validate:"dive"`
}
