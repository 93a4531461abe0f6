package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"presensiku_backend/internals/constants"
	"presensiku_backend/internals/features/presences/dto"
	presenceModel "presensiku_backend/internals/features/presences/model"
	"presensiku_backend/internals/helpers/excel"
)

// buildPresenceQuery menyusun query join presensi + user + unit + device
// dengan filter opsional. Nama unit & identitas user di-resolve saat query
// (late join), tidak disimpan ganda di record presensi.
func (s *PresenceService) buildPresenceQuery(ctx context.Context, filter dto.PresenceFilter) *gorm.DB {
	q := s.DB.WithContext(ctx).
		Table("presences AS p").
		Select(`p.presence_guid, p.presence_user_guid, u.user_identity, u.user_name,
			p.presence_status, p.presence_unit_guid, un.unit_name,
			t.trx_user_device_mac AS mac_device, d.device_location,
			p.presence_device_presence_guid, p.presence_type,
			p.presence_image_check_in, p.presence_image_check_out, p.presence_description,
			p.presence_check_in_latitude, p.presence_check_in_longitude,
			p.presence_check_out_latitude, p.presence_check_out_longitude,
			p.presence_check_in, p.presence_check_out, p.presence_date, p.created_at`).
		Joins("LEFT JOIN users u ON u.user_guid = p.presence_user_guid").
		Joins("LEFT JOIN units un ON un.unit_guid = p.presence_unit_guid").
		Joins("LEFT JOIN trx_user_devices t ON t.trx_user_device_guid = p.presence_device_presence_guid").
		Joins("LEFT JOIN devices d ON d.device_mac = p.presence_device_guid").
		Where("p.presence_institution_guid = ?", filter.InstitutionGUID)

	if filter.UserGUID != "" {
		q = q.Where("p.presence_user_guid = ?", filter.UserGUID)
	}
	if filter.Year != "" {
		q = q.Where("p.presence_date >= ? AND p.presence_date <= ?",
			filter.Year+"-01-01", filter.Year+"-12-31")
	}
	if filter.StartMonth != "" && filter.EndMonth != "" {
		// bulan akhir inklusif: batas atas = awal bulan berikutnya (eksklusif)
		if end, err := time.Parse("2006-01", filter.EndMonth); err == nil {
			q = q.Where("p.presence_date >= ? AND p.presence_date < ?",
				filter.StartMonth+"-01", end.AddDate(0, 1, 0).Format("2006-01-02"))
		}
	}
	if filter.Date != "" {
		q = q.Where("p.presence_date = ?", filter.Date)
	}
	if filter.UnitGUID != "" {
		q = q.Where("p.presence_unit_guid = ?", filter.UnitGUID)
	}
	if filter.Status != "" {
		q = q.Where("p.presence_status = ?", filter.Status)
	}

	return q.Order("p.created_at DESC")
}

// FindAllPresence mengembalikan daftar presensi ter-filter milik institusi.
func (s *PresenceService) FindAllPresence(ctx context.Context, filter dto.PresenceFilter) ([]dto.PresenceRow, error) {
	var rows []dto.PresenceRow
	if err := s.buildPresenceQuery(ctx, filter).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("gagal query presensi: %w", err)
	}
	return rows, nil
}

// FindDetailPresence mengembalikan satu presensi milik institusi.
func (s *PresenceService) FindDetailPresence(ctx context.Context, guid, institutionGUID string) (*dto.PresenceRow, error) {
	var rows []dto.PresenceRow
	q := s.buildPresenceQuery(ctx, dto.PresenceFilter{InstitutionGUID: institutionGUID}).
		Where("p.presence_guid = ?", guid).Limit(1)
	if err := q.Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("gagal query detail presensi: %w", err)
	}
	if len(rows) == 0 {
		return nil, fiber.NewError(fiber.StatusNotFound, "Presence not found")
	}
	return &rows[0], nil
}

func strOrDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

func floatOrDash(f *float64) interface{} {
	if f == nil {
		return "-"
	}
	return *f
}

// ExportAllPresence menghasilkan workbook xlsx berisi daftar presensi
// ter-filter + baris ringkasan total per status di bagian bawah.
func (s *PresenceService) ExportAllPresence(ctx context.Context, filter dto.PresenceFilter) (string, *bytes.Buffer, error) {
	rows, err := s.FindAllPresence(ctx, filter)
	if err != nil {
		return "", nil, err
	}
	if len(rows) == 0 {
		return "", nil, fiber.NewError(fiber.StatusNotFound, "Presence not found")
	}

	headers := []string{
		"NISN", "Nama", "Kelas", "Status", "Tipe Presensi",
		"Jam Masuk", "Jam Keluar", "Link Gambar Masuk", "Link Gambar Pulang",
		"Deskripsi", "Latitude Checkin", "Longitude Checkin",
		"Latitude Checkout", "Longitude Checkout", "Tanggal",
	}

	data := make([][]interface{}, 0, len(rows)+5)
	totals := map[string]int{}
	for _, row := range rows {
		totals[row.PresenceStatus]++
		data = append(data, []interface{}{
			strOrDash(row.UserIdentity),
			strOrDash(row.UserName),
			strOrDash(row.UnitName),
			row.PresenceStatus,
			row.PresenceType,
			strOrDash(row.PresenceCheckIn),
			strOrDash(row.PresenceCheckOut),
			strOrDash(row.PresenceImageCheckIn),
			strOrDash(row.PresenceImageCheckOut),
			strOrDash(row.PresenceDescription),
			floatOrDash(row.PresenceCheckInLatitude),
			floatOrDash(row.PresenceCheckInLongitude),
			floatOrDash(row.PresenceCheckOutLatitude),
			floatOrDash(row.PresenceCheckOutLongitude),
			row.PresenceDate,
		})
	}

	// baris ringkasan (kolom Nama dipakai untuk angka, mengikuti format lama)
	summary := [][2]interface{}{
		{"Total Presensi", len(rows)},
		{"Total Hadir", totals[constants.PresenceStatusPresence]},
		{"Total Sakit", totals[constants.PresenceStatusSick]},
		{"Total Izin", totals[constants.PresenceStatusPermitted]},
		{"Total Alpha", totals[constants.PresenceStatusAlpha]},
	}
	for _, item := range summary {
		data = append(data, []interface{}{item[0], item[1], "", "", "", "", "", "", "", "", "", "", "", "", ""})
	}

	filename := fmt.Sprintf("presence-%d", s.Clock.Now().UnixMilli())
	buf, err := excel.Export(filename, headers, data)
	if err != nil {
		return "", nil, fmt.Errorf("gagal export presensi: %w", err)
	}
	return filename, buf, nil
}

// ChangePresenceStatus meng-override status satu presensi (aksi admin).
func (s *PresenceService) ChangePresenceStatus(ctx context.Context, guid, institutionGUID, status string) (*presenceModel.PresenceModel, error) {
	if !constants.IsValidPresenceStatus(status) {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Status presensi tidak valid")
	}

	var presence presenceModel.PresenceModel
	err := s.DB.WithContext(ctx).
		Where("presence_guid = ? AND presence_institution_guid = ?", guid, institutionGUID).
		First(&presence).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fiber.NewError(fiber.StatusNotFound, "Presence not found")
	}
	if err != nil {
		return nil, err
	}

	presence.PresenceStatus = status
	if err := s.DB.WithContext(ctx).Save(&presence).Error; err != nil {
		return nil, fmt.Errorf("gagal update status presensi: %w", err)
	}
	return &presence, nil
}

// DeletePresence menghapus satu presensi milik institusi (aksi admin).
func (s *PresenceService) DeletePresence(ctx context.Context, guid, institutionGUID string) error {
	res := s.DB.WithContext(ctx).
		Where("presence_guid = ? AND presence_institution_guid = ?", guid, institutionGUID).
		Delete(&presenceModel.PresenceModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Presence not found")
	}
	return nil
}
