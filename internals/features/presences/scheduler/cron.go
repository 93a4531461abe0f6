package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"presensiku_backend/internals/features/presences/service"
	"presensiku_backend/internals/helpers/timezone"
)

// Jadwal cron (detik menit jam), zona Asia/Jakarta:
// 00:00 generate presensi default, 18:00 sapu record belum check-out.
const (
	specDailyGenerate = "0 0 0 * * *"
	specEveningSweep  = "0 0 18 * * *"
)

// StartPresenceScheduler mendaftarkan dua cron job presensi. Error run
// apapun hanya dicatat, scheduler harus tetap hidup untuk trigger
// berikutnya.
func StartPresenceScheduler(db *gorm.DB, clock timezone.Clock) *cron.Cron {
	loc, err := time.LoadLocation(timezone.Location)
	if err != nil {
		log.Printf("[WARN] gagal load lokasi %s: %v, pakai offset tetap UTC+7", timezone.Location, err)
		loc = time.FixedZone("WIB", 7*3600)
	}

	presenceService := service.NewPresenceService(db, clock)

	c := cron.New(
		cron.WithSeconds(),
		cron.WithLocation(loc),
		cron.WithChain(cron.Recover(cron.DefaultLogger)),
	)

	_, err = c.AddFunc(specDailyGenerate, func() {
		log.Println("[CRON] Menjalankan generate presensi harian...")
		if err := presenceService.CreateDailyDefaultPresence(context.Background()); err != nil {
			log.Printf("[CRON ERROR] %v", err)
		}
	})
	if err != nil {
		log.Fatalf("❌ Gagal daftar cron generate presensi: %v", err)
	}

	_, err = c.AddFunc(specEveningSweep, func() {
		log.Println("[CRON] Menjalankan checking fully presence...")
		if _, err := presenceService.CheckingFullyPresence(context.Background()); err != nil {
			log.Printf("[CRON ERROR] %v", err)
		}
	})
	if err != nil {
		log.Fatalf("❌ Gagal daftar cron checking presensi: %v", err)
	}

	c.Start()
	log.Println("⏱ Presence scheduler aktif (00:00 generate, 18:00 sweep, Asia/Jakarta)")
	return c
}
