package timezone

import (
	"log"
	"time"
)

// Seluruh tanggal "hari ini" di sistem presensi dihitung pada zona waktu sipil
// yang tetap (WIB), bukan UTC server.
const Location = "Asia/Jakarta"

// Clock menyediakan waktu sipil untuk generator & reconciler presensi.
// Logika generate TIDAK boleh membaca time.Now langsung supaya test bisa
// menyuntikkan tanggal tetap.
type Clock interface {
	Now() time.Time
	// CurrentFullDate mengembalikan tanggal sipil hari ini, format "2006-01-02".
	CurrentFullDate() string
	// CurrentDay mengembalikan index hari dalam minggu (Minggu = 0).
	CurrentDay() int
	// CurrentTime mengembalikan jam lokal "15:04".
	CurrentTime() string
	StartOfToday() time.Time
	EndOfToday() time.Time
}

type jakartaClock struct {
	loc *time.Location
}

// NewClock membuat Clock berbasis wall clock pada zona Asia/Jakarta.
func NewClock() Clock {
	loc, err := time.LoadLocation(Location)
	if err != nil {
		// tzdata tidak tersedia di image; fallback offset tetap WIB (+7)
		log.Printf("[WARN] gagal load lokasi %s: %v, pakai offset tetap UTC+7", Location, err)
		loc = time.FixedZone("WIB", 7*3600)
	}
	return &jakartaClock{loc: loc}
}

func (c *jakartaClock) Now() time.Time {
	return time.Now().In(c.loc)
}

func (c *jakartaClock) CurrentFullDate() string {
	return c.Now().Format("2006-01-02")
}

func (c *jakartaClock) CurrentDay() int {
	return int(c.Now().Weekday())
}

func (c *jakartaClock) CurrentTime() string {
	return c.Now().Format("15:04")
}

func (c *jakartaClock) StartOfToday() time.Time {
	now := c.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, c.loc)
}

func (c *jakartaClock) EndOfToday() time.Time {
	now := c.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, int(999*time.Millisecond), c.loc)
}

// Fixed adalah Clock dengan waktu tetap, dipakai test dan tooling.
type Fixed struct {
	Time time.Time
}

func (f Fixed) Now() time.Time          { return f.Time }
func (f Fixed) CurrentFullDate() string { return f.Time.Format("2006-01-02") }
func (f Fixed) CurrentDay() int         { return int(f.Time.Weekday()) }
func (f Fixed) CurrentTime() string     { return f.Time.Format("15:04") }
func (f Fixed) StartOfToday() time.Time {
	return time.Date(f.Time.Year(), f.Time.Month(), f.Time.Day(), 0, 0, 0, 0, f.Time.Location())
}
func (f Fixed) EndOfToday() time.Time {
	return time.Date(f.Time.Year(), f.Time.Month(), f.Time.Day(), 23, 59, 59, int(999*time.Millisecond), f.Time.Location())
}
