// file: internals/helpers/dbtime/time_helper.go
package dbtime

import (
	"time"
)

// ServiceOffset: jam ibadah selalu dihitung di GMT+7, tidak bergantung TZ server.
const ServiceOffset = 7 * 60 * 60

// ServiceLocation = zona tetap UTC+7 (tanpa tzdata).
var ServiceLocation = time.FixedZone("GMT+7", ServiceOffset)

// ToService mengonversi waktu (biasanya dari DB = UTC) ke zona layanan.
func ToService(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.In(ServiceLocation)
}

// StartOfDay: 00:00 GMT+7 untuk hari yang memuat t.
func StartOfDay(t time.Time) time.Time {
	s := t.In(ServiceLocation)
	return time.Date(s.Year(), s.Month(), s.Day(), 0, 0, 0, 0, ServiceLocation)
}

// DayRange: [00:00, 00:00 besok) di GMT+7, dikembalikan dalam UTC untuk query.
func DayRange(t time.Time) (time.Time, time.Time) {
	start := StartOfDay(t)
	return start.UTC(), start.AddDate(0, 0, 1).UTC()
}

// NextSunday: Minggu terdekat di/ setelah hari ini (hari ini kalau sudah Minggu).
func NextSunday(now time.Time) time.Time {
	today := StartOfDay(now)
	ahead := (7 - int(today.Weekday())) % 7
	return today.AddDate(0, 0, ahead)
}

// MonthRange: [tgl 1 00:00, tgl 1 bulan depan 00:00) di GMT+7.
func MonthRange(now time.Time) (time.Time, time.Time) {
	s := now.In(ServiceLocation)
	start := time.Date(s.Year(), s.Month(), 1, 0, 0, 0, 0, ServiceLocation)
	return start, start.AddDate(0, 1, 0)
}

// YearRange: [1 Jan 00:00, 1 Jan tahun depan 00:00) di GMT+7.
func YearRange(now time.Time) (time.Time, time.Time) {
	s := now.In(ServiceLocation)
	start := time.Date(s.Year(), time.January, 1, 0, 0, 0, 0, ServiceLocation)
	return start, start.AddDate(1, 0, 0)
}

// SubMonths: mundur n bulan kalender; tanggal di-clamp ke hari terakhir bulan tujuan
// (31 Agu - 6 bulan = 28 Feb, bukan 3 Mar).
func SubMonths(t time.Time, n int) time.Time {
	s := t.In(ServiceLocation)
	first := time.Date(s.Year(), s.Month()-time.Month(n), 1, s.Hour(), s.Minute(), s.Second(), s.Nanosecond(), ServiceLocation)
	lastDay := first.AddDate(0, 1, -1).Day()
	return first.AddDate(0, 0, min(s.Day(), lastDay)-1)
}

// DateKey: "YYYY-MM-DD" menurut kalender GMT+7.
func DateKey(t time.Time) string {
	return t.In(ServiceLocation).Format("2006-01-02")
}

// SundaysBetween: semua hari Minggu di [from, to] (inklusif, granularitas hari).
func SundaysBetween(from, to time.Time) []time.Time {
	first := NextSunday(from)
	last := StartOfDay(to)
	var out []time.Time
	for d := first; !d.After(last); d = d.AddDate(0, 0, 7) {
		out = append(out, d)
	}
	return out
}
