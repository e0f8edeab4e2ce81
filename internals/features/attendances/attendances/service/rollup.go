package service

import (
	"fmt"
	"math"
	"sort"
	"time"

	"gerejaku_backend/internals/features/attendances/attendances/dto"
	"gerejaku_backend/internals/features/attendances/attendances/model"
	"gerejaku_backend/internals/helpers/dbtime"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

// WeekOfMonth = ceil((tanggal + weekday tgl 1) / 7), minggu dimulai hari Minggu.
func WeekOfMonth(t time.Time) int {
	s := t.In(dbtime.ServiceLocation)
	first := time.Date(s.Year(), s.Month(), 1, 0, 0, 0, 0, dbtime.ServiceLocation)
	return int(math.Ceil(float64(s.Day()+int(first.Weekday())) / 7))
}

// BuildSundaySnapshot: headcount per sesi (selalu dua sesi tetap, nol kalau kosong).
func BuildSundaySnapshot(sunday time.Time, rows []model.AttendanceModel) dto.SundaySnapshot {
	counts := make(map[string]int, len(model.SessionNames))
	for _, r := range rows {
		if r.SermonSession != nil {
			counts[r.SermonSession.SermonSessionName]++
		}
	}
	sessions := make([]dto.SessionCount, 0, len(model.SessionNames))
	for _, name := range model.SessionNames {
		sessions = append(sessions, dto.SessionCount{Session: name, Total: counts[name]})
	}
	return dto.SundaySnapshot{
		Date:        dbtime.DateKey(sunday),
		Sessions:    sessions,
		Total:       len(rows),
		Attendances: dto.FromModels(rows),
	}
}

// BuildMonthlyRollup mengelompokkan tanggal kehadiran di bulan `now` per minggu.
// Tanggal di luar bulan berjalan diabaikan.
func BuildMonthlyRollup(now time.Time, dates []time.Time) dto.MonthlyReport {
	start, end := dbtime.MonthRange(now)

	buckets := map[int]*dto.Bucket{}
	total := 0
	for _, d := range dates {
		s := d.In(dbtime.ServiceLocation)
		if s.Before(start) || !s.Before(end) {
			continue
		}
		week := WeekOfMonth(s)
		b, ok := buckets[week]
		if !ok {
			day := dbtime.StartOfDay(s)
			weekStart := day.AddDate(0, 0, -int(day.Weekday()))
			b = &dto.Bucket{
				Label:     fmt.Sprintf("Week %d", week),
				Index:     week,
				StartDate: weekStart.Format(dateLayout),
				EndDate:   weekStart.AddDate(0, 0, 6).Format(dateLayout),
			}
			buckets[week] = b
		}
		b.Total++
		total++
	}

	return dto.MonthlyReport{
		Month:        start.Format("January 2006"),
		Weeks:        sortedBuckets(buckets),
		MonthlyTotal: total,
	}
}

// BuildYearlyRollup mengelompokkan tanggal kehadiran di tahun `now` per bulan.
func BuildYearlyRollup(now time.Time, dates []time.Time) dto.YearlyReport {
	start, end := dbtime.YearRange(now)

	buckets := map[int]*dto.Bucket{}
	total := 0
	for _, d := range dates {
		s := d.In(dbtime.ServiceLocation)
		if s.Before(start) || !s.Before(end) {
			continue
		}
		month := int(s.Month())
		b, ok := buckets[month]
		if !ok {
			first := time.Date(s.Year(), s.Month(), 1, 0, 0, 0, 0, dbtime.ServiceLocation)
			b = &dto.Bucket{
				Label:     s.Month().String(),
				Index:     month,
				StartDate: first.Format(dateLayout),
				EndDate:   first.AddDate(0, 1, -1).Format(dateLayout),
			}
			buckets[month] = b
		}
		b.Total++
		total++
	}

	return dto.YearlyReport{
		Year:        start.Year(),
		Months:      sortedBuckets(buckets),
		YearlyTotal: total,
	}
}

func sortedBuckets(m map[int]*dto.Bucket) []dto.Bucket {
	out := make([]dto.Bucket, 0, len(m))
	for _, b := range m {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Index < out[j].Index })
	return out
}

// SummaryWindow: enam bulan ke belakang dari hari ini, [start, akhir hari ini).
func SummaryWindow(now time.Time) (time.Time, time.Time) {
	today := dbtime.StartOfDay(now)
	return dbtime.SubMonths(today, 6), today.AddDate(0, 0, 1)
}

// BuildMemberSummary menandai tiap hari Minggu di window sebagai hadir/tidak.
func BuildMemberSummary(congregationID uuid.UUID, now time.Time, dates []time.Time) dto.MemberSummary {
	start, _ := SummaryWindow(now)
	today := dbtime.StartOfDay(now)

	attendedDays := make(map[string]struct{}, len(dates))
	for _, d := range dates {
		attendedDays[dbtime.DateKey(d)] = struct{}{}
	}

	sundays := dbtime.SundaysBetween(start, today)
	summary := dto.MemberSummary{
		CongregationID: congregationID,
		WindowStart:    start.Format(dateLayout),
		WindowEnd:      today.Format(dateLayout),
		TotalSundays:   len(sundays),
		Months:         []dto.MonthSundays{},
	}

	for _, sunday := range sundays {
		key := sunday.Format(dateLayout)
		_, attended := attendedDays[key]
		if attended {
			summary.Attended++
		}

		label := sunday.Format("January 2006")
		if n := len(summary.Months); n == 0 || summary.Months[n-1].Month != label {
			summary.Months = append(summary.Months, dto.MonthSundays{Month: label})
		}
		last := &summary.Months[len(summary.Months)-1]
		last.Sundays = append(last.Sundays, dto.SundayMark{Date: key, Attended: attended})
	}

	if summary.TotalSundays > 0 {
		summary.Ratio = float64(summary.Attended) / float64(summary.TotalSundays)
		summary.Percentage = int(math.Round(summary.Ratio * 100))
	}
	return summary
}
