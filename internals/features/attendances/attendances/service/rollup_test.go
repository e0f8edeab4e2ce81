package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gerejaku_backend/internals/features/attendances/attendances/model"
	"gerejaku_backend/internals/testutil"
)

func TestWeekOfMonth(t *testing.T) {
	// Oktober 2026: tanggal 1 hari Kamis
	cases := map[int]int{1: 1, 3: 1, 4: 2, 10: 2, 11: 3, 18: 4, 25: 5, 31: 5}
	for day, want := range cases {
		assert.Equal(t, want, WeekOfMonth(testutil.WIB(2026, 10, day, 8, 0)), "day %d", day)
	}

	// 30 Sep 17:30 UTC sudah 1 Okt di GMT+7
	assert.Equal(t, 1, WeekOfMonth(time.Date(2026, 9, 30, 17, 30, 0, 0, time.UTC)))
}

func TestBuildMonthlyRollup(t *testing.T) {
	now := testutil.WIB(2026, 10, 17, 10, 0)
	dates := []time.Time{
		testutil.WIB(2026, 10, 1, 8, 0),
		testutil.WIB(2026, 10, 1, 0, 30).UTC(),
		testutil.WIB(2026, 10, 4, 7, 0),
		testutil.WIB(2026, 10, 4, 10, 0),
		testutil.WIB(2026, 10, 18, 7, 0),
		testutil.WIB(2026, 9, 30, 23, 0), // bulan lalu
		testutil.WIB(2026, 11, 1, 7, 0),  // bulan depan
	}

	rep := BuildMonthlyRollup(now, dates)
	assert.Equal(t, "October 2026", rep.Month)
	assert.Equal(t, 5, rep.MonthlyTotal)
	require.Len(t, rep.Weeks, 3)

	assert.Equal(t, "Week 1", rep.Weeks[0].Label)
	assert.Equal(t, 2, rep.Weeks[0].Total)
	assert.Equal(t, "2026-09-27", rep.Weeks[0].StartDate)
	assert.Equal(t, "2026-10-03", rep.Weeks[0].EndDate)

	assert.Equal(t, "Week 2", rep.Weeks[1].Label)
	assert.Equal(t, 2, rep.Weeks[1].Total)
	assert.Equal(t, "2026-10-04", rep.Weeks[1].StartDate)

	assert.Equal(t, "Week 4", rep.Weeks[2].Label)
	assert.Equal(t, 1, rep.Weeks[2].Total)

	sum := 0
	for _, w := range rep.Weeks {
		sum += w.Total
	}
	assert.Equal(t, rep.MonthlyTotal, sum)
}

func TestBuildMonthlyRollup_Empty(t *testing.T) {
	rep := BuildMonthlyRollup(testutil.WIB(2026, 2, 10, 10, 0), nil)
	assert.Equal(t, "February 2026", rep.Month)
	assert.Empty(t, rep.Weeks)
	assert.NotNil(t, rep.Weeks)
	assert.Zero(t, rep.MonthlyTotal)
}

func TestBuildYearlyRollup(t *testing.T) {
	now := testutil.WIB(2026, 10, 17, 10, 0)
	dates := []time.Time{
		testutil.WIB(2026, 1, 1, 0, 10).UTC(),
		testutil.WIB(2026, 3, 1, 7, 0),
		testutil.WIB(2026, 3, 8, 7, 0),
		testutil.WIB(2026, 10, 18, 7, 0),
		testutil.WIB(2025, 12, 31, 23, 0),
		testutil.WIB(2027, 1, 1, 7, 0),
	}

	rep := BuildYearlyRollup(now, dates)
	assert.Equal(t, 2026, rep.Year)
	assert.Equal(t, 4, rep.YearlyTotal)
	require.Len(t, rep.Months, 3)

	assert.Equal(t, "January", rep.Months[0].Label)
	assert.Equal(t, 1, rep.Months[0].Total)
	assert.Equal(t, "March", rep.Months[1].Label)
	assert.Equal(t, 2, rep.Months[1].Total)
	assert.Equal(t, "2026-03-01", rep.Months[1].StartDate)
	assert.Equal(t, "2026-03-31", rep.Months[1].EndDate)
	assert.Equal(t, "October", rep.Months[2].Label)
	assert.Equal(t, 10, rep.Months[2].Index)

	sum := 0
	for _, m := range rep.Months {
		sum += m.Total
	}
	assert.Equal(t, rep.YearlyTotal, sum)
}

func TestBuildSundaySnapshot(t *testing.T) {
	one := &model.SermonSessionModel{SermonSessionName: model.SessionOne}
	rows := []model.AttendanceModel{
		{AttendanceID: uuid.New(), SermonSession: one},
		{AttendanceID: uuid.New(), SermonSession: one},
	}

	snap := BuildSundaySnapshot(testutil.WIB(2026, 10, 18, 0, 0), rows)
	assert.Equal(t, "2026-10-18", snap.Date)
	assert.Equal(t, 2, snap.Total)
	require.Len(t, snap.Sessions, 2)
	assert.Equal(t, model.SessionOne, snap.Sessions[0].Session)
	assert.Equal(t, 2, snap.Sessions[0].Total)
	assert.Equal(t, model.SessionTwo, snap.Sessions[1].Session)
	assert.Zero(t, snap.Sessions[1].Total)
	assert.Len(t, snap.Attendances, 2)
}

func sundaysFrom(start time.Time, n int) []time.Time {
	out := make([]time.Time, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, start.AddDate(0, 0, 7*i))
	}
	return out
}

func TestBuildMemberSummary_FullAttendance(t *testing.T) {
	// Sabtu; window 17 Apr - 17 Okt 2026 memuat 26 hari Minggu (19 Apr .. 11 Okt)
	now := testutil.WIB(2026, 10, 17, 10, 0)
	id := uuid.New()
	dates := sundaysFrom(testutil.WIB(2026, 4, 19, 7, 15), 26)

	sum := BuildMemberSummary(id, now, dates)
	assert.Equal(t, id, sum.CongregationID)
	assert.Equal(t, "2026-04-17", sum.WindowStart)
	assert.Equal(t, "2026-10-17", sum.WindowEnd)
	assert.Equal(t, 26, sum.TotalSundays)
	assert.Equal(t, 26, sum.Attended)
	assert.InDelta(t, 1.0, sum.Ratio, 1e-9)
	assert.Equal(t, 100, sum.Percentage)

	require.Len(t, sum.Months, 7)
	assert.Equal(t, "April 2026", sum.Months[0].Month)
	assert.Len(t, sum.Months[0].Sundays, 2)
	assert.Equal(t, "May 2026", sum.Months[1].Month)
	assert.Len(t, sum.Months[1].Sundays, 5)
	assert.Equal(t, "October 2026", sum.Months[6].Month)
	assert.Equal(t, "2026-10-11", sum.Months[6].Sundays[1].Date)
}

func TestBuildMemberSummary_PartialAndNonSunday(t *testing.T) {
	now := testutil.WIB(2026, 10, 17, 10, 0)
	var dates []time.Time
	for i, d := range sundaysFrom(testutil.WIB(2026, 4, 19, 9, 30), 26) {
		if i%2 == 0 {
			dates = append(dates, d)
		}
	}
	// hari Sabtu tidak dihitung
	dates = append(dates, testutil.WIB(2026, 10, 17, 8, 0))

	sum := BuildMemberSummary(uuid.New(), now, dates)
	assert.Equal(t, 26, sum.TotalSundays)
	assert.Equal(t, 13, sum.Attended)
	assert.InDelta(t, 0.5, sum.Ratio, 1e-9)
	assert.Equal(t, 50, sum.Percentage)
	assert.True(t, sum.Months[0].Sundays[0].Attended)
	assert.False(t, sum.Months[0].Sundays[1].Attended)
}

func TestBuildMemberSummary_NoAttendance(t *testing.T) {
	sum := BuildMemberSummary(uuid.New(), testutil.WIB(2026, 10, 18, 10, 0), nil)
	// hari ini Minggu, ikut dihitung
	assert.Equal(t, 27, sum.TotalSundays)
	assert.Zero(t, sum.Attended)
	assert.Zero(t, sum.Ratio)
	assert.Zero(t, sum.Percentage)
}

func TestSummaryWindow(t *testing.T) {
	from, to := SummaryWindow(testutil.WIB(2026, 10, 17, 23, 30))
	assert.Equal(t, "2026-04-17", from.Format("2006-01-02"))
	assert.Equal(t, "2026-10-18", to.Format("2006-01-02"))
	assert.Equal(t, 0, from.Hour())
}

func TestSummaryWindow_MonthEndClamp(t *testing.T) {
	cases := []struct {
		name      string
		now       time.Time
		wantStart string
	}{
		{"31 Agustus ke Februari", testutil.WIB(2025, 8, 31, 10, 0), "2025-02-28"},
		{"31 Maret ke September", testutil.WIB(2026, 3, 31, 10, 0), "2025-09-30"},
		{"tahun kabisat", testutil.WIB(2024, 8, 31, 10, 0), "2024-02-29"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			from, _ := SummaryWindow(tc.now)
			assert.Equal(t, tc.wantStart, from.Format("2006-01-02"))
		})
	}
}

func TestBuildMemberSummary_MonthEndKeepsFirstSunday(t *testing.T) {
	// 31 Agu 2025 (Minggu): window mulai 28 Feb, Minggu 2 Mar ikut dihitung
	now := testutil.WIB(2025, 8, 31, 10, 0)
	first := testutil.WIB(2025, 3, 2, 7, 30)

	sum := BuildMemberSummary(uuid.New(), now, []time.Time{first.UTC()})
	assert.Equal(t, 27, sum.TotalSundays)
	assert.Equal(t, 1, sum.Attended)
	require.NotEmpty(t, sum.Months)
	assert.Equal(t, "March 2025", sum.Months[0].Month)
}
