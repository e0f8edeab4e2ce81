package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gerejaku_backend/internals/features/attendances/attendances/model"
	"gerejaku_backend/internals/testutil"
)

func TestReportService(t *testing.T) {
	db := testutil.NewDB(t)
	sessions := testutil.SeedSessions(t, db)
	one := sessions[model.SessionOne].SermonSessionID
	two := sessions[model.SessionTwo].SermonSessionID

	budi := testutil.CreateCongregation(t, db, "Budi")
	ani := testutil.CreateCongregation(t, db, "Ani")

	testutil.CreateAttendance(t, db, budi.CongregationID, one, testutil.WIB(2026, 10, 4, 7, 0))
	testutil.CreateAttendance(t, db, budi.CongregationID, one, testutil.WIB(2026, 10, 11, 7, 0))
	testutil.CreateAttendance(t, db, budi.CongregationID, one, testutil.WIB(2026, 10, 18, 7, 0))
	testutil.CreateAttendance(t, db, ani.CongregationID, two, testutil.WIB(2026, 10, 18, 10, 0))
	testutil.CreateAttendance(t, db, ani.CongregationID, two, testutil.WIB(2026, 3, 1, 10, 0))
	testutil.CreateAttendance(t, db, ani.CongregationID, two, testutil.WIB(2025, 12, 28, 10, 0))

	svc := NewReportService(db)
	svc.Now = testutil.Clock(testutil.WIB(2026, 10, 17, 10, 0))
	ctx := context.Background()

	t.Run("list newest first", func(t *testing.T) {
		rows, err := svc.List(ctx)
		require.NoError(t, err)
		require.Len(t, rows, 6)
		assert.True(t, rows[0].AttendanceDate.Equal(testutil.WIB(2026, 10, 18, 10, 0)))
		assert.NotNil(t, rows[0].Congregation)
		assert.NotNil(t, rows[0].SermonSession)
	})

	t.Run("sunday snapshot uses upcoming sunday", func(t *testing.T) {
		snap, err := svc.Sunday(ctx)
		require.NoError(t, err)
		assert.Equal(t, "2026-10-18", snap.Date)
		assert.Equal(t, 2, snap.Total)
		assert.Equal(t, 1, snap.Sessions[0].Total)
		assert.Equal(t, 1, snap.Sessions[1].Total)
	})

	t.Run("monthly", func(t *testing.T) {
		rep, err := svc.Monthly(ctx)
		require.NoError(t, err)
		assert.Equal(t, "October 2026", rep.Month)
		assert.Equal(t, 4, rep.MonthlyTotal)
	})

	t.Run("yearly ignores previous year", func(t *testing.T) {
		rep, err := svc.Yearly(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2026, rep.Year)
		assert.Equal(t, 5, rep.YearlyTotal)
		require.Len(t, rep.Months, 2)
		assert.Equal(t, "March", rep.Months[0].Label)
		assert.Equal(t, 4, rep.Months[1].Total)
	})

	t.Run("history", func(t *testing.T) {
		rows, err := svc.History(ctx, budi.CongregationID)
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.True(t, rows[0].AttendanceDate.After(rows[2].AttendanceDate))
		for _, r := range rows {
			assert.Equal(t, budi.CongregationID, r.AttendanceCongregationID)
		}
	})

	t.Run("history unknown member", func(t *testing.T) {
		_, err := svc.History(ctx, uuid.New())
		assert.ErrorIs(t, err, ErrCongregationNotFound)
	})

	t.Run("member summary", func(t *testing.T) {
		sum, err := svc.MemberSummary(ctx, budi.CongregationID)
		require.NoError(t, err)
		// 18 Okt belum masuk window (hari ini 17 Okt)
		assert.Equal(t, 2, sum.Attended)
		assert.Equal(t, 26, sum.TotalSundays)
	})

	t.Run("member summary unknown member", func(t *testing.T) {
		_, err := svc.MemberSummary(ctx, uuid.New())
		assert.ErrorIs(t, err, ErrCongregationNotFound)
	})
}
