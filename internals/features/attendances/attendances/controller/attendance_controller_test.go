package controller_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"gerejaku_backend/internals/features/attendances/attendances/controller"
	"gerejaku_backend/internals/features/attendances/attendances/model"
	"gerejaku_backend/internals/features/attendances/attendances/route"
	helper "gerejaku_backend/internals/helpers"
	"gerejaku_backend/internals/testutil"
)

type envelope struct {
	Success   bool                `json:"success"`
	Message   string              `json:"message"`
	Error     string              `json:"error"`
	ErrorCode string              `json:"error_code"`
	Errors    map[string][]string `json:"errors"`
	Data      json.RawMessage     `json:"data"`
}

func newApp(t *testing.T, at time.Time) (*fiber.App, *gorm.DB) {
	t.Helper()
	db := testutil.NewDB(t)
	testutil.SeedSessions(t, db)

	app := fiber.New(fiber.Config{
		JSONEncoder:  sonic.Marshal,
		JSONDecoder:  sonic.Unmarshal,
		ErrorHandler: helper.ErrorHandler,
	})
	ctrl := controller.NewAttendanceController(db).WithClock(testutil.Clock(at))
	route.MountAttendanceRoutes(app.Group("/api"), ctrl)
	return app, db
}

func call(t *testing.T, app *fiber.App, method, path, body string) (int, envelope) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, sonic.Unmarshal(raw, &env), string(raw))
	return resp.StatusCode, env
}

func TestCreateAttendance(t *testing.T) {
	app, db := newApp(t, testutil.WIB(2026, 10, 18, 7, 0))
	budi := testutil.CreateCongregation(t, db, "Budi")

	body := `{"attendees":[{"congregationId":"` + budi.CongregationID.String() + `"},{"name":"Test Person","isNewCongregation":true}]}`
	status, env := call(t, app, fiber.MethodPost, "/api/attendances", body)
	require.Equal(t, fiber.StatusCreated, status, env.Error)
	assert.True(t, env.Success)

	var rows []struct {
		CongregationID uuid.UUID `json:"congregation_id"`
		SermonSession  struct {
			Name string `json:"name"`
		} `json:"sermon_session"`
		Congregation struct {
			Name string `json:"name"`
		} `json:"congregation"`
	}
	require.NoError(t, sonic.Unmarshal(env.Data, &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, budi.CongregationID, rows[0].CongregationID)
	assert.Equal(t, model.SessionOne, rows[0].SermonSession.Name)
	assert.Equal(t, "Test Person", rows[1].Congregation.Name)
}

func TestCreateAttendance_Errors(t *testing.T) {
	t.Run("outside service hours", func(t *testing.T) {
		app, db := newApp(t, testutil.WIB(2026, 10, 18, 20, 0))
		status, env := call(t, app, fiber.MethodPost, "/api/attendances", `{"attendees":[{"name":"A","isNewCongregation":true}]}`)
		assert.Equal(t, fiber.StatusBadRequest, status)
		assert.False(t, env.Success)
		assert.Contains(t, env.Error, "outside service hours")

		var n int64
		require.NoError(t, db.Model(&model.AttendanceModel{}).Count(&n).Error)
		assert.Zero(t, n)
	})

	t.Run("empty attendees", func(t *testing.T) {
		app, _ := newApp(t, testutil.WIB(2026, 10, 18, 7, 0))
		status, env := call(t, app, fiber.MethodPost, "/api/attendances", `{"attendees":[]}`)
		assert.Equal(t, fiber.StatusBadRequest, status)
		assert.Equal(t, "Attendees array is required", env.Error)
	})

	t.Run("invalid congregation id", func(t *testing.T) {
		app, _ := newApp(t, testutil.WIB(2026, 10, 18, 7, 0))
		status, env := call(t, app, fiber.MethodPost, "/api/attendances", `{"attendees":[{"congregationId":"abc"}]}`)
		assert.Equal(t, fiber.StatusBadRequest, status)
		assert.Equal(t, "VALIDATION_ERROR", env.ErrorCode)
		assert.Contains(t, env.Errors, "attendees[0].congregationId")
	})

	t.Run("unknown field", func(t *testing.T) {
		app, _ := newApp(t, testutil.WIB(2026, 10, 18, 7, 0))
		status, _ := call(t, app, fiber.MethodPost, "/api/attendances", `{"attendees":[],"foo":1}`)
		assert.Equal(t, fiber.StatusBadRequest, status)
	})

	t.Run("unknown congregation", func(t *testing.T) {
		app, _ := newApp(t, testutil.WIB(2026, 10, 18, 7, 0))
		status, env := call(t, app, fiber.MethodPost, "/api/attendances", `{"attendees":[{"congregationId":"`+uuid.NewString()+`"}]}`)
		assert.Equal(t, fiber.StatusNotFound, status)
		assert.Equal(t, "Congregation not found", env.Error)
	})
}

func TestReportEndpoints(t *testing.T) {
	app, db := newApp(t, testutil.WIB(2026, 10, 17, 10, 0))
	var one model.SermonSessionModel
	require.NoError(t, db.Where("sermon_session_name = ?", model.SessionOne).First(&one).Error)

	budi := testutil.CreateCongregation(t, db, "Budi")
	testutil.CreateAttendance(t, db, budi.CongregationID, one.SermonSessionID, testutil.WIB(2026, 10, 4, 7, 0))
	testutil.CreateAttendance(t, db, budi.CongregationID, one.SermonSessionID, testutil.WIB(2026, 10, 18, 7, 0))

	t.Run("list", func(t *testing.T) {
		status, env := call(t, app, fiber.MethodGet, "/api/attendances", "")
		require.Equal(t, fiber.StatusOK, status)
		var rows []map[string]any
		require.NoError(t, sonic.Unmarshal(env.Data, &rows))
		assert.Len(t, rows, 2)
	})

	t.Run("sunday is not captured by :congregation_id", func(t *testing.T) {
		status, env := call(t, app, fiber.MethodGet, "/api/attendances/sunday", "")
		require.Equal(t, fiber.StatusOK, status)
		var snap struct {
			Date  string `json:"date"`
			Total int    `json:"total"`
		}
		require.NoError(t, sonic.Unmarshal(env.Data, &snap))
		assert.Equal(t, "2026-10-18", snap.Date)
		assert.Equal(t, 1, snap.Total)
	})

	t.Run("monthly", func(t *testing.T) {
		status, env := call(t, app, fiber.MethodGet, "/api/attendances/monthly", "")
		require.Equal(t, fiber.StatusOK, status)
		var rep struct {
			Month        string `json:"month"`
			MonthlyTotal int    `json:"monthly_total"`
		}
		require.NoError(t, sonic.Unmarshal(env.Data, &rep))
		assert.Equal(t, "October 2026", rep.Month)
		assert.Equal(t, 2, rep.MonthlyTotal)
	})

	t.Run("yearly", func(t *testing.T) {
		status, env := call(t, app, fiber.MethodGet, "/api/attendances/yearly", "")
		require.Equal(t, fiber.StatusOK, status)
		var rep struct {
			YearlyTotal int `json:"yearly_total"`
		}
		require.NoError(t, sonic.Unmarshal(env.Data, &rep))
		assert.Equal(t, 2, rep.YearlyTotal)
	})

	t.Run("history", func(t *testing.T) {
		status, env := call(t, app, fiber.MethodGet, "/api/attendances/"+budi.CongregationID.String(), "")
		require.Equal(t, fiber.StatusOK, status)
		var rows []map[string]any
		require.NoError(t, sonic.Unmarshal(env.Data, &rows))
		assert.Len(t, rows, 2)
	})

	t.Run("history of unknown member", func(t *testing.T) {
		status, env := call(t, app, fiber.MethodGet, "/api/attendances/not-a-uuid", "")
		assert.Equal(t, fiber.StatusNotFound, status)
		assert.Equal(t, "NOT_FOUND", env.ErrorCode)
	})

	t.Run("summary", func(t *testing.T) {
		status, env := call(t, app, fiber.MethodGet, "/api/attendances/"+budi.CongregationID.String()+"/summary", "")
		require.Equal(t, fiber.StatusOK, status)
		var sum struct {
			Attended     int `json:"attended"`
			TotalSundays int `json:"total_sundays"`
		}
		require.NoError(t, sonic.Unmarshal(env.Data, &sum))
		assert.Equal(t, 1, sum.Attended)
		assert.Equal(t, 26, sum.TotalSundays)
	})
}
