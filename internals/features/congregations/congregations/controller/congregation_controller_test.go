package controller_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gerejaku_backend/internals/features/congregations/congregations/route"
	helper "gerejaku_backend/internals/helpers"
	"gerejaku_backend/internals/testutil"
)

type envelope struct {
	Success    bool                `json:"success"`
	Error      string              `json:"error"`
	ErrorCode  string              `json:"error_code"`
	Errors     map[string][]string `json:"errors"`
	Data       json.RawMessage     `json:"data"`
	Pagination *helper.Pagination  `json:"pagination"`
}

type congregation struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	DisplayName string    `json:"display_name"`
	Status      string    `json:"status"`
}

func newApp(t *testing.T) *fiber.App {
	t.Helper()
	app := fiber.New(fiber.Config{
		JSONEncoder:  sonic.Marshal,
		JSONDecoder:  sonic.Unmarshal,
		ErrorHandler: helper.ErrorHandler,
	})
	route.CongregationRoutes(app.Group("/api"), testutil.NewDB(t))
	return app
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

func create(t *testing.T, app *fiber.App, body string) congregation {
	t.Helper()
	status, env := call(t, app, fiber.MethodPost, "/api/congregations", body)
	require.Equal(t, fiber.StatusCreated, status, env.Error)
	var c congregation
	require.NoError(t, sonic.Unmarshal(env.Data, &c))
	return c
}

func TestCongregationCRUD(t *testing.T) {
	app := newApp(t)

	c := create(t, app, `{"name":"Budi","title":"Bpk.","whatsapp_number":"0811"}`)
	assert.Equal(t, "Bpk. Budi", c.DisplayName)
	assert.Equal(t, "active", c.Status)

	status, env := call(t, app, fiber.MethodGet, "/api/congregations/"+c.ID.String(), "")
	require.Equal(t, fiber.StatusOK, status)
	var got congregation
	require.NoError(t, sonic.Unmarshal(env.Data, &got))
	assert.Equal(t, c.ID, got.ID)

	status, env = call(t, app, fiber.MethodPut, "/api/congregations/"+c.ID.String(), `{"name":"Budi S","status":"inactive"}`)
	require.Equal(t, fiber.StatusOK, status, env.Error)
	require.NoError(t, sonic.Unmarshal(env.Data, &got))
	assert.Equal(t, "Budi S", got.DisplayName)
	assert.Equal(t, "inactive", got.Status)

	status, _ = call(t, app, fiber.MethodDelete, "/api/congregations/"+c.ID.String(), "")
	require.Equal(t, fiber.StatusOK, status)

	status, env = call(t, app, fiber.MethodGet, "/api/congregations/"+c.ID.String(), "")
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "Congregation not found", env.Error)
}

func TestCongregationErrors(t *testing.T) {
	app := newApp(t)
	create(t, app, `{"name":"Budi","whatsapp_number":"0811"}`)

	t.Run("duplicate whatsapp", func(t *testing.T) {
		status, env := call(t, app, fiber.MethodPost, "/api/congregations", `{"name":"Ani","whatsapp_number":"0811"}`)
		assert.Equal(t, fiber.StatusBadRequest, status)
		assert.Equal(t, "WhatsApp number already exists", env.Error)
	})

	t.Run("missing name", func(t *testing.T) {
		status, env := call(t, app, fiber.MethodPost, "/api/congregations", `{"title":"Bpk."}`)
		assert.Equal(t, fiber.StatusBadRequest, status)
		assert.Equal(t, "VALIDATION_ERROR", env.ErrorCode)
		assert.Contains(t, env.Errors, "name")
	})

	t.Run("bad birthday", func(t *testing.T) {
		status, env := call(t, app, fiber.MethodPost, "/api/congregations", `{"name":"Ani","birthday":"17-05-1980"}`)
		assert.Equal(t, fiber.StatusBadRequest, status)
		assert.Contains(t, env.Errors, "birthday")
	})

	t.Run("invalid id", func(t *testing.T) {
		status, _ := call(t, app, fiber.MethodGet, "/api/congregations/123", "")
		assert.Equal(t, fiber.StatusNotFound, status)
	})

	t.Run("update unknown", func(t *testing.T) {
		status, _ := call(t, app, fiber.MethodPut, "/api/congregations/"+uuid.NewString(), `{"name":"X"}`)
		assert.Equal(t, fiber.StatusNotFound, status)
	})

	t.Run("bad status filter", func(t *testing.T) {
		status, env := call(t, app, fiber.MethodGet, "/api/congregations?status=gone", "")
		assert.Equal(t, fiber.StatusBadRequest, status)
		assert.Contains(t, env.Errors, "Status")
	})
}

func TestCongregationList(t *testing.T) {
	app := newApp(t)
	create(t, app, `{"name":"Budi"}`)
	create(t, app, `{"name":"Ani","status":"inactive"}`)
	create(t, app, `{"name":"Siti"}`)

	status, env := call(t, app, fiber.MethodGet, "/api/congregations?per_page=2", "")
	require.Equal(t, fiber.StatusOK, status)
	require.NotNil(t, env.Pagination)
	assert.EqualValues(t, 3, env.Pagination.Total)
	assert.Equal(t, 2, env.Pagination.TotalPages)
	assert.True(t, env.Pagination.HasNext)

	var rows []congregation
	require.NoError(t, sonic.Unmarshal(env.Data, &rows))
	assert.Len(t, rows, 2)

	status, env = call(t, app, fiber.MethodGet, "/api/congregations?status=active&search=sit", "")
	require.Equal(t, fiber.StatusOK, status)
	require.NoError(t, sonic.Unmarshal(env.Data, &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "Siti", rows[0].Name)
}
