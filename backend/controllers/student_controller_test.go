package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studentportal/backend/config"
	"studentportal/backend/report"
)

// stubSource serves canned tables, or fails when err is set.
type stubSource struct {
	tables []report.Table
	err    error
}

func (s *stubSource) FetchRanges(ctx context.Context, ranges []string) ([]report.Table, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.tables, nil
}

func newTestApp(src *stubSource) *fiber.App {
	app := fiber.New()
	sc := NewStudentController(src, &config.Config{})
	app.Get("/api/health", sc.Health)
	app.Get("/api/student/:admissionNo", sc.GetStudentProfile)
	return app
}

func stubTables() []report.Table {
	return []report.Table{
		{
			{"Admission No", "Student Name", "Class"},
			{"12345", "Aarav Sharma", "5A"},
		},
		{
			{"admission_no", "math_progress", "math_grade"},
			{"12345", "80", "A"},
		},
	}
}

func TestGetStudentProfile(t *testing.T) {
	app := newTestApp(&stubSource{tables: stubTables()})

	req := httptest.NewRequest("GET", "/api/student/12345", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)
	assert.Equal(t, true, result["success"])

	data := result["data"].(map[string]interface{})
	info := data["studentInfo"].(map[string]interface{})
	assert.Equal(t, "Aarav Sharma", info["name"])
	assert.Equal(t, "5A", info["class"])

	progress := data["subjectProgress"].([]interface{})
	require.Len(t, progress, 1)
	assert.Equal(t, "Math", progress[0].(map[string]interface{})["subject"])

	summary := data["summary"].(map[string]interface{})
	assert.Equal(t, float64(1), summary["totalSubjects"])
}

func TestGetStudentProfileInvalidKey(t *testing.T) {
	app := newTestApp(&stubSource{tables: stubTables()})

	req := httptest.NewRequest("GET", "/api/student/abc12", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestGetStudentProfileNotFound(t *testing.T) {
	app := newTestApp(&stubSource{tables: stubTables()})

	req := httptest.NewRequest("GET", "/api/student/99999", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestGetStudentProfileFetchFailure(t *testing.T) {
	app := newTestApp(&stubSource{err: errors.New("upstream down")})

	req := httptest.NewRequest("GET", "/api/student/12345", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadGateway, resp.StatusCode)
}

func TestGetStudentProfileKeyColumnMissing(t *testing.T) {
	app := newTestApp(&stubSource{tables: []report.Table{
		{
			{"Student Name", "Class"},
			{"Aarav Sharma", "5A"},
		},
	}})

	req := httptest.NewRequest("GET", "/api/student/12345", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestHealth(t *testing.T) {
	app := newTestApp(&stubSource{})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/health", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)
	assert.Equal(t, "ok", result["status"])
}
