package controllers_test

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learnhub/database"
	"learnhub/models"
	courseRoutes "learnhub/routers/courseRoutes"
	"learnhub/testutil"
)

func newTestApp(t *testing.T) (*fiber.App, *database.Store) {
	t.Helper()

	store := testutil.NewStore(t)
	app := fiber.New()
	courseRoutes.SetupCourseRoutes(app, store)
	return app, store
}

func validCoursePayload() map[string]any {
	return map[string]any{
		"category":       "programming",
		"title":          "Intro",
		"description":    "d",
		"duration":       5,
		"instructorName": "A",
		"language":       "en",
		"level":          "beginner",
		"price":          49,
		"status":         "draft",
		"visibility":     "private",
		"chapters": []map[string]any{
			{"title": "Setup", "content": "...", "description": "dd", "duration": 1},
		},
	}
}

func countCourses(t *testing.T, store *database.Store) int64 {
	t.Helper()
	var count int64
	require.NoError(t, store.Db.Model(&models.Course{}).Count(&count).Error)
	return count
}

func TestCreateCourseRoundtrip(t *testing.T) {
	app, _ := newTestApp(t)

	resp := testutil.DoRequest(t, app, http.MethodPost, "/api/courses", validCoursePayload())
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	created := testutil.DecodeObject(t, resp)
	id, _ := created["_id"].(string)
	require.NotEmpty(t, id)
	_, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, "Intro", created["title"])
	assert.Equal(t, float64(5), created["duration"])

	resp = testutil.DoRequest(t, app, http.MethodGet, "/api/courses/"+id, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	fetched := testutil.DecodeObject(t, resp)
	assert.Equal(t, created["_id"], fetched["_id"])
	assert.Equal(t, created["title"], fetched["title"])
	assert.Equal(t, created["instructorName"], fetched["instructorName"])
	assert.Equal(t, created["chapters"], fetched["chapters"])
}

func TestCreateCourseMissingRequiredField(t *testing.T) {
	app, store := newTestApp(t)

	payload := validCoursePayload()
	delete(payload, "title")

	resp := testutil.DoRequest(t, app, http.MethodPost, "/api/courses", payload)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := testutil.DecodeObject(t, resp)
	assert.Contains(t, body, "error")
	details, _ := body["details"].(map[string]any)
	assert.Contains(t, details, "title")

	// Nothing was persisted.
	assert.Zero(t, countCourses(t, store))
}

func TestCreateCourseMissingDuration(t *testing.T) {
	app, store := newTestApp(t)

	// An absent duration must be rejected, not read as zero hours.
	payload := validCoursePayload()
	delete(payload, "duration")

	resp := testutil.DoRequest(t, app, http.MethodPost, "/api/courses", payload)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	details, _ := testutil.DecodeObject(t, resp)["details"].(map[string]any)
	assert.Contains(t, details, "duration")
	assert.Zero(t, countCourses(t, store))
}

func TestCreateCourseChapterMissingDuration(t *testing.T) {
	app, store := newTestApp(t)

	payload := validCoursePayload()
	payload["chapters"] = []map[string]any{
		{"title": "Setup", "content": "...", "description": "dd"},
	}

	resp := testutil.DoRequest(t, app, http.MethodPost, "/api/courses", payload)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	details, _ := testutil.DecodeObject(t, resp)["details"].(map[string]any)
	assert.Contains(t, details, "chapters[0].duration")
	assert.Zero(t, countCourses(t, store))
}

func TestCreateCourseZeroDuration(t *testing.T) {
	app, _ := newTestApp(t)

	// Zero is a present, valid value; only omission is an error.
	payload := validCoursePayload()
	payload["duration"] = 0

	resp := testutil.DoRequest(t, app, http.MethodPost, "/api/courses", payload)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, float64(0), testutil.DecodeObject(t, resp)["duration"])
}

func TestCreateCourseInvalidEnum(t *testing.T) {
	app, _ := newTestApp(t)

	payload := validCoursePayload()
	payload["status"] = "archived"

	resp := testutil.DoRequest(t, app, http.MethodPost, "/api/courses", payload)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestListCourses(t *testing.T) {
	app, _ := newTestApp(t)

	resp := testutil.DoRequest(t, app, http.MethodGet, "/api/courses", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, testutil.DecodeList(t, resp))

	for _, title := range []string{"First", "Second"} {
		payload := validCoursePayload()
		payload["title"] = title
		resp := testutil.DoRequest(t, app, http.MethodPost, "/api/courses", payload)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp = testutil.DoRequest(t, app, http.MethodGet, "/api/courses", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, testutil.DecodeList(t, resp), 2)
}

func TestGetCourseNotFound(t *testing.T) {
	app, _ := newTestApp(t)

	resp := testutil.DoRequest(t, app, http.MethodGet, "/api/courses/"+uuid.NewString(), nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Course not found", testutil.DecodeObject(t, resp)["error"])
}

func TestGetCourseMalformedID(t *testing.T) {
	app, _ := newTestApp(t)

	resp := testutil.DoRequest(t, app, http.MethodGet, "/api/courses/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUpdateCoursePartial(t *testing.T) {
	app, _ := newTestApp(t)

	resp := testutil.DoRequest(t, app, http.MethodPost, "/api/courses", validCoursePayload())
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	id := testutil.DecodeObject(t, resp)["_id"].(string)

	resp = testutil.DoRequest(t, app, http.MethodPut, "/api/courses/"+id, map[string]any{
		"title":  "Renamed",
		"status": "published",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	updated := testutil.DecodeObject(t, resp)
	assert.Equal(t, "Renamed", updated["title"])
	assert.Equal(t, "published", updated["status"])
	// Omitted fields keep their prior values.
	assert.Equal(t, "d", updated["description"])
	assert.Equal(t, "private", updated["visibility"])
	assert.Equal(t, float64(49), updated["price"])

	resp = testutil.DoRequest(t, app, http.MethodGet, "/api/courses/"+id, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Renamed", testutil.DecodeObject(t, resp)["title"])
}

func TestUpdateCourseRejectsInvalidMerge(t *testing.T) {
	app, _ := newTestApp(t)

	resp := testutil.DoRequest(t, app, http.MethodPost, "/api/courses", validCoursePayload())
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	id := testutil.DecodeObject(t, resp)["_id"].(string)

	resp = testutil.DoRequest(t, app, http.MethodPut, "/api/courses/"+id, map[string]any{"status": "nope"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// The stored record is untouched.
	resp = testutil.DoRequest(t, app, http.MethodGet, "/api/courses/"+id, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "draft", testutil.DecodeObject(t, resp)["status"])
}

func TestUpdateCourseChapterMissingDuration(t *testing.T) {
	app, _ := newTestApp(t)

	resp := testutil.DoRequest(t, app, http.MethodPost, "/api/courses", validCoursePayload())
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	id := testutil.DecodeObject(t, resp)["_id"].(string)

	resp = testutil.DoRequest(t, app, http.MethodPut, "/api/courses/"+id, map[string]any{
		"chapters": []map[string]any{
			{"title": "Replaced", "content": "...", "description": "dd"},
		},
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	details, _ := testutil.DecodeObject(t, resp)["details"].(map[string]any)
	assert.Contains(t, details, "chapters[0].duration")

	// The stored chapters are untouched.
	resp = testutil.DoRequest(t, app, http.MethodGet, "/api/courses/"+id, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	chapters := testutil.DecodeObject(t, resp)["chapters"].([]any)
	require.Len(t, chapters, 1)
	assert.Equal(t, "Setup", chapters[0].(map[string]any)["title"])
}

func TestUpdateCourseNotFound(t *testing.T) {
	app, _ := newTestApp(t)

	resp := testutil.DoRequest(t, app, http.MethodPut, "/api/courses/"+uuid.NewString(), map[string]any{"title": "x"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDeleteCourse(t *testing.T) {
	app, _ := newTestApp(t)

	resp := testutil.DoRequest(t, app, http.MethodPost, "/api/courses", validCoursePayload())
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	id := testutil.DecodeObject(t, resp)["_id"].(string)

	resp = testutil.DoRequest(t, app, http.MethodDelete, "/api/courses/"+id, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Course deleted successfully!", testutil.DecodeObject(t, resp)["message"])

	resp = testutil.DoRequest(t, app, http.MethodGet, "/api/courses/"+id, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// A second delete finds nothing and reports 404.
	resp = testutil.DoRequest(t, app, http.MethodDelete, "/api/courses/"+id, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
