// Package testutil holds the store and HTTP helpers shared by the handler
// test packages.
package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"learnhub/database"
)

// NewStore opens a migrated in-memory sqlite store private to the calling
// test and closes it with the test.
func NewStore(tb testing.TB) *database.Store {
	tb.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(tb.Name(), "/", "_"))
	store, err := database.Connect(dsn)
	require.NoError(tb, err)
	tb.Cleanup(func() { _ = store.Close() })
	return store
}

// DoRequest runs one request against the app, sending body as JSON when it
// is non-nil.
func DoRequest(tb testing.TB, app *fiber.App, method, path string, body any) *http.Response {
	tb.Helper()

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(tb, err)
		reader = bytes.NewReader(buf)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(tb, err)
	return resp
}

// DecodeObject decodes a JSON object response body.
func DecodeObject(tb testing.TB, resp *http.Response) map[string]any {
	tb.Helper()
	var out map[string]any
	require.NoError(tb, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// DecodeList decodes a JSON array response body.
func DecodeList(tb testing.TB, resp *http.Response) []map[string]any {
	tb.Helper()
	var out []map[string]any
	require.NoError(tb, json.NewDecoder(resp.Body).Decode(&out))
	return out
}
