// internal/inventory/handler_test.go
package inventory

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter() http.Handler {
	return NewHandler(NewService()).Routes()
}

func doRequest(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestRootEndpoint(t *testing.T) {
	router := newTestRouter()

	rec := doRequest(t, router, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "Welcome to the Simple REST API", body["message"])

	endpoints, ok := body["endpoints"].(map[string]interface{})
	require.True(t, ok)
	assert.Len(t, endpoints, 5)
	assert.Equal(t, "Get item by ID", endpoints["GET /items/{id}"])
}

func TestItemLifecycleOverHTTP(t *testing.T) {
	router := newTestRouter()

	// Create the first item with only the required fields.
	rec := doRequest(t, router, http.MethodPost, "/items", `{"name":"Widget","price":9.99}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "Item created successfully", body["message"])

	item, ok := body["item"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(1), item["id"])
	assert.Equal(t, "Widget", item["name"])
	assert.Equal(t, 9.99, item["price"])
	assert.Equal(t, float64(0), item["quantity"])

	// Unset description must serialize as an explicit null.
	desc, present := item["description"]
	require.True(t, present)
	assert.Nil(t, desc)

	// Second create gets the next id.
	rec = doRequest(t, router, http.MethodPost, "/items", `{"name":"Gadget","price":5.0,"quantity":3}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	item = decodeBody(t, rec)["item"].(map[string]interface{})
	assert.Equal(t, float64(2), item["id"])
	assert.Equal(t, float64(3), item["quantity"])

	rec = doRequest(t, router, http.MethodGet, "/items", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body = decodeBody(t, rec)
	assert.Equal(t, float64(2), body["count"])

	// Delete the first item, then its id must be gone while the second survives.
	rec = doRequest(t, router, http.MethodDelete, "/items/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body = decodeBody(t, rec)
	assert.Equal(t, "Item deleted successfully", body["message"])
	assert.Equal(t, "Widget", body["item"].(map[string]interface{})["name"])

	rec = doRequest(t, router, http.MethodGet, "/items/1", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Item not found", decodeBody(t, rec)["detail"])

	rec = doRequest(t, router, http.MethodGet, "/items/2", "")
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestCreateItemValidationOverHTTP(t *testing.T) {
	router := newTestRouter()

	t.Run("missing name", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodPost, "/items", `{"price":1.0}`)
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("missing price", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodPost, "/items", `{"name":"Widget"}`)
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("wrong-typed price", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodPost, "/items", `{"name":"Widget","price":"cheap"}`)
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodPost, "/items", `{"name":`)
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})
}

func TestUpdateItemOverHTTP(t *testing.T) {
	router := newTestRouter()

	rec := doRequest(t, router, http.MethodPost, "/items", `{"name":"Widget","description":"a widget","price":9.99,"quantity":5}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	// Price-only patch leaves everything else alone.
	rec = doRequest(t, router, http.MethodPut, "/items/1", `{"price":4.99}`)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Item updated successfully", body["message"])

	item := body["item"].(map[string]interface{})
	assert.Equal(t, 4.99, item["price"])
	assert.Equal(t, "Widget", item["name"])
	assert.Equal(t, "a widget", item["description"])
	assert.Equal(t, float64(5), item["quantity"])

	// Explicit null is treated as absent, not as clearing the field.
	rec = doRequest(t, router, http.MethodPut, "/items/1", `{"description":null}`)
	require.Equal(t, http.StatusOK, rec.Code)
	item = decodeBody(t, rec)["item"].(map[string]interface{})
	assert.Equal(t, "a widget", item["description"])

	rec = doRequest(t, router, http.MethodPut, "/items/42", `{"price":1.0}`)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Item not found", decodeBody(t, rec)["detail"])
}

func TestInvalidItemID(t *testing.T) {
	router := newTestRouter()

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		rec := doRequest(t, router, method, "/items/widget", `{}`)
		require.Equal(t, http.StatusBadRequest, rec.Code, method)
		assert.Equal(t, "invalid item ID", decodeBody(t, rec)["detail"])
	}
}

func TestDeleteItemNotFound(t *testing.T) {
	router := newTestRouter()

	rec := doRequest(t, router, http.MethodDelete, "/items/7", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Item not found", decodeBody(t, rec)["detail"])
}
