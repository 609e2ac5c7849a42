package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/env-metrics/models"
)

func TestWriteJSON_Success(t *testing.T) {
	w := httptest.NewRecorder()

	n, err := WriteJSON(w, models.ErrorResponse{Detail: "nope"}, http.StatusNotFound)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if n == 0 {
		t.Error("expected non-zero bytes written")
	}
	if w.Code != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected Content-Type 'application/json', got '%s'", ct)
	}
	if w.Body.String() != `{"detail":"nope"}` {
		t.Errorf("unexpected body %s", w.Body.String())
	}
}

func TestWriteJSON_PreservesRowColumnOrder(t *testing.T) {
	w := httptest.NewRecorder()
	row := models.NewRow([]string{"id", "location", "pm25"}, []any{int64(1), "Oslo", 12.5})

	_, err := WriteJSON(w, models.ListResult{Data: []models.Row{row}, Total: 1, Limit: 100}, http.StatusOK)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	want := `{"data":[{"id":1,"location":"Oslo","pm25":12.5}],"total":1,"limit":100,"offset":0}`
	if w.Body.String() != want {
		t.Errorf("expected body %s, got %s", want, w.Body.String())
	}
}

func TestWriteJSON_InvalidData(t *testing.T) {
	w := httptest.NewRecorder()

	// channels cannot be marshaled to JSON
	_, err := WriteJSON(w, make(chan int), http.StatusOK)

	if err == nil {
		t.Fatal("expected error for non-serializable data, got nil")
	}
	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}
}

func TestWriteJSON_MismatchedRow(t *testing.T) {
	w := httptest.NewRecorder()
	row := models.Row{Columns: []string{"id", "location"}, Values: []any{int64(1)}}

	_, err := WriteJSON(w, []models.Row{row}, http.StatusOK)

	if err == nil {
		t.Fatal("expected error for mismatched row, got nil")
	}
	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}
}

func TestWriteJSON_NilData(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, nil, http.StatusOK)

	if err != nil {
		t.Fatalf("expected no error for nil data, got: %v", err)
	}
	if w.Body.String() != "null" {
		t.Errorf("expected body 'null', got '%s'", w.Body.String())
	}
}
