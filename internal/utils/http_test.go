package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestWriteJSON_Success(t *testing.T) {
	w := httptest.NewRecorder()
	data := map[string]string{"key": "value"}

	n, err := WriteJSON(w, data, http.StatusCreated)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if n == 0 {
		t.Error("expected non-zero bytes written")
	}
	if w.Code != http.StatusCreated {
		t.Errorf("expected status %d, got %d", http.StatusCreated, w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected Content-Type 'application/json', got '%s'", ct)
	}

	expected, _ := json.Marshal(data)
	if w.Body.String() != string(expected) {
		t.Errorf("expected body %s, got %s", expected, w.Body.String())
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
	if w.Body.String() != `{"error":"Internal server error."}` {
		t.Errorf("unexpected body %s", w.Body.String())
	}
}

func TestWriteJSON_EmptySlice(t *testing.T) {
	w := httptest.NewRecorder()

	if _, err := WriteJSON(w, []int{}, http.StatusOK); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if w.Body.String() != "[]" {
		t.Errorf("expected body '[]', got '%s'", w.Body.String())
	}
}

func TestWriteError(t *testing.T) {
	tests := []struct {
		message string
		status  int
		body    string
	}{
		{"API key missing or invalid.", http.StatusUnauthorized, `{"error":"API key missing or invalid."}`},
		{"Internal server error.", http.StatusInternalServerError, `{"error":"Internal server error."}`},
		{`quote " inside`, http.StatusBadRequest, `{"error":"quote \" inside"}`},
	}

	for _, tt := range tests {
		w := httptest.NewRecorder()
		WriteError(w, tt.message, tt.status)

		if w.Code != tt.status {
			t.Errorf("expected status %d, got %d", tt.status, w.Code)
		}
		if w.Body.String() != tt.body {
			t.Errorf("expected body %s, got %s", tt.body, w.Body.String())
		}
		if ct := w.Header().Get("Content-Type"); ct != "application/json" {
			t.Errorf("expected Content-Type 'application/json', got '%s'", ct)
		}
	}
}
