package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func TestSyllabifyEndpoint(t *testing.T) {
	srv := httptest.NewServer(newHandler(false))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/syllabify?word=" + url.QueryEscape("amīcus"))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
	var body syllabifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if len(body.Syllables) != 3 || body.Syllables[1].Text != "mī" || body.Syllables[1].Quantity != "long" {
		t.Errorf("syllables = %+v, want a|mī|cus with mī long", body.Syllables)
	}
	if body.Marks != "u-u" {
		t.Errorf("marks = %q, want %q", body.Marks, "u-u")
	}
}

func TestSyllabifyEndpointErrors(t *testing.T) {
	h := newHandler(false)
	tests := []struct {
		method, target string
		status         int
	}{
		{http.MethodGet, "/api/syllabify", http.StatusBadRequest},
		{http.MethodGet, "/api/syllabify?word=ar3ma", http.StatusUnprocessableEntity},
		{http.MethodPost, "/api/syllabify?word=arma", http.StatusMethodNotAllowed},
		{http.MethodGet, "/api/scan", http.StatusMethodNotAllowed},
		{http.MethodPost, "/api/meters", http.StatusMethodNotAllowed},
	}
	for _, tt := range tests {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.target, nil))
		if rec.Code != tt.status {
			t.Errorf("%s %s: status = %d, want %d", tt.method, tt.target, rec.Code, tt.status)
		}
	}
}

func TestScanEndpoint(t *testing.T) {
	h := newHandler(false)
	req := httptest.NewRequest(http.MethodPost, "/api/scan",
		strings.NewReader(`{"text":"Arma virumque canō, Trōiae quī prīmus ab ōrīs"}`))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	var body scanResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if !body.Valid {
		t.Errorf("line not valid: %s", body.Reason)
	}
	if len(body.Feet) != 6 || body.Meter != "hexameter" {
		t.Errorf("feet = %d, meter = %q, want 6 feet of hexameter", len(body.Feet), body.Meter)
	}
	if len(body.Tokens) != 8 {
		t.Errorf("tokens = %q, want 8", body.Tokens)
	}
}

func TestScanEndpointBadBody(t *testing.T) {
	h := newHandler(false)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/scan", strings.NewReader(`{"elide":false}`)))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestMetersEndpoint(t *testing.T) {
	rec := httptest.NewRecorder()
	newHandler(true).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/meters", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	var body metersResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if len(body.Meters) != 1 || body.Meters[0] != "hexameter" {
		t.Errorf("meters = %q, want [hexameter]", body.Meters)
	}
}
