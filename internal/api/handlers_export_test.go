package api

import (
	"bytes"
	"encoding/csv"
	"io"
	"net/http"
	"strings"
	"testing"
)

func TestExportCSVContainsLoggedDays(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "casey@example.com", "super-secret", "")
	cookie := loginAndExtractAuthCookie(t, app, "casey@example.com", "super-secret")

	response := doJSONRequest(t, app, http.MethodPost, "/api/reports", map[string]any{
		"date":           "2026-03-05",
		"diet":           "low salt",
		"overall_rating": 7,
	}, cookie)
	response.Body.Close()
	response = doJSONRequest(t, app, http.MethodPost, "/api/incidents", map[string]any{
		"date":     "2026-03-06",
		"time":     "14:30",
		"symptoms": "dizzy",
	}, cookie)
	response.Body.Close()

	response = doJSONRequest(t, app, http.MethodGet, "/api/export?from=2026-03-01&to=2026-03-10", nil, cookie)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}
	defer response.Body.Close()

	if contentType := response.Header.Get("Content-Type"); !strings.HasPrefix(contentType, "text/csv") {
		t.Fatalf("unexpected content type %q", contentType)
	}
	disposition := response.Header.Get("Content-Disposition")
	if !strings.Contains(disposition, "tidelog-export-2026-03-01-2026-03-10.csv") {
		t.Fatalf("unexpected disposition %q", disposition)
	}

	body, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("read export body: %v", err)
	}
	records, err := csv.NewReader(bytes.NewReader(body)).ReadAll()
	if err != nil {
		t.Fatalf("parse export csv: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected header plus 2 day rows, got %d records", len(records))
	}
	header := records[0]
	if header[0] != "Date" || header[len(header)-1] != "Incident 1 - Notes" {
		t.Fatalf("unexpected header: %v", header)
	}
	if records[1][0] != "2026-03-05" || records[1][1] != "low salt" {
		t.Fatalf("unexpected first row: %v", records[1])
	}
	if records[2][0] != "2026-03-06" || records[2][8] != "14:30" {
		t.Fatalf("unexpected second row: %v", records[2])
	}
}

func TestExportPDFRequiresSubscription(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "casey@example.com", "super-secret", "")
	cookie := loginAndExtractAuthCookie(t, app, "casey@example.com", "super-secret")

	response := doJSONRequest(t, app, http.MethodGet, "/api/export?from=2026-03-01&to=2026-03-10&format=pdf", nil, cookie)
	if response.StatusCode != http.StatusPaymentRequired {
		t.Fatalf("expected status 402, got %d", response.StatusCode)
	}
	body := decodeJSONBody(t, response)
	if body["code"] != "subscription_required" {
		t.Fatalf("expected subscription_required code, got %v", body["code"])
	}
}

func TestExportPDFForSubscriber(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "casey@example.com", "super-secret", "active")
	cookie := loginAndExtractAuthCookie(t, app, "casey@example.com", "super-secret")

	response := doJSONRequest(t, app, http.MethodPost, "/api/reports", map[string]any{
		"date": "2026-03-05",
		"diet": "low salt",
	}, cookie)
	response.Body.Close()

	response = doJSONRequest(t, app, http.MethodGet, "/api/export?from=2026-03-01&to=2026-03-10&format=pdf", nil, cookie)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}
	defer response.Body.Close()

	if contentType := response.Header.Get("Content-Type"); contentType != "application/pdf" {
		t.Fatalf("unexpected content type %q", contentType)
	}
	if disposition := response.Header.Get("Content-Disposition"); !strings.Contains(disposition, "tidelog-report-2026-03-01-2026-03-10.pdf") {
		t.Fatalf("unexpected disposition %q", disposition)
	}
	body, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("read pdf body: %v", err)
	}
	if !bytes.HasPrefix(body, []byte("%PDF-1.4")) {
		t.Fatalf("expected a pdf document, got %q", body[:min(16, len(body))])
	}
	if !bytes.Contains(body, []byte("Tidelog - Doctor Report")) {
		t.Fatal("expected the report title in the document")
	}
}

func TestExportRejectsOversizedRange(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "casey@example.com", "super-secret", "")
	cookie := loginAndExtractAuthCookie(t, app, "casey@example.com", "super-secret")

	response := doJSONRequest(t, app, http.MethodGet, "/api/export?from=2024-01-01&to=2026-01-01", nil, cookie)
	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", response.StatusCode)
	}
	body := decodeJSONBody(t, response)
	if body["error"] != "date range must be 365 days or less" {
		t.Fatalf("unexpected error: %v", body["error"])
	}
}
