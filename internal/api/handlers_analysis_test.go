package api

import (
	"net/http"
	"strings"
	"testing"

	"github.com/tidelog/tidelog/internal/ai"
)

const analysisStubResponse = `{
	"summary": "A calm stretch overall.",
	"trends": ["Fewer incidents in the second half"],
	"insights": ["Exercise days rate higher"],
	"suggestions": ["Keep the walking habit"],
	"weeklyHighlight": "Best week so far."
}`

func TestAnalyzeRequiresSubscription(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "casey@example.com", "super-secret", "")
	cookie := loginAndExtractAuthCookie(t, app, "casey@example.com", "super-secret")

	response := doJSONRequest(t, app, http.MethodPost, "/api/ai/analyze", map[string]any{}, cookie)
	if response.StatusCode != http.StatusPaymentRequired {
		t.Fatalf("expected status 402, got %d", response.StatusCode)
	}
	body := decodeJSONBody(t, response)
	if body["code"] != "subscription_required" {
		t.Fatalf("expected subscription_required code, got %v", body["code"])
	}
}

func TestAnalyzeReturnsParsedInsightsAndCachesThem(t *testing.T) {
	stub := &aiStub{response: analysisStubResponse}
	app, database := newTestAppWithAI(t, stub)
	createTestUser(t, database, "casey@example.com", "super-secret", "trialing")
	cookie := loginAndExtractAuthCookie(t, app, "casey@example.com", "super-secret")

	response := doJSONRequest(t, app, http.MethodPost, "/api/incidents", map[string]any{
		"date":     "2026-03-05",
		"symptoms": "dizzy",
	}, cookie)
	response.Body.Close()

	response = doJSONRequest(t, app, http.MethodPost, "/api/ai/analyze", map[string]any{
		"from": "2026-03-01",
		"to":   "2026-03-10",
	}, cookie)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}
	body := decodeJSONBody(t, response)
	if body["summary"] != "A calm stretch overall." {
		t.Fatalf("unexpected summary: %v", body["summary"])
	}
	if body["weeklyHighlight"] != "Best week so far." {
		t.Fatalf("unexpected highlight: %v", body["weeklyHighlight"])
	}
	if len(stub.prompts) != 1 || !strings.Contains(stub.prompts[0], "Mar 1, 2026 to Mar 10, 2026") {
		t.Fatalf("expected the prompt to carry the range label, got %v", stub.prompts)
	}

	response = doJSONRequest(t, app, http.MethodGet, "/api/ai/insight-cache", nil, cookie)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}
	cached := decodeJSONBody(t, response)
	if cached["from"] != "2026-03-01" || cached["to"] != "2026-03-10" {
		t.Fatalf("unexpected cached window: %v", cached)
	}
	data, ok := cached["data"].(map[string]any)
	if !ok || data["summary"] != "A calm stretch overall." {
		t.Fatalf("unexpected cached data: %v", cached["data"])
	}
}

func TestAnalyzeWithoutDataReturnsCannedResult(t *testing.T) {
	stub := &aiStub{response: analysisStubResponse}
	app, database := newTestAppWithAI(t, stub)
	createTestUser(t, database, "casey@example.com", "super-secret", "active")
	cookie := loginAndExtractAuthCookie(t, app, "casey@example.com", "super-secret")

	response := doJSONRequest(t, app, http.MethodPost, "/api/ai/analyze", map[string]any{
		"from": "2026-03-01",
		"to":   "2026-03-10",
	}, cookie)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}
	body := decodeJSONBody(t, response)
	if body["summary"] != "No data in this range. Log some days or incidents to get personalized insights." {
		t.Fatalf("unexpected summary: %v", body["summary"])
	}
	if len(stub.prompts) != 0 {
		t.Fatalf("expected no completion call for an empty range, got %d", len(stub.prompts))
	}
}

func TestAnalyzeRejectsOversizedRange(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "casey@example.com", "super-secret", "active")
	cookie := loginAndExtractAuthCookie(t, app, "casey@example.com", "super-secret")

	response := doJSONRequest(t, app, http.MethodPost, "/api/ai/analyze", map[string]any{
		"from": "2025-01-01",
		"to":   "2025-12-31",
	}, cookie)
	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", response.StatusCode)
	}
	body := decodeJSONBody(t, response)
	if body["error"] != "date range must be 90 days or less" {
		t.Fatalf("unexpected error: %v", body["error"])
	}
}

func TestAnalyzeReportsCompletionFailure(t *testing.T) {
	stub := &aiStub{err: ai.ErrTimeout}
	app, database := newTestAppWithAI(t, stub)
	createTestUser(t, database, "casey@example.com", "super-secret", "active")
	cookie := loginAndExtractAuthCookie(t, app, "casey@example.com", "super-secret")

	response := doJSONRequest(t, app, http.MethodPost, "/api/incidents", map[string]any{
		"date":     "2026-03-05",
		"symptoms": "dizzy",
	}, cookie)
	response.Body.Close()

	response = doJSONRequest(t, app, http.MethodPost, "/api/ai/analyze", map[string]any{
		"from": "2026-03-01",
		"to":   "2026-03-10",
	}, cookie)
	if response.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", response.StatusCode)
	}
}

func TestAnalyzeRateLimits(t *testing.T) {
	stub := &aiStub{response: analysisStubResponse}
	app, database := newTestAppWithAI(t, stub)
	createTestUser(t, database, "casey@example.com", "super-secret", "active")
	cookie := loginAndExtractAuthCookie(t, app, "casey@example.com", "super-secret")

	for attempt := 0; attempt < 5; attempt++ {
		response := doJSONRequest(t, app, http.MethodPost, "/api/ai/analyze", map[string]any{
			"from": "2026-03-01",
			"to":   "2026-03-10",
		}, cookie)
		if response.StatusCode != http.StatusOK {
			t.Fatalf("expected attempt %d to pass, got %d", attempt+1, response.StatusCode)
		}
		response.Body.Close()
	}

	response := doJSONRequest(t, app, http.MethodPost, "/api/ai/analyze", map[string]any{
		"from": "2026-03-01",
		"to":   "2026-03-10",
	}, cookie)
	if response.StatusCode != http.StatusTooManyRequests {
		t.Fatalf("expected status 429, got %d", response.StatusCode)
	}
	body := decodeJSONBody(t, response)
	if body["code"] != "rate_limit_exceeded" {
		t.Fatalf("expected rate_limit_exceeded code, got %v", body["code"])
	}
}

func TestInsightCacheForNonSubscriberIsNull(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "casey@example.com", "super-secret", "canceled")
	cookie := loginAndExtractAuthCookie(t, app, "casey@example.com", "super-secret")

	response := doJSONRequest(t, app, http.MethodGet, "/api/ai/insight-cache", nil, cookie)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}
	body := decodeJSONBody(t, response)
	if body["data"] != nil {
		t.Fatalf("expected null cache for non-subscriber, got %v", body["data"])
	}
}

func TestOnOpenMessageTrimsResponse(t *testing.T) {
	stub := &aiStub{response: "  Hope today treats you gently.\n"}
	app, database := newTestAppWithAI(t, stub)
	createTestUser(t, database, "casey@example.com", "super-secret", "")
	cookie := loginAndExtractAuthCookie(t, app, "casey@example.com", "super-secret")

	response := doJSONRequest(t, app, http.MethodGet, "/api/ai/on-open-message", nil, cookie)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}
	body := decodeJSONBody(t, response)
	if body["message"] != "Hope today treats you gently." {
		t.Fatalf("unexpected message: %v", body["message"])
	}
}

func TestOnOpenMessageWhenNotConfigured(t *testing.T) {
	stub := &aiStub{err: ai.ErrNotConfigured}
	app, database := newTestAppWithAI(t, stub)
	createTestUser(t, database, "casey@example.com", "super-secret", "")
	cookie := loginAndExtractAuthCookie(t, app, "casey@example.com", "super-secret")

	response := doJSONRequest(t, app, http.MethodGet, "/api/ai/on-open-message", nil, cookie)
	if response.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", response.StatusCode)
	}
	body := decodeJSONBody(t, response)
	if body["error"] != "messages are not configured" {
		t.Fatalf("unexpected error: %v", body["error"])
	}
}
