// ABOUTME: Tests for the Vapi client: request shape, auth header, error
// ABOUTME: handling, and payload encoding.

package vapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const testAssistantID = "192f7f1c-bf83-48e3-95bf-e691430d6379"

func TestUpdateAssistantSendsPatch(t *testing.T) {
	var gotMethod, gotPath, gotAuth, gotContentType string
	var gotBody []byte

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)

		w.Header().Set("Content-Type", "application/json")
		w.Write(gotBody) // echo the config back like the real API
	}))
	defer srv.Close()

	client := NewClient("test-key", WithBaseURL(srv.URL))
	updated, err := client.UpdateAssistant(context.Background(), testAssistantID, FranciscoConfig())
	if err != nil {
		t.Fatalf("UpdateAssistant: %v", err)
	}

	if gotMethod != http.MethodPatch {
		t.Errorf("method = %s, want PATCH", gotMethod)
	}
	if want := "/assistant/" + testAssistantID; gotPath != want {
		t.Errorf("path = %s, want %s", gotPath, want)
	}
	if gotAuth != "Bearer test-key" {
		t.Errorf("auth header = %q", gotAuth)
	}
	if gotContentType != "application/json" {
		t.Errorf("content type = %q", gotContentType)
	}

	var sent AssistantConfig
	if err := json.Unmarshal(gotBody, &sent); err != nil {
		t.Fatalf("request body is not valid JSON: %v", err)
	}
	if sent.Voice.Stability != 0.50 {
		t.Errorf("sent voice.stability = %v, want 0.5", sent.Voice.Stability)
	}
	if updated.EndCallMessage != EndCallMessage {
		t.Errorf("decoded endCallMessage = %q", updated.EndCallMessage)
	}
}

func TestUpdateAssistantRejectsBadID(t *testing.T) {
	client := NewClient("test-key")
	if _, err := client.UpdateAssistant(context.Background(), "not-a-uuid", FranciscoConfig()); err == nil {
		t.Error("accepted a non-UUID assistant id")
	}
}

func TestUpdateAssistantAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"invalid api key"}`))
	}))
	defer srv.Close()

	client := NewClient("bad-key", WithBaseURL(srv.URL))
	_, err := client.UpdateAssistant(context.Background(), testAssistantID, FranciscoConfig())
	if err == nil {
		t.Fatal("expected an error for a 401 response")
	}
	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("error type %T, want *APIError", err)
	}
	if apiErr.StatusCode != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", apiErr.StatusCode)
	}
	if !strings.Contains(apiErr.Body, "invalid api key") {
		t.Errorf("error body %q missing server message", apiErr.Body)
	}
}

func TestMarshalConfigKeepsUTF8(t *testing.T) {
	payload, err := MarshalConfig(FranciscoConfig())
	if err != nil {
		t.Fatalf("MarshalConfig: %v", err)
	}
	body := string(payload)

	if !strings.Contains(body, "Angra do Heroísmo") {
		t.Error("prompt text was escaped instead of kept as UTF-8")
	}
	// The Liquid template compares strings with <, which must survive
	// encoding literally rather than as a unicode escape.
	if !strings.Contains(body, `hm < \"0700\"`) {
		t.Error("first-message template was HTML-escaped")
	}
	if strings.Contains(body, "\\u003c") {
		t.Error("payload contains HTML-escaped angle brackets")
	}
	if strings.HasSuffix(body, "\n") {
		t.Error("payload carries a trailing newline")
	}
}
