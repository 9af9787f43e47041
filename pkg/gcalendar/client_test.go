package gcalendar_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"natural-event-scheduler/pkg/gcalendar"
)

type rewriteTransport struct {
	Transport http.RoundTripper
	Host      string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.Host
	return t.Transport.RoundTrip(req)
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *gcalendar.Client {
	t.Helper()

	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	tsClient := ts.Client()
	tsClient.Transport = &rewriteTransport{
		Transport: tsClient.Transport,
		Host:      strings.TrimPrefix(ts.URL, "http://"),
	}

	client, err := gcalendar.NewClientFromHTTP(context.Background(), tsClient)
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}
	return client
}

func TestClientInitialization(t *testing.T) {
	mockCreds := `{
		"installed": {
			"client_id": "test-client-id.apps.googleusercontent.com",
			"project_id": "test-project",
			"auth_uri": "https://accounts.google.com/o/oauth2/auth",
			"token_uri": "https://oauth2.googleapis.com/token",
			"client_secret": "test-secret",
			"redirect_uris": ["http://localhost"]
		}
	}`

	t.Run("broken JWT/OAuth config", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(`{"broken":true}`))
		if err == nil {
			t.Errorf("expected decoding failure")
		}
	})

	t.Run("installed app config with token", func(t *testing.T) {
		os.WriteFile("token.json", []byte(`{"access_token": "dummy", "token_type": "Bearer", "expiry": "2030-01-01T00:00:00Z"}`), 0644)
		defer os.Remove("token.json")

		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(mockCreds))
		if err != nil {
			t.Fatalf("expected parsing to succeed: %v", err)
		}
	})

	t.Run("installed app config with bad token", func(t *testing.T) {
		os.WriteFile("token.json", []byte(`{"broken": true`), 0644)
		defer os.Remove("token.json")

		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(mockCreds))
		if err == nil {
			t.Fatalf("expected parsing to fail on bad token")
		}
	})

	t.Run("missing credentials file", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsFile(context.Background(), "non-existent-file-path-12345.json")
		if err == nil {
			t.Errorf("expected reading file error")
		}
	})
}

func TestCreateEventWithRecurrence(t *testing.T) {
	var gotBody []byte
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/calendar/v3/calendars/primary/events" && r.Method == http.MethodPost {
			gotBody, _ = io.ReadAll(r.Body)
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"id": "event-123", "htmlLink": "https://calendar.google.com/event-uri", "status": "confirmed"}`))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	})

	start := time.Date(2025, 12, 9, 13, 0, 0, 0, time.FixedZone("JST", 9*3600))
	event, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{
		Summary:   "Lunch with Alex",
		Location:  "Shibuya",
		StartTime: start,
		EndTime:   start.Add(time.Hour),
		Timezone:  "Asia/Tokyo",
		Recurrence: &gcalendar.RecurrenceSpec{
			Frequency: "weekly",
			Interval:  1,
		},
	})
	if err != nil {
		t.Fatalf("failed to create event: %v", err)
	}
	if event.ID != "event-123" {
		t.Errorf("unexpected event ID: %s", event.ID)
	}

	var wire struct {
		Summary    string   `json:"summary"`
		Location   string   `json:"location"`
		Recurrence []string `json:"recurrence"`
	}
	if err := json.Unmarshal(gotBody, &wire); err != nil {
		t.Fatalf("request body not JSON: %v", err)
	}
	if wire.Location != "Shibuya" {
		t.Errorf("location on wire = %q", wire.Location)
	}
	if len(wire.Recurrence) != 1 || wire.Recurrence[0] != "RRULE:FREQ=WEEKLY;INTERVAL=1" {
		t.Errorf("recurrence on wire = %v", wire.Recurrence)
	}
}

func TestCreateEventAPIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{
		Summary:   "x",
		StartTime: time.Now(),
		EndTime:   time.Now().Add(time.Hour),
	})
	if err == nil {
		t.Fatal("expected create event error")
	}
}

func TestDeleteEvent(t *testing.T) {
	var deleted string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete && strings.HasPrefix(r.URL.Path, "/calendar/v3/calendars/primary/events/") {
			deleted = strings.TrimPrefix(r.URL.Path, "/calendar/v3/calendars/primary/events/")
			w.WriteHeader(http.StatusNoContent)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	})

	if err := client.DeleteEvent(context.Background(), "", "event-123"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if deleted != "event-123" {
		t.Errorf("deleted ID = %q", deleted)
	}

	if err := client.DeleteEvent(context.Background(), "", "missing"); err == nil {
		t.Error("expected error deleting unknown event")
	}
}

func TestListCalendarsFiltersReadOnly(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/calendar/v3/users/me/calendarList" && r.Method == http.MethodGet {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{
				"items": [
					{"id": "primary-id", "summary": "Personal", "backgroundColor": "#9fe1e7", "accessRole": "owner", "primary": true},
					{"id": "team-id", "summary": "Team", "backgroundColor": "#fbe983", "accessRole": "writer"},
					{"id": "holidays-id", "summary": "Holidays", "accessRole": "reader"}
				]
			}`))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	})

	calendars, err := client.ListCalendars(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(calendars) != 2 {
		t.Fatalf("expected 2 writable calendars, got %d", len(calendars))
	}
	if calendars[0].ID != "primary-id" || !calendars[0].Primary {
		t.Errorf("unexpected first calendar: %+v", calendars[0])
	}

	id, err := client.DefaultCalendarID(context.Background())
	if err != nil {
		t.Fatalf("default calendar: %v", err)
	}
	if id != "primary-id" {
		t.Errorf("default calendar ID = %q", id)
	}
}

func TestCheckAccess(t *testing.T) {
	t.Run("granted", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"items": []}`))
		})
		status, err := client.CheckAccess(context.Background())
		if err != nil || status != gcalendar.AuthGranted {
			t.Errorf("status=%v err=%v, want granted", status, err)
		}
	})

	t.Run("denied", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			w.Write([]byte(`{"error": {"code": 403, "message": "forbidden"}}`))
		})
		status, err := client.CheckAccess(context.Background())
		if err != nil || status != gcalendar.AuthDenied {
			t.Errorf("status=%v err=%v, want denied", status, err)
		}
	})

	t.Run("unknown on server failure", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})
		status, err := client.CheckAccess(context.Background())
		if err == nil || status != gcalendar.AuthUnknown {
			t.Errorf("status=%v err=%v, want unknown+error", status, err)
		}
	})
}
