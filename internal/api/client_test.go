package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
)

func testClient(t *testing.T, handler http.HandlerFunc) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewHTTPClient(srv.URL, "secret-token", zerolog.Nop())
}

func TestFetchTags(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/api/v1/tags" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer secret-token" {
			t.Errorf("Authorization = %q", got)
		}
		if r.Header.Get("X-Request-Id") == "" {
			t.Error("missing X-Request-Id")
		}
		if got := r.URL.Query().Get("sort"); got != "name" {
			t.Errorf("sort = %q", got)
		}
		json.NewEncoder(w).Encode(TagList{Items: []Tag{{ID: "t1", Name: "invoice"}}})
	})

	list, err := c.FetchTags(context.Background(), "", "name")
	if err != nil {
		t.Fatalf("FetchTags: %v", err)
	}
	if len(list.Items) != 1 || list.Items[0].Name != "invoice" {
		t.Fatalf("unexpected list: %+v", list)
	}
}

func TestFetchTagsServerError(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"message": "boom"})
	})

	_, err := c.FetchTags(context.Background(), "", "")
	var se *StatusError
	if !errors.As(err, &se) {
		t.Fatalf("expected StatusError, got %v", err)
	}
	if se.Status != http.StatusInternalServerError || se.Message != "boom" {
		t.Fatalf("unexpected StatusError: %+v", se)
	}
}

func TestGetDueTaskNotFound(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	settings, err := c.GetDueTask(context.Background())
	if err != nil {
		t.Fatalf("GetDueTask: %v", err)
	}
	if settings != nil {
		t.Fatalf("expected nil settings on 404, got %+v", settings)
	}
}

func TestSubmitDueTaskCreate(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/v1/notification/duetask" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var in TaskSettings
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			t.Errorf("decode body: %v", err)
		}
		in.ID = "task-9"
		json.NewEncoder(w).Encode(in)
	})

	saved, err := c.SubmitDueTask(context.Background(), TaskSettings{RemindDays: 3, Schedule: "@daily"})
	if err != nil {
		t.Fatalf("SubmitDueTask: %v", err)
	}
	if saved.ID != "task-9" {
		t.Fatalf("server-assigned id not propagated: %+v", saved)
	}
}

func TestSubmitDueTaskUpdate(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/api/v1/notification/duetask/task-9" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		json.NewEncoder(w).Encode(TaskSettings{ID: "task-9"})
	})

	if _, err := c.SubmitDueTask(context.Background(), TaskSettings{ID: "task-9"}); err != nil {
		t.Fatalf("SubmitDueTask: %v", err)
	}
}

func TestDeleteDueTask(t *testing.T) {
	var gotPath string
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.Method + " " + r.URL.Path
		w.WriteHeader(http.StatusOK)
	})

	if err := c.DeleteDueTask(context.Background(), "task-9"); err != nil {
		t.Fatalf("DeleteDueTask: %v", err)
	}
	if gotPath != "DELETE /api/v1/notification/duetask/task-9" {
		t.Fatalf("unexpected request: %s", gotPath)
	}

	if err := c.DeleteDueTask(context.Background(), ""); err == nil {
		t.Fatal("expected error for empty id")
	}
}

func TestChangePassword(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode body: %v", err)
		}
		if body["currentPassword"] != "old" || body["newPassword"] != "new" {
			t.Errorf("unexpected body: %v", body)
		}
		w.WriteHeader(http.StatusOK)
	})

	if err := c.ChangePassword(context.Background(), "old", "new"); err != nil {
		t.Fatalf("ChangePassword: %v", err)
	}
}
