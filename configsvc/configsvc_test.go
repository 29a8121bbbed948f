package configsvc_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/connectorkit/workday/client"
	"github.com/connectorkit/workday/configsvc"
)

func TestStatic_GetConfig(t *testing.T) {
	svc := configsvc.Static{
		"/services/connectors/workday/config": {
			"base_url": "https://acme.workday.com",
		},
	}

	cfg, err := svc.GetConfig(t.Context(), "/services/connectors/workday/config")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if cfg["base_url"] != "https://acme.workday.com" {
		t.Errorf("unexpected config: %v", cfg)
	}

	cfg, err = svc.GetConfig(t.Context(), "/services/connectors/unknown/config")
	if err != nil {
		t.Fatalf("expected no error for unknown path, got: %v", err)
	}
	if cfg != nil {
		t.Errorf("unknown path should yield nil config, got: %v", cfg)
	}
}

func TestNewHTTP_Validation(t *testing.T) {
	if _, err := configsvc.NewHTTP(""); err == nil {
		t.Error("empty base url should fail")
	}
}

func TestHTTP_GetConfig(t *testing.T) {
	const path = "/services/connectors/workday/config"

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != path {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, `{"base_url":"https://acme.workday.com","auth":{"authType":"TOKEN","token":"abc"}}`)
	}))
	defer ts.Close()

	svc, err := configsvc.NewHTTP(ts.URL)
	if err != nil {
		t.Fatalf("failed to create service: %v", err)
	}

	cfg, err := svc.GetConfig(t.Context(), path)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	want := map[string]any{
		"base_url": "https://acme.workday.com",
		"auth": map[string]any{
			"authType": "TOKEN",
			"token":    "abc",
		},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("unexpected config (-want +got):\n%s", diff)
	}
}

func TestHTTP_GetConfig_Absent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	svc, err := configsvc.NewHTTP(ts.URL)
	if err != nil {
		t.Fatalf("failed to create service: %v", err)
	}

	cfg, err := svc.GetConfig(t.Context(), "/services/connectors/workday/config")
	if err != nil {
		t.Fatalf("absent config should not be an error, got: %v", err)
	}
	if cfg != nil {
		t.Errorf("absent config should be nil, got: %v", cfg)
	}
}

func TestHTTP_GetConfig_ServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	svc, err := configsvc.NewHTTP(ts.URL)
	if err != nil {
		t.Fatalf("failed to create service: %v", err)
	}

	_, err = svc.GetConfig(t.Context(), "/services/connectors/workday/config")
	if err == nil {
		t.Fatal("server error should propagate")
	}
	if !errors.Is(err, client.ErrUnexpectedStatusCode) {
		t.Errorf("exp ErrUnexpectedStatusCode, got: %v", err)
	}
}
