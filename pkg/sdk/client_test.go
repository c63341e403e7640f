package sdk

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	return New(ts.URL)
}

func TestSearch(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/medications/search" {
			t.Errorf("path = %q", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("q") != "ibupro" || q.Get("page") != "2" || q.Get("page_size") != "5" || q.Get("dosage_form") != "TABLET" {
			t.Errorf("unexpected query: %v", q)
		}

		_ = json.NewEncoder(w).Encode(SearchPage{
			Results: []SearchResult{{
				Medication: Medication{ProductCode: "A", BrandName: "Advil"},
				Score:      2.4,
			}},
			Total:    1,
			Page:     2,
			PageSize: 5,
		})
	})

	page, err := client.Search(context.Background(), SearchParams{
		Query: "ibupro", Page: 2, PageSize: 5, DosageForm: "TABLET",
	})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if page.Total != 1 || len(page.Results) != 1 || page.Results[0].ProductCode != "A" {
		t.Errorf("unexpected page: %+v", page)
	}
}

func TestSearch_BadRequest(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"code":    "validation_failed",
			"message": "query is required",
		})
	})

	_, err := client.Search(context.Background(), SearchParams{})
	if !errors.Is(err, ErrBadRequest) {
		t.Errorf("err = %v, want ErrBadRequest", err)
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Code != "validation_failed" {
		t.Errorf("err = %v, want APIError with code validation_failed", err)
	}
}

func TestGetMedication_NotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"code": "not_found"})
	})

	_, err := client.GetMedication(context.Background(), "ZZZ")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestSearch_Unavailable(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_ = json.NewEncoder(w).Encode(map[string]string{"code": "service_unavailable"})
	})

	_, err := client.Search(context.Background(), SearchParams{Query: "a"})
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("err = %v, want ErrUnavailable", err)
	}
}

func TestDosageForms(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/dosage-forms" {
			t.Errorf("path = %q", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(map[string][]string{
			"dosage_forms": {"CAPSULE", "TABLET"},
		})
	})

	forms, err := client.DosageForms(context.Background())
	if err != nil {
		t.Fatalf("DosageForms: %v", err)
	}
	if len(forms) != 2 || forms[0] != "CAPSULE" {
		t.Errorf("forms = %v", forms)
	}
}

func TestHealth_Degraded(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "error", "detail": "catalog unavailable"})
	})

	status, err := client.Health(context.Background())
	if err != nil {
		t.Fatalf("Health: %v", err)
	}
	if status != "error" {
		t.Errorf("status = %q, want error", status)
	}
}
