package health

import (
	"errors"
	"testing"
)

type mockCatalog struct {
	err error
}

func (m *mockCatalog) Ready() error { return m.err }

func TestCheck_Healthy(t *testing.T) {
	svc := New(&mockCatalog{})

	r := svc.Check()
	if r.Status != Healthy {
		t.Errorf("Status = %q, want %q", r.Status, Healthy)
	}
	if r.Detail != "" {
		t.Errorf("Detail = %q, want empty", r.Detail)
	}
}

func TestCheck_CatalogFailed(t *testing.T) {
	svc := New(&mockCatalog{err: errors.New("snapshot contains no records")})

	r := svc.Check()
	if r.Status != Unhealthy {
		t.Errorf("Status = %q, want %q", r.Status, Unhealthy)
	}
	if r.Detail == "" {
		t.Error("Detail is empty, want the failure cause")
	}
}
