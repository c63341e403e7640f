package chi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/medcloud/rxdex/internal/catalog"
	healthuc "github.com/medcloud/rxdex/internal/usecase/health"
	searchuc "github.com/medcloud/rxdex/internal/usecase/search"
)

// byteSource serves a snapshot from memory.
type byteSource struct {
	data []byte
}

func (s *byteSource) Fetch(_ context.Context) ([]byte, error) { return s.data, nil }
func (s *byteSource) Name() string                            { return "test" }

const testSnapshot = `[
	{"product_code": "A", "brand_name": "Advil", "generic_name": "Ibuprofen", "dosage_form": "TABLET"},
	{"product_code": "B", "brand_name": "Amoxil", "generic_name": "Amoxicillin", "dosage_form": "CAPSULE"}
]`

func newTestServer(t *testing.T, snapshot string) *httptest.Server {
	t.Helper()

	store := catalog.Load(context.Background(), &byteSource{data: []byte(snapshot)}, zap.NewNop())
	searchSvc := searchuc.New(store, store.Index(), nil, 0)
	healthSvc := healthuc.New(store)
	server := NewServer(searchSvc, store, healthSvc, zap.NewNop())

	r := chi.NewRouter()
	server.Register(r)

	ts := httptest.NewServer(r)
	t.Cleanup(ts.Close)
	return ts
}

func get(t *testing.T, url string) (*http.Response, []byte) {
	t.Helper()
	res, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return res, body
}

func TestSearchEndpoint(t *testing.T) {
	ts := newTestServer(t, testSnapshot)

	res, body := get(t, ts.URL+"/v1/medications/search?q=ibuprofen")
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, body %s", res.StatusCode, body)
	}

	var resp struct {
		Results []struct {
			ProductCode string  `json:"product_code"`
			BrandName   string  `json:"brand_name"`
			Score       float64 `json:"score"`
		} `json:"results"`
		Total    int `json:"total"`
		Page     int `json:"page"`
		PageSize int `json:"page_size"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("decode: %v (%s)", err, body)
	}

	if resp.Total != 1 || len(resp.Results) != 1 {
		t.Fatalf("total = %d, results = %d, want 1/1", resp.Total, len(resp.Results))
	}
	if resp.Results[0].ProductCode != "A" || resp.Results[0].Score <= 0 {
		t.Errorf("unexpected result: %+v", resp.Results[0])
	}
	if resp.Page != 1 || resp.PageSize != 10 {
		t.Errorf("page/page_size = %d/%d, want 1/10", resp.Page, resp.PageSize)
	}
}

func TestSearchEndpoint_Validation(t *testing.T) {
	ts := newTestServer(t, testSnapshot)

	tests := []struct {
		name string
		path string
	}{
		{name: "missing query", path: "/v1/medications/search"},
		{name: "blank query", path: "/v1/medications/search?q=%20"},
		{name: "zero page", path: "/v1/medications/search?q=a&page=0"},
		{name: "negative page size", path: "/v1/medications/search?q=a&page_size=-1"},
		{name: "non-numeric page", path: "/v1/medications/search?q=a&page=abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, body := get(t, ts.URL+tt.path)
			if res.StatusCode != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400 (%s)", res.StatusCode, body)
			}

			var resp struct {
				Code string `json:"code"`
			}
			if err := json.Unmarshal(body, &resp); err != nil {
				t.Fatalf("decode: %v (%s)", err, body)
			}
			if resp.Code != codeValidationFailed {
				t.Errorf("code = %q, want %q", resp.Code, codeValidationFailed)
			}
		})
	}
}

func TestSearchEndpoint_FacetFilter(t *testing.T) {
	ts := newTestServer(t, testSnapshot)

	res, body := get(t, ts.URL+"/v1/medications/search?q=ibuprofen&dosage_form=CAPSULE")
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status = %d (%s)", res.StatusCode, body)
	}

	var resp struct {
		Total int `json:"total"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Total != 0 {
		t.Errorf("total = %d, want 0", resp.Total)
	}
}

func TestGetMedicationEndpoint(t *testing.T) {
	ts := newTestServer(t, testSnapshot)

	res, body := get(t, ts.URL+"/v1/medications/A")
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status = %d (%s)", res.StatusCode, body)
	}

	var med struct {
		ProductCode string `json:"product_code"`
		BrandName   string `json:"brand_name"`
	}
	if err := json.Unmarshal(body, &med); err != nil {
		t.Fatal(err)
	}
	if med.ProductCode != "A" || med.BrandName != "Advil" {
		t.Errorf("unexpected medication: %+v", med)
	}
}

func TestGetMedicationEndpoint_NotFound(t *testing.T) {
	ts := newTestServer(t, testSnapshot)

	res, body := get(t, ts.URL+"/v1/medications/ZZZ")
	if res.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404 (%s)", res.StatusCode, body)
	}

	var resp struct {
		Code string `json:"code"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Code != codeNotFound {
		t.Errorf("code = %q, want %q", resp.Code, codeNotFound)
	}
}

func TestDosageFormsEndpoint(t *testing.T) {
	ts := newTestServer(t, testSnapshot)

	res, body := get(t, ts.URL+"/v1/dosage-forms")
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status = %d (%s)", res.StatusCode, body)
	}

	var resp struct {
		DosageForms []string `json:"dosage_forms"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatal(err)
	}
	want := []string{"CAPSULE", "TABLET"}
	if len(resp.DosageForms) != 2 || resp.DosageForms[0] != want[0] || resp.DosageForms[1] != want[1] {
		t.Errorf("dosage_forms = %v, want %v", resp.DosageForms, want)
	}
}

func TestHealthEndpoint(t *testing.T) {
	ts := newTestServer(t, testSnapshot)

	res, body := get(t, ts.URL+"/healthz")
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status = %d (%s)", res.StatusCode, body)
	}
}

func TestFailedCatalog(t *testing.T) {
	ts := newTestServer(t, `[]`)

	res, body := get(t, ts.URL+"/healthz")
	if res.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("healthz status = %d, want 503 (%s)", res.StatusCode, body)
	}

	res, body = get(t, ts.URL+"/v1/medications/search?q=ibuprofen")
	if res.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("search status = %d, want 503 (%s)", res.StatusCode, body)
	}

	var resp struct {
		Code string `json:"code"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Code != codeServiceUnavailable {
		t.Errorf("code = %q, want %q", resp.Code, codeServiceUnavailable)
	}
}
