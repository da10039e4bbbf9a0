package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/blipradar/blipradar/pkg/host"
	"github.com/blipradar/blipradar/pkg/pipeline"
)

func testRouter(t *testing.T) http.Handler {
	t.Helper()
	c := New(io.Discard, LogInfo)
	runner := pipeline.NewRunner(nil, nil, c.Logger)
	return c.newRouter(runner)
}

func serveTestDataset() host.Dataset {
	return host.Dataset{
		Columns: []host.Column{
			{Name: "Name", Role: host.RoleName},
			{Name: "Sector", Role: host.RoleSector},
			{Name: "Ring", Role: host.RoleRing},
		},
		Rows: [][]any{
			{"Go", "Languages", "Accelerate"},
			{"Kafka", "Infrastructure", "Monitor"},
		},
	}
}

func TestHealthz(t *testing.T) {
	router := testRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestHandleRadar(t *testing.T) {
	router := testRouter(t)

	body, _ := json.Marshal(radarRequest{
		Dataset: serveTestDataset(),
		Options: pipeline.Options{Seed: 7},
	})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/radar", bytes.NewReader(body)))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (body: %s)", rec.Code, http.StatusOK, rec.Body.String())
	}
	if id := rec.Header().Get("X-Request-Id"); id == "" {
		t.Error("missing X-Request-Id header")
	}

	var resp radarResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(resp.Artifacts["svg"]) == 0 {
		t.Error("expected svg artifact in response")
	}
	if resp.Stats.Blips != 2 {
		t.Errorf("blips = %d, want 2", resp.Stats.Blips)
	}
	if len(resp.Customizations) != 2 {
		t.Errorf("customizations = %d, want 2", len(resp.Customizations))
	}
}

func TestHandleRadarStoredColours(t *testing.T) {
	router := testRouter(t)

	body, _ := json.Marshal(radarRequest{
		Dataset: serveTestDataset(),
		Colours: map[string]string{"languages": "#336699"},
	})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/radar", bytes.NewReader(body)))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var resp radarResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	for _, cust := range resp.Customizations {
		if cust.Selector == "languages" && cust.Fill != "#336699" {
			t.Errorf("languages fill = %q, want #336699", cust.Fill)
		}
	}
}

func TestHandleRadarBadBody(t *testing.T) {
	router := testRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/radar", strings.NewReader("not json")))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}

	var resp errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding error response: %v", err)
	}
	if resp.Code != "INVALID_INPUT" {
		t.Errorf("error code = %q, want INVALID_INPUT", resp.Code)
	}
}

func TestHandleRadarInvalidDataset(t *testing.T) {
	router := testRouter(t)

	// No ring column
	body, _ := json.Marshal(radarRequest{
		Dataset: host.Dataset{
			Columns: []host.Column{
				{Name: "Name", Role: host.RoleName},
				{Name: "Sector", Role: host.RoleSector},
			},
			Rows: [][]any{{"Go", "Languages"}},
		},
	})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/radar", bytes.NewReader(body)))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d (body: %s)", rec.Code, http.StatusBadRequest, rec.Body.String())
	}
}

func TestHandleRadarInvalidColour(t *testing.T) {
	router := testRouter(t)

	body, _ := json.Marshal(radarRequest{
		Dataset: serveTestDataset(),
		Colours: map[string]string{"languages": "purple"},
	})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/radar", bytes.NewReader(body)))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}
