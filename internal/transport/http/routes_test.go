package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"sudoku-graph/internal/metrics"
	"sudoku-graph/internal/puzzlebank"
	"sudoku-graph/pkg/config"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	obs := metrics.NewObserver(prometheus.NewRegistry())
	RegisterRoutes(r, &config.Config{Port: "0"}, obs)
	return r
}

func TestHealthHandler(t *testing.T) {
	r := newTestRouter()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestSolveHandlerSolvesCompleteGrid(t *testing.T) {
	r := newTestRouter()

	values := []int{
		1, 2, 3, 4,
		3, 4, 1, 2,
		2, 1, 4, 3,
		4, 3, 2, 1,
	}
	body, _ := json.Marshal(SolveRequest{Magnitude: 2, Values: values})

	req := httptest.NewRequest(http.MethodPost, "/api/solve", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unexpected error decoding response: %v", err)
	}
	if resp["status"] != "solved" {
		t.Errorf("expected status solved, got %v", resp["status"])
	}
}

func TestSolveHandlerRejectsMalformedValues(t *testing.T) {
	r := newTestRouter()
	body, _ := json.Marshal(SolveRequest{Magnitude: 2, Values: []int{1, 2, 3}})

	req := httptest.NewRequest(http.MethodPost, "/api/solve", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestBankHandlerReturnsBankedPuzzle(t *testing.T) {
	bank := puzzlebank.New()
	_ = bank.Add(2, make([]int, 16))
	puzzlebank.SetGlobal(bank)
	defer puzzlebank.SetGlobal(nil)

	r := newTestRouter()
	req := httptest.NewRequest(http.MethodGet, "/api/bank/2", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestBankHandlerUnavailableWhenUnloaded(t *testing.T) {
	puzzlebank.SetGlobal(nil)
	r := newTestRouter()
	req := httptest.NewRequest(http.MethodGet, "/api/bank/2", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", w.Code)
	}
}
