package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordWager(t *testing.T) {
	before := testutil.ToFloat64(wagersTotal.WithLabelValues("duplicate_wager"))
	RecordWager("duplicate_wager")
	after := testutil.ToFloat64(wagersTotal.WithLabelValues("duplicate_wager"))
	if after-before != 1 {
		t.Errorf("Expected counter to grow by 1, grew by %v", after-before)
	}
}

func TestRecordSettlementOnlyCountsPaidOnSuccess(t *testing.T) {
	before := testutil.ToFloat64(pointsPaidTotal)

	RecordSettlement("sideA", "success", 250, time.Now())
	RecordSettlement("sideA", "already_settled", 999, time.Now())

	after := testutil.ToFloat64(pointsPaidTotal)
	if after-before != 250 {
		t.Errorf("Expected 250 points recorded, got %v", after-before)
	}
}

func TestHealthz(t *testing.T) {
	tests := []struct {
		name     string
		health   HealthFunc
		expected int
	}{
		{name: "healthy", health: func() error { return nil }, expected: http.StatusOK},
		{name: "unhealthy", health: func() error { return errors.New("db down") }, expected: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			NewMux(tt.health).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
			if rec.Code != tt.expected {
				t.Errorf("Expected status %d, got %d", tt.expected, rec.Code)
			}
		})
	}
}
