package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func gatherMetric(t *testing.T, reg *prometheus.Registry, name string) *dto.MetricFamily {
	t.Helper()
	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	for _, fam := range families {
		if fam.GetName() == name {
			return fam
		}
	}
	return nil
}

func TestObserveRequestRecordsCounterAndHistogram(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewHTTPMetrics(reg)

	m.ObserveRequest("GET", "/api/wishlists", "200", 25*time.Millisecond)
	m.ObserveRequest("GET", "/api/wishlists", "200", 35*time.Millisecond)
	m.ObserveRequest("POST", "/api/wishlists", "201", 10*time.Millisecond)

	counter := gatherMetric(t, reg, "http_requests_total")
	if counter == nil {
		t.Fatal("http_requests_total not registered")
	}
	var getCount float64
	for _, metric := range counter.GetMetric() {
		labels := map[string]string{}
		for _, pair := range metric.GetLabel() {
			labels[pair.GetName()] = pair.GetValue()
		}
		if labels["method"] == "GET" && labels["route"] == "/api/wishlists" && labels["status"] == "200" {
			getCount = metric.GetCounter().GetValue()
		}
	}
	if getCount != 2 {
		t.Fatalf("GET count = %v, want 2", getCount)
	}

	hist := gatherMetric(t, reg, "http_request_duration_seconds")
	if hist == nil {
		t.Fatal("http_request_duration_seconds not registered")
	}
}

func TestInFlightGauge(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewHTTPMetrics(reg)

	m.IncInFlight()
	m.IncInFlight()
	m.DecInFlight()

	gauge := gatherMetric(t, reg, "http_requests_in_flight")
	if gauge == nil {
		t.Fatal("http_requests_in_flight not registered")
	}
	if got := gauge.GetMetric()[0].GetGauge().GetValue(); got != 1 {
		t.Fatalf("in flight = %v, want 1", got)
	}
}

func TestNilReceiverIsNoop(t *testing.T) {
	var m *HTTPMetrics
	m.ObserveRequest("GET", "/", "200", time.Millisecond)
	m.IncInFlight()
	m.DecInFlight()

	empty := NewHTTPMetrics(nil)
	empty.ObserveRequest("", "", "", 0)
}
