package main

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"coachcore/internal/metrics"
)

func TestNewRecorderSelection(t *testing.T) {
	rec, err := newRecorder("", nil)
	if err != nil {
		t.Fatalf("expvar recorder: %v", err)
	}
	if _, ok := rec.(*metrics.ExpvarRecorder); !ok {
		t.Fatalf("no metrics address should select expvar, got %T", rec)
	}

	rec, err = newRecorder(":9109", prometheus.NewRegistry())
	if err != nil {
		t.Fatalf("prometheus recorder: %v", err)
	}
	if _, ok := rec.(*metrics.PrometheusRecorder); !ok {
		t.Fatalf("metrics address should select prometheus, got %T", rec)
	}
}
