package metrics

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestExpvarRecorderAggregates(t *testing.T) {
	rec := NewExpvarRecorder("")
	ctx := context.Background()

	rec.Observe(ctx, "students.create", true, 10*time.Millisecond)
	rec.Observe(ctx, "students.create", true, 5*time.Millisecond)
	rec.Observe(ctx, "students.create", false, time.Millisecond)
	rec.Observe(ctx, "", true, time.Millisecond) // ignored

	snap := rec.Snapshot()
	if got := snap.Results["students.create"]["success"]; got != 2 {
		t.Fatalf("success count = %d", got)
	}
	if got := snap.Results["students.create"]["error"]; got != 1 {
		t.Fatalf("error count = %d", got)
	}
	if got := snap.DurationsMS["students.create"]; got != 16 {
		t.Fatalf("durations = %v", got)
	}
	if _, ok := snap.Results[""]; ok {
		t.Fatalf("unnamed operation recorded")
	}
}

func TestExpvarRecorderUniqueNames(t *testing.T) {
	a := NewExpvarRecorder("")
	b := NewExpvarRecorder("")
	if a.Name() == b.Name() {
		t.Fatalf("generated names collide: %q", a.Name())
	}
}

func TestExpvarSnapshotIsACopy(t *testing.T) {
	rec := NewExpvarRecorder("")
	ctx := context.Background()
	rec.Observe(ctx, "op", true, time.Millisecond)

	snap := rec.Snapshot()
	snap.Results["op"]["success"] = 99
	if again := rec.Snapshot(); again.Results["op"]["success"] != 1 {
		t.Fatalf("snapshot aliased internal state: %+v", again.Results)
	}
}

func TestPrometheusRecorder(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec, err := NewPrometheusRecorder(reg)
	if err != nil {
		t.Fatalf("new recorder: %v", err)
	}
	ctx := context.Background()

	rec.Observe(ctx, "kv.set", true, 2*time.Millisecond)
	rec.Observe(ctx, "kv.set", false, time.Millisecond)

	success := testutil.ToFloat64(rec.results.WithLabelValues("kv.set", "success"))
	failure := testutil.ToFloat64(rec.results.WithLabelValues("kv.set", "error"))
	if success != 1 || failure != 1 {
		t.Fatalf("counters: success=%v error=%v", success, failure)
	}

	// double registration on the same registry fails
	if _, err := NewPrometheusRecorder(reg); err == nil {
		t.Fatalf("expected duplicate registration error")
	}
}

func TestNopRecorder(t *testing.T) {
	Nop{}.Observe(context.Background(), "anything", true, time.Second)
}
