package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveBillOperationCounts(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewWithRegistry(reg)

	m.ObserveBillOperation(BillOpCreate, BillOutcomeOK)
	m.ObserveBillOperation(BillOpCreate, BillOutcomeOK)
	m.ObserveBillOperation(BillOpUpdate, BillOutcomeNoCharges)

	if got := testutil.ToFloat64(m.billOutcomes.WithLabelValues("create", "ok")); got != 2 {
		t.Fatalf("expected 2 create/ok operations, got %v", got)
	}
	if got := testutil.ToFloat64(m.billOutcomes.WithLabelValues("update", "no_charges")); got != 1 {
		t.Fatalf("expected 1 update/no_charges operation, got %v", got)
	}
}

func TestObserveUsageClearedIgnoresNonPositive(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewWithRegistry(reg)

	m.ObserveUsageCleared(0)
	m.ObserveUsageCleared(-3)
	m.ObserveUsageCleared(4)

	if got := testutil.ToFloat64(m.usageCleared); got != 4 {
		t.Fatalf("expected 4 cleared entries, got %v", got)
	}
}

func TestNormalizeLabelFallsBackToUnknown(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewWithRegistry(reg)

	m.ObserveUsageStaged("  ")
	if got := testutil.ToFloat64(m.usageStaged.WithLabelValues("unknown")); got != 1 {
		t.Fatalf("expected blank service id to count as unknown, got %v", got)
	}
}
