package metrics

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics captures domain-level health signals for the billing workflow.
type Metrics struct {
	usageStaged  *prometheus.CounterVec
	usageCleared prometheus.Counter
	billOutcomes *prometheus.CounterVec
	billTotals   prometheus.Histogram
	entityWrites *prometheus.CounterVec
}

const (
	BillOpCreate = "create"
	BillOpUpdate = "update"
	BillOpDelete = "delete"

	BillOutcomeOK         = "ok"
	BillOutcomeValidation = "validation"
	BillOutcomeNoCharges  = "no_charges"
	BillOutcomeNotFound   = "not_found"
	BillOutcomeDuplicate  = "duplicate"
	BillOutcomeStorage    = "storage"
)

// New registers the domain instruments on the default registry.
func New() *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer)
}

// NewWithRegistry registers the domain instruments on the given registry.
func NewWithRegistry(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		usageStaged: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "caredesk_usage_entries_staged_total",
			Help: "Usage entries attributed to patients, awaiting billing.",
		}, []string{"service_id"}),
		usageCleared: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "caredesk_usage_entries_cleared_total",
			Help: "Usage entries removed from staging when a bill was finalized.",
		}),
		billOutcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "caredesk_bill_operations_total",
			Help: "Billing engine operations by op and outcome.",
		}, []string{"op", "outcome"}),
		billTotals: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "caredesk_bill_total_amount",
			Help:    "Distribution of finalized bill totals.",
			Buckets: prometheus.ExponentialBuckets(10, 2.5, 8),
		}),
		entityWrites: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "caredesk_entity_writes_total",
			Help: "Create/update/delete operations on administrative entities.",
		}, []string{"entity", "op"}),
	}
	if reg != nil {
		reg.MustRegister(m.usageStaged, m.usageCleared, m.billOutcomes, m.billTotals, m.entityWrites)
	}
	return m
}

// ObserveUsageStaged records one staged usage entry.
func (m *Metrics) ObserveUsageStaged(serviceID string) {
	if m == nil {
		return
	}
	m.usageStaged.WithLabelValues(normalizeLabel(serviceID)).Inc()
}

// ObserveUsageCleared records staged entries removed on bill finalization.
func (m *Metrics) ObserveUsageCleared(count int) {
	if m == nil || count <= 0 {
		return
	}
	m.usageCleared.Add(float64(count))
}

// ObserveBillOperation records the outcome of one billing engine call.
func (m *Metrics) ObserveBillOperation(op, outcome string) {
	if m == nil {
		return
	}
	m.billOutcomes.WithLabelValues(normalizeLabel(op), normalizeLabel(outcome)).Inc()
}

// ObserveBillTotal records a finalized bill amount.
func (m *Metrics) ObserveBillTotal(total float64) {
	if m == nil || total < 0 {
		return
	}
	m.billTotals.Observe(total)
}

// ObserveEntityWrite records a CRUD write on an administrative entity.
func (m *Metrics) ObserveEntityWrite(entity, op string) {
	if m == nil {
		return
	}
	m.entityWrites.WithLabelValues(normalizeLabel(entity), normalizeLabel(op)).Inc()
}

func normalizeLabel(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return "unknown"
	}
	return value
}
