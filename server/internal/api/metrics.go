package api

import (
	"io"
	"sync/atomic"

	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
	"google.golang.org/protobuf/proto"

	"github.com/Orsy-git/securiPass/server/internal/password"
	"github.com/Orsy-git/securiPass/server/internal/store"
)

// Exposed metric names.
const (
	metricGenerated     = "securipass_passwords_generated_total"
	metricGeneratedChar = "securipass_generated_characters_total"
	metricHistorySize   = "securipass_history_size"
	metricEvaluations   = "securipass_evaluations_total"
)

// metrics counts evaluations per label and generated characters. The
// generation count itself is read from the store so the two never disagree.
type metrics struct {
	chars       atomic.Int64
	evaluations map[string]*atomic.Int64 // read-only after newMetrics
}

func newMetrics() *metrics {
	m := &metrics{evaluations: make(map[string]*atomic.Int64, len(password.Labels))}
	for _, l := range password.Labels {
		m.evaluations[l] = new(atomic.Int64)
	}
	return m
}

func (m *metrics) observeGeneration(length int) {
	m.chars.Add(int64(length))
}

func (m *metrics) observeEvaluation(label string) {
	if c, ok := m.evaluations[label]; ok {
		c.Add(1)
	}
}

// families builds the metric families for the current state.
func (m *metrics) families(st *store.Store) []*dto.MetricFamily {
	snap := st.Snapshot()

	evals := &dto.MetricFamily{
		Name: proto.String(metricEvaluations),
		Help: proto.String("Password evaluations by resulting label."),
		Type: dto.MetricType_COUNTER.Enum(),
	}
	for _, l := range password.Labels {
		evals.Metric = append(evals.Metric, &dto.Metric{
			Label:   []*dto.LabelPair{{Name: proto.String("label"), Value: proto.String(l)}},
			Counter: &dto.Counter{Value: proto.Float64(float64(m.evaluations[l].Load()))},
		})
	}

	return []*dto.MetricFamily{
		counter(metricGenerated, "Passwords generated since startup.", float64(snap.GeneratedCount)),
		counter(metricGeneratedChar, "Characters emitted across all generated passwords.", float64(m.chars.Load())),
		gauge(metricHistorySize, "Passwords currently held in the session history.", float64(len(snap.History))),
		evals,
	}
}

// writeText encodes the families in the Prometheus text exposition format.
func (m *metrics) writeText(w io.Writer, st *store.Store) error {
	for _, mf := range m.families(st) {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}

func counter(name, help string, v float64) *dto.MetricFamily {
	return &dto.MetricFamily{
		Name:   proto.String(name),
		Help:   proto.String(help),
		Type:   dto.MetricType_COUNTER.Enum(),
		Metric: []*dto.Metric{{Counter: &dto.Counter{Value: proto.Float64(v)}}},
	}
}

func gauge(name, help string, v float64) *dto.MetricFamily {
	return &dto.MetricFamily{
		Name:   proto.String(name),
		Help:   proto.String(help),
		Type:   dto.MetricType_GAUGE.Enum(),
		Metric: []*dto.Metric{{Gauge: &dto.Gauge{Value: proto.Float64(v)}}},
	}
}
