package metrics

import "github.com/prometheus/client_golang/prometheus"

// AgendaMetrics exposes counters/histograms for the aggregation pipeline.
type AgendaMetrics struct {
	aggregationsTotal *prometheus.CounterVec
	aggregationTime   prometheus.Histogram
	slotFetchesTotal  *prometheus.CounterVec
}

func NewAgendaMetrics(reg prometheus.Registerer) *AgendaMetrics {
	m := &AgendaMetrics{
		aggregationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "agendaops",
			Subsystem: "agenda",
			Name:      "aggregations_total",
			Help:      "Total consolidated-agenda aggregations",
		}, []string{"status"}),
		aggregationTime: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "agendaops",
			Subsystem: "agenda",
			Name:      "aggregation_seconds",
			Help:      "Wall time of one full aggregation",
			Buckets:   prometheus.DefBuckets,
		}),
		slotFetchesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "agendaops",
			Subsystem: "agenda",
			Name:      "slot_fetches_total",
			Help:      "Per-professional slot fetches by outcome",
		}, []string{"outcome"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.aggregationsTotal, m.aggregationTime, m.slotFetchesTotal)
	return m
}

func (m *AgendaMetrics) ObserveAggregation(status string, seconds float64) {
	if m == nil {
		return
	}
	m.aggregationsTotal.WithLabelValues(status).Inc()
	m.aggregationTime.Observe(seconds)
}

func (m *AgendaMetrics) ObserveSlotFetch(outcome string) {
	if m == nil {
		return
	}
	m.slotFetchesTotal.WithLabelValues(outcome).Inc()
}

// CampaignMetrics exposes counters for confirmation-campaign runs.
type CampaignMetrics struct {
	runsTotal  *prometheus.CounterVec
	sendsTotal *prometheus.CounterVec
	pagesTotal prometheus.Counter
}

func NewCampaignMetrics(reg prometheus.Registerer) *CampaignMetrics {
	m := &CampaignMetrics{
		runsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "agendaops",
			Subsystem: "campaign",
			Name:      "runs_total",
			Help:      "Campaign runs by terminal outcome",
		}, []string{"outcome"}),
		sendsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "agendaops",
			Subsystem: "campaign",
			Name:      "sends_total",
			Help:      "Outbound reminder sends by status",
		}, []string{"status"}),
		pagesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "agendaops",
			Subsystem: "campaign",
			Name:      "listing_pages_total",
			Help:      "Confirmable-listing pages fetched",
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.runsTotal, m.sendsTotal, m.pagesTotal)
	return m
}

func (m *CampaignMetrics) ObserveRun(outcome string) {
	if m == nil {
		return
	}
	m.runsTotal.WithLabelValues(outcome).Inc()
}

func (m *CampaignMetrics) ObserveSend(status string) {
	if m == nil {
		return
	}
	m.sendsTotal.WithLabelValues(status).Inc()
}

func (m *CampaignMetrics) ObservePage() {
	if m == nil {
		return
	}
	m.pagesTotal.Inc()
}
