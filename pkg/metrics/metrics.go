package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор prometheus метрик сервиса
type Metrics struct {
	// HTTPRequestsTotal количество HTTP запросов по методу, пути и статусу
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration длительность обработки HTTP запросов
	HTTPRequestDuration *prometheus.HistogramVec

	// ReservationsCreatedTotal количество созданных бронирований по источнику (direct/external)
	ReservationsCreatedTotal *prometheus.CounterVec

	// ChannelEventsTotal количество обработанных событий внешнего канала по типу события и результату
	ChannelEventsTotal *prometheus.CounterVec
}

// New создает и регистрирует метрики сервиса
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		ReservationsCreatedTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "reservations_created_total",
			Help:        "Total number of reservations created, by source",
			ConstLabels: constLabels,
		}, []string{"source"}),

		ChannelEventsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "channel_events_total",
			Help:        "Total number of external channel events processed, by event type and outcome",
			ConstLabels: constLabels,
		}, []string{"event", "outcome"}),
	}
}

// IncReservationCreated инкрементирует счетчик созданных бронирований
func (m *Metrics) IncReservationCreated(source string) {
	m.ReservationsCreatedTotal.WithLabelValues(source).Inc()
}

// IncChannelEvent инкрементирует счетчик событий внешнего канала
func (m *Metrics) IncChannelEvent(event, outcome string) {
	m.ChannelEventsTotal.WithLabelValues(event, outcome).Inc()
}
