package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the service metrics on a private registry
type Metrics struct {
	registry *prometheus.Registry

	requests          *prometheus.CounterVec
	synthesis         *prometheus.CounterVec
	synthesisDuration *prometheus.HistogramVec
	wavBytes          prometheus.Counter
}

// NewMetrics creates and registers the service metrics
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),

		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ttsaudio_http_requests_total",
				Help: "HTTP requests by route and status code",
			},
			[]string{"route", "code"},
		),

		synthesis: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ttsaudio_synthesis_total",
				Help: "Speech synthesis calls by mode and status",
			},
			[]string{"mode", "status"}, // status: success, failed
		),

		synthesisDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ttsaudio_synthesis_duration_seconds",
				Help:    "Time spent waiting for the speech model",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"mode"},
		),

		wavBytes: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "ttsaudio_wav_bytes_total",
				Help: "Bytes of WAV audio produced",
			},
		),
	}

	m.registry.MustRegister(
		m.requests,
		m.synthesis,
		m.synthesisDuration,
		m.wavBytes,
	)

	return m
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// RecordRequest counts one HTTP request
func (m *Metrics) RecordRequest(route string, code int) {
	m.requests.WithLabelValues(route, strconv.Itoa(code)).Inc()
}

// RecordSynthesis counts one synthesis call and its latency
func (m *Metrics) RecordSynthesis(mode string, success bool, elapsed time.Duration) {
	status := "success"
	if !success {
		status = "failed"
	}
	m.synthesis.WithLabelValues(mode, status).Inc()
	m.synthesisDuration.WithLabelValues(mode).Observe(elapsed.Seconds())
}

// RecordWAV counts produced WAV bytes
func (m *Metrics) RecordWAV(n int) {
	m.wavBytes.Add(float64(n))
}
