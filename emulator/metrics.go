package main

import (
	"errors"
	"net/http"
	"strconv"

	trigger "github.com/next-exp/l1trigger_go/pkg"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	eventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "l1topo_events_total",
		Help: "Processed events by status",
	}, []string{"status"})

	jetsBuilt = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "l1topo_jets_per_event",
		Help:    "Number of jet TOBs built per event",
		Buckets: []float64{0, 1, 2, 4, 8, 16, 32},
	})

	acceptedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "l1topo_decision_bits_total",
		Help: "Accepted decision bits by algorithm and bit",
	}, []string{"algorithm", "bit"})
)

func recordEvent(event trigger.EventType) {
	if event.Error {
		eventsTotal.WithLabelValues("error").Inc()
		return
	}
	eventsTotal.WithLabelValues("ok").Inc()
	jetsBuilt.Observe(float64(len(event.Jets)))
	for _, d := range event.Decisions {
		for bit := 0; bit < d.Bits.Len(); bit++ {
			if d.Bits.IsSet(bit) {
				acceptedTotal.WithLabelValues(d.Algorithm, strconv.Itoa(bit)).Inc()
			}
		}
	}
}

func serveMetrics(addr string, logger Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	server := &http.Server{Addr: addr, Handler: mux}
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server: " + err.Error())
		}
	}()
	return server
}
