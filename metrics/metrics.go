// metrics/metrics.go
package metrics

import (
	"log"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	Requests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "showcase_requests_total", Help: "HTTP requests by site and status class"},
		[]string{"site", "status"},
	)
	Logins = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "showcase_logins_total", Help: "Panel login attempts by outcome"},
		[]string{"outcome"},
	)
	StoreConflicts = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "showcase_store_conflicts_total", Help: "Optimistic-concurrency save conflicts"},
	)
)

func Register() {
	prometheus.MustRegister(Requests, Logins, StoreConflicts)
}

// Serve exposes /metrics on its own listener so the scrape endpoint never
// shares a port with the public site.
func Serve(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	go func() {
		if err := http.ListenAndServe(addr, mux); err != nil {
			log.Printf("[Metrics] listener error: %v", err)
		}
	}()
}
