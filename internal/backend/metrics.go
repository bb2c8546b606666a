package backend

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	opsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mantis_backend_ops_total",
		Help: "Total number of operations dispatched to a backend kernel",
	}, []string{"op", "device"})

	rejectionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mantis_backend_rejections_total",
		Help: "Total number of operations rejected before reaching a kernel",
	}, []string{"op", "reason"})
)
