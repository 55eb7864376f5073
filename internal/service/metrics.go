package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	opCreate = "create"
	opUpdate = "update"
	opDelete = "delete"

	resultOK       = "ok"
	resultNotFound = "not_found"
	resultError    = "error"
)

var ordersTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "microcart",
	Subsystem: "orders",
	Name:      "mutations_total",
	Help:      "Total number of order mutations by operation and result.",
}, []string{"operation", "result"})
