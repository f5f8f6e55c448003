package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	NameLogins    = "logins_total"
	LabelProvider = "provider"
	LabelStatus   = "status"
)

var Logins = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name:      NameLogins,
		Help:      "Login attempts",
		Namespace: Namespace,
	},
	[]string{LabelProvider, LabelStatus},
)
