package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	NameArticlesCreated   = "articles_created_total"
	NameArticlesUpdated   = "articles_updated_total"
	NameArticlesDeleted   = "articles_deleted_total"
	NameSearchRequests    = "search_requests_total"
	NameForbiddenRequests = "forbidden_requests_total"
	LabelAction           = "action"
)

var ArticlesCreated = promauto.NewCounter(
	prometheus.CounterOpts{
		Name:      NameArticlesCreated,
		Help:      "Total created articles",
		Namespace: Namespace,
	},
)

var ArticlesUpdated = promauto.NewCounter(
	prometheus.CounterOpts{
		Name:      NameArticlesUpdated,
		Help:      "Total updated articles",
		Namespace: Namespace,
	},
)

var ArticlesDeleted = promauto.NewCounter(
	prometheus.CounterOpts{
		Name:      NameArticlesDeleted,
		Help:      "Total deleted articles",
		Namespace: Namespace,
	},
)

var SearchRequests = promauto.NewCounter(
	prometheus.CounterOpts{
		Name:      NameSearchRequests,
		Help:      "Total search requests",
		Namespace: Namespace,
	},
)

var ForbiddenRequests = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name:      NameForbiddenRequests,
		Help:      "Total article modifications denied to non-authors",
		Namespace: Namespace,
	},
	[]string{LabelAction},
)
