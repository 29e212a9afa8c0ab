// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package ssllabs

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricsNamespace = "ssllabs"
	metricsSubsystem = "client"

	requestsTotal          = "requests_total"
	pollIterationsTotal    = "poll_iterations_total"
	capacityDeferralsTotal = "capacity_deferrals_total"

	// Labels
	operationLabel = "operation"
	resultLabel    = "result"
	statusLabel    = "status"

	resultOK       = "ok"
	resultCanceled = "canceled"
)

var requestsTotalMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Subsystem: metricsSubsystem,
		Name:      requestsTotal,
		Help:      "number of API requests by operation and result",
	},
	[]string{operationLabel, resultLabel},
)

var pollIterationsTotalMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Subsystem: metricsSubsystem,
		Name:      pollIterationsTotal,
		Help:      "number of poll loop iterations by observed assessment status",
	},
	[]string{statusLabel},
)

var capacityDeferralsTotalMetric = prometheus.NewCounter(
	prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Subsystem: metricsSubsystem,
		Name:      capacityDeferralsTotal,
		Help:      "number of scans deferred because the service had no free assessment slot",
	},
)

func observeRequest(operation string, err error) {
	result := resultOK
	var ce *ClassifiedError
	switch {
	case err == nil:
	case errors.As(err, &ce):
		result = ce.Kind.String()
	default:
		result = resultCanceled
	}
	requestsTotalMetric.With(prometheus.Labels{
		operationLabel: operation,
		resultLabel:    result,
	}).Inc()
}

func observePoll(status string) {
	pollIterationsTotalMetric.With(prometheus.Labels{statusLabel: status}).Inc()
}

func observeDeferral() {
	capacityDeferralsTotalMetric.Inc()
}

func init() {
	registerMetrics()
}

func registerMetrics() {
	prometheus.MustRegister(requestsTotalMetric)
	prometheus.MustRegister(pollIterationsTotalMetric)
	prometheus.MustRegister(capacityDeferralsTotalMetric)
}
