package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ShipmentsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "logitrust_shipments_created_total",
		Help: "Total number of shipments successfully created.",
	})

	QuotesCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "logitrust_quotes_created_total",
		Help: "Total number of quotes successfully created.",
	})

	PaymentsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "logitrust_payments_created_total",
		Help: "Total number of payments successfully created.",
	})

	TrackingRecordsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "logitrust_tracking_records_created_total",
		Help: "Total number of tracking records successfully created.",
	})

	SignupsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "logitrust_signups_total",
		Help: "Total number of successful signups.",
	})

	OperationErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "logitrust_operation_errors_total",
		Help: "Total number of errors encountered during specific operations.",
	},
		[]string{"operation"},
	)
)
