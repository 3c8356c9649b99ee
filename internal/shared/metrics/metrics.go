package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Counters are registered once on the default registry and exposed on
// /metrics by the API server.
var (
	AssociatesCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "coope_associates_created_total",
		Help: "Total number of associates created",
	})

	AssociatesUpdated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "coope_associates_updated_total",
		Help: "Total number of associate updates committed",
	})

	DocumentsUploaded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "coope_documents_uploaded_total",
		Help: "Total number of associate documents accepted for verification",
	})

	DocumentsRejectedOnUpload = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "coope_documents_upload_rejected_total",
		Help: "Uploads refused by catalog rules, by reason",
	}, []string{"reason"})

	DocumentsVerified = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "coope_documents_verified_total",
		Help: "Verification decisions recorded, by decision",
	}, []string{"decision"})

	OutboxPublished = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "coope_outbox_events_total",
		Help: "Outbox events processed by the producer worker, by result",
	}, []string{"result"})
)
