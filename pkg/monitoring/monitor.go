package monitoring

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	CampaignsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "feedback_campaigns_created_total",
			Help: "Total number of feedback campaigns created",
		},
	)

	SubmissionsAccepted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "feedback_submissions_total",
			Help: "Total number of feedback submissions accepted",
		},
	)

	NotificationsEmitted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feedback_notifications_emitted_total",
			Help: "Total number of notifications emitted",
		},
		[]string{"type"},
	)

	Logins = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feedback_logins_total",
			Help: "Total number of successful logins",
		},
		[]string{"role"},
	)

	StoreWriteFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "feedback_store_write_failures_total",
			Help: "Total number of swallowed slot write failures",
		},
	)
)

var registerOnce sync.Once

func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(CampaignsCreated)
		prometheus.MustRegister(SubmissionsAccepted)
		prometheus.MustRegister(NotificationsEmitted)
		prometheus.MustRegister(Logins)
		prometheus.MustRegister(StoreWriteFailures)
	})
}
