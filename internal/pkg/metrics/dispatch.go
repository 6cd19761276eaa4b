package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeSent    = "sent"
	OutcomeFailed  = "failed"
	OutcomeSkipped = "skipped"
)

var (
	TransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dispatch_transitions_total",
			Help: "Committed courier and ticket transitions by kind",
		},
		[]string{"kind"},
	)

	NotificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dispatch_notifications_total",
			Help: "Outbound notifications by channel and outcome",
		},
		[]string{"channel", "outcome"},
	)

	DisplayAnnouncementsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "display_announcements_total",
			Help: "Announcements shown on the public display",
		},
		[]string{"kind"},
	)
)
