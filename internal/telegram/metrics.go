package telegram

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// MessagesTotal tracks handled messages by kind (command or query).
	MessagesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "profitrade_telegram_messages_total",
		Help: "Total number of Telegram messages handled",
	}, []string{"kind"})

	// SendErrorsTotal tracks replies Telegram rejected.
	SendErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "profitrade_telegram_send_errors_total",
		Help: "Total number of failed Telegram replies",
	})
)
