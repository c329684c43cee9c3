package metrics

import "github.com/prometheus/client_golang/prometheus"

var HttpRequestsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests received",
	},
	[]string{"endpoint", "status", "method"},
)

var HttpRequestDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	},
	[]string{"endpoint", "method"},
)

var HttpErrorsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "http_errors_total",
		Help: "Total number of failed HTTP requests (4xx/5xx)",
	},
	[]string{"endpoint", "status", "method"},
)

var MessagesAttemptedTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "messages_attempted_total",
		Help: "Total number of outbound message attempts",
	},
	[]string{"status", "provider"},
)

var MessageSendDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "message_send_duration_seconds",
		Help:    "Time taken to send messages via the external provider",
		Buckets: prometheus.DefBuckets,
	},
	[]string{"provider"},
)

var ExternalAPISuccessTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "external_api_success_total",
		Help: "Total number of successful external API calls",
	},
	[]string{"provider", "service"},
)

var ExternalAPIFailureTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "external_api_failure_total",
		Help: "Total number of failed external API calls",
	},
	[]string{"provider", "service"},
)

var IncomingMessagesTotal = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "incoming_messages_total",
		Help: "Total number of incoming message notifications handled",
	},
)

var ReportedFailuresTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "reported_failures_total",
		Help: "Total number of failures reported to the monitoring sink",
	},
	[]string{"service"},
)

func InitHTTPMetrics() {
	prometheus.MustRegister(HttpRequestsTotal)
	prometheus.MustRegister(HttpRequestDuration)
	prometheus.MustRegister(HttpErrorsTotal)
}

func InitMessengerMetrics() {
	prometheus.MustRegister(MessagesAttemptedTotal)
	prometheus.MustRegister(MessageSendDuration)
	prometheus.MustRegister(ExternalAPISuccessTotal)
	prometheus.MustRegister(ExternalAPIFailureTotal)
	prometheus.MustRegister(IncomingMessagesTotal)
	prometheus.MustRegister(ReportedFailuresTotal)
}
