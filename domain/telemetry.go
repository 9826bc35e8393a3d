package domain

import "github.com/prometheus/client_golang/prometheus"

var (
	// tempo_quotes_total
	//
	// counter that measures the number of quotes computed
	TempoQuotesCounterMetricName = "tempo_quotes_total"

	// tempo_transactions_total
	//
	// counter that measures the number of committed transactions
	//
	// Has the following labels:
	// * type - the transaction type
	TempoTransactionsCounterMetricName = "tempo_transactions_total"

	// tempo_session_action_errors_total
	//
	// counter that measures the number of session actions aborted with an error
	//
	// Has the following labels:
	// * action - the session action
	// * kind - the error kind
	TempoSessionActionErrorsCounterMetricName = "tempo_session_action_errors_total"

	// tempo_sessions_active
	//
	// gauge that tracks the number of live exchange sessions
	TempoSessionsActiveGaugeMetricName = "tempo_sessions_active"

	// tempo_token_list_fetch_error_total
	//
	// counter that measures the number of errors when fetching the token list
	TempoTokenListFetchErrorCounterMetricName = "tempo_token_list_fetch_error_total"

	TempoQuotesCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: TempoQuotesCounterMetricName,
			Help: "Total number of quotes computed",
		},
	)

	TempoTransactionsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: TempoTransactionsCounterMetricName,
			Help: "Total number of committed transactions",
		},
		[]string{"type"},
	)

	TempoSessionActionErrorsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: TempoSessionActionErrorsCounterMetricName,
			Help: "Total number of session actions aborted with an error",
		},
		[]string{"action", "kind"},
	)

	TempoSessionsActiveGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: TempoSessionsActiveGaugeMetricName,
			Help: "gauge that tracks the number of live exchange sessions",
		},
	)

	TempoTokenListFetchErrorCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: TempoTokenListFetchErrorCounterMetricName,
			Help: "Total number of errors when fetching the token list",
		},
	)
)

func init() {
	prometheus.MustRegister(TempoQuotesCounter)
	prometheus.MustRegister(TempoTransactionsCounter)
	prometheus.MustRegister(TempoSessionActionErrorsCounter)
	prometheus.MustRegister(TempoSessionsActiveGauge)
	prometheus.MustRegister(TempoTokenListFetchErrorCounter)
}
