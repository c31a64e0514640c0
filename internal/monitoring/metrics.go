package monitoring

import "github.com/prometheus/client_golang/prometheus"

var (
	GamesCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "games_created_total",
			Help: "Total games created",
		},
	)

	Actions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "game_actions_total",
			Help: "Total applied game actions",
		},
		[]string{"action"},
	)

	ActionRejections = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "game_action_rejections_total",
			Help: "Total rejected game actions",
		},
		[]string{"reason"},
	)

	WSClients = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "ws_clients",
			Help: "Connected websocket clients",
		},
	)
)

func Init() {
	prometheus.MustRegister(GamesCreated)
	prometheus.MustRegister(Actions)
	prometheus.MustRegister(ActionRejections)
	prometheus.MustRegister(WSClients)
}
