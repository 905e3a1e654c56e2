package handlers

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// areaComputations counts drawn shapes saved to the inventory.
var areaComputations = promauto.NewCounter(prometheus.CounterOpts{
	Name: "fields_saved_total",
	Help: "Total drawn field shapes saved to the inventory",
})

func observeAreaComputed() {
	areaComputations.Inc()
}
