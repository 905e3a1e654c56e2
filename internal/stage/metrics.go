package stage

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// enrichBatchSize tracks the distribution of batch sizes passed to Enrich.
	enrichBatchSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "stage_enrich_batch_size",
		Help:    "Number of crop records per enrichment call",
		Buckets: []float64{1, 5, 10, 25, 50, 100, 250},
	})

	// enrichParseFailures counts records whose planting date failed to parse.
	enrichParseFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "stage_enrich_parse_failures_total",
		Help: "Total crop records rejected for unparseable planting dates",
	})

	// enrichRecords counts processed records by outcome.
	enrichRecords = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "stage_enrich_records_total",
		Help: "Total crop records enriched by outcome",
	}, []string{"outcome"}) // outcome: growing, harvested, invalid
)

func observeEnrichBatch(records []EnrichedCropRecord) {
	enrichBatchSize.Observe(float64(len(records)))
	for i := range records {
		switch {
		case !records[i].Valid():
			enrichParseFailures.Inc()
			enrichRecords.WithLabelValues("invalid").Inc()
		case records[i].IsHarvested:
			enrichRecords.WithLabelValues("harvested").Inc()
		default:
			enrichRecords.WithLabelValues("growing").Inc()
		}
	}
}
