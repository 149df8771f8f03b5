package service

import "github.com/Netcracker/qubership-merchant-performance-service/view"

var (
	userRatingThresholds                 = view.Thresholds{3.5, 4, 4.3, 4.5, 5.0}
	orderFulfillmentRateThresholds       = view.Thresholds{0.97, 0.98, 0.995, 0.998, 1}
	logisticsRefundRateThresholds        = view.Thresholds{0.1, 0.08, 0.04, 0.02, 0}
	qualityRefundRateThresholds          = view.Thresholds{0.05, 0.02, 0.01, 0.005, 0}
	validTrackingRateThresholds          = view.Thresholds{0.95, 0.97, 0.99, 0.995, 1}
	fulfillmentSpeedThresholds           = view.Thresholds{5, 2, 1.5, 1.0, 1.0}
	underperformingProductRateThresholds = view.Thresholds{0.09, 0.05, 0.03, 0.015, 0}
)

// Clamp targets keeping a near-perfect score from displaying as the perfect one.
const (
	userRatingImperfectBest           = 4.9
	orderFulfillmentRateImperfectBest = 0.999
	logisticsRefundRateImperfectBest  = 0.001
	qualityRefundRateImperfectBest    = 0.001
	validTrackingRateImperfectBest    = 0.999
	fulfillmentSpeedImperfectBest     = 1.1
	fulfillmentSpeedPerfectWorst      = 0.9
)

const (
	formatDecimal = "0.0"
	formatPercent = "0.0%"
)

func ListMetricThresholds() []view.MetricThresholds {
	return []view.MetricThresholds{
		{Metric: view.MetricUserRating, Thresholds: userRatingThresholds, Direction: view.DirectionAscending},
		{Metric: view.MetricOrderFulfillmentRate, Thresholds: orderFulfillmentRateThresholds, Direction: view.DirectionAscending},
		{Metric: view.MetricValidTrackingRate, Thresholds: validTrackingRateThresholds, Direction: view.DirectionAscending},
		{Metric: view.MetricProductQualityRefundRate, Thresholds: qualityRefundRateThresholds, Direction: view.DirectionDescending},
		{Metric: view.MetricProductLogisticsRefundRate, Thresholds: logisticsRefundRateThresholds, Direction: view.DirectionDescending},
		{Metric: view.MetricFulfillmentSpeed, Thresholds: fulfillmentSpeedThresholds, Direction: view.DirectionDescending},
		{Metric: view.MetricUnderperformingProducts, Thresholds: underperformingProductRateThresholds, Direction: view.DirectionDescending},
	}
}
