package service

import (
	"math"

	"github.com/Netcracker/qubership-merchant-performance-service/utils"
	"github.com/Netcracker/qubership-merchant-performance-service/view"
)

type MetricScorer func(stats *view.WssStats) view.ScoreData

type NamedMetricScorer struct {
	Name   view.MetricName
	Scorer MetricScorer
}

// MetricScorers never round an imperfect value up to the perfect one.
var MetricScorers = []NamedMetricScorer{
	{Name: view.MetricUserRating, Scorer: GetAverageUserRatingData},
	{Name: view.MetricOrderFulfillmentRate, Scorer: GetOrderFulfillmentRateData},
	{Name: view.MetricValidTrackingRate, Scorer: GetValidTrackingRateData},
	{Name: view.MetricProductQualityRefundRate, Scorer: GetQualityRefundData},
	{Name: view.MetricProductLogisticsRefundRate, Scorer: GetLogisticsRefundData},
	{Name: view.MetricFulfillmentSpeed, Scorer: GetFulfillmentSpeedData},
	{Name: view.MetricUnderperformingProducts, Scorer: GetUnderperformingProductsData},
}

func GetMetricScorer(name view.MetricName) (MetricScorer, bool) {
	for _, m := range MetricScorers {
		if m.Name == name {
			return m.Scorer, true
		}
	}
	return nil, false
}

func ScoreAllMetrics(stats *view.WssStats) view.MetricScores {
	result := make(view.MetricScores, len(MetricScorers))
	for _, m := range MetricScorers {
		result[m.Name] = m.Scorer(stats)
	}
	return result
}

func CountMetrics(stats *view.WssStats, pred func(view.ScoreData) bool) int {
	count := 0
	for _, m := range MetricScorers {
		if pred(m.Scorer(stats)) {
			count++
		}
	}
	return count
}

// clampHigherIsBetter keeps a perfect value as is and caps everything else at imperfectBest.
func clampHigherIsBetter(value *float64, thresholds view.Thresholds, precision int, imperfectBest float64) *float64 {
	if value == nil {
		return nil
	}
	if *value == thresholds.Best() {
		return utils.FloatPtr(*value)
	}
	return utils.FloatPtr(math.Min(utils.Round(*value, precision), imperfectBest))
}

func clampLowerIsBetter(value *float64, thresholds view.Thresholds, precision int, imperfectBest float64) *float64 {
	if value == nil {
		return nil
	}
	if *value == thresholds.Best() {
		return utils.FloatPtr(*value)
	}
	return utils.FloatPtr(math.Max(utils.Round(*value, precision), imperfectBest))
}

func GetAverageUserRatingData(stats *view.WssStats) view.ScoreData {
	var value *float64
	if stats != nil {
		value = stats.UserRating
	}
	return FormatScore(ScoreArgs{
		CurrentScore:  clampHigherIsBetter(value, userRatingThresholds, 1, userRatingImperfectBest),
		Thresholds:    userRatingThresholds,
		DisplayFormat: formatDecimal,
		Direction:     view.DirectionAscending,
	})
}

func GetOrderFulfillmentRateData(stats *view.WssStats) view.ScoreData {
	var value *float64
	if stats != nil {
		value = stats.OrderFultillmentRate
	}
	return FormatScore(ScoreArgs{
		CurrentScore:  clampHigherIsBetter(value, orderFulfillmentRateThresholds, 3, orderFulfillmentRateImperfectBest),
		Thresholds:    orderFulfillmentRateThresholds,
		DisplayFormat: formatPercent,
		Direction:     view.DirectionAscending,
	})
}

func GetValidTrackingRateData(stats *view.WssStats) view.ScoreData {
	var value *float64
	if stats != nil {
		value = stats.ValidTrackingRate
	}
	return FormatScore(ScoreArgs{
		CurrentScore:  clampHigherIsBetter(value, validTrackingRateThresholds, 3, validTrackingRateImperfectBest),
		Thresholds:    validTrackingRateThresholds,
		DisplayFormat: formatPercent,
		Direction:     view.DirectionAscending,
	})
}

func GetLogisticsRefundData(stats *view.WssStats) view.ScoreData {
	var value *float64
	if stats != nil {
		value = stats.ProductLogisticsRefundRate
	}
	return FormatScore(ScoreArgs{
		CurrentScore:  clampLowerIsBetter(value, logisticsRefundRateThresholds, 3, logisticsRefundRateImperfectBest),
		Thresholds:    logisticsRefundRateThresholds,
		DisplayFormat: formatPercent,
		Direction:     view.DirectionDescending,
	})
}

func GetQualityRefundData(stats *view.WssStats) view.ScoreData {
	var value *float64
	if stats != nil {
		value = stats.ProductQualityRefundRate
	}
	return FormatScore(ScoreArgs{
		CurrentScore:  clampLowerIsBetter(value, qualityRefundRateThresholds, 3, qualityRefundRateImperfectBest),
		Thresholds:    qualityRefundRateThresholds,
		DisplayFormat: formatPercent,
		Direction:     view.DirectionDescending,
	})
}

// GetUnderperformingProductsData shares the quality refund clamp target.
func GetUnderperformingProductsData(stats *view.WssStats) view.ScoreData {
	var value *float64
	if stats != nil {
		value = stats.BadProductRate
	}
	return FormatScore(ScoreArgs{
		CurrentScore:  clampLowerIsBetter(value, underperformingProductRateThresholds, 3, qualityRefundRateImperfectBest),
		Thresholds:    underperformingProductRateThresholds,
		DisplayFormat: formatPercent,
		Direction:     view.DirectionDescending,
	})
}

func fulfillmentSpeedScore(stats *view.WssStats) *float64 {
	if stats == nil || stats.FulfillmentSpeed == nil {
		return nil
	}
	days := stats.FulfillmentSpeed.Days
	perfect := fulfillmentSpeedThresholds.Best()
	if days == perfect {
		return utils.FloatPtr(days)
	}
	if days < perfect {
		return utils.FloatPtr(math.Min(utils.Round(days, 1), fulfillmentSpeedPerfectWorst))
	}
	return utils.FloatPtr(math.Max(utils.Round(days, 1), fulfillmentSpeedImperfectBest))
}

// GetFulfillmentSpeedData scores days to fulfill, lower is better, shown as a day count.
func GetFulfillmentSpeedData(stats *view.WssStats) view.ScoreData {
	var result view.ScoreData
	currentScore := fulfillmentSpeedScore(stats)
	if currentScore != nil {
		result.CurrentLevel = GetLevelDesc(*currentScore, fulfillmentSpeedThresholds).Ptr()
		result.CurrentScoreDisplay = utils.StringPtr(utils.FormatDays(*currentScore))
	}
	goal := ComputeGoal(currentScore, fulfillmentSpeedThresholds, view.DirectionDescending)
	result.GoalLevel = goal.Level
	result.GoalScoreDisplay = utils.FormatDays(goal.Score)
	return result
}
