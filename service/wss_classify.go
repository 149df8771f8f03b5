package service

import (
	"net/http"

	"github.com/Netcracker/qubership-merchant-performance-service/exception"
	"github.com/Netcracker/qubership-merchant-performance-service/utils"
	"github.com/Netcracker/qubership-merchant-performance-service/view"
)

// statsOf places a single metric value where its scorer reads it.
func statsOf(metric view.MetricName, value *float64) (*view.WssStats, bool) {
	stats := &view.WssStats{}
	switch metric {
	case view.MetricUserRating:
		stats.UserRating = value
	case view.MetricOrderFulfillmentRate:
		stats.OrderFultillmentRate = value
	case view.MetricValidTrackingRate:
		stats.ValidTrackingRate = value
	case view.MetricProductQualityRefundRate:
		stats.ProductQualityRefundRate = value
	case view.MetricProductLogisticsRefundRate:
		stats.ProductLogisticsRefundRate = value
	case view.MetricUnderperformingProducts:
		stats.BadProductRate = value
	case view.MetricFulfillmentSpeed:
		if value != nil {
			stats.FulfillmentSpeed = &view.Timedelta{Days: *value}
		}
	default:
		return nil, false
	}
	return stats, true
}

// ClassifyScore scores a value against a known metric, or against the thresholds given in the request.
func ClassifyScore(req view.ClassifyReq) (view.ScoreData, error) {
	if req.Metric != "" {
		scorer, ok := GetMetricScorer(req.Metric)
		stats, known := statsOf(req.Metric, req.Value)
		if !ok || !known {
			return view.ScoreData{}, invalidParam("metric", req.Metric)
		}
		return scorer(stats), nil
	}

	if req.Thresholds == nil {
		return view.ScoreData{}, &exception.CustomError{
			Status:  http.StatusBadRequest,
			Code:    exception.RequiredParamsMissing,
			Message: exception.RequiredParamsMissingMsg,
			Params:  map[string]interface{}{"params": "metric or thresholds"},
		}
	}
	direction := req.Direction
	if direction == "" {
		direction = view.DirectionAscending
	}
	if direction != view.DirectionAscending && direction != view.DirectionDescending {
		return view.ScoreData{}, invalidParam("direction", direction)
	}
	displayFormat := req.DisplayFormat
	if displayFormat == "" {
		displayFormat = formatDecimal
	}
	if !utils.IsValidNumberMask(displayFormat) {
		return view.ScoreData{}, invalidParam("displayFormat", displayFormat)
	}
	thresholds, err := makeThresholds(req.Thresholds, direction)
	if err != nil {
		return view.ScoreData{}, err
	}
	return FormatScore(ScoreArgs{
		CurrentScore:  req.Value,
		Thresholds:    thresholds,
		DisplayFormat: displayFormat,
		Direction:     direction,
	}), nil
}

// makeThresholds accepts exactly five bounds, ordered worst to best for the direction.
func makeThresholds(values []float64, direction view.MetricDirection) (view.Thresholds, error) {
	var thresholds view.Thresholds
	if len(values) != len(thresholds) {
		return thresholds, invalidParam("thresholds", values)
	}
	for i := 1; i < len(values); i++ {
		if direction == view.DirectionAscending && values[i] < values[i-1] ||
			direction == view.DirectionDescending && values[i] > values[i-1] {
			return thresholds, invalidParam("thresholds", values)
		}
	}
	copy(thresholds[:], values)
	return thresholds, nil
}

func invalidParam(param string, value interface{}) error {
	return &exception.CustomError{
		Status:  http.StatusBadRequest,
		Code:    exception.InvalidParameterValue,
		Message: exception.InvalidParameterValueMsg,
		Params:  map[string]interface{}{"value": value, "param": param},
	}
}
