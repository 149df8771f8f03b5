package service

import (
	"fmt"
	"net/http"

	"github.com/Netcracker/qubership-merchant-performance-service/exception"
	"github.com/Netcracker/qubership-merchant-performance-service/utils"
	"github.com/Netcracker/qubership-merchant-performance-service/view"
)

const (
	ProductComplianceThreshold     = 0
	ShippingLateConfirmThreshold   = 0.1
	ShippingValidTrackingThreshold = 0.95
	CsLateResponseThreshold        = 0.1
	CsSatisfactionThreshold        = 4.0
	RatingThreshold                = 4.0
)

func CountStoreHealthWarnings(data view.PerformanceHealthInitialData) int {
	count := 0

	if policy := data.Policy; policy != nil {
		for _, products := range []*int{policy.IpInfringementProducts, policy.ProhibitedProducts, policy.MisleadingProducts} {
			if products != nil && *products > ProductComplianceThreshold {
				count++
			}
		}
	}

	storeStats := data.CurrentMerchant.StoreStats
	if storeStats == nil {
		return count
	}
	if tracking := storeStats.Tracking; tracking != nil {
		if tracking.LateConfirmedFulfillmentRate != nil && *tracking.LateConfirmedFulfillmentRate > ShippingLateConfirmThreshold {
			count++
		}
		if tracking.ValidTrackingRate != nil && *tracking.ValidTrackingRate < ShippingValidTrackingThreshold {
			count++
		}
	}
	if cs := storeStats.Cs; cs != nil {
		if cs.LateResponseRate30d != nil && *cs.LateResponseRate30d > CsLateResponseThreshold {
			count++
		}
		if cs.CustomerSatisfactionScore != nil && *cs.CustomerSatisfactionScore < CsSatisfactionThreshold {
			count++
		}
	}
	if rating := storeStats.Rating; rating != nil {
		if rating.AverageProductRating != nil && *rating.AverageProductRating < RatingThreshold {
			count++
		}
	}
	return count
}

type statComparator func(a, b float64) float64

func gt(a, b float64) float64 { return a - b }
func lt(a, b float64) float64 { return b - a }

var statsComparator = map[view.MetricName]statComparator{
	view.MetricUserRating:                 gt,
	view.MetricOrderFulfillmentRate:       gt,
	view.MetricValidTrackingRate:          gt,
	view.MetricProductQualityRefundRate:   lt,
	view.MetricProductLogisticsRefundRate: lt,
	view.MetricFulfillmentSpeed:           lt,
}

// CompareStat is positive when display value a is better than b.
// CompareStat(userRating, "1.5", "1.4") is 0.1, CompareStat(fulfillmentSpeed, "1.5d", "2d") is 0.5.
func CompareStat(metric view.MetricName, a string, b string) (float64, error) {
	cmp, ok := statsComparator[metric]
	if !ok {
		return 0, &exception.CustomError{
			Status:  http.StatusBadRequest,
			Code:    exception.InvalidParameterValue,
			Message: exception.InvalidParameterValueMsg,
			Params:  map[string]interface{}{"value": metric, "param": "metric"},
		}
	}
	av, err := utils.ParseNumber(a)
	if err != nil {
		return 0, fmt.Errorf("failed to compare %s stats: %w", metric, err)
	}
	bv, err := utils.ParseNumber(b)
	if err != nil {
		return 0, fmt.Errorf("failed to compare %s stats: %w", metric, err)
	}
	return utils.Round(cmp(av, bv), 6), nil
}
