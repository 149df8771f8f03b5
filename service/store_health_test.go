package service

import (
	"errors"
	"net/http"
	"testing"

	"github.com/Netcracker/qubership-merchant-performance-service/exception"
	"github.com/Netcracker/qubership-merchant-performance-service/utils"
	"github.com/Netcracker/qubership-merchant-performance-service/view"
)

func TestCountStoreHealthWarnings(t *testing.T) {
	tests := []struct {
		name string
		data view.PerformanceHealthInitialData
		want int
	}{
		{"empty", view.PerformanceHealthInitialData{}, 0},
		{
			name: "policy only",
			data: view.PerformanceHealthInitialData{Policy: &view.PolicyWarnings{
				MisleadingProducts:     utils.IntPtr(1),
				IpInfringementProducts: utils.IntPtr(0),
				ProhibitedProducts:     utils.IntPtr(4),
			}},
			want: 2,
		},
		{
			name: "healthy store",
			data: view.PerformanceHealthInitialData{CurrentMerchant: view.HealthCurrentMerchant{StoreStats: &view.MerchantStoreStats{
				Tracking: &view.TrackingStats{ValidTrackingRate: utils.FloatPtr(0.95), LateConfirmedFulfillmentRate: utils.FloatPtr(0.1)},
				Cs:       &view.CsStats{LateResponseRate30d: utils.FloatPtr(0.05), CustomerSatisfactionScore: utils.FloatPtr(4.0)},
				Rating:   &view.RatingStats{AverageProductRating: utils.FloatPtr(4.5)},
			}}},
			want: 0,
		},
		{
			name: "every stat over its threshold",
			data: view.PerformanceHealthInitialData{
				Policy: &view.PolicyWarnings{MisleadingProducts: utils.IntPtr(1)},
				CurrentMerchant: view.HealthCurrentMerchant{StoreStats: &view.MerchantStoreStats{
					Tracking: &view.TrackingStats{ValidTrackingRate: utils.FloatPtr(0.9), LateConfirmedFulfillmentRate: utils.FloatPtr(0.2)},
					Cs:       &view.CsStats{LateResponseRate30d: utils.FloatPtr(0.3), CustomerSatisfactionScore: utils.FloatPtr(3.9)},
					Rating:   &view.RatingStats{AverageProductRating: utils.FloatPtr(3.0)},
				}},
			},
			want: 6,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CountStoreHealthWarnings(tt.data); got != tt.want {
				t.Errorf("CountStoreHealthWarnings = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCompareStat(t *testing.T) {
	tests := []struct {
		metric view.MetricName
		a, b   string
		want   float64
	}{
		{view.MetricUserRating, "1.5", "1.4", 0.1},
		{view.MetricFulfillmentSpeed, "1.5d", "2d", 0.5},
		{view.MetricOrderFulfillmentRate, "99.5%", "99.8%", -0.003},
		{view.MetricProductLogisticsRefundRate, "2.0%", "3.0%", 0.01},
	}
	for _, tt := range tests {
		got, err := CompareStat(tt.metric, tt.a, tt.b)
		if err != nil {
			t.Fatalf("CompareStat(%s) failed: %v", tt.metric, err)
		}
		if got != tt.want {
			t.Errorf("CompareStat(%s, %s, %s) = %v, want %v", tt.metric, tt.a, tt.b, got, tt.want)
		}
	}
}

func TestCompareStatErrors(t *testing.T) {
	_, err := CompareStat("unknown", "1", "2")
	var customErr *exception.CustomError
	if !errors.As(err, &customErr) || customErr.Status != http.StatusBadRequest {
		t.Errorf("unknown metric error = %v", err)
	}
	if _, err = CompareStat(view.MetricUserRating, "n/a", "2"); err == nil {
		t.Errorf("expected parse error")
	}
}
