package service

import (
	"testing"

	"github.com/Netcracker/qubership-merchant-performance-service/utils"
	"github.com/Netcracker/qubership-merchant-performance-service/view"
)

func levelOf(l *view.WssMerchantLevel) string {
	if l == nil {
		return "<nil>"
	}
	return string(*l)
}

func TestGetLevel(t *testing.T) {
	tests := []struct {
		value      float64
		thresholds view.Thresholds
		want       view.WssMerchantLevel
	}{
		{4.4, userRatingThresholds, view.LevelGold},
		{3.4, userRatingThresholds, view.LevelBan},
		{3.5, userRatingThresholds, view.LevelBronze},
		{4.0, userRatingThresholds, view.LevelSilver},
		{4.5, userRatingThresholds, view.LevelPlatinum},
		{5.0, userRatingThresholds, view.LevelPlatinum},
		{0.999, orderFulfillmentRateThresholds, view.LevelPlatinum},
		{0.998, orderFulfillmentRateThresholds, view.LevelPlatinum},
		{0.9979, orderFulfillmentRateThresholds, view.LevelGold},
		{0.96, orderFulfillmentRateThresholds, view.LevelBan},
	}
	for _, tt := range tests {
		if got := GetLevel(tt.value, tt.thresholds); got != tt.want {
			t.Errorf("GetLevel(%v, %v) = %s, want %s", tt.value, tt.thresholds, got, tt.want)
		}
	}
}

func TestGetLevelDesc(t *testing.T) {
	tests := []struct {
		value      float64
		thresholds view.Thresholds
		want       view.WssMerchantLevel
	}{
		{0.03, logisticsRefundRateThresholds, view.LevelGold},
		{0.11, logisticsRefundRateThresholds, view.LevelBan},
		{0.1, logisticsRefundRateThresholds, view.LevelBronze},
		{0.08, logisticsRefundRateThresholds, view.LevelSilver},
		{0.04, logisticsRefundRateThresholds, view.LevelGold},
		{0.02, logisticsRefundRateThresholds, view.LevelPlatinum},
		{0, logisticsRefundRateThresholds, view.LevelPlatinum},
		{1.0, fulfillmentSpeedThresholds, view.LevelPlatinum},
		{1.1, fulfillmentSpeedThresholds, view.LevelGold},
		{6, fulfillmentSpeedThresholds, view.LevelBan},
	}
	for _, tt := range tests {
		if got := GetLevelDesc(tt.value, tt.thresholds); got != tt.want {
			t.Errorf("GetLevelDesc(%v, %v) = %s, want %s", tt.value, tt.thresholds, got, tt.want)
		}
	}
}

func TestClassifyIsMonotonic(t *testing.T) {
	for _, m := range ListMetricThresholds() {
		lo, hi := m.Thresholds[0], m.Thresholds[0]
		for _, v := range m.Thresholds {
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
		span := hi - lo
		prev := 0
		for i := 0; i <= 400; i++ {
			v := lo - span/4 + float64(i)*span*1.5/400
			rank := Classify(v, m.Thresholds, m.Direction).Rank()
			if i > 0 {
				if m.Direction == view.DirectionAscending && rank < prev {
					t.Errorf("%s: tier went down at %v", m.Metric, v)
				}
				if m.Direction == view.DirectionDescending && rank > prev {
					t.Errorf("%s: tier went up at %v", m.Metric, v)
				}
			}
			prev = rank
		}
	}
}

func TestClassifyPlatinumBoundary(t *testing.T) {
	for _, m := range ListMetricThresholds() {
		if m.Direction != view.DirectionAscending {
			continue
		}
		t3 := m.Thresholds[3]
		if got := Classify(t3, m.Thresholds, m.Direction); got != view.LevelPlatinum {
			t.Errorf("%s: Classify(%v) = %s, want PLATINUM", m.Metric, t3, got)
		}
		if got := Classify(t3-1e-9, m.Thresholds, m.Direction); got == view.LevelPlatinum {
			t.Errorf("%s: Classify(%v) is PLATINUM", m.Metric, t3-1e-9)
		}
	}
}

func TestComputeGoal(t *testing.T) {
	tests := []struct {
		name       string
		score      *float64
		thresholds view.Thresholds
		direction  view.MetricDirection
		wantLevel  string
		wantScore  float64
	}{
		{"at best", utils.FloatPtr(1.0), orderFulfillmentRateThresholds, view.DirectionAscending, "<nil>", 1},
		{"unassessed", nil, orderFulfillmentRateThresholds, view.DirectionAscending, "PLATINUM", 0.998},
		{"unassessed desc", nil, logisticsRefundRateThresholds, view.DirectionDescending, "PLATINUM", 0.02},
		{"gold to platinum", utils.FloatPtr(4.4), userRatingThresholds, view.DirectionAscending, "PLATINUM", 4.5},
		{"platinum not perfect", utils.FloatPtr(4.9), userRatingThresholds, view.DirectionAscending, "PLATINUM", 5.0},
		{"ban to bronze", utils.FloatPtr(0), userRatingThresholds, view.DirectionAscending, "BRONZE", 3.5},
		{"desc silver to gold", utils.FloatPtr(0.05), logisticsRefundRateThresholds, view.DirectionDescending, "GOLD", 0.04},
		{"desc at best", utils.FloatPtr(0), logisticsRefundRateThresholds, view.DirectionDescending, "<nil>", 0},
		{"desc platinum not perfect", utils.FloatPtr(0.001), logisticsRefundRateThresholds, view.DirectionDescending, "PLATINUM", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			goal := ComputeGoal(tt.score, tt.thresholds, tt.direction)
			if levelOf(goal.Level) != tt.wantLevel || goal.Score != tt.wantScore {
				t.Errorf("ComputeGoal = {%s %v}, want {%s %v}", levelOf(goal.Level), goal.Score, tt.wantLevel, tt.wantScore)
			}
			again := ComputeGoal(tt.score, tt.thresholds, tt.direction)
			if levelOf(again.Level) != levelOf(goal.Level) || again.Score != goal.Score {
				t.Errorf("ComputeGoal is not deterministic")
			}
		})
	}
}

func TestFormatScore(t *testing.T) {
	data := FormatScore(ScoreArgs{
		CurrentScore:  utils.FloatPtr(1),
		Thresholds:    orderFulfillmentRateThresholds,
		DisplayFormat: formatPercent,
		Direction:     view.DirectionAscending,
	})
	if data.GoalScoreDisplay != "100%" {
		t.Errorf("goal display = %q, want 100%%", data.GoalScoreDisplay)
	}
	if data.CurrentScoreDisplay == nil || *data.CurrentScoreDisplay != "100.0%" {
		t.Errorf("current display = %v", data.CurrentScoreDisplay)
	}
	if levelOf(data.CurrentLevel) != "PLATINUM" || data.GoalLevel != nil {
		t.Errorf("levels = %s / %s", levelOf(data.CurrentLevel), levelOf(data.GoalLevel))
	}

	empty := FormatScore(ScoreArgs{
		Thresholds:    userRatingThresholds,
		DisplayFormat: formatDecimal,
		Direction:     view.DirectionAscending,
	})
	if empty.CurrentLevel != nil || empty.CurrentScoreDisplay != nil {
		t.Errorf("missing score should stay unassessed: %+v", empty)
	}
	if levelOf(empty.GoalLevel) != "PLATINUM" || empty.GoalScoreDisplay != "4.5" {
		t.Errorf("goal = %s %s", levelOf(empty.GoalLevel), empty.GoalScoreDisplay)
	}
}

func TestLevelGt(t *testing.T) {
	if !LevelGt(view.LevelGold.Ptr(), view.LevelBronze.Ptr()) {
		t.Errorf("GOLD should be greater than BRONZE")
	}
	if LevelGt(view.LevelBan.Ptr(), view.LevelUnassessed.Ptr()) == false {
		t.Errorf("BAN should be greater than UNASSESSED")
	}
	if LevelGt(nil, view.LevelBronze.Ptr()) || LevelGt(view.LevelGold.Ptr(), nil) {
		t.Errorf("nil levels never compare greater")
	}
	empty := view.WssMerchantLevel("")
	if LevelGt(view.LevelGold.Ptr(), &empty) {
		t.Errorf("empty levels never compare greater")
	}
}

func TestRiskHelpers(t *testing.T) {
	if !IsAtRisk(view.LevelBan.Ptr()) || IsAtRisk(view.LevelBronze.Ptr()) || IsAtRisk(nil) {
		t.Errorf("IsAtRisk is true only for BAN")
	}
	if !IsBanned(view.MerchantStateDisabled) || IsBanned(view.MerchantStateApproved) {
		t.Errorf("IsBanned is true only for DISABLED")
	}
}

func TestListMetricThresholdsReturnsCopies(t *testing.T) {
	listed := ListMetricThresholds()
	for i := range listed {
		listed[i].Thresholds[0] = -1
	}
	for _, m := range ListMetricThresholds() {
		if m.Thresholds[0] == -1 {
			t.Errorf("%s: table changed through returned value", m.Metric)
		}
	}
	if userRatingThresholds[0] != 3.5 {
		t.Errorf("userRatingThresholds = %v", userRatingThresholds)
	}
}
