package service

import (
	"github.com/Netcracker/qubership-merchant-performance-service/view"
)

const (
	insufficientNinetyDayOrderCount = 50
	platinumMaturedOrderCount       = 100
)

// intOrZero reads a missing count as zero.
func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func CountInfractionsImpactTier(stats *view.WssComplianceStats) int {
	if stats == nil {
		return 0
	}
	return intOrZero(stats.MisleadingListingCount) +
		intOrZero(stats.ProhibitedProductCount) +
		intOrZero(stats.MisleadingTrackingCount)
}

func sameLevel(a *view.WssMerchantLevel, b *view.WssMerchantLevel) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func isLevel(l *view.WssMerchantLevel, expected view.WssMerchantLevel) bool {
	return l != nil && *l == expected
}

func GetWssBannerTriggers(state view.CommerceMerchantState, wssDetails *view.MerchantWssDetails) view.WssBannerTriggers {
	details := wssDetails
	if details == nil {
		details = &view.MerchantWssDetails{}
	}
	level := details.Level
	prevLevel := details.PrevLevel
	stats := details.Stats
	monthly := details.MonthlyUpdateStats

	banned := IsBanned(state)
	isUnrated := level == nil || *level == view.LevelUnassessed
	isPending := state.IsPending()

	var hasNoOrderData bool
	if stats == nil {
		hasNoOrderData = true
	} else {
		hasNoOrderData = stats.NinetyDayOrderCount == nil && stats.MaturedOrderCount == nil
	}

	lowMaturedOrders := stats != nil && intOrZero(stats.MaturedOrderCount) < platinumMaturedOrderCount &&
		monthly != nil && intOrZero(monthly.MaturedOrderCount) < platinumMaturedOrderCount

	allPlatinum := CountMetrics(stats, func(d view.ScoreData) bool {
		return isLevel(d.CurrentLevel, view.LevelPlatinum)
	}) == len(MetricScorers)

	inactiveToBan := details.IsInactiveToBan != nil && *details.IsInactiveToBan

	rawDiffers := !sameLevel(details.RawLevel, details.Layer1Level)

	return view.WssBannerTriggers{
		view.TriggerBanFromInactivity: {Show: IsAtRisk(level) && inactiveToBan},
		view.TriggerAccountDisabled:   {Show: banned},
		view.TriggerAccountAtRisk:     {Show: IsAtRisk(level)},
		view.TriggerInsufficientMatureOrder: {Show: !banned &&
			sameLevel(prevLevel, level) &&
			monthly != nil && stats != nil &&
			intOrZero(monthly.NinetyDayOrderCount) < insufficientNinetyDayOrderCount &&
			intOrZero(stats.NinetyDayOrderCount) < insufficientNinetyDayOrderCount},
		view.TriggerNoLongerPlatinum: {Show: !banned &&
			lowMaturedOrders &&
			isLevel(prevLevel, view.LevelPlatinum) &&
			!isLevel(level, view.LevelPlatinum)},
		view.TriggerDidNotUpgradeToPlatinum: {Show: !banned &&
			lowMaturedOrders &&
			CountInfractionsImpactTier(details.ComplianceUpdateStats) == 0 &&
			allPlatinum},
		view.TriggerBronzeFromInfractions: {Show: !banned &&
			isLevel(level, view.LevelBronze) &&
			LevelGt(details.Layer1Level, level)},
		view.TriggerUnvalidatedUnratedNoData:   {Show: !banned && isUnrated && isPending && hasNoOrderData},
		view.TriggerValidatedUnratedNoData:     {Show: !banned && isUnrated && !isPending && hasNoOrderData},
		view.TriggerUnvalidatedUnratedWithData: {Show: !banned && isUnrated && isPending && !hasNoOrderData},
		view.TriggerAivAdjustment:              {Show: rawDiffers && LevelGt(details.Layer1Level, details.RawLevel)},
	}
}
