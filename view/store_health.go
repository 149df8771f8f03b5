package view

type PolicyWarnings struct {
	MisleadingProducts     *int `json:"misleadingProducts"`
	IpInfringementProducts *int `json:"ipInfringementProducts"`
	ProhibitedProducts     *int `json:"prohibitedProducts"`
}

type TrackingStats struct {
	ValidTrackingRate            *float64 `json:"validTrackingRate"`
	LateConfirmedFulfillmentRate *float64 `json:"lateConfirmedFulfillmentRate"`
}

type CsStats struct {
	LateResponseRate30d       *float64 `json:"lateResponseRate30d"`
	CustomerSatisfactionScore *float64 `json:"customerSatisfactionScore"`
}

type RatingStats struct {
	AverageProductRating *float64 `json:"averageProductRating"`
}

type MerchantStoreStats struct {
	Tracking *TrackingStats `json:"tracking"`
	Cs       *CsStats       `json:"cs"`
	Rating   *RatingStats   `json:"rating"`
}

type HealthCurrentMerchant struct {
	Id         string                `json:"id"`
	State      CommerceMerchantState `json:"state"`
	StoreStats *MerchantStoreStats   `json:"storeStats"`
}

type PerformanceHealthInitialData struct {
	Policy          *PolicyWarnings       `json:"policy"`
	CurrentMerchant HealthCurrentMerchant `json:"currentMerchant"`
}

type StoreHealth struct {
	MerchantId   string `json:"merchantId"`
	WarningCount int    `json:"warningCount"`
}
