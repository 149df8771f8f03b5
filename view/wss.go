package view

type CommerceMerchantState string

const (
	MerchantStateApproved     CommerceMerchantState = "APPROVED"
	MerchantStatePending      CommerceMerchantState = "PENDING"
	MerchantStatePendingPhone CommerceMerchantState = "PENDING_PHONE"
	MerchantStatePendingEmail CommerceMerchantState = "PENDING_EMAIL"
	MerchantStateDisabled     CommerceMerchantState = "DISABLED"
)

func (s CommerceMerchantState) IsPending() bool {
	return s == MerchantStatePending || s == MerchantStatePendingPhone || s == MerchantStatePendingEmail
}

type Datetime struct {
	Unix     int64  `json:"unix,omitempty"`
	Mmddyyyy string `json:"mmddyyyy,omitempty"`
}

type Timedelta struct {
	Days    float64 `json:"days"`
	Hours   float64 `json:"hours,omitempty"`
	Minutes float64 `json:"minutes,omitempty"`
	Seconds float64 `json:"seconds,omitempty"`
}

type WssStats struct {
	UserRating                 *float64   `json:"userRating"`
	OrderFultillmentRate       *float64   `json:"orderFultillmentRate"`
	ValidTrackingRate          *float64   `json:"validTrackingRate"`
	ProductQualityRefundRate   *float64   `json:"productQualityRefundRate"`
	ProductLogisticsRefundRate *float64   `json:"productLogisticsRefundRate"`
	BadProductRate             *float64   `json:"badProductRate"`
	FulfillmentSpeed           *Timedelta `json:"fulfillmentSpeed"`
	MaturedOrderCount          *int       `json:"maturedOrderCount"`
	NinetyDayOrderCount        *int       `json:"ninetyDayOrderCount"`
	Date                       *Datetime  `json:"date,omitempty"`
}

type WssComplianceStats struct {
	MisleadingTrackingCount       *int      `json:"misleadingTrackingCount"`
	ProhibitedProductCount        *int      `json:"prohibitedProductCount"`
	MisleadingListingCount        *int      `json:"misleadingListingCount"`
	OrderCancellationCount        *int      `json:"orderCancellationCount"`
	UnfulfilledOrderCount         *int      `json:"unfulfilledOrderCount"`
	LateConfirmedFulfillmentCount *int      `json:"lateConfirmedFulfillmentCount"`
	Date                          *Datetime `json:"date,omitempty"`
}

// MerchantWssDetails is the wishSellerStandard block of the merchant platform.
// It is read-only input for scoring.
type MerchantWssDetails struct {
	Level                                 *WssMerchantLevel   `json:"level"`
	PrevLevel                             *WssMerchantLevel   `json:"prevLevel"`
	RawLevel                              *WssMerchantLevel   `json:"rawLevel"`
	Layer1Level                           *WssMerchantLevel   `json:"layer1Level"`
	IsInactiveToBan                       *bool               `json:"isInactiveToBan"`
	Stats                                 *WssStats           `json:"stats"`
	MonthlyUpdateStats                    *WssStats           `json:"monthlyUpdateStats"`
	ComplianceUpdateStats                 *WssComplianceStats `json:"complianceUpdateStats"`
	LastUpdatedStats                      *Datetime           `json:"lastUpdatedStats"`
	LastTierUpdateDate                    *Datetime           `json:"lastTierUpdateDate"`
	NextMonthlyTierUpdateDate             *Datetime           `json:"nextMonthlyTierUpdateDate"`
	EndDateForLastMonthlyUpdateCalcWindow *Datetime           `json:"endDateForLastMonthlyUpdateCalcWindow"`
	PolicyInfractionWindowStartDate       *Datetime           `json:"policyInfractionWindowStartDate"`
	PolicyInfractionWindowEndDate         *Datetime           `json:"policyInfractionWindowEndDate"`
	FulfillmentInfractionWindowStartDate  *Datetime           `json:"fulfillmentInfractionWindowStartDate"`
	FulfillmentInfractionWindowEndDate    *Datetime           `json:"fulfillmentInfractionWindowEndDate"`
}

type MerchantWss struct {
	Id                 string                `json:"id"`
	State              CommerceMerchantState `json:"state"`
	WishSellerStandard *MerchantWssDetails   `json:"wishSellerStandard"`
}

type WssBannerTriggerType string

const (
	TriggerInsufficientMatureOrder    WssBannerTriggerType = "INSUFFICIENT_MATURE_ORDER"
	TriggerNoLongerPlatinum           WssBannerTriggerType = "NO_LONGER_PLATINUM"
	TriggerDidNotUpgradeToPlatinum    WssBannerTriggerType = "DID_NOT_UPGRADE_TO_PLATINUM"
	TriggerBronzeFromInfractions      WssBannerTriggerType = "BRONZE_FROM_INFRACTIONS"
	TriggerUnvalidatedUnratedNoData   WssBannerTriggerType = "UNVALIDATED_UNRATED_NO_DATA"
	TriggerValidatedUnratedNoData     WssBannerTriggerType = "VALIDATED_UNRATED_NO_DATA"
	TriggerUnvalidatedUnratedWithData WssBannerTriggerType = "UNVALIDATED_UNRATED_WITH_DATA"
	TriggerAivAdjustment              WssBannerTriggerType = "AIV_ADJUSTMENT"
	TriggerAccountDisabled            WssBannerTriggerType = "ACCOUNT_DISABLED"
	TriggerAccountAtRisk              WssBannerTriggerType = "ACCOUNT_AT_RISK"
	TriggerBanFromInactivity          WssBannerTriggerType = "BAN_FROM_INACTIVITY"
)

type WssBannerTrigger struct {
	Show bool `json:"show"`
}

type WssBannerTriggers map[WssBannerTriggerType]WssBannerTrigger

type TierUpdatedNotification struct {
	MerchantId string `json:"merchantId"`
}
