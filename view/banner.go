package view

// Theme color tokens resolved by the renderer.
const (
	BackgroundSurfaceLightest = "surfaceLightest"
	BackgroundTextBlack       = "textBlack"
	BackgroundPrimary         = "primary"
	BackgroundPrimaryLight    = "primaryLight"
)

type Banner struct {
	Id             string                 `json:"id"`
	Component      string                 `json:"component"`
	Background     string                 `json:"background"`
	ComponentProps map[string]interface{} `json:"componentProps,omitempty"`
	ShouldShow     func() bool            `json:"-"`
}

type Onboarding struct {
	Completed *bool `json:"completed"`
}

type UserGating struct {
	ShowSizeChartBanner bool `json:"showSizeChartBanner"`
}

type UserUiState struct {
	Bool *bool `json:"bool"`
}

type BannerCurrentUser struct {
	UtmSource              string      `json:"utmSource"`
	Onboarding             *Onboarding `json:"onboarding"`
	HasSeenFbwTos          bool        `json:"hasSeenFbwTos"`
	BackToOnboardingReason string      `json:"backToOnboardingReason"`
	Gating                 UserGating  `json:"gating"`
	UiState                UserUiState `json:"uiState"`
}

type BannerCurrentMerchant struct {
	Id                         string                `json:"id"`
	State                      CommerceMerchantState `json:"state"`
	IsCnMerchant               bool                  `json:"isCnMerchant"`
	CanAccessPriceDrop         bool                  `json:"canAccessPriceDrop"`
	HasReducedRevShare         bool                  `json:"hasReducedRevShare"`
	CanAccessEarlyPayment      bool                  `json:"canAccessEarlyPayment"`
	HasActivePriceDropOffers   bool                  `json:"hasActivePriceDropOffers"`
	CanAccessRestrictedProduct bool                  `json:"canAccessRestrictedProduct"`
}

type PaymentDetails struct {
	FullyEnrolledInPaymentCycle bool   `json:"fullyEnrolledInPaymentCycle"`
	PaymentCycle                string `json:"paymentCycle"`
}

type BannerPayments struct {
	CurrentMerchant *PaymentDetails `json:"currentMerchant"`
}

type TosAgreement struct {
	State string `json:"state"`
}

type TermsOfService struct {
	CanAccept                       *bool         `json:"canAccept"`
	ReleaseDate                     *Datetime     `json:"releaseDate"`
	MerchantTermsOfServiceAgreement *TosAgreement `json:"merchantTermsOfServiceAgreement"`
}

type BannerTos struct {
	TermsOfService *TermsOfService `json:"termsOfService"`
}

type BannerInitialData struct {
	CurrentUser     *BannerCurrentUser     `json:"currentUser"`
	CurrentMerchant *BannerCurrentMerchant `json:"currentMerchant"`
	Payments        BannerPayments         `json:"payments"`
	Tos             *BannerTos             `json:"tos"`
}

type RefundAssurance struct {
	ShowRefundAssuranceBanner bool `json:"show_refund_assurance_banner"`
}

type ProductBoostParams struct {
	RefundAssurance        RefundAssurance          `json:"refund_assurance"`
	ShowFbwIncentiveBanner bool                     `json:"show_fbw_incentive_banner"`
	PromoMessage           map[string]interface{}   `json:"promo_message"`
	AutomatedCampaigns     []map[string]interface{} `json:"automated_campaigns"`
}

type CollectionBoostParams struct {
	ShowPromotionBanner bool `json:"show_promotion_banner"`
}

type SellerProfileBanner struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// BannerState is a resolved snapshot of everything banner selection reads.
type BannerState struct {
	InitialData          *BannerInitialData
	CanShowNewNavBanner  *bool
	CanShowPlpBanner     *bool
	CanShowTosBanner     *bool
	SellerProfileItems   []Banner
	ProductBoostItems    []Banner
	CollectionBoostItems []Banner
}
