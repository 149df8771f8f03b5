package service

import (
	"github.com/Netcracker/qubership-merchant-performance-service/view"
)

const (
	BannerOnboardingReviewHeader = "OnboardingReviewHeader"
	BannerBackToOnboarding       = "BackToOnboardingBanner"

	backToOnboardingReasonDormant = "DORMANT"
	tosAgreementStateAgreed       = "AGREED"
	paymentCycleWeekly            = "WEEKLY"
	utmSourcePreorderEmail        = "preorder_email"
)

func always() bool { return true }

func isTrue(b *bool) bool { return b != nil && *b }

func fixedBanner(id string, background string, props map[string]interface{}, shouldShow func() bool) view.Banner {
	return view.Banner{
		Id:             id,
		Component:      id,
		Background:     background,
		ComponentProps: props,
		ShouldShow:     shouldShow,
	}
}

// SelectBanners returns the banners to render, in display priority order.
func SelectBanners(state view.BannerState) []view.Banner {
	data := state.InitialData
	if data == nil || data.CurrentUser == nil || data.CurrentMerchant == nil || data.Payments.CurrentMerchant == nil {
		return []view.Banner{}
	}

	user := data.CurrentUser
	merchant := data.CurrentMerchant
	paymentDetails := data.Payments.CurrentMerchant

	var tos *view.TermsOfService
	if data.Tos != nil {
		tos = data.Tos.TermsOfService
	}
	shouldShowTosBanner := tos != nil && isTrue(tos.CanAccept) &&
		(tos.MerchantTermsOfServiceAgreement == nil || tos.MerchantTermsOfServiceAgreement.State != tosAgreementStateAgreed)
	var tosReleaseDate *view.Datetime
	if tos != nil {
		tosReleaseDate = tos.ReleaseDate
	}

	onboardingCompleted := user.Onboarding != nil && isTrue(user.Onboarding.Completed)
	if onboardingCompleted && merchant.State == view.MerchantStatePending {
		return []view.Banner{fixedBanner(BannerOnboardingReviewHeader, view.BackgroundSurfaceLightest, map[string]interface{}{}, always)}
	}
	if !onboardingCompleted && user.BackToOnboardingReason == backToOnboardingReasonDormant && merchant.State == view.MerchantStatePending {
		return []view.Banner{fixedBanner(BannerBackToOnboarding, view.BackgroundSurfaceLightest, map[string]interface{}{}, always)}
	}

	logProps := func(extra map[string]interface{}) map[string]interface{} {
		props := map[string]interface{}{
			"logParams": map[string]interface{}{"merchant_id": merchant.Id},
		}
		for k, v := range extra {
			props[k] = v
		}
		return props
	}

	var candidates []view.Banner
	candidates = append(candidates,
		fixedBanner("NewNavBanner", view.BackgroundSurfaceLightest, logProps(nil), func() bool {
			return isTrue(state.CanShowNewNavBanner)
		}),
		fixedBanner("TermsUpdateBanner", view.BackgroundSurfaceLightest, logProps(map[string]interface{}{"releaseDate": tosReleaseDate}), func() bool {
			return isTrue(state.CanShowTosBanner) && shouldShowTosBanner
		}),
		fixedBanner("ProductListingPlanBanner", view.BackgroundSurfaceLightest, logProps(nil), func() bool {
			return isTrue(state.CanShowPlpBanner)
		}),
		fixedBanner("DemoVideosBanner", view.BackgroundTextBlack, logProps(nil), always),
		fixedBanner("CustomerServiceProgramBanner", view.BackgroundSurfaceLightest, logProps(nil), always),
		fixedBanner("RestrictedProductBanner", view.BackgroundSurfaceLightest, logProps(nil), func() bool {
			return merchant.CanAccessRestrictedProduct
		}),
	)
	candidates = append(candidates, state.SellerProfileItems...)
	candidates = append(candidates,
		fixedBanner("SizeChartBanner", view.BackgroundSurfaceLightest, logProps(nil), func() bool {
			return user.Gating.ShowSizeChartBanner
		}),
		fixedBanner("EarlyPaymentBanner", view.BackgroundSurfaceLightest, logProps(map[string]interface{}{"hasPolicy": merchant.CanAccessEarlyPayment}), always),
		fixedBanner("StoreApprovedBanner", view.BackgroundSurfaceLightest, logProps(map[string]interface{}{"isPreOrderMerchant": user.UtmSource == utmSourcePreorderEmail}), func() bool {
			return merchant.HasReducedRevShare
		}),
	)
	candidates = append(candidates, state.ProductBoostItems...)
	candidates = append(candidates,
		fixedBanner("NonCNProductUploadBanner", "#1d4bea", logProps(nil), func() bool {
			return !merchant.IsCnMerchant
		}),
		fixedBanner("PriceDropBanner", view.BackgroundSurfaceLightest, logProps(nil), func() bool {
			return merchant.CanAccessPriceDrop && merchant.HasActivePriceDropOffers
		}),
		fixedBanner("PriceDropMarketingCampaignBanner", view.BackgroundPrimary, logProps(nil), func() bool {
			return merchant.CanAccessPriceDrop && !merchant.IsCnMerchant
		}),
		fixedBanner("FBSIntroductionBanner", view.BackgroundPrimary, logProps(nil), always),
		fixedBanner("ProductUploadBanner", view.BackgroundPrimaryLight, logProps(nil), func() bool {
			return merchant.IsCnMerchant && merchant.State == view.MerchantStateApproved
		}),
		fixedBanner("FBWSignupBanner", "#cef2fd", logProps(nil), func() bool {
			return !user.HasSeenFbwTos && merchant.State == view.MerchantStateApproved
		}),
		fixedBanner("WeeklyDisbUpgradeBanner", view.BackgroundSurfaceLightest, logProps(nil), func() bool {
			return paymentDetails.FullyEnrolledInPaymentCycle && paymentDetails.PaymentCycle == paymentCycleWeekly
		}),
		fixedBanner("WeeklyDisbRequiredUpdateBanner", view.BackgroundSurfaceLightest, logProps(nil), func() bool {
			return !paymentDetails.FullyEnrolledInPaymentCycle && paymentDetails.PaymentCycle == paymentCycleWeekly
		}),
	)
	candidates = append(candidates, state.CollectionBoostItems...)

	result := make([]view.Banner, 0, len(candidates))
	for _, b := range candidates {
		if b.ShouldShow == nil || b.ShouldShow() {
			result = append(result, b)
		}
	}
	return result
}

func MakeProductBoostBanners(params *view.ProductBoostParams, merchantId string, merchantState view.CommerceMerchantState) []view.Banner {
	if params == nil {
		return nil
	}
	logParams := func() map[string]interface{} {
		return map[string]interface{}{"merchant_id": merchantId}
	}

	promoMessage := params.PromoMessage
	promoBackground := view.BackgroundSurfaceLightest
	if bg, ok := promoMessage["background_color"].(string); ok && bg != "" {
		promoBackground = bg
	}
	promotionId, _ := promoMessage["promotion_id"].(string)
	var promoProp interface{} = false
	if len(promoMessage) > 0 {
		promoProp = promoMessage
	}

	showRefundAssurance := params.RefundAssurance.ShowRefundAssuranceBanner
	result := []view.Banner{
		{
			Id:             "ProductBoostRefundAssuranceBanner",
			Component:      "ProductBoostRefundAssuranceBanner",
			Background:     view.BackgroundSurfaceLightest,
			ComponentProps: map[string]interface{}{"logParams": logParams()},
			ShouldShow:     func() bool { return showRefundAssurance },
		},
		{
			Id:             "ProductBoostFBWIncentiveCampaignBanner",
			Component:      "ProductBoostFBWIncentiveCampaignBanner",
			Background:     "#376EEE",
			ComponentProps: map[string]interface{}{"logParams": logParams()},
			ShouldShow:     func() bool { return params.ShowFbwIncentiveBanner },
		},
		{
			Id:         "ProductBoostPromoBanner",
			Component:  "ProductBoostPromoBanner",
			Background: promoBackground,
			ComponentProps: map[string]interface{}{
				"promoMessage": promoProp,
				"logParams": map[string]interface{}{
					"merchant_id":  merchantId,
					"promotion_id": promotionId,
				},
			},
			ShouldShow: func() bool {
				return merchantState == view.MerchantStateApproved && !(showRefundAssurance && len(promoMessage) == 0)
			},
		},
	}
	for _, campaign := range params.AutomatedCampaigns {
		campaignId, _ := campaign["campaign_id"].(string)
		result = append(result, view.Banner{
			Id:         campaignId,
			Component:  "ProductBoostAutomatedCampaignBanner",
			Background: "#cef2fd",
			ComponentProps: map[string]interface{}{
				"campaign":  campaign,
				"logParams": logParams(),
			},
			ShouldShow: always,
		})
	}
	return result
}

func MakeCollectionBoostBanners(params *view.CollectionBoostParams) []view.Banner {
	if params == nil {
		return nil
	}
	show := params.ShowPromotionBanner
	return []view.Banner{{
		Id:         "CollectionBoostPromoBanner",
		Component:  "CollectionBoostPromoBanner",
		Background: "#cef2fd",
		ShouldShow: func() bool { return show },
	}}
}

func MakeSellerProfileBanners(profile *view.SellerProfileBanner, merchantId string) []view.Banner {
	if profile == nil || profile.Title == "" || profile.Body == "" {
		return nil
	}
	return []view.Banner{{
		Id:         "SellerProfileBanner",
		Component:  "SellerProfileBanner",
		Background: view.BackgroundSurfaceLightest,
		ComponentProps: map[string]interface{}{
			"title":     profile.Title,
			"body":      profile.Body,
			"logParams": map[string]interface{}{"merchant_id": merchantId},
		},
		ShouldShow: always,
	}}
}
