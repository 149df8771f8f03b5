package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Netcracker/qubership-merchant-performance-service/client"
	"github.com/Netcracker/qubership-merchant-performance-service/view"
)

func newTestBannerService(platform *fakePlatformClient, impressions *fakeImpressionRepo) *bannerServiceImpl {
	return &bannerServiceImpl{
		platformClient: platform,
		impressionRepo: impressions,
		async:          syncAsync,
	}
}

func TestGetBannersLogsImpressions(t *testing.T) {
	data := makeBannerInitialData(view.MerchantStateApproved)
	platform := &fakePlatformClient{
		bannerData: data,
		bucket:     "control",
		decisions:  map[string]bool{client.PlpDeciderKey: true},
		collection: &view.CollectionBoostParams{ShowPromotionBanner: true},
		profile:    &view.SellerProfileBanner{Title: "Verify your profile", Body: "Upload documents"},
	}
	impressions := &fakeImpressionRepo{}
	svc := newTestBannerService(platform, impressions)

	banners, err := svc.GetBanners(context.Background(), "m1")
	if err != nil {
		t.Fatalf("GetBanners failed: %v", err)
	}
	ids := bannerIds(banners)
	if ids[0] != "NewNavBanner" || ids[1] != "ProductListingPlanBanner" {
		t.Errorf("banners = %v", ids)
	}
	if ids[len(ids)-1] != "CollectionBoostPromoBanner" {
		t.Errorf("collection boost should be last, banners = %v", ids)
	}

	if len(impressions.saved) != len(banners) {
		t.Fatalf("logged %d impressions for %d banners", len(impressions.saved), len(banners))
	}
	for i, imp := range impressions.saved {
		if imp.BannerId != banners[i].Id || imp.Position != i || imp.MerchantId != "m1" {
			t.Errorf("impression %d = %+v", i, imp)
		}
	}
}

func TestLoadBannerStateToleratesFailingSource(t *testing.T) {
	platform := &fakePlatformClient{
		bannerData: makeBannerInitialData(view.MerchantStateApproved),
		boostErr:   errors.New("boom"),
		collection: &view.CollectionBoostParams{ShowPromotionBanner: true},
	}
	svc := newTestBannerService(platform, &fakeImpressionRepo{})

	state, err := svc.LoadBannerState(context.Background(), "m1")
	if err != nil {
		t.Fatalf("LoadBannerState failed: %v", err)
	}
	if state.ProductBoostItems != nil {
		t.Errorf("failed source should give no items")
	}
	if len(state.CollectionBoostItems) != 1 {
		t.Errorf("collection boost items = %d", len(state.CollectionBoostItems))
	}
	if state.CanShowNewNavBanner == nil || !*state.CanShowNewNavBanner {
		t.Errorf("new nav banner flag = %v", state.CanShowNewNavBanner)
	}
}

func TestGetBannersInitialDataError(t *testing.T) {
	platformErr := errors.New("graphql failed")
	platform := &fakePlatformClient{bannerDataErr: platformErr}
	impressions := &fakeImpressionRepo{}
	svc := newTestBannerService(platform, impressions)

	if _, err := svc.GetBanners(context.Background(), "m1"); !errors.Is(err, platformErr) {
		t.Errorf("expected initial data error, got %v", err)
	}
	if n := platform.callCount("GetProductBoostParams"); n != 0 {
		t.Errorf("banner sources should not load without initial data, got %d calls", n)
	}
	if len(impressions.saved) != 0 {
		t.Errorf("nothing should be logged")
	}
}

func TestGetBannersSkipsFailedImpression(t *testing.T) {
	platform := &fakePlatformClient{
		bannerData: makeBannerInitialData(view.MerchantStateApproved),
		bucket:     "control",
		decisions:  map[string]bool{client.PlpDeciderKey: true},
	}
	impressions := &fakeImpressionRepo{failBannerId: "NewNavBanner"}
	svc := newTestBannerService(platform, impressions)

	banners, err := svc.GetBanners(context.Background(), "m1")
	if err != nil {
		t.Fatalf("GetBanners failed: %v", err)
	}
	if len(banners) < 2 || banners[0].Id != "NewNavBanner" {
		t.Fatalf("banners = %v", bannerIds(banners))
	}
	if impressions.attempts != len(banners) {
		t.Errorf("attempted %d impressions for %d banners", impressions.attempts, len(banners))
	}
	if len(impressions.saved) != len(banners)-1 {
		t.Fatalf("saved %d impressions, want %d", len(impressions.saved), len(banners)-1)
	}
	for i, imp := range impressions.saved {
		if imp.BannerId != banners[i+1].Id || imp.Position != i+1 {
			t.Errorf("impression %d = %+v", i, imp)
		}
	}
}
