package service

import (
	"context"
	"time"

	"github.com/Netcracker/qubership-merchant-performance-service/client"
	"github.com/Netcracker/qubership-merchant-performance-service/entity"
	"github.com/Netcracker/qubership-merchant-performance-service/repository"
	"github.com/Netcracker/qubership-merchant-performance-service/secctx"
	"github.com/Netcracker/qubership-merchant-performance-service/utils"
	"github.com/Netcracker/qubership-merchant-performance-service/view"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const newNavTreatmentBucket = "treatment"

type BannerService interface {
	GetBanners(ctx context.Context, merchantId string) ([]view.Banner, error)
	LoadBannerState(ctx context.Context, merchantId string) (*view.BannerState, error)
}

func NewBannerService(platformClient client.MerchantPlatformClient, impressionRepo repository.BannerImpressionRepository) BannerService {
	return &bannerServiceImpl{
		platformClient: platformClient,
		impressionRepo: impressionRepo,
		async:          utils.SafeAsync,
	}
}

type bannerServiceImpl struct {
	platformClient client.MerchantPlatformClient
	impressionRepo repository.BannerImpressionRepository
	async          func(func())
}

func (b bannerServiceImpl) GetBanners(ctx context.Context, merchantId string) ([]view.Banner, error) {
	state, err := b.LoadBannerState(ctx, merchantId)
	if err != nil {
		return nil, err
	}
	banners := SelectBanners(*state)

	userId := secctx.GetUserId(ctx)
	impressions := entity.MakeBannerImpressionEntities(merchantId, userId, banners, time.Now())
	b.async(func() {
		b.logImpressions(merchantId, impressions)
	})
	return banners, nil
}

// logImpressions writes every impression on its own, a failed row does not drop the others.
func (b bannerServiceImpl) logImpressions(merchantId string, impressions []entity.BannerImpression) {
	failed := 0
	for _, imp := range impressions {
		if err := b.impressionRepo.SaveImpression(context.Background(), imp); err != nil {
			log.Errorf("Failed to log impression of banner %s for merchant %s: %v", imp.BannerId, merchantId, err)
			failed++
		}
	}
	if failed > 0 {
		log.Warnf("Logged %d of %d banner impressions of merchant %s", len(impressions)-failed, len(impressions), merchantId)
	}
}

// LoadBannerState fetches the initial data first, then every other banner source concurrently.
// A failing source contributes nothing.
func (b bannerServiceImpl) LoadBannerState(ctx context.Context, merchantId string) (*view.BannerState, error) {
	initialData, err := b.platformClient.GetBannerInitialData(ctx, merchantId)
	if err != nil {
		return nil, err
	}
	state := &view.BannerState{InitialData: initialData}
	if initialData == nil {
		return state, nil
	}

	logMerchantId := merchantId
	var merchantState view.CommerceMerchantState
	if initialData.CurrentMerchant != nil {
		if initialData.CurrentMerchant.Id != "" {
			logMerchantId = initialData.CurrentMerchant.Id
		}
		merchantState = initialData.CurrentMerchant.State
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		params, err := b.platformClient.GetProductBoostParams(gctx, merchantId)
		if err != nil {
			log.Errorf("Failed to load product boost banners of merchant %s: %v", merchantId, err)
			return nil
		}
		state.ProductBoostItems = MakeProductBoostBanners(params, logMerchantId, merchantState)
		return nil
	})
	g.Go(func() error {
		profile, err := b.platformClient.GetSellerProfileBanner(gctx, merchantId)
		if err != nil {
			log.Errorf("Failed to load seller profile banner of merchant %s: %v", merchantId, err)
			return nil
		}
		state.SellerProfileItems = MakeSellerProfileBanners(profile, logMerchantId)
		return nil
	})
	g.Go(func() error {
		params, err := b.platformClient.GetCollectionBoostParams(gctx, merchantId)
		if err != nil {
			log.Errorf("Failed to load collection boost banners of merchant %s: %v", merchantId, err)
			return nil
		}
		state.CollectionBoostItems = MakeCollectionBoostBanners(params)
		return nil
	})
	g.Go(func() error {
		bucket, err := b.platformClient.GetExperimentBucket(gctx, merchantId, client.NewNavExperiment)
		if err != nil {
			log.Errorf("Failed to get %s bucket of merchant %s: %v", client.NewNavExperiment, merchantId, err)
		}
		var optedIn *bool
		if initialData.CurrentUser != nil {
			optedIn = initialData.CurrentUser.UiState.Bool
		}
		state.CanShowNewNavBanner = utils.BoolPtr(canShowNewNavBanner(optedIn, bucket))
		return nil
	})
	g.Go(func() error {
		decision, err := b.platformClient.GetDeciderKeyDecision(gctx, merchantId, client.PlpDeciderKey)
		if err != nil {
			log.Errorf("Failed to get decider key %s of merchant %s: %v", client.PlpDeciderKey, merchantId, err)
			return nil
		}
		state.CanShowPlpBanner = utils.BoolPtr(decision)
		return nil
	})
	g.Go(func() error {
		decision, err := b.platformClient.GetDeciderKeyDecision(gctx, merchantId, client.TosDeciderKey)
		if err != nil {
			log.Errorf("Failed to get decider key %s of merchant %s: %v", client.TosDeciderKey, merchantId, err)
			return nil
		}
		state.CanShowTosBanner = utils.BoolPtr(decision)
		return nil
	})
	if err = g.Wait(); err != nil {
		return nil, err
	}
	return state, nil
}

// canShowNewNavBanner is false once the user switched to the new navigation,
// either by opting in or, with no explicit choice, by the experiment treatment.
func canShowNewNavBanner(optedIn *bool, bucket string) bool {
	hasSwitchedNav := (optedIn != nil && *optedIn) || (optedIn == nil && bucket == newNavTreatmentBucket)
	return !hasSwitchedNav
}
