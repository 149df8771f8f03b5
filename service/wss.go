package service

import (
	"context"
	"net/http"
	"time"

	"github.com/Netcracker/qubership-merchant-performance-service/client"
	"github.com/Netcracker/qubership-merchant-performance-service/entity"
	"github.com/Netcracker/qubership-merchant-performance-service/exception"
	"github.com/Netcracker/qubership-merchant-performance-service/repository"
	"github.com/Netcracker/qubership-merchant-performance-service/view"
	log "github.com/sirupsen/logrus"
)

type WssService interface {
	GetMerchantWss(ctx context.Context, merchantId string) (*view.MerchantWss, error)
	GetScoreSummary(ctx context.Context, merchantId string) (*view.MerchantScoreSummary, error)
	GetBannerTriggers(ctx context.Context, merchantId string) (view.WssBannerTriggers, error)
	EvictMerchant(merchantId string) error
}

func NewWssService(platformClient client.MerchantPlatformClient, cache WssCache, snapshotRepo repository.WssSnapshotRepository, cacheTTL time.Duration) WssService {
	return &wssServiceImpl{
		platformClient: platformClient,
		cache:          cache,
		snapshotRepo:   snapshotRepo,
		cacheTTL:       cacheTTL,
		now:            time.Now,
	}
}

type wssServiceImpl struct {
	platformClient client.MerchantPlatformClient
	cache          WssCache
	snapshotRepo   repository.WssSnapshotRepository
	cacheTTL       time.Duration
	now            func() time.Time
}

// GetMerchantWss reads through the cache. The last stored snapshot is served when the platform fails.
func (w wssServiceImpl) GetMerchantWss(ctx context.Context, merchantId string) (*view.MerchantWss, error) {
	cached, err := w.cache.Get(merchantId)
	if err != nil {
		log.Errorf("Failed to read WSS details of merchant %s from cache: %v", merchantId, err)
	}
	if cached != nil {
		log.Debugf("WSS details of merchant %s served from cache", merchantId)
		return cached, nil
	}

	merchant, err := w.platformClient.GetMerchantWss(ctx, merchantId)
	if err != nil {
		snapshot, snapErr := w.snapshotRepo.GetSnapshot(ctx, merchantId)
		if snapErr != nil {
			log.Errorf("Failed to read WSS snapshot of merchant %s: %v", merchantId, snapErr)
		}
		if snapshot == nil {
			return nil, err
		}
		log.Warnf("Merchant platform failed for merchant %s, serving snapshot from %s: %v", merchantId, snapshot.FetchedAt, err)
		result := entity.MakeMerchantWssView(*snapshot)
		return &result, nil
	}
	if merchant == nil {
		return nil, &exception.CustomError{
			Status:  http.StatusNotFound,
			Code:    exception.EntityNotFound,
			Message: exception.EntityNotFoundMsg,
			Params:  map[string]interface{}{"entity": "merchant", "id": merchantId},
		}
	}

	// Stored under the requested id, which is the key every read and eviction uses.
	if merchant.Id == "" {
		merchant.Id = merchantId
	}
	if err = w.snapshotRepo.SaveSnapshot(ctx, entity.MakeWssSnapshotEntity(merchantId, *merchant, w.now())); err != nil {
		log.Errorf("Failed to save WSS snapshot of merchant %s: %v", merchantId, err)
	}
	if err = w.cache.Put(merchantId, *merchant, w.cacheTTL); err != nil {
		log.Errorf("Failed to cache WSS details of merchant %s: %v", merchantId, err)
	}
	return merchant, nil
}

func (w wssServiceImpl) GetScoreSummary(ctx context.Context, merchantId string) (*view.MerchantScoreSummary, error) {
	merchant, err := w.GetMerchantWss(ctx, merchantId)
	if err != nil {
		return nil, err
	}
	details := merchant.WishSellerStandard
	if details == nil {
		return nil, &exception.CustomError{
			Status:  http.StatusNotFound,
			Code:    exception.WssDetailsNotAvailable,
			Message: exception.WssDetailsNotAvailableMsg,
			Params:  map[string]interface{}{"merchantId": merchantId},
		}
	}
	summary := &view.MerchantScoreSummary{
		MerchantId: merchant.Id,
		Level:      details.Level,
		PrevLevel:  details.PrevLevel,
		Metrics:    ScoreAllMetrics(details.Stats),
	}
	if details.LastUpdatedStats != nil {
		summary.LastUpdatedStats = details.LastUpdatedStats.Mmddyyyy
	}
	return summary, nil
}

func (w wssServiceImpl) GetBannerTriggers(ctx context.Context, merchantId string) (view.WssBannerTriggers, error) {
	merchant, err := w.GetMerchantWss(ctx, merchantId)
	if err != nil {
		return nil, err
	}
	return GetWssBannerTriggers(merchant.State, merchant.WishSellerStandard), nil
}

func (w wssServiceImpl) EvictMerchant(merchantId string) error {
	return w.cache.Evict(merchantId)
}
