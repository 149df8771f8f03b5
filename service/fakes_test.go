package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/Netcracker/qubership-merchant-performance-service/entity"
	"github.com/Netcracker/qubership-merchant-performance-service/view"
)

type fakePlatformClient struct {
	mu    sync.Mutex
	calls map[string]int

	merchant    *view.MerchantWss
	merchantErr error

	health    *view.PerformanceHealthInitialData
	healthErr error

	bannerData    *view.BannerInitialData
	bannerDataErr error

	bucket       string
	decisions    map[string]bool
	productBoost *view.ProductBoostParams
	boostErr     error
	collection   *view.CollectionBoostParams
	profile      *view.SellerProfileBanner
}

func (f *fakePlatformClient) count(method string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.calls == nil {
		f.calls = map[string]int{}
	}
	f.calls[method]++
}

func (f *fakePlatformClient) callCount(method string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[method]
}

func (f *fakePlatformClient) GetMerchantWss(ctx context.Context, merchantId string) (*view.MerchantWss, error) {
	f.count("GetMerchantWss")
	return f.merchant, f.merchantErr
}

func (f *fakePlatformClient) GetPerformanceHealthData(ctx context.Context, merchantId string) (*view.PerformanceHealthInitialData, error) {
	f.count("GetPerformanceHealthData")
	return f.health, f.healthErr
}

func (f *fakePlatformClient) GetBannerInitialData(ctx context.Context, merchantId string) (*view.BannerInitialData, error) {
	f.count("GetBannerInitialData")
	return f.bannerData, f.bannerDataErr
}

func (f *fakePlatformClient) GetExperimentBucket(ctx context.Context, merchantId string, experiment string) (string, error) {
	f.count("GetExperimentBucket")
	return f.bucket, nil
}

func (f *fakePlatformClient) GetDeciderKeyDecision(ctx context.Context, merchantId string, key string) (bool, error) {
	f.count("GetDeciderKeyDecision")
	return f.decisions[key], nil
}

func (f *fakePlatformClient) GetProductBoostParams(ctx context.Context, merchantId string) (*view.ProductBoostParams, error) {
	f.count("GetProductBoostParams")
	return f.productBoost, f.boostErr
}

func (f *fakePlatformClient) GetCollectionBoostParams(ctx context.Context, merchantId string) (*view.CollectionBoostParams, error) {
	f.count("GetCollectionBoostParams")
	return f.collection, nil
}

func (f *fakePlatformClient) GetSellerProfileBanner(ctx context.Context, merchantId string) (*view.SellerProfileBanner, error) {
	f.count("GetSellerProfileBanner")
	return f.profile, nil
}

func (f *fakePlatformClient) CheckAuthToken(ctx context.Context, token string) (bool, error) {
	return true, nil
}

type fakeWssCache struct {
	items   map[string]view.MerchantWss
	evicted  []string
	getErr   error
	evictErr error
}

func newFakeWssCache() *fakeWssCache {
	return &fakeWssCache{items: map[string]view.MerchantWss{}}
}

func (c *fakeWssCache) Get(merchantId string) (*view.MerchantWss, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	m, ok := c.items[merchantId]
	if !ok {
		return nil, nil
	}
	return &m, nil
}

func (c *fakeWssCache) Put(merchantId string, merchant view.MerchantWss, ttl time.Duration) error {
	c.items[merchantId] = merchant
	return nil
}

func (c *fakeWssCache) Evict(merchantId string) error {
	if c.evictErr != nil {
		return c.evictErr
	}
	delete(c.items, merchantId)
	c.evicted = append(c.evicted, merchantId)
	return nil
}

type fakeSnapshotRepo struct {
	snapshots     map[string]entity.WssSnapshot
	deletedBefore time.Time
}

func newFakeSnapshotRepo() *fakeSnapshotRepo {
	return &fakeSnapshotRepo{snapshots: map[string]entity.WssSnapshot{}}
}

func (r *fakeSnapshotRepo) SaveSnapshot(ctx context.Context, ent *entity.WssSnapshot) error {
	r.snapshots[ent.MerchantId] = *ent
	return nil
}

func (r *fakeSnapshotRepo) GetSnapshot(ctx context.Context, merchantId string) (*entity.WssSnapshot, error) {
	s, ok := r.snapshots[merchantId]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (r *fakeSnapshotRepo) DeleteSnapshotsOlderThan(ctx context.Context, before time.Time) (int, error) {
	r.deletedBefore = before
	count := 0
	for id, s := range r.snapshots {
		if s.FetchedAt.Before(before) {
			delete(r.snapshots, id)
			count++
		}
	}
	return count, nil
}

type fakeImpressionRepo struct {
	mu            sync.Mutex
	saved         []entity.BannerImpression
	failBannerId  string
	attempts      int
	deletedBefore time.Time
}

func (r *fakeImpressionRepo) SaveImpression(ctx context.Context, impression entity.BannerImpression) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.attempts++
	if impression.BannerId == r.failBannerId {
		return errors.New("insert failed")
	}
	r.saved = append(r.saved, impression)
	return nil
}

func (r *fakeImpressionRepo) DeleteImpressionsOlderThan(ctx context.Context, before time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.deletedBefore = before
	return 0, nil
}

func syncAsync(f func()) { f() }

type fakeMerchantDataRepo struct {
	deleted []string
	err     error
	cache   *fakeWssCache
	// evictions seen in cache when the delete ran
	evictedAtDelete int
}

func (r *fakeMerchantDataRepo) DeleteMerchantData(ctx context.Context, merchantId string) error {
	if r.cache != nil {
		r.evictedAtDelete = len(r.cache.evicted)
	}
	if r.err != nil {
		return r.err
	}
	r.deleted = append(r.deleted, merchantId)
	return nil
}
