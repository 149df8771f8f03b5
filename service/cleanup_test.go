package service

import (
	"context"
	"errors"
	"testing"
)

func TestClearMerchantData(t *testing.T) {
	cache := newFakeWssCache()
	cache.items["m1"] = *goldMerchant()
	repo := &fakeMerchantDataRepo{cache: cache}
	svc := NewCleanupService(repo, newTestWssService(&fakePlatformClient{}, cache, newFakeSnapshotRepo()))

	if err := svc.ClearMerchantData(context.Background(), "m1"); err != nil {
		t.Fatalf("ClearMerchantData failed: %v", err)
	}
	if len(repo.deleted) != 1 || repo.deleted[0] != "m1" {
		t.Errorf("deleted = %v", repo.deleted)
	}
	if repo.evictedAtDelete != 0 {
		t.Errorf("cache was evicted before stored data was deleted")
	}
	if len(cache.evicted) != 1 || cache.evicted[0] != "m1" {
		t.Errorf("evicted = %v", cache.evicted)
	}
	if _, ok := cache.items["m1"]; ok {
		t.Errorf("m1 should be evicted")
	}
}

func TestClearMerchantDataErrors(t *testing.T) {
	deleteErr := errors.New("delete failed")
	cache := newFakeWssCache()
	repo := &fakeMerchantDataRepo{err: deleteErr}
	svc := NewCleanupService(repo, newTestWssService(&fakePlatformClient{}, cache, newFakeSnapshotRepo()))
	if err := svc.ClearMerchantData(context.Background(), "m1"); !errors.Is(err, deleteErr) {
		t.Errorf("expected delete error, got %v", err)
	}
	if len(cache.evicted) != 0 {
		t.Errorf("cache should stay when the delete fails, evicted %v", cache.evicted)
	}

	evictErr := errors.New("cache unavailable")
	cache = newFakeWssCache()
	cache.evictErr = evictErr
	repo = &fakeMerchantDataRepo{}
	svc = NewCleanupService(repo, newTestWssService(&fakePlatformClient{}, cache, newFakeSnapshotRepo()))
	if err := svc.ClearMerchantData(context.Background(), "m1"); !errors.Is(err, evictErr) {
		t.Errorf("expected evict error, got %v", err)
	}
	if len(repo.deleted) != 1 {
		t.Errorf("stored data should be deleted before eviction, deleted %v", repo.deleted)
	}
}
