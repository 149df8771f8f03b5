// Copyright 2024-2025 NetCracker Technology Corporation
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package service

import (
	"context"
	"fmt"

	"github.com/Netcracker/qubership-merchant-performance-service/repository"
	log "github.com/sirupsen/logrus"
)

type CleanupService interface {
	ClearMerchantData(ctx context.Context, merchantId string) error
}

type cleanupServiceImpl struct {
	merchantDataRepo repository.MerchantDataRepository
	wssService       WssService
}

func NewCleanupService(merchantDataRepo repository.MerchantDataRepository, wssService WssService) CleanupService {
	return &cleanupServiceImpl{
		merchantDataRepo: merchantDataRepo,
		wssService:       wssService,
	}
}

// ClearMerchantData drops stored snapshots, impressions and the cached WSS block of the merchant.
// The cache is evicted only after the stored data is gone.
func (s *cleanupServiceImpl) ClearMerchantData(ctx context.Context, merchantId string) error {
	log.Debugf("Starting cleanup for merchant %s", merchantId)

	if err := s.merchantDataRepo.DeleteMerchantData(ctx, merchantId); err != nil {
		return err
	}
	if err := s.wssService.EvictMerchant(merchantId); err != nil {
		return fmt.Errorf("failed to evict cached WSS details: %w", err)
	}
	log.Debugf("Cleanup completed successfully for merchant %s", merchantId)
	return nil
}
