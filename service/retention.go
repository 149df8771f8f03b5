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
	"time"

	"github.com/Netcracker/qubership-merchant-performance-service/repository"
	"github.com/Netcracker/qubership-merchant-performance-service/secctx"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
)

const RetentionSchedule = "@daily"

type RetentionJob interface {
	Start() error
	Stop()
	Cleanup(ctx context.Context) error
}

func NewRetentionJob(impressionRepo repository.BannerImpressionRepository, snapshotRepo repository.WssSnapshotRepository, retention time.Duration) RetentionJob {
	return &retentionJobImpl{
		impressionRepo: impressionRepo,
		snapshotRepo:   snapshotRepo,
		retention:      retention,
		cron:           cron.New(),
		now:            time.Now,
	}
}

type retentionJobImpl struct {
	impressionRepo repository.BannerImpressionRepository
	snapshotRepo   repository.WssSnapshotRepository
	retention      time.Duration
	cron           *cron.Cron
	now            func() time.Time
}

func (r *retentionJobImpl) Start() error {
	_, err := r.cron.AddFunc(RetentionSchedule, func() {
		if err := r.Cleanup(secctx.MakeSysadminContext(context.Background())); err != nil {
			log.Errorf("Retention cleanup failed: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule retention cleanup: %w", err)
	}
	r.cron.Start()
	log.Infof("Retention cleanup scheduled %s, retention %s", RetentionSchedule, r.retention)
	return nil
}

func (r *retentionJobImpl) Stop() {
	<-r.cron.Stop().Done()
}

// Cleanup removes impressions and snapshots older than the retention period.
func (r *retentionJobImpl) Cleanup(ctx context.Context) error {
	before := r.now().Add(-r.retention)

	impressions, err := r.impressionRepo.DeleteImpressionsOlderThan(ctx, before)
	if err != nil {
		return fmt.Errorf("failed to delete banner impressions: %w", err)
	}
	snapshots, err := r.snapshotRepo.DeleteSnapshotsOlderThan(ctx, before)
	if err != nil {
		return fmt.Errorf("failed to delete WSS snapshots: %w", err)
	}
	log.Infof("Retention cleanup removed %d banner impressions and %d WSS snapshots older than %s", impressions, snapshots, before.Format(time.RFC3339))
	return nil
}
