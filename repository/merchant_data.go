package repository

import (
	"context"
	"fmt"

	"github.com/Netcracker/qubership-merchant-performance-service/db"
	"github.com/Netcracker/qubership-merchant-performance-service/entity"
	"github.com/go-pg/pg/v10"
	log "github.com/sirupsen/logrus"
)

type MerchantDataRepository interface {
	DeleteMerchantData(ctx context.Context, merchantId string) error
}

func NewMerchantDataRepository(cp db.ConnectionProvider) MerchantDataRepository {
	return merchantDataRepositoryImpl{cp: cp}
}

type merchantDataRepositoryImpl struct {
	cp db.ConnectionProvider
}

// DeleteMerchantData removes impressions and the snapshot of the merchant in one transaction.
func (m merchantDataRepositoryImpl) DeleteMerchantData(ctx context.Context, merchantId string) error {
	return m.cp.GetConnection().RunInTransaction(ctx, func(tx *pg.Tx) error {
		res, err := tx.Model((*entity.BannerImpression)(nil)).
			Where("merchant_id = ?", merchantId).
			Delete()
		if err != nil {
			return fmt.Errorf("failed to delete banner_impression records: %w", err)
		}
		log.Debugf("Deleted %d banner impressions of merchant %s", res.RowsAffected(), merchantId)

		_, err = tx.Model((*entity.WssSnapshot)(nil)).
			Where("merchant_id = ?", merchantId).
			Delete()
		if err != nil {
			return fmt.Errorf("failed to delete wss_snapshot records: %w", err)
		}
		return nil
	})
}
