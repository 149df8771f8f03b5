package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Netcracker/qubership-merchant-performance-service/db"
	"github.com/Netcracker/qubership-merchant-performance-service/entity"
	"github.com/go-pg/pg/v10"
)

type WssSnapshotRepository interface {
	SaveSnapshot(ctx context.Context, ent *entity.WssSnapshot) error
	GetSnapshot(ctx context.Context, merchantId string) (*entity.WssSnapshot, error)
	DeleteSnapshotsOlderThan(ctx context.Context, before time.Time) (int, error)
}

func NewWssSnapshotRepository(cp db.ConnectionProvider) WssSnapshotRepository {
	return wssSnapshotRepositoryImpl{cp: cp}
}

type wssSnapshotRepositoryImpl struct {
	cp db.ConnectionProvider
}

func (w wssSnapshotRepositoryImpl) SaveSnapshot(ctx context.Context, ent *entity.WssSnapshot) error {
	_, err := w.cp.GetConnection().ModelContext(ctx, ent).
		OnConflict("(merchant_id) DO UPDATE").
		Set("state = EXCLUDED.state").
		Set("details = EXCLUDED.details").
		Set("fetched_at = EXCLUDED.fetched_at").
		Insert()
	return err
}

func (w wssSnapshotRepositoryImpl) GetSnapshot(ctx context.Context, merchantId string) (*entity.WssSnapshot, error) {
	var ent entity.WssSnapshot
	err := w.cp.GetConnection().ModelContext(ctx, &ent).Where("merchant_id = ?", merchantId).Select()
	if err != nil {
		if errors.Is(err, pg.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &ent, nil
}

func (w wssSnapshotRepositoryImpl) DeleteSnapshotsOlderThan(ctx context.Context, before time.Time) (int, error) {
	res, err := w.cp.GetConnection().ModelContext(ctx, (*entity.WssSnapshot)(nil)).
		Where("fetched_at < ?", before).
		Delete()
	if err != nil {
		return 0, err
	}
	return res.RowsAffected(), nil
}
