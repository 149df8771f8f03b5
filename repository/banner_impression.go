package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Netcracker/qubership-merchant-performance-service/db"
	"github.com/Netcracker/qubership-merchant-performance-service/entity"
)

type BannerImpressionRepository interface {
	SaveImpression(ctx context.Context, impression entity.BannerImpression) error
	DeleteImpressionsOlderThan(ctx context.Context, before time.Time) (int, error)
}

func NewBannerImpressionRepository(cp db.ConnectionProvider) BannerImpressionRepository {
	return bannerImpressionRepositoryImpl{cp: cp}
}

type bannerImpressionRepositoryImpl struct {
	cp db.ConnectionProvider
}

func (b bannerImpressionRepositoryImpl) SaveImpression(ctx context.Context, impression entity.BannerImpression) error {
	_, err := b.cp.GetConnection().ModelContext(ctx, &impression).Insert()
	if err != nil {
		return fmt.Errorf("failed to insert impression of banner %s: %w", impression.BannerId, err)
	}
	return nil
}

func (b bannerImpressionRepositoryImpl) DeleteImpressionsOlderThan(ctx context.Context, before time.Time) (int, error) {
	res, err := b.cp.GetConnection().ModelContext(ctx, (*entity.BannerImpression)(nil)).
		Where("created_at < ?", before).
		Delete()
	if err != nil {
		return 0, err
	}
	return res.RowsAffected(), nil
}
