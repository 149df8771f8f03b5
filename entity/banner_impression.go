package entity

import (
	"time"

	"github.com/Netcracker/qubership-merchant-performance-service/view"
	"github.com/google/uuid"
)

type BannerImpression struct {
	tableName struct{} `pg:"banner_impression"`

	Id         string                 `pg:"id,pk,type:varchar"`
	MerchantId string                 `pg:"merchant_id,type:varchar,notnull"`
	UserId     string                 `pg:"user_id,type:varchar"`
	BannerId   string                 `pg:"banner_id,type:varchar,notnull"`
	Component  string                 `pg:"component,type:varchar,notnull"`
	Position   int                    `pg:"position,type:integer,use_zero"`
	Params     map[string]interface{} `pg:"params,type:jsonb"`
	CreatedAt  time.Time              `pg:"created_at,type:timestamp without time zone,notnull"`
}

func MakeBannerImpressionEntities(merchantId string, userId string, banners []view.Banner, createdAt time.Time) []BannerImpression {
	result := make([]BannerImpression, 0, len(banners))
	for i, b := range banners {
		var params map[string]interface{}
		if lp, ok := b.ComponentProps["logParams"].(map[string]interface{}); ok {
			params = lp
		}
		result = append(result, BannerImpression{
			Id:         uuid.New().String(),
			MerchantId: merchantId,
			UserId:     userId,
			BannerId:   b.Id,
			Component:  b.Component,
			Position:   i,
			Params:     params,
			CreatedAt:  createdAt,
		})
	}
	return result
}
