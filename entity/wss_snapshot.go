package entity

import (
	"time"

	"github.com/Netcracker/qubership-merchant-performance-service/view"
)

type WssSnapshot struct {
	tableName struct{} `pg:"wss_snapshot"`

	MerchantId string                  `pg:"merchant_id,pk,type:varchar"`
	State      string                  `pg:"state,type:varchar,notnull"`
	Details    view.MerchantWssDetails `pg:"details,type:jsonb,notnull"`
	FetchedAt  time.Time               `pg:"fetched_at,type:timestamp without time zone,notnull"`
}

func MakeWssSnapshotEntity(merchantId string, merchant view.MerchantWss, fetchedAt time.Time) *WssSnapshot {
	ent := &WssSnapshot{
		MerchantId: merchantId,
		State:      string(merchant.State),
		FetchedAt:  fetchedAt,
	}
	if merchant.WishSellerStandard != nil {
		ent.Details = *merchant.WishSellerStandard
	}
	return ent
}

func MakeMerchantWssView(ent WssSnapshot) view.MerchantWss {
	details := ent.Details
	return view.MerchantWss{
		Id:                 ent.MerchantId,
		State:              view.CommerceMerchantState(ent.State),
		WishSellerStandard: &details,
	}
}
