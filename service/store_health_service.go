package service

import (
	"context"
	"net/http"

	"github.com/Netcracker/qubership-merchant-performance-service/client"
	"github.com/Netcracker/qubership-merchant-performance-service/exception"
	"github.com/Netcracker/qubership-merchant-performance-service/view"
)

type StoreHealthService interface {
	GetStoreHealth(ctx context.Context, merchantId string) (*view.StoreHealth, error)
}

func NewStoreHealthService(platformClient client.MerchantPlatformClient) StoreHealthService {
	return &storeHealthServiceImpl{platformClient: platformClient}
}

type storeHealthServiceImpl struct {
	platformClient client.MerchantPlatformClient
}

func (s storeHealthServiceImpl) GetStoreHealth(ctx context.Context, merchantId string) (*view.StoreHealth, error) {
	data, err := s.platformClient.GetPerformanceHealthData(ctx, merchantId)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, &exception.CustomError{
			Status:  http.StatusNotFound,
			Code:    exception.EntityNotFound,
			Message: exception.EntityNotFoundMsg,
			Params:  map[string]interface{}{"entity": "merchant", "id": merchantId},
		}
	}
	return &view.StoreHealth{
		MerchantId:   merchantId,
		WarningCount: CountStoreHealthWarnings(*data),
	}, nil
}
