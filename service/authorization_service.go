package service

import (
	"context"

	"github.com/Netcracker/qubership-merchant-performance-service/secctx"
)

type AuthorizationService interface {
	HasMerchantReadPermission(ctx context.Context, merchantId string) (bool, error)
	HasMerchantManagementPermission(ctx context.Context) (bool, error)
}

func NewAuthorizationService() AuthorizationService {
	return &authorizationServiceImpl{}
}

type authorizationServiceImpl struct {
}

// HasMerchantReadPermission allows the merchant's own users and system administrators.
func (a authorizationServiceImpl) HasMerchantReadPermission(ctx context.Context, merchantId string) (bool, error) {
	if secctx.IsSysadm(ctx) {
		return true, nil
	}
	own := secctx.GetMerchantId(ctx)
	return own != "" && own == merchantId, nil
}

func (a authorizationServiceImpl) HasMerchantManagementPermission(ctx context.Context) (bool, error) {
	return secctx.IsSysadm(ctx), nil
}
