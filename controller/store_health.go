package controller

import (
	"net/http"

	"github.com/Netcracker/qubership-merchant-performance-service/secctx"
	"github.com/Netcracker/qubership-merchant-performance-service/service"
)

type StoreHealthController interface {
	GetStoreHealth(w http.ResponseWriter, r *http.Request)
}

func NewStoreHealthController(storeHealthService service.StoreHealthService, authorizationService service.AuthorizationService) StoreHealthController {
	return &storeHealthControllerImpl{
		storeHealthService:   storeHealthService,
		authorizationService: authorizationService,
	}
}

type storeHealthControllerImpl struct {
	storeHealthService   service.StoreHealthService
	authorizationService service.AuthorizationService
}

func (c storeHealthControllerImpl) GetStoreHealth(w http.ResponseWriter, r *http.Request) {
	merchantId, ok := getMerchantIdParam(w, r)
	if !ok {
		return
	}
	ctx := secctx.MakeUserContext(r)
	sufficientPrivileges, err := c.authorizationService.HasMerchantReadPermission(ctx, merchantId)
	if err != nil {
		respondWithError(w, "Failed to check permissions", err)
		return
	}
	if !sufficientPrivileges {
		forbidden(w)
		return
	}

	health, err := c.storeHealthService.GetStoreHealth(ctx, merchantId)
	if err != nil {
		respondWithError(w, "Failed to get store health", err)
		return
	}
	respondWithJson(w, http.StatusOK, health)
}
