package controller

import (
	"net/http"

	"github.com/Netcracker/qubership-merchant-performance-service/secctx"
	"github.com/Netcracker/qubership-merchant-performance-service/service"
)

type BannerController interface {
	GetBanners(w http.ResponseWriter, r *http.Request)
}

func NewBannerController(bannerService service.BannerService, authorizationService service.AuthorizationService) BannerController {
	return &bannerControllerImpl{
		bannerService:        bannerService,
		authorizationService: authorizationService,
	}
}

type bannerControllerImpl struct {
	bannerService        service.BannerService
	authorizationService service.AuthorizationService
}

func (c bannerControllerImpl) GetBanners(w http.ResponseWriter, r *http.Request) {
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

	banners, err := c.bannerService.GetBanners(ctx, merchantId)
	if err != nil {
		respondWithError(w, "Failed to get banners", err)
		return
	}
	respondWithJson(w, http.StatusOK, banners)
}
