package controller

import (
	"net/http"

	"github.com/Netcracker/qubership-merchant-performance-service/secctx"
	"github.com/Netcracker/qubership-merchant-performance-service/service"
)

type WssController interface {
	GetScores(w http.ResponseWriter, r *http.Request)
	GetBannerTriggers(w http.ResponseWriter, r *http.Request)
	RefreshWss(w http.ResponseWriter, r *http.Request)
}

func NewWssController(wssService service.WssService, tierUpdatedListener service.TierUpdatedListener,
	authorizationService service.AuthorizationService) WssController {
	return &wssControllerImpl{
		wssService:           wssService,
		tierUpdatedListener:  tierUpdatedListener,
		authorizationService: authorizationService,
	}
}

type wssControllerImpl struct {
	wssService           service.WssService
	tierUpdatedListener  service.TierUpdatedListener
	authorizationService service.AuthorizationService
}

func (c wssControllerImpl) GetScores(w http.ResponseWriter, r *http.Request) {
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

	summary, err := c.wssService.GetScoreSummary(ctx, merchantId)
	if err != nil {
		respondWithError(w, "Failed to get seller standards scores", err)
		return
	}
	respondWithJson(w, http.StatusOK, summary)
}

func (c wssControllerImpl) GetBannerTriggers(w http.ResponseWriter, r *http.Request) {
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

	triggers, err := c.wssService.GetBannerTriggers(ctx, merchantId)
	if err != nil {
		respondWithError(w, "Failed to get seller standards banner triggers", err)
		return
	}
	respondWithJson(w, http.StatusOK, triggers)
}

func (c wssControllerImpl) RefreshWss(w http.ResponseWriter, r *http.Request) {
	merchantId, ok := getMerchantIdParam(w, r)
	if !ok {
		return
	}
	ctx := secctx.MakeUserContext(r)
	sufficientPrivileges, err := c.authorizationService.HasMerchantManagementPermission(ctx)
	if err != nil {
		respondWithError(w, "Failed to check permissions", err)
		return
	}
	if !sufficientPrivileges {
		forbidden(w)
		return
	}

	if err = c.tierUpdatedListener.Publish(merchantId); err != nil {
		respondWithError(w, "Failed to publish tier update", err)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}
