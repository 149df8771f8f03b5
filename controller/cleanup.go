// Copyright 2024-2025 NetCracker Technology Corporation
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package controller

import (
	"net/http"

	"github.com/Netcracker/qubership-merchant-performance-service/exception"
	"github.com/Netcracker/qubership-merchant-performance-service/secctx"
	"github.com/Netcracker/qubership-merchant-performance-service/service"
)

type CleanupController interface {
	ClearMerchantData(w http.ResponseWriter, r *http.Request)
}

type cleanupControllerImpl struct {
	cleanupService       service.CleanupService
	authorizationService service.AuthorizationService
	productionMode       bool
}

func NewCleanupController(cleanupService service.CleanupService, authorizationService service.AuthorizationService, productionMode bool) CleanupController {
	return &cleanupControllerImpl{
		cleanupService:       cleanupService,
		authorizationService: authorizationService,
		productionMode:       productionMode,
	}
}

func (c cleanupControllerImpl) ClearMerchantData(w http.ResponseWriter, r *http.Request) {
	if c.productionMode {
		RespondWithCustomError(w, &exception.CustomError{
			Status:  http.StatusNotFound,
			Message: http.StatusText(http.StatusNotFound),
		})
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

	merchantId, ok := getMerchantIdParam(w, r)
	if !ok {
		return
	}

	err = c.cleanupService.ClearMerchantData(ctx, merchantId)
	if err != nil {
		respondWithError(w, "Failed to clear merchant data", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
