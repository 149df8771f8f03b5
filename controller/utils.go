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
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/Netcracker/qubership-merchant-performance-service/exception"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

func getStringParam(r *http.Request, p string) string {
	return mux.Vars(r)[p]
}

func getUnescapedStringParam(r *http.Request, p string) (string, error) {
	return url.PathUnescape(getStringParam(r, p))
}

func respondWithJson(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		log.Errorf("Failed to marshal response: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// respondWithError keeps the status of a CustomError, anything else is a 500.
func respondWithError(w http.ResponseWriter, msg string, err error) {
	var customError *exception.CustomError
	if errors.As(err, &customError) {
		log.Debugf("%s: %v", msg, customError.Error())
		RespondWithCustomError(w, customError)
		return
	}
	log.Errorf("%s: %v", msg, err)
	RespondWithCustomError(w, &exception.CustomError{
		Status:  http.StatusInternalServerError,
		Message: msg,
		Debug:   err.Error(),
	})
}

func RespondWithCustomError(w http.ResponseWriter, err *exception.CustomError) {
	respondWithJson(w, err.Status, err)
}

func forbidden(w http.ResponseWriter) {
	RespondWithCustomError(w, &exception.CustomError{
		Status:  http.StatusForbidden,
		Code:    exception.InsufficientPrivileges,
		Message: exception.InsufficientPrivilegesMsg,
	})
}

func getMerchantIdParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	merchantId, err := getUnescapedStringParam(r, "merchantId")
	if err != nil {
		RespondWithCustomError(w, &exception.CustomError{
			Status:  http.StatusBadRequest,
			Code:    exception.InvalidURLEscape,
			Message: exception.InvalidURLEscapeMsg,
			Params:  map[string]interface{}{"param": "merchantId"},
			Debug:   err.Error(),
		})
		return "", false
	}
	return merchantId, true
}
