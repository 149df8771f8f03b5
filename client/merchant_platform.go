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

package client

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/Netcracker/qubership-merchant-performance-service/exception"
	"github.com/Netcracker/qubership-merchant-performance-service/secctx"
	"github.com/Netcracker/qubership-merchant-performance-service/view"
	log "github.com/sirupsen/logrus"
	"gopkg.in/resty.v1"
)

const (
	NewNavExperiment   = "md_new_nav_phase_2"
	PlpDeciderKey      = "product_listing_plan_fe"
	TosDeciderKey      = "tos_update_2021"
	MerchantIdHeader   = "X-Merchant-Id"
	merchantTosType    = "MERCHANT"
	merchantTosVersion = 5
)

type MerchantPlatformClient interface {
	GetMerchantWss(ctx context.Context, merchantId string) (*view.MerchantWss, error)
	GetPerformanceHealthData(ctx context.Context, merchantId string) (*view.PerformanceHealthInitialData, error)
	GetBannerInitialData(ctx context.Context, merchantId string) (*view.BannerInitialData, error)

	GetExperimentBucket(ctx context.Context, merchantId string, experiment string) (string, error)
	GetDeciderKeyDecision(ctx context.Context, merchantId string, key string) (bool, error)

	GetProductBoostParams(ctx context.Context, merchantId string) (*view.ProductBoostParams, error)
	GetCollectionBoostParams(ctx context.Context, merchantId string) (*view.CollectionBoostParams, error)
	GetSellerProfileBanner(ctx context.Context, merchantId string) (*view.SellerProfileBanner, error)

	CheckAuthToken(ctx context.Context, token string) (bool, error)
}

func NewMerchantPlatformClient(platformUrl, accessToken string) MerchantPlatformClient {
	parsedUrl, err := url.Parse(platformUrl)
	platformHost := ""
	if err != nil {
		log.Errorf("Can't parse merchant platform url: %v", err)
	} else {
		platformHost = parsedUrl.Hostname()
	}

	tr := http.Transport{TLSClientConfig: &tls.Config{InsecureSkipVerify: true}}
	cl := http.Client{Transport: &tr, Timeout: time.Second * 60}
	client := resty.NewWithClient(&cl)
	if platformHost != "" {
		client.SetRedirectPolicy(resty.DomainCheckRedirectPolicy(platformHost))
	}

	return &merchantPlatformClientImpl{platformUrl: platformUrl, accessToken: accessToken, client: client}
}

type merchantPlatformClientImpl struct {
	platformUrl string
	accessToken string
	client      *resty.Client
}

type graphqlRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

type graphqlError struct {
	Message string `json:"message"`
}

type graphqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphqlError  `json:"errors"`
}

// rpcResponse is the envelope of the platform "api/*" endpoints. Code 0 means success.
type rpcResponse struct {
	Code int             `json:"code"`
	Msg  string          `json:"msg"`
	Data json.RawMessage `json:"data"`
}

const wssStatsFields = `
	userRating
	orderFultillmentRate
	validTrackingRate
	productQualityRefundRate
	productLogisticsRefundRate
	badProductRate
	fulfillmentSpeed { days hours minutes seconds }
	maturedOrderCount
	ninetyDayOrderCount
	date { unix mmddyyyy }`

const merchantWssQuery = `query MerchantWss($id: ObjectIdType!) {
  merchant(id: $id) {
    id
    state
    wishSellerStandard {
      level
      prevLevel
      rawLevel
      layer1Level
      isInactiveToBan
      stats {` + wssStatsFields + `
      }
      monthlyUpdateStats {` + wssStatsFields + `
      }
      complianceUpdateStats {
        misleadingTrackingCount
        prohibitedProductCount
        misleadingListingCount
        orderCancellationCount
        unfulfilledOrderCount
        lateConfirmedFulfillmentCount
        date { unix mmddyyyy }
      }
      lastUpdatedStats { unix mmddyyyy }
      lastTierUpdateDate { unix mmddyyyy }
      nextMonthlyTierUpdateDate { unix mmddyyyy }
      endDateForLastMonthlyUpdateCalcWindow { unix mmddyyyy }
      policyInfractionWindowStartDate { unix mmddyyyy }
      policyInfractionWindowEndDate { unix mmddyyyy }
      fulfillmentInfractionWindowStartDate { unix mmddyyyy }
      fulfillmentInfractionWindowEndDate { unix mmddyyyy }
    }
  }
}`

const performanceHealthQuery = `query PerformanceHealth($id: ObjectIdType!) {
  policy(merchantId: $id) {
    misleadingProducts
    ipInfringementProducts
    prohibitedProducts
  }
  currentMerchant: merchant(id: $id) {
    id
    state
    storeStats {
      tracking { validTrackingRate lateConfirmedFulfillmentRate }
      cs { lateResponseRate30d customerSatisfactionScore }
      rating { averageProductRating }
    }
  }
}`

const bannerInitialDataQuery = `query BannerInitialData($tosType: TermsOfServiceType!, $version: Int!) {
  currentUser {
    utmSource
    onboarding { completed }
    hasSeenFbwTos
    backToOnboardingReason
    gating { showSizeChartBanner }
    uiState { bool(key: NEW_NAV_OPT_IN) }
  }
  currentMerchant {
    id
    state
    isCnMerchant
    canAccessPriceDrop
    hasReducedRevShare
    canAccessEarlyPayment
    hasActivePriceDropOffers
    canAccessRestrictedProduct
  }
  payments {
    currentMerchant { fullyEnrolledInPaymentCycle paymentCycle }
  }
  tos {
    termsOfService(tosType: $tosType, version: $version) {
      canAccept
      releaseDate { unix mmddyyyy }
      merchantTermsOfServiceAgreement { state }
    }
  }
}`

func (m merchantPlatformClientImpl) GetMerchantWss(ctx context.Context, merchantId string) (*view.MerchantWss, error) {
	var data struct {
		Merchant *view.MerchantWss `json:"merchant"`
	}
	err := m.queryGraphql(ctx, merchantId, "MerchantWss", merchantWssQuery, map[string]interface{}{"id": merchantId}, &data)
	if err != nil {
		return nil, err
	}
	return data.Merchant, nil
}

func (m merchantPlatformClientImpl) GetPerformanceHealthData(ctx context.Context, merchantId string) (*view.PerformanceHealthInitialData, error) {
	var data struct {
		Policy          *view.PolicyWarnings        `json:"policy"`
		CurrentMerchant *view.HealthCurrentMerchant `json:"currentMerchant"`
	}
	err := m.queryGraphql(ctx, merchantId, "PerformanceHealth", performanceHealthQuery, map[string]interface{}{"id": merchantId}, &data)
	if err != nil {
		return nil, err
	}
	if data.CurrentMerchant == nil {
		return nil, nil
	}
	return &view.PerformanceHealthInitialData{Policy: data.Policy, CurrentMerchant: *data.CurrentMerchant}, nil
}

func (m merchantPlatformClientImpl) GetBannerInitialData(ctx context.Context, merchantId string) (*view.BannerInitialData, error) {
	var data view.BannerInitialData
	vars := map[string]interface{}{"tosType": merchantTosType, "version": merchantTosVersion}
	err := m.queryGraphql(ctx, merchantId, "BannerInitialData", bannerInitialDataQuery, vars, &data)
	if err != nil {
		return nil, err
	}
	return &data, nil
}

func (m merchantPlatformClientImpl) GetExperimentBucket(ctx context.Context, merchantId string, experiment string) (string, error) {
	var data struct {
		Bucket string `json:"bucket"`
	}
	ok, err := m.callRpc(ctx, merchantId, "experiment/get-bucket-for-merchant", map[string]interface{}{"experiment_name": experiment}, &data)
	if err != nil || !ok {
		return "", err
	}
	return data.Bucket, nil
}

func (m merchantPlatformClientImpl) GetDeciderKeyDecision(ctx context.Context, merchantId string, key string) (bool, error) {
	var data struct {
		Decision bool `json:"decision"`
	}
	ok, err := m.callRpc(ctx, merchantId, "decider/get-key-decision", map[string]interface{}{"decider_key": key}, &data)
	if err != nil || !ok {
		return false, err
	}
	return data.Decision, nil
}

func (m merchantPlatformClientImpl) GetProductBoostParams(ctx context.Context, merchantId string) (*view.ProductBoostParams, error) {
	var data struct {
		ProductBoostParams *view.ProductBoostParams `json:"product_boost_params"`
	}
	ok, err := m.callRpc(ctx, merchantId, "product-boost/get-home-page-params", map[string]interface{}{"params_type": "banner"}, &data)
	if err != nil || !ok {
		return nil, err
	}
	return data.ProductBoostParams, nil
}

func (m merchantPlatformClientImpl) GetCollectionBoostParams(ctx context.Context, merchantId string) (*view.CollectionBoostParams, error) {
	var data view.CollectionBoostParams
	ok, err := m.callRpc(ctx, merchantId, "collections-boost/get-home-page-banner-params", map[string]interface{}{}, &data)
	if err != nil || !ok {
		return nil, err
	}
	return &data, nil
}

func (m merchantPlatformClientImpl) GetSellerProfileBanner(ctx context.Context, merchantId string) (*view.SellerProfileBanner, error) {
	var data *view.SellerProfileBanner
	ok, err := m.callRpc(ctx, merchantId, "seller-profile-verification/get-banner", map[string]interface{}{}, &data)
	if err != nil || !ok {
		return nil, err
	}
	return data, nil
}

func (m merchantPlatformClientImpl) CheckAuthToken(ctx context.Context, token string) (bool, error) {
	req := m.client.R()
	req.SetContext(ctx)
	req.SetHeader("Cookie", fmt.Sprintf("%s=%s", secctx.AccessTokenCookieName, token))

	resp, err := req.Get(fmt.Sprintf("%s/api/v1/auth/token", m.platformUrl))
	if err != nil || resp.StatusCode() != http.StatusOK {
		if authErr := checkUnauthorized(resp); authErr != nil {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (m merchantPlatformClientImpl) queryGraphql(ctx context.Context, merchantId string, name string, query string, vars map[string]interface{}, result interface{}) error {
	req := m.makeRequest(ctx, merchantId)
	req.SetHeader("Content-Type", "application/json")
	req.SetBody(graphqlRequest{Query: query, Variables: vars})

	resp, err := req.Post(fmt.Sprintf("%s/api/graphql", m.platformUrl))
	if err != nil {
		return fmt.Errorf("failed to run graphql query %s: %w", name, err)
	}
	if resp.StatusCode() != http.StatusOK {
		if authErr := checkUnauthorized(resp); authErr != nil {
			return authErr
		}
		return fmt.Errorf("failed to run graphql query %s: status code %d %s", name, resp.StatusCode(), string(resp.Body()))
	}

	var gqlResp graphqlResponse
	if err = json.Unmarshal(resp.Body(), &gqlResp); err != nil {
		return fmt.Errorf("failed to decode graphql response for %s: %w", name, err)
	}
	if len(gqlResp.Errors) > 0 {
		return &exception.CustomError{
			Status:  http.StatusBadGateway,
			Code:    exception.MerchantPlatformQueryFailed,
			Message: exception.MerchantPlatformQueryFailedMsg,
			Params:  map[string]interface{}{"query": name, "error": gqlResp.Errors[0].Message},
		}
	}
	if len(gqlResp.Data) == 0 {
		return nil
	}
	return json.Unmarshal(gqlResp.Data, result)
}

// callRpc returns false without error when the platform answers with a non-zero code.
func (m merchantPlatformClientImpl) callRpc(ctx context.Context, merchantId string, method string, params map[string]interface{}, result interface{}) (bool, error) {
	req := m.makeRequest(ctx, merchantId)
	req.SetHeader("Content-Type", "application/json")
	req.SetBody(params)

	resp, err := req.Post(fmt.Sprintf("%s/api/%s", m.platformUrl, method))
	if err != nil {
		return false, fmt.Errorf("failed to call %s: %w", method, err)
	}
	if resp.StatusCode() != http.StatusOK {
		if authErr := checkUnauthorized(resp); authErr != nil {
			return false, authErr
		}
		return false, fmt.Errorf("failed to call %s: status code %d %s", method, resp.StatusCode(), string(resp.Body()))
	}

	var rpcResp rpcResponse
	if err = json.Unmarshal(resp.Body(), &rpcResp); err != nil {
		return false, fmt.Errorf("failed to decode %s response: %w", method, err)
	}
	if rpcResp.Code != 0 {
		log.Debugf("Merchant platform %s returned code %d: %s", method, rpcResp.Code, rpcResp.Msg)
		return false, nil
	}
	if len(rpcResp.Data) == 0 {
		return true, nil
	}
	if err = json.Unmarshal(rpcResp.Data, result); err != nil {
		return false, fmt.Errorf("failed to decode %s data: %w", method, err)
	}
	return true, nil
}

func (m merchantPlatformClientImpl) makeRequest(ctx context.Context, merchantId string) *resty.Request {
	req := m.client.R()
	req.SetContext(ctx)

	if secctx.IsSystem(ctx) {
		req.SetHeader("api-key", m.accessToken)
	} else if secctx.GetUserToken(ctx) != "" {
		req.SetHeader("Authorization", fmt.Sprintf("Bearer %s", secctx.GetUserToken(ctx)))
	} else if secctx.GetApiKey(ctx) != "" {
		req.SetHeader("api-key", secctx.GetApiKey(ctx))
	} else {
		req.SetHeader("api-key", m.accessToken)
	}
	if merchantId != "" {
		req.SetHeader(MerchantIdHeader, merchantId)
	}
	return req
}

func checkUnauthorized(resp *resty.Response) error {
	if resp != nil && (resp.StatusCode() == http.StatusUnauthorized || resp.StatusCode() == http.StatusForbidden) {
		log.Errorf("Merchant platform rejected credentials with status %d", resp.StatusCode())
		return &exception.CustomError{
			Status:  http.StatusFailedDependency,
			Code:    exception.NoMerchantPlatformAccess,
			Message: exception.NoMerchantPlatformAccessMsg,
			Params:  map[string]interface{}{"code": strconv.Itoa(resp.StatusCode())},
		}
	}
	return nil
}
