package security

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Netcracker/qubership-merchant-performance-service/client"
	"github.com/Netcracker/qubership-merchant-performance-service/secctx"
	"github.com/shaj13/go-guardian/v2/auth"
	"gopkg.in/square/go-jose.v2/jwt"
)

func NewCookieTokenStrategy(platformClient client.MerchantPlatformClient) auth.Strategy {
	return &cookieTokenStrategyImpl{platformClient: platformClient}
}

type cookieTokenStrategyImpl struct {
	platformClient client.MerchantPlatformClient
}

// Authenticate trusts the cookie token once the platform confirms it, then reads its claims unverified.
func (a cookieTokenStrategyImpl) Authenticate(ctx context.Context, r *http.Request) (auth.Info, error) {
	cookie, err := r.Cookie(secctx.AccessTokenCookieName)
	if err != nil {
		return nil, fmt.Errorf("authentication failed: access token cookie not found")
	}

	success, err := a.platformClient.CheckAuthToken(ctx, cookie.Value)
	if err != nil {
		return nil, err
	}
	if !success {
		return nil, fmt.Errorf("authentication failed, token from cookie is incorrect")
	}

	jt, err := jwt.ParseSigned(cookie.Value)
	if err != nil {
		return nil, fmt.Errorf("token parse error: %w", err)
	}
	userInfo := auth.NewDefaultUser("", "", []string{}, auth.Extensions{})
	var merchantClaims struct {
		MerchantId string `json:"merchant_id"`
	}
	if err := jt.UnsafeClaimsWithoutVerification(userInfo, &merchantClaims); err != nil {
		return nil, fmt.Errorf("claims extraction error: %w", err)
	}
	if merchantClaims.MerchantId != "" && userInfo.GetExtensions().Get(secctx.MerchantIdExt) == "" {
		userInfo.GetExtensions().Set(secctx.MerchantIdExt, merchantClaims.MerchantId)
	}
	return userInfo, nil
}
