package secctx

import (
	"context"
	"net/http"
	"strings"

	"github.com/shaj13/go-guardian/v2/auth"
)

const (
	SystemRoleExt = "systemRole"
	MerchantIdExt = "merchant_id"
	SysadmRole    = "sysadm"

	AccessTokenCookieName = "merchant-access-token"
)

type ctxKey string

const secCtxKey ctxKey = "secCtx"

func MakeUserContext(r *http.Request) context.Context {
	secCtx := securityContextImpl{
		token:  getAuthorizationToken(r),
		apiKey: getApiKey(r),
	}
	if user := auth.User(r); user != nil {
		secCtx.userId = user.GetID()
		secCtx.merchantId = user.GetExtensions().Get(MerchantIdExt)
		secCtx.systemRoles = user.GetExtensions().Values(SystemRoleExt)
	}
	return context.WithValue(r.Context(), secCtxKey, secCtx)
}

func MakeSysadminContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, secCtxKey, securityContextImpl{
		userId:      "system",
		isSystem:    true,
		systemRoles: []string{SysadmRole},
	})
}

type securityContextImpl struct {
	userId      string
	merchantId  string
	token       string
	apiKey      string
	systemRoles []string
	isSystem    bool
}

func getAuthorizationToken(r *http.Request) string {
	if token := getTokenFromAuthHeader(r); token != "" {
		return token
	}
	return getTokenFromCookie(r)
}

func getTokenFromAuthHeader(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" || !strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return ""
	}
	return strings.TrimSpace(authHeader[7:])
}

func getTokenFromCookie(r *http.Request) string {
	accessTokenCookie, err := r.Cookie(AccessTokenCookieName)
	if err != nil {
		return ""
	}
	return accessTokenCookie.Value
}

func getApiKey(r *http.Request) string {
	return r.Header.Get("api-key")
}

func get(ctx context.Context) (securityContextImpl, bool) {
	val, ok := ctx.Value(secCtxKey).(securityContextImpl)
	return val, ok
}

func IsSystem(ctx context.Context) bool {
	val, _ := get(ctx)
	return val.isSystem
}

func IsSysadm(ctx context.Context) bool {
	val, ok := get(ctx)
	if !ok {
		return false
	}
	for _, role := range val.systemRoles {
		if role == SysadmRole {
			return true
		}
	}
	return false
}

func GetUserId(ctx context.Context) string {
	val, _ := get(ctx)
	return val.userId
}

func GetMerchantId(ctx context.Context) string {
	val, _ := get(ctx)
	return val.merchantId
}

func GetUserToken(ctx context.Context) string {
	val, _ := get(ctx)
	return val.token
}

func GetApiKey(ctx context.Context) string {
	val, _ := get(ctx)
	return val.apiKey
}
