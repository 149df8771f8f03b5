package security

import (
	"github.com/Netcracker/qubership-merchant-performance-service/secctx"
	"github.com/shaj13/go-guardian/v2/auth"
	"github.com/shaj13/go-guardian/v2/auth/strategies/token"
)

const ApiKeyHeader = "api-key"

// NewSystemApiKeyStrategy accepts the service access token as a sysadm api key.
func NewSystemApiKeyStrategy(apiKey string) auth.Strategy {
	tokens := map[string]auth.Info{}
	if apiKey != "" {
		exts := auth.Extensions{}
		exts.Add(secctx.SystemRoleExt, secctx.SysadmRole)
		tokens[apiKey] = auth.NewDefaultUser("system", "system", []string{}, exts)
	}
	return token.NewStatic(tokens, token.SetParser(token.XHeaderParser(ApiKeyHeader)))
}
