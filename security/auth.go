package security

import (
	"crypto/x509"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/Netcracker/qubership-merchant-performance-service/client"
	"github.com/shaj13/go-guardian/v2/auth"
	"github.com/shaj13/go-guardian/v2/auth/strategies/jwt"
	"github.com/shaj13/go-guardian/v2/auth/strategies/token"
	"github.com/shaj13/go-guardian/v2/auth/strategies/union"
	"github.com/shaj13/libcache"
	_ "github.com/shaj13/libcache/fifo"
	_ "github.com/shaj13/libcache/lru"
	log "github.com/sirupsen/logrus"
)

var strategy union.Union

const CustomJwtAuthHeader = "X-Merchant-Authorization"

// SetupGoGuardian builds the request authentication chain. The JWT strategies are
// only added when a public key is configured.
func SetupGoGuardian(platformClient client.MerchantPlatformClient, jwtPublicKey string, apiKey string) error {
	if platformClient == nil {
		return fmt.Errorf("platformClient is nil")
	}

	var strategies []auth.Strategy
	if strings.TrimSpace(jwtPublicKey) != "" {
		keyBytes, err := base64.StdEncoding.DecodeString(strings.TrimSpace(jwtPublicKey))
		if err != nil {
			return fmt.Errorf("jwt public key is not valid base64 - %s", err.Error())
		}
		rsaPublicKey, err := x509.ParsePKCS1PublicKey(keyBytes)
		if err != nil {
			return fmt.Errorf("ParsePKCS1PublicKey has error - %s", err.Error())
		}

		keeper := jwt.StaticSecret{
			ID:        "secret-id",
			Secret:    rsaPublicKey,
			Algorithm: jwt.RS256,
		}

		cache := libcache.LRU.New(1000)
		cache.SetTTL(time.Minute * 60)
		cache.RegisterOnExpired(func(key, _ interface{}) {
			cache.Delete(key)
		})

		strategies = append(strategies,
			jwt.New(cache, keeper),
			jwt.New(cache, keeper, token.SetParser(token.XHeaderParser(CustomJwtAuthHeader))))
	} else {
		log.Warn("JWT public key is not set, bearer tokens will not be accepted")
	}

	strategies = append(strategies,
		NewSystemApiKeyStrategy(apiKey),
		NewCookieTokenStrategy(platformClient))
	strategy = union.New(strategies...)
	return nil
}
