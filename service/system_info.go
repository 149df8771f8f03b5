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

package service

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Netcracker/qubership-merchant-performance-service/db"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	CONFIG_FILE                    = "CONFIG_FILE"
	LISTEN_ADDRESS                 = "LISTEN_ADDRESS"
	ORIGIN_ALLOWED                 = "ORIGIN_ALLOWED"
	LOG_LEVEL                      = "LOG_LEVEL"
	PRODUCTION_MODE                = "PRODUCTION_MODE"
	MERCHANT_PLATFORM_URL          = "MERCHANT_PLATFORM_URL"
	MERCHANT_PLATFORM_ACCESS_TOKEN = "MERCHANT_PLATFORM_ACCESS_TOKEN"
	DB_HOST                        = "DB_HOST"
	DB_PORT                        = "DB_PORT"
	DB_NAME                        = "DB_NAME"
	DB_USERNAME                    = "DB_USERNAME"
	DB_PASSWORD                    = "DB_PASSWORD"
	OLRIC_DISCOVERY_MODE           = "OLRIC_DISCOVERY_MODE"
	OLRIC_REPLICA_COUNT            = "OLRIC_REPLICA_COUNT"
	OLRIC_PEERS                    = "OLRIC_PEERS"
	NAMESPACE                      = "NAMESPACE"
	JWT_PUBLIC_KEY                 = "JWT_PUBLIC_KEY"
	IMPRESSION_RETENTION_DAYS      = "IMPRESSION_RETENTION_DAYS"
	WSS_CACHE_TTL_SEC              = "WSS_CACHE_TTL_SEC"
)

type SystemInfoService interface {
	Init() error
	GetListenAddress() string
	GetOriginAllowed() string
	GetLogLevel() string
	IsProductionMode() bool
	GetMerchantPlatformUrl() string
	GetMerchantPlatformAccessToken() string
	GetCredsFromEnv() *db.DbCredentials
	GetOlricDiscoveryMode() string
	GetOlricReplicaCount() int
	GetOlricPeers() []string
	GetNamespace() string
	GetJwtPublicKey() string
	GetImpressionRetention() time.Duration
	GetWssCacheTTL() time.Duration
}

type fileConfig struct {
	ListenAddress    string `yaml:"listenAddress"`
	OriginAllowed    string `yaml:"originAllowed"`
	LogLevel         string `yaml:"logLevel"`
	ProductionMode   string `yaml:"productionMode"`
	MerchantPlatform struct {
		Url         string `yaml:"url"`
		AccessToken string `yaml:"accessToken"`
	} `yaml:"merchantPlatform"`
	Database struct {
		Host     string `yaml:"host"`
		Port     string `yaml:"port"`
		Name     string `yaml:"name"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
	} `yaml:"database"`
	Olric struct {
		DiscoveryMode string `yaml:"discoveryMode"`
		ReplicaCount  string `yaml:"replicaCount"`
		Peers         string `yaml:"peers"`
		Namespace     string `yaml:"namespace"`
	} `yaml:"olric"`
	JwtPublicKey            string `yaml:"jwtPublicKey"`
	ImpressionRetentionDays string `yaml:"impressionRetentionDays"`
	WssCacheTTLSec          string `yaml:"wssCacheTtlSec"`
}

func NewSystemInfoService() (SystemInfoService, error) {
	s := &systemInfoServiceImpl{
		systemInfoMap: make(map[string]interface{})}
	if err := s.Init(); err != nil {
		log.Error("Failed to read system info: " + err.Error())
		return nil, err
	}
	return s, nil
}

type systemInfoServiceImpl struct {
	systemInfoMap map[string]interface{}
}

func (g systemInfoServiceImpl) Init() error {
	var fc fileConfig
	if path := os.Getenv(CONFIG_FILE); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	g.setString(LISTEN_ADDRESS, fc.ListenAddress, ":8080")
	g.setString(ORIGIN_ALLOWED, fc.OriginAllowed, "")
	g.setString(LOG_LEVEL, fc.LogLevel, "INFO")
	g.setString(MERCHANT_PLATFORM_URL, fc.MerchantPlatform.Url, "")
	g.setString(MERCHANT_PLATFORM_ACCESS_TOKEN, fc.MerchantPlatform.AccessToken, "")
	g.setString(DB_HOST, fc.Database.Host, "localhost")
	g.setString(DB_NAME, fc.Database.Name, "merchant_performance")
	g.setString(DB_USERNAME, fc.Database.Username, "")
	g.setString(DB_PASSWORD, fc.Database.Password, "")
	g.setString(OLRIC_DISCOVERY_MODE, fc.Olric.DiscoveryMode, "local")
	g.setString(OLRIC_PEERS, fc.Olric.Peers, "")
	g.setString(NAMESPACE, fc.Olric.Namespace, "")
	g.setString(JWT_PUBLIC_KEY, fc.JwtPublicKey, "")

	if err := g.setBool(PRODUCTION_MODE, fc.ProductionMode, false); err != nil {
		return err
	}
	if err := g.setInt(DB_PORT, fc.Database.Port, 5432); err != nil {
		return err
	}
	if err := g.setInt(OLRIC_REPLICA_COUNT, fc.Olric.ReplicaCount, 1); err != nil {
		return err
	}
	if err := g.setInt(IMPRESSION_RETENTION_DAYS, fc.ImpressionRetentionDays, 30); err != nil {
		return err
	}
	if err := g.setInt(WSS_CACHE_TTL_SEC, fc.WssCacheTTLSec, 300); err != nil {
		return err
	}

	if g.GetMerchantPlatformUrl() == "" {
		return fmt.Errorf("%s is not set", MERCHANT_PLATFORM_URL)
	}
	return nil
}

// lookup prefers env over the config file.
func lookup(key string, fileValue string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return strings.TrimSpace(fileValue)
}

func (g systemInfoServiceImpl) setString(key string, fileValue string, def string) {
	v := lookup(key, fileValue)
	if v == "" {
		v = def
	}
	g.systemInfoMap[key] = v
}

func (g systemInfoServiceImpl) setInt(key string, fileValue string, def int) error {
	v := lookup(key, fileValue)
	if v == "" {
		g.systemInfoMap[key] = def
		return nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("failed to parse %s value '%s': %w", key, v, err)
	}
	g.systemInfoMap[key] = i
	return nil
}

func (g systemInfoServiceImpl) setBool(key string, fileValue string, def bool) error {
	v := lookup(key, fileValue)
	if v == "" {
		g.systemInfoMap[key] = def
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("failed to parse %s value '%s': %w", key, v, err)
	}
	g.systemInfoMap[key] = b
	return nil
}

func (g systemInfoServiceImpl) GetListenAddress() string {
	return g.systemInfoMap[LISTEN_ADDRESS].(string)
}

func (g systemInfoServiceImpl) GetOriginAllowed() string {
	return g.systemInfoMap[ORIGIN_ALLOWED].(string)
}

func (g systemInfoServiceImpl) GetLogLevel() string {
	return g.systemInfoMap[LOG_LEVEL].(string)
}

func (g systemInfoServiceImpl) IsProductionMode() bool {
	return g.systemInfoMap[PRODUCTION_MODE].(bool)
}

func (g systemInfoServiceImpl) GetMerchantPlatformUrl() string {
	return strings.TrimSuffix(g.systemInfoMap[MERCHANT_PLATFORM_URL].(string), "/")
}

func (g systemInfoServiceImpl) GetMerchantPlatformAccessToken() string {
	return g.systemInfoMap[MERCHANT_PLATFORM_ACCESS_TOKEN].(string)
}

func (g systemInfoServiceImpl) GetCredsFromEnv() *db.DbCredentials {
	return &db.DbCredentials{
		Host:     g.systemInfoMap[DB_HOST].(string),
		Port:     g.systemInfoMap[DB_PORT].(int),
		Database: g.systemInfoMap[DB_NAME].(string),
		Username: g.systemInfoMap[DB_USERNAME].(string),
		Password: g.systemInfoMap[DB_PASSWORD].(string),
	}
}

func (g systemInfoServiceImpl) GetOlricDiscoveryMode() string {
	return g.systemInfoMap[OLRIC_DISCOVERY_MODE].(string)
}

func (g systemInfoServiceImpl) GetOlricReplicaCount() int {
	return g.systemInfoMap[OLRIC_REPLICA_COUNT].(int)
}

func (g systemInfoServiceImpl) GetOlricPeers() []string {
	var peers []string
	for _, p := range strings.Split(g.systemInfoMap[OLRIC_PEERS].(string), ",") {
		if p = strings.TrimSpace(p); p != "" {
			peers = append(peers, p)
		}
	}
	return peers
}

func (g systemInfoServiceImpl) GetNamespace() string {
	return g.systemInfoMap[NAMESPACE].(string)
}

func (g systemInfoServiceImpl) GetJwtPublicKey() string {
	return g.systemInfoMap[JWT_PUBLIC_KEY].(string)
}

func (g systemInfoServiceImpl) GetImpressionRetention() time.Duration {
	return time.Duration(g.systemInfoMap[IMPRESSION_RETENTION_DAYS].(int)) * 24 * time.Hour
}

func (g systemInfoServiceImpl) GetWssCacheTTL() time.Duration {
	return time.Duration(g.systemInfoMap[WSS_CACHE_TTL_SEC].(int)) * time.Second
}
