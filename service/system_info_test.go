package service

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestSystemInfoDefaults(t *testing.T) {
	t.Setenv(MERCHANT_PLATFORM_URL, "https://merchant.example.com/")
	t.Setenv(CONFIG_FILE, "")

	s, err := NewSystemInfoService()
	if err != nil {
		t.Fatalf("NewSystemInfoService failed: %v", err)
	}
	if s.GetListenAddress() != ":8080" {
		t.Errorf("listen address = %s", s.GetListenAddress())
	}
	if s.GetMerchantPlatformUrl() != "https://merchant.example.com" {
		t.Errorf("platform url = %s", s.GetMerchantPlatformUrl())
	}
	if s.GetCredsFromEnv().Port != 5432 {
		t.Errorf("db port = %d", s.GetCredsFromEnv().Port)
	}
	if s.GetWssCacheTTL() != 5*time.Minute {
		t.Errorf("cache ttl = %v", s.GetWssCacheTTL())
	}
	if s.GetImpressionRetention() != 30*24*time.Hour {
		t.Errorf("retention = %v", s.GetImpressionRetention())
	}
	if s.IsProductionMode() {
		t.Errorf("production mode should be off by default")
	}
}

func TestSystemInfoFileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
listenAddress: ":9090"
productionMode: "true"
merchantPlatform:
  url: https://file.example.com
database:
  host: db.internal
  port: "6432"
olric:
  replicaCount: "3"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(CONFIG_FILE, path)
	t.Setenv(MERCHANT_PLATFORM_URL, "")
	t.Setenv(DB_HOST, "db.override")

	s, err := NewSystemInfoService()
	if err != nil {
		t.Fatalf("NewSystemInfoService failed: %v", err)
	}
	if s.GetListenAddress() != ":9090" {
		t.Errorf("listen address = %s", s.GetListenAddress())
	}
	if !s.IsProductionMode() {
		t.Errorf("production mode should be read from file")
	}
	if s.GetMerchantPlatformUrl() != "https://file.example.com" {
		t.Errorf("platform url = %s", s.GetMerchantPlatformUrl())
	}
	creds := s.GetCredsFromEnv()
	if creds.Host != "db.override" || creds.Port != 6432 {
		t.Errorf("creds = %+v", creds)
	}
	if s.GetOlricReplicaCount() != 3 {
		t.Errorf("replica count = %d", s.GetOlricReplicaCount())
	}
}

func TestSystemInfoRequiresPlatformUrl(t *testing.T) {
	t.Setenv(CONFIG_FILE, "")
	t.Setenv(MERCHANT_PLATFORM_URL, "")
	if _, err := NewSystemInfoService(); err == nil {
		t.Errorf("expected error without %s", MERCHANT_PLATFORM_URL)
	}
}

func TestSystemInfoInvalidNumber(t *testing.T) {
	t.Setenv(CONFIG_FILE, "")
	t.Setenv(MERCHANT_PLATFORM_URL, "https://merchant.example.com")
	t.Setenv(DB_PORT, "not-a-port")
	if _, err := NewSystemInfoService(); err == nil {
		t.Errorf("expected error for invalid %s", DB_PORT)
	}
}
