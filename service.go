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

package main

import (
	"context"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/Netcracker/qubership-merchant-performance-service/client"
	"github.com/Netcracker/qubership-merchant-performance-service/controller"
	"github.com/Netcracker/qubership-merchant-performance-service/db"
	"github.com/Netcracker/qubership-merchant-performance-service/entity"
	"github.com/Netcracker/qubership-merchant-performance-service/repository"
	"github.com/Netcracker/qubership-merchant-performance-service/security"
	"github.com/Netcracker/qubership-merchant-performance-service/service"
	"github.com/google/uuid"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

func init() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
}

func main() {
	systemInfoService, err := service.NewSystemInfoService()
	if err != nil {
		panic(err)
	}
	setLogLevel(systemInfoService.GetLogLevel())
	log.Infof("Starting merchant performance service, instance %s", uuid.New().String())

	readyChan := make(chan bool)
	healthController := controller.NewHealthController(readyChan)

	platformClient := client.NewMerchantPlatformClient(systemInfoService.GetMerchantPlatformUrl(), systemInfoService.GetMerchantPlatformAccessToken())

	cp := db.NewConnectionProvider(*systemInfoService.GetCredsFromEnv())
	err = db.CreateSchema(context.Background(), cp, (*entity.WssSnapshot)(nil), (*entity.BannerImpression)(nil))
	if err != nil {
		log.Fatalf("Failed to init db schema: %v", err)
	}
	snapshotRepo := repository.NewWssSnapshotRepository(cp)
	impressionRepo := repository.NewBannerImpressionRepository(cp)

	olricProvider, err := client.NewOlricProvider(client.OlricConfig{
		DiscoveryMode: systemInfoService.GetOlricDiscoveryMode(),
		ReplicaCount:  systemInfoService.GetOlricReplicaCount(),
		Namespace:     systemInfoService.GetNamespace(),
		Peers:         systemInfoService.GetOlricPeers(),
	})
	if err != nil {
		log.Fatalf("Failed to start olric: %v", err)
	}

	err = security.SetupGoGuardian(platformClient, systemInfoService.GetJwtPublicKey(), systemInfoService.GetMerchantPlatformAccessToken())
	if err != nil {
		log.Fatalf("Failed to setup authentication: %v", err)
	}

	authorizationService := service.NewAuthorizationService()
	wssService := service.NewWssService(platformClient, service.NewOlricWssCache(olricProvider), snapshotRepo, systemInfoService.GetWssCacheTTL())
	tierUpdatedListener := service.NewTierUpdatedListener(olricProvider, wssService)
	bannerService := service.NewBannerService(platformClient, impressionRepo)
	storeHealthService := service.NewStoreHealthService(platformClient)
	cleanupService := service.NewCleanupService(repository.NewMerchantDataRepository(cp), wssService)
	retentionJob := service.NewRetentionJob(impressionRepo, snapshotRepo, systemInfoService.GetImpressionRetention())

	wssController := controller.NewWssController(wssService, tierUpdatedListener, authorizationService)
	storeHealthController := controller.NewStoreHealthController(storeHealthService, authorizationService)
	bannerController := controller.NewBannerController(bannerService, authorizationService)
	classifyController := controller.NewClassifyController()
	cleanupController := controller.NewCleanupController(cleanupService, authorizationService, systemInfoService.IsProductionMode())

	router := mux.NewRouter()
	router.HandleFunc("/api/v1/merchants/{merchantId}/wss/scores", security.Secure(wssController.GetScores)).Methods(http.MethodGet)
	router.HandleFunc("/api/v1/merchants/{merchantId}/wss/triggers", security.Secure(wssController.GetBannerTriggers)).Methods(http.MethodGet)
	router.HandleFunc("/api/v1/merchants/{merchantId}/wss/refresh", security.Secure(wssController.RefreshWss)).Methods(http.MethodPost)
	router.HandleFunc("/api/v1/merchants/{merchantId}/health", security.Secure(storeHealthController.GetStoreHealth)).Methods(http.MethodGet)
	router.HandleFunc("/api/v1/merchants/{merchantId}/banners", security.Secure(bannerController.GetBanners)).Methods(http.MethodGet)
	router.HandleFunc("/api/v1/merchants/{merchantId}/data", security.Secure(cleanupController.ClearMerchantData)).Methods(http.MethodDelete)

	router.HandleFunc("/api/v1/wss/classify", security.Secure(classifyController.Classify)).Methods(http.MethodPost)
	router.HandleFunc("/api/v1/wss/thresholds", security.NoSecure(classifyController.GetThresholds)).Methods(http.MethodGet)
	router.HandleFunc("/api/v1/wss/schema", security.NoSecure(classifyController.GetSchema)).Methods(http.MethodGet)

	router.HandleFunc("/live", healthController.HandleLiveRequest).Methods(http.MethodGet)
	router.HandleFunc("/ready", healthController.HandleReadyRequest).Methods(http.MethodGet)

	tierUpdatedListener.Start()
	if err = retentionJob.Start(); err != nil {
		log.Fatalf("%v", err)
	}

	readyChan <- true
	close(readyChan)

	debug.SetGCPercent(30)

	srv := makeServer(systemInfoService, router)
	log.Fatalf("%v", srv.ListenAndServe())
}

func setLogLevel(level string) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		log.Warnf("Unknown log level %s, INFO is used", level)
		lvl = log.InfoLevel
	}
	log.SetLevel(lvl)
}

func makeServer(systemInfoService service.SystemInfoService, r *mux.Router) *http.Server {
	listenAddr := systemInfoService.GetListenAddress()

	log.Infof("Listen addr = %s", listenAddr)

	var corsOptions []handlers.CORSOption

	corsOptions = append(corsOptions, handlers.AllowedHeaders([]string{"Connection", "Accept-Encoding", "Content-Encoding", "X-Requested-With", "Content-Type", "Authorization", security.ApiKeyHeader, security.CustomJwtAuthHeader}))

	allowedOrigin := systemInfoService.GetOriginAllowed()
	if allowedOrigin != "" {
		corsOptions = append(corsOptions, handlers.AllowedOrigins([]string{allowedOrigin}))
		corsOptions = append(corsOptions, handlers.AllowCredentials())
	}
	corsOptions = append(corsOptions, handlers.AllowedMethods([]string{"GET", "HEAD", "POST", "DELETE", "OPTIONS"}))

	return &http.Server{
		Handler:      handlers.CompressHandler(handlers.CORS(corsOptions...)(r)),
		Addr:         listenAddr,
		WriteTimeout: 60 * time.Second,
		ReadTimeout:  30 * time.Second,
	}
}
