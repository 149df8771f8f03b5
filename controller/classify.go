package controller

import (
	"encoding/json"
	"net/http"

	"github.com/Netcracker/qubership-merchant-performance-service/exception"
	"github.com/Netcracker/qubership-merchant-performance-service/service"
	"github.com/Netcracker/qubership-merchant-performance-service/view"
	"github.com/invopop/jsonschema"
)

type ClassifyController interface {
	Classify(w http.ResponseWriter, r *http.Request)
	GetThresholds(w http.ResponseWriter, r *http.Request)
	GetSchema(w http.ResponseWriter, r *http.Request)
}

func NewClassifyController() ClassifyController {
	return &classifyControllerImpl{
		schemas: map[string]*jsonschema.Schema{
			"ClassifyReq":          jsonschema.Reflect(&view.ClassifyReq{}),
			"ScoreData":            jsonschema.Reflect(&view.ScoreData{}),
			"MerchantScoreSummary": jsonschema.Reflect(&view.MerchantScoreSummary{}),
			"MetricThresholds":     jsonschema.Reflect(&[]view.MetricThresholds{}),
			"WssBannerTriggers":    jsonschema.Reflect(&view.WssBannerTriggers{}),
			"StoreHealth":          jsonschema.Reflect(&view.StoreHealth{}),
			"Banner":               jsonschema.Reflect(&view.Banner{}),
		},
	}
}

type classifyControllerImpl struct {
	schemas map[string]*jsonschema.Schema
}

func (c classifyControllerImpl) Classify(w http.ResponseWriter, r *http.Request) {
	var req view.ClassifyReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondWithCustomError(w, &exception.CustomError{
			Status:  http.StatusBadRequest,
			Code:    exception.BadRequestBody,
			Message: exception.BadRequestBodyMsg,
			Debug:   err.Error(),
		})
		return
	}
	result, err := service.ClassifyScore(req)
	if err != nil {
		respondWithError(w, "Failed to classify score", err)
		return
	}
	respondWithJson(w, http.StatusOK, result)
}

func (c classifyControllerImpl) GetThresholds(w http.ResponseWriter, r *http.Request) {
	respondWithJson(w, http.StatusOK, service.ListMetricThresholds())
}

func (c classifyControllerImpl) GetSchema(w http.ResponseWriter, r *http.Request) {
	respondWithJson(w, http.StatusOK, c.schemas)
}
