package handler

import (
	"net/http"

	"github.com/wso2/sales-lead-scoring-service/internal/insights/provider"
	"github.com/wso2/sales-lead-scoring-service/internal/system/utils"
)

type InsightsHandler struct{}

func NewInsightsHandler() *InsightsHandler {

	return &InsightsHandler{}
}

// GetKPIs returns the funnel key metrics. ?state= narrows to one state.
func (ih *InsightsHandler) GetKPIs(w http.ResponseWriter, r *http.Request) {

	state := r.URL.Query().Get("state")

	insightsService := provider.NewInsightsProvider().GetInsightsService()
	report, err := insightsService.GetKPIs(r.Context(), state)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, report)
}

// GetFunnel returns the ordered application funnel stage counts.
func (ih *InsightsHandler) GetFunnel(w http.ResponseWriter, r *http.Request) {

	state := r.URL.Query().Get("state")

	insightsService := provider.NewInsightsProvider().GetInsightsService()
	funnel, err := insightsService.GetFunnel(r.Context(), state)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, map[string]interface{}{
		"funnel": funnel,
	})
}

// GetStateCounts returns lead counts grouped by state.
func (ih *InsightsHandler) GetStateCounts(w http.ResponseWriter, r *http.Request) {

	state := r.URL.Query().Get("state")

	insightsService := provider.NewInsightsProvider().GetInsightsService()
	counts, err := insightsService.GetStateCounts(r.Context(), state)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, map[string]interface{}{
		"states": counts,
	})
}
