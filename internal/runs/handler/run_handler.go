package handler

import (
	"net/http"
	"strings"

	"github.com/wso2/sales-lead-scoring-service/internal/runs/provider"
	"github.com/wso2/sales-lead-scoring-service/internal/system/utils"
)

type RunHandler struct{}

func NewRunHandler() *RunHandler {

	return &RunHandler{}
}

// GetRuns returns the full scoring run history.
func (rh *RunHandler) GetRuns(w http.ResponseWriter, r *http.Request) {

	runsService := provider.NewRunsProvider().GetRunsService()
	runs, err := runsService.GetRuns()
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, map[string]interface{}{
		"count": len(runs),
		"runs":  runs,
	})
}

// GetRun returns one scoring run by its identifier.
func (rh *RunHandler) GetRun(w http.ResponseWriter, r *http.Request) {

	pathParts := strings.Split(r.URL.Path, "/")
	if len(pathParts) < 3 {
		http.Error(w, "Invalid path", http.StatusNotFound)
		return
	}
	runID := pathParts[len(pathParts)-1]

	runsService := provider.NewRunsProvider().GetRunsService()
	run, err := runsService.GetRun(runID)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, run)
}
