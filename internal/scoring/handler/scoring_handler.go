/*
 * Copyright (c) 2025, WSO2 LLC. (http://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"sort"

	leadmodel "github.com/wso2/sales-lead-scoring-service/internal/leads/model"
	"github.com/wso2/sales-lead-scoring-service/internal/scoring/model"
	"github.com/wso2/sales-lead-scoring-service/internal/scoring/provider"
	"github.com/wso2/sales-lead-scoring-service/internal/system/authn"
	errors2 "github.com/wso2/sales-lead-scoring-service/internal/system/errors"
	"github.com/wso2/sales-lead-scoring-service/internal/system/utils"
)

type ScoringHandler struct{}

func NewScoringHandler() *ScoringHandler {

	return &ScoringHandler{}
}

// RunScoring triggers a full scoring run. ?refresh=true re-reads the input
// collection instead of using the session cache.
func (sh *ScoringHandler) RunScoring(w http.ResponseWriter, r *http.Request) {

	if err := authn.ValidateRequest(r); err != nil {
		utils.HandleError(w, err)
		return
	}

	refresh := r.URL.Query().Get("refresh") == "true"

	scoringService := provider.NewScoringProvider().GetScoringService()
	result, err := scoringService.RunScoring(r.Context(), refresh)
	if err != nil {
		// A sink failure still produced scored results; surface the failure
		// with a pointer to the retained results instead of a plain error.
		if result != nil && len(result.Scored) > 0 {
			utils.WriteJSONResponse(w, http.StatusBadGateway, map[string]interface{}{
				"run_id":            result.RunID,
				"scored":            result.TotalRecords,
				"tier_distribution": result.Distribution,
				"sink_written":      false,
				"sink_failure":      result.SinkFailure,
				"results_available": true,
			})
			return
		}
		utils.HandleError(w, err)
		return
	}

	if result.NoData {
		utils.WriteJSONResponse(w, http.StatusOK, map[string]interface{}{
			"run_id":  result.RunID,
			"message": "No customer data found to score.",
			"scored":  0,
		})
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, map[string]interface{}{
		"run_id":            result.RunID,
		"message":           fmt.Sprintf("Scored %d customers and saved to the output collection.", result.TotalRecords),
		"scored":            result.TotalRecords,
		"tier_distribution": result.Distribution,
		"sink_written":      result.SinkWritten,
	})
}

// GetResults returns the last scored batch of this session as JSON.
func (sh *ScoringHandler) GetResults(w http.ResponseWriter, r *http.Request) {

	scoringService := provider.NewScoringProvider().GetScoringService()
	results, ok := scoringService.LastResults()
	if !ok {
		utils.HandleError(w, noResultsError())
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, map[string]interface{}{
		"count":   len(results),
		"results": results,
	})
}

// ExportResults streams the last scored batch as CSV, one row per lead with
// the full field set: model columns first, the derived score and tier, then
// any extra source fields.
func (sh *ScoringHandler) ExportResults(w http.ResponseWriter, r *http.Request) {

	scoringService := provider.NewScoringProvider().GetScoringService()
	results, ok := scoringService.LastResults()
	if !ok {
		utils.HandleError(w, noResultsError())
		return
	}

	columns := exportColumns(results)

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="scored_leads.csv"`)

	writer := csv.NewWriter(w)
	_ = writer.Write(columns)
	for _, record := range results {
		row := make([]string, len(columns))
		for i, column := range columns {
			row[i] = formatCSVValue(record[column])
		}
		_ = writer.Write(row)
	}
	writer.Flush()
}

// exportColumns builds the CSV header: the model columns in their fixed
// order, the two derived fields, then every remaining source field sorted by
// name so the layout is deterministic.
func exportColumns(results []leadmodel.Record) []string {
	columns := append(model.RequiredFeatures(), leadmodel.FieldScore, leadmodel.FieldTier)
	seen := make(map[string]bool, len(columns))
	for _, column := range columns {
		seen[column] = true
	}

	var extras []string
	for _, record := range results {
		for key := range record {
			if !seen[key] {
				seen[key] = true
				extras = append(extras, key)
			}
		}
	}
	sort.Strings(extras)
	return append(columns, extras...)
}

func formatCSVValue(value interface{}) string {
	if value == nil {
		return ""
	}
	if f, ok := value.(float64); ok {
		return fmt.Sprintf("%g", f)
	}
	return fmt.Sprintf("%v", value)
}

func noResultsError() error {
	return errors2.NewClientError(errors2.ErrorMessage{
		Code:        errors2.ErrNoScoredResults.Code,
		Message:     errors2.ErrNoScoredResults.Message,
		Description: errors2.ErrNoScoredResults.Description,
	}, http.StatusNotFound)
}
