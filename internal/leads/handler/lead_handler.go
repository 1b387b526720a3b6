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
	"net/http"

	"github.com/wso2/sales-lead-scoring-service/internal/leads/provider"
	"github.com/wso2/sales-lead-scoring-service/internal/system/authn"
	"github.com/wso2/sales-lead-scoring-service/internal/system/utils"
)

type LeadHandler struct{}

func NewLeadHandler() *LeadHandler {

	return &LeadHandler{}
}

// GetLeads returns all customer records. ?refresh=true forces a re-read of
// the input collection instead of serving the session cache.
func (lh *LeadHandler) GetLeads(w http.ResponseWriter, r *http.Request) {

	refresh := r.URL.Query().Get("refresh") == "true"

	leadsService := provider.NewLeadsProvider().GetLeadsService()
	records, err := leadsService.GetLeads(r.Context(), refresh)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, map[string]interface{}{
		"count": len(records),
		"leads": records,
	})
}

// GetScoredLeads returns the contents of the scored output collection.
func (lh *LeadHandler) GetScoredLeads(w http.ResponseWriter, r *http.Request) {

	leadsService := provider.NewLeadsProvider().GetLeadsService()
	records, err := leadsService.GetScoredLeads(r.Context())
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, map[string]interface{}{
		"count":        len(records),
		"scored_leads": records,
	})
}

// ClearScoredLeads empties the scored output collection.
func (lh *LeadHandler) ClearScoredLeads(w http.ResponseWriter, r *http.Request) {

	if err := authn.ValidateRequest(r); err != nil {
		utils.HandleError(w, err)
		return
	}

	leadsService := provider.NewLeadsProvider().GetLeadsService()
	deleted, err := leadsService.ClearScoredLeads(r.Context())
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, map[string]interface{}{
		"deleted": deleted,
	})
}
