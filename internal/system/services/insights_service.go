/*
 * Copyright (c) 2026, WSO2 LLC. (http://www.wso2.com).
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

package services

import (
	"fmt"
	"net/http"

	"github.com/wso2/sales-lead-scoring-service/internal/insights/handler"
)

type InsightsService struct {
	insightsHandler *handler.InsightsHandler
}

func NewInsightsService(mux *http.ServeMux, apiBasePath string) *InsightsService {

	instance := &InsightsService{
		insightsHandler: handler.NewInsightsHandler(),
	}
	instance.RegisterRoutes(mux, apiBasePath)

	return instance
}

func (s *InsightsService) RegisterRoutes(mux *http.ServeMux, apiBasePath string) {

	mux.HandleFunc(fmt.Sprintf("GET %s/insights/kpis", apiBasePath), s.insightsHandler.GetKPIs)
	mux.HandleFunc(fmt.Sprintf("GET %s/insights/funnel", apiBasePath), s.insightsHandler.GetFunnel)
	mux.HandleFunc(fmt.Sprintf("GET %s/insights/states", apiBasePath), s.insightsHandler.GetStateCounts)
}
