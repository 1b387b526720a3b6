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

package service

import (
	"context"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/wso2/sales-lead-scoring-service/internal/insights/model"
	leadmodel "github.com/wso2/sales-lead-scoring-service/internal/leads/model"
	leadservice "github.com/wso2/sales-lead-scoring-service/internal/leads/service"
	"github.com/wso2/sales-lead-scoring-service/internal/system/constants"
)

// InsightsServiceInterface computes funnel KPIs over the current customer
// record set. An optional state filter narrows every report to one state.
type InsightsServiceInterface interface {
	GetKPIs(ctx context.Context, state string) (*model.KPIReport, error)
	GetFunnel(ctx context.Context, state string) ([]model.FunnelStage, error)
	GetStateCounts(ctx context.Context, state string) ([]model.StateCount, error)
}

type InsightsService struct {
	leads leadservice.LeadsServiceInterface
}

var insightsService *InsightsService

// InitInsightsService wires the service once at startup.
func InitInsightsService(leads leadservice.LeadsServiceInterface) {
	insightsService = &InsightsService{leads: leads}
}

// GetInsightsService returns the initialized service instance.
func GetInsightsService() InsightsServiceInterface {
	if insightsService == nil {
		panic("insights service is not initialized")
	}
	return insightsService
}

// GetKPIs computes the dashboard key metrics for the record set.
func (s *InsightsService) GetKPIs(ctx context.Context, state string) (*model.KPIReport, error) {
	records, err := s.filteredRecords(ctx, state)
	if err != nil {
		return nil, err
	}

	report := &model.KPIReport{TotalLeads: len(records)}
	var completionSum float64
	var completionCount int
	for _, record := range records {
		if truthy(record["Quote Requested"]) {
			report.QuotesRequested++
		}
		if truthy(record["Application Started"]) {
			report.ApplicationsStarted++
		}
		if truthy(record["Application Submitted"]) {
			report.ApplicationsSubmitted++
		}
		if truthy(record["Application Applied"]) {
			report.ApplicationsApplied++
		}
		if rate, ok := numeric(record["Web Form Completion Rate"]); ok {
			completionSum += rate
			completionCount++
		}
	}

	if report.TotalLeads > 0 {
		report.ConversionRate = round2(100 * float64(report.ApplicationsSubmitted) / float64(report.TotalLeads))
	}
	if completionCount > 0 {
		report.AvgFormCompletionRate = round2(completionSum / float64(completionCount))
	}
	return report, nil
}

// GetFunnel returns the application funnel stage counts in stage order.
func (s *InsightsService) GetFunnel(ctx context.Context, state string) ([]model.FunnelStage, error) {
	records, err := s.filteredRecords(ctx, state)
	if err != nil {
		return nil, err
	}

	funnel := make([]model.FunnelStage, 0, len(constants.FunnelStages))
	for _, stage := range constants.FunnelStages {
		count := 0
		for _, record := range records {
			if truthy(record[stage]) {
				count++
			}
		}
		funnel = append(funnel, model.FunnelStage{Stage: stage, Count: count})
	}
	return funnel, nil
}

// GetStateCounts returns lead counts grouped by State, descending. The
// optional state filter narrows the report like the other two.
func (s *InsightsService) GetStateCounts(ctx context.Context, state string) ([]model.StateCount, error) {
	records, err := s.filteredRecords(ctx, state)
	if err != nil {
		return nil, err
	}

	counts := map[string]int{}
	for _, record := range records {
		if state, ok := record["State"].(string); ok && state != "" {
			counts[state]++
		}
	}

	out := make([]model.StateCount, 0, len(counts))
	for state, count := range counts {
		out = append(out, model.StateCount{State: state, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].State < out[j].State
	})
	return out, nil
}

func (s *InsightsService) filteredRecords(ctx context.Context, state string) ([]leadmodel.Record, error) {
	records, err := s.leads.GetLeads(ctx, false)
	if err != nil {
		return nil, err
	}
	if state == "" {
		return records, nil
	}

	var filtered []leadmodel.Record
	for _, record := range records {
		if value, ok := record["State"].(string); ok && strings.EqualFold(value, state) {
			filtered = append(filtered, record)
		}
	}
	return filtered, nil
}

// truthy interprets the behavioral flag columns, which arrive as booleans,
// 0/1 numbers or yes/no strings depending on how the data was loaded.
func truthy(value interface{}) bool {
	switch v := value.(type) {
	case bool:
		return v
	case float64:
		return v != 0
	case int:
		return v != 0
	case int32:
		return v != 0
	case int64:
		return v != 0
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "yes", "y":
			return true
		}
	}
	return false
}

func numeric(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	}
	return 0, false
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
