/*
 * Copyright (c) 2025-2026, WSO2 LLC. (http://www.wso2.com).
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
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wso2/sales-lead-scoring-service/internal/insights/model"
	leadmodel "github.com/wso2/sales-lead-scoring-service/internal/leads/model"
	"github.com/wso2/sales-lead-scoring-service/internal/system/log"
)

func TestMain(m *testing.M) {
	_ = log.Init("ERROR")
	os.Exit(m.Run())
}

type fakeLeadsService struct {
	records []leadmodel.Record
	err     error
}

func (f *fakeLeadsService) GetLeads(_ context.Context, _ bool) ([]leadmodel.Record, error) {
	return f.records, f.err
}

func (f *fakeLeadsService) GetScoredLeads(_ context.Context) ([]leadmodel.Record, error) {
	return nil, nil
}

func (f *fakeLeadsService) ClearScoredLeads(_ context.Context) (int64, error) {
	return 0, nil
}

func (f *fakeLeadsService) InvalidateCache() {}

func insightsFixture() []leadmodel.Record {
	return []leadmodel.Record{
		{
			"State":                    "California",
			"Quote Requested":          true,
			"Application Started":      true,
			"Application Submitted":    true,
			"Application Applied":      false,
			"Web Form Completion Rate": 0.8,
		},
		{
			"State":                    "California",
			"Quote Requested":          1,
			"Application Started":      "yes",
			"Application Submitted":    0,
			"Application Applied":      false,
			"Web Form Completion Rate": 0.6,
		},
		{
			"State":                    "Texas",
			"Quote Requested":          false,
			"Application Started":      false,
			"Application Submitted":    false,
			"Application Applied":      false,
			"Web Form Completion Rate": "0.1",
		},
		{
			"State":                    "Nevada",
			"Quote Requested":          "true",
			"Application Started":      true,
			"Application Submitted":    true,
			"Application Applied":      true,
			"Web Form Completion Rate": nil,
		},
	}
}

func TestGetKPIs(t *testing.T) {
	svc := &InsightsService{leads: &fakeLeadsService{records: insightsFixture()}}

	report, err := svc.GetKPIs(context.Background(), "")
	assert.NoError(t, err)
	assert.Equal(t, 4, report.TotalLeads)
	assert.Equal(t, 3, report.QuotesRequested)
	assert.Equal(t, 3, report.ApplicationsStarted)
	assert.Equal(t, 2, report.ApplicationsSubmitted)
	assert.Equal(t, 1, report.ApplicationsApplied)
	assert.Equal(t, 50.0, report.ConversionRate, "2 submitted of 4 leads")
	assert.Equal(t, 0.5, report.AvgFormCompletionRate, "null rates are excluded from the average")
}

func TestGetKPIsStateFilter(t *testing.T) {
	svc := &InsightsService{leads: &fakeLeadsService{records: insightsFixture()}}

	report, err := svc.GetKPIs(context.Background(), "california")
	assert.NoError(t, err)
	assert.Equal(t, 2, report.TotalLeads, "state filter is case insensitive")
	assert.Equal(t, 2, report.QuotesRequested)
	assert.Equal(t, 50.0, report.ConversionRate)
}

func TestGetKPIsEmptyRecordSet(t *testing.T) {
	svc := &InsightsService{leads: &fakeLeadsService{}}

	report, err := svc.GetKPIs(context.Background(), "")
	assert.NoError(t, err)
	assert.Zero(t, report.TotalLeads)
	assert.Zero(t, report.ConversionRate, "no division on an empty set")
}

func TestGetFunnel(t *testing.T) {
	svc := &InsightsService{leads: &fakeLeadsService{records: insightsFixture()}}

	funnel, err := svc.GetFunnel(context.Background(), "")
	assert.NoError(t, err)
	assert.Equal(t, []model.FunnelStage{
		{Stage: "Quote Requested", Count: 3},
		{Stage: "Application Started", Count: 3},
		{Stage: "Application Submitted", Count: 2},
		{Stage: "Application Applied", Count: 1},
	}, funnel, "stages keep their funnel order")
}

func TestGetStateCounts(t *testing.T) {
	svc := &InsightsService{leads: &fakeLeadsService{records: insightsFixture()}}

	counts, err := svc.GetStateCounts(context.Background(), "")
	assert.NoError(t, err)
	assert.Equal(t, []model.StateCount{
		{State: "California", Count: 2},
		{State: "Nevada", Count: 1},
		{State: "Texas", Count: 1},
	}, counts, "descending by count, ties broken by name")
}

func TestGetStateCountsStateFilter(t *testing.T) {
	svc := &InsightsService{leads: &fakeLeadsService{records: insightsFixture()}}

	counts, err := svc.GetStateCounts(context.Background(), "texas")
	assert.NoError(t, err)
	assert.Equal(t, []model.StateCount{
		{State: "Texas", Count: 1},
	}, counts, "only the filtered state is reported")
}
