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

package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"

	leadmodel "github.com/wso2/sales-lead-scoring-service/internal/leads/model"
	"github.com/wso2/sales-lead-scoring-service/internal/scoring/model"
)

func TestExportColumns(t *testing.T) {
	record := leadmodel.Record{
		"Email":     "customer@example.com",
		"Campaign":  "spring-2026",
		"PTB_Score": 91.0,
		"Lead_Tier": "Platinum",
	}
	for _, feature := range model.RequiredFeatures() {
		record[feature] = 1.0
	}
	other := record.Clone()
	other["Referrer"] = "web"

	columns := exportColumns([]leadmodel.Record{record, other})

	expected := append(model.RequiredFeatures(), leadmodel.FieldScore, leadmodel.FieldTier,
		"Campaign", "Email", "Referrer")
	assert.Equal(t, expected, columns,
		"model columns keep their order; extra source fields follow sorted")
}

func TestExportColumnsNoExtras(t *testing.T) {
	record := leadmodel.Record{"PTB_Score": 42.0, "Lead_Tier": "Bronze"}
	for _, feature := range model.RequiredFeatures() {
		record[feature] = 0.0
	}

	columns := exportColumns([]leadmodel.Record{record})
	assert.Equal(t, append(model.RequiredFeatures(), leadmodel.FieldScore, leadmodel.FieldTier), columns)
}

func TestFormatCSVValue(t *testing.T) {
	tests := []struct {
		name     string
		value    interface{}
		expected string
	}{
		{name: "null", value: nil, expected: ""},
		{name: "whole float", value: 91.0, expected: "91"},
		{name: "fractional float", value: 73.25, expected: "73.25"},
		{name: "int", value: 42, expected: "42"},
		{name: "string", value: "Platinum", expected: "Platinum"},
		{name: "bool", value: true, expected: "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatCSVValue(tt.value))
		})
	}
}
