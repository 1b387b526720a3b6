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
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	leadmodel "github.com/wso2/sales-lead-scoring-service/internal/leads/model"
	"github.com/wso2/sales-lead-scoring-service/internal/scoring/model"
)

func TestProjectRecordsFullSet(t *testing.T) {
	features := model.RequiredFeatures()
	records := makeLeadRecords(5)
	// Extra columns must be dropped by the projection.
	for _, record := range records {
		record["Email"] = "customer@example.com"
		record["Notes"] = "follow up"
	}

	projected, missing := ProjectRecords(records, features)
	assert.Empty(t, missing)
	assert.Len(t, projected, len(records), "row count must be preserved")

	for i, record := range projected {
		assert.Len(t, record, len(features), "record %d must carry exactly the required columns", i)
		for _, feature := range features {
			assert.Contains(t, record, feature)
		}
		assert.NotContains(t, record, "Email")
		// Row order is preserved.
		assert.Equal(t, records[i]["Age"], record["Age"])
	}
}

func TestProjectRecordsMissingColumn(t *testing.T) {
	features := model.RequiredFeatures()
	records := makeLeadRecords(100)
	// A column absent from even a few records fails the whole batch.
	delete(records[4], "ZIP Code")
	delete(records[40], "ZIP Code")
	delete(records[99], "ZIP Code")

	projected, missing := ProjectRecords(records, features)
	assert.Nil(t, projected, "no partial projection on a missing column")
	assert.Equal(t, []string{"ZIP Code"}, missing)
}

func TestProjectRecordsReportsAllMissingColumns(t *testing.T) {
	features := model.RequiredFeatures()
	records := makeLeadRecords(3)
	delete(records[0], "Gender")
	delete(records[2], "Behavior Score")

	_, missing := ProjectRecords(records, features)
	assert.Equal(t, []string{"Gender", "Behavior Score"}, missing,
		"missing list follows the required column order")
}

func TestProjectRecordsKeepsNullValues(t *testing.T) {
	features := model.RequiredFeatures()
	records := makeLeadRecords(2)
	records[1]["Annual Income"] = nil

	projected, missing := ProjectRecords(records, features)
	assert.Empty(t, missing, "a null value is present, not missing")
	assert.Nil(t, projected[1]["Annual Income"])
}

// makeLeadRecords builds records carrying every required column with
// deterministic, vectorizable values. Categorical columns are label encoded
// upstream, so they arrive as numbers or numeric strings.
func makeLeadRecords(n int) []leadmodel.Record {
	records := make([]leadmodel.Record, n)
	for i := 0; i < n; i++ {
		record := leadmodel.Record{}
		for j, feature := range model.RequiredFeatures() {
			record[feature] = float64(i*100 + j)
		}
		record["Age"] = float64(20 + i)
		record["State"] = fmt.Sprintf("%d", i%5)
		record["Quote Requested"] = i%2 == 0
		records[i] = record
	}
	return records
}
