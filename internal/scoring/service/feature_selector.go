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
	leadmodel "github.com/wso2/sales-lead-scoring-service/internal/leads/model"
)

// ProjectRecords reduces every record to exactly the required columns, in
// order, preserving row count and row order. The selector fails closed: a
// required column counts as missing when any record lacks it, the full
// missing list is returned, and the projection is nil so the model is never
// invoked with a malformed frame. A column present with a null value is not
// missing; nulls are the model's concern.
func ProjectRecords(records []leadmodel.Record, features []string) ([]leadmodel.Record, []string) {
	var missing []string
	for _, feature := range features {
		for _, record := range records {
			if _, ok := record[feature]; !ok {
				missing = append(missing, feature)
				break
			}
		}
	}
	if len(missing) > 0 {
		return nil, missing
	}

	projected := make([]leadmodel.Record, len(records))
	for i, record := range records {
		reduced := make(leadmodel.Record, len(features))
		for _, feature := range features {
			reduced[feature] = record[feature]
		}
		projected[i] = reduced
	}
	return projected, nil
}
