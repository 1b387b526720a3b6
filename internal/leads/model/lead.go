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

package model

// Record is one customer/lead's attribute mapping. Customer records are
// schemaless documents, so they are kept as maps rather than structs; field
// values are strings, numbers, booleans or nil.
type Record map[string]interface{}

// Derived fields added by the scoring pipeline. The sink additionally
// assigns FieldID at write time; it is never derived from the input.
const (
	FieldScore = "PTB_Score"
	FieldTier  = "Lead_Tier"
	FieldID    = "id"
)

// Clone returns a shallow copy of the record so enrichment never mutates
// the source record set.
func (r Record) Clone() Record {
	out := make(Record, len(r)+3)
	for k, v := range r {
		out[k] = v
	}
	return out
}
