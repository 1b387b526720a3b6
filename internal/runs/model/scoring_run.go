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

package model

import "time"

// ScoringRun is the persisted record of one scoring pipeline execution.
type ScoringRun struct {
	RunID         string    `json:"run_id"`
	StartedAt     time.Time `json:"started_at"`
	FinishedAt    time.Time `json:"finished_at"`
	TotalRecords  int       `json:"total_records"`
	ScoredRecords int       `json:"scored_records"`
	PlatinumCount int       `json:"platinum_count"`
	GoldCount     int       `json:"gold_count"`
	SilverCount   int       `json:"silver_count"`
	BronzeCount   int       `json:"bronze_count"`
	Status        string    `json:"status"`
	FailureReason string    `json:"failure_reason,omitempty"`
}
