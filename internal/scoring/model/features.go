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

// requiredFeatures is the fixed, ordered column set the trained model
// expects. Every record submitted to the model must contain exactly these
// columns, in this order.
var requiredFeatures = []string{
	"Age",
	"Gender",
	"Annual Income",
	"Income Bracket",
	"Marital Status",
	"Employment Status",
	"Region",
	"Urban/Rural Flag",
	"State",
	"ZIP Code",
	"Plan Preference Type",
	"Web Form Completion Rate",
	"Quote Requested",
	"Application Started",
	"Behavior Score",
	"Application Submitted",
	"Application Applied",
}

// RequiredFeatures returns a copy of the model's required column list so
// callers cannot reorder the canonical set.
func RequiredFeatures() []string {
	out := make([]string, len(requiredFeatures))
	copy(out, requiredFeatures)
	return out
}
