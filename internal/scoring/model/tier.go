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

import (
	"github.com/wso2/sales-lead-scoring-service/internal/system/constants"
)

// Tier is the ordinal lead quality label derived from the score:
// Bronze < Silver < Gold < Platinum.
type Tier string

const (
	TierBronze   Tier = "Bronze"
	TierSilver   Tier = "Silver"
	TierGold     Tier = "Gold"
	TierPlatinum Tier = "Platinum"
)

// Tiers lists all tiers in ascending order.
var Tiers = []Tier{TierBronze, TierSilver, TierGold, TierPlatinum}

// Thresholds holds the lower cutoff of each tier above Bronze, in the same
// units as the score they are compared against.
type Thresholds struct {
	Platinum float64
	Gold     float64
	Silver   float64
}

// ThresholdsFor returns the threshold set matching a scoring convention.
// Direct mode interprets the score as the model's raw output on [0,1];
// percentage mode interprets it as a probability times 100 on [0,100]. The
// pairs are not equivalent scalings and must never be mixed.
func ThresholdsFor(convention string) (Thresholds, bool) {
	switch convention {
	case constants.ConventionDirect:
		return Thresholds{Platinum: 0.8, Gold: 0.6, Silver: 0.4}, true
	case constants.ConventionPercentage:
		return Thresholds{Platinum: 90, Gold: 75, Silver: 50}, true
	default:
		return Thresholds{}, false
	}
}

// TierFor maps a score to its tier. Boundaries are inclusive on the lower
// bound of each tier, which partitions the whole score range into four
// non-overlapping intervals with no gaps.
func TierFor(score float64, t Thresholds) Tier {
	switch {
	case score >= t.Platinum:
		return TierPlatinum
	case score >= t.Gold:
		return TierGold
	case score >= t.Silver:
		return TierSilver
	default:
		return TierBronze
	}
}
