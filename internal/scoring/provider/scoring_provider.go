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

package provider

import (
	"github.com/wso2/sales-lead-scoring-service/internal/scoring/service"
)

// ScoringProviderInterface defines the interface for the scoring provider.
type ScoringProviderInterface interface {
	GetScoringService() service.ScoringServiceInterface
}

// ScoringProvider is the default implementation of the ScoringProviderInterface.
type ScoringProvider struct{}

// NewScoringProvider creates a new instance of ScoringProvider.
func NewScoringProvider() ScoringProviderInterface {

	return &ScoringProvider{}
}

// GetScoringService returns the scoring service instance.
func (sp *ScoringProvider) GetScoringService() service.ScoringServiceInterface {

	return service.GetScoringService()
}
