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

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/wso2/sales-lead-scoring-service/internal/database"
	"github.com/wso2/sales-lead-scoring-service/internal/system/database/provider"
)

// HealthCheckServiceInterface defines the readiness contract.
type HealthCheckServiceInterface interface {
	CheckReadiness() error
}

type HealthCheckService struct{}

// GetHealthCheckService returns the health check service instance.
func GetHealthCheckService() HealthCheckServiceInterface {
	return &HealthCheckService{}
}

// CheckReadiness verifies both backing stores: the customer data document
// store and the run history database.
func (s *HealthCheckService) CheckReadiness() error {
	store := database.GetDocumentStore()
	if store == nil {
		return fmt.Errorf("document store is not connected")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := store.Ping(ctx); err != nil {
		return fmt.Errorf("document store is not reachable: %w", err)
	}

	dbClient, err := provider.NewDBProvider().GetDBClient()
	if err != nil {
		return fmt.Errorf("run history database is not reachable: %w", err)
	}
	defer dbClient.Close()
	if err := dbClient.Ping(); err != nil {
		return fmt.Errorf("run history database is not reachable: %w", err)
	}

	return nil
}
