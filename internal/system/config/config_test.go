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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

const testDeployment = `
addr:
  host: 0.0.0.0
  port: 8085
log:
  log_level: DEBUG
auth:
  enabled: true
  jwt_secret: ${TEST_JWT_SECRET}
datasource:
  endpoint: ${TEST_COSMOS_ENDPOINT}
  credential: ${TEST_COSMOS_CREDENTIAL}
  database: Lead_Nurture_DB
  input_collection: CustomerData
  output_collection: ScoredLeads
database:
  host: localhost
  port: 5432
  user: scoring
  password: scoring
  dbname: lead_scoring
model:
  path: models/xgboost_ptb_pipeline.model
  convention: direct
cache:
  leads_ttl_seconds: 120
`

func writeDeployment(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "deployment.yaml"), []byte(content), 0o600)
	assert.NoError(t, err)
	return dir
}

func TestLoadConfigExpandsEnvReferences(t *testing.T) {
	t.Setenv("TEST_JWT_SECRET", "s3cret")
	t.Setenv("TEST_COSMOS_ENDPOINT", "mongodb://db.example.com:10255/?ssl=true")
	t.Setenv("TEST_COSMOS_CREDENTIAL", "svc-user:svc-key")

	dir := writeDeployment(t, testDeployment)
	cfg, err := LoadConfig(dir, "deployment.yaml")
	assert.NoError(t, err)

	assert.Equal(t, 8085, cfg.Addr.Port)
	assert.Equal(t, "DEBUG", cfg.Log.LogLevel)
	assert.True(t, cfg.Auth.Enabled)
	assert.Equal(t, "s3cret", cfg.Auth.JWTSecret)
	assert.Equal(t, "mongodb://db.example.com:10255/?ssl=true", cfg.DataSource.Endpoint)
	assert.Equal(t, "svc-user:svc-key", cfg.DataSource.Credential)
	assert.Equal(t, "CustomerData", cfg.DataSource.InputCollection)
	assert.Equal(t, "ScoredLeads", cfg.DataSource.OutputCollection)
	assert.Equal(t, "direct", cfg.Model.Convention)
	assert.Equal(t, 120, cfg.Cache.LeadsTTLSeconds)
}

func TestLoadConfigDefaults(t *testing.T) {
	dir := writeDeployment(t, `
datasource:
  endpoint: mongodb://localhost:27017
  database: Lead_Nurture_DB
model:
  path: models/xgboost_ptb_pipeline.model
`)

	cfg, err := LoadConfig(dir, "deployment.yaml")
	assert.NoError(t, err)

	assert.Equal(t, "INFO", cfg.Log.LogLevel)
	assert.Equal(t, "percentage", cfg.Model.Convention)
	assert.Equal(t, 300, cfg.Cache.LeadsTTLSeconds)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.False(t, cfg.Auth.Enabled)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(t.TempDir(), "deployment.yaml")
	assert.Error(t, err)
}

func TestLoadConfigMalformedYaml(t *testing.T) {
	dir := writeDeployment(t, "datasource: [")
	_, err := LoadConfig(dir, "deployment.yaml")
	assert.Error(t, err)
}
