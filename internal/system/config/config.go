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

package config

type AddrConfig struct {
	Port int    `yaml:"port"`
	Host string `yaml:"host"`
}

type LogConfig struct {
	LogLevel string `yaml:"log_level"`
}

type AuthConfig struct {
	Enabled   bool   `yaml:"enabled"`
	JWTSecret string `yaml:"jwt_secret"`
}

// DataSourceConfig holds the document store settings for the customer data.
// The endpoint is a full connection string; the credential, when set,
// overrides any credentials embedded in the endpoint and is given as
// "username:password".
type DataSourceConfig struct {
	Endpoint         string `yaml:"endpoint"`
	Credential       string `yaml:"credential"`
	Database         string `yaml:"database"`
	InputCollection  string `yaml:"input_collection"`
	OutputCollection string `yaml:"output_collection"`
}

// DatabaseConfig holds the relational database settings for run history.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DbName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// ModelConfig holds the model artifact location and the active scoring
// convention. Convention is "percentage" (probability x 100 against
// thresholds 90/75/50) or "direct" (raw model output against 0.8/0.6/0.4);
// score units and threshold units always move together.
type ModelConfig struct {
	Path       string `yaml:"path"`
	Convention string `yaml:"convention"`
}

// CacheConfig bounds the lifetime of the fetched record set. The model
// artifact itself is cached for the process lifetime and is not configurable.
type CacheConfig struct {
	LeadsTTLSeconds int `yaml:"leads_ttl_seconds"`
}

type Config struct {
	Addr       AddrConfig       `yaml:"addr"`
	Log        LogConfig        `yaml:"log"`
	Auth       AuthConfig       `yaml:"auth"`
	DataSource DataSourceConfig `yaml:"datasource"`
	Database   DatabaseConfig   `yaml:"database"`
	Model      ModelConfig      `yaml:"model"`
	Cache      CacheConfig      `yaml:"cache"`
}
