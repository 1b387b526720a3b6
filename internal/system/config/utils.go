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

import (
	"os"
	"path"

	"gopkg.in/yaml.v2"
)

// LoadConfig reads the deployment file, expands ${ENV} references and
// unmarshals the result so secrets can stay out of the file itself.
func LoadConfig(serviceHome, filePath string) (*Config, error) {
	file, err := os.ReadFile(path.Join(serviceHome, filePath))
	if err != nil {
		return nil, err
	}

	expanded := os.ExpandEnv(string(file))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, err
	}
	applyDefaults(&cfg)
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Log.LogLevel == "" {
		cfg.Log.LogLevel = "INFO"
	}
	if cfg.Model.Convention == "" {
		cfg.Model.Convention = "percentage"
	}
	if cfg.Cache.LeadsTTLSeconds <= 0 {
		cfg.Cache.LeadsTTLSeconds = 300
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
}

// OverrideServiceRuntime replaces the runtime configuration. Intended for tests.
func OverrideServiceRuntime(conf Config) {
	runtimeConfig = &ServiceRuntime{
		Config: conf,
	}
}
