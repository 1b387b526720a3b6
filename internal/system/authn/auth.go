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

package authn

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/wso2/sales-lead-scoring-service/internal/system/config"
	errors2 "github.com/wso2/sales-lead-scoring-service/internal/system/errors"
	"github.com/wso2/sales-lead-scoring-service/internal/system/log"
)

// ValidateRequest checks the Authorization bearer token on the request.
// Returns nil when auth is disabled in the deployment configuration.
func ValidateRequest(r *http.Request) error {
	cfg := config.GetServiceRuntime().Config
	if !cfg.Auth.Enabled {
		return nil
	}

	authHeader := r.Header.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return unauthorizedError()
	}
	token := strings.TrimPrefix(authHeader, "Bearer ")

	if err := validateToken(token, cfg.Auth.JWTSecret); err != nil {
		return err
	}
	return nil
}

// validateToken verifies an HS256 signed JWT against the shared secret.
// Expiry is enforced by the parser.
func validateToken(tokenString, secret string) error {
	logger := log.GetLogger()

	parsed, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))

	if err != nil {
		logger.Debug("Bearer token validation failed", log.Error(err))
		return unauthorizedError()
	}
	if !parsed.Valid {
		logger.Debug("Bearer token is not valid.")
		return unauthorizedError()
	}
	return nil
}

func unauthorizedError() error {
	return errors2.NewClientError(errors2.ErrorMessage{
		Code:        errors2.ErrUnauthorized.Code,
		Message:     errors2.ErrUnauthorized.Message,
		Description: errors2.ErrUnauthorized.Description,
	}, http.StatusUnauthorized)
}
