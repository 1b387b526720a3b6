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

package utils

import (
	"encoding/json"
	"errors"
	"net/http"

	customerrors "github.com/wso2/sales-lead-scoring-service/internal/system/errors"
	"github.com/wso2/sales-lead-scoring-service/internal/system/log"
)

// HandleError sends an HTTP error response based on the provided error.
// Client errors carry their own status code and body; everything else is
// reported as an internal server error without leaking the cause.
func HandleError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")

	var clientError *customerrors.ClientError
	if ok := errors.As(err, &clientError); ok {
		statusCode := clientError.StatusCode
		if statusCode == 0 {
			statusCode = http.StatusBadRequest
		}
		w.WriteHeader(statusCode)
		_ = json.NewEncoder(w).Encode(clientError.ErrorMessage)
		return
	}

	logger := log.GetLogger()
	logger.Error(err.Error())
	w.WriteHeader(http.StatusInternalServerError)

	var serverError *customerrors.ServerError
	if ok := errors.As(err, &serverError); ok {
		_ = json.NewEncoder(w).Encode(customerrors.ErrorMessage{
			Code:    serverError.Code,
			Message: serverError.Message,
		})
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error": "Internal server error",
	})
}

// WriteJSONResponse is a common helper for JSON encoding.
func WriteJSONResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}
