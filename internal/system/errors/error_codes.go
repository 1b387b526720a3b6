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

package errors

const errorPrefix = "LSS-"

var (
	// Server error codes

	DOC_STORE_CONNECT = ErrorMessage{
		Code:    errorPrefix + "15001",
		Message: "Error while connecting to the document store.",
	}

	FETCH_LEADS = ErrorMessage{
		Code:    errorPrefix + "15002",
		Message: "Error while fetching customer leads.",
	}

	MODEL_LOAD = ErrorMessage{
		Code:    errorPrefix + "15003",
		Message: "Error while loading the model artifact.",
	}

	MODEL_INVOCATION = ErrorMessage{
		Code:    errorPrefix + "15004",
		Message: "Error while invoking the scoring model.",
	}

	SINK_CREATE = ErrorMessage{
		Code:    errorPrefix + "15005",
		Message: "Error while creating the scored leads collection.",
	}

	SINK_WRITE = ErrorMessage{
		Code:    errorPrefix + "15006",
		Message: "Error while writing scored leads.",
	}

	SINK_CLEAR = ErrorMessage{
		Code:    errorPrefix + "15007",
		Message: "Error while clearing scored leads.",
	}

	FETCH_SCORED_LEADS = ErrorMessage{
		Code:    errorPrefix + "15008",
		Message: "Error while fetching scored leads.",
	}

	DB_CLIENT_INIT = ErrorMessage{
		Code:    errorPrefix + "15009",
		Message: "Unable to initialize database client.",
	}

	ADD_SCORING_RUN = ErrorMessage{
		Code:    errorPrefix + "15010",
		Message: "Error while recording the scoring run.",
	}

	FETCH_SCORING_RUNS = ErrorMessage{
		Code:    errorPrefix + "15011",
		Message: "Error while fetching scoring runs.",
	}

	// Client error codes

	ErrMissingFeatures = ErrorMessage{
		Code:        errorPrefix + "60001",
		Message:     "Required feature columns are missing.",
		Description: "One or more columns expected by the model are absent from the customer data.",
	}

	ErrRunNotFound = ErrorMessage{
		Code:        errorPrefix + "60002",
		Message:     "Scoring run not found.",
		Description: "No scoring run exists for the given identifier.",
	}

	ErrNoScoredResults = ErrorMessage{
		Code:        errorPrefix + "60003",
		Message:     "No scored results available.",
		Description: "No scoring run has produced results in this session.",
	}

	ErrInvalidConvention = ErrorMessage{
		Code:        errorPrefix + "60004",
		Message:     "Invalid scoring convention.",
		Description: "The scoring convention must be either 'direct' or 'percentage'.",
	}

	ErrUnauthorized = ErrorMessage{
		Code:        errorPrefix + "60005",
		Message:     "Authentication failed.",
		Description: "The request does not carry a valid bearer token.",
	}
)
