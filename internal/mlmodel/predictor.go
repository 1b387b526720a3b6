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

// Package mlmodel wraps the pre-trained propensity-to-buy classifier. The
// model is opaque to the rest of the service: it accepts feature vectors in
// the fixed model column order and returns one output per input row.
package mlmodel

import "context"

// Predictor is the capability exposed by the trained classifier.
//
// Predict returns the model's raw predicted value per row; used by the
// direct scoring convention. PredictProbability returns the positive-class
// probability per row; used by the percentage convention. Both score a whole
// batch atomically: any rejected row fails the batch with no partial output.
type Predictor interface {
	Predict(ctx context.Context, features [][]float64) ([]float64, error)
	PredictProbability(ctx context.Context, features [][]float64) ([]float64, error)
}
