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

package mlmodel

import (
	"context"
	"fmt"

	"github.com/dmitryikh/leaves"
	pkgerrors "github.com/pkg/errors"

	errors2 "github.com/wso2/sales-lead-scoring-service/internal/system/errors"
	"github.com/wso2/sales-lead-scoring-service/internal/system/log"
)

// XGBoostPredictor evaluates a serialized XGBoost ensemble in-process. The
// artifact is loaded once at startup and cached for the process lifetime.
type XGBoostPredictor struct {
	ensemble    *leaves.Ensemble
	numFeatures int
}

// LoadXGBoostModel reads the model artifact from disk. The transformation
// stored in the artifact (sigmoid for binary classifiers) is applied, so
// PredictProbability yields positive-class probabilities directly.
func LoadXGBoostModel(path string) (*XGBoostPredictor, error) {
	ensemble, err := leaves.XGEnsembleFromFile(path, true)
	if err != nil {
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:    errors2.MODEL_LOAD.Code,
			Message: errors2.MODEL_LOAD.Message,
		}, pkgerrors.Wrapf(err, "failed to load model artifact from %s", path))
	}

	logger := log.GetLogger()
	logger.Info("Model artifact loaded",
		log.String("path", path),
		log.Int("trees", ensemble.NEstimators()),
		log.Int("features", ensemble.NFeatures()))

	return &XGBoostPredictor{
		ensemble:    ensemble,
		numFeatures: ensemble.NFeatures(),
	}, nil
}

// Predict returns the model's raw predicted value for every row.
func (p *XGBoostPredictor) Predict(ctx context.Context, features [][]float64) ([]float64, error) {
	return p.evaluate(ctx, features)
}

// PredictProbability returns the positive-class probability for every row.
// With the artifact's transformation applied the raw output already is the
// probability, so both operations evaluate the same ensemble.
func (p *XGBoostPredictor) PredictProbability(ctx context.Context, features [][]float64) ([]float64, error) {
	return p.evaluate(ctx, features)
}

func (p *XGBoostPredictor) evaluate(ctx context.Context, features [][]float64) ([]float64, error) {
	outputs := make([]float64, len(features))
	for i, row := range features {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if len(row) != p.numFeatures {
			return nil, fmt.Errorf("row %d has %d features, model expects %d",
				i, len(row), p.numFeatures)
		}
		outputs[i] = p.ensemble.PredictSingle(row, 0)
	}
	return outputs, nil
}
