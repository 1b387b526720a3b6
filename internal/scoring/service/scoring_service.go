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

package service

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	leadmodel "github.com/wso2/sales-lead-scoring-service/internal/leads/model"
	"github.com/wso2/sales-lead-scoring-service/internal/mlmodel"
	runmodel "github.com/wso2/sales-lead-scoring-service/internal/runs/model"
	"github.com/wso2/sales-lead-scoring-service/internal/scoring/model"
	"github.com/wso2/sales-lead-scoring-service/internal/system/constants"
	errors2 "github.com/wso2/sales-lead-scoring-service/internal/system/errors"
	"github.com/wso2/sales-lead-scoring-service/internal/system/log"
	"github.com/wso2/sales-lead-scoring-service/internal/system/metrics"
)

// LeadSource is the pipeline's input collaborator.
type LeadSource interface {
	GetLeads(ctx context.Context, refresh bool) ([]leadmodel.Record, error)
}

// ScoredLeadSink is the pipeline's output collaborator. Every record is
// written under a freshly generated identifier; the whole write either
// succeeds or the run reports a sink failure.
type ScoredLeadSink interface {
	EnsureCollection(ctx context.Context) error
	UpsertScoredLead(ctx context.Context, id string, record leadmodel.Record) error
}

// RunRecorder persists the outcome of a scoring run.
type RunRecorder interface {
	RecordRun(run runmodel.ScoringRun) error
}

// ScoringServiceInterface runs the scoring pipeline and retains the last
// scored batch for the session.
type ScoringServiceInterface interface {
	RunScoring(ctx context.Context, refresh bool) (*model.ScoringResult, error)
	LastResults() ([]leadmodel.Record, bool)
	Convention() string
}

// ScoringService applies the classifier to the customer record set and maps
// each score to a tier. One scoring run executes start to finish on the
// caller's goroutine; there is no background scheduling or retry.
type ScoringService struct {
	predictor  mlmodel.Predictor
	source     LeadSource
	sink       ScoredLeadSink
	recorder   RunRecorder
	convention string
	thresholds model.Thresholds

	mu          sync.RWMutex
	lastResults []leadmodel.Record
}

var scoringService *ScoringService

// InitScoringService wires the pipeline once at startup. The convention
// fixes both the score units and the threshold units for every run.
func InitScoringService(predictor mlmodel.Predictor, source LeadSource, sink ScoredLeadSink,
	recorder RunRecorder, convention string) error {

	thresholds, ok := model.ThresholdsFor(convention)
	if !ok {
		return errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.ErrInvalidConvention.Code,
			Message:     errors2.ErrInvalidConvention.Message,
			Description: fmt.Sprintf("Unknown scoring convention: %q", convention),
		}, http.StatusBadRequest)
	}

	scoringService = &ScoringService{
		predictor:  predictor,
		source:     source,
		sink:       sink,
		recorder:   recorder,
		convention: convention,
		thresholds: thresholds,
	}
	return nil
}

// GetScoringService returns the initialized service instance.
func GetScoringService() ScoringServiceInterface {
	if scoringService == nil {
		panic("scoring service is not initialized")
	}
	return scoringService
}

// Convention reports the active scoring convention.
func (s *ScoringService) Convention() string {
	return s.convention
}

// LastResults returns the most recent scored batch of this session. Results
// stay available even when the sink write failed.
func (s *ScoringService) LastResults() ([]leadmodel.Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.lastResults == nil {
		return nil, false
	}
	return s.lastResults, true
}

// RunScoring executes the full pipeline: fetch, strict feature selection,
// model invocation, tiering, sink write, run record. The batch is atomic:
// a missing column or a model failure produces no partial results.
func (s *ScoringService) RunScoring(ctx context.Context, refresh bool) (*model.ScoringResult, error) {
	logger := log.GetLogger()
	startedAt := time.Now()
	runID := uuid.New().String()

	records, err := s.source.GetLeads(ctx, refresh)
	if err != nil {
		s.finishRun(runID, startedAt, 0, nil, constants.RunStatusFailed, err.Error())
		return nil, err
	}

	// Empty input is a soft short-circuit, not a failure: no model call,
	// no sink write.
	if len(records) == 0 {
		logger.Info("No customer records to score")
		s.finishRun(runID, startedAt, 0, nil, constants.RunStatusNoData, "")
		return &model.ScoringResult{
			RunID:        runID,
			NoData:       true,
			Distribution: map[string]int{},
		}, nil
	}

	features := model.RequiredFeatures()
	projected, missing := ProjectRecords(records, features)
	if len(missing) > 0 {
		clientError := errors2.NewClientError(errors2.ErrorMessage{
			Code:    errors2.ErrMissingFeatures.Code,
			Message: errors2.ErrMissingFeatures.Message,
			Description: fmt.Sprintf("Missing required columns: %s",
				strings.Join(missing, ", ")),
		}, http.StatusUnprocessableEntity)
		s.finishRun(runID, startedAt, len(records), nil, constants.RunStatusFailed, clientError.Error())
		return nil, clientError
	}

	scores, err := s.scoreBatch(ctx, projected, features)
	if err != nil {
		errorMsg := "Model rejected the projected record set"
		logger.Debug(errorMsg, log.Error(err))
		serverError := errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.MODEL_INVOCATION.Code,
			Message:     errors2.MODEL_INVOCATION.Message,
			Description: errorMsg,
		}, err)
		s.finishRun(runID, startedAt, len(records), nil, constants.RunStatusFailed, serverError.Error())
		return nil, serverError
	}

	// Enrich full records, not the projections, so callers see every
	// original field plus the two derived ones.
	scored := make([]leadmodel.Record, len(records))
	distribution := map[string]int{}
	for i, record := range records {
		tier := model.TierFor(scores[i], s.thresholds)
		enriched := record.Clone()
		enriched[leadmodel.FieldScore] = scores[i]
		enriched[leadmodel.FieldTier] = string(tier)
		scored[i] = enriched
		distribution[string(tier)]++
	}

	s.mu.Lock()
	s.lastResults = scored
	s.mu.Unlock()

	result := &model.ScoringResult{
		RunID:        runID,
		TotalRecords: len(records),
		Scored:       scored,
		Distribution: distribution,
	}

	// Scoring succeeded at this point; the scored-lead counters must not
	// depend on the sink write outcome.
	metrics.RecordScoredLeads(distribution)

	if err := s.writeToSink(ctx, scored); err != nil {
		// Scoring already succeeded; keep the results available and
		// report the sink failure with the run.
		logger.Error("Failed to write scored leads to the output collection", log.Error(err))
		result.SinkWritten = false
		result.SinkFailure = err.Error()
		s.finishRun(runID, startedAt, len(records), distribution, constants.RunStatusFailed, err.Error())
		return result, err
	}

	result.SinkWritten = true
	s.finishRun(runID, startedAt, len(records), distribution, constants.RunStatusCompleted, "")
	logger.Info(fmt.Sprintf("Scored %d customers", len(scored)),
		log.String("runId", runID),
		log.String("convention", s.convention))
	return result, nil
}

// scoreBatch invokes the classifier under the active convention and returns
// one score per record in the convention's units.
func (s *ScoringService) scoreBatch(ctx context.Context, projected []leadmodel.Record,
	features []string) ([]float64, error) {

	vectors, err := vectorizeRecords(projected, features)
	if err != nil {
		return nil, err
	}

	var outputs []float64
	if s.convention == constants.ConventionPercentage {
		outputs, err = s.predictor.PredictProbability(ctx, vectors)
	} else {
		outputs, err = s.predictor.Predict(ctx, vectors)
	}
	if err != nil {
		return nil, err
	}
	if len(outputs) != len(projected) {
		return nil, fmt.Errorf("model returned %d outputs for %d records",
			len(outputs), len(projected))
	}

	if s.convention == constants.ConventionPercentage {
		for i := range outputs {
			outputs[i] *= 100
		}
	}
	return outputs, nil
}

func (s *ScoringService) writeToSink(ctx context.Context, scored []leadmodel.Record) error {
	if err := s.sink.EnsureCollection(ctx); err != nil {
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:    errors2.SINK_CREATE.Code,
			Message: errors2.SINK_CREATE.Message,
		}, err)
	}
	for _, record := range scored {
		if err := s.sink.UpsertScoredLead(ctx, uuid.New().String(), record); err != nil {
			return errors2.NewServerError(errors2.ErrorMessage{
				Code:        errors2.SINK_WRITE.Code,
				Message:     errors2.SINK_WRITE.Message,
				Description: "Scored results are retained and can still be downloaded.",
			}, err)
		}
	}
	return nil
}

func (s *ScoringService) finishRun(runID string, startedAt time.Time, total int,
	distribution map[string]int, status, failureReason string) {

	finishedAt := time.Now()
	run := runmodel.ScoringRun{
		RunID:         runID,
		StartedAt:     startedAt,
		FinishedAt:    finishedAt,
		TotalRecords:  total,
		Status:        status,
		FailureReason: failureReason,
	}
	if distribution != nil {
		run.ScoredRecords = total
		run.PlatinumCount = distribution[string(model.TierPlatinum)]
		run.GoldCount = distribution[string(model.TierGold)]
		run.SilverCount = distribution[string(model.TierSilver)]
		run.BronzeCount = distribution[string(model.TierBronze)]
	}

	if s.recorder != nil {
		if err := s.recorder.RecordRun(run); err != nil {
			// Run history is bookkeeping; its failure never fails the run.
			log.GetLogger().Warn("Failed to record scoring run", log.Error(err))
		}
	}
	metrics.RecordRun(status, finishedAt.Sub(startedAt))
}
