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
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"

	leadmodel "github.com/wso2/sales-lead-scoring-service/internal/leads/model"
	runmodel "github.com/wso2/sales-lead-scoring-service/internal/runs/model"
	"github.com/wso2/sales-lead-scoring-service/internal/scoring/model"
	"github.com/wso2/sales-lead-scoring-service/internal/system/constants"
	errors2 "github.com/wso2/sales-lead-scoring-service/internal/system/errors"
	"github.com/wso2/sales-lead-scoring-service/internal/system/log"
)

func TestMain(m *testing.M) {
	_ = log.Init("ERROR")
	os.Exit(m.Run())
}

// ---------------------------------------------------------------------------
// Fakes
// ---------------------------------------------------------------------------

type fakePredictor struct {
	outputs []float64
	err     error
	calls   int
}

func (p *fakePredictor) Predict(_ context.Context, vectors [][]float64) ([]float64, error) {
	return p.predict(vectors)
}

func (p *fakePredictor) PredictProbability(_ context.Context, vectors [][]float64) ([]float64, error) {
	return p.predict(vectors)
}

func (p *fakePredictor) predict(vectors [][]float64) ([]float64, error) {
	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	if p.outputs != nil {
		return p.outputs, nil
	}
	out := make([]float64, len(vectors))
	for i := range vectors {
		out[i] = 0.5
	}
	return out, nil
}

type fakeSource struct {
	records []leadmodel.Record
	err     error
}

func (s *fakeSource) GetLeads(_ context.Context, _ bool) ([]leadmodel.Record, error) {
	return s.records, s.err
}

type fakeSink struct {
	written   map[string]leadmodel.Record
	ensureErr error
	writeErr  error
}

func (s *fakeSink) EnsureCollection(_ context.Context) error {
	return s.ensureErr
}

func (s *fakeSink) UpsertScoredLead(_ context.Context, id string, record leadmodel.Record) error {
	if s.writeErr != nil {
		return s.writeErr
	}
	if s.written == nil {
		s.written = map[string]leadmodel.Record{}
	}
	s.written[id] = record
	return nil
}

type fakeRecorder struct {
	runs []runmodel.ScoringRun
}

func (r *fakeRecorder) RecordRun(run runmodel.ScoringRun) error {
	r.runs = append(r.runs, run)
	return nil
}

func newTestService(convention string, predictor *fakePredictor, source *fakeSource,
	sink *fakeSink, recorder *fakeRecorder) *ScoringService {

	thresholds, _ := model.ThresholdsFor(convention)
	return &ScoringService{
		predictor:  predictor,
		source:     source,
		sink:       sink,
		recorder:   recorder,
		convention: convention,
		thresholds: thresholds,
	}
}

// ---------------------------------------------------------------------------
// Pipeline
// ---------------------------------------------------------------------------

func TestRunScoringPercentageConvention(t *testing.T) {
	predictor := &fakePredictor{outputs: []float64{0.91}}
	source := &fakeSource{records: makeLeadRecords(1)}
	sink := &fakeSink{}
	recorder := &fakeRecorder{}
	svc := newTestService(constants.ConventionPercentage, predictor, source, sink, recorder)

	result, err := svc.RunScoring(context.Background(), false)
	assert.NoError(t, err)
	assert.False(t, result.NoData)
	assert.Equal(t, 1, result.TotalRecords)
	assert.True(t, result.SinkWritten)

	scored := result.Scored[0]
	assert.Equal(t, 91.0, scored[leadmodel.FieldScore], "probability is reported as a percentage")
	assert.Equal(t, string(model.TierPlatinum), scored[leadmodel.FieldTier])
	assert.Equal(t, map[string]int{"Platinum": 1}, result.Distribution)

	// The original field set travels with the derived ones.
	assert.Equal(t, float64(20), scored["Age"])

	assert.Len(t, sink.written, 1)
	for id := range sink.written {
		assert.NotEmpty(t, id)
	}

	assert.Len(t, recorder.runs, 1)
	run := recorder.runs[0]
	assert.Equal(t, constants.RunStatusCompleted, run.Status)
	assert.Equal(t, 1, run.PlatinumCount)
	assert.Equal(t, 1, run.ScoredRecords)
}

func TestRunScoringDirectConvention(t *testing.T) {
	predictor := &fakePredictor{outputs: []float64{0.65}}
	source := &fakeSource{records: makeLeadRecords(1)}
	svc := newTestService(constants.ConventionDirect, predictor, source, &fakeSink{}, &fakeRecorder{})

	result, err := svc.RunScoring(context.Background(), false)
	assert.NoError(t, err)

	scored := result.Scored[0]
	assert.Equal(t, 0.65, scored[leadmodel.FieldScore], "direct mode keeps the raw model output")
	assert.Equal(t, string(model.TierGold), scored[leadmodel.FieldTier])
}

func TestRunScoringTierDistribution(t *testing.T) {
	predictor := &fakePredictor{outputs: []float64{0.95, 0.80, 0.60, 0.30}}
	source := &fakeSource{records: makeLeadRecords(4)}
	svc := newTestService(constants.ConventionPercentage, predictor, source, &fakeSink{}, &fakeRecorder{})

	result, err := svc.RunScoring(context.Background(), false)
	assert.NoError(t, err)
	assert.Equal(t, map[string]int{
		"Platinum": 1,
		"Gold":     1,
		"Silver":   1,
		"Bronze":   1,
	}, result.Distribution)
}

func TestRunScoringMissingColumnFailsWholeBatch(t *testing.T) {
	records := makeLeadRecords(100)
	delete(records[10], "ZIP Code")
	delete(records[50], "ZIP Code")
	delete(records[90], "ZIP Code")

	predictor := &fakePredictor{}
	sink := &fakeSink{}
	recorder := &fakeRecorder{}
	svc := newTestService(constants.ConventionPercentage, predictor, &fakeSource{records: records}, sink, recorder)

	result, err := svc.RunScoring(context.Background(), false)
	assert.Nil(t, result)
	assert.Error(t, err)

	var clientError *errors2.ClientError
	assert.True(t, errors.As(err, &clientError))
	assert.Equal(t, errors2.ErrMissingFeatures.Code, clientError.Code)
	assert.Contains(t, clientError.Description, "ZIP Code")

	assert.Zero(t, predictor.calls, "model must not run on a malformed frame")
	assert.Empty(t, sink.written, "no partial results reach the sink")

	assert.Len(t, recorder.runs, 1)
	assert.Equal(t, constants.RunStatusFailed, recorder.runs[0].Status)
}

func TestRunScoringEmptyInput(t *testing.T) {
	predictor := &fakePredictor{}
	sink := &fakeSink{}
	recorder := &fakeRecorder{}
	svc := newTestService(constants.ConventionPercentage, predictor, &fakeSource{}, sink, recorder)

	result, err := svc.RunScoring(context.Background(), false)
	assert.NoError(t, err, "an empty record set is not a failure")
	assert.True(t, result.NoData)
	assert.Zero(t, result.TotalRecords)

	assert.Zero(t, predictor.calls)
	assert.Empty(t, sink.written)
	assert.Len(t, recorder.runs, 1)
	assert.Equal(t, constants.RunStatusNoData, recorder.runs[0].Status)

	_, available := svc.LastResults()
	assert.False(t, available)
}

func TestRunScoringModelFailure(t *testing.T) {
	predictor := &fakePredictor{err: fmt.Errorf("feature count mismatch")}
	sink := &fakeSink{}
	svc := newTestService(constants.ConventionPercentage, predictor, &fakeSource{records: makeLeadRecords(3)}, sink, &fakeRecorder{})

	result, err := svc.RunScoring(context.Background(), false)
	assert.Nil(t, result)

	var serverError *errors2.ServerError
	assert.True(t, errors.As(err, &serverError))
	assert.Equal(t, errors2.MODEL_INVOCATION.Code, serverError.Code)
	assert.Empty(t, sink.written, "a model failure yields no partial scores")
}

func TestRunScoringOutputLengthMismatch(t *testing.T) {
	predictor := &fakePredictor{outputs: []float64{0.5, 0.5}}
	svc := newTestService(constants.ConventionPercentage, predictor, &fakeSource{records: makeLeadRecords(3)}, &fakeSink{}, &fakeRecorder{})

	result, err := svc.RunScoring(context.Background(), false)
	assert.Nil(t, result)

	var serverError *errors2.ServerError
	assert.True(t, errors.As(err, &serverError))
	assert.Equal(t, errors2.MODEL_INVOCATION.Code, serverError.Code)
}

// counterValue reads a counter from the default registry, summed across
// label sets.
func counterValue(t *testing.T, name string) float64 {
	t.Helper()
	families, err := prometheus.DefaultGatherer.Gather()
	assert.NoError(t, err)

	total := 0.0
	for _, family := range families {
		if family.GetName() != name {
			continue
		}
		for _, metric := range family.GetMetric() {
			total += metric.GetCounter().GetValue()
		}
	}
	return total
}

func TestRunScoringSinkFailureKeepsResults(t *testing.T) {
	predictor := &fakePredictor{outputs: []float64{0.91, 0.42}}
	sink := &fakeSink{writeErr: fmt.Errorf("request rate too large")}
	recorder := &fakeRecorder{}
	svc := newTestService(constants.ConventionPercentage, predictor, &fakeSource{records: makeLeadRecords(2)}, sink, recorder)

	scoredBefore := counterValue(t, "lss_records_scored_total")

	result, err := svc.RunScoring(context.Background(), false)
	assert.Error(t, err)

	var serverError *errors2.ServerError
	assert.True(t, errors.As(err, &serverError))
	assert.Equal(t, errors2.SINK_WRITE.Code, serverError.Code)

	// Scoring succeeded before the sink failed, so the results survive.
	assert.NotNil(t, result)
	assert.False(t, result.SinkWritten)
	assert.NotEmpty(t, result.SinkFailure)
	assert.Len(t, result.Scored, 2)

	last, available := svc.LastResults()
	assert.True(t, available)
	assert.Len(t, last, 2)

	assert.Equal(t, constants.RunStatusFailed, recorder.runs[0].Status)

	// Scoring succeeded, so the scored-lead counters reflect the batch
	// even though the write failed.
	assert.Equal(t, 2.0, counterValue(t, "lss_records_scored_total")-scoredBefore)
}

// Scoring the same record set twice yields identical scores and tiers.
func TestRunScoringIsDeterministic(t *testing.T) {
	records := makeLeadRecords(10)
	outputs := []float64{0.05, 0.15, 0.25, 0.35, 0.45, 0.55, 0.65, 0.75, 0.85, 0.95}

	first := newTestService(constants.ConventionPercentage,
		&fakePredictor{outputs: outputs}, &fakeSource{records: records}, &fakeSink{}, &fakeRecorder{})
	second := newTestService(constants.ConventionPercentage,
		&fakePredictor{outputs: outputs}, &fakeSource{records: records}, &fakeSink{}, &fakeRecorder{})

	resultA, errA := first.RunScoring(context.Background(), false)
	resultB, errB := second.RunScoring(context.Background(), false)
	assert.NoError(t, errA)
	assert.NoError(t, errB)

	for i := range resultA.Scored {
		assert.Equal(t, resultA.Scored[i][leadmodel.FieldScore], resultB.Scored[i][leadmodel.FieldScore])
		assert.Equal(t, resultA.Scored[i][leadmodel.FieldTier], resultB.Scored[i][leadmodel.FieldTier])
	}
	assert.Equal(t, resultA.Distribution, resultB.Distribution)
}

// Enrichment clones records; the source record set never gains derived fields.
func TestRunScoringDoesNotMutateSourceRecords(t *testing.T) {
	records := makeLeadRecords(2)
	svc := newTestService(constants.ConventionPercentage,
		&fakePredictor{}, &fakeSource{records: records}, &fakeSink{}, &fakeRecorder{})

	_, err := svc.RunScoring(context.Background(), false)
	assert.NoError(t, err)

	for _, record := range records {
		assert.NotContains(t, record, leadmodel.FieldScore)
		assert.NotContains(t, record, leadmodel.FieldTier)
	}
}

func TestInitScoringServiceRejectsUnknownConvention(t *testing.T) {
	err := InitScoringService(&fakePredictor{}, &fakeSource{}, &fakeSink{}, &fakeRecorder{}, "ratio")
	assert.Error(t, err)

	var clientError *errors2.ClientError
	assert.True(t, errors.As(err, &clientError))
	assert.Equal(t, errors2.ErrInvalidConvention.Code, clientError.Code)
}
