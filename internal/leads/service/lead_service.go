package service

import (
	"context"
	"fmt"
	"time"

	"github.com/wso2/sales-lead-scoring-service/internal/leads/model"
	"github.com/wso2/sales-lead-scoring-service/internal/system/cache"
	"github.com/wso2/sales-lead-scoring-service/internal/system/constants"
	errors2 "github.com/wso2/sales-lead-scoring-service/internal/system/errors"
	"github.com/wso2/sales-lead-scoring-service/internal/system/log"
)

// LeadReader is the read contract of the input collection.
type LeadReader interface {
	GetAllLeads(ctx context.Context) ([]model.Record, error)
}

// ScoredLeadReader is the read/clear contract of the output collection.
type ScoredLeadReader interface {
	GetAllScoredLeads(ctx context.Context) ([]model.Record, error)
	ClearScoredLeads(ctx context.Context) (int64, error)
}

// LeadsServiceInterface exposes the customer record set to the rest of the
// service. The record set is cached until an explicit refresh or until the
// configured TTL elapses.
type LeadsServiceInterface interface {
	GetLeads(ctx context.Context, refresh bool) ([]model.Record, error)
	GetScoredLeads(ctx context.Context) ([]model.Record, error)
	ClearScoredLeads(ctx context.Context) (int64, error)
	InvalidateCache()
}

type LeadsService struct {
	leadRepo   LeadReader
	scoredRepo ScoredLeadReader
	leadsCache *cache.Cache
}

var leadsService *LeadsService

// InitLeadsService wires the service once at startup.
func InitLeadsService(leadRepo LeadReader, scoredRepo ScoredLeadReader, cacheTTL time.Duration) {
	leadsService = &LeadsService{
		leadRepo:   leadRepo,
		scoredRepo: scoredRepo,
		leadsCache: cache.NewCache(cacheTTL),
	}
}

// GetLeadsService returns the initialized service instance.
func GetLeadsService() LeadsServiceInterface {
	if leadsService == nil {
		panic("leads service is not initialized")
	}
	return leadsService
}

// GetLeads returns all customer records, from cache when possible. A refresh
// forces a re-read from the document store.
func (s *LeadsService) GetLeads(ctx context.Context, refresh bool) ([]model.Record, error) {
	logger := log.GetLogger()

	if !refresh {
		if cached, found := s.leadsCache.Get(constants.LeadsCacheKey); found {
			records := cached.([]model.Record)
			logger.Debug(fmt.Sprintf("Serving %d leads from cache", len(records)))
			return records, nil
		}
	}

	records, err := s.leadRepo.GetAllLeads(ctx)
	if err != nil {
		errorMsg := "Failed to read customer records from the input collection"
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_LEADS.Code,
			Message:     errors2.FETCH_LEADS.Message,
			Description: errorMsg,
		}, err)
	}

	s.leadsCache.Set(constants.LeadsCacheKey, records)
	logger.Info(fmt.Sprintf("Fetched %d customer records", len(records)))
	return records, nil
}

// GetScoredLeads reads back the scored output collection.
func (s *LeadsService) GetScoredLeads(ctx context.Context) ([]model.Record, error) {
	records, err := s.scoredRepo.GetAllScoredLeads(ctx)
	if err != nil {
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:    errors2.FETCH_SCORED_LEADS.Code,
			Message: errors2.FETCH_SCORED_LEADS.Message,
		}, err)
	}
	if records == nil {
		records = []model.Record{}
	}
	return records, nil
}

// ClearScoredLeads empties the output collection. This is a distinct
// operation from scoring, invoked by the caller before a clean re-score.
func (s *LeadsService) ClearScoredLeads(ctx context.Context) (int64, error) {
	deleted, err := s.scoredRepo.ClearScoredLeads(ctx)
	if err != nil {
		return 0, errors2.NewServerError(errors2.ErrorMessage{
			Code:    errors2.SINK_CLEAR.Code,
			Message: errors2.SINK_CLEAR.Message,
		}, err)
	}
	log.GetLogger().Info(fmt.Sprintf("Cleared %d scored leads", deleted))
	return deleted, nil
}

// InvalidateCache drops the cached record set.
func (s *LeadsService) InvalidateCache() {
	s.leadsCache.Delete(constants.LeadsCacheKey)
}
