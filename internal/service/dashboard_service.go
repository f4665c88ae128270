package service

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/itsm-backoffice/internal/domain"
	"github.com/spec-kit/itsm-backoffice/internal/persistence"
	"github.com/spec-kit/itsm-backoffice/internal/repository"
)

// DashboardService computes summary counts, with a short-lived Redis cache
// in front of the store. Cache misses or a down Redis degrade to a direct
// computation.
type DashboardService struct {
	tickets   repository.TicketRepository
	assets    repository.AssetRepository
	companies repository.CompanyRepository
	cache     *persistence.Redis
	cacheTTL  time.Duration
	logger    *zap.Logger
}

// TicketStats summarizes the ticket population.
type TicketStats struct {
	Total      int64 `json:"total"`
	Open       int64 `json:"open"`
	InProgress int64 `json:"in_progress"`
	Resolved   int64 `json:"resolved"`
}

// AssetStats summarizes the asset population.
type AssetStats struct {
	Total    int64 `json:"total"`
	Active   int64 `json:"active"`
	InRepair int64 `json:"in_repair"`
}

// RecentTicket is a trimmed ticket row for the dashboard feed.
type RecentTicket struct {
	ID        string              `json:"id"`
	Title     string              `json:"title"`
	Status    domain.TicketStatus `json:"status"`
	CreatedAt time.Time           `json:"created_at"`
}

// DashboardStats is the aggregate dashboard payload.
type DashboardStats struct {
	Tickets       TicketStats    `json:"tickets"`
	Assets        AssetStats     `json:"assets"`
	Companies     int64          `json:"companies"`
	RecentTickets []RecentTicket `json:"recent_tickets"`
}

// NewDashboardService constructs the service.
func NewDashboardService(tickets repository.TicketRepository, assets repository.AssetRepository, companies repository.CompanyRepository, cache *persistence.Redis, cacheTTL time.Duration, logger *zap.Logger) *DashboardService {
	return &DashboardService{
		tickets:   tickets,
		assets:    assets,
		companies: companies,
		cache:     cache,
		cacheTTL:  cacheTTL,
		logger:    logger,
	}
}

// Stats computes dashboard counts within the actor's scope.
func (s *DashboardService) Stats(ctx context.Context, actor *domain.User) (*DashboardStats, error) {
	var companyID *string
	if actor.Role == domain.RoleClient {
		companyID = actor.CompanyID
	}

	cacheKey := "dashboard:stats:all"
	if companyID != nil {
		cacheKey = "dashboard:stats:" + *companyID
	}
	if cached := s.fromCache(ctx, cacheKey); cached != nil {
		return cached, nil
	}

	stats, err := s.compute(ctx, actor, companyID)
	if err != nil {
		return nil, err
	}
	s.toCache(ctx, cacheKey, stats)
	return stats, nil
}

func (s *DashboardService) compute(ctx context.Context, actor *domain.User, companyID *string) (*DashboardStats, error) {
	stats := &DashboardStats{RecentTickets: []RecentTicket{}}

	var err error
	if stats.Tickets.Total, err = s.tickets.Count(ctx, companyID, nil); err != nil {
		return nil, err
	}
	if stats.Tickets.Open, err = s.tickets.Count(ctx, companyID, []domain.TicketStatus{domain.TicketStatusOpen}); err != nil {
		return nil, err
	}
	if stats.Tickets.InProgress, err = s.tickets.Count(ctx, companyID, []domain.TicketStatus{domain.TicketStatusInProgress}); err != nil {
		return nil, err
	}
	if stats.Tickets.Resolved, err = s.tickets.Count(ctx, companyID, []domain.TicketStatus{domain.TicketStatusResolved, domain.TicketStatusClosed}); err != nil {
		return nil, err
	}

	if stats.Assets.Total, err = s.assets.Count(ctx, companyID, nil); err != nil {
		return nil, err
	}
	active := domain.AssetStatusActive
	if stats.Assets.Active, err = s.assets.Count(ctx, companyID, &active); err != nil {
		return nil, err
	}
	inRepair := domain.AssetStatusInRepair
	if stats.Assets.InRepair, err = s.assets.Count(ctx, companyID, &inRepair); err != nil {
		return nil, err
	}

	if actor.Role != domain.RoleClient {
		if stats.Companies, err = s.companies.Count(ctx); err != nil {
			return nil, err
		}
	}

	recent, err := s.tickets.Recent(ctx, companyID, 5)
	if err != nil {
		return nil, err
	}
	for _, t := range recent {
		stats.RecentTickets = append(stats.RecentTickets, RecentTicket{
			ID:        t.ID,
			Title:     t.Title,
			Status:    t.Status,
			CreatedAt: t.CreatedAt,
		})
	}
	return stats, nil
}

func (s *DashboardService) fromCache(ctx context.Context, key string) *DashboardStats {
	if s.cache == nil || s.cache.Client == nil || s.cacheTTL <= 0 {
		return nil
	}
	raw, err := s.cache.Client.Get(ctx, key).Bytes()
	if err != nil {
		return nil
	}
	var stats DashboardStats
	if err := json.Unmarshal(raw, &stats); err != nil {
		return nil
	}
	return &stats
}

func (s *DashboardService) toCache(ctx context.Context, key string, stats *DashboardStats) {
	if s.cache == nil || s.cache.Client == nil || s.cacheTTL <= 0 {
		return
	}
	raw, err := json.Marshal(stats)
	if err != nil {
		return
	}
	if err := s.cache.Client.Set(ctx, key, raw, s.cacheTTL).Err(); err != nil {
		s.logger.Debug("dashboard cache write failed", zap.Error(err))
	}
}
