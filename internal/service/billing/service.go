package billing

import (
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/brightwell-health/portal/internal/model"
	"github.com/brightwell-health/portal/internal/store"
	"github.com/brightwell-health/portal/pkg/logger"
	"github.com/brightwell-health/portal/pkg/metrics"
)

const (
	reportCacheTTL     = 30 * time.Second
	reportCacheCleanup = 5 * time.Minute
)

// Service backs the biller portal: claim worklists and revenue aggregation
// over the store's claim collection. Computed reports are cached briefly;
// the store is the source of truth and a stale window of the TTL is fine for
// a dashboard.
type Service struct {
	store   *store.Store
	reports *cache.Cache
	logger  *logger.Logger
	metrics *metrics.Metrics
}

func NewService(st *store.Store, log *logger.Logger, m *metrics.Metrics) *Service {
	return &Service{
		store:   st,
		reports: cache.New(reportCacheTTL, reportCacheCleanup),
		logger:  log,
		metrics: m,
	}
}

// RevenueReport aggregates a practice's claims.
type RevenueReport struct {
	PracticeID     string             `json:"practice_id"`
	TotalClaims    int                `json:"total_claims"`
	TotalBilled    float64            `json:"total_billed"`
	TotalCollected float64            `json:"total_collected"`
	Outstanding    float64            `json:"outstanding"`
	CollectionRate float64            `json:"collection_rate"`
	DenialRate     float64            `json:"denial_rate"`
	ByPayer        map[string]float64 `json:"by_payer"`
}

// ListClaims returns the practice's claims, optionally filtered by status.
// The status comparison is over canonical lowercase values; callers may pass
// any casing.
func (s *Service) ListClaims(practiceID string, status string) []model.Claim {
	claims := s.store.ClaimsForPractice(practiceID)
	if status == "" {
		return claims
	}

	want := model.NormalizeClaimStatus(status)
	var out []model.Claim
	for _, c := range claims {
		if c.Status == want {
			out = append(out, c)
		}
	}
	return out
}

// Report computes (or returns a cached) revenue report for the practice.
// Collection rate is paid claims over total claims, denial rate is denied
// over total, both as percentages; an empty practice reports zero rates.
func (s *Service) Report(practiceID string) *RevenueReport {
	key := "report:" + practiceID
	if cached, ok := s.reports.Get(key); ok {
		if s.metrics != nil {
			s.metrics.ReportCacheHits.Inc()
		}
		return cached.(*RevenueReport)
	}
	if s.metrics != nil {
		s.metrics.ReportCacheMisses.Inc()
	}

	report := s.compute(practiceID)
	s.reports.Set(key, report, cache.DefaultExpiration)
	return report
}

func (s *Service) compute(practiceID string) *RevenueReport {
	claims := s.store.ClaimsForPractice(practiceID)

	report := &RevenueReport{
		PracticeID: practiceID,
		ByPayer:    make(map[string]float64),
	}

	var paid, denied int
	for _, c := range claims {
		report.TotalClaims++
		report.TotalBilled += c.Amount
		report.ByPayer[c.Payer] += c.Amount

		switch c.Status {
		case model.ClaimStatusPaid:
			paid++
			report.TotalCollected += c.Amount
		case model.ClaimStatusDenied:
			denied++
		default:
			report.Outstanding += c.Amount
		}
	}

	if report.TotalClaims > 0 {
		report.CollectionRate = float64(paid) / float64(report.TotalClaims) * 100
		report.DenialRate = float64(denied) / float64(report.TotalClaims) * 100
	}
	return report
}
