package payments

import (
	"time"

	"github.com/musickeys/backend/app/models"
	"github.com/musickeys/backend/app/repository"
)

const (
	TimeFilterAll   = "all"
	TimeFilterMonth = "month"
	TimeFilterWeek  = "week"
)

// PlanFilterAll disables plan filtering.
const PlanFilterAll = "all"

// DefaultListLimit caps payment listings when the caller does not supply one.
const DefaultListLimit = 50

// Stats is the aggregate view over the (filtered) ledger.
type Stats struct {
	TotalRevenue       float64            `json:"totalRevenue"`
	MonthlyRevenue     float64            `json:"monthlyRevenue"`
	TotalPayments      int                `json:"totalPayments"`
	SuccessfulPayments int                `json:"successfulPayments"`
	FailedPayments     int                `json:"failedPayments"`
	AverageOrderValue  float64            `json:"averageOrderValue"`
	RevenueByPlan      map[string]float64 `json:"revenueByPlan"`
	SuccessRate        float64            `json:"successRate"`
}

// Analytics computes read-only aggregates over the payment ledger.
type Analytics struct {
	repo repository.PaymentRepository
}

// NewAnalytics creates an analytics reader over the given ledger.
func NewAnalytics(repo repository.PaymentRepository) *Analytics {
	return &Analytics{repo: repo}
}

// ComputeStats aggregates the ledger under the given time and plan filters.
// It tolerates an empty ledger: all rates and averages are zero, never NaN.
func (a *Analytics) ComputeStats(timeFilter, planFilter string) (*Stats, error) {
	filtered, err := a.filteredPayments(timeFilter, planFilter)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	monthStart := startOfMonth(now)

	stats := &Stats{RevenueByPlan: make(map[string]float64, len(knownPlanKeys))}
	for _, key := range KnownPlanKeys() {
		stats.RevenueByPlan[key] = 0
	}

	for _, p := range filtered {
		stats.TotalPayments++
		if !p.IsSuccessful() {
			stats.FailedPayments++
			continue
		}
		stats.SuccessfulPayments++
		stats.TotalRevenue += p.Amount
		if !p.CreatedAt.Before(monthStart) {
			stats.MonthlyRevenue += p.Amount
		}
		if _, ok := stats.RevenueByPlan[p.Plan]; ok {
			stats.RevenueByPlan[p.Plan] += p.Amount
		}
	}

	if stats.SuccessfulPayments > 0 {
		stats.AverageOrderValue = stats.TotalRevenue / float64(stats.SuccessfulPayments)
	}
	if stats.TotalPayments > 0 {
		stats.SuccessRate = float64(stats.SuccessfulPayments) / float64(stats.TotalPayments) * 100
	}
	return stats, nil
}

// ListPayments returns the filtered ledger sorted by creation time
// descending, truncated to limit (DefaultListLimit when limit <= 0).
func (a *Analytics) ListPayments(timeFilter, planFilter string, limit int) ([]models.Payment, error) {
	filtered, err := a.filteredPayments(timeFilter, planFilter)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if len(filtered) > limit {
		filtered = filtered[:limit]
	}
	return filtered, nil
}

// filteredPayments loads the ledger (already newest-first) and applies the
// time and plan filters.
func (a *Analytics) filteredPayments(timeFilter, planFilter string) ([]models.Payment, error) {
	all, err := a.repo.List()
	if err != nil {
		return nil, err
	}

	var cutoff time.Time
	switch timeFilter {
	case TimeFilterMonth:
		cutoff = startOfMonth(time.Now())
	case TimeFilterWeek:
		cutoff = time.Now().AddDate(0, 0, -7)
	}

	out := make([]models.Payment, 0, len(all))
	for _, p := range all {
		if !cutoff.IsZero() && p.CreatedAt.Before(cutoff) {
			continue
		}
		if planFilter != "" && planFilter != PlanFilterAll && p.Plan != planFilter {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func startOfMonth(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
}
