package payments

import (
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/musickeys/backend/app/models"
	"github.com/musickeys/backend/app/repository"
)

func seedPayment(t *testing.T, repo repository.PaymentRepository, plan string, amount float64, status string, createdAt time.Time) *models.Payment {
	t.Helper()
	p := &models.Payment{
		UserID:            "user-1",
		UserName:          "User",
		Amount:            amount,
		Currency:          "INR",
		Plan:              plan,
		PlanName:          DefaultPlanName(plan),
		PlanDuration:      DefaultPlanDuration(plan),
		Status:            status,
		PaymentMethod:     "razorpay",
		RazorpayOrderID:   fmt.Sprintf("order_%s_%d", plan, createdAt.UnixNano()),
		RazorpayPaymentID: fmt.Sprintf("pay_%s_%d", plan, createdAt.UnixNano()),
		CreatedAt:         createdAt,
	}
	if err := repo.Create(p); err != nil {
		t.Fatalf("seed payment: %v", err)
	}
	return p
}

func TestComputeStatsEmptyLedger(t *testing.T) {
	analytics := NewAnalytics(repository.NewMemoryPaymentRepository())

	stats, err := analytics.ComputeStats(TimeFilterAll, PlanFilterAll)
	if err != nil {
		t.Fatalf("ComputeStats() error = %v", err)
	}

	if stats.TotalRevenue != 0 || stats.MonthlyRevenue != 0 {
		t.Errorf("empty ledger revenue = %v / %v, want 0 / 0", stats.TotalRevenue, stats.MonthlyRevenue)
	}
	if stats.AverageOrderValue != 0 || stats.SuccessRate != 0 {
		t.Errorf("empty ledger AOV/rate = %v / %v, want 0 / 0", stats.AverageOrderValue, stats.SuccessRate)
	}
	if math.IsNaN(stats.AverageOrderValue) || math.IsNaN(stats.SuccessRate) {
		t.Error("empty ledger produced NaN")
	}

	// The plan breakdown always carries every catalog key, zeroed.
	for _, key := range KnownPlanKeys() {
		v, ok := stats.RevenueByPlan[key]
		if !ok {
			t.Errorf("RevenueByPlan missing key %q", key)
		}
		if v != 0 {
			t.Errorf("RevenueByPlan[%q] = %v, want 0", key, v)
		}
	}
}

func TestComputeStatsAggregates(t *testing.T) {
	repo := repository.NewMemoryPaymentRepository()
	now := time.Now()

	seedPayment(t, repo, "basic", 100, models.PaymentStatusSuccess, now.Add(-48*time.Hour))
	seedPayment(t, repo, "intermediate", 200, models.PaymentStatusSuccess, now.Add(-24*time.Hour))
	seedPayment(t, repo, "styles-tones", 300, models.PaymentStatusSuccess, now.Add(-time.Hour))
	seedPayment(t, repo, "basic", 50, models.PaymentStatusFailed, now.Add(-time.Minute))

	analytics := NewAnalytics(repo)
	stats, err := analytics.ComputeStats(TimeFilterAll, PlanFilterAll)
	if err != nil {
		t.Fatalf("ComputeStats() error = %v", err)
	}

	if stats.TotalRevenue != 600 {
		t.Errorf("TotalRevenue = %v, want 600", stats.TotalRevenue)
	}
	if stats.TotalPayments != 4 || stats.SuccessfulPayments != 3 || stats.FailedPayments != 1 {
		t.Errorf("counts = %d/%d/%d, want 4/3/1", stats.TotalPayments, stats.SuccessfulPayments, stats.FailedPayments)
	}
	if stats.SuccessfulPayments+stats.FailedPayments != stats.TotalPayments {
		t.Error("successful + failed != total")
	}
	if stats.AverageOrderValue != 200 {
		t.Errorf("AverageOrderValue = %v, want 200", stats.AverageOrderValue)
	}
	if stats.SuccessRate != 75 {
		t.Errorf("SuccessRate = %v, want 75", stats.SuccessRate)
	}
	if stats.RevenueByPlan["basic"] != 100 || stats.RevenueByPlan["intermediate"] != 200 || stats.RevenueByPlan["styles-tones"] != 300 {
		t.Errorf("RevenueByPlan = %v", stats.RevenueByPlan)
	}
	if stats.RevenueByPlan["advanced"] != 0 {
		t.Errorf("RevenueByPlan[advanced] = %v, want 0", stats.RevenueByPlan["advanced"])
	}
}

func TestComputeStatsMonthlyRevenueIgnoresTimeFilter(t *testing.T) {
	repo := repository.NewMemoryPaymentRepository()
	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	// One payment safely inside the current month, one before it.
	seedPayment(t, repo, "basic", 150, models.PaymentStatusSuccess, monthStart.Add(time.Hour))
	seedPayment(t, repo, "advanced", 400, models.PaymentStatusSuccess, monthStart.Add(-time.Hour))

	analytics := NewAnalytics(repo)
	stats, err := analytics.ComputeStats(TimeFilterAll, PlanFilterAll)
	if err != nil {
		t.Fatalf("ComputeStats() error = %v", err)
	}

	if stats.TotalRevenue != 550 {
		t.Errorf("TotalRevenue = %v, want 550", stats.TotalRevenue)
	}
	if stats.MonthlyRevenue != 150 {
		t.Errorf("MonthlyRevenue = %v, want 150 (current month only)", stats.MonthlyRevenue)
	}
}

func TestComputeStatsWeekFilter(t *testing.T) {
	repo := repository.NewMemoryPaymentRepository()
	now := time.Now()

	seedPayment(t, repo, "basic", 100, models.PaymentStatusSuccess, now.Add(-time.Hour))
	seedPayment(t, repo, "basic", 999, models.PaymentStatusSuccess, now.AddDate(0, 0, -10))

	analytics := NewAnalytics(repo)
	stats, err := analytics.ComputeStats(TimeFilterWeek, PlanFilterAll)
	if err != nil {
		t.Fatalf("ComputeStats() error = %v", err)
	}

	if stats.TotalPayments != 1 || stats.TotalRevenue != 100 {
		t.Errorf("week filter: payments=%d revenue=%v, want 1/100", stats.TotalPayments, stats.TotalRevenue)
	}
}

func TestListPaymentsOrderingAndLimit(t *testing.T) {
	repo := repository.NewMemoryPaymentRepository()
	now := time.Now()

	for i := 0; i < 5; i++ {
		seedPayment(t, repo, "basic", float64(100+i), models.PaymentStatusSuccess, now.Add(-time.Duration(5-i)*time.Hour))
	}

	analytics := NewAnalytics(repo)

	records, err := analytics.ListPayments(TimeFilterAll, PlanFilterAll, 2)
	if err != nil {
		t.Fatalf("ListPayments() error = %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("ListPayments(limit=2) returned %d records", len(records))
	}
	if !records[0].CreatedAt.After(records[1].CreatedAt) {
		t.Error("ListPayments() not sorted newest first")
	}
	if records[0].Amount != 104 {
		t.Errorf("newest record amount = %v, want 104", records[0].Amount)
	}

	// limit <= 0 falls back to the default cap
	all, err := analytics.ListPayments(TimeFilterAll, PlanFilterAll, 0)
	if err != nil {
		t.Fatalf("ListPayments() error = %v", err)
	}
	if len(all) != 5 {
		t.Errorf("ListPayments(limit=0) returned %d records, want 5", len(all))
	}
}

func TestListPaymentsPlanFilter(t *testing.T) {
	repo := repository.NewMemoryPaymentRepository()
	now := time.Now()

	seedPayment(t, repo, "basic", 100, models.PaymentStatusSuccess, now.Add(-2*time.Hour))
	seedPayment(t, repo, "advanced", 200, models.PaymentStatusSuccess, now.Add(-time.Hour))
	seedPayment(t, repo, "advanced", 250, models.PaymentStatusFailed, now)

	analytics := NewAnalytics(repo)
	records, err := analytics.ListPayments(TimeFilterAll, "advanced", 0)
	if err != nil {
		t.Fatalf("ListPayments() error = %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("plan filter returned %d records, want 2", len(records))
	}
	for _, r := range records {
		if r.Plan != "advanced" {
			t.Errorf("plan filter leaked record for plan %q", r.Plan)
		}
	}
}
