package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opsdesk-inc/opsdesk/internal/application/service/dto"
	"github.com/opsdesk-inc/opsdesk/internal/domain/prospect"
	domainservice "github.com/opsdesk-inc/opsdesk/internal/domain/service"
	"github.com/opsdesk-inc/opsdesk/internal/shared/logger"
)

func reportTestService(t *testing.T, capacity, usage, costPerUnit float64) *domainservice.Service {
	t.Helper()
	svc, err := domainservice.ReconstructService(
		1, 1, "hosting", capacity, usage, costPerUnit,
		domainservice.StatusActive, time.Now(), time.Now(),
	)
	require.NoError(t, err)
	return svc
}

func newReportService(
	svc *domainservice.Service,
	allocations []*domainservice.Allocation,
	metrics []*domainservice.Metric,
	prospects []*prospect.Prospect,
	prospectErr error,
) *Service {
	serviceRepo := &fakeServiceRepo{
		findByIDFn: func(ctx context.Context, id uint) (*domainservice.Service, error) {
			return svc, nil
		},
	}
	allocationRepo := &fakeAllocationRepo{
		findRecentFn: func(ctx context.Context, serviceID uint, limit int) ([]*domainservice.Allocation, error) {
			return allocations, nil
		},
	}
	metricRepo := &fakeMetricRepo{
		findRecentFn: func(ctx context.Context, serviceID uint, limit int) ([]*domainservice.Metric, error) {
			return metrics, nil
		},
	}
	prospectRepo := &fakeProspectRepo{
		findByInterestFn: func(ctx context.Context, serviceType string) ([]*prospect.Prospect, error) {
			if prospectErr != nil {
				return nil, prospectErr
			}
			return prospects, nil
		},
	}

	return NewService(serviceRepo, allocationRepo, metricRepo, &fakeClientRepo{}, prospectRepo, nil, logger.NewLogger())
}

func recommendationTypes(recs []dto.RecommendationDTO) []string {
	types := make([]string, 0, len(recs))
	for _, r := range recs {
		types = append(types, r.Type)
	}
	return types
}

func TestGetResourceReport_UsageSummary(t *testing.T) {
	svc := reportTestService(t, 100, 50, 0.5)
	allocations := []*domainservice.Allocation{
		{ServiceID: 1, Allocated: 100, Used: 80},
		{ServiceID: 1, Allocated: 100, Used: 60},
		{ServiceID: 1, Allocated: 100, Used: 70},
	}

	s := newReportService(svc, allocations, nil, nil, nil)

	report, err := s.GetResourceReport(context.Background(), 1)
	require.NoError(t, err)

	assert.InDelta(t, 70.0, report.AverageUsage, 1e-9)
	assert.InDelta(t, 80.0, report.PeakUsage, 1e-9)
	assert.InDelta(t, 50.0, report.UsagePercentage, 1e-9)
	assert.Len(t, report.Allocations, 3)
}

func TestGetResourceReport_ScalingRecommendation(t *testing.T) {
	tests := []struct {
		name     string
		capacity float64
		usage    float64
		want     bool
	}{
		{"well below threshold", 100, 50, false},
		{"exactly at threshold", 100, 80, false},
		{"just above threshold", 100, 80.1, true},
		{"over capacity", 100, 120, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := reportTestService(t, tt.capacity, tt.usage, 0.5)
			// Keep allocations well utilized so only scaling can fire.
			allocations := []*domainservice.Allocation{
				{ServiceID: 1, Allocated: 100, Used: 90},
			}

			s := newReportService(svc, allocations, nil, nil, nil)

			report, err := s.GetResourceReport(context.Background(), 1)
			require.NoError(t, err)

			types := recommendationTypes(report.Recommendations)
			if tt.want {
				assert.Contains(t, types, "scaling")
			} else {
				assert.NotContains(t, types, "scaling")
			}
		})
	}
}

func TestGetResourceReport_OptimizationRecommendation(t *testing.T) {
	svc := reportTestService(t, 1000, 100, 0.5)
	allocations := []*domainservice.Allocation{
		{ServiceID: 1, Allocated: 100, Used: 40},  // ratio 0.4, under
		{ServiceID: 1, Allocated: 100, Used: 60},  // ratio 0.6, at threshold, not under
		{ServiceID: 1, Allocated: 200, Used: 100}, // ratio 0.5, under
	}

	s := newReportService(svc, allocations, nil, nil, nil)

	report, err := s.GetResourceReport(context.Background(), 1)
	require.NoError(t, err)

	var found *dto.RecommendationDTO
	for i := range report.Recommendations {
		if report.Recommendations[i].Type == "optimization" {
			found = &report.Recommendations[i]
		}
	}
	require.NotNil(t, found, "expected an optimization recommendation")
	assert.Equal(t, "medium", found.Impact)
	// Savings: (100-40)*0.5 + (200-100)*0.5 = 80. Threshold-ratio rows do not count.
	assert.InDelta(t, 80.0, found.EstimatedSavings, 1e-9)
}

func TestGetResourceReport_NoOptimizationWhenUtilized(t *testing.T) {
	svc := reportTestService(t, 1000, 100, 0.5)
	allocations := []*domainservice.Allocation{
		{ServiceID: 1, Allocated: 100, Used: 90},
		{ServiceID: 1, Allocated: 100, Used: 60},
	}

	s := newReportService(svc, allocations, nil, nil, nil)

	report, err := s.GetResourceReport(context.Background(), 1)
	require.NoError(t, err)

	assert.NotContains(t, recommendationTypes(report.Recommendations), "optimization")
}

func TestGetResourceReport_GrowthRecommendation(t *testing.T) {
	svc := reportTestService(t, 100, 10, 0.5)
	prospects := []*prospect.Prospect{
		{ID: 1, Name: "Acme", InterestedServices: []string{"hosting"}, Probability: 0.7},
		{ID: 2, Name: "Globex", InterestedServices: []string{"hosting"}, Probability: 0.4},
	}

	s := newReportService(svc, nil, nil, prospects, nil)

	report, err := s.GetResourceReport(context.Background(), 1)
	require.NoError(t, err)

	types := recommendationTypes(report.Recommendations)
	assert.Contains(t, types, "growth")
}

func TestGetResourceReport_ProspectFailureDoesNotBlock(t *testing.T) {
	svc := reportTestService(t, 100, 90, 0.5)

	s := newReportService(svc, nil, nil, nil, errors.New("prospect store down"))

	report, err := s.GetResourceReport(context.Background(), 1)
	require.NoError(t, err)

	types := recommendationTypes(report.Recommendations)
	assert.Contains(t, types, "scaling")
	assert.NotContains(t, types, "growth")
}

func TestGetResourceReport_EmptyHistory(t *testing.T) {
	svc := reportTestService(t, 100, 0, 0.5)

	s := newReportService(svc, nil, nil, nil, nil)

	report, err := s.GetResourceReport(context.Background(), 1)
	require.NoError(t, err)

	assert.Zero(t, report.AverageUsage)
	assert.Zero(t, report.PeakUsage)
	assert.Empty(t, report.Recommendations)
}
