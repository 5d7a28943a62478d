package service

import (
	"context"
	"fmt"

	"github.com/opsdesk-inc/opsdesk/internal/application/service/dto"
	domainservice "github.com/opsdesk-inc/opsdesk/internal/domain/service"
)

const (
	scalingThreshold     = 0.8
	utilizationThreshold = 0.6
)

// GetResourceReport builds the capacity report for a service: usage
// summary over recent allocations, latest metrics and any
// recommendations the numbers justify.
func (s *Service) GetResourceReport(ctx context.Context, serviceID uint) (*dto.ResourceReportDTO, error) {
	svc, err := s.serviceRepo.FindByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}

	allocations, err := s.allocationRepo.FindRecentByServiceID(ctx, serviceID, allocationHistoryLimit)
	if err != nil {
		return nil, err
	}

	metrics, err := s.metricRepo.FindRecentByServiceID(ctx, serviceID, metricHistoryLimit)
	if err != nil {
		return nil, err
	}

	average, peak := usageSummary(allocations)

	report := &dto.ResourceReportDTO{
		Service:         dto.ToServiceDTO(svc),
		UsagePercentage: svc.UsagePercentage(),
		AverageUsage:    average,
		PeakUsage:       peak,
		Allocations:     dto.ToAllocationDTOs(allocations),
		Metrics:         dto.ToMetricDTOs(metrics),
		Recommendations: s.buildRecommendations(ctx, svc, allocations),
	}

	return report, nil
}

func usageSummary(allocations []*domainservice.Allocation) (average, peak float64) {
	if len(allocations) == 0 {
		return 0, 0
	}
	var sum float64
	for _, a := range allocations {
		sum += a.Used
		if a.Used > peak {
			peak = a.Used
		}
	}
	return sum / float64(len(allocations)), peak
}

func (s *Service) buildRecommendations(ctx context.Context, svc *domainservice.Service, allocations []*domainservice.Allocation) []dto.RecommendationDTO {
	recommendations := make([]dto.RecommendationDTO, 0, 3)

	if svc.UsagePercentage() > scalingThreshold*100 {
		recommendations = append(recommendations, dto.RecommendationDTO{
			Type:   "scaling",
			Impact: "high",
			Message: fmt.Sprintf("usage at %.1f%% of capacity, consider increasing the capacity limit",
				svc.UsagePercentage()),
		})
	}

	var savings float64
	underUtilized := false
	for _, a := range allocations {
		if a.UtilizationRatio() < utilizationThreshold {
			underUtilized = true
			savings += (a.Allocated - a.Used) * svc.CostPerUnit()
		}
	}
	if underUtilized {
		recommendations = append(recommendations, dto.RecommendationDTO{
			Type:             "optimization",
			Impact:           "medium",
			Message:          "recent allocations are under-utilized, consider reducing allocated capacity",
			EstimatedSavings: savings,
		})
	}

	// Prospect interest informs growth planning only; failures here
	// never block the report.
	prospects, err := s.prospectRepo.FindByInterest(ctx, svc.Type())
	if err != nil {
		s.logger.Warnw("failed to load prospects for report", "service_id", svc.ID(), "error", err)
	} else if len(prospects) > 0 {
		recommendations = append(recommendations, dto.RecommendationDTO{
			Type:   "growth",
			Impact: "low",
			Message: fmt.Sprintf("%d prospective clients interested in %s, expect additional demand",
				len(prospects), svc.Type()),
		})
	}

	return recommendations
}
