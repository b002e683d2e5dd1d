package usecase

import (
	"context"
	"time"

	"github.com/avocadohq/admin-console/internal/impersonation/domain"
	"github.com/avocadohq/admin-console/internal/metrics"
)

// impersonationUseCaseWithMetrics decorates ImpersonationUseCase with metrics
// instrumentation.
type impersonationUseCaseWithMetrics struct {
	next    ImpersonationUseCase
	metrics metrics.BusinessMetrics
}

// NewImpersonationUseCaseWithMetrics wraps an ImpersonationUseCase with
// metrics recording.
func NewImpersonationUseCaseWithMetrics(useCase ImpersonationUseCase, m metrics.BusinessMetrics) ImpersonationUseCase {
	return &impersonationUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Issue records metrics for token issuance operations.
func (i *impersonationUseCaseWithMetrics) Issue(
	ctx context.Context,
	input *domain.IssueInput,
) (*domain.IssueOutput, error) {
	start := time.Now()
	output, err := i.next.Issue(ctx, input)

	status := "success"
	if err != nil {
		status = "error"
	}

	i.metrics.RecordOperation(ctx, "impersonation", "issue", status)
	i.metrics.RecordDuration(ctx, "impersonation", "issue", time.Since(start), status)

	return output, err
}
