package app

import (
	"fmt"

	impersonationHTTP "github.com/avocadohq/admin-console/internal/impersonation/http"
	impersonationService "github.com/avocadohq/admin-console/internal/impersonation/service"
	impersonationUseCase "github.com/avocadohq/admin-console/internal/impersonation/usecase"
)

// TokenCodec returns the impersonation token codec.
func (c *Container) TokenCodec() impersonationService.TokenCodec {
	c.tokenCodecInit.Do(func() {
		c.tokenCodec = impersonationService.NewTokenCodec(c.config)
	})
	return c.tokenCodec
}

// ImpersonationUseCase returns the impersonation issuer use case.
func (c *Container) ImpersonationUseCase() (impersonationUseCase.ImpersonationUseCase, error) {
	var err error
	c.impersonationUseCaseInit.Do(func() {
		c.impersonationUseCase, err = c.initImpersonationUseCase()
		if err != nil {
			c.initErrors["impersonationUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["impersonationUseCase"]; exists {
		return nil, storedErr
	}
	return c.impersonationUseCase, nil
}

// ImpersonationHandler returns the HTTP handler for the impersonation handoff.
func (c *Container) ImpersonationHandler() (*impersonationHTTP.ImpersonationHandler, error) {
	var err error
	c.impersonationHandlerInit.Do(func() {
		c.impersonationHandler, err = c.initImpersonationHandler()
		if err != nil {
			c.initErrors["impersonationHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["impersonationHandler"]; exists {
		return nil, storedErr
	}
	return c.impersonationHandler, nil
}

// initImpersonationUseCase creates the impersonation issuer with its dependencies.
func (c *Container) initImpersonationUseCase() (impersonationUseCase.ImpersonationUseCase, error) {
	adminContextUseCase, err := c.AdminContextUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get admin context use case for impersonation use case: %w", err)
	}

	orgRepo, err := c.OrganizationRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get organization repository for impersonation use case: %w", err)
	}

	eventUseCase, err := c.EventUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get event use case for impersonation use case: %w", err)
	}

	baseUseCase := impersonationUseCase.NewImpersonationUseCase(
		adminContextUseCase,
		orgRepo,
		c.TokenCodec(),
		eventUseCase,
		c.Logger(),
	)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for impersonation use case: %w", err)
		}
		return impersonationUseCase.NewImpersonationUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

// initImpersonationHandler creates the impersonation HTTP handler with its dependencies.
func (c *Container) initImpersonationHandler() (*impersonationHTTP.ImpersonationHandler, error) {
	useCase, err := c.ImpersonationUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get impersonation use case for impersonation handler: %w", err)
	}

	return impersonationHTTP.NewImpersonationHandler(useCase, c.config, c.Logger()), nil
}
