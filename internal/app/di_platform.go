package app

import (
	"fmt"

	platformHTTP "github.com/avocadohq/admin-console/internal/platform/http"
	platformRepository "github.com/avocadohq/admin-console/internal/platform/repository"
	platformService "github.com/avocadohq/admin-console/internal/platform/service"
	platformUseCase "github.com/avocadohq/admin-console/internal/platform/usecase"
)

// PasswordService returns the password service for admin provisioning.
func (c *Container) PasswordService() platformService.PasswordService {
	c.passwordServiceInit.Do(func() {
		c.passwordService = platformService.NewPasswordService()
	})
	return c.passwordService
}

// SessionRepository returns the session repository based on database driver.
func (c *Container) SessionRepository() (platformUseCase.SessionRepository, error) {
	var err error
	c.sessionRepoInit.Do(func() {
		c.sessionRepo, err = c.initSessionRepository()
		if err != nil {
			c.initErrors["sessionRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["sessionRepo"]; exists {
		return nil, storedErr
	}
	return c.sessionRepo, nil
}

// AdminRepository returns the platform admin repository based on database driver.
func (c *Container) AdminRepository() (platformUseCase.AdminRepository, error) {
	var err error
	c.adminRepoInit.Do(func() {
		c.adminRepo, err = c.initAdminRepository()
		if err != nil {
			c.initErrors["adminRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["adminRepo"]; exists {
		return nil, storedErr
	}
	return c.adminRepo, nil
}

// OrganizationRepository returns the organization repository based on database driver.
func (c *Container) OrganizationRepository() (platformUseCase.OrganizationRepository, error) {
	var err error
	c.orgRepoInit.Do(func() {
		c.orgRepo, err = c.initOrganizationRepository()
		if err != nil {
			c.initErrors["orgRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["orgRepo"]; exists {
		return nil, storedErr
	}
	return c.orgRepo, nil
}

// AdminContextUseCase returns the admin session resolution use case.
func (c *Container) AdminContextUseCase() (platformUseCase.AdminContextUseCase, error) {
	var err error
	c.adminContextInit.Do(func() {
		c.adminContextUseCase, err = c.initAdminContextUseCase()
		if err != nil {
			c.initErrors["adminContextUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["adminContextUseCase"]; exists {
		return nil, storedErr
	}
	return c.adminContextUseCase, nil
}

// AdminUseCase returns the platform admin management use case.
func (c *Container) AdminUseCase() (platformUseCase.AdminUseCase, error) {
	var err error
	c.adminUseCaseInit.Do(func() {
		c.adminUseCase, err = c.initAdminUseCase()
		if err != nil {
			c.initErrors["adminUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["adminUseCase"]; exists {
		return nil, storedErr
	}
	return c.adminUseCase, nil
}

// OrganizationUseCase returns the tenant governance use case.
func (c *Container) OrganizationUseCase() (platformUseCase.OrganizationUseCase, error) {
	var err error
	c.organizationUseCaseInit.Do(func() {
		c.organizationUseCase, err = c.initOrganizationUseCase()
		if err != nil {
			c.initErrors["organizationUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["organizationUseCase"]; exists {
		return nil, storedErr
	}
	return c.organizationUseCase, nil
}

// OrganizationHandler returns the HTTP handler for tenant governance operations.
func (c *Container) OrganizationHandler() (*platformHTTP.OrganizationHandler, error) {
	var err error
	c.organizationHandlerInit.Do(func() {
		c.organizationHandler, err = c.initOrganizationHandler()
		if err != nil {
			c.initErrors["organizationHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["organizationHandler"]; exists {
		return nil, storedErr
	}
	return c.organizationHandler, nil
}

// AdminHandler returns the HTTP handler for platform admin management.
func (c *Container) AdminHandler() (*platformHTTP.AdminHandler, error) {
	var err error
	c.adminHandlerInit.Do(func() {
		c.adminHandler, err = c.initAdminHandler()
		if err != nil {
			c.initErrors["adminHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["adminHandler"]; exists {
		return nil, storedErr
	}
	return c.adminHandler, nil
}

// initSessionRepository creates the session repository instance.
func (c *Container) initSessionRepository() (platformUseCase.SessionRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for session repository: %w", err)
	}

	// Select the appropriate repository based on the database driver
	switch c.config.DBDriver {
	case "mysql":
		return platformRepository.NewMySQLSessionRepository(db), nil
	case "postgres":
		return platformRepository.NewPostgreSQLSessionRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initAdminRepository creates the platform admin repository instance.
func (c *Container) initAdminRepository() (platformUseCase.AdminRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for admin repository: %w", err)
	}

	switch c.config.DBDriver {
	case "mysql":
		return platformRepository.NewMySQLAdminRepository(db), nil
	case "postgres":
		return platformRepository.NewPostgreSQLAdminRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initOrganizationRepository creates the organization repository instance.
func (c *Container) initOrganizationRepository() (platformUseCase.OrganizationRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for organization repository: %w", err)
	}

	switch c.config.DBDriver {
	case "mysql":
		return platformRepository.NewMySQLOrganizationRepository(db), nil
	case "postgres":
		return platformRepository.NewPostgreSQLOrganizationRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initAdminContextUseCase creates the admin context use case with its dependencies.
func (c *Container) initAdminContextUseCase() (platformUseCase.AdminContextUseCase, error) {
	sessionRepo, err := c.SessionRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get session repository for admin context use case: %w", err)
	}

	adminRepo, err := c.AdminRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get admin repository for admin context use case: %w", err)
	}

	return platformUseCase.NewAdminContextUseCase(sessionRepo, adminRepo, c.Logger()), nil
}

// initAdminUseCase creates the admin management use case with its dependencies.
func (c *Container) initAdminUseCase() (platformUseCase.AdminUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for admin use case: %w", err)
	}

	adminRepo, err := c.AdminRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get admin repository for admin use case: %w", err)
	}

	eventUseCase, err := c.EventUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get event use case for admin use case: %w", err)
	}

	return platformUseCase.NewAdminUseCase(
		txManager,
		adminRepo,
		c.PasswordService(),
		eventUseCase,
		c.Logger(),
	), nil
}

// initOrganizationUseCase creates the tenant governance use case with its dependencies.
func (c *Container) initOrganizationUseCase() (platformUseCase.OrganizationUseCase, error) {
	orgRepo, err := c.OrganizationRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get organization repository for organization use case: %w", err)
	}

	eventUseCase, err := c.EventUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get event use case for organization use case: %w", err)
	}

	return platformUseCase.NewOrganizationUseCase(orgRepo, eventUseCase, c.Logger()), nil
}

// initOrganizationHandler creates the organization HTTP handler with its dependencies.
func (c *Container) initOrganizationHandler() (*platformHTTP.OrganizationHandler, error) {
	organizationUseCase, err := c.OrganizationUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get organization use case for organization handler: %w", err)
	}

	return platformHTTP.NewOrganizationHandler(organizationUseCase, c.Logger()), nil
}

// initAdminHandler creates the admin HTTP handler with its dependencies.
func (c *Container) initAdminHandler() (*platformHTTP.AdminHandler, error) {
	adminUseCase, err := c.AdminUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get admin use case for admin handler: %w", err)
	}

	return platformHTTP.NewAdminHandler(adminUseCase, c.Logger()), nil
}
