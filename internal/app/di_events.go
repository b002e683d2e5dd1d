package app

import (
	"fmt"

	eventsHTTP "github.com/avocadohq/admin-console/internal/events/http"
	eventsRepository "github.com/avocadohq/admin-console/internal/events/repository"
	eventsService "github.com/avocadohq/admin-console/internal/events/service"
	eventsUseCase "github.com/avocadohq/admin-console/internal/events/usecase"
)

// EventSigner returns the audit event signer.
func (c *Container) EventSigner() eventsService.EventSigner {
	c.eventSignerInit.Do(func() {
		c.eventSigner = eventsService.NewEventSigner()
	})
	return c.eventSigner
}

// EventRepository returns the platform event repository based on database driver.
func (c *Container) EventRepository() (eventsUseCase.EventRepository, error) {
	var err error
	c.eventRepoInit.Do(func() {
		c.eventRepo, err = c.initEventRepository()
		if err != nil {
			c.initErrors["eventRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["eventRepo"]; exists {
		return nil, storedErr
	}
	return c.eventRepo, nil
}

// EventUseCase returns the audit trail use case.
func (c *Container) EventUseCase() (eventsUseCase.EventUseCase, error) {
	var err error
	c.eventUseCaseInit.Do(func() {
		c.eventUseCase, err = c.initEventUseCase()
		if err != nil {
			c.initErrors["eventUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["eventUseCase"]; exists {
		return nil, storedErr
	}
	return c.eventUseCase, nil
}

// EventHandler returns the HTTP handler for audit event queries.
func (c *Container) EventHandler() (*eventsHTTP.EventHandler, error) {
	var err error
	c.eventHandlerInit.Do(func() {
		c.eventHandler, err = c.initEventHandler()
		if err != nil {
			c.initErrors["eventHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["eventHandler"]; exists {
		return nil, storedErr
	}
	return c.eventHandler, nil
}

// initEventRepository creates the platform event repository instance.
func (c *Container) initEventRepository() (eventsUseCase.EventRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for event repository: %w", err)
	}

	// Select the appropriate repository based on the database driver
	switch c.config.DBDriver {
	case "mysql":
		return eventsRepository.NewMySQLEventRepository(db), nil
	case "postgres":
		return eventsRepository.NewPostgreSQLEventRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initEventUseCase creates the audit trail use case with its dependencies.
func (c *Container) initEventUseCase() (eventsUseCase.EventUseCase, error) {
	eventRepo, err := c.EventRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get event repository for event use case: %w", err)
	}

	return eventsUseCase.NewEventUseCase(eventRepo, c.EventSigner(), c.config, c.Logger()), nil
}

// initEventHandler creates the event HTTP handler with its dependencies.
func (c *Container) initEventHandler() (*eventsHTTP.EventHandler, error) {
	eventUseCase, err := c.EventUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get event use case for event handler: %w", err)
	}

	return eventsHTTP.NewEventHandler(eventUseCase, c.Logger()), nil
}
