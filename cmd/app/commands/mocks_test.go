package commands

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	eventsDomain "github.com/avocadohq/admin-console/internal/events/domain"
	eventsUseCase "github.com/avocadohq/admin-console/internal/events/usecase"
	platformDomain "github.com/avocadohq/admin-console/internal/platform/domain"
	platformUseCase "github.com/avocadohq/admin-console/internal/platform/usecase"
)

// MockAdminUseCase is a mock implementation of AdminUseCase.
type MockAdminUseCase struct {
	mock.Mock
}

func (m *MockAdminUseCase) Create(ctx context.Context, input *platformUseCase.CreateAdminInput) (*platformUseCase.CreateAdminOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*platformUseCase.CreateAdminOutput), args.Error(1)
}

func (m *MockAdminUseCase) List(ctx context.Context, offset, limit int) ([]*platformDomain.PlatformAdmin, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*platformDomain.PlatformAdmin), args.Error(1)
}

func (m *MockAdminUseCase) SetStatus(ctx context.Context, input *platformUseCase.SetAdminStatusInput) (*platformDomain.PlatformAdmin, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*platformDomain.PlatformAdmin), args.Error(1)
}

// MockEventUseCase is a mock implementation of EventUseCase.
type MockEventUseCase struct {
	mock.Mock
}

func (m *MockEventUseCase) Log(ctx context.Context, input *eventsDomain.LogEventInput) error {
	args := m.Called(ctx, input)
	return args.Error(0)
}

func (m *MockEventUseCase) List(ctx context.Context, filter *eventsUseCase.ListEventsFilter, offset, limit int) ([]*eventsDomain.PlatformEvent, error) {
	args := m.Called(ctx, filter, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*eventsDomain.PlatformEvent), args.Error(1)
}

func (m *MockEventUseCase) VerifyRange(ctx context.Context, from, to time.Time) (*eventsUseCase.VerifyReport, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*eventsUseCase.VerifyReport), args.Error(1)
}
