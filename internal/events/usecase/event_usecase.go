package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/avocadohq/admin-console/internal/config"
	apperrors "github.com/avocadohq/admin-console/internal/errors"
	eventsDomain "github.com/avocadohq/admin-console/internal/events/domain"
	eventsService "github.com/avocadohq/admin-console/internal/events/service"
)

// eventUseCase implements EventUseCase. Signing is optional: events are
// written unsigned when no signing secret is configured.
type eventUseCase struct {
	eventRepo EventRepository
	signer    eventsService.EventSigner
	cfg       *config.Config
	logger    *slog.Logger
}

// Log records a platform event. Generates a UUIDv7 identifier and timestamp,
// applies defaults for source and severity, and signs the record when a
// signing secret is configured.
func (e *eventUseCase) Log(ctx context.Context, input *eventsDomain.LogEventInput) error {
	if input.Action == "" {
		return eventsDomain.ErrActionRequired
	}

	source := input.Source
	if source == "" {
		source = eventsDomain.DefaultSource
	}

	severity := input.Severity
	if severity == "" {
		severity = eventsDomain.SeverityInfo
	}

	event := &eventsDomain.PlatformEvent{
		ID:             uuid.Must(uuid.NewV7()),
		Source:         source,
		Action:         input.Action,
		Severity:       severity,
		ActorUserID:    input.ActorUserID,
		ActorAdminID:   input.ActorAdminID,
		OrganizationID: input.OrganizationID,
		TargetType:     input.TargetType,
		TargetID:       input.TargetID,
		Metadata:       input.Metadata,
		CreatedAt:      time.Now().UTC(),
	}

	if e.cfg.EventSigningSecret != "" {
		signature, err := e.signer.Sign([]byte(e.cfg.EventSigningSecret), event)
		if err != nil {
			return apperrors.Wrap(err, "failed to sign platform event")
		}
		event.Signature = signature
	}

	if err := e.eventRepo.Create(ctx, event); err != nil {
		return apperrors.Wrap(err, "failed to create platform event")
	}

	e.logger.Info("platform event recorded",
		slog.String("event_id", event.ID.String()),
		slog.String("action", event.Action),
		slog.String("organization_id", event.OrganizationID))

	return nil
}

// List retrieves platform events newest first.
func (e *eventUseCase) List(ctx context.Context, filter *ListEventsFilter, offset, limit int) ([]*eventsDomain.PlatformEvent, error) {
	events, err := e.eventRepo.List(ctx, filter, offset, limit)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list platform events")
	}

	return events, nil
}

// verifyPageSize is the batch size used when walking events for verification.
const verifyPageSize = 500

// VerifyRange walks all events created within [from, to] and checks their
// signatures against the configured signing secret. Events written before
// signing was enabled are counted as unsigned, not invalid.
func (e *eventUseCase) VerifyRange(ctx context.Context, from, to time.Time) (*VerifyReport, error) {
	if e.cfg.EventSigningSecret == "" {
		return nil, apperrors.Wrap(apperrors.ErrConfiguration, "event signing secret is not configured")
	}

	secret := []byte(e.cfg.EventSigningSecret)
	filter := &ListEventsFilter{From: from, To: to}
	report := &VerifyReport{}

	for offset := 0; ; offset += verifyPageSize {
		events, err := e.eventRepo.List(ctx, filter, offset, verifyPageSize)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to list platform events for verification")
		}

		for _, event := range events {
			report.Total++

			if len(event.Signature) == 0 {
				report.Unsigned++
				continue
			}

			if err := e.signer.Verify(secret, event); err != nil {
				report.InvalidIDs = append(report.InvalidIDs, event.ID.String())
				continue
			}

			report.Valid++
		}

		if len(events) < verifyPageSize {
			break
		}
	}

	if len(report.InvalidIDs) > 0 {
		e.logger.Warn("platform event verification found invalid signatures",
			slog.Int("invalid", len(report.InvalidIDs)),
			slog.Int("total", report.Total))
	}

	return report, nil
}

// NewEventUseCase creates a new EventUseCase with the provided dependencies.
func NewEventUseCase(
	eventRepo EventRepository,
	signer eventsService.EventSigner,
	cfg *config.Config,
	logger *slog.Logger,
) EventUseCase {
	return &eventUseCase{
		eventRepo: eventRepo,
		signer:    signer,
		cfg:       cfg,
		logger:    logger,
	}
}
