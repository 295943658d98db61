package impl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"relief/internal/domain/entity"
	domainerrors "relief/internal/domain/errors"
	"relief/internal/domain/repository"
	"relief/internal/domain/service"
	"relief/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type allocationService struct {
	logger           *slog.Logger
	supplyRepo       repository.SupplyRepository
	requestRepo      repository.RequestRepository
	historyRepo      repository.HistoryRepository
	notificationRepo repository.NotificationRepository
	allocationRepo   repository.AllocationRepository
	eventPublisher   service.EventPublisher
}

// NewAllocationService creates a new allocation service instance
func NewAllocationService(
	logger *slog.Logger,
	supplyRepo repository.SupplyRepository,
	requestRepo repository.RequestRepository,
	historyRepo repository.HistoryRepository,
	notificationRepo repository.NotificationRepository,
	allocationRepo repository.AllocationRepository,
	eventPublisher service.EventPublisher,
) usecase.AllocationUsecase {
	return &allocationService{
		logger:           logger,
		supplyRepo:       supplyRepo,
		requestRepo:      requestRepo,
		historyRepo:      historyRepo,
		notificationRepo: notificationRepo,
		allocationRepo:   allocationRepo,
		eventPublisher:   eventPublisher,
	}
}

// Allocate runs one allocation end to end: plan against a snapshot, apply each
// draw through a conditional write, settle the request, record the audit trail,
// and fan out notifications. Draws that lose their conditional write are
// reported, never retried against other units within the same call.
func (s *allocationService) Allocate(ctx context.Context, input usecase.AllocateInput) (*usecase.AllocationOutcome, error) {
	if !input.Amount.IsPositive() {
		return nil, domainerrors.ErrInvalidAllocationAmount
	}

	// A keyed retry replays the stored outcome instead of touching inventory.
	if input.IdempotencyKey != "" {
		record, err := s.allocationRepo.FindByIdempotencyKey(ctx, input.IdempotencyKey)
		if err == nil {
			return replayedOutcome(record), nil
		}
		if !errors.Is(err, repository.ErrAllocationRecordNotFound) {
			return nil, fmt.Errorf("failed to look up idempotency key: %w", err)
		}
	}

	request, err := s.requestRepo.FindByID(ctx, input.RequestID)
	if err != nil {
		if errors.Is(err, repository.ErrRequestNotFound) {
			return nil, domainerrors.ErrStaleRequest
		}

		return nil, fmt.Errorf("failed to find demand request: %w", err)
	}

	pool, err := s.supplyRepo.ListCompatible(ctx, request.ItemName, request.ItemType)
	if err != nil {
		return nil, fmt.Errorf("failed to list compatible supply: %w", err)
	}

	plan, planned := buildPlan(rankCompatibleSupply(request, pool), input.Amount)

	outcome := &usecase.AllocationOutcome{
		Status:           entity.AllocationNothingApplied,
		PlannedAmount:    planned,
		AppliedAmount:    decimal.Zero,
		RequestRemainder: request.Quantity,
		AppliedEntries:   []usecase.AppliedEntry{},
		PerDonor:         []usecase.DonorShare{},
	}

	if len(plan) == 0 {
		outcome.Warnings = append(outcome.Warnings,
			fmt.Sprintf("no compatible supply available for %s (%s)", request.ItemName, request.ItemType))
		s.recordOutcome(ctx, input, outcome)

		return outcome, nil
	}

	s.executePlan(ctx, input, request, plan, outcome)

	if outcome.AppliedAmount.IsPositive() {
		s.settleRequest(ctx, input, request, outcome)
		s.notifyParties(ctx, request, outcome)
		s.publishEvent(ctx, input, request, outcome)
	}

	outcome.Status = entity.DeriveAllocationStatus(input.Amount, outcome.AppliedAmount)
	s.recordOutcome(ctx, input, outcome)

	return outcome, nil
}

// executePlan applies the planned draws one by one. Each draw stands alone: a
// lost precondition or the deadline expiring never rolls back draws that
// already committed.
func (s *allocationService) executePlan(
	ctx context.Context,
	input usecase.AllocateInput,
	request *entity.DemandRequest,
	plan []plannedDraw,
	outcome *usecase.AllocationOutcome,
) {
	for i, draw := range plan {
		if err := ctx.Err(); err != nil {
			abandoned := len(plan) - i
			s.logger.WarnContext(ctx, "allocation stopped before completing its plan",
				slog.String("demand_request_id", request.ID.String()),
				slog.Int("abandoned_draws", abandoned),
				slog.Any("error", err))
			outcome.Warnings = append(outcome.Warnings,
				fmt.Sprintf("deadline reached, %d planned draw(s) abandoned", abandoned))

			return
		}

		updated, err := s.supplyRepo.ConditionalDecrement(ctx, draw.unit.ID, draw.amount, draw.unit.Version)
		if err != nil {
			outcome.FailedEntries = append(outcome.FailedEntries, usecase.FailedEntry{
				UnitID: draw.unit.ID,
				Amount: draw.amount,
				Reason: decrementFailureReason(err),
			})
			if !errors.Is(err, repository.ErrSupplyConflict) && !errors.Is(err, repository.ErrSupplyNotFound) {
				s.logger.ErrorContext(ctx, "conditional decrement failed",
					slog.String("supply_unit_id", draw.unit.ID.String()),
					slog.Any("error", err))
			}

			continue
		}

		outcome.AppliedAmount = outcome.AppliedAmount.Add(draw.amount)
		outcome.AppliedEntries = append(outcome.AppliedEntries, usecase.AppliedEntry{
			UnitID:            updated.ID,
			OwnerOrgID:        updated.OwnerOrgID,
			OwnerOrgName:      updated.OwnerOrgName,
			Amount:            draw.amount,
			ResultingQuantity: updated.Quantity,
			ResultingStatus:   updated.Status,
		})

		s.appendHistory(ctx, outcome, &entity.HistoryEntry{
			SubjectType:       entity.HistorySubjectSupplyUnit,
			SubjectID:         updated.ID,
			Event:             entity.HistoryEventAllocation,
			QuantityDelta:     draw.amount.Neg(),
			ResultingQuantity: updated.Quantity,
			ResultingStatus:   string(updated.Status),
			Remark:            fmt.Sprintf("allocated to demand request %s", request.ID),
			ActorID:           input.ActorID,
		})
	}
}

// settleRequest writes the applied total back to the demand request: fulfilled
// requests are removed, partly covered ones keep their reduced remainder.
func (s *allocationService) settleRequest(
	ctx context.Context,
	input usecase.AllocateInput,
	request *entity.DemandRequest,
	outcome *usecase.AllocationOutcome,
) {
	remainder := request.Quantity.Sub(outcome.AppliedAmount)
	if !remainder.IsPositive() {
		remainder = decimal.Zero
	}
	outcome.RequestRemainder = remainder
	outcome.RequestFulfilled = remainder.IsZero()

	var err error
	resultingStatus := string(entity.RequestStatusPartiallyAllocated)
	if outcome.RequestFulfilled {
		resultingStatus = "fulfilled"
		err = s.requestRepo.Delete(ctx, request.ID)
	} else {
		err = s.requestRepo.UpdateRemainder(ctx, request.ID, remainder, entity.RequestStatusPartiallyAllocated)
	}
	if err != nil {
		// The draws already committed. Reporting them is more truthful than
		// failing the call over the request row.
		s.logger.ErrorContext(ctx, "failed to settle demand request after committed draws",
			slog.String("demand_request_id", request.ID.String()),
			slog.Any("error", err))
		outcome.Warnings = append(outcome.Warnings,
			fmt.Sprintf("demand request %s could not be settled: %v", request.ID, err))
	}

	s.appendHistory(ctx, outcome, &entity.HistoryEntry{
		SubjectType:       entity.HistorySubjectDemandRequest,
		SubjectID:         request.ID,
		Event:             entity.HistoryEventAllocation,
		QuantityDelta:     outcome.AppliedAmount.Neg(),
		ResultingQuantity: remainder,
		ResultingStatus:   resultingStatus,
		Remark:            fmt.Sprintf("received %s %s of %s", outcome.AppliedAmount, request.Unit, request.ItemName),
		ActorID:           input.ActorID,
	})
}

// appendHistory writes one audit entry. The mutation it describes has already
// committed, so a failure here is logged loudly and surfaced as a warning but
// never fails the allocation.
func (s *allocationService) appendHistory(ctx context.Context, outcome *usecase.AllocationOutcome, entry *entity.HistoryEntry) {
	if err := s.historyRepo.Append(ctx, entry); err != nil {
		s.logger.ErrorContext(ctx, "audit entry lost for a committed mutation",
			slog.String("subject_type", string(entry.SubjectType)),
			slog.String("subject_id", entry.SubjectID.String()),
			slog.String("event", string(entry.Event)),
			slog.Any("error", err))
		outcome.Warnings = append(outcome.Warnings,
			fmt.Sprintf("audit entry for %s %s could not be written", entry.SubjectType, entry.SubjectID))
	}
}

// notifyParties enqueues the requester's confirmation and one message per donor
// whose stock was drawn. Delivery is best-effort: a failed enqueue becomes a
// warning, never an error.
func (s *allocationService) notifyParties(ctx context.Context, request *entity.DemandRequest, outcome *usecase.AllocationOutcome) {
	outcome.PerDonor = aggregateDonorShares(outcome.AppliedEntries)

	requesterID := request.RequesterOrgID
	s.enqueueNotification(ctx, outcome, &entity.Notification{
		RecipientOrgID: &requesterID,
		Type:           entity.NotificationResourceAllocated,
		Message: fmt.Sprintf("Your request for %s received %s %s.",
			request.ItemName, outcome.AppliedAmount, request.Unit),
	})

	for _, share := range outcome.PerDonor {
		donorID := share.OrgID
		s.enqueueNotification(ctx, outcome, &entity.Notification{
			RecipientOrgID: &donorID,
			Type:           entity.NotificationResourceDonated,
			Message: fmt.Sprintf("%s %s of %s from your inventory was allocated to %s.",
				share.Amount, request.Unit, request.ItemName, request.RequesterOrgName),
		})
	}
}

func (s *allocationService) enqueueNotification(ctx context.Context, outcome *usecase.AllocationOutcome, notification *entity.Notification) {
	if err := s.notificationRepo.Enqueue(ctx, notification); err != nil {
		s.logger.WarnContext(ctx, "failed to enqueue notification",
			slog.String("type", string(notification.Type)),
			slog.Any("error", err))
		recipient := "operators"
		if notification.RecipientOrgID != nil {
			recipient = notification.RecipientOrgID.String()
		}
		outcome.Warnings = append(outcome.Warnings,
			fmt.Sprintf("notification to %s could not be enqueued", recipient))
	}
}

func (s *allocationService) publishEvent(ctx context.Context, input usecase.AllocateInput, request *entity.DemandRequest, outcome *usecase.AllocationOutcome) {
	donorIDs := make([]string, 0, len(outcome.PerDonor))
	for _, share := range outcome.PerDonor {
		donorIDs = append(donorIDs, share.OrgID.String())
	}

	event := &service.AllocationEvent{
		RequestID:        uuid.New().String(),
		DemandRequestID:  request.ID.String(),
		RequesterOrgID:   request.RequesterOrgID.String(),
		ItemName:         request.ItemName,
		ItemType:         request.ItemType,
		AppliedAmount:    outcome.AppliedAmount.String(),
		RequestFulfilled: outcome.RequestFulfilled,
		DonorOrgIDs:      donorIDs,
	}
	if err := s.eventPublisher.PublishAllocationEvent(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "failed to publish allocation event",
			slog.String("demand_request_id", request.ID.String()),
			slog.Any("error", err))
		outcome.Warnings = append(outcome.Warnings, "allocation event could not be published")
	}
}

// recordOutcome persists the idempotency record for a keyed call. A duplicate
// key here means a concurrent call with the same key raced us past the initial
// lookup; our outcome stands as computed, the collision is only surfaced.
func (s *allocationService) recordOutcome(ctx context.Context, input usecase.AllocateInput, outcome *usecase.AllocationOutcome) {
	if input.IdempotencyKey == "" {
		return
	}

	record := &entity.AllocationRecord{
		IdempotencyKey:   input.IdempotencyKey,
		RequestID:        input.RequestID,
		ActorID:          input.ActorID,
		RequestedAmount:  input.Amount,
		PlannedAmount:    outcome.PlannedAmount,
		AppliedAmount:    outcome.AppliedAmount,
		RequestRemainder: outcome.RequestRemainder,
		RequestFulfilled: outcome.RequestFulfilled,
		Status:           entity.DeriveAllocationStatus(input.Amount, outcome.AppliedAmount),
	}
	if err := s.allocationRepo.Create(ctx, record); err != nil {
		if errors.Is(err, repository.ErrDuplicateAllocationKey) {
			s.logger.WarnContext(ctx, "concurrent allocation with the same idempotency key",
				slog.String("idempotency_key", input.IdempotencyKey))
			outcome.Warnings = append(outcome.Warnings,
				"another call with the same idempotency key completed concurrently")

			return
		}
		s.logger.ErrorContext(ctx, "failed to persist allocation record",
			slog.String("idempotency_key", input.IdempotencyKey),
			slog.Any("error", err))
		outcome.Warnings = append(outcome.Warnings, "allocation record could not be persisted")
	}
}

// PreviewAllocation computes the ranked plan without mutating anything.
func (s *allocationService) PreviewAllocation(ctx context.Context, requestID uuid.UUID, amount decimal.Decimal) (*usecase.AllocationPreview, error) {
	if !amount.IsPositive() {
		return nil, domainerrors.ErrInvalidAllocationAmount
	}

	request, err := s.requestRepo.FindByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, repository.ErrRequestNotFound) {
			return nil, domainerrors.ErrRequestNotFound
		}

		return nil, fmt.Errorf("failed to find demand request: %w", err)
	}

	pool, err := s.supplyRepo.ListCompatible(ctx, request.ItemName, request.ItemType)
	if err != nil {
		return nil, fmt.Errorf("failed to list compatible supply: %w", err)
	}

	ranked := rankCompatibleSupply(request, pool)
	plan, planned := buildPlan(ranked, amount)

	totalCompatible := decimal.Zero
	for _, r := range ranked {
		totalCompatible = totalCompatible.Add(r.unit.Quantity)
	}

	entries := make([]usecase.PlanEntry, 0, len(plan))
	for _, draw := range plan {
		entries = append(entries, usecase.PlanEntry{
			UnitID:         draw.unit.ID,
			OwnerOrgID:     draw.unit.OwnerOrgID,
			OwnerOrgName:   draw.unit.OwnerOrgName,
			Amount:         draw.amount,
			UnitQuantity:   draw.unit.Quantity,
			DistanceMeters: draw.distanceMeters,
		})
	}

	return &usecase.AllocationPreview{
		RequestedAmount: amount,
		PlannedAmount:   planned,
		TotalCompatible: totalCompatible,
		Entries:         entries,
	}, nil
}

// aggregateDonorShares folds the applied entries into one share per donor
// organization, preserving first-appearance (nearest-first) order.
func aggregateDonorShares(applied []usecase.AppliedEntry) []usecase.DonorShare {
	shares := make([]usecase.DonorShare, 0, len(applied))
	index := make(map[uuid.UUID]int, len(applied))
	for _, entry := range applied {
		if i, ok := index[entry.OwnerOrgID]; ok {
			shares[i].Amount = shares[i].Amount.Add(entry.Amount)

			continue
		}
		index[entry.OwnerOrgID] = len(shares)
		shares = append(shares, usecase.DonorShare{
			OrgID:   entry.OwnerOrgID,
			OrgName: entry.OwnerOrgName,
			Amount:  entry.Amount,
		})
	}

	return shares
}

func decrementFailureReason(err error) string {
	switch {
	case errors.Is(err, repository.ErrSupplyConflict):
		return "unit was modified concurrently"
	case errors.Is(err, repository.ErrSupplyNotFound):
		return "unit no longer exists"
	default:
		return "store error"
	}
}

// replayedOutcome rebuilds a summary outcome from the idempotency record of an
// earlier call. Per-unit detail is not retained on the record.
func replayedOutcome(record *entity.AllocationRecord) *usecase.AllocationOutcome {
	return &usecase.AllocationOutcome{
		Status:           record.Status,
		PlannedAmount:    record.PlannedAmount,
		AppliedAmount:    record.AppliedAmount,
		RequestRemainder: record.RequestRemainder,
		RequestFulfilled: record.RequestFulfilled,
		AppliedEntries:   []usecase.AppliedEntry{},
		PerDonor:         []usecase.DonorShare{},
		Replayed:         true,
	}
}
