package impl

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"relief/internal/domain/entity"
	domainerrors "relief/internal/domain/errors"
	"relief/internal/domain/repository"
	mockRepo "relief/internal/mocks/repository"
	mockService "relief/internal/mocks/service"
	"relief/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type allocationFixture struct {
	supplyRepo       *mockRepo.MockSupplyRepository
	requestRepo      *mockRepo.MockRequestRepository
	historyRepo      *mockRepo.MockHistoryRepository
	notificationRepo *mockRepo.MockNotificationRepository
	allocationRepo   *mockRepo.MockAllocationRepository
	eventPublisher   *mockService.MockEventPublisher
	service          usecase.AllocationUsecase
}

func newAllocationFixture(t *testing.T) *allocationFixture {
	f := &allocationFixture{
		supplyRepo:       mockRepo.NewMockSupplyRepository(t),
		requestRepo:      mockRepo.NewMockRequestRepository(t),
		historyRepo:      mockRepo.NewMockHistoryRepository(t),
		notificationRepo: mockRepo.NewMockNotificationRepository(t),
		allocationRepo:   mockRepo.NewMockAllocationRepository(t),
		eventPublisher:   mockService.NewMockEventPublisher(t),
	}
	f.service = NewAllocationService(
		testLogger(),
		f.supplyRepo,
		f.requestRepo,
		f.historyRepo,
		f.notificationRepo,
		f.allocationRepo,
		f.eventPublisher,
	)

	return f
}

func decremented(unit *entity.SupplyUnit, amount decimal.Decimal) *entity.SupplyUnit {
	updated := *unit
	updated.Quantity = unit.Quantity.Sub(amount)
	updated.Status = entity.DeriveSupplyStatus(updated.Quantity)
	updated.Version = unit.Version + 1

	return &updated
}

func TestAllocationService_Allocate_FullyApplied(t *testing.T) {
	f := newAllocationFixture(t)
	ctx := context.Background()

	request := newTestRequest("Water", "Liquid", 100, 23.8103, 90.4125)
	near := newTestUnit("Water", "Liquid", 60, 23.9, 90.5)
	far := newTestUnit("water", "liquid", 200, 22.3569, 91.7832)

	f.requestRepo.EXPECT().FindByID(ctx, request.ID).Return(request, nil)
	f.supplyRepo.EXPECT().ListCompatible(ctx, "Water", "Liquid").
		Return([]*entity.SupplyUnit{far, near}, nil)

	f.supplyRepo.EXPECT().
		ConditionalDecrement(ctx, near.ID, decimal.NewFromInt(60), near.Version).
		Return(decremented(near, decimal.NewFromInt(60)), nil)
	f.supplyRepo.EXPECT().
		ConditionalDecrement(ctx, far.ID, decimal.NewFromInt(40), far.Version).
		Return(decremented(far, decimal.NewFromInt(40)), nil)

	// Two supply audit entries plus one for the request.
	f.historyRepo.EXPECT().Append(ctx, mock.AnythingOfType("*entity.HistoryEntry")).Return(nil).Times(3)

	// Request fully covered: the row is removed, never kept at zero.
	f.requestRepo.EXPECT().Delete(ctx, request.ID).Return(nil)

	f.notificationRepo.EXPECT().Enqueue(ctx, mock.AnythingOfType("*entity.Notification")).Return(nil).Times(3)
	f.eventPublisher.EXPECT().PublishAllocationEvent(ctx, mock.AnythingOfType("*service.AllocationEvent")).Return(nil)

	outcome, err := f.service.Allocate(ctx, usecase.AllocateInput{
		RequestID: request.ID,
		Amount:    decimal.NewFromInt(100),
		ActorID:   uuid.New(),
	})
	require.NoError(t, err)

	assert.Equal(t, entity.AllocationFullyApplied, outcome.Status)
	assert.True(t, outcome.AppliedAmount.Equal(decimal.NewFromInt(100)))
	assert.True(t, outcome.RequestRemainder.IsZero())
	assert.True(t, outcome.RequestFulfilled)
	require.Len(t, outcome.AppliedEntries, 2)
	assert.Equal(t, near.ID, outcome.AppliedEntries[0].UnitID, "nearest unit drained first")
	assert.Equal(t, far.ID, outcome.AppliedEntries[1].UnitID)
	assert.Empty(t, outcome.FailedEntries)
	assert.Len(t, outcome.PerDonor, 2)
	assert.Empty(t, outcome.Warnings)
}

func TestAllocationService_Allocate_ConservationAcrossEntries(t *testing.T) {
	f := newAllocationFixture(t)
	ctx := context.Background()

	request := newTestRequest("Rice", "Food", 500, 23.8, 90.4)
	units := []*entity.SupplyUnit{
		newTestUnit("Rice", "Food", 120, 23.81, 90.41),
		newTestUnit("Rice", "Food", 80, 23.82, 90.42),
		newTestUnit("Rice", "Food", 90, 23.83, 90.43),
	}

	f.requestRepo.EXPECT().FindByID(ctx, request.ID).Return(request, nil)
	f.supplyRepo.EXPECT().ListCompatible(ctx, "Rice", "Food").Return(units, nil)
	for _, u := range units {
		f.supplyRepo.EXPECT().
			ConditionalDecrement(ctx, u.ID, u.Quantity, u.Version).
			Return(decremented(u, u.Quantity), nil)
	}
	f.historyRepo.EXPECT().Append(ctx, mock.AnythingOfType("*entity.HistoryEntry")).Return(nil)
	f.requestRepo.EXPECT().
		UpdateRemainder(ctx, request.ID, mock.AnythingOfType("decimal.Decimal"), entity.RequestStatusPartiallyAllocated).
		Return(nil)
	f.notificationRepo.EXPECT().Enqueue(ctx, mock.AnythingOfType("*entity.Notification")).Return(nil)
	f.eventPublisher.EXPECT().PublishAllocationEvent(ctx, mock.AnythingOfType("*service.AllocationEvent")).Return(nil)

	outcome, err := f.service.Allocate(ctx, usecase.AllocateInput{
		RequestID: request.ID,
		Amount:    decimal.NewFromInt(500),
		ActorID:   uuid.New(),
	})
	require.NoError(t, err)

	sum := decimal.Zero
	for _, entry := range outcome.AppliedEntries {
		sum = sum.Add(entry.Amount)
	}
	assert.True(t, sum.Equal(outcome.AppliedAmount), "applied total equals the sum of applied entries")
	assert.True(t, outcome.AppliedAmount.Equal(decimal.NewFromInt(290)))
	assert.Equal(t, entity.AllocationPartiallyApplied, outcome.Status)
	assert.True(t, outcome.RequestRemainder.Equal(decimal.NewFromInt(210)))
	assert.False(t, outcome.RequestFulfilled)
}

func TestAllocationService_Allocate_LostDecrementIsNotRedistributed(t *testing.T) {
	f := newAllocationFixture(t)
	ctx := context.Background()

	request := newTestRequest("Water", "Liquid", 100, 23.8, 90.4)
	near := newTestUnit("Water", "Liquid", 60, 23.81, 90.41)
	far := newTestUnit("Water", "Liquid", 200, 23.9, 90.5)

	f.requestRepo.EXPECT().FindByID(ctx, request.ID).Return(request, nil)
	f.supplyRepo.EXPECT().ListCompatible(ctx, "Water", "Liquid").
		Return([]*entity.SupplyUnit{near, far}, nil)

	// The near unit was consumed concurrently. Its 60 are lost from this call;
	// the far unit still only contributes its planned 40.
	f.supplyRepo.EXPECT().
		ConditionalDecrement(ctx, near.ID, decimal.NewFromInt(60), near.Version).
		Return(nil, repository.ErrSupplyConflict)
	f.supplyRepo.EXPECT().
		ConditionalDecrement(ctx, far.ID, decimal.NewFromInt(40), far.Version).
		Return(decremented(far, decimal.NewFromInt(40)), nil)

	f.historyRepo.EXPECT().Append(ctx, mock.AnythingOfType("*entity.HistoryEntry")).Return(nil)
	f.requestRepo.EXPECT().
		UpdateRemainder(ctx, request.ID, mock.AnythingOfType("decimal.Decimal"), entity.RequestStatusPartiallyAllocated).
		Return(nil)
	f.notificationRepo.EXPECT().Enqueue(ctx, mock.AnythingOfType("*entity.Notification")).Return(nil)
	f.eventPublisher.EXPECT().PublishAllocationEvent(ctx, mock.AnythingOfType("*service.AllocationEvent")).Return(nil)

	outcome, err := f.service.Allocate(ctx, usecase.AllocateInput{
		RequestID: request.ID,
		Amount:    decimal.NewFromInt(100),
		ActorID:   uuid.New(),
	})
	require.NoError(t, err)

	assert.Equal(t, entity.AllocationPartiallyApplied, outcome.Status)
	assert.True(t, outcome.AppliedAmount.Equal(decimal.NewFromInt(40)))
	require.Len(t, outcome.FailedEntries, 1)
	assert.Equal(t, near.ID, outcome.FailedEntries[0].UnitID)
	assert.Equal(t, "unit was modified concurrently", outcome.FailedEntries[0].Reason)
	assert.True(t, outcome.RequestRemainder.Equal(decimal.NewFromInt(60)))
}

func TestAllocationService_Allocate_NoCompatibleSupply(t *testing.T) {
	f := newAllocationFixture(t)
	ctx := context.Background()

	request := newTestRequest("Insulin", "Medicine", 20, 23.8, 90.4)

	f.requestRepo.EXPECT().FindByID(ctx, request.ID).Return(request, nil)
	f.supplyRepo.EXPECT().ListCompatible(ctx, "Insulin", "Medicine").Return(nil, nil)

	outcome, err := f.service.Allocate(ctx, usecase.AllocateInput{
		RequestID: request.ID,
		Amount:    decimal.NewFromInt(20),
		ActorID:   uuid.New(),
	})
	require.NoError(t, err)

	assert.Equal(t, entity.AllocationNothingApplied, outcome.Status)
	assert.True(t, outcome.AppliedAmount.IsZero())
	assert.True(t, outcome.RequestRemainder.Equal(request.Quantity))
	assert.False(t, outcome.RequestFulfilled)
	assert.NotEmpty(t, outcome.Warnings)
}

func TestAllocationService_Allocate_InvalidAmountTouchesNothing(t *testing.T) {
	f := newAllocationFixture(t)

	for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-5)} {
		outcome, err := f.service.Allocate(context.Background(), usecase.AllocateInput{
			RequestID: uuid.New(),
			Amount:    amount,
			ActorID:   uuid.New(),
		})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidAllocationAmount)
		assert.Nil(t, outcome)
	}
}

func TestAllocationService_Allocate_StaleRequestAborts(t *testing.T) {
	f := newAllocationFixture(t)
	ctx := context.Background()
	requestID := uuid.New()

	f.requestRepo.EXPECT().FindByID(ctx, requestID).Return(nil, repository.ErrRequestNotFound)

	outcome, err := f.service.Allocate(ctx, usecase.AllocateInput{
		RequestID: requestID,
		Amount:    decimal.NewFromInt(10),
		ActorID:   uuid.New(),
	})
	assert.ErrorIs(t, err, domainerrors.ErrStaleRequest)
	assert.Nil(t, outcome)
}

func TestAllocationService_Allocate_ReplaysIdempotencyRecord(t *testing.T) {
	f := newAllocationFixture(t)
	ctx := context.Background()

	record := &entity.AllocationRecord{
		ID:               uuid.New(),
		IdempotencyKey:   "retry-7f3a",
		RequestID:        uuid.New(),
		RequestedAmount:  decimal.NewFromInt(100),
		PlannedAmount:    decimal.NewFromInt(100),
		AppliedAmount:    decimal.NewFromInt(100),
		RequestRemainder: decimal.Zero,
		RequestFulfilled: true,
		Status:           entity.AllocationFullyApplied,
	}
	f.allocationRepo.EXPECT().FindByIdempotencyKey(ctx, "retry-7f3a").Return(record, nil)

	outcome, err := f.service.Allocate(ctx, usecase.AllocateInput{
		RequestID:      record.RequestID,
		Amount:         decimal.NewFromInt(100),
		ActorID:        uuid.New(),
		IdempotencyKey: "retry-7f3a",
	})
	require.NoError(t, err)

	assert.True(t, outcome.Replayed)
	assert.Equal(t, entity.AllocationFullyApplied, outcome.Status)
	assert.True(t, outcome.AppliedAmount.Equal(decimal.NewFromInt(100)))
	assert.True(t, outcome.RequestFulfilled)
	// No inventory was touched: the supply and request mocks had no expectations.
}

func TestAllocationService_Allocate_KeyedCallPersistsRecord(t *testing.T) {
	f := newAllocationFixture(t)
	ctx := context.Background()

	request := newTestRequest("Water", "Liquid", 50, 23.8, 90.4)
	unit := newTestUnit("Water", "Liquid", 50, 23.81, 90.41)

	f.allocationRepo.EXPECT().FindByIdempotencyKey(ctx, "first-run").
		Return(nil, repository.ErrAllocationRecordNotFound)
	f.requestRepo.EXPECT().FindByID(ctx, request.ID).Return(request, nil)
	f.supplyRepo.EXPECT().ListCompatible(ctx, "Water", "Liquid").
		Return([]*entity.SupplyUnit{unit}, nil)
	f.supplyRepo.EXPECT().
		ConditionalDecrement(ctx, unit.ID, decimal.NewFromInt(50), unit.Version).
		Return(decremented(unit, decimal.NewFromInt(50)), nil)
	f.historyRepo.EXPECT().Append(ctx, mock.AnythingOfType("*entity.HistoryEntry")).Return(nil)
	f.requestRepo.EXPECT().Delete(ctx, request.ID).Return(nil)
	f.notificationRepo.EXPECT().Enqueue(ctx, mock.AnythingOfType("*entity.Notification")).Return(nil)
	f.eventPublisher.EXPECT().PublishAllocationEvent(ctx, mock.AnythingOfType("*service.AllocationEvent")).Return(nil)

	f.allocationRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.AllocationRecord")).
		Run(func(_ context.Context, record *entity.AllocationRecord) {
			assert.Equal(t, "first-run", record.IdempotencyKey)
			assert.True(t, record.AppliedAmount.Equal(decimal.NewFromInt(50)))
			assert.True(t, record.RequestFulfilled)
			assert.Equal(t, entity.AllocationFullyApplied, record.Status)
		}).
		Return(nil)

	outcome, err := f.service.Allocate(ctx, usecase.AllocateInput{
		RequestID:      request.ID,
		Amount:         decimal.NewFromInt(50),
		ActorID:        uuid.New(),
		IdempotencyKey: "first-run",
	})
	require.NoError(t, err)
	assert.False(t, outcome.Replayed)
}

func TestAllocationService_Allocate_AuditFailureIsLoudButNotFatal(t *testing.T) {
	f := newAllocationFixture(t)
	ctx := context.Background()

	request := newTestRequest("Water", "Liquid", 50, 23.8, 90.4)
	unit := newTestUnit("Water", "Liquid", 50, 23.81, 90.41)

	f.requestRepo.EXPECT().FindByID(ctx, request.ID).Return(request, nil)
	f.supplyRepo.EXPECT().ListCompatible(ctx, "Water", "Liquid").
		Return([]*entity.SupplyUnit{unit}, nil)
	f.supplyRepo.EXPECT().
		ConditionalDecrement(ctx, unit.ID, decimal.NewFromInt(50), unit.Version).
		Return(decremented(unit, decimal.NewFromInt(50)), nil)
	f.historyRepo.EXPECT().Append(ctx, mock.AnythingOfType("*entity.HistoryEntry")).
		Return(errors.New("history table unavailable"))
	f.requestRepo.EXPECT().Delete(ctx, request.ID).Return(nil)
	f.notificationRepo.EXPECT().Enqueue(ctx, mock.AnythingOfType("*entity.Notification")).Return(nil)
	f.eventPublisher.EXPECT().PublishAllocationEvent(ctx, mock.AnythingOfType("*service.AllocationEvent")).Return(nil)

	outcome, err := f.service.Allocate(ctx, usecase.AllocateInput{
		RequestID: request.ID,
		Amount:    decimal.NewFromInt(50),
		ActorID:   uuid.New(),
	})
	require.NoError(t, err, "a lost audit entry must not fail a committed allocation")

	assert.Equal(t, entity.AllocationFullyApplied, outcome.Status)
	assert.NotEmpty(t, outcome.Warnings)
}

func TestAllocationService_Allocate_NotificationFailureBecomesWarning(t *testing.T) {
	f := newAllocationFixture(t)
	ctx := context.Background()

	request := newTestRequest("Water", "Liquid", 50, 23.8, 90.4)
	unit := newTestUnit("Water", "Liquid", 50, 23.81, 90.41)

	f.requestRepo.EXPECT().FindByID(ctx, request.ID).Return(request, nil)
	f.supplyRepo.EXPECT().ListCompatible(ctx, "Water", "Liquid").
		Return([]*entity.SupplyUnit{unit}, nil)
	f.supplyRepo.EXPECT().
		ConditionalDecrement(ctx, unit.ID, decimal.NewFromInt(50), unit.Version).
		Return(decremented(unit, decimal.NewFromInt(50)), nil)
	f.historyRepo.EXPECT().Append(ctx, mock.AnythingOfType("*entity.HistoryEntry")).Return(nil)
	f.requestRepo.EXPECT().Delete(ctx, request.ID).Return(nil)
	f.notificationRepo.EXPECT().Enqueue(ctx, mock.AnythingOfType("*entity.Notification")).
		Return(errors.New("notification store down"))
	f.eventPublisher.EXPECT().PublishAllocationEvent(ctx, mock.AnythingOfType("*service.AllocationEvent")).Return(nil)

	outcome, err := f.service.Allocate(ctx, usecase.AllocateInput{
		RequestID: request.ID,
		Amount:    decimal.NewFromInt(50),
		ActorID:   uuid.New(),
	})
	require.NoError(t, err)

	assert.Equal(t, entity.AllocationFullyApplied, outcome.Status)
	assert.NotEmpty(t, outcome.Warnings)
}

func TestAllocationService_Allocate_CancelledContextAbandonsPlan(t *testing.T) {
	f := newAllocationFixture(t)
	ctx, cancel := context.WithCancel(context.Background())

	request := newTestRequest("Water", "Liquid", 100, 23.8, 90.4)
	unit := newTestUnit("Water", "Liquid", 200, 23.81, 90.41)

	f.requestRepo.EXPECT().FindByID(ctx, request.ID).Return(request, nil)
	f.supplyRepo.EXPECT().ListCompatible(ctx, "Water", "Liquid").
		RunAndReturn(func(context.Context, string, string) ([]*entity.SupplyUnit, error) {
			cancel()

			return []*entity.SupplyUnit{unit}, nil
		})

	outcome, err := f.service.Allocate(ctx, usecase.AllocateInput{
		RequestID: request.ID,
		Amount:    decimal.NewFromInt(100),
		ActorID:   uuid.New(),
	})
	require.NoError(t, err)

	assert.Equal(t, entity.AllocationNothingApplied, outcome.Status)
	assert.True(t, outcome.AppliedAmount.IsZero())
	assert.NotEmpty(t, outcome.Warnings, "abandoned draws are reported")
}

func TestAllocationService_Allocate_DuplicateKeyRaceSurfacesWarning(t *testing.T) {
	f := newAllocationFixture(t)
	ctx := context.Background()

	request := newTestRequest("Water", "Liquid", 50, 23.8, 90.4)
	unit := newTestUnit("Water", "Liquid", 50, 23.81, 90.41)

	f.allocationRepo.EXPECT().FindByIdempotencyKey(ctx, "raced").
		Return(nil, repository.ErrAllocationRecordNotFound)
	f.requestRepo.EXPECT().FindByID(ctx, request.ID).Return(request, nil)
	f.supplyRepo.EXPECT().ListCompatible(ctx, "Water", "Liquid").
		Return([]*entity.SupplyUnit{unit}, nil)
	f.supplyRepo.EXPECT().
		ConditionalDecrement(ctx, unit.ID, decimal.NewFromInt(50), unit.Version).
		Return(decremented(unit, decimal.NewFromInt(50)), nil)
	f.historyRepo.EXPECT().Append(ctx, mock.AnythingOfType("*entity.HistoryEntry")).Return(nil)
	f.requestRepo.EXPECT().Delete(ctx, request.ID).Return(nil)
	f.notificationRepo.EXPECT().Enqueue(ctx, mock.AnythingOfType("*entity.Notification")).Return(nil)
	f.eventPublisher.EXPECT().PublishAllocationEvent(ctx, mock.AnythingOfType("*service.AllocationEvent")).Return(nil)
	f.allocationRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.AllocationRecord")).
		Return(repository.ErrDuplicateAllocationKey)

	outcome, err := f.service.Allocate(ctx, usecase.AllocateInput{
		RequestID:      request.ID,
		Amount:         decimal.NewFromInt(50),
		ActorID:        uuid.New(),
		IdempotencyKey: "raced",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, outcome.Warnings)
}

func TestAllocationService_PreviewAllocation(t *testing.T) {
	f := newAllocationFixture(t)
	ctx := context.Background()

	request := newTestRequest("Water", "Liquid", 100, 23.8103, 90.4125)
	near := newTestUnit("Water", "Liquid", 60, 23.9, 90.5)
	far := newTestUnit("Water", "Liquid", 200, 22.3569, 91.7832)

	f.requestRepo.EXPECT().FindByID(ctx, request.ID).Return(request, nil)
	f.supplyRepo.EXPECT().ListCompatible(ctx, "Water", "Liquid").
		Return([]*entity.SupplyUnit{far, near}, nil)

	preview, err := f.service.PreviewAllocation(ctx, request.ID, decimal.NewFromInt(100))
	require.NoError(t, err)

	assert.True(t, preview.PlannedAmount.Equal(decimal.NewFromInt(100)))
	assert.True(t, preview.TotalCompatible.Equal(decimal.NewFromInt(260)))
	require.Len(t, preview.Entries, 2)
	assert.Equal(t, near.ID, preview.Entries[0].UnitID)
	assert.True(t, preview.Entries[0].Amount.Equal(decimal.NewFromInt(60)))
	assert.True(t, preview.Entries[1].Amount.Equal(decimal.NewFromInt(40)))
	assert.Less(t, preview.Entries[0].DistanceMeters, preview.Entries[1].DistanceMeters)
}

func TestAllocationService_PreviewAllocation_UnknownRequest(t *testing.T) {
	f := newAllocationFixture(t)
	ctx := context.Background()
	requestID := uuid.New()

	f.requestRepo.EXPECT().FindByID(ctx, requestID).Return(nil, repository.ErrRequestNotFound)

	preview, err := f.service.PreviewAllocation(ctx, requestID, decimal.NewFromInt(10))
	assert.ErrorIs(t, err, domainerrors.ErrRequestNotFound)
	assert.Nil(t, preview)
}

func TestAllocationService_PreviewAllocation_InvalidAmount(t *testing.T) {
	f := newAllocationFixture(t)

	preview, err := f.service.PreviewAllocation(context.Background(), uuid.New(), decimal.Zero)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidAllocationAmount)
	assert.Nil(t, preview)
}
