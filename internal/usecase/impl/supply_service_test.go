package impl

import (
	"context"
	"errors"
	"testing"

	"relief/internal/domain/entity"
	domainerrors "relief/internal/domain/errors"
	"relief/internal/domain/repository"
	mockRepo "relief/internal/mocks/repository"
	"relief/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type supplyFixture struct {
	txManager   *mockRepo.MockTransactionManager
	supplyRepo  *mockRepo.MockSupplyRepository
	historyRepo *mockRepo.MockHistoryRepository
	service     usecase.SupplyUsecase
}

func newSupplyFixture(t *testing.T) *supplyFixture {
	f := &supplyFixture{
		txManager:   mockRepo.NewMockTransactionManager(t),
		supplyRepo:  mockRepo.NewMockSupplyRepository(t),
		historyRepo: mockRepo.NewMockHistoryRepository(t),
	}
	f.service = NewSupplyService(testLogger(), f.txManager, f.supplyRepo, f.historyRepo)

	return f
}

// passThroughTx makes the transaction manager run the supplied function against
// a factory of transaction-bound repository mocks.
func passThroughTx(t *testing.T, txManager *mockRepo.MockTransactionManager, factory *mockRepo.MockRepositoryFactory) {
	t.Helper()
	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func TestSupplyService_ListCompatible(t *testing.T) {
	f := newSupplyFixture(t)
	ctx := context.Background()

	expected := []*entity.SupplyUnit{newTestUnit("Water", "Liquid", 40, 23.8, 90.4)}
	f.supplyRepo.EXPECT().ListCompatible(ctx, "Water", "Liquid").Return(expected, nil)

	units, err := f.service.ListCompatible(ctx, "Water", "Liquid")
	require.NoError(t, err)
	assert.Equal(t, expected, units)
}

func TestSupplyService_UnitHistory_IncludesWithdrawnUnits(t *testing.T) {
	f := newSupplyFixture(t)
	ctx := context.Background()

	unit := newTestUnit("Water", "Liquid", 0, 23.8, 90.4)
	unit.Deleted = true
	entries := []*entity.HistoryEntry{{
		ID:          uuid.New(),
		SubjectType: entity.HistorySubjectSupplyUnit,
		SubjectID:   unit.ID,
		Event:       entity.HistoryEventDelete,
	}}

	f.supplyRepo.EXPECT().FindByID(ctx, unit.ID).Return(unit, nil)
	f.historyRepo.EXPECT().
		ListBySubject(ctx, entity.HistorySubjectSupplyUnit, unit.ID, 20, 0).
		Return(entries, nil)

	got, err := f.service.UnitHistory(ctx, unit.ID, 20, 0)
	require.NoError(t, err)
	assert.Equal(t, entries, got)
}

func TestSupplyService_UnitHistory_UnknownUnit(t *testing.T) {
	f := newSupplyFixture(t)
	ctx := context.Background()
	unitID := uuid.New()

	f.supplyRepo.EXPECT().FindByID(ctx, unitID).Return(nil, repository.ErrSupplyNotFound)

	got, err := f.service.UnitHistory(ctx, unitID, 20, 0)
	assert.ErrorIs(t, err, domainerrors.ErrSupplyNotFound)
	assert.Nil(t, got)
}

func TestSupplyService_WithdrawSupply_Success(t *testing.T) {
	f := newSupplyFixture(t)
	ctx := context.Background()

	unit := newTestUnit("Tent", "Shelter", 12, 23.8, 90.4)
	f.supplyRepo.EXPECT().FindByID(ctx, unit.ID).Return(unit, nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	txSupply := mockRepo.NewMockSupplyRepository(t)
	txHistory := mockRepo.NewMockHistoryRepository(t)
	txNotification := mockRepo.NewMockNotificationRepository(t)
	factory.EXPECT().NewSupplyRepository().Return(txSupply)
	factory.EXPECT().NewHistoryRepository().Return(txHistory)
	factory.EXPECT().NewNotificationRepository().Return(txNotification)
	passThroughTx(t, f.txManager, factory)

	txSupply.EXPECT().SoftDelete(ctx, unit.ID).Return(nil)
	txHistory.EXPECT().Append(ctx, mock.AnythingOfType("*entity.HistoryEntry")).
		Run(func(_ context.Context, entry *entity.HistoryEntry) {
			assert.Equal(t, entity.HistoryEventDelete, entry.Event)
			assert.True(t, entry.QuantityDelta.Equal(decimal.NewFromInt(-12)))
		}).
		Return(nil)
	txNotification.EXPECT().Enqueue(ctx, mock.AnythingOfType("*entity.Notification")).
		Run(func(_ context.Context, n *entity.Notification) {
			assert.Equal(t, entity.NotificationResourceWithdrawn, n.Type)
			assert.Nil(t, n.RecipientOrgID, "withdrawal notice is a broadcast")
		}).
		Return(nil)

	err := f.service.WithdrawSupply(ctx, unit.ID, unit.OwnerOrgID)
	require.NoError(t, err)
}

func TestSupplyService_WithdrawSupply_NotOwner(t *testing.T) {
	f := newSupplyFixture(t)
	ctx := context.Background()

	unit := newTestUnit("Tent", "Shelter", 12, 23.8, 90.4)
	f.supplyRepo.EXPECT().FindByID(ctx, unit.ID).Return(unit, nil)

	err := f.service.WithdrawSupply(ctx, unit.ID, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrSupplyOwnershipViolation)
}

func TestSupplyService_WithdrawSupply_AlreadyWithdrawn(t *testing.T) {
	f := newSupplyFixture(t)
	ctx := context.Background()

	unit := newTestUnit("Tent", "Shelter", 12, 23.8, 90.4)
	unit.Deleted = true
	f.supplyRepo.EXPECT().FindByID(ctx, unit.ID).Return(unit, nil)

	err := f.service.WithdrawSupply(ctx, unit.ID, unit.OwnerOrgID)
	assert.ErrorIs(t, err, domainerrors.ErrSupplyWithdrawn)
}

func TestSupplyService_AdjustQuantity_Success(t *testing.T) {
	f := newSupplyFixture(t)
	ctx := context.Background()

	unit := newTestUnit("Rice", "Food", 100, 23.8, 90.4)
	f.supplyRepo.EXPECT().FindByID(ctx, unit.ID).Return(unit, nil)

	adjusted := *unit
	adjusted.Quantity = decimal.NewFromInt(80)
	adjusted.Version = unit.Version + 1

	factory := mockRepo.NewMockRepositoryFactory(t)
	txSupply := mockRepo.NewMockSupplyRepository(t)
	txHistory := mockRepo.NewMockHistoryRepository(t)
	txNotification := mockRepo.NewMockNotificationRepository(t)
	factory.EXPECT().NewSupplyRepository().Return(txSupply)
	factory.EXPECT().NewHistoryRepository().Return(txHistory)
	factory.EXPECT().NewNotificationRepository().Return(txNotification)
	passThroughTx(t, f.txManager, factory)

	txSupply.EXPECT().SetQuantity(ctx, unit.ID, decimal.NewFromInt(80)).Return(&adjusted, nil)
	txHistory.EXPECT().Append(ctx, mock.AnythingOfType("*entity.HistoryEntry")).
		Run(func(_ context.Context, entry *entity.HistoryEntry) {
			assert.Equal(t, entity.HistoryEventManualAdjust, entry.Event)
			assert.True(t, entry.QuantityDelta.Equal(decimal.NewFromInt(-20)), "signed delta recorded")
			assert.Equal(t, "spoilage after flooding", entry.Remark)
		}).
		Return(nil)
	txNotification.EXPECT().Enqueue(ctx, mock.AnythingOfType("*entity.Notification")).Return(nil)

	updated, err := f.service.AdjustQuantity(ctx, unit.ID, unit.OwnerOrgID, decimal.NewFromInt(80), "spoilage after flooding")
	require.NoError(t, err)
	assert.True(t, updated.Quantity.Equal(decimal.NewFromInt(80)))
}

func TestSupplyService_AdjustQuantity_NegativeQuantity(t *testing.T) {
	f := newSupplyFixture(t)

	updated, err := f.service.AdjustQuantity(context.Background(), uuid.New(), uuid.New(), decimal.NewFromInt(-1), "")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidQuantity)
	assert.Nil(t, updated)
}

func TestSupplyService_AdjustQuantity_TxFailureRollsUp(t *testing.T) {
	f := newSupplyFixture(t)
	ctx := context.Background()

	unit := newTestUnit("Rice", "Food", 100, 23.8, 90.4)
	f.supplyRepo.EXPECT().FindByID(ctx, unit.ID).Return(unit, nil)

	f.txManager.EXPECT().Execute(mock.Anything, mock.Anything).
		Return(errors.New("deadlock detected"))

	updated, err := f.service.AdjustQuantity(ctx, unit.ID, unit.OwnerOrgID, decimal.NewFromInt(80), "")
	assert.Error(t, err)
	assert.Nil(t, updated)
}
