package commands_test

import (
	"testing"
	"time"

	"grouporders/internal/core/application/usecases/commands"
	"grouporders/internal/core/domain/model/grouporder"
	"grouporders/internal/core/domain/model/kernel"
	"grouporders/internal/core/domain/model/order"
	"grouporders/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func groupedOrder(t *testing.T, rawID int64, groupOrderID kernel.ID) *order.Order {
	t.Helper()
	id, err := kernel.NewID(rawID)
	require.NoError(t, err)
	userID, err := kernel.NewID(1)
	require.NoError(t, err)
	menuItemID, err := kernel.NewID(1)
	require.NoError(t, err)
	price, err := kernel.NewPrice(10.99)
	require.NoError(t, err)
	o, err := order.RestoreOrder(id, userID, "Restauracja A", "Restauracja B",
		menuItemID, price, order.StatusGrouped, &groupOrderID)
	require.NoError(t, err)
	return o
}

func TestChangeGroupOrderStatusCommandHandler_Handle_PropagatesToMembers(t *testing.T) {
	ctx := t.Context()
	groupID, _ := kernel.NewID(5)
	cmd, _ := commands.NewChangeGroupOrderStatusCommand(groupID, "confirmed")

	orderDate := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	group, _ := grouporder.RestoreGroupOrder(groupID, "Restauracja A", orderDate, order.StatusNew)
	member1 := groupedOrder(t, 1, groupID)
	member2 := groupedOrder(t, 2, groupID)

	groupRepo := new(MockGroupOrderRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockGroupingUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("GroupOrderRepository").Return(groupRepo).Once(),
		groupRepo.On("Get", ctx, groupID).Return(group, nil).Once(),
		groupRepo.On("Update", mock.Anything, group).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetAllByGroupOrder", ctx, groupID).
			Return([]*order.Order{member1, member2}, nil).Once(),
		orderRepo.On("Update", mock.Anything, member1).Return(nil).Once(),
		orderRepo.On("Update", mock.Anything, member2).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockGroupingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeGroupOrderStatusCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	groupRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)

	require.Equal(t, order.Status("confirmed"), group.Status())
	require.Equal(t, order.Status("confirmed"), member1.Status())
	require.Equal(t, order.Status("confirmed"), member2.Status())
}

func TestChangeGroupOrderStatusCommandHandler_Handle_EmptyGroup(t *testing.T) {
	ctx := t.Context()
	groupID, _ := kernel.NewID(5)
	cmd, _ := commands.NewChangeGroupOrderStatusCommand(groupID, "confirmed")

	orderDate := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	group, _ := grouporder.RestoreGroupOrder(groupID, "Restauracja A", orderDate, order.StatusNew)

	groupRepo := new(MockGroupOrderRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockGroupingUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("GroupOrderRepository").Return(groupRepo).Once(),
		groupRepo.On("Get", ctx, groupID).Return(group, nil).Once(),
		groupRepo.On("Update", mock.Anything, group).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetAllByGroupOrder", ctx, groupID).Return([]*order.Order{}, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockGroupingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeGroupOrderStatusCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, order.Status("confirmed"), group.Status())
}

func TestChangeGroupOrderStatusCommandHandler_Handle_UnknownGroup(t *testing.T) {
	ctx := t.Context()
	groupID, _ := kernel.NewID(404)
	cmd, _ := commands.NewChangeGroupOrderStatusCommand(groupID, "confirmed")

	groupRepo := new(MockGroupOrderRepository)
	uow := new(MockGroupingUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("GroupOrderRepository").Return(groupRepo).Once(),
		groupRepo.On("Get", ctx, groupID).
			Return(nil, errs.NewObjectNotFoundError("groupOrder", groupID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockGroupingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeGroupOrderStatusCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestNewChangeGroupOrderStatusCommand(t *testing.T) {
	t.Run("should fail with invalid group identity", func(t *testing.T) {
		var invalidID kernel.ID

		_, err := commands.NewChangeGroupOrderStatusCommand(invalidID, "confirmed")

		require.Error(t, err)
	})

	t.Run("should fail with empty status", func(t *testing.T) {
		groupID, _ := kernel.NewID(5)

		_, err := commands.NewChangeGroupOrderStatusCommand(groupID, "")

		require.Error(t, err)
	})

	t.Run("should reject zero value command", func(t *testing.T) {
		var cmd commands.ChangeGroupOrderStatusCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrChangeGroupOrderStatusCommandIsNotConstructed)
	})
}
