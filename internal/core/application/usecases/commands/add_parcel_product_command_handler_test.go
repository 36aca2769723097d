package commands_test

import (
	"testing"

	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewAddParcelProductCommand(t *testing.T) {
	parcelID, productID := kernel.NewUUID(), kernel.NewUUID()

	cmd, err := commands.NewAddParcelProductCommand(parcelID, productID, 3)
	require.NoError(t, err)
	assert.Equal(t, parcelID, cmd.ParcelID())
	assert.Equal(t, productID, cmd.ProductID())
	assert.Equal(t, 3, cmd.Quantity())

	_, err = commands.NewAddParcelProductCommand(parcelID, productID, 0)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Contains(t, err.Error(), "quantity")

	_, err = commands.NewAddParcelProductCommand(kernel.UUID{}, kernel.UUID{}, 1)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestAddParcelProductCommandHandler_Handle_SnapshotsPrice(t *testing.T) {
	ctx := t.Context()
	p := storedParcel(t, parcel.Created)
	prod := testProduct(t, 12.5)
	cmd, err := commands.NewAddParcelProductCommand(p.ID(), prod.ID(), 4)
	require.NoError(t, err)

	parcels := new(MockParcelRepository)
	products := new(MockProductRepository)
	lines := new(MockParcelProductRepository)
	uow := new(MockParcelUoW)

	isLine := mock.MatchedBy(func(l *parcel.ProductLine) bool {
		return l.ParcelID().IsEqual(p.ID()) &&
			l.ProductID().IsEqual(prod.ID()) &&
			l.Quantity() == 4 &&
			l.UnitPrice() == 12.5 &&
			l.Total() == 50
	})

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(parcels).Once(),
		parcels.On("Get", ctx, p.ID()).Return(p, nil).Once(),
		uow.On("ProductRepository").Return(products).Once(),
		products.On("Get", ctx, prod.ID()).Return(prod, nil).Once(),
		uow.On("ParcelProductRepository").Return(lines).Once(),
		lines.On("Save", ctx, isLine).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddParcelProductCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, parcel.Created, p.Status())
	uow.AssertNotCalled(t, "HistoryRepository")
	parcels.AssertExpectations(t)
	products.AssertExpectations(t)
	lines.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAddParcelProductCommandHandler_Handle_ProductNotFound(t *testing.T) {
	ctx := t.Context()
	p := storedParcel(t, parcel.Created)
	productID := kernel.NewUUID()
	cmd, err := commands.NewAddParcelProductCommand(p.ID(), productID, 1)
	require.NoError(t, err)

	parcels := new(MockParcelRepository)
	products := new(MockProductRepository)
	uow := new(MockParcelUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(parcels).Once(),
		parcels.On("Get", ctx, p.ID()).Return(p, nil).Once(),
		uow.On("ProductRepository").Return(products).Once(),
		products.On("Get", ctx, productID).Return(nil, errs.NewObjectNotFoundError("Product", productID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddParcelProductCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "ParcelProductRepository")
	uow.AssertExpectations(t)
}
