package commands_test

import (
	"errors"
	"testing"

	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateParcelCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	sender, recipient, z := testSender(t), testRecipient(t), testZone(t)
	parcelID := kernel.NewUUID()
	cmd, err := commands.NewCreateParcelCommand(parcelID, testDetails(), sender.ID(), recipient.ID(), z.ID())
	require.NoError(t, err)

	senders := new(MockSenderRepository)
	recipients := new(MockRecipientRepository)
	zones := new(MockZoneRepository)
	parcels := new(MockParcelRepository)
	history := new(MockHistoryRepository)
	uow := new(MockParcelUoW)

	isNewParcel := mock.MatchedBy(func(p *parcel.Parcel) bool {
		return p.ID().IsEqual(parcelID) &&
			p.Status() == parcel.Created &&
			p.SenderID().IsEqual(sender.ID()) &&
			p.RecipientID().IsEqual(recipient.ID()) &&
			p.ZoneID().IsEqual(z.ID())
	})
	isCreatedEntry := mock.MatchedBy(func(e *parcel.HistoryEntry) bool {
		return e.ParcelID().IsEqual(parcelID) &&
			e.Status() == "CREATED" &&
			e.Comment() == "parcel created by sender"
	})

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SenderRepository").Return(senders).Once(),
		senders.On("Get", ctx, sender.ID()).Return(sender, nil).Once(),
		uow.On("RecipientRepository").Return(recipients).Once(),
		recipients.On("Get", ctx, recipient.ID()).Return(recipient, nil).Once(),
		uow.On("ZoneRepository").Return(zones).Once(),
		zones.On("Get", ctx, z.ID()).Return(z, nil).Once(),
		uow.On("ParcelRepository").Return(parcels).Once(),
		parcels.On("Add", ctx, isNewParcel).Return(nil).Once(),
		uow.On("HistoryRepository").Return(history).Once(),
		history.On("Append", ctx, isCreatedEntry).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateParcelCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	senders.AssertExpectations(t)
	recipients.AssertExpectations(t)
	zones.AssertExpectations(t)
	parcels.AssertExpectations(t)
	history.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateParcelCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockParcelUoWFactory)
	h := commands.NewCreateParcelCommandHandler(factory)

	err := h.Handle(t.Context(), commands.CreateParcelCommand{})

	require.ErrorIs(t, err, commands.ErrCreateParcelCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateParcelCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateParcelCommand(kernel.NewUUID(), testDetails(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)

	uow := new(MockParcelUoW)
	factory := new(MockParcelUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewCreateParcelCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.EqualError(t, err, "begin error")
	uow.AssertNotCalled(t, "Rollback", ctx)
}

func TestCreateParcelCommandHandler_Handle_SenderNotFound(t *testing.T) {
	ctx := t.Context()
	senderID := kernel.NewUUID()
	cmd, err := commands.NewCreateParcelCommand(kernel.NewUUID(), testDetails(), senderID, kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)

	senders := new(MockSenderRepository)
	uow := new(MockParcelUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SenderRepository").Return(senders).Once(),
		senders.On("Get", ctx, senderID).Return(nil, errs.NewObjectNotFoundError("Sender", senderID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateParcelCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Contains(t, err.Error(), "Sender not found")
	uow.AssertNotCalled(t, "RecipientRepository")
	uow.AssertNotCalled(t, "ParcelRepository")
	uow.AssertNotCalled(t, "Commit", ctx)
	uow.AssertExpectations(t)
}

func TestCreateParcelCommandHandler_Handle_UnknownSenderIsReportedBeforeUnparseableZone(t *testing.T) {
	ctx := t.Context()
	senderID := kernel.NewUUID()
	cmd, err := commands.NewCreateParcelCommandFromRefs(kernel.NewUUID(), testDetails(),
		senderID.String(), kernel.NewUUID().String(), "not-a-zone")
	require.NoError(t, err)

	senders := new(MockSenderRepository)
	uow := new(MockParcelUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SenderRepository").Return(senders).Once(),
		senders.On("Get", ctx, senderID).Return(nil, errs.NewObjectNotFoundError("Sender", senderID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow).Once()

	err = commands.NewCreateParcelCommandHandler(factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Contains(t, err.Error(), "Sender not found")
	assert.NotContains(t, err.Error(), "Zone")
	uow.AssertExpectations(t)
}

func TestCreateParcelCommandHandler_Handle_UnparseableZoneAfterResolvedParents(t *testing.T) {
	ctx := t.Context()
	sender := testSender(t)
	recipient := testRecipient(t)
	cmd, err := commands.NewCreateParcelCommandFromRefs(kernel.NewUUID(), testDetails(),
		sender.ID().String(), recipient.ID().String(), "not-a-zone")
	require.NoError(t, err)

	senders := new(MockSenderRepository)
	recipients := new(MockRecipientRepository)
	uow := new(MockParcelUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SenderRepository").Return(senders).Once(),
		senders.On("Get", ctx, sender.ID()).Return(sender, nil).Once(),
		uow.On("RecipientRepository").Return(recipients).Once(),
		recipients.On("Get", ctx, recipient.ID()).Return(recipient, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow).Once()

	err = commands.NewCreateParcelCommandHandler(factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Contains(t, err.Error(), "Zone not found with id: not-a-zone")
	uow.AssertNotCalled(t, "ZoneRepository")
	uow.AssertNotCalled(t, "ParcelRepository")
	uow.AssertExpectations(t)
}

func TestCreateParcelCommandHandler_Handle_ZoneNotFound(t *testing.T) {
	ctx := t.Context()
	sender, recipient := testSender(t), testRecipient(t)
	zoneID := kernel.NewUUID()
	cmd, err := commands.NewCreateParcelCommand(kernel.NewUUID(), testDetails(), sender.ID(), recipient.ID(), zoneID)
	require.NoError(t, err)

	senders := new(MockSenderRepository)
	recipients := new(MockRecipientRepository)
	zones := new(MockZoneRepository)
	uow := new(MockParcelUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SenderRepository").Return(senders).Once(),
		senders.On("Get", ctx, sender.ID()).Return(sender, nil).Once(),
		uow.On("RecipientRepository").Return(recipients).Once(),
		recipients.On("Get", ctx, recipient.ID()).Return(recipient, nil).Once(),
		uow.On("ZoneRepository").Return(zones).Once(),
		zones.On("Get", ctx, zoneID).Return(nil, errs.NewObjectNotFoundError("Zone", zoneID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateParcelCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Contains(t, err.Error(), "Zone not found")
	uow.AssertNotCalled(t, "ParcelRepository")
	uow.AssertNotCalled(t, "HistoryRepository")
	uow.AssertExpectations(t)
}

func TestCreateParcelCommandHandler_Handle_AppendError(t *testing.T) {
	ctx := t.Context()
	sender, recipient, z := testSender(t), testRecipient(t), testZone(t)
	cmd, err := commands.NewCreateParcelCommand(kernel.NewUUID(), testDetails(), sender.ID(), recipient.ID(), z.ID())
	require.NoError(t, err)

	senders := new(MockSenderRepository)
	recipients := new(MockRecipientRepository)
	zones := new(MockZoneRepository)
	parcels := new(MockParcelRepository)
	history := new(MockHistoryRepository)
	uow := new(MockParcelUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SenderRepository").Return(senders).Once(),
		senders.On("Get", ctx, sender.ID()).Return(sender, nil).Once(),
		uow.On("RecipientRepository").Return(recipients).Once(),
		recipients.On("Get", ctx, recipient.ID()).Return(recipient, nil).Once(),
		uow.On("ZoneRepository").Return(zones).Once(),
		zones.On("Get", ctx, z.ID()).Return(z, nil).Once(),
		uow.On("ParcelRepository").Return(parcels).Once(),
		parcels.On("Add", ctx, mock.AnythingOfType("*parcel.Parcel")).Return(nil).Once(),
		uow.On("HistoryRepository").Return(history).Once(),
		history.On("Append", ctx, mock.AnythingOfType("*parcel.HistoryEntry")).Return(errors.New("append error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateParcelCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.EqualError(t, err, "append error")
	uow.AssertNotCalled(t, "Commit", ctx)
	uow.AssertExpectations(t)
}
