package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpadapter "parceltrack/internal/adapters/in/http"
	"parceltrack/internal/core/application/registries"
	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/application/usecases/queries"
	"parceltrack/internal/core/domain/model/courier"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/core/domain/model/party"
	"parceltrack/internal/core/domain/model/product"
	"parceltrack/internal/core/domain/model/zone"
	"parceltrack/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockCommand[C any] struct{ mock.Mock }

func (m *mockCommand[C]) Handle(ctx context.Context, cmd C) error {
	return m.Called(ctx, cmd).Error(0)
}

type mockQuery[Q any, R any] struct{ mock.Mock }

func (m *mockQuery[Q, R]) Handle(ctx context.Context, query Q) (R, error) {
	args := m.Called(ctx, query)
	var zero R
	switch v := args.Get(0).(type) {
	case nil:
		return zero, args.Error(1)
	case func(context.Context, Q) R:
		return v(ctx, query), args.Error(1)
	default:
		return v.(R), args.Error(1)
	}
}

type mockRegistry[T any, A any] struct{ mock.Mock }

func (m *mockRegistry[T, A]) Create(ctx context.Context, attrs A) (T, error) {
	args := m.Called(ctx, attrs)
	var zero T
	if args.Get(0) == nil {
		return zero, args.Error(1)
	}
	return args.Get(0).(T), args.Error(1)
}

func (m *mockRegistry[T, A]) Fetch(ctx context.Context, id kernel.UUID) (T, error) {
	args := m.Called(ctx, id)
	var zero T
	if args.Get(0) == nil {
		return zero, args.Error(1)
	}
	return args.Get(0).(T), args.Error(1)
}

func (m *mockRegistry[T, A]) List(ctx context.Context) ([]T, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]T), args.Error(1)
}

func (m *mockRegistry[T, A]) Update(ctx context.Context, id kernel.UUID, attrs A) (T, error) {
	args := m.Called(ctx, id, attrs)
	var zero T
	if args.Get(0) == nil {
		return zero, args.Error(1)
	}
	return args.Get(0).(T), args.Error(1)
}

func (m *mockRegistry[T, A]) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type fixture struct {
	e *echo.Echo

	createParcel  *mockCommand[commands.CreateParcelCommand]
	assignCourier *mockCommand[commands.AssignCourierCommand]
	updateStatus  *mockCommand[commands.UpdateParcelStatusCommand]
	deleteParcel  *mockCommand[commands.DeleteParcelCommand]
	addProduct    *mockCommand[commands.AddParcelProductCommand]

	getParcel         *mockQuery[queries.GetParcelQuery, queries.ParcelView]
	getAllParcels     *mockQuery[queries.GetAllParcelsQuery, []queries.ParcelView]
	getParcelHistory  *mockQuery[queries.GetParcelHistoryQuery, []queries.HistoryEntryView]
	getParcelProducts *mockQuery[queries.GetParcelProductsQuery, []queries.ProductLineView]

	senders *mockRegistry[*party.Sender, party.Contact]
	zones   *mockRegistry[*zone.Zone, registries.ZoneDetails]
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		createParcel:      &mockCommand[commands.CreateParcelCommand]{},
		assignCourier:     &mockCommand[commands.AssignCourierCommand]{},
		updateStatus:      &mockCommand[commands.UpdateParcelStatusCommand]{},
		deleteParcel:      &mockCommand[commands.DeleteParcelCommand]{},
		addProduct:        &mockCommand[commands.AddParcelProductCommand]{},
		getParcel:         &mockQuery[queries.GetParcelQuery, queries.ParcelView]{},
		getAllParcels:     &mockQuery[queries.GetAllParcelsQuery, []queries.ParcelView]{},
		getParcelHistory:  &mockQuery[queries.GetParcelHistoryQuery, []queries.HistoryEntryView]{},
		getParcelProducts: &mockQuery[queries.GetParcelProductsQuery, []queries.ProductLineView]{},
		senders:           &mockRegistry[*party.Sender, party.Contact]{},
		zones:             &mockRegistry[*zone.Zone, registries.ZoneDetails]{},
	}

	server := httpadapter.NewServer(httpadapter.Handlers{
		CreateParcel:       f.createParcel,
		AssignCourier:      f.assignCourier,
		UpdateParcelStatus: f.updateStatus,
		DeleteParcel:       f.deleteParcel,
		AddParcelProduct:   f.addProduct,
		GetParcel:          f.getParcel,
		GetAllParcels:      f.getAllParcels,
		GetParcelHistory:   f.getParcelHistory,
		GetParcelProducts:  f.getParcelProducts,
		Senders:            f.senders,
		Recipients:         &mockRegistry[*party.Recipient, party.Contact]{},
		Couriers:           &mockRegistry[*courier.Courier, courier.Profile]{},
		Zones:              f.zones,
		Products:           &mockRegistry[*product.Product, product.Attributes]{},
	})

	e := echo.New()
	e.Validator = httpadapter.NewRequestValidator()
	e.HTTPErrorHandler = httpadapter.NewErrorHandler(slog.New(slog.NewTextHandler(io.Discard, nil)))
	e.GET("/health", httpadapter.Health)
	server.Register(e.Group("/api/v1"))

	f.e = e
	return f
}

func (f *fixture) do(method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) httpadapter.ErrorResponse {
	t.Helper()
	var body httpadapter.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func sampleView(id kernel.UUID, status string) queries.ParcelView {
	return queries.ParcelView{
		ID:              id.String(),
		Description:     "Urgent docs",
		Weight:          1.5,
		Status:          status,
		Priority:        "HIGH",
		DestinationCity: "Rabat",
		CreatedAt:       time.Now().UTC(),
		SenderName:      "Sara Alaoui",
		ZoneName:        "Rabat Centre",
	}
}

func TestHealth(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())
}

func TestCreateParcel_ReturnsCreatedView(t *testing.T) {
	f := newFixture(t)
	senderID, recipientID, zoneID := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()

	var created kernel.UUID
	f.createParcel.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CreateParcelCommand) bool {
		created = cmd.ParcelID()
		gotSender, senderErr := cmd.SenderID()
		gotRecipient, recipientErr := cmd.RecipientID()
		gotZone, zoneErr := cmd.ZoneID()
		return senderErr == nil && gotSender.IsEqual(senderID) &&
			recipientErr == nil && gotRecipient.IsEqual(recipientID) &&
			zoneErr == nil && gotZone.IsEqual(zoneID) &&
			cmd.Details().Priority == "HIGH"
	})).Return(nil).Once()
	f.getParcel.On("Handle", mock.Anything, mock.AnythingOfType("queries.GetParcelQuery")).
		Return(func(_ context.Context, q queries.GetParcelQuery) queries.ParcelView {
			return sampleView(q.ParcelID(), "CREATED")
		}, nil).Once()

	rec := f.do(http.MethodPost, "/api/v1/parcels", `{
		"description": "Urgent docs",
		"weight": 1.5,
		"destinationCity": "Rabat",
		"priority": "HIGH",
		"status": "DELIVERED",
		"senderId": "`+senderID.String()+`",
		"recipientId": "`+recipientID.String()+`",
		"zoneId": "`+zoneID.String()+`"
	}`)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var view queries.ParcelView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, created.String(), view.ID)
	assert.Equal(t, "CREATED", view.Status)
	assert.Equal(t, "Sara Alaoui", view.SenderName)
	f.createParcel.AssertExpectations(t)
}

func TestCreateParcel_InvalidBody_ListsEveryField(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodPost, "/api/v1/parcels", `{"weight": -1}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "Validation Failed", body.Error)
	assert.Equal(t, http.StatusBadRequest, body.Status)
	assert.Equal(t, "/api/v1/parcels", body.Path)
	assert.Contains(t, body.Message, "description: must not be blank")
	assert.Contains(t, body.Message, "weight: must be greater than 0")
	assert.Contains(t, body.Message, "; ")
	f.createParcel.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestCreateParcel_MissingZone_ReturnsNotFound(t *testing.T) {
	f := newFixture(t)
	zoneID := kernel.NewUUID()

	f.createParcel.On("Handle", mock.Anything, mock.Anything).
		Return(errs.NewObjectNotFoundError("Zone", zoneID.String())).Once()

	rec := f.do(http.MethodPost, "/api/v1/parcels", `{
		"description": "Urgent docs",
		"weight": 1.5,
		"destinationCity": "Rabat",
		"senderId": "`+kernel.NewUUID().String()+`",
		"recipientId": "`+kernel.NewUUID().String()+`",
		"zoneId": "`+zoneID.String()+`"
	}`)

	require.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "Resource Not Found", body.Error)
	assert.Equal(t, "Zone not found with id: "+zoneID.String(), body.Message)
	f.getParcel.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestCreateParcel_UnparseableZone_LeavesResolutionOrderToHandler(t *testing.T) {
	f := newFixture(t)
	senderID := kernel.NewUUID()

	f.createParcel.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CreateParcelCommand) bool {
		_, zoneErr := cmd.ZoneID()
		return errors.Is(zoneErr, errs.ErrObjectNotFound)
	})).Return(errs.NewObjectNotFoundError("Sender", senderID.String())).Once()

	rec := f.do(http.MethodPost, "/api/v1/parcels", `{
		"description": "Urgent docs",
		"weight": 1.5,
		"destinationCity": "Rabat",
		"senderId": "`+senderID.String()+`",
		"recipientId": "`+kernel.NewUUID().String()+`",
		"zoneId": "zone-42"
	}`)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Sender not found with id: "+senderID.String(), decodeError(t, rec).Message)
	f.createParcel.AssertExpectations(t)
}

func TestGetParcel_UnparseableID_ReturnsNotFound(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/api/v1/parcels/not-a-uuid", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, decodeError(t, rec).Message, "Parcel not found with id: not-a-uuid")
}

func TestGetParcels_ReturnsList(t *testing.T) {
	f := newFixture(t)
	f.getAllParcels.On("Handle", mock.Anything, mock.Anything).
		Return([]queries.ParcelView{sampleView(kernel.NewUUID(), "CREATED")}, nil)

	rec := f.do(http.MethodGet, "/api/v1/parcels", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var views []queries.ParcelView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &views))
	assert.Len(t, views, 1)
}

func TestAssignCourier(t *testing.T) {
	f := newFixture(t)
	parcelID, courierID := kernel.NewUUID(), kernel.NewUUID()

	f.assignCourier.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.AssignCourierCommand) bool {
		return cmd.ParcelID().IsEqual(parcelID) && cmd.CourierID().IsEqual(courierID)
	})).Return(nil).Once()
	f.getParcel.On("Handle", mock.Anything, mock.Anything).Return(sampleView(parcelID, "IN_TRANSIT"), nil).Once()

	rec := f.do(http.MethodPut, "/api/v1/parcels/assign/"+parcelID.String()+"?courierId="+courierID.String(), "")

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"status":"IN_TRANSIT"`)
	f.assignCourier.AssertExpectations(t)
}

func TestAssignCourier_MissingCourierID_ReturnsBadRequest(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodPut, "/api/v1/parcels/assign/"+kernel.NewUUID().String(), "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeError(t, rec).Message, "courierId")
}

func TestUpdateParcelStatus_KeepsFrenchLabel(t *testing.T) {
	f := newFixture(t)
	parcelID := kernel.NewUUID()

	f.updateStatus.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.UpdateParcelStatusCommand) bool {
		return cmd.Status() == parcel.Livre && cmd.Comment() == "delivered at door"
	})).Return(nil).Once()
	f.getParcel.On("Handle", mock.Anything, mock.Anything).Return(sampleView(parcelID, "LIVRE"), nil).Once()

	rec := f.do(http.MethodPut, "/api/v1/parcels/status/"+parcelID.String()+"?status=livre&comment=delivered%20at%20door", "")

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"status":"LIVRE"`)
	f.updateStatus.AssertExpectations(t)
}

func TestUpdateParcelStatus_UnknownStatus_ReturnsBadRequest(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodPut, "/api/v1/parcels/status/"+kernel.NewUUID().String()+"?status=LOST", "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Validation Failed", decodeError(t, rec).Error)
	f.updateStatus.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestUpdateParcelStatus_Created_ReturnsBadRequest(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodPut, "/api/v1/parcels/status/"+kernel.NewUUID().String()+"?status=CREATED", "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteParcel(t *testing.T) {
	f := newFixture(t)
	parcelID := kernel.NewUUID()
	f.deleteParcel.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.DeleteParcelCommand) bool {
		return cmd.ParcelID().IsEqual(parcelID)
	})).Return(nil).Once()

	rec := f.do(http.MethodDelete, "/api/v1/parcels/"+parcelID.String(), "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	f.deleteParcel.AssertExpectations(t)
}

func TestGetParcelHistory(t *testing.T) {
	f := newFixture(t)
	f.getParcelHistory.On("Handle", mock.Anything, mock.Anything).Return([]queries.HistoryEntryView{
		{ID: kernel.NewUUID().String(), Status: "DELIVERED", ChangedAt: time.Now()},
		{ID: kernel.NewUUID().String(), Status: "CREATED", Comment: "parcel created by sender"},
	}, nil)

	rec := f.do(http.MethodGet, "/api/v1/parcels/"+kernel.NewUUID().String()+"/history", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var entries []queries.HistoryEntryView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, "DELIVERED", entries[0].Status)
}

func TestAddParcelProduct_ReturnsStoredLine(t *testing.T) {
	f := newFixture(t)
	parcelID, productID := kernel.NewUUID(), kernel.NewUUID()

	f.addProduct.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.AddParcelProductCommand) bool {
		return cmd.ProductID().IsEqual(productID) && cmd.Quantity() == 4
	})).Return(nil).Once()
	f.getParcelProducts.On("Handle", mock.Anything, mock.Anything).Return([]queries.ProductLineView{
		{ProductID: productID.String(), ProductName: "Notebook", Quantity: 4, UnitPrice: 12.5, LineTotal: 50},
	}, nil).Once()

	rec := f.do(http.MethodPost, "/api/v1/parcels/"+parcelID.String()+"/products",
		`{"productId":"`+productID.String()+`","quantity":4}`)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var line queries.ProductLineView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &line))
	assert.InDelta(t, 50.0, line.LineTotal, 1e-9)
}

func TestAddParcelProduct_ZeroQuantity_ReturnsBadRequest(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodPost, "/api/v1/parcels/"+kernel.NewUUID().String()+"/products",
		`{"productId":"`+kernel.NewUUID().String()+`","quantity":0}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeError(t, rec).Message, "quantity: must be greater than 0")
}

func TestCreateSender_ReturnsCreated(t *testing.T) {
	f := newFixture(t)
	sender, err := party.NewSender(kernel.NewUUID(), party.Contact{
		LastName:  "Alaoui",
		FirstName: "Sara",
		Email:     "sara@example.com",
		Phone:     "0600000000",
		Address:   "12 rue Atlas",
	})
	require.NoError(t, err)

	f.senders.On("Create", mock.Anything, party.Contact{
		LastName:  "Alaoui",
		FirstName: "Sara",
		Email:     "sara@example.com",
		Phone:     "0600000000",
		Address:   "12 rue Atlas",
	}).Return(sender, nil).Once()

	rec := f.do(http.MethodPost, "/api/v1/senders",
		`{"lastName":"Alaoui","firstName":"Sara","email":"sara@example.com","phone":"0600000000","address":"12 rue Atlas"}`)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"id":"`+sender.ID().String()+`"`)
	f.senders.AssertExpectations(t)
}

func TestCreateSender_InvalidEmail_ReturnsBadRequest(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodPost, "/api/v1/senders",
		`{"lastName":"Alaoui","email":"not-an-email","phone":"0600000000","address":"12 rue Atlas"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeError(t, rec).Message, "email: must be a well-formed email address")
}

func TestCreateSender_DuplicateEmail_ReturnsIntegrityViolation(t *testing.T) {
	f := newFixture(t)
	f.senders.On("Create", mock.Anything, mock.Anything).
		Return(nil, errs.NewIntegrityViolationErrorWithCause("idx_senders_email", errors.New("duplicate key"))).Once()

	rec := f.do(http.MethodPost, "/api/v1/senders",
		`{"lastName":"Alaoui","email":"sara@example.com","phone":"0600000000","address":"12 rue Atlas"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Data Integrity Violation", decodeError(t, rec).Error)
}

func TestZoneRoutes_GetUpdateDelete(t *testing.T) {
	f := newFixture(t)
	z, err := zone.NewZone(kernel.NewUUID(), "Rabat Centre", "10000")
	require.NoError(t, err)

	f.zones.On("Fetch", mock.Anything, z.ID()).Return(z, nil).Once()
	f.zones.On("Update", mock.Anything, z.ID(), registries.ZoneDetails{Name: "Agdal", PostalCode: "10090"}).
		Return(z, nil).Once()
	f.zones.On("Delete", mock.Anything, z.ID()).Return(nil).Once()

	rec := f.do(http.MethodGet, "/api/v1/zones/"+z.ID().String(), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":"Rabat Centre"`)

	rec = f.do(http.MethodPut, "/api/v1/zones/"+z.ID().String(), `{"name":"Agdal","postalCode":"10090"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = f.do(http.MethodDelete, "/api/v1/zones/"+z.ID().String(), "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	f.zones.AssertExpectations(t)
}

func TestZoneRoutes_ListEmpty_ReturnsEmptyArray(t *testing.T) {
	f := newFixture(t)
	f.zones.On("List", mock.Anything).Return([]*zone.Zone{}, nil)

	rec := f.do(http.MethodGet, "/api/v1/zones", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestUnexpectedError_IsMaskedAs500(t *testing.T) {
	f := newFixture(t)
	f.getAllParcels.On("Handle", mock.Anything, mock.Anything).
		Return(nil, errors.New("connection refused: secret-host:5432"))

	rec := f.do(http.MethodGet, "/api/v1/parcels", "")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "Internal Server Error", body.Error)
	assert.NotContains(t, body.Message, "secret-host")
}

func TestOpenAPIDocument_LoadsAndServes(t *testing.T) {
	doc, err := httpadapter.LoadOpenAPI(t.Context())
	require.NoError(t, err)

	e := echo.New()
	httpadapter.RegisterDocs(e, doc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/openapi.json", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"/parcels/status/{parcelId}"`)
	assert.NotNil(t, doc.Paths.Find("/parcels/{id}/history"))
}
