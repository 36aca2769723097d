package commands_test

import (
	"testing"
	"time"

	"parceltrack/internal/core/domain/model/courier"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/core/domain/model/party"
	"parceltrack/internal/core/domain/model/product"
	"parceltrack/internal/core/domain/model/zone"

	"github.com/stretchr/testify/require"
)

func testDetails() parcel.Details {
	return parcel.Details{
		Description:     "Urgent docs",
		Weight:          1.5,
		DestinationCity: "Rabat",
		Priority:        "HIGH",
	}
}

func testSender(t *testing.T) *party.Sender {
	t.Helper()
	s, err := party.NewSender(kernel.NewUUID(), party.Contact{
		LastName:  "Alaoui",
		FirstName: "Sara",
		Email:     "sara@example.com",
		Phone:     "0600000000",
		Address:   "12 rue Atlas",
	})
	require.NoError(t, err)
	return s
}

func testRecipient(t *testing.T) *party.Recipient {
	t.Helper()
	r, err := party.NewRecipient(kernel.NewUUID(), party.Contact{
		LastName:  "Bennani",
		FirstName: "Omar",
		Phone:     "0622222222",
		Address:   "4 avenue Hassan II",
	})
	require.NoError(t, err)
	return r
}

func testZone(t *testing.T) *zone.Zone {
	t.Helper()
	z, err := zone.NewZone(kernel.NewUUID(), "Rabat Centre", "10000")
	require.NoError(t, err)
	return z
}

func testCourier(t *testing.T) *courier.Courier {
	t.Helper()
	c, err := courier.NewCourier(kernel.NewUUID(), courier.Profile{
		LastName:  "Idrissi",
		FirstName: "Karim",
		Phone:     "0611111111",
		Vehicle:   "Scooter",
	})
	require.NoError(t, err)
	return c
}

func testProduct(t *testing.T, price float64) *product.Product {
	t.Helper()
	p, err := product.NewProduct(kernel.NewUUID(), product.Attributes{
		Name:     "Notebook",
		Category: "Stationery",
		Weight:   0.3,
		Price:    price,
	})
	require.NoError(t, err)
	return p
}

func storedParcel(t *testing.T, status parcel.Status) *parcel.Parcel {
	t.Helper()
	p, err := parcel.RestoreParcel(kernel.NewUUID(), testDetails(), parcel.References{
		SenderID:    kernel.NewUUID(),
		RecipientID: kernel.NewUUID(),
		ZoneID:      kernel.NewUUID(),
	}, status, time.Now().Add(-time.Hour), nil)
	require.NoError(t, err)
	return p
}
