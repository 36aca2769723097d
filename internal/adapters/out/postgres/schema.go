package postgres

import (
	"parceltrack/internal/adapters/out/postgres/courierrepo"
	"parceltrack/internal/adapters/out/postgres/historyrepo"
	"parceltrack/internal/adapters/out/postgres/outboxrepo"
	"parceltrack/internal/adapters/out/postgres/parcelproductrepo"
	"parceltrack/internal/adapters/out/postgres/parcelrepo"
	"parceltrack/internal/adapters/out/postgres/productrepo"
	"parceltrack/internal/adapters/out/postgres/recipientrepo"
	"parceltrack/internal/adapters/out/postgres/senderrepo"
	"parceltrack/internal/adapters/out/postgres/zonerepo"

	"gorm.io/gorm"
)

// Tables lists every table owned by the service, for truncation in tests.
var Tables = []string{
	"parcels",
	"parcel_history",
	"parcel_products",
	"senders",
	"recipients",
	"couriers",
	"zones",
	"products",
	"outbox_messages",
}

// Models returns the row types of every table, in migration order.
func Models() []any {
	return []any{
		&senderrepo.SenderDTO{},
		&recipientrepo.RecipientDTO{},
		&courierrepo.CourierDTO{},
		&zonerepo.ZoneDTO{},
		&productrepo.ProductDTO{},
		&parcelrepo.ParcelDTO{},
		&historyrepo.HistoryEntryDTO{},
		&parcelproductrepo.ProductLineDTO{},
		&outboxrepo.MessageDTO{},
	}
}

// Migrate creates or updates the schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
