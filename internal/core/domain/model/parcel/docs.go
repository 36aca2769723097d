// Package parcel models the shipment aggregate and its delivery history.
//
// A Parcel is created in CREATED status with a first HistoryEntry, can be
// assigned to a courier (which forces IN_TRANSIT) and can be moved to any
// other status. Each of these mutations returns exactly one HistoryEntry;
// callers persist the parcel and the entry in the same transaction.
//
// The parcel also owns its ProductLine records. History and product lines are
// deleted together with the parcel and never on their own.
package parcel
