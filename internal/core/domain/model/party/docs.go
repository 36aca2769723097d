// Package party models the people at both ends of a shipment: the Sender who
// ships a parcel and the Recipient who receives it.
package party
