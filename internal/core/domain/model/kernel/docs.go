// Package kernel holds the identity primitive shared by every entity of the
// parcel tracking domain.
//
// Identifiers are generated server-side at creation time and never chosen by
// clients. They travel as opaque strings over the API and as native uuid
// columns in storage.
package kernel
