// Package courier models the delivery staff that parcels get assigned to.
package courier
