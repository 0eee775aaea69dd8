// Package status is a registry of the HTTP status codes registered with
// IANA, grouped into the five classes defined by RFC 9110. Every code is a
// typed constant, and the registry offers lookup by numeric code, lookup by
// symbolic name, and listing by class.
//
// The table is built once at package init and never changes, so all lookups
// are safe for unrestricted concurrent use.
package status
