// Package handlers defines the user-facing messages shared by the café
// endpoints.
//
// This file centralizes the notice texts shown on the HTML pages and the
// messages placed inside JSON error envelopes (via the `fail()` helper in
// this package), so tests and templates agree on wording.
//
// Example envelope:
//
//	{"error": {"Not Found": "Sorry, a cafe with that id was not found in the database."}}
package handlers

// JSON envelope messages.
const (
	MsgCafeNotFound     = "Sorry, a cafe with that id was not found in the database."
	MsgRouteNotFound    = "route not found"
	MsgMethodNotAllowed = "method not allowed"
	MsgInternal         = "internal server error"
	MsgUnavailable      = "database unavailable"
)

// Flash and form notices.
const (
	MsgWrongKey     = "API key is wrong"
	MsgCafeAdded    = "Successfully added the cafe to the database."
	MsgPriceChanged = "Successfully changed coffee price for %s."
	MsgCafeDeleted  = "Successfully deleted %s from the database."
	MsgDuplicate    = "A cafe with that name already exists."
	MsgMissingField = "Please fill in the %s field."
)
