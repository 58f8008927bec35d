// Package handler implements the HTTP layer of the Inkwell API.
//
// Handlers decode requests, delegate to the service layer, and write
// RFC 9457 problem responses through MapServiceError when a service
// call fails. Successful responses use the DataResponse envelope with
// a data payload and optional _links.
//
// Route registration lives in cmd/server; handlers rely on Go 1.22
// method-qualified mux patterns, so they do not check HTTP methods
// themselves.
package handler
