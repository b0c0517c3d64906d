// Package api contains the HTTP handlers, request/response models and error
// mapping for the taskboard REST API. Handlers decode and validate payloads,
// call into the stores and services, and translate internal errors into
// sanitized JSON responses.
package api
