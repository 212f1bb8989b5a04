// Package api handles incoming HTTP requests, request validation, and
// response formatting for the content API. Handlers translate query and path
// parameters into service calls and wrap every result, success or failure,
// in the envelope defined by the shared package.
package api
