// Package httputil provides response helpers for the preview server.
//
// Handlers report failures as *errors.Error values; [WriteError] maps the
// error code to an HTTP status and writes a small JSON body:
//
//	{"code": "INVALID_EXPRESSION", "message": "unknown expression \"sad\""}
//
// [NotModified] implements weak ETag revalidation for rendered faces,
// whose fingerprints change only when the pixels do.
package httputil
