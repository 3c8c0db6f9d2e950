// Package binder turns HTTP request data into a validator.Record.
//
// Record reads the request body according to its Content-Type:
//
//   - application/json: a single JSON object (1MB limit by default)
//   - application/x-www-form-urlencoded: form values
//   - multipart/form-data: form values and uploaded files
//
// Requests without a body (GET, HEAD, DELETE, OPTIONS or an empty body) are
// read from the query string instead. Path parameters are added through
// WithPathParams and take precedence over body and query values.
//
// Form and query keys with a single value become strings; repeated keys and
// keys ending in "[]" become arrays. Uploaded files are stored as
// *multipart.FileHeader values with sanitized filenames.
//
// # Basic Usage
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//	    data, err := binder.Record(r, binder.WithPathParams(chiParams))
//	    if err != nil {
//	        http.Error(w, err.Error(), http.StatusBadRequest)
//	        return
//	    }
//	    res, err := v.Validate(data, scheme)
//	    // ...
//	}
//
// # Error Handling
//
// The package defines several error variables for common binding failures:
//
//   - ErrUnsupportedMediaType: Content type is neither JSON nor a form
//   - ErrFailedToParseJSON: Failed to parse JSON request body
//   - ErrFailedToParseForm: Failed to parse form data
//   - ErrFailedToParseQuery: Failed to parse query parameters
//   - ErrMissingContentType: Missing Content-Type header on a request with a body
//   - ErrRequestCancelled: The request context was done before binding
package binder
