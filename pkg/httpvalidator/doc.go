// Package httpvalidator validates HTTP requests against rule schemes.
//
// Middleware guards a single handler with a scheme. The request is decoded
// with the binder package, validated, and either rejected with
// 422 Unprocessable Entity or passed on with the result stored in the request
// context:
//
//	r := chi.NewRouter()
//	r.With(httpvalidator.Middleware(v, signupScheme)).Post("/signup", func(w http.ResponseWriter, r *http.Request) {
//	    data, _ := httpvalidator.RecordFromContext(r.Context())
//	    // data passed validation
//	})
//
// Router serves a whole schemes.Set over HTTP:
//
//	GET  /          names of the available schemes
//	GET  /rules     names of the registered rules
//	POST /{scheme}  validate the request body against a scheme
//
// Failed validations answer with the JSON form of validator.Result:
//
//	{"hasError": true, "errors": {"email": ["Email must be a valid email address"]}}
//
// Every response carries an X-Request-ID header; see RequestID.
package httpvalidator
