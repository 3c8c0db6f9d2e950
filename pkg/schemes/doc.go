// Package schemes loads named validation schemes from YAML or JSON files.
//
// A scheme file maps scheme names to field declarations:
//
//	signup:
//	  email: required|email
//	  password: [required, "min:8"]
//	  plan:
//	    required: true
//	    in_array: [free, pro]
//
// Fields and mapping declarations keep the order in which they appear in the
// file, so fields are evaluated and reported in that order. Files are loaded with LoadFile, LoadDir or
// LoadFS (for embedded files); a scheme name defined in two files of the same
// directory is an error.
package schemes
