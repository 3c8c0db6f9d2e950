// Package messages stores the error message templates used when a validation
// rule fails and renders them for a field.
//
// Templates use ":key" placeholders. ":name" is replaced with the field name,
// ":label" with a humanized field name, and any other key with the matching
// failure parameter reported by the rule:
//
//	store := messages.New()
//	store.Format("age", "min", map[string]string{"min": "18"})
//	// "age cant be less than 18"
//
// Rules without a template fall back to the default message ("Incorrect Value"),
// which is returned without formatting.
//
// Catalogs can be loaded from YAML or JSON files (LoadFile, LoadFS) or from a
// Redis hash (LoadRedis) and merged into a store with SetAll.
package messages
