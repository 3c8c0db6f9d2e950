// Package validator checks flat data records against declarative rule schemes
// and reports which fields failed which rules.
//
// A Scheme maps field names to rule declarations. Each declaration may use one
// of several equivalent syntaxes:
//
//	scheme := validator.Scheme{
//	    "name":  "required|alpha|min:3",
//	    "age":   []any{"required", "number", "between:18,99"},
//	    "role":  validator.Object{{Rule: "in_array", Value: []any{"admin", "user"}}},
//	    "even":  validator.InlineFunc(isEven),
//	}
//
// Scheme fields are evaluated in name order. An OrderedScheme keeps the order
// in which fields are written, which is also the order of Result.Fields:
//
//	scheme := validator.OrderedScheme{
//	    {Name: "name", Rules: "required|alpha"},
//	    {Name: "age", Rules: "required|number"},
//	}
//
// All syntaxes normalize into the same representation: an ordered list of
// checking rules plus the modifier flags required, nullable, string and number.
// Modifiers are applied before any check runs:
//
//   - required: a missing value (nil or "") fails with the "required" rule and
//     no other rule runs for the field
//   - nullable: a missing value passes without running any rule
//   - number:   the value is converted to float64 (NaN when not numeric)
//   - string:   the value is converted to its string form
//
// Every remaining rule runs, even after a failure, and each failure adds a
// message to the field unless the same message is already present.
//
// # Rules
//
// Named rules are predicates looked up in a Registry. The built-in set is grouped
// by family (string_rules.go, numeric_rules.go, choice_rules.go,
// collection_rules.go, format_rules.go, date_rules.go, uuid_rules.go). New rules
// are added with Validator.Extend:
//
//	v := validator.New()
//	err := v.Extend("even", func(value any, _ ...any) validator.Outcome {
//	    n, ok := value.(float64)
//	    return validator.Check(ok && int(n)%2 == 0, validator.Params{"value": value})
//	}, ":name must be even")
//
// # Messages
//
// Failure messages come from the message store of the validator (see package
// messages). The Params of a failed Outcome fill the ":key" placeholders of the
// template.
//
// # Results
//
//	res, err := v.Validate(data, scheme)
//	if err != nil {
//	    // data is not a record or the scheme is malformed
//	}
//	if res.HasError() {
//	    fmt.Println(res.GetError("name"))     // all messages, comma joined
//	    fmt.Println(res.IsError("age", "min")) // did a particular rule fail
//	}
//
// Result.Err converts failures into FieldErrors, which implements error.
package validator
