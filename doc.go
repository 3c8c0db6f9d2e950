// Package rulekit validates flat records against declarative rule schemes.
//
// A scheme maps field names to rule declarations. Declarations come in three
// interchangeable forms:
//
//	scheme := rulekit.Scheme{
//		"email":    "required|email",                         // string
//		"age":      []any{"required", "number", "between:18,99"}, // array
//		"password": rulekit.Object{                            // ordered object
//			{Rule: "required", Value: true},
//			{Rule: "min", Value: 8},
//		},
//	}
//
//	res, err := rulekit.Validate(map[string]any{"email": "jane@example.com"}, scheme)
//	if err != nil {
//		// malformed scheme or data that is not a record
//	}
//	if res.HasError() {
//		fmt.Println(res.Errors()) // map[age:[age is required] password:[password is required]]
//	}
//
// Modifiers change how a field is treated rather than checking it:
//
//   - required: an empty value fails with the "required" rule and no other
//     rule of the field runs
//   - nullable: an empty value skips the field
//   - string / number: the value is coerced before the rules run
//
// Every failed rule adds a message to the result. Messages come from
// templates such as ":name must be at least :min" where :name is the field,
// :label its humanized form and other placeholders are rule params.
//
// # Custom rules
//
// Register named rules with Extend or declare inline functions in a scheme:
//
//	rulekit.Extend("even", func(value any, _ ...any) rulekit.Outcome {
//		n, ok := value.(int)
//		return rulekit.Check(ok && n%2 == 0, nil)
//	}, ":name must be even")
//
//	scheme := rulekit.Scheme{
//		"confirm": []any{rulekit.Custom{
//			Name:    "matches",
//			Message: ":name must match the password",
//			Validator: func(value any, data rulekit.Record) rulekit.Outcome {
//				return rulekit.Check(value == data["password"], nil)
//			},
//		}},
//	}
//
// # Instances
//
// The package functions use a process-wide default validator. Independent
// instances with their own rules, messages and separators are created with
// validator.New; SetDefault replaces the default one.
//
// Supporting packages load schemes from files (pkg/schemes), decode HTTP
// requests (pkg/binder), validate requests in chi routers (pkg/httpvalidator)
// and load message catalogs from files or Redis (pkg/messages).
package rulekit
