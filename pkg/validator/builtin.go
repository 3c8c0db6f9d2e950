package validator

// builtins returns the predicates every default registry starts with.
func builtins() map[string]Predicate {
	return map[string]Predicate{
		"alpha":         Alpha,
		"alpha_dash":    AlphaDash,
		"alpha_numeric": AlphaNumeric,
		"starts_with":   StartsWith,
		"ends_with":     EndsWith,

		"min":     Min,
		"max":     Max,
		"between": Between,
		"numeric": Numeric,

		"in_array":   InArray,
		"not_in":     NotIn,
		"equals":     Equals,
		"not_equals": NotEquals,

		"array":        IsArray,
		"object":       IsObject,
		"contains_all": ContainsAll,
		"contains_one": ContainsOne,

		"email":   Email,
		"url":     URL,
		"ip":      IP,
		"json":    JSON,
		"phone":   Phone,
		"boolean": Boolean,
		"checked": Checked,

		"date": Date,
		"uuid": UUID,
	}
}
