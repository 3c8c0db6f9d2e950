package validator

import "maps"

// Record is the data under validation: field name to value.
type Record map[string]any

// Params carries the failure details a rule reports. Its keys become
// ":key" placeholders in the rule's message template.
type Params map[string]any

type outcomeKind uint8

const (
	outcomePass outcomeKind = iota
	outcomeFail
	outcomeMessage
)

// Outcome is the result of a single rule check. The zero value passes.
type Outcome struct {
	kind    outcomeKind
	rule    string
	params  Params
	message string
}

// Pass reports a successful check.
func Pass() Outcome {
	return Outcome{}
}

// Fail reports a failed check with message parameters. A string "rule" key in
// params reports the failure under that rule name, like FailAs.
func Fail(params Params) Outcome {
	o := Outcome{kind: outcomeFail, params: params}
	if name, ok := params["rule"].(string); ok && name != "" {
		o.rule = name
	}
	return o
}

// FailAs reports a failed check under another rule name, so the message and
// failed-rule entry belong to that rule.
func FailAs(rule string, params Params) Outcome {
	return Outcome{kind: outcomeFail, rule: rule, params: params}
}

// FailWithMessage reports a failed check with a literal error message.
func FailWithMessage(text string) Outcome {
	return Outcome{kind: outcomeMessage, message: text}
}

// Check passes when ok is true and fails with params otherwise.
func Check(ok bool, params Params) Outcome {
	if ok {
		return Pass()
	}
	return Fail(params)
}

// Passed reports whether the check succeeded.
func (o Outcome) Passed() bool {
	return o.kind == outcomePass
}

// Rule returns the rule name the failure is reported under, if overridden.
func (o Outcome) Rule() string {
	return o.rule
}

// Params returns a copy of the failure parameters.
func (o Outcome) Params() Params {
	return maps.Clone(o.params)
}

// Message returns the literal message of a FailWithMessage outcome.
func (o Outcome) Message() (string, bool) {
	return o.message, o.kind == outcomeMessage
}
