package validator

import (
	"log/slog"

	"github.com/dmitrymomot/rulekit/pkg/logger"
	"github.com/dmitrymomot/rulekit/pkg/messages"
)

// evaluate runs a parsed scheme against data. Rule panics are not recovered.
func evaluate(data Record, parsed *ParsedScheme, store *messages.Store, log *slog.Logger) *Result {
	res := newResult()

	for _, fr := range parsed.fields {
		value := data[fr.Field]

		if isEmpty(value) {
			if fr.Required {
				res.add(fr.Field, ModifierRequired, store.Format(fr.Field, ModifierRequired, nil))
				continue
			}
			if fr.Nullable {
				continue
			}
		}

		switch {
		case fr.Number:
			value = toNumber(value)
		case fr.String:
			value = toString(value)
		}

		for _, r := range fr.Rules {
			outcome := r.run(value, data)
			if outcome.Passed() {
				continue
			}

			rule, msg := failure(fr.Field, r, outcome, store)
			res.add(fr.Field, rule, msg)
			log.Debug("rule failed", logger.Field(fr.Field), logger.Rule(rule))
		}
	}

	return res
}

// failure resolves the effective rule name and message of a failed rule.
func failure(field string, r *Rule, o Outcome, store *messages.Store) (string, string) {
	rule := r.Name
	if o.rule != "" {
		rule = o.rule
	}

	if text, ok := o.Message(); ok {
		return rule, text
	}

	params := stringParams(o.params)
	if r.Message != "" && rule == r.Name {
		return rule, messages.FormatTemplate(r.Message, field, params)
	}
	return rule, store.Format(field, rule, params)
}
