package messages

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FormatTemplate replaces every ":key" placeholder in tmpl with its value.
// ":name" is the field name and ":label" its humanized form; both take
// precedence over params with the same key. Longer keys are replaced first so
// ":value" never clobbers ":value_to_contain".
func FormatTemplate(tmpl, field string, params map[string]string) string {
	if !strings.Contains(tmpl, ":") {
		return tmpl
	}

	values := make(map[string]string, len(params)+2)
	for k, v := range params {
		if k != "" {
			values[k] = v
		}
	}
	values["name"] = field
	values["label"] = Humanize(field)

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})

	pairs := make([]string, 0, len(keys)*2)
	for _, k := range keys {
		pairs = append(pairs, ":"+k, values[k])
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}

// Humanize turns a field name like "first_name" into "First Name".
func Humanize(field string) string {
	words := strings.FieldsFunc(field, func(r rune) bool {
		return r == '_' || r == '-' || r == '.' || r == ' '
	})
	if len(words) == 0 {
		return field
	}
	// Caser values keep state and must not be shared between goroutines.
	return cases.Title(language.English).String(strings.Join(words, " "))
}
