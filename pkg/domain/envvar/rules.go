package envvar

import "regexp"

// Field selects what a Rule is matched against.
type Field int

const (
	FieldKey Field = iota + 1
	FieldValue
	FieldEither
)

// Rule excludes a variable when Pattern matches the selected field. Rules are
// independent of each other; a variable is excluded if any rule matches.
type Rule struct {
	Name    string
	Field   Field
	Pattern *regexp.Regexp
}

func (x Rule) Match(key, value string) bool {
	switch x.Field {
	case FieldKey:
		return x.Pattern.MatchString(key)
	case FieldValue:
		return x.Pattern.MatchString(value)
	case FieldEither:
		return x.Pattern.MatchString(key) || x.Pattern.MatchString(value)
	}
	return false
}

// DefaultRules is the exclusion table applied by NewFilter when no rules are given.
var DefaultRules = []Rule{
	{
		Name:    "runtime-marker",
		Field:   FieldKey,
		Pattern: regexp.MustCompile(`(?i)^(NODE_ENV|ENV|ENVIRONMENT|APP_ENV|PORT|HOST|HOSTNAME|DEBUG|PWD|HOME|PATH|SHELL|USER)$`),
	},
	{
		Name:    "local-prefix",
		Field:   FieldKey,
		Pattern: regexp.MustCompile(`(?i)^(LOCAL|DEV|DEVELOPMENT|DEBUG|TEST)_`),
	},
	{
		Name:    "local-suffix",
		Field:   FieldKey,
		Pattern: regexp.MustCompile(`(?i)_(LOCAL|DEV|DEVELOPMENT)$`),
	},
	{
		Name:    "provider-reserved",
		Field:   FieldKey,
		Pattern: regexp.MustCompile(`(?i)^AWS_`),
	},
	{
		Name:    "loopback-host",
		Field:   FieldValue,
		Pattern: regexp.MustCompile(`(?i)(localhost|127\.0\.0\.1|0\.0\.0\.0|\[::1\]|host\.docker\.internal)`),
	},
}
