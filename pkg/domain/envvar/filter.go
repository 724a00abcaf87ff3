package envvar

import "strings"

// Decision is the result of classifying a single variable.
type Decision struct {
	Excluded bool
	// Rule names the matching rule, or "empty-value".
	Rule string
}

const ruleEmptyValue = "empty-value"

type Filter struct {
	rules []Rule
}

func NewFilter(rules ...Rule) *Filter {
	if len(rules) == 0 {
		rules = DefaultRules
	}
	return &Filter{rules: rules}
}

func (x *Filter) Classify(key, value string) Decision {
	if strings.TrimSpace(value) == "" {
		return Decision{Excluded: true, Rule: ruleEmptyValue}
	}
	for _, rule := range x.rules {
		if rule.Match(key, value) {
			return Decision{Excluded: true, Rule: rule.Name}
		}
	}
	return Decision{}
}

// Apply returns the production-safe subset of src in src's order together
// with the excluded keys.
func (x *Filter) Apply(src *Set) (*Set, []string) {
	kept := NewSet()
	var excluded []string
	for _, key := range src.keys {
		value := src.values[key]
		if x.Classify(key, value).Excluded {
			excluded = append(excluded, key)
			continue
		}
		kept.Set(key, value)
	}
	return kept, excluded
}

// MaskValue redacts a value for display. Values of eight characters or less
// are fully hidden.
func MaskValue(value string) string {
	if value == "" {
		return ""
	}
	runes := []rune(value)
	if len(runes) <= 8 {
		return "****"
	}
	return string(runes[:4]) + "****" + string(runes[len(runes)-4:])
}

type varType struct {
	name     string
	keywords []string
}

// Checked in order; the first category with a keyword in the key or value wins.
var varTypes = []varType{
	{"database", []string{"DATABASE", "DB_", "_DB", "POSTGRES", "MYSQL", "MONGO", "REDIS", "SUPABASE", "PRISMA"}},
	{"auth", []string{"NEXTAUTH", "AUTH0", "CLERK", "OAUTH", "JWT", "SESSION", "AUTH"}},
	{"payment", []string{"STRIPE", "PAYPAL"}},
	{"email", []string{"SMTP", "SENDGRID", "MAILGUN", "RESEND", "POSTMARK"}},
	{"storage", []string{"S3_", "BUCKET", "CLOUDINARY", "STORAGE"}},
	{"analytics", []string{"ANALYTICS", "GA_", "GTM", "SEGMENT", "POSTHOG", "SENTRY"}},
	{"api-key", []string{"API_KEY", "APIKEY", "SECRET", "TOKEN", "_KEY"}},
	{"public-config", []string{"NEXT_PUBLIC_", "VITE_", "REACT_APP_", "VUE_APP_", "NG_"}},
	{"url", []string{"_URL", "_URI", "ENDPOINT", "HTTPS://", "HTTP://"}},
}

// InferVarType guesses a display category. It never affects filtering.
func InferVarType(key, value string) string {
	k := strings.ToUpper(key)
	v := strings.ToUpper(value)
	for _, t := range varTypes {
		for _, kw := range t.keywords {
			if strings.Contains(k, kw) {
				return t.name
			}
		}
	}
	switch {
	case strings.HasPrefix(v, "POSTGRES://"), strings.HasPrefix(v, "POSTGRESQL://"), strings.HasPrefix(v, "MYSQL://"), strings.HasPrefix(v, "MONGODB"), strings.HasPrefix(v, "REDIS://"):
		return "database"
	case strings.HasPrefix(v, "SK_LIVE_"), strings.HasPrefix(v, "PK_LIVE_"):
		return "payment"
	case strings.HasPrefix(v, "HTTPS://"), strings.HasPrefix(v, "HTTP://"):
		return "url"
	}
	return "other"
}
