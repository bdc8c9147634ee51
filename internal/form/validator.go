package form

import (
	"fmt"
	"html"
	"log"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// Result carries the outcome of a validation pass. Errors maps field name to
// a Bengali message; when several rules fail on one field, the last evaluated
// rule wins (map overwrite, kept for frontend compatibility).
type Result struct {
	IsValid   bool              `json:"isValid"`
	Errors    map[string]string `json:"errors"`
	Sanitized map[string]any    `json:"data"`
}

type Validator struct {
	schema *Schema
	now    func() time.Time
}

func NewValidator(s *Schema) *Validator {
	return &Validator{schema: s, now: time.Now}
}

var (
	tagPattern     = regexp.MustCompile(`<[^>]*>`)
	dataURIPattern = regexp.MustCompile(`^data:image/(jpeg|png|jpg);base64,`)
)

// Sanitize walks the data recursively: string leaves are trimmed, stripped of
// markup and entity-encoded; everything else passes through unchanged.
func Sanitize(data map[string]any) map[string]any {
	sanitized := make(map[string]any, len(data))
	for key, value := range data {
		switch v := value.(type) {
		case map[string]any:
			sanitized[key] = Sanitize(v)
		case string:
			sanitized[key] = html.EscapeString(tagPattern.ReplaceAllString(strings.TrimSpace(v), ""))
		default:
			sanitized[key] = value
		}
	}
	return sanitized
}

// Validate runs the full-form pass: personal, contact, address, education and
// declaration sections.
func (v *Validator) Validate(data map[string]any) Result {
	sanitized := Sanitize(data)
	errs := map[string]string{}

	v.validateSection(errs, sanitized, "personal_info")
	v.validateSection(errs, sanitized, "contact_info")
	v.validateSection(errs, sanitized, "address_info")
	v.validateEducation(errs, sanitized)
	v.validateSection(errs, sanitized, "declaration")

	return Result{IsValid: len(errs) == 0, Errors: errs, Sanitized: sanitized}
}

// ValidateStep validates only the sections belonging to one wizard step.
// Unknown steps validate nothing and succeed; the frontend depends on this.
func (v *Validator) ValidateStep(step string, data map[string]any) Result {
	sanitized := Sanitize(data)
	errs := map[string]string{}

	switch step {
	case "personal":
		v.validateSection(errs, sanitized, "personal_info")
		v.validateSection(errs, sanitized, "contact_info")
		v.validateSection(errs, sanitized, "address_info")
		v.validateSection(errs, sanitized, "background_info")
	case "education":
		v.validateEducation(errs, sanitized)
	case "declaration":
		v.validateSection(errs, sanitized, "declaration")
	default:
		log.Printf("Unknown validation step: %s", step)
	}

	return Result{IsValid: len(errs) == 0, Errors: errs, Sanitized: sanitized}
}

func (v *Validator) validateSection(errs map[string]string, data map[string]any, section string) {
	for _, field := range v.schema.section(section) {
		v.validateField(errs, field.Name, data[field.Name], field)
	}
}

func (v *Validator) validateEducation(errs map[string]string, data map[string]any) {
	for _, level := range v.schema.Education {
		for _, field := range level.Fields {
			// The target name differs from the lookup key (year -> ssc_year).
			name := field.Name
			if name == "" {
				name = field.Key
			}
			v.validateField(errs, name, data[name], field)
		}
	}
}

func (v *Validator) validateField(errs map[string]string, name string, value any, field FieldConfig) {
	if !field.Required && isEmpty(value) {
		return
	}
	for _, rule := range field.rules {
		v.applyRule(errs, name, value, rule, field)
	}
}

func (v *Validator) applyRule(errs map[string]string, name string, value any, rule Rule, field FieldConfig) {
	if rule.Kind == RuleRequired {
		if isEmpty(value) {
			errs[name] = field.Label + " আবশ্যক"
		}
		return
	}

	// Empty values are only an error for the required rule.
	if isEmptyScalar(value) {
		return
	}

	s := stringValue(value)

	switch rule.Kind {
	case RuleMin:
		if utf8.RuneCountInString(s) < rule.N {
			errs[name] = fmt.Sprintf("%s কমপক্ষে %d অক্ষর হতে হবে", field.Label, rule.N)
		}
	case RuleMax:
		if utf8.RuneCountInString(s) > rule.N {
			errs[name] = fmt.Sprintf("%s সর্বোচ্চ %d অক্ষর হতে পারে", field.Label, rule.N)
		}
	case RuleNumeric:
		if !isNumeric(value) {
			errs[name] = field.Label + " সংখ্যা হতে হবে"
		}
	case RuleDigits:
		if !isDigits(s, rule.N) {
			errs[name] = fmt.Sprintf("%s %d সংখ্যার হতে হবে", field.Label, rule.N)
		}
	case RuleEmail:
		if !isEmail(s) {
			errs[name] = "সঠিক ইমেইল ঠিকানা দিন"
		}
	case RuleDate:
		if !isISODate(s) {
			errs[name] = "সঠিক তারিখ দিন (YYYY-MM-DD)"
		}
	case RuleBeforeToday:
		if d, err := time.Parse("2006-01-02", s); err == nil {
			ny, nm, nd := v.now().Date()
			today := time.Date(ny, nm, nd, 0, 0, 0, 0, time.UTC)
			if !d.Before(today) {
				errs[name] = "তারিখ আজকের আগে হতে হবে"
			}
		}
	case RuleRegex:
		if !rule.Pattern.MatchString(s) {
			errs[name] = field.Label + " সঠিক ফরম্যাটে দিন"
		}
	case RuleUppercase:
		if s != strings.ToUpper(s) {
			errs[name] = field.Label + " বড় হাতের অক্ষরে লিখুন"
		}
	case RuleImage:
		if !isImageData(value) {
			errs[name] = "সঠিক ছবি আপলোড করুন"
		}
	case RuleAccepted:
		if !isAccepted(value) {
			errs[name] = "আপনাকে এই শর্তে সম্মত হতে হবে"
		}
	}
}

func isEmpty(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case []any:
		return len(v) == 0
	case map[string]any:
		return len(v) == 0
	}
	return false
}

func isEmptyScalar(value any) bool {
	if value == nil {
		return true
	}
	s, ok := value.(string)
	return ok && s == ""
}

func stringValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		if v {
			return "true"
		}
		return "false"
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

func isNumeric(value any) bool {
	switch v := value.(type) {
	case float64, float32, int, int64:
		return true
	case string:
		_, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return err == nil
	}
	return false
}

func isDigits(s string, n int) bool {
	if len(s) != n {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func isEmail(s string) bool { return emailPattern.MatchString(s) }

func isISODate(s string) bool {
	d, err := time.Parse("2006-01-02", s)
	return err == nil && d.Format("2006-01-02") == s
}

func isImageData(value any) bool {
	s, ok := value.(string)
	if !ok || s == "" {
		return false
	}
	if dataURIPattern.MatchString(s) {
		return true
	}
	_, err := os.Stat(s)
	return err == nil
}

func isAccepted(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		return v == "true" || v == "1"
	case float64:
		return v == 1
	case int:
		return v == 1
	}
	return false
}
