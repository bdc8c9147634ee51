package form

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// RuleKind enumerates every supported validation rule.
type RuleKind int

const (
	RuleRequired RuleKind = iota
	RuleMin
	RuleMax
	RuleNumeric
	RuleDigits
	RuleEmail
	RuleDate
	RuleBeforeToday
	RuleRegex
	RuleUppercase
	RuleImage
	RuleAccepted
)

// Rule is a parsed validation rule. Raw keeps the original string form so the
// schema can be served to the frontend unchanged.
type Rule struct {
	Kind    RuleKind
	N       int            // min/max/digits parameter
	Pattern *regexp.Regexp // regex parameter
	Raw     string
}

// FieldConfig describes a single form field and its validation rules.
type FieldConfig struct {
	Key         string   `json:"-"` // lookup key within its section
	Name        string   `json:"name"`
	Label       string   `json:"label"`
	LabelEn     string   `json:"label_en,omitempty"`
	Type        string   `json:"type"`
	Required    bool     `json:"required"`
	Placeholder string   `json:"placeholder,omitempty"`
	Options     []string `json:"options,omitempty"`
	Rows        int      `json:"rows,omitempty"`
	Accept      string   `json:"accept,omitempty"`
	MaxSize     int      `json:"max_size,omitempty"`
	Note        string   `json:"note,omitempty"`
	Validation  []string `json:"validation"`

	rules []Rule
}

// EducationLevel groups the fields of one exam level. Field keys (year, board,
// group, institution) differ from the target names (ssc_year, ...), so the
// validator must always address the Name, not the Key.
type EducationLevel struct {
	Key    string
	Exam   string
	Note   string
	Fields []FieldConfig
}

// Schema is the full form definition, loaded once per process.
type Schema struct {
	PersonalInfo     []FieldConfig
	ContactInfo      []FieldConfig
	AddressInfo      []FieldConfig
	BackgroundInfo   []FieldConfig
	Education        []EducationLevel
	Declaration      []FieldConfig
	CommitteeSection []FieldConfig
}

// ParseRule parses a rule string such as "required", "min:2" or
// "regex:^01[3-9]\d{8}$".
func ParseRule(raw string) (Rule, error) {
	switch {
	case raw == "required":
		return Rule{Kind: RuleRequired, Raw: raw}, nil
	case raw == "numeric":
		return Rule{Kind: RuleNumeric, Raw: raw}, nil
	case raw == "email":
		return Rule{Kind: RuleEmail, Raw: raw}, nil
	case raw == "date":
		return Rule{Kind: RuleDate, Raw: raw}, nil
	case raw == "before:today":
		return Rule{Kind: RuleBeforeToday, Raw: raw}, nil
	case raw == "uppercase":
		return Rule{Kind: RuleUppercase, Raw: raw}, nil
	case raw == "image":
		return Rule{Kind: RuleImage, Raw: raw}, nil
	case raw == "accepted":
		return Rule{Kind: RuleAccepted, Raw: raw}, nil
	case strings.HasPrefix(raw, "min:"):
		n, err := strconv.Atoi(raw[len("min:"):])
		if err != nil {
			return Rule{}, fmt.Errorf("invalid min rule %q: %w", raw, err)
		}
		return Rule{Kind: RuleMin, N: n, Raw: raw}, nil
	case strings.HasPrefix(raw, "max:"):
		n, err := strconv.Atoi(raw[len("max:"):])
		if err != nil {
			return Rule{}, fmt.Errorf("invalid max rule %q: %w", raw, err)
		}
		return Rule{Kind: RuleMax, N: n, Raw: raw}, nil
	case strings.HasPrefix(raw, "digits:"):
		n, err := strconv.Atoi(raw[len("digits:"):])
		if err != nil {
			return Rule{}, fmt.Errorf("invalid digits rule %q: %w", raw, err)
		}
		return Rule{Kind: RuleDigits, N: n, Raw: raw}, nil
	case strings.HasPrefix(raw, "regex:"):
		re, err := regexp.Compile(raw[len("regex:"):])
		if err != nil {
			return Rule{}, fmt.Errorf("invalid regex rule %q: %w", raw, err)
		}
		return Rule{Kind: RuleRegex, Pattern: re, Raw: raw}, nil
	default:
		return Rule{}, fmt.Errorf("unknown validation rule %q", raw)
	}
}

// Rules returns the parsed rules of a field.
func (f *FieldConfig) Rules() []Rule { return f.rules }

func compileFields(fields []FieldConfig) []FieldConfig {
	for i := range fields {
		fields[i].rules = make([]Rule, 0, len(fields[i].Validation))
		for _, raw := range fields[i].Validation {
			r, err := ParseRule(raw)
			if err != nil {
				panic(fmt.Sprintf("form schema: field %s: %v", fields[i].Name, err))
			}
			fields[i].rules = append(fields[i].rules, r)
		}
	}
	return fields
}

func (s *Schema) compile() *Schema {
	s.PersonalInfo = compileFields(s.PersonalInfo)
	s.ContactInfo = compileFields(s.ContactInfo)
	s.AddressInfo = compileFields(s.AddressInfo)
	s.BackgroundInfo = compileFields(s.BackgroundInfo)
	s.Declaration = compileFields(s.Declaration)
	s.CommitteeSection = compileFields(s.CommitteeSection)
	for i := range s.Education {
		s.Education[i].Fields = compileFields(s.Education[i].Fields)
	}
	return s
}

func (s *Schema) section(name string) []FieldConfig {
	switch name {
	case "personal_info":
		return s.PersonalInfo
	case "contact_info":
		return s.ContactInfo
	case "address_info":
		return s.AddressInfo
	case "background_info":
		return s.BackgroundInfo
	case "declaration":
		return s.Declaration
	case "committee_section":
		return s.CommitteeSection
	}
	return nil
}

// ConfigPayload builds the JSON document served by GET /api/config. The shape
// mirrors what the frontend form wizard expects: sections keyed by name,
// fields keyed by their lookup key, education levels with an exam title.
func (s *Schema) ConfigPayload() map[string]any {
	sectionMap := func(fields []FieldConfig) map[string]FieldConfig {
		m := make(map[string]FieldConfig, len(fields))
		for _, f := range fields {
			key := f.Key
			if key == "" {
				key = f.Name
			}
			m[key] = f
		}
		return m
	}

	education := make(map[string]any, len(s.Education))
	for _, level := range s.Education {
		entry := map[string]any{
			"exam":   level.Exam,
			"fields": sectionMap(level.Fields),
		}
		if level.Note != "" {
			entry["note"] = level.Note
		}
		education[level.Key] = entry
	}

	return map[string]any{
		"personal_info":     sectionMap(s.PersonalInfo),
		"contact_info":      sectionMap(s.ContactInfo),
		"address_info":      sectionMap(s.AddressInfo),
		"background_info":   sectionMap(s.BackgroundInfo),
		"education":         education,
		"declaration":       sectionMap(s.Declaration),
		"committee_section": sectionMap(s.CommitteeSection),
	}
}
