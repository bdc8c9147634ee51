package form

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validFormData() map[string]any {
	return map[string]any{
		"name_bangla":   "তানজিদ হাসান",
		"name_english":  "TANJID HASAN",
		"father_name":   "আব্দুল করিম",
		"mother_name":   "রহিমা বেগম",
		"photo":         "data:image/png;base64,iVBORw0KGgo=",
		"mobile_number": "01712345678",
		"nid_birth_reg": "1234567890123",
		"birth_date":    "2000-05-15",
		"present_address":   "House 12, Road 5, Dhanmondi, Dhaka",
		"permanent_address": "Village Rampur, Post Madhupur, Tangail",
		"ssc_year":          "2016",
		"ssc_board":         "ঢাকা",
		"ssc_group":         "বিজ্ঞান",
		"ssc_institution":   "ঢাকা কলেজিয়েট স্কুল",
		"hsc_year":          "2018",
		"hsc_board":         "ঢাকা",
		"hsc_group":         "বিজ্ঞান",
		"hsc_institution":   "নটর ডেম কলেজ",
		"movement_role":     strings.Repeat("a", 30),
		"aspirations":       strings.Repeat("b", 60),
		"declaration_name":       "তানজিদ হাসান",
		"declaration_agreement":  true,
	}
}

func newTestValidator(t *testing.T) *Validator {
	t.Helper()
	return NewValidator(DefaultSchema())
}

func TestValidateFullForm(t *testing.T) {
	v := newTestValidator(t)

	result := v.Validate(validFormData())
	require.True(t, result.IsValid, "errors: %v", result.Errors)
	assert.Empty(t, result.Errors)
}

func TestValidateRequiredMissing(t *testing.T) {
	v := newTestValidator(t)
	data := validFormData()
	delete(data, "name_bangla")

	result := v.Validate(data)
	require.False(t, result.IsValid)
	assert.Equal(t, "নাম (বাংলায়) আবশ্যক", result.Errors["name_bangla"])
}

func TestValidateMinMaxBoundaries(t *testing.T) {
	v := newTestValidator(t)

	data := validFormData()
	data["name_bangla"] = "অআ" // exactly min:2
	result := v.Validate(data)
	assert.NotContains(t, result.Errors, "name_bangla")

	data["name_bangla"] = "অ"
	result = v.Validate(data)
	assert.Equal(t, "নাম (বাংলায়) কমপক্ষে 2 অক্ষর হতে হবে", result.Errors["name_bangla"])

	data["name_bangla"] = strings.Repeat("ক", 101)
	result = v.Validate(data)
	assert.Equal(t, "নাম (বাংলায়) সর্বোচ্চ 100 অক্ষর হতে পারে", result.Errors["name_bangla"])

	data["name_bangla"] = strings.Repeat("ক", 100)
	result = v.Validate(data)
	assert.NotContains(t, result.Errors, "name_bangla")
}

func TestValidateUppercase(t *testing.T) {
	v := newTestValidator(t)
	data := validFormData()
	data["name_english"] = "Tanjid Hasan"

	result := v.Validate(data)
	assert.Equal(t, "ইংরেজিতে বড় হাতের বড় হাতের অক্ষরে লিখুন", result.Errors["name_english"])
}

func TestValidateMobileFormat(t *testing.T) {
	v := newTestValidator(t)

	for _, mobile := range []string{"01312345678", "01912345678"} {
		data := validFormData()
		data["mobile_number"] = mobile
		result := v.Validate(data)
		assert.NotContains(t, result.Errors, "mobile_number", "mobile %s should be valid", mobile)
	}

	for _, mobile := range []string{"01212345678", "0171234567", "017123456789", "8801712345678"} {
		data := validFormData()
		data["mobile_number"] = mobile
		result := v.Validate(data)
		assert.Equal(t, "মোবাইল নাম্বার সঠিক ফরম্যাটে দিন", result.Errors["mobile_number"], "mobile %s", mobile)
	}
}

func TestValidateBirthDate(t *testing.T) {
	v := newTestValidator(t)
	v.now = func() time.Time { return time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC) }

	data := validFormData()
	data["birth_date"] = "2024-02-30"
	result := v.Validate(data)
	assert.Equal(t, "সঠিক তারিখ দিন (YYYY-MM-DD)", result.Errors["birth_date"])

	data["birth_date"] = "2030-01-01"
	result = v.Validate(data)
	assert.Equal(t, "তারিখ আজকের আগে হতে হবে", result.Errors["birth_date"])

	// Today is not strictly before today.
	data["birth_date"] = "2026-08-31"
	result = v.Validate(data)
	assert.Equal(t, "তারিখ আজকের আগে হতে হবে", result.Errors["birth_date"])

	data["birth_date"] = "2026-08-30"
	result = v.Validate(data)
	assert.NotContains(t, result.Errors, "birth_date")

	data["birth_date"] = "2000-05-15"
	result = v.Validate(data)
	assert.NotContains(t, result.Errors, "birth_date")
}

func TestValidateOptionalEmptySkipsRules(t *testing.T) {
	v := newTestValidator(t)

	data := validFormData()
	result := v.Validate(data)
	assert.NotContains(t, result.Errors, "blood_group")

	data["blood_group"] = "ABCDEF"
	result = v.Validate(data)
	assert.Equal(t, "রক্তের গ্রুপ সর্বোচ্চ 5 অক্ষর হতে পারে", result.Errors["blood_group"])
}

func TestValidateAccepted(t *testing.T) {
	v := newTestValidator(t)

	for _, val := range []any{true, "true", "1", float64(1)} {
		data := validFormData()
		data["declaration_agreement"] = val
		result := v.Validate(data)
		assert.NotContains(t, result.Errors, "declaration_agreement", "value %v", val)
	}

	data := validFormData()
	data["declaration_agreement"] = false
	result := v.Validate(data)
	assert.Equal(t, "আপনাকে এই শর্তে সম্মত হতে হবে", result.Errors["declaration_agreement"])
}

func TestValidateStepEducation(t *testing.T) {
	v := newTestValidator(t)

	data := validFormData()
	result := v.ValidateStep("education", data)
	require.True(t, result.IsValid, "errors: %v", result.Errors)

	delete(data, "ssc_year")
	result = v.ValidateStep("education", data)
	require.False(t, result.IsValid)
	// Errors land under the prefixed field name, not the bare key.
	assert.Contains(t, result.Errors, "ssc_year")
	assert.NotContains(t, result.Errors, "year")
}

func TestValidateStepEducationDigits(t *testing.T) {
	v := newTestValidator(t)

	data := validFormData()
	data["ssc_year"] = "20"
	result := v.ValidateStep("education", data)
	assert.Equal(t, "Year / সাল 4 সংখ্যার হতে হবে", result.Errors["ssc_year"])

	data["ssc_year"] = "202a"
	result = v.ValidateStep("education", data)
	assert.Equal(t, "Year / সাল 4 সংখ্যার হতে হবে", result.Errors["ssc_year"])

	// Graduation row is optional and skipped entirely when empty.
	data = validFormData()
	result = v.ValidateStep("education", data)
	assert.True(t, result.IsValid)
}

func TestValidateStepUnknownIsNoOp(t *testing.T) {
	v := newTestValidator(t)

	result := v.ValidateStep("bogus", map[string]any{"anything": ""})
	assert.True(t, result.IsValid)
	assert.Empty(t, result.Errors)
}

func TestValidateStepPersonalIncludesBackground(t *testing.T) {
	v := newTestValidator(t)

	data := validFormData()
	data["political_affiliation"] = strings.Repeat("x", 201)
	result := v.ValidateStep("personal", data)
	assert.Contains(t, result.Errors, "political_affiliation")

	// The full-form pass does not cover background fields.
	result = v.Validate(data)
	assert.NotContains(t, result.Errors, "political_affiliation")
}

func TestValidateLastErrorWins(t *testing.T) {
	v := newTestValidator(t)

	// "a" fails min:2 and uppercase; the later rule's message is kept.
	data := validFormData()
	data["name_english"] = "a"
	result := v.Validate(data)
	assert.Equal(t, "ইংরেজিতে বড় হাতের বড় হাতের অক্ষরে লিখুন", result.Errors["name_english"])
}

func TestSanitize(t *testing.T) {
	out := Sanitize(map[string]any{
		"plain":   "  hello  ",
		"tags":    "<script>alert(1)</script>",
		"entities": `O'Brien & "Co"`,
		"nested":  map[string]any{"inner": " <b>bold</b> "},
		"number":  float64(42),
		"flag":    true,
	})

	assert.Equal(t, "hello", out["plain"])
	assert.Equal(t, "alert(1)", out["tags"])
	assert.Equal(t, "O&#39;Brien &amp; &#34;Co&#34;", out["entities"])
	assert.Equal(t, "bold", out["nested"].(map[string]any)["inner"])
	assert.Equal(t, float64(42), out["number"])
	assert.Equal(t, true, out["flag"])
}

func TestValidateSanitizesBeforeRules(t *testing.T) {
	v := newTestValidator(t)

	// Markup is stripped before length rules run, so a tag-padded short name
	// still fails min:2.
	data := validFormData()
	data["name_bangla"] = "<b></b>ক"
	result := v.Validate(data)
	assert.Equal(t, "নাম (বাংলায়) কমপক্ষে 2 অক্ষর হতে হবে", result.Errors["name_bangla"])
	assert.Equal(t, "ক", result.Sanitized["name_bangla"])
}
