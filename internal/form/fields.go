package form

// DefaultSchema returns the membership form definition. Labels are Bengali
// because the rendered form and all validation messages face Bengali users.
func DefaultSchema() *Schema {
	s := &Schema{
		PersonalInfo: []FieldConfig{
			{
				Key: "form_no", Name: "form_no",
				Label: "ফরম নং", LabelEn: "Form No.",
				Type: "text", Required: false,
				Placeholder: "সেট কমিটি কর্তৃক পূরণীয়",
				Validation:  []string{"max:50"},
			},
			{
				Key: "name_bangla", Name: "name_bangla",
				Label: "নাম (বাংলায়)", LabelEn: "Name (in Bengali)",
				Type: "text", Required: true,
				Placeholder: "আপনার নাম বাংলায় লিখুন",
				Validation:  []string{"required", "min:2", "max:100"},
			},
			{
				Key: "name_english", Name: "name_english",
				Label: "ইংরেজিতে বড় হাতের", LabelEn: "Name (in English Capital Letters)",
				Type: "text", Required: true,
				Placeholder: "YOUR NAME IN CAPITAL LETTERS",
				Validation:  []string{"required", "min:2", "max:100", "uppercase"},
			},
			{
				Key: "father_name", Name: "father_name",
				Label: "পিতার নাম (বাংলায়)", LabelEn: "Father's Name (in Bengali)",
				Type: "text", Required: true,
				Placeholder: "পিতার নাম বাংলায় লিখুন",
				Validation:  []string{"required", "min:2", "max:100"},
			},
			{
				Key: "mother_name", Name: "mother_name",
				Label: "মাতার নাম (বাংলায়)", LabelEn: "Mother's Name (in Bengali)",
				Type: "text", Required: true,
				Placeholder: "মাতার নাম বাংলায় লিখুন",
				Validation:  []string{"required", "min:2", "max:100"},
			},
			{
				Key: "photo", Name: "photo",
				Label: "পাসপোর্ট সাইজ ছবি", LabelEn: "Passport Size Photo",
				Type: "file", Required: true,
				Accept:  "image/jpeg,image/png",
				MaxSize: 5242880, // 5MB
				Note:    "১ কপি, সাদা ব্যাকগ্রাউন্ড",
				Validation: []string{"required", "image", "max:5120"},
			},
		},
		ContactInfo: []FieldConfig{
			{
				Key: "mobile_number", Name: "mobile_number",
				Label: "মোবাইল নাম্বার", LabelEn: "Mobile Number",
				Type: "tel", Required: true,
				Placeholder: "01XXXXXXXXX",
				Validation:  []string{"required", `regex:^01[3-9]\d{8}$`},
			},
			{
				Key: "blood_group", Name: "blood_group",
				Label: "রক্তের গ্রুপ", LabelEn: "Blood Group",
				Type: "select", Required: false,
				Options:    []string{"A+", "A-", "B+", "B-", "O+", "O-", "AB+", "AB-"},
				Validation: []string{"max:5"},
			},
			{
				Key: "nid_birth_reg", Name: "nid_birth_reg",
				Label: "এনআইডি / জন্ম নিবন্ধন নম্বর", LabelEn: "NID / Birth Registration Number",
				Type: "text", Required: true,
				Placeholder: "NID বা জন্ম নিবন্ধন নম্বর",
				Validation:  []string{"required", "min:10", "max:20"},
			},
			{
				Key: "birth_date", Name: "birth_date",
				Label: "জন্ম তারিখ (দিন-মাস-সাল)", LabelEn: "Date of Birth (DD-MM-YYYY)",
				Type: "date", Required: true,
				Validation: []string{"required", "date", "before:today"},
			},
		},
		AddressInfo: []FieldConfig{
			{
				Key: "present_address", Name: "present_address",
				Label: "বর্তমান ঠিকানা", LabelEn: "Present Address",
				Type: "textarea", Required: true,
				Placeholder: "বর্তমান ঠিকানা লিখুন", Rows: 3,
				Validation: []string{"required", "min:10", "max:500"},
			},
			{
				Key: "permanent_address", Name: "permanent_address",
				Label: "স্থায়ী ঠিকানা", LabelEn: "Permanent Address",
				Type: "textarea", Required: true,
				Placeholder: "স্থায়ী ঠিকানা লিখুন", Rows: 3,
				Validation: []string{"required", "min:10", "max:500"},
			},
		},
		BackgroundInfo: []FieldConfig{
			{
				Key: "political_affiliation", Name: "political_affiliation",
				Label: "রাজনৈতিক / সাংগঠনিক সম্পৃক্ততা", LabelEn: "Political / Organizational Affiliation",
				Type: "text", Required: false,
				Placeholder: "যদি থাকে",
				Validation:  []string{"max:200"},
			},
			{
				Key: "last_position", Name: "last_position",
				Label: "সর্বশেষ পদবী (কমিটির নাম সহ; যদি থাকে)", LabelEn: "Last Position (with Committee Name if any)",
				Type: "text", Required: false,
				Placeholder: "যদি থাকে",
				Validation:  []string{"max:200"},
			},
		},
		Education: []EducationLevel{
			{
				Key:  "ssc",
				Exam: "SSC / দাখিল / ভোকেশনাল / O levels",
				Fields: []FieldConfig{
					{
						Key: "year", Name: "ssc_year",
						Label: "Year / সাল", Type: "text", Required: true,
						Placeholder: "2020",
						Validation:  []string{"required", "numeric", "digits:4"},
					},
					{
						Key: "board", Name: "ssc_board",
						Label: "Board / বোর্ড", Type: "text", Required: true,
						Placeholder: "ঢাকা",
						Validation:  []string{"required", "max:100"},
					},
					{
						Key: "group", Name: "ssc_group",
						Label: "বিভাগ / গ্রুপ / সাবজেক্ট", Type: "text", Required: true,
						Placeholder: "বিজ্ঞান",
						Validation:  []string{"required", "max:100"},
					},
					{
						Key: "institution", Name: "ssc_institution",
						Label: "Institution / স্কুল / কলেজ", Type: "text", Required: true,
						Placeholder: "প্রতিষ্ঠানের নাম",
						Validation:  []string{"required", "max:200"},
					},
				},
			},
			{
				Key:  "hsc",
				Exam: "HSC / আলিম / ডিপ্লোমা / A levels",
				Fields: []FieldConfig{
					{
						Key: "year", Name: "hsc_year",
						Label: "Year / সাল", Type: "text", Required: true,
						Placeholder: "2022",
						Validation:  []string{"required", "numeric", "digits:4"},
					},
					{
						Key: "board", Name: "hsc_board",
						Label: "Board / বোর্ড", Type: "text", Required: true,
						Placeholder: "ঢাকা",
						Validation:  []string{"required", "max:100"},
					},
					{
						Key: "group", Name: "hsc_group",
						Label: "বিভাগ / গ্রুপ / সাবজেক্ট", Type: "text", Required: true,
						Placeholder: "বিজ্ঞান",
						Validation:  []string{"required", "max:100"},
					},
					{
						Key: "institution", Name: "hsc_institution",
						Label: "Institution / কলেজ", Type: "text", Required: true,
						Placeholder: "প্রতিষ্ঠানের নাম",
						Validation:  []string{"required", "max:200"},
					},
				},
			},
			{
				Key:  "graduation",
				Exam: "স্নাতক / মাস্টার্স / সমমানের ডিগ্রি",
				Note: "কেবল সেরা উচ্চতর ডিগ্রি",
				Fields: []FieldConfig{
					{
						Key: "year", Name: "graduation_year",
						Label: "Year / সাল", Type: "text", Required: false,
						Placeholder: "2026",
						Validation:  []string{"numeric", "digits:4"},
					},
					{
						Key: "board", Name: "graduation_board",
						Label: "University / বিশ্ববিদ্যালয়", Type: "text", Required: false,
						Placeholder: "ঢাকা বিশ্ববিদ্যালয়",
						Validation:  []string{"max:100"},
					},
					{
						Key: "subject", Name: "graduation_subject",
						Label: "Subject / বিষয়", Type: "text", Required: false,
						Placeholder: "কম্পিউটার সায়েন্স",
						Validation:  []string{"max:100"},
					},
					{
						Key: "institution", Name: "graduation_institution",
						Label: "Institution / প্রতিষ্ঠান", Type: "text", Required: false,
						Placeholder: "প্রতিষ্ঠানের নাম",
						Validation:  []string{"max:200"},
					},
				},
			},
		},
		Declaration: []FieldConfig{
			{
				Key: "movement_role", Name: "movement_role",
				Label:   "জুলাই–আগস্ট ২০২৪ এ ছাত্র–জনতার গণঅভ্যুত্থানে আপনার ভূমিকা ও সংযুক্তি",
				LabelEn: "Your role in July-August 2024 student movement",
				Type:    "textarea", Required: true,
				Placeholder: "আপনার ভূমিকা লিখুন", Rows: 4,
				Validation: []string{"required", "min:20", "max:1000"},
			},
			{
				Key: "aspirations", Name: "aspirations",
				Label:   "জাতীয় ছাত্রশক্তির জন্য আপনার চাওয়া এবং আকাঙ্ক্ষা কি?",
				LabelEn: "What are your expectations from Jatiya Chhatra Shakti?",
				Type:    "textarea", Required: true,
				Placeholder: "আপনার চাওয়া এবং আকাঙ্ক্ষা লিখুন", Rows: 5,
				Validation: []string{"required", "min:50", "max:1000"},
			},
			{
				Key: "declaration_name", Name: "declaration_name",
				Label: "আমি", LabelEn: "I",
				Type: "text", Required: true,
				Placeholder: "আপনার নাম",
				Validation:  []string{"required", "min:2", "max:100"},
			},
			{
				Key: "declaration_agreement", Name: "declaration_agreement",
				Label:   "আমি ঘোষণা করছি যে উপরের সমস্ত তথ্য সত্য এবং সঠিক",
				LabelEn: "I declare that all the above information is true and correct",
				Type:    "checkbox", Required: true,
				Validation: []string{"required", "accepted"},
			},
		},
		CommitteeSection: []FieldConfig{
			{
				Key: "committee_member_name", Name: "committee_member_name",
				Label: "সাট কমিটির সদস্যের নাম", LabelEn: "Set Committee Member Name",
				Type: "text", Required: false,
				Placeholder: "কমিটি সদস্যের নাম",
				Validation:  []string{"max:100"},
			},
			{
				Key: "committee_member_position", Name: "committee_member_position",
				Label: "পদবী", LabelEn: "Position",
				Type: "text", Required: false,
				Placeholder: "পদবী",
				Validation:  []string{"max:100"},
			},
			{
				Key: "committee_member_comments", Name: "committee_member_comments",
				Label: "সাট কমিটির সদস্যের মন্তব্য", LabelEn: "Set Committee Member Comments",
				Type: "textarea", Required: false,
				Placeholder: "মন্তব্য", Rows: 3,
				Validation: []string{"max:500"},
			},
			{
				Key: "recommended_position", Name: "recommended_position",
				Label: "রেকমেন্ডকৃত পদবী", LabelEn: "Recommended Position",
				Type: "text", Required: false,
				Placeholder: "রেকমেন্ডকৃত পদবী",
				Validation:  []string{"max:100"},
			},
		},
	}

	return s.compile()
}
