package submission

// PhotoSentinel replaces the photo value before a record is persisted, so raw
// image bytes never end up inside a submission JSON file.
const PhotoSentinel = "[PHOTO_SAVED_SEPARATELY]"

// TimeLayout is the timestamp format used in stored records.
const TimeLayout = "2006-01-02 15:04:05"

// Submission is one stored membership application. Created once at submit
// time and immutable afterwards.
type Submission struct {
	SubmissionID string         `json:"submission_id"`
	SubmittedAt  string         `json:"submitted_at"`
	Data         map[string]any `json:"data"`
	PDFPath      string         `json:"pdf_path"`
	IPAddress    string         `json:"ip_address"`
	UserAgent    string         `json:"user_agent"`
}

// Summary is the listing projection served to the admin panel.
type Summary struct {
	SubmissionID string `json:"submission_id"`
	SubmittedAt  string `json:"submitted_at"`
	Name         string `json:"name"`
	NameEnglish  string `json:"name_english"`
	NID          string `json:"nid"`
	Mobile       string `json:"mobile"`
	Email        string `json:"email"`
}

// Page is one page of summaries plus the total match count.
type Page struct {
	Items []Summary
	Total int
}

// Meta carries request metadata persisted with a submission.
type Meta struct {
	IPAddress string
	UserAgent string
}
