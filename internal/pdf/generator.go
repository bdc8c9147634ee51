package pdf

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/tanjid017/membership-registration-backend/internal/settings"
)

// Generator renders the two-page membership application PDF. Rendering is
// CPU and memory heavy, so concurrent renders are bounded by a semaphore.
type Generator struct {
	sem      chan struct{}
	fontPath string
	settings *settings.Store
}

// NewGenerator bounds concurrent renders to maxConcurrent. fontPath may point
// to a Bengali-capable UTF-8 TTF; when empty, a core font is used and Bengali
// text degrades to whatever glyphs it carries.
func NewGenerator(maxConcurrent int, fontPath string, st *settings.Store) *Generator {
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}
	return &Generator{
		sem:      make(chan struct{}, maxConcurrent),
		fontPath: fontPath,
		settings: st,
	}
}

// Render produces the filled-in application PDF for one submission.
// Blocks until a render slot is free or ctx is done.
func (g *Generator) Render(ctx context.Context, data map[string]any) ([]byte, error) {
	select {
	case g.sem <- struct{}{}:
		defer func() { <-g.sem }()
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	doc := newDocument(g.fontPath)
	doc.renderPage1(data, g.settings)
	doc.renderPage2(data)

	var buf bytes.Buffer
	if err := doc.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return buf.Bytes(), nil
}

type document struct {
	pdf  *gofpdf.Fpdf
	font string
}

func newDocument(fontPath string) *document {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.SetAutoPageBreak(true, 15)

	font := "Arial"
	if fontPath != "" {
		if _, err := os.Stat(fontPath); err == nil {
			pdf.AddUTF8Font("bengali", "", fontPath)
			font = "bengali"
		}
	}
	return &document{pdf: pdf, font: font}
}

func (d *document) renderPage1(data map[string]any, st *settings.Store) {
	pdf := d.pdf
	pdf.AddPage()

	// Header: logo on the left, organization names centered.
	if logo := st.LogoFile(); logo != "" {
		pdf.ImageOptions(logo, 15, 12, 20, 20, false, gofpdf.ImageOptions{ReadDpi: true}, 0, "")
	}
	pdf.SetFont(d.font, "", 16)
	pdf.CellFormat(0, 8, st.Value("org_name_bn", "জাতীয় ছাত্রশক্তি"), "", 1, "C", false, 0, "")
	pdf.SetFont(d.font, "", 11)
	pdf.CellFormat(0, 6, st.Value("org_name_en", "Jatiya Chhatra Shakti"), "", 1, "C", false, 0, "")
	pdf.SetFont(d.font, "", 12)
	pdf.CellFormat(0, 8, "সদস্য আবেদন ফরম", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont(d.font, "", 9)
	pdf.CellFormat(0, 5, "ফরম নং: "+value(data, "form_no"), "", 1, "R", false, 0, "")
	pdf.Ln(2)

	d.photoBox(data)

	d.row("নাম (বাংলায়)", value(data, "name_bangla", "full_name_bengali"))
	d.row("Name (English)", value(data, "name_english", "full_name"))
	d.row("পিতার নাম", value(data, "father_name", "father_name_bengali"))
	d.row("মাতার নাম", value(data, "mother_name", "mother_name_bengali"))
	d.row("মোবাইল নম্বর", value(data, "mobile_number", "mobile"))
	d.row("রক্তের গ্রুপ", value(data, "blood_group"))
	d.row("NID / জন্ম নিবন্ধন নং", value(data, "nid_birth_reg", "nid"))
	d.row("জন্ম তারিখ", value(data, "birth_date", "date_of_birth"))
	d.block("বর্তমান ঠিকানা", value(data, "present_address"))
	d.block("স্থায়ী ঠিকানা", value(data, "permanent_address"))
	d.block("পূর্ববর্তী রাজনৈতিক সংশ্লিষ্টতা", value(data, "political_affiliation"))
	d.row("সর্বশেষ পদবি", value(data, "last_position"))
	pdf.Ln(3)

	// Educational qualification table.
	pdf.SetFont(d.font, "", 10)
	pdf.CellFormat(0, 6, "শিক্ষাগত যোগ্যতা", "", 1, "L", false, 0, "")
	pdf.SetFont(d.font, "", 8)
	pdf.SetFillColor(235, 235, 235)
	headers := []struct {
		label string
		w     float64
	}{
		{"পরীক্ষা", 28}, {"সাল", 18}, {"বোর্ড/বিশ্ববিদ্যালয়", 38}, {"গ্রুপ/বিষয়", 38}, {"প্রতিষ্ঠান", 58},
	}
	for _, h := range headers {
		pdf.CellFormat(h.w, 6, h.label, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)
	d.eduRow("এসএসসি", data, "ssc_year", "ssc_board", "ssc_group", "ssc_institution")
	d.eduRow("এইচএসসি", data, "hsc_year", "hsc_board", "hsc_group", "hsc_institution")
	d.eduRow("স্নাতক", data, "graduation_year", "graduation_board", "graduation_subject", "graduation_institution")
}

func (d *document) renderPage2(data map[string]any) {
	pdf := d.pdf
	pdf.AddPage()

	d.block("আন্দোলনে ভূমিকা", value(data, "movement_role"))
	d.block("সংগঠন নিয়ে প্রত্যাশা", value(data, "aspirations"))
	pdf.Ln(4)

	pdf.SetFont(d.font, "", 10)
	pdf.CellFormat(0, 6, "অঙ্গীকারনামা", "", 1, "L", false, 0, "")
	pdf.SetFont(d.font, "", 9)
	name := value(data, "declaration_name", "name_bangla")
	pdf.MultiCell(0, 5, "আমি, "+name+", এই মর্মে অঙ্গীকার করছি যে উপরে প্রদত্ত সকল তথ্য সত্য এবং আমি সংগঠনের গঠনতন্ত্র ও আদর্শ মেনে চলব।", "", "L", false)
	pdf.Ln(8)
	pdf.CellFormat(90, 5, "তারিখ: "+value(data, "declaration_date"), "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 5, "আবেদনকারীর স্বাক্ষর", "T", 1, "C", false, 0, "")
	pdf.Ln(10)

	// Committee use only.
	pdf.SetFont(d.font, "", 10)
	pdf.CellFormat(0, 6, "কমিটির ব্যবহারের জন্য", "B", 1, "L", false, 0, "")
	pdf.Ln(2)
	pdf.SetFont(d.font, "", 9)
	d.row("সুপারিশকারী সদস্যের নাম", value(data, "committee_member_name"))
	d.row("পদবি", value(data, "committee_member_position"))
	d.block("মন্তব্য", value(data, "committee_member_comments"))
	d.row("প্রস্তাবিত পদ", value(data, "recommended_position"))
	pdf.Ln(12)
	pdf.CellFormat(90, 5, "", "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 5, "কমিটি সদস্যের স্বাক্ষর", "T", 1, "C", false, 0, "")
}

// row keeps the value cell short of the photo frame on the right edge.
func (d *document) row(label, val string) {
	d.pdf.SetFont(d.font, "", 9)
	d.pdf.CellFormat(55, 6, label, "", 0, "L", false, 0, "")
	d.pdf.CellFormat(90, 6, val, "B", 1, "L", false, 0, "")
}

func (d *document) block(label, val string) {
	d.pdf.SetFont(d.font, "", 9)
	d.pdf.CellFormat(0, 6, label, "", 1, "L", false, 0, "")
	d.pdf.MultiCell(0, 5, val, "1", "L", false)
	d.pdf.Ln(1)
}

func (d *document) eduRow(exam string, data map[string]any, keys ...string) {
	d.pdf.CellFormat(28, 6, exam, "1", 0, "C", false, 0, "")
	widths := []float64{18, 38, 38, 58}
	for i, key := range keys {
		d.pdf.CellFormat(widths[i], 6, value(data, key), "1", 0, "C", false, 0, "")
	}
	d.pdf.Ln(-1)
}

// photoBox draws the passport photo frame at the top right, embedding the
// applicant photo when one was saved on disk.
func (d *document) photoBox(data map[string]any) {
	pdf := d.pdf
	cx, cy := pdf.GetXY()
	x, y, w, h := 165.0, 40.0, 30.0, 38.0
	pdf.Rect(x, y, w, h, "D")

	photo := value(data, "photo")
	if photo != "" && photo != "[PHOTO_SAVED_SEPARATELY]" {
		if _, err := os.Stat(photo); err == nil {
			ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(photo)), ".")
			if ext == "jpg" || ext == "jpeg" || ext == "png" {
				pdf.ImageOptions(photo, x+1, y+1, w-2, h-2, false, gofpdf.ImageOptions{ReadDpi: true}, 0, "")
			}
		}
	} else {
		pdf.SetFont(d.font, "", 8)
		pdf.SetXY(x, y+h/2-6)
		pdf.MultiCell(w, 4, "পাসপোর্ট\nসাইজ ছবি", "", "C", false)
	}
	pdf.SetXY(cx, cy)
}

// value returns the first non-empty string among the given keys, with HTML
// entities decoded back for display.
func value(data map[string]any, keys ...string) string {
	for _, key := range keys {
		if s, ok := data[key].(string); ok && s != "" {
			return html.UnescapeString(s)
		}
	}
	return ""
}
