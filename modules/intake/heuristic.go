package intake

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrymomot/hrkit/pkg/payload"
)

// Label patterns for the fixed-form Brazilian HR documents this pipeline
// ingests. Labels match case-insensitively anywhere in the text and the value
// runs to the end of the line.
var (
	nameRe       = regexp.MustCompile(`(?i)nome:?\s*([^\n]+)`)
	taxIDRe      = regexp.MustCompile(`\d{3}\.\d{3}\.\d{3}-\d{2}`)
	dateRe       = regexp.MustCompile(`\d{2}/\d{2}/\d{4}`)
	positionRe   = regexp.MustCompile(`(?i)cargo:?\s*([^\n]+)`)
	departmentRe = regexp.MustCompile(`(?i)departamento:?\s*([^\n]+)`)
	salaryRe     = regexp.MustCompile(`(?i)sal[áa]rio:?\s*R?\$?\s*(\d+(?:[.,]\d+)*)`)
	contractRe   = regexp.MustCompile(`(?i)contrato:?\s*([^\n]+)`)
)

// HeuristicExtract scans raw document text for the labeled fields of a
// standard Brazilian HR form and returns whatever it finds under canonical
// payload keys. A field whose label is absent stays absent rather than being
// emitted as an empty placeholder. The skill and experience lists are always
// present and empty, since label matching cannot recover them from free text;
// the structured extraction fills them in when it succeeds.
func HeuristicExtract(text string) payload.Payload {
	extracted := payload.Payload{
		"main_skills":     []any{},
		"hard_skills":     []any{},
		"work_experience": []any{},
	}

	if m := nameRe.FindStringSubmatch(text); m != nil {
		extracted["name"] = strings.TrimSpace(m[1])
	}
	if m := taxIDRe.FindString(text); m != "" {
		extracted["tax_id"] = m
	}
	if m := dateRe.FindString(text); m != "" {
		if iso, ok := isoDate(m); ok {
			extracted["document_date"] = iso
		}
	}
	if m := positionRe.FindStringSubmatch(text); m != nil {
		extracted["position"] = strings.TrimSpace(m[1])
	}
	if m := departmentRe.FindStringSubmatch(text); m != nil {
		extracted["department"] = strings.TrimSpace(m[1])
	}
	if m := salaryRe.FindStringSubmatch(text); m != nil {
		if salary, ok := parseBrazilianNumber(m[1]); ok {
			extracted["salary"] = salary
		}
	}
	if m := contractRe.FindStringSubmatch(text); m != nil {
		extracted["contract_type"] = strings.TrimSpace(m[1])
	}

	return extracted
}

// isoDate converts the DD/MM/YYYY spelling used on the source documents to
// ISO 8601. Impossible dates report ok=false so the field stays absent.
func isoDate(s string) (string, bool) {
	t, err := time.Parse("02/01/2006", s)
	if err != nil {
		return "", false
	}
	return t.Format("2006-01-02"), true
}

// parseBrazilianNumber reads a monetary amount in either Brazilian or plain
// decimal notation. A comma marks the decimal separator and any dots before
// it are thousands separators; without a comma the token parses as written.
func parseBrazilianNumber(s string) (float64, bool) {
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
