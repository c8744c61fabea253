package report

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/nabilassungkar/MoodMelt/internal/models"
)

// The dashboard's fruit palette, used for the section title banners.
type rgb struct{ r, g, b int }

var (
	colorDarkPink = rgb{233, 30, 99}  // strawberry
	colorYellow   = rgb{255, 235, 59} // lemon
	colorGreen    = rgb{139, 195, 74} // lime
	colorOrange   = rgb{255, 152, 0}  // orange
	colorBlue     = rgb{33, 150, 243} // blueberry
)

const (
	pdfTitle = "MoodMelt's Media Intelligence Dashboard Report"

	pdfIntro = "This report provides an in-depth analysis of your media data from MoodMelt's " +
		"Interactive Dashboard. Dive into sentiment, engagement, platform performance, " +
		"media type mix, and geographical insights."

	pdfCleanupNote = "We've spruced up your data! Dates are now friendly, missing engagements " +
		"have been filled with a big fat zero, and all column names are squeaky clean. " +
		"Ready for the juicy insights!"
)

// RenderPDF formats the report's insight and recommendation statements into
// a paginated PDF. Statements keep the **bold** marker convention, which is
// reflowed here into font-weight toggles.
func RenderPDF(rep models.Report) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AliasNbPages("")

	pdf.SetHeaderFunc(func() {
		pdf.SetFont("Arial", "B", 15)
		pdf.CellFormat(0, 10, pdfTitle, "", 1, "C", false, 0, "")
		pdf.Ln(10)
	})
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Arial", "I", 8)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d/{nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()

	pdf.SetFont("Arial", "", 12)
	pdf.MultiCell(0, 8, pdfIntro, "", "C", false)
	pdf.Ln(10)

	sections := []struct {
		title string
		color rgb
		body  []string
	}{
		{"2. Data Clean-Up Crew!", colorGreen, []string{pdfCleanupNote}},
		{"3. Sentiment Breakdown: How's the Vibe?", colorDarkPink, rep.Insights.Sentiment},
		{"4. Engagement Trend: Riding the Wave!", colorOrange, rep.Insights.Engagement},
		{"5. Platform Power: Where's the Buzz Juiciest?", colorBlue, rep.Insights.Platform},
		{"6. Media Type Mix: What's Your Recipe?", colorGreen, rep.Insights.MediaType},
		{"7. Top 5 Locations: Where Are Your Fans Blooming?", colorYellow, rep.Insights.Location},
		{"8. Overall Business Recommendations: Your Next Steps!", colorDarkPink, rep.Recommendations},
	}
	for _, section := range sections {
		chapterTitle(pdf, section.title, section.color)
		chapterBody(pdf, section.body)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF report: %w", err)
	}
	return buf.Bytes(), nil
}

func chapterTitle(pdf *fpdf.Fpdf, title string, color rgb) {
	pdf.SetFillColor(color.r, color.g, color.b)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, title, "", 1, "L", true, 0, "")
	pdf.Ln(4)
	pdf.SetTextColor(0, 0, 0)
}

// chapterBody writes each statement on its own line, toggling the bold font
// for the spans delimited by ** pairs.
func chapterBody(pdf *fpdf.Fpdf, lines []string) {
	pdf.SetFont("Arial", "", 12)
	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		line = strings.TrimPrefix(line, "- ")

		for i, part := range strings.Split(line, "**") {
			if i%2 == 1 {
				pdf.SetFont("Arial", "B", 12)
			} else {
				pdf.SetFont("Arial", "", 12)
			}
			pdf.Write(8, part)
		}
		pdf.Ln(8)
	}
	pdf.Ln(8)
}
