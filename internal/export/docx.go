// Package export renders finalised documents as .docx files in the layout
// Thai official correspondence expects.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/unidoc/unioffice/v2/document"
	"github.com/unidoc/unioffice/v2/measurement"
	"github.com/unidoc/unioffice/v2/schema/soo/wml"
)

// DocxWriter writes plain drafted text as a Word document, one paragraph
// per input line, justified, in the configured font.
type DocxWriter struct {
	FontName   string
	FontSizePt float64
}

func NewDocxWriter(fontName string, fontSizePt float64) *DocxWriter {
	if fontName == "" {
		fontName = "TH SarabunPSK"
	}
	if fontSizePt <= 0 {
		fontSizePt = 16
	}
	return &DocxWriter{FontName: fontName, FontSizePt: fontSizePt}
}

// Write renders text to w. Blank lines become empty paragraphs so the
// spacing of the draft survives the export.
func (d *DocxWriter) Write(w io.Writer, text string) error {
	doc := document.New()

	for _, line := range strings.Split(text, "\n") {
		para := doc.AddParagraph()
		para.Properties().SetAlignment(wml.ST_JcBoth)
		run := para.AddRun()
		run.Properties().SetFontFamily(d.FontName)
		run.Properties().SetSize(measurement.Distance(d.FontSizePt) * measurement.Point)
		run.AddText(strings.TrimRight(line, " \t"))
	}

	if err := doc.Save(w); err != nil {
		return fmt.Errorf("save docx: %w", err)
	}
	return nil
}
