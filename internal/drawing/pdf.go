package drawing

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"

	applog "materio/internal/log"
)

// processPDF extracts text from every page, scans it for a declared material
// and annotations, and derives principal dimensions from explicit millimetre
// callouts in the drawing text.
func processPDF(ctx context.Context, path string, result *Result) {
	data, err := os.ReadFile(path)
	if err != nil {
		result.Error = fmt.Sprintf("error processing file: %v", err)
		return
	}

	text, err := extractTextFromPDF(data)
	if err != nil {
		applog.Error(ctx, "pdf text extraction failed", "path", path, "error", err)
		result.Error = fmt.Sprintf("error processing file: %v", err)
		return
	}

	result.Material = scanMaterial(text)
	result.Annotations = scanAnnotations(text)
	result.Dimensions = principalDimensions(scanDimensionTokens(text))
	if !result.Dimensions.Empty() {
		result.Volume = result.Dimensions.Volume()
	}

	applog.Debug(ctx, "pdf processed",
		"material", result.Material,
		"annotations", len(result.Annotations),
		"volume", result.Volume,
	)
}

func extractTextFromPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	var builder strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", err
		}
		builder.WriteString(text)
		builder.WriteString("\n")
	}
	return builder.String(), nil
}
