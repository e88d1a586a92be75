package drawing

import (
	"regexp"
	"strconv"
	"strings"
)

// materialKeywords mark lines that declare the part material. The reference
// drawings are bilingual, hence the French variants.
var materialKeywords = []string{
	"material:", "matériau:",
	"steel", "aluminum", "plastic",
	"acier", "aluminium", "plastique",
}

// annotationKeywords mark free-text notes worth surfacing to the user.
var annotationKeywords = []string{
	"note", "remark", "specification", "spec",
	"requirement", "req", "finish", "treatment",
}

var dimensionTokenPattern = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*mm`)

// scanMaterial returns the line declaring the part material, lowercased and
// trimmed. Keywords are tried in order and later keywords override earlier
// ones.
func scanMaterial(text string) string {
	lowered := strings.ToLower(text)
	lines := strings.Split(lowered, "\n")

	material := ""
	for _, keyword := range materialKeywords {
		if !strings.Contains(lowered, keyword) {
			continue
		}
		for _, line := range lines {
			if strings.Contains(line, keyword) {
				material = strings.TrimSpace(line)
				break
			}
		}
	}
	return material
}

// scanAnnotations collects lines containing annotation keywords.
func scanAnnotations(text string) []string {
	annotations := []string{}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lowered := strings.ToLower(line)
		for _, keyword := range annotationKeywords {
			if strings.Contains(lowered, keyword) {
				annotations = append(annotations, line)
				break
			}
		}
	}
	return annotations
}

// scanDimensionTokens extracts explicit millimetre callouts such as
// "120.5 mm" from drawing text.
func scanDimensionTokens(text string) []float64 {
	matches := dimensionTokenPattern.FindAllStringSubmatch(strings.ToLower(text), -1)
	values := make([]float64, 0, len(matches))
	for _, match := range matches {
		value, err := strconv.ParseFloat(match[1], 64)
		if err != nil || value <= 0 {
			continue
		}
		values = append(values, value)
	}
	return values
}

func isToleranceNote(text string) bool {
	lowered := strings.ToLower(text)
	return strings.Contains(lowered, "tolerance") || strings.Contains(lowered, "tolérance")
}
