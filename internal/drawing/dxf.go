package drawing

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	applog "materio/internal/log"
)

// dxfEntity accumulates the group codes of the entity currently being read.
// Only LINE, CIRCLE, and TEXT carry information the extractor uses.
type dxfEntity struct {
	kind   string
	coords map[int]float64
	text   string
}

// processDXF walks the drawing's group-code pairs, measures LINE lengths and
// CIRCLE diameters, and scans TEXT entities for material declarations,
// tolerances, and annotations. The three largest measurements become the
// principal dimensions.
func processDXF(ctx context.Context, path string, result *Result) {
	file, err := os.Open(path)
	if err != nil {
		result.Error = fmt.Sprintf("error processing DXF: %v", err)
		return
	}
	defer file.Close()

	entities, err := readDXFEntities(file)
	if err != nil {
		applog.Error(ctx, "dxf parse failed", "path", path, "error", err)
		result.Error = fmt.Sprintf("error processing DXF: %v", err)
		return
	}

	var measurements []float64
	for _, entity := range entities {
		switch entity.kind {
		case "LINE":
			x1, y1 := entity.coords[10], entity.coords[20]
			x2, y2 := entity.coords[11], entity.coords[21]
			length := math.Hypot(x2-x1, y2-y1)
			if length > 0 {
				measurements = append(measurements, length)
			}
		case "CIRCLE":
			if radius := entity.coords[40]; radius > 0 {
				measurements = append(measurements, radius*2)
			}
		case "TEXT", "MTEXT":
			content := strings.ToLower(strings.TrimSpace(entity.text))
			if content == "" {
				continue
			}
			if material := scanMaterial(content); material != "" {
				result.Material = material
			}
			if isToleranceNote(content) {
				result.Tolerances = append(result.Tolerances, content)
			} else {
				result.Annotations = append(result.Annotations, content)
			}
		}
	}

	result.Dimensions = principalDimensions(measurements)
	if !result.Dimensions.Empty() {
		result.Volume = result.Dimensions.Volume()
	}

	applog.Debug(ctx, "dxf processed",
		"entities", len(entities),
		"measurements", len(measurements),
		"volume", result.Volume,
	)
}

// readDXFEntities scans the code/value pair stream of a DXF file. A group
// code of 0 starts a new record; coordinate and radius codes are collected
// per entity. Unknown entity types are carried through and ignored by the
// caller.
func readDXFEntities(r io.Reader) ([]dxfEntity, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	var entities []dxfEntity
	var current *dxfEntity

	flush := func() {
		if current != nil {
			entities = append(entities, *current)
			current = nil
		}
	}

	for {
		code, value, ok, err := readGroupPair(scanner)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}

		if code == 0 {
			flush()
			if value == "EOF" {
				break
			}
			current = &dxfEntity{kind: value, coords: map[int]float64{}}
			continue
		}

		if current == nil {
			continue
		}

		switch code {
		case 10, 20, 11, 21, 40:
			parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
			if err == nil {
				current.coords[code] = parsed
			}
		case 1:
			current.text = value
		}
	}

	flush()
	return entities, nil
}

func readGroupPair(scanner *bufio.Scanner) (int, string, bool, error) {
	if !scanner.Scan() {
		return 0, "", false, scanner.Err()
	}
	codeLine := strings.TrimSpace(scanner.Text())

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return 0, "", false, err
		}
		return 0, "", false, fmt.Errorf("truncated group pair after code %q", codeLine)
	}
	value := strings.TrimSpace(scanner.Text())

	code, err := strconv.Atoi(codeLine)
	if err != nil {
		return 0, "", false, fmt.Errorf("invalid group code %q", codeLine)
	}
	return code, value, true, nil
}
