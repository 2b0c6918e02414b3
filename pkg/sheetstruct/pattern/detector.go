// Package pattern classifies ordered value sequences (typically header rows
// or header columns) into structural shapes: uniform, repeating block, date
// sequence, prefix-grouped, list, or varied.
package pattern

import (
	"strings"

	"github.com/ukaji3/sheetstruct-go/pkg/sheetstruct/models"
)

// Params holds tuning thresholds for pattern detection. The ratio values
// are carried over from field-tuned defaults; their exact figures have no
// documented derivation.
type Params struct {
	// MaxBlockSize is the largest repeating block size tried.
	MaxBlockSize int
	// BlockMatchRatio is the fraction of blocks that must match the
	// template for a repeating pattern to be accepted.
	BlockMatchRatio float64
	// DateRatio is the fraction of values that must be date-shaped for a
	// date sequence to be accepted.
	DateRatio float64
	// PrefixRatio is the fraction of values the dominant prefix must cover.
	PrefixRatio float64
	// MinSequenceItems is the minimum non-blank count for the date check.
	MinSequenceItems int
	// MinPrefixItems is the non-blank count the prefix check requires the
	// sequence to exceed.
	MinPrefixItems int
	// MaxListValues is the largest distinct-value count reported as a list.
	MaxListValues int
	// SampleSize is the number of leading values kept as a sample.
	SampleSize int
	// VariedSampleSize is the sample size for the varied fallback.
	VariedSampleSize int
}

// DefaultParams returns the default detection parameters.
func DefaultParams() Params {
	return Params{
		MaxBlockSize:     10,
		BlockMatchRatio:  0.7,
		DateRatio:        0.7,
		PrefixRatio:      0.3,
		MinSequenceItems: 3,
		MinPrefixItems:   5,
		MaxListValues:    20,
		SampleSize:       5,
		VariedSampleSize: 10,
	}
}

// Detect classifies a value sequence with default parameters. Empty strings
// count as blank elements. It always returns exactly one variant and is
// deterministic for identical input.
func Detect(values []string) models.Pattern {
	return DetectWithParams(values, DefaultParams())
}

// DetectWithParams classifies a value sequence. The classification is a
// strict priority chain: empty, all_empty, single, uniform, repeating,
// date_sequence, varied_with_prefix, then list or varied.
func DetectWithParams(values []string, p Params) models.Pattern {
	if len(values) == 0 {
		return models.Pattern{Type: models.PatternEmpty}
	}

	nonEmpty := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			nonEmpty = append(nonEmpty, v)
		}
	}

	if len(nonEmpty) == 0 {
		return models.Pattern{Type: models.PatternAllEmpty, Count: len(values)}
	}
	if len(nonEmpty) == 1 {
		return models.Pattern{Type: models.PatternSingle, Value: nonEmpty[0]}
	}
	if allEqual(nonEmpty) {
		return models.Pattern{
			Type:  models.PatternUniform,
			Value: nonEmpty[0],
			Count: len(values),
		}
	}

	if result, ok := detectRepeating(nonEmpty, p); ok {
		return result
	}

	if len(nonEmpty) >= p.MinSequenceItems {
		dateCount := 0
		for _, v := range nonEmpty {
			if isDateShaped(v) {
				dateCount++
			}
		}
		if float64(dateCount) > float64(len(nonEmpty))*p.DateRatio {
			return models.Pattern{
				Type:   models.PatternDateSequence,
				Count:  len(nonEmpty),
				First:  nonEmpty[0],
				Last:   nonEmpty[len(nonEmpty)-1],
				Sample: sample(nonEmpty, p.SampleSize),
			}
		}
	}

	if len(nonEmpty) > p.MinPrefixItems {
		if prefix, count, ok := dominantPrefix(nonEmpty, p.PrefixRatio); ok {
			return models.Pattern{
				Type:         models.PatternVariedWithPrefix,
				CommonPrefix: prefix,
				PrefixCount:  count,
				Total:        len(nonEmpty),
				Sample:       sample(nonEmpty, p.SampleSize),
			}
		}
	}

	unique := distinct(nonEmpty)
	if len(unique) <= p.MaxListValues {
		return models.Pattern{
			Type:   models.PatternList,
			Values: unique,
			Total:  len(values),
		}
	}
	return models.Pattern{
		Type:        models.PatternVaried,
		UniqueCount: len(unique),
		Total:       len(values),
		Sample:      sample(nonEmpty, p.VariedSampleSize),
	}
}

// detectRepeating searches for a periodic block structure. Block sizes are
// tried in increasing order, so the smallest size clearing the match ratio
// wins. A trailing partial block is dropped; at least two complete blocks
// are required.
func detectRepeating(nonEmpty []string, p Params) (models.Pattern, bool) {
	maxSize := len(nonEmpty) / 2
	if maxSize > p.MaxBlockSize {
		maxSize = p.MaxBlockSize
	}

	for blockSize := 1; blockSize <= maxSize; blockSize++ {
		var blocks [][]string
		for i := 0; i+blockSize <= len(nonEmpty); i += blockSize {
			blocks = append(blocks, nonEmpty[i:i+blockSize])
		}
		if len(blocks) < 2 {
			continue
		}

		template := blockTemplate(blocks[0], blockSize)
		if allPlaceholders(template) {
			// A template with no literal cell matches any run of dates
			// or numbers and would mask the date sequence check.
			continue
		}

		matching := 1 // first block defines the template
		var breaks []models.Break
		for idx := 1; idx < len(blocks); idx++ {
			if equalSlices(blockTemplate(blocks[idx], blockSize), template) {
				matching++
			} else {
				breaks = append(breaks, models.Break{
					BlockIndex:       idx,
					Position:         idx * blockSize,
					ExpectedTemplate: template,
					ActualValues:     blocks[idx],
				})
			}
		}

		if acceptBlocks(matching, len(blocks), p.BlockMatchRatio) {
			return models.Pattern{
				Type:             models.PatternRepeating,
				BlockSize:        blockSize,
				Template:         template,
				RepeatCount:      len(blocks),
				TotalItems:       len(nonEmpty),
				SampleFirstBlock: blocks[0],
				Breaks:           breaks,
			}, true
		}
	}
	return models.Pattern{}, false
}

// acceptBlocks decides whether enough blocks matched the template. A
// single deviating block never discards an otherwise periodic sequence,
// regardless of how few blocks there are (two matching blocks minimum).
func acceptBlocks(matching, total int, ratio float64) bool {
	if float64(matching) >= float64(total)*ratio {
		return true
	}
	return total >= 3 && matching == total-1
}

// blockTemplate maps a block to its comparison template. Dates and numbers
// generalize to <date> and <number> placeholders, but only for blocks of
// two or more cells: a single-cell block has no internal shape, and
// generalizing it would collapse every date or number column into a
// degenerate size-1 repeating pattern.
func blockTemplate(block []string, blockSize int) []string {
	if blockSize < 2 {
		return block
	}
	template := make([]string, len(block))
	for i, v := range block {
		switch {
		case isDateShaped(v):
			template[i] = "<date>"
		case isNumberShaped(v):
			template[i] = "<number>"
		default:
			template[i] = v
		}
	}
	return template
}

func allPlaceholders(template []string) bool {
	for _, v := range template {
		if v != "<date>" && v != "<number>" {
			return false
		}
	}
	return true
}

// dominantPrefix tallies a prefix per value (the token before the first
// space, else the first five characters) and reports the most frequent one
// if it covers more than ratio of the values.
func dominantPrefix(values []string, ratio float64) (string, int, bool) {
	counts := make(map[string]int)
	var order []string
	for _, v := range values {
		p := prefixOf(v)
		if _, seen := counts[p]; !seen {
			order = append(order, p)
		}
		counts[p]++
	}

	best := ""
	bestCount := 0
	for _, p := range order {
		if counts[p] > bestCount {
			best = p
			bestCount = counts[p]
		}
	}

	if float64(bestCount) > float64(len(values))*ratio {
		return best, bestCount, true
	}
	return "", 0, false
}

func prefixOf(v string) string {
	if strings.Contains(v, " ") {
		if fields := strings.Fields(v); len(fields) > 0 {
			return fields[0]
		}
	}
	runes := []rune(v)
	if len(runes) > 5 {
		runes = runes[:5]
	}
	return string(runes)
}

func allEqual(values []string) bool {
	for _, v := range values[1:] {
		if v != values[0] {
			return false
		}
	}
	return true
}

func equalSlices(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// distinct returns the unique values preserving first-occurrence order.
func distinct(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	var unique []string
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		unique = append(unique, v)
	}
	return unique
}

func sample(values []string, n int) []string {
	if len(values) > n {
		values = values[:n]
	}
	out := make([]string, len(values))
	copy(out, values)
	return out
}
