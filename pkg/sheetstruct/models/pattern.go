package models

// PatternType identifies the structural shape detected in a value sequence.
type PatternType string

const (
	// PatternEmpty means the sequence has zero elements.
	PatternEmpty PatternType = "empty"
	// PatternAllEmpty means every element is blank.
	PatternAllEmpty PatternType = "all_empty"
	// PatternSingle means exactly one element is non-blank.
	PatternSingle PatternType = "single"
	// PatternUniform means all non-blank elements are identical.
	PatternUniform PatternType = "uniform"
	// PatternRepeating means the sequence is built from a repeating block.
	PatternRepeating PatternType = "repeating"
	// PatternDateSequence means the values are mostly date-shaped.
	PatternDateSequence PatternType = "date_sequence"
	// PatternVariedWithPrefix means a dominant shared textual prefix exists.
	PatternVariedWithPrefix PatternType = "varied_with_prefix"
	// PatternList means a small set of distinct values with no structure.
	PatternList PatternType = "list"
	// PatternVaried means many distinct values with no detected structure.
	PatternVaried PatternType = "varied"
)

// Break records a block that failed to match the dominant template inside
// an otherwise-repeating sequence.
type Break struct {
	// BlockIndex is the index of the non-matching block.
	BlockIndex int `json:"block_index"`
	// Position is the block's start position in the non-blank sequence.
	Position int `json:"position"`
	// ExpectedTemplate is the template the block was compared against.
	ExpectedTemplate []string `json:"expected_template"`
	// ActualValues holds the block's raw values.
	ActualValues []string `json:"actual_values"`
}

// Pattern is the result of structural pattern detection over a value
// sequence. Type selects the variant; only the fields belonging to that
// variant are populated, everything else is omitted from JSON.
type Pattern struct {
	Type PatternType `json:"type"`

	// Value is the single or uniform value (single, uniform).
	Value string `json:"value,omitempty"`
	// Count is the element count; it covers all elements for all_empty and
	// uniform, and non-blank elements for date_sequence.
	Count int `json:"count,omitempty"`

	// BlockSize is the detected repeating block size (repeating).
	BlockSize int `json:"block_size,omitempty"`
	// Template is the block template with dates and numbers generalized
	// to <date> and <number> placeholders (repeating).
	Template []string `json:"template,omitempty"`
	// RepeatCount is the number of complete blocks (repeating).
	RepeatCount int `json:"repeat_count,omitempty"`
	// TotalItems is the number of non-blank elements (repeating).
	TotalItems int `json:"total_items,omitempty"`
	// SampleFirstBlock holds the first block's raw values (repeating).
	SampleFirstBlock []string `json:"sample_first_block,omitempty"`
	// Breaks lists blocks that did not match the template (repeating).
	Breaks []Break `json:"breaks,omitempty"`

	// First is the first non-blank value (date_sequence).
	First string `json:"first,omitempty"`
	// Last is the last non-blank value (date_sequence).
	Last string `json:"last,omitempty"`
	// Sample holds leading non-blank values (date_sequence,
	// varied_with_prefix, varied).
	Sample []string `json:"sample,omitempty"`

	// CommonPrefix is the dominant shared prefix (varied_with_prefix).
	CommonPrefix string `json:"common_prefix,omitempty"`
	// PrefixCount is how many values carry the prefix (varied_with_prefix).
	PrefixCount int `json:"prefix_count,omitempty"`
	// Total is the element count; it covers non-blank elements for
	// varied_with_prefix and all elements for list and varied.
	Total int `json:"total,omitempty"`

	// Values holds the distinct values in first-occurrence order (list).
	Values []string `json:"values,omitempty"`
	// UniqueCount is the number of distinct non-blank values (varied).
	UniqueCount int `json:"unique_count,omitempty"`
}
