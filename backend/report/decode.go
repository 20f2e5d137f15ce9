package report

import (
	"regexp"
	"strconv"
	"strings"
)

// Field is one named column of a record kind. Match resolves it in a
// vertical sheet; Suffix locates the companion column next to a numbered
// group in a horizontal one.
type Field struct {
	Name   string
	Match  Matcher
	Suffix string
}

// RecordSpec declares one numbered record kind. In a horizontal sheet its
// groups are seeded by headers shaped <subject>_<kind><N>; in a vertical
// sheet each data row is one record and fields resolve by matcher.
type RecordSpec struct {
	Kind    string
	Primary Field
	Fields  []Field
}

// Record is one decoded record: "subject", the primary field, and every
// companion field, with absent companions defaulting to "".
type Record map[string]string

// Group is one fixed-suffix group decoded from a student's row, e.g. the
// math_progress/math_grade column pair.
type Group struct {
	Key    string            // raw lowercase key, kept for matching
	Label  string            // display form ("social_studies" -> "Social Studies")
	Values map[string]string // suffix -> cell value
}

// DecodeSuffixGroups scans headers ending in the primary suffix, strips it
// to get a group key, and resolves sibling columns by re-appending each
// companion suffix. A group is emitted only when its primary cell passes
// valid; failing groups are dropped silently.
func DecodeSuffixGroups(headers, row []string, primarySuffix string, valid func(primary string) bool, companions ...string) []Group {
	idx := headerIndex(headers)

	var groups []Group
	for i, h := range headers {
		name := strings.ToLower(strings.TrimSpace(h))
		if !strings.HasSuffix(name, primarySuffix) {
			continue
		}
		key := strings.TrimSuffix(name, primarySuffix)
		if key == "" {
			continue
		}

		primary := cell(row, i)
		if valid != nil && !valid(primary) {
			continue
		}

		values := map[string]string{primarySuffix: primary}
		for _, suffix := range companions {
			col, ok := idx[key+suffix]
			if !ok {
				col = NotFound
			}
			values[suffix] = cell(row, col)
		}

		groups = append(groups, Group{
			Key:    key,
			Label:  displayLabel(key),
			Values: values,
		})
	}
	return groups
}

// DecodeRecords extracts every record of one kind for a student,
// polymorphic over the sheet shape.
func DecodeRecords(t Table, key string, shape Shape, spec RecordSpec) []Record {
	if shape == Vertical {
		return decodeVertical(t, key, spec)
	}
	return decodeHorizontal(t.Headers(), studentRow(t, key), spec)
}

// decodeHorizontal scans the student's single row for numbered pattern
// groups (<subject>_<kind><N>) and their exact-suffix companions. A group
// is emitted only when the seed cell is non-blank; missing companions
// default to "" and never drop the group.
func decodeHorizontal(headers, row []string, spec RecordSpec) []Record {
	if len(row) == 0 {
		return nil
	}

	seed := regexp.MustCompile(`^(.+)_` + spec.Kind + `([0-9]+)$`)
	idx := headerIndex(headers)

	var records []Record
	for i, h := range headers {
		name := strings.ToLower(strings.TrimSpace(h))
		m := seed.FindStringSubmatch(name)
		if m == nil {
			continue
		}

		primary := cell(row, i)
		if primary == "" {
			continue
		}

		rec := Record{
			"subject":          displayLabel(m[1]),
			spec.Primary.Name: primary,
		}
		for _, f := range spec.Fields {
			col, ok := idx[name+f.Suffix]
			if !ok {
				col = NotFound
			}
			rec[f.Name] = cell(row, col)
		}
		records = append(records, rec)
	}
	return records
}

// decodeVertical treats every matching data row as one record, resolving
// each field through its matcher. Records with a blank primary cell are
// dropped, mirroring the horizontal validity rule.
func decodeVertical(t Table, key string, spec RecordSpec) []Record {
	rows, err := FilterRows(t, key)
	if err != nil {
		// No key column on a secondary sheet: empty records, not an error.
		return nil
	}

	headers := t.Headers()
	subjectCol := FindColumn(headers, Contains("subject"))
	primaryCol := FindColumn(headers, spec.Primary.Match)
	cols := make([]int, len(spec.Fields))
	for i, f := range spec.Fields {
		cols[i] = FindColumn(headers, f.Match)
	}

	var records []Record
	for _, row := range rows {
		primary := cell(row, primaryCol)
		if primary == "" {
			continue
		}
		rec := Record{
			"subject":          cell(row, subjectCol),
			spec.Primary.Name: primary,
		}
		for i, f := range spec.Fields {
			rec[f.Name] = cell(row, cols[i])
		}
		records = append(records, rec)
	}
	return records
}

// positiveNumber is the minimum-validity predicate for numeric primaries
// (progress > 0, working days > 0).
func positiveNumber(s string) bool {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return err == nil && v > 0
}

// parseNumber reads a numeric cell, defaulting to 0 on anything malformed.
func parseNumber(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}
