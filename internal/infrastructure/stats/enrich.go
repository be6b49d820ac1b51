package stats

import (
	"bytes"
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"talent-pool/internal/domain/candidate"
)

// Stat is one provider record. Absent or null fields stay nil.
type Stat struct {
	Slug            string          `json:"slug"`
	PopularityScore *FlexInt        `json:"popularityScore"`
	AverageSalary   *FlexInt        `json:"averageSalary"`
	CategoryKey     *FlexString     `json:"categoryKey"`
	Description     *FlexString     `json:"description"`
	UpdatedAt       json.RawMessage `json:"updatedAt"`
}

// FlexInt accepts a JSON number or a numeric string. Fractions are truncated.
type FlexInt struct {
	Value int
	Valid bool
}

func (f *FlexInt) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		return nil
	}
	raw := string(b)
	if b[0] == '"' {
		if err := json.Unmarshal(b, &raw); err != nil {
			return nil
		}
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		// unusable values are treated as absent rather than failing the batch
		return nil
	}
	f.Value = int(v)
	f.Valid = true
	return nil
}

// FlexString accepts any JSON scalar and keeps its text form.
type FlexString struct {
	Value string
	Valid bool
}

func (f *FlexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		return nil
	}
	switch b[0] {
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return nil
		}
		f.Value = s
	case '{', '[':
		return nil
	default:
		f.Value = string(b)
	}
	f.Valid = true
	return nil
}

// Enrich merges stats into refs in place. Only fields present in the matching
// record are overwritten; refs without a slug or without a record are left as is.
func Enrich(refs []*candidate.SkillRef, statsBySlug map[string]Stat) {
	if len(refs) == 0 || len(statsBySlug) == 0 {
		return
	}
	for _, r := range refs {
		if r == nil || r.Slug == "" {
			continue
		}
		st, ok := statsBySlug[normalizeSlug(r.Slug)]
		if !ok {
			continue
		}

		if st.PopularityScore != nil && st.PopularityScore.Valid {
			v := st.PopularityScore.Value
			r.PopularityScore = &v
		}
		if st.AverageSalary != nil && st.AverageSalary.Valid {
			v := st.AverageSalary.Value
			r.AverageSalary = &v
		}
		if st.CategoryKey != nil && st.CategoryKey.Valid {
			v := st.CategoryKey.Value
			r.CategoryKey = &v
		}
		if st.Description != nil && st.Description.Valid {
			v := st.Description.Value
			r.Description = &v
		}
		if ts, ok := ParseUpdatedAt(st.UpdatedAt); ok {
			r.UpdatedAt = &ts
		}
	}
}

var numericRe = regexp.MustCompile(`^\d+(\.\d+)?$`)

const (
	epochMillisThreshold = 1_000_000_000_000
	// Bounds int64 conversion; anything this large is past year 9999 anyway.
	maxEpochMagnitude = 1e17
)

var offsetLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04Z07:00",
}

var localLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// ParseUpdatedAt reads a provider timestamp: epoch seconds or milliseconds
// (values above 10^12 are milliseconds), as a number or numeric string;
// ISO date-time with offset; or an ISO local date-time taken as UTC.
// Years outside 0..9999 are rejected since they cannot be rendered as JSON.
func ParseUpdatedAt(raw json.RawMessage) (time.Time, bool) {
	t, ok := parseUpdatedAt(raw)
	if !ok || t.Year() < 0 || t.Year() > 9999 {
		return time.Time{}, false
	}
	return t, true
}

func parseUpdatedAt(raw json.RawMessage) (time.Time, bool) {
	b := bytes.TrimSpace(raw)
	if len(b) == 0 || string(b) == "null" {
		return time.Time{}, false
	}

	if b[0] != '"' {
		f, err := strconv.ParseFloat(string(b), 64)
		if err != nil {
			return time.Time{}, false
		}
		return fromEpoch(f)
	}

	var text string
	if err := json.Unmarshal(b, &text); err != nil {
		return time.Time{}, false
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return time.Time{}, false
	}

	if numericRe.MatchString(text) {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return time.Time{}, false
		}
		return fromEpoch(f)
	}

	for _, layout := range offsetLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			return t, true
		}
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, text, time.UTC); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func fromEpoch(f float64) (time.Time, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(f) > maxEpochMagnitude {
		return time.Time{}, false
	}
	v := int64(f)
	if v > epochMillisThreshold {
		return time.UnixMilli(v).UTC(), true
	}
	return time.Unix(v, 0).UTC(), true
}
