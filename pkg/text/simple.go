// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package text

import (
	"context"
	"io"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// SimpleTextReplacer implements TextReplacer with literal matches against the original text
type SimpleTextReplacer struct{}

// NewSimpleTextReplacer creates a new SimpleTextReplacer
func NewSimpleTextReplacer() *SimpleTextReplacer {
	return &SimpleTextReplacer{}
}

// ReplaceText implements TextReplacer.ReplaceText
func (r *SimpleTextReplacer) ReplaceText(ctx context.Context, content io.Reader, rules []ReplacementRule) (*ReplacementResult, error) {
	originalContent, err := io.ReadAll(content)
	if err != nil {
		return nil, errors.Errorf("reading content: %w", err)
	}

	modified, counts := Replace(string(originalContent), rules)

	result := &ReplacementResult{
		OriginalContent: originalContent,
		ModifiedContent: []byte(modified),
		RuleCounts:      counts,
	}
	for i, n := range counts {
		if n == 0 {
			continue
		}
		result.WasModified = true
		result.ReplacementCount += n
		zerolog.Ctx(ctx).Debug().
			Str("from", rules[i].FromText).
			Str("to", rules[i].ToText).
			Int("count", n).
			Msg("applied replacement")
	}

	return result, nil
}

// ValidateRules implements TextReplacer.ValidateRules
func (r *SimpleTextReplacer) ValidateRules(rules []ReplacementRule) error {
	for i, rule := range rules {
		if rule.FromText == "" {
			return errors.Errorf("rule %d: from_text is required", i)
		}
		if rule.FileFilterGlob != "" && !doublestar.ValidatePattern(rule.FileFilterGlob) {
			return errors.Errorf("rule %d: invalid file_filter_glob %q", i, rule.FileFilterGlob)
		}
	}
	return nil
}

// Replace applies rules to content in table order. Every rule searches the
// original text, never another rule's output, and a match may not overlap a
// span already taken by an earlier rule. So when two rules overlap, the earlier
// rule wins even if the later one starts first. Rules with an empty FromText
// never match.
//
// The returned slice holds the number of replacements per rule.
func Replace(content string, rules []ReplacementRule) (string, []int) {
	counts := make([]int, len(rules))
	if len(rules) == 0 || content == "" {
		return content, counts
	}

	taken := make([]bool, len(content))
	var spans []span
	for idx, rule := range rules {
		if rule.FromText == "" {
			continue
		}
		for off := 0; off < len(content); {
			i := strings.Index(content[off:], rule.FromText)
			if i < 0 {
				break
			}
			start, end := off+i, off+i+len(rule.FromText)
			if slices.Contains(taken[start:end], true) {
				off = start + 1
				continue
			}
			for k := start; k < end; k++ {
				taken[k] = true
			}
			spans = append(spans, span{start: start, end: end, rule: idx})
			counts[idx]++
			off = end
		}
	}

	if len(spans) == 0 {
		return content, counts
	}
	slices.SortFunc(spans, func(a, b span) int { return a.start - b.start })

	var b strings.Builder
	b.Grow(len(content))
	last := 0
	for _, sp := range spans {
		b.WriteString(content[last:sp.start])
		b.WriteString(rules[sp.rule].ToText)
		last = sp.end
	}
	b.WriteString(content[last:])
	return b.String(), counts
}

// span is a matched byte range of the original content and the rule that owns it.
type span struct {
	start, end int
	rule       int
}

// Cascade describes a rule whose output contains the input of another rule.
type Cascade struct {
	// Producer is the index of the rule whose ToText contains the pattern
	Producer int
	// Consumer is the index of the rule whose FromText appears in the producer's output
	Consumer int
}

// FindCascades reports rule pairs where one rule's ToText contains a later
// rule's FromText. Replace never re-scans its own output, so these are not
// errors, but a sequential strategy would cascade on them.
func FindCascades(rules []ReplacementRule) []Cascade {
	var out []Cascade
	for i, producer := range rules {
		for j := i + 1; j < len(rules); j++ {
			if rules[j].FromText == "" {
				continue
			}
			if strings.Contains(producer.ToText, rules[j].FromText) {
				out = append(out, Cascade{Producer: i, Consumer: j})
			}
		}
	}
	return out
}
