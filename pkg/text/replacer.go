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
	"path"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// ReplacementRule defines a single literal text replacement
type ReplacementRule struct {
	// FromText is the text to replace
	FromText string `json:"old" yaml:"old"`

	// ToText is the replacement text
	ToText string `json:"new" yaml:"new"`

	// FileFilterGlob limits the rule to files matching the glob. Empty matches every file.
	FileFilterGlob string `json:"file,omitempty" yaml:"file,omitempty"`
}

// AppliesTo reports whether the rule should run against the file at filePath.
// The glob is tried against the full path first, then the base name.
func (r ReplacementRule) AppliesTo(filePath string) bool {
	if r.FileFilterGlob == "" {
		return true
	}
	slashed := path.Clean(filepath.ToSlash(filePath))
	if ok, _ := doublestar.Match(r.FileFilterGlob, slashed); ok {
		return true
	}
	ok, _ := doublestar.Match(r.FileFilterGlob, path.Base(slashed))
	return ok
}

// ReplacementResult contains the results of a text replacement operation
type ReplacementResult struct {
	// WasModified indicates if any replacements were made
	WasModified bool

	// ReplacementCount is the number of replacements made
	ReplacementCount int

	// RuleCounts holds the number of replacements per rule, in rule order
	RuleCounts []int

	// OriginalContent is the content before replacements
	OriginalContent []byte

	// ModifiedContent is the content after replacements
	ModifiedContent []byte
}

// TextReplacer defines the interface for text replacement operations
type TextReplacer interface {
	// ReplaceText applies a set of replacement rules to the content
	// Returns a ReplacementResult containing the modified content and metadata
	ReplaceText(ctx context.Context, content io.Reader, rules []ReplacementRule) (*ReplacementResult, error)

	// ValidateRules checks that all rules are valid
	ValidateRules(rules []ReplacementRule) error
}

// FilterRules returns the rules that apply to filePath, preserving order.
func FilterRules(rules []ReplacementRule, filePath string) []ReplacementRule {
	out := make([]ReplacementRule, 0, len(rules))
	for _, rule := range rules {
		if rule.AppliesTo(filePath) {
			out = append(out, rule)
		}
	}
	return out
}
