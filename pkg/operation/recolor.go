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

package operation

import (
	"bytes"
	"context"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/recolor/pkg/log"
	"github.com/walteh/recolor/pkg/text"
)

// ErrInvalidEncoding is returned when the target is not valid UTF-8
var ErrInvalidEncoding = errors.Base("content is not valid UTF-8")

// 📊 Report describes what a recolor run did
type Report struct {
	Target  string
	Applied []text.ReplacementRule // rules that matched the target's file filter
	Skipped []text.ReplacementRule // rules filtered out by FileFilterGlob
	Result  *text.ReplacementResult
}

// 🎨 RecolorOperation rewrites one file with a literal replacement table
type RecolorOperation struct {
	opts   Options
	report *Report
}

var _ Operation = (*RecolorOperation)(nil)

// 🏭 NewRecolorOperation creates a new recolor operation
func NewRecolorOperation(opts Options) *RecolorOperation {
	if opts.Replacer == nil {
		opts.Replacer = text.NewSimpleTextReplacer()
	}
	return &RecolorOperation{opts: opts}
}

// Report returns the outcome of the last Execute, or nil if it has not completed
func (op *RecolorOperation) Report() *Report {
	return op.report
}

// 🏃 Execute reads the target, applies the rules and atomically replaces the file.
// A run that matches nothing still rewrites the file and reports success.
func (op *RecolorOperation) Execute(ctx context.Context) error {
	if err := op.opts.validate(); err != nil {
		return errors.Errorf("invalid options: %w", err)
	}

	logger := zerolog.Ctx(ctx).With().Str("target", op.opts.Target).Logger()
	ulog := log.FromContext(ctx)

	if err := op.opts.Replacer.ValidateRules(op.opts.Rules); err != nil {
		return errors.Errorf("validating rules: %w", err)
	}

	for _, c := range text.FindCascades(op.opts.Rules) {
		ulog.Warningf("output of %q contains %q; it will not be replaced again",
			op.opts.Rules[c.Producer].ToText, op.opts.Rules[c.Consumer].FromText)
	}

	content, err := op.opts.Files.ReadFile(ctx, op.opts.Target)
	if err != nil {
		return errors.Errorf("reading %s: %w", op.opts.Target, err)
	}
	if !utf8.Valid(content) {
		return errors.Errorf("reading %s: %w", op.opts.Target, ErrInvalidEncoding)
	}

	report := &Report{Target: op.opts.Target, Applied: text.FilterRules(op.opts.Rules, op.opts.Target)}
	next := 0
	for _, rule := range op.opts.Rules {
		if next < len(report.Applied) && report.Applied[next] == rule {
			next++
			continue
		}
		report.Skipped = append(report.Skipped, rule)
		logger.Debug().Str("from", rule.FromText).Str("glob", rule.FileFilterGlob).Msg("rule does not apply to target")
	}
	if len(report.Skipped) > 0 {
		ulog.Infof("%d of %d rules do not apply to %s", len(report.Skipped), len(op.opts.Rules), op.opts.Target)
	}

	result, err := op.opts.Replacer.ReplaceText(ctx, bytes.NewReader(content), report.Applied)
	if err != nil {
		return errors.Errorf("replacing text: %w", err)
	}
	report.Result = result

	if err := op.opts.Files.WriteFileAtomic(ctx, op.opts.Target, result.ModifiedContent); err != nil {
		return errors.Errorf("writing %s: %w", op.opts.Target, err)
	}

	for i, rule := range report.Applied {
		ulog.LogRule(ctx, log.RuleOperation{From: rule.FromText, To: rule.ToText, Count: result.RuleCounts[i]})
	}
	for _, rule := range report.Skipped {
		ulog.LogRule(ctx, log.RuleOperation{From: rule.FromText, To: rule.ToText, Skipped: true})
	}
	if err := ulog.Summary(ctx); err != nil {
		logger.Debug().Err(err).Msg("rendering summary")
	}

	logger.Info().
		Int("replacements", result.ReplacementCount).
		Bool("modified", result.WasModified).
		Msg("recolor complete")

	ulog.Success(op.opts.Message)

	op.report = report
	return nil
}

// 🎯 Run executes a recolor operation and returns its report
func Run(ctx context.Context, opts Options) (*Report, error) {
	op := NewRecolorOperation(opts)
	if err := op.Execute(ctx); err != nil {
		return nil, err
	}
	return op.Report(), nil
}
