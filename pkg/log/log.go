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

package log

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

// 🎨 Display configuration
const (
	ruleIndent = 4  // spaces to indent rule entries
	fromWidth  = 20 // width of the old value column
	toWidth    = 20 // width of the new value column
)

// 🎯 RuleOperation is one replacement rule applied to a file
type RuleOperation struct {
	From    string // Text that was searched for
	To      string // Replacement text
	Count   int    // Number of replacements made
	Skipped bool   // Rule did not apply to this file
}

// 🎯 Logger writes user-facing lines to a console and mirrors them to zerolog
type Logger struct {
	zlog    zerolog.Logger
	console io.Writer
	mu      sync.Mutex
	rules   []RuleOperation
}

// 🏭 New creates a new logger
func New(console io.Writer, zlog zerolog.Logger) *Logger {
	return &Logger{
		zlog:    zlog,
		console: console,
	}
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context
func FromContext(ctx context.Context) *Logger {
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	if !ok {
		panic("logger not found in context")
	}
	return logger
}

// 🎯 NewContext adds the logger to context, along with its zerolog logger
func NewContext(ctx context.Context, l *Logger) context.Context {
	ctx = l.zlog.WithContext(ctx)
	return context.WithValue(ctx, contextKey{}, l)
}

// 📝 formatRuleOperation formats a rule for display
func (l *Logger) formatRuleOperation(op RuleOperation) string {
	var symbol rune
	var symbolColor color.Attribute
	var status string
	switch {
	case op.Skipped:
		symbol = '-'
		symbolColor = color.FgYellow
		status = "skipped"
	case op.Count > 0:
		symbol = '⟳'
		symbolColor = color.FgBlue
		status = fmt.Sprintf("%d replaced", op.Count)
	default:
		symbol = '•'
		symbolColor = color.FgCyan
		status = "no match"
	}

	return fmt.Sprintf("%s%s %s → %s %s",
		fmt.Sprintf("%*s", ruleIndent, ""),
		color.New(symbolColor).Sprint(string(symbol)),
		fmt.Sprintf("%-*s", fromWidth, op.From),
		fmt.Sprintf("%-*s", toWidth, op.To),
		status)
}

// 📝 LogRule logs a rule and records it for the summary
func (l *Logger) LogRule(ctx context.Context, op RuleOperation) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.rules = append(l.rules, op)

	fmt.Fprintln(l.console, l.formatRuleOperation(op))

	l.zlog.Info().
		Str("from", op.From).
		Str("to", op.To).
		Int("count", op.Count).
		Bool("skipped", op.Skipped).
		Msg("replacement rule")
}

// 📝 Summary renders a table of every rule logged so far, then forgets them
func (l *Logger) Summary(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.rules) == 0 {
		return nil
	}

	total := 0
	data := pterm.TableData{{"old", "new", "count"}}
	for _, op := range l.rules {
		count := fmt.Sprint(op.Count)
		if op.Skipped {
			count = "-"
		}
		total += op.Count
		data = append(data, []string{op.From, op.To, count})
	}
	data = append(data, []string{"", "total", fmt.Sprint(total)})

	l.zlog.Info().Int("rules", len(l.rules)).Int("replacements", total).Msg("replacement summary")
	l.rules = nil

	fmt.Fprintln(l.console)
	return pterm.DefaultTable.
		WithHasHeader().
		WithWriter(l.console).
		WithData(data).
		Render()
}

// 📝 Header logs a header
func (l *Logger) Header(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	name := color.New(color.Bold, color.FgCyan).Sprint("recolor")
	fmt.Fprintf(l.console, "\n%s %s\n\n", name, color.New(color.Faint).Sprint("• "+msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Success logs a success message
func (l *Logger) Success(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "✅ %s\n", color.New(color.FgGreen).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Warning logs a warning message
func (l *Logger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "⚠️  %s\n", color.New(color.FgYellow).Sprint(msg))
	l.zlog.Warn().Msg(msg)
}

// 📝 Error logs an error message
func (l *Logger) Error(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "❌ %s\n", color.New(color.FgRed).Sprint(msg))
	l.zlog.Error().Msg(msg)
}

// 📝 Info logs an info message
func (l *Logger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "ℹ️  %s\n", color.New(color.FgCyan).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Infof logs a formatted info message
func (l *Logger) Infof(format string, args ...interface{}) {
	l.Info(fmt.Sprintf(format, args...))
}

// 📝 Warningf logs a formatted warning message
func (l *Logger) Warningf(format string, args ...interface{}) {
	l.Warning(fmt.Sprintf(format, args...))
}
