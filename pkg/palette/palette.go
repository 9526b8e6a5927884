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

// Package palette holds the built-in color replacement tables.
package palette

import (
	"sort"

	"github.com/walteh/recolor/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// DefaultName is the palette used when none is configured
const DefaultName = "green-to-blue"

// ErrUnknownPalette is returned by Lookup for names that are not registered
var ErrUnknownPalette = errors.Base("unknown palette")

// 🎨 Palette is a named, ordered replacement table
type Palette struct {
	Name        string
	Description string
	Message     string
	rules       []text.ReplacementRule
}

// Rules returns a copy of the palette's replacement table
func (p *Palette) Rules() []text.ReplacementRule {
	out := make([]text.ReplacementRule, len(p.rules))
	copy(out, p.rules)
	return out
}

// greenToBlue swaps the Tailwind green accents for blue ones.
// Both comma spacings of the rgba prefix are listed; alpha is left alone.
var greenToBlue = &Palette{
	Name:        DefaultName,
	Description: "Tailwind green-500/600/200/950 accents to blue-500/600/300 and a deep navy",
	Message:     "Colors updated from green to blue successfully!",
	rules: []text.ReplacementRule{
		{FromText: "#22c55e", ToText: "#3b82f6"},
		{FromText: "rgba(34, 197, 94", ToText: "rgba(59, 130, 246"},
		{FromText: "rgba(34,197,94", ToText: "rgba(59,130,246"},
		{FromText: "#16a34a", ToText: "#2563eb"},
		{FromText: "#bbf7d0", ToText: "#93c5fd"},
		{FromText: "#022c22", ToText: "#0c1e3d"},
	},
}

var registry = map[string]*Palette{
	greenToBlue.Name: greenToBlue,
}

// Default returns the green-to-blue palette
func Default() *Palette {
	return greenToBlue
}

// Lookup returns the palette registered under name
func Lookup(name string) (*Palette, error) {
	p, ok := registry[name]
	if !ok {
		return nil, errors.Errorf("%w: %s", ErrUnknownPalette, name)
	}
	return p, nil
}

// Names returns the registered palette names, sorted
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
