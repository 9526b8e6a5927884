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

package commands

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/recolor/pkg/palette"
)

// NewPalettesCmd creates the palettes command
func NewPalettesCmd(out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "palettes",
		Short: "List built-in palettes and their replacement tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range palette.Names() {
				p, err := palette.Lookup(name)
				if err != nil {
					return errors.Errorf("looking up palette: %w", err)
				}

				fmt.Fprintf(out, "%s %s\n",
					color.New(color.Bold, color.FgCyan).Sprint(p.Name),
					color.New(color.Faint).Sprint("• "+p.Description))

				data := pterm.TableData{{"old", "new"}}
				for _, r := range p.Rules() {
					data = append(data, []string{r.FromText, r.ToText})
				}
				if err := pterm.DefaultTable.WithHasHeader().WithWriter(out).WithData(data).Render(); err != nil {
					return errors.Errorf("rendering palette %s: %w", name, err)
				}
				fmt.Fprintln(out)
			}
			return nil
		},
	}
}
