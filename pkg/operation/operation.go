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
	"context"

	"gitlab.com/tozd/go/errors"

	"github.com/walteh/recolor/pkg/fileio"
	"github.com/walteh/recolor/pkg/text"
)

// 🎯 Operation is a unit of work run against the filesystem
type Operation interface {
	Execute(ctx context.Context) error
}

// 🔧 Options contains configuration for an operation
type Options struct {
	// Target is the file to rewrite in place
	Target string
	// Rules is the ordered replacement table
	Rules []text.ReplacementRule
	// Message is printed after a successful write, whatever the match count
	Message string
	// Files performs the read and the atomic write
	Files fileio.FileManager
	// Replacer applies the rules; defaults to text.SimpleTextReplacer
	Replacer text.TextReplacer
}

func (o Options) validate() error {
	if o.Target == "" {
		return errors.Errorf("target is required")
	}
	if o.Files == nil {
		return errors.Errorf("file manager is required")
	}
	return nil
}
