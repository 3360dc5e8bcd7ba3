// Copyright 2025 the mirrorpub authors
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

package status

import (
	"fmt"

	"github.com/fatih/color"
)

// 🎨 Display configuration
const (
	fileIndent = 4  // spaces to indent file entries
	nameWidth  = 45 // base width for the relative path
)

// 📝 formatFileLine renders a single per-file console line.
func formatFileLine(info FileInfo) string {
	var symbol rune
	var symbolColor color.Attribute
	switch info.Status {
	case StatusDeleted:
		symbol = '✗'
		symbolColor = color.FgRed
	case StatusNew:
		symbol = '✓'
		symbolColor = color.FgGreen
	case StatusModified:
		symbol = '⟳'
		symbolColor = color.FgBlue
	case StatusUnchanged:
		symbol = '•'
		symbolColor = color.FgCyan
	default:
		symbol = '?'
		symbolColor = color.FgYellow
	}

	coloredSymbol := color.New(symbolColor).Sprintf("%c", symbol)
	statusText := color.New(color.Faint).Sprint(info.Status.String())

	return fmt.Sprintf("%*s%s %-*s %s",
		fileIndent, "",
		coloredSymbol,
		nameWidth, info.Path,
		statusText,
	)
}
