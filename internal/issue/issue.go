// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"kindling-cli/pkg/types"
)

type (
	// MarkdownMsg is markdown text rendered for the terminal when an issue
	// is explained.
	MarkdownMsg string

	// Issue documents one reserved exit code: what it means and what the
	// user can do about it.
	Issue struct {
		code  types.ExitCode
		title string
		mdMsg MarkdownMsg
	}
)

// Code returns the reserved exit code the issue documents.
func (i *Issue) Code() types.ExitCode { return i.code }

// Title returns the issue's one-line summary.
func (i *Issue) Title() string { return i.title }

// Render returns the issue's explanation rendered for the terminal.
func (i *Issue) Render() (string, error) {
	return render(string(i.mdMsg), "auto")
}

// render is swappable in tests to avoid terminal detection.
var render = glamour.Render

var registry = map[types.ExitCode]*Issue{
	10: {
		code:  10,
		title: "launcher origin is not a local file location",
		mdMsg: `
# Exit 10: non-local origin

The launcher resolves its source tree relative to where its own executable
lives, and that location must be a plain ` + "`file://`" + ` path.

## Things you can try
- Run the launcher from a local filesystem, not a network or archive URL
- Pass an explicit local origin:
~~~
$ kindling run --origin file:///opt/myapp
~~~`,
	},
	20: {
		code:  20,
		title: "the toolchain reported a compilation failure",
		mdMsg: `
# Exit 20: compilation failed

The batch compile (or the strict vet pass) of the source tree failed. The
toolchain's own diagnostics were printed above this message.

## Things you can try
- Fix the reported errors in ` + "`<anchor>/src`" + `
- Vet findings are promoted to failures; set ` + "`strict: false`" + ` in the
  config to relax that
- Re-run with ` + "`--verbose`" + ` for the exact toolchain invocation`,
	},
	30: {
		code:  30,
		title: "no source files found under the source root",
		mdMsg: `
# Exit 30: no sources

The recursive enumeration of the source root found no files matching the
source suffix. The compiler is never invoked for an empty tree.

## Things you can try
- Check the layout: sources go under ` + "`<anchor>/<program>/src/`" + `
- Run ` + "`kindling resolve`" + ` to see where the launcher is looking`,
	},
	40: {
		code:  40,
		title: "the entry function declares a return value",
		mdMsg: `
# Exit 40: entry function returns a value

The entry function must return no value. Change its signature to:
~~~go
func Main(args []string)
~~~`,
	},
	41: {
		code:  41,
		title: "the entry symbol is not invocable without an instance",
		mdMsg: `
# Exit 41: entry symbol needs an instance

The entry symbol must be a plain function, callable without constructing
anything first. A package-level variable of non-function type (or any value
requiring method dispatch) cannot serve as the entry point.`,
	},
}

// ForExitCode returns the documented issue for a reserved exit code.
func ForExitCode(code types.ExitCode) (*Issue, bool) {
	i, ok := registry[code]
	return i, ok
}

// All returns every documented issue, ordered by exit code.
func All() []*Issue {
	codes := maps.Keys(registry)
	slices.Sort(codes)

	issues := make([]*Issue, 0, len(codes))
	for _, c := range codes {
		issues = append(issues, registry[c])
	}
	return issues
}
