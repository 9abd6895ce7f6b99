package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for grepr
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grepr [flags] <query> <path>...",
		Short: "Search files and directory trees for a literal string",
		Long: `grepr reports every line that contains <query> in the given files and
directories. Directories are walked recursively and searched concurrently;
each matching file is printed as its path followed by its matching lines.

Flags may appear anywhere on the command line:
  -i, --ignore, --ignore-case   case-insensitive matching
  -r, -R, --recursive           walk directory roots (default unless disabled in .grepr.yaml)
  -n, --positions, --line-number
                                prefix lines with "<row>:<column>" (zero-based)
  --exclude-dir=<path>, --exclude=<path>, -not=<path>
                                never scan <path> (exact match, repeatable)
  --jobs=<n>                    files read at once (0 = unlimited)
  --sequential                  walk on a single goroutine, in directory order
  --output=<file>               write the report to <file> atomically
  --color=auto|always|never, --no-color
  --log-level=trace|debug|info|warn|error
  --log-file=<file>             also append log lines to <file>
  --stats                       log a run summary
  --config=<file>               defaults file (else $GREPR_CONFIG, else .grepr.yaml)
  --                            treat every later token as positional

Short flags combine: -iR, -rn.`,
		Example: `  grepr duct poem.txt
  grepr -i rust src docs --exclude-dir=src/vendor
  grepr -n --output=hits.txt TODO .`,
		Version: Version,
		// Arguments use forms pflag cannot parse (-not=<path>, flags after
		// positionals), so the raw tokens go to config.Resolve
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		Args:               cobra.ArbitraryArgs,
		RunE:               runSearch,
	}

	return cmd
}
