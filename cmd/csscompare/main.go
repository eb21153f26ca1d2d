// Command csscompare reports whether two CSS stylesheets are
// semantically equivalent: same selectors, same effective property
// bindings under every condition, same @keyframes/@page/@font-face/
// @supports/@namespace/@charset content, modulo selector-token order,
// declaration order within a condition, and value-representation
// differences (color forms, quoting, URL normalization) that don't change
// meaning.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arnauddri/csscompare/internal/cliopts"
	"github.com/arnauddri/csscompare/internal/cssparse"
	"github.com/arnauddri/csscompare/internal/engine"
	"github.com/arnauddri/csscompare/internal/resolve"
	"github.com/arnauddri/csscompare/internal/scanner"
)

// version is overridden at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := cliopts.Defaults()
	var showVersion bool

	cmd := &cobra.Command{
		Use:   "csscompare CSS_1 CSS_2 [OUTPUT]",
		Short: "Report whether two CSS stylesheets are semantically equivalent",
		Args: func(cmd *cobra.Command, args []string) error {
			if showVersion {
				return nil
			}
			if len(args) < 2 || len(args) > 3 {
				return fmt.Errorf("expected CSS_1 CSS_2 [OUTPUT], got %d positional argument(s)", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if showVersion {
				fmt.Fprintln(cmd.OutOrStdout(), version)
				return nil
			}
			opts.CSS1 = args[0]
			opts.CSS2 = args[1]
			if len(args) == 3 {
				opts.Output = args[2]
			}
			return run(opts)
		},
	}

	cmd.Flags().BoolVarP(&showVersion, "version", "v", false, "print version")
	cmd.Flags().IntVar(&opts.ImportDepth, "import-depth", cliopts.DefaultImportDepth, "max @import recursion depth")
	cmd.Flags().StringVar(&opts.LogLevel, "log-level", cliopts.DefaultLogLevel, "debug|info|warn|error")
	cmd.Flags().StringVar(&opts.LogFormat, "log-format", cliopts.DefaultLogFormat, "console|json")
	cmd.Flags().BoolVar(&opts.Explain, "explain", false, "for inequivalent sheets, list which entity keys disagree")

	cmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		explicit := map[string]bool{
			cliopts.FieldImportDepth: cmd.Flags().Changed("import-depth"),
			cliopts.FieldLogLevel:    cmd.Flags().Changed("log-level"),
			cliopts.FieldLogFormat:   cmd.Flags().Changed("log-format"),
			cliopts.FieldExplain:     cmd.Flags().Changed("explain"),
		}
		return cliopts.LoadConfigFile(&opts, explicit)
	}

	return cmd
}

func run(opts cliopts.Options) error {
	logger, err := cliopts.BuildLogger(opts)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	runID, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("generating run id: %w", err)
	}
	logger = logger.With(zap.Stringer("run_id", runID))

	a, err := evaluateFile(opts.CSS1, opts, logger)
	if err != nil {
		return fmt.Errorf("reading %s: %w", opts.CSS1, err)
	}
	b, err := evaluateFile(opts.CSS2, opts, logger)
	if err != nil {
		return fmt.Errorf("reading %s: %w", opts.CSS2, err)
	}

	logger.Info("unsupported nodes",
		zap.Int(opts.CSS1, a.UnsupportedCount()),
		zap.Int(opts.CSS2, b.UnsupportedCount()))

	equivalent := engine.Equivalent(a, b)

	out := os.Stdout
	if opts.Output != "" {
		f, err := os.Create(opts.Output)
		if err != nil {
			return fmt.Errorf("opening output %s: %w", opts.Output, err)
		}
		defer f.Close()
		out = f
	}

	fmt.Fprintln(out, equivalent)
	if !equivalent && opts.Explain {
		for _, line := range engine.Explain(a, b) {
			fmt.Fprintln(out, line)
		}
	}
	return nil
}

func evaluateFile(path string, opts cliopts.Options, logger *zap.Logger) (*engine.Engine, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	nodes, err := parseAndResolve(string(data))
	if err != nil {
		return nil, err
	}
	evalOpts := engine.Options{
		Importer:       engine.FileImporter{},
		MaxImportDepth: opts.ImportDepth,
		Logger:         logger,
		Base:           filepath.Dir(path),
	}
	return engine.Evaluate(nodes, evalOpts), nil
}

func parseAndResolve(css string) ([]resolve.Node, error) {
	ss, err := cssparse.ParseStyleSheet(scanner.New(strings.NewReader(css)))
	if err != nil {
		return nil, fmt.Errorf("parsing stylesheet: %w", err)
	}
	nodes, err := resolve.Resolve(ss)
	if err != nil {
		return nil, fmt.Errorf("resolving stylesheet: %w", err)
	}
	return nodes, nil
}
