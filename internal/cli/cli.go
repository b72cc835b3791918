// Package cli implements the fadeline command line interface.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/andyrewlee/fadeline/internal/gradient"
	"github.com/andyrewlee/fadeline/internal/palette"
)

// errUsage marks caller mistakes that should exit with a usage-class code.
var errUsage = errors.New("invalid usage")

// Run executes the fadeline CLI. It returns a process exit code.
func Run(args []string) int {
	root := buildRootCommand()
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "fadeline: %v\n", err)
		if errors.Is(err, errUsage) || errors.Is(err, gradient.ErrMoreColorsThanChars) {
			return 2
		}
		return 1
	}
	return 0
}

type options struct {
	colors     []string
	preset     string
	mode       string
	fixed      string
	background bool
	bold       bool
}

func buildRootCommand() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "fadeline [text...]",
		Short: "Render text with a color gradient for the terminal",
		Long: `fadeline - color text character by character

Text comes from the arguments, or from stdin when none are given.
Stops come from repeated --color flags or from a named --preset.

Examples:
  fadeline "hello world"
  fadeline -c '#f7768e' -c '#7aa2f7' "hello world"
  fadeline -p ocean -m linear --bold "hello world"
  figlet fade | fadeline -p fire -b -f '#1a1b26'`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, opts, args)
		},
	}
	root.Version = "0.1.0"
	root.SetHelpCommand(&cobra.Command{Hidden: true})
	root.CompletionOptions.DisableDefaultCmd = true

	flags := root.Flags()
	flags.StringArrayVarP(&opts.colors, "color", "c", nil, "gradient stop as #rrggbb (repeatable)")
	flags.StringVarP(&opts.preset, "preset", "p", "", "named preset (see 'fadeline presets')")
	flags.StringVarP(&opts.mode, "mode", "m", "perceptual", "blend mode: perceptual or linear")
	flags.StringVarP(&opts.fixed, "fixed", "f", "", "#rrggbb for the non-gradient channel")
	flags.BoolVarP(&opts.background, "background", "b", false, "apply the gradient to the background")
	flags.BoolVar(&opts.bold, "bold", false, "render in bold")

	root.AddCommand(buildPresetsCommand())
	return root
}

func runRoot(cmd *cobra.Command, opts *options, args []string) error {
	text, err := inputText(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	req, err := opts.resolve()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for i, line := range strings.Split(strings.TrimSuffix(text, "\n"), "\n") {
		rendered, err := renderLine(line, req)
		if err != nil {
			return fmt.Errorf("line %d: %w", i+1, err)
		}
		fmt.Fprintln(out, rendered)
	}
	return nil
}

// inputText joins the arguments, or drains stdin when there are none.
func inputText(stdin io.Reader, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}

// request is a fully-resolved render configuration.
type request struct {
	stops      []gradient.Color
	mode       gradient.BlendMode
	fixed      gradient.Color
	fixedSet   bool
	background bool
	bold       bool
}

func (o *options) resolve() (request, error) {
	var req request

	if len(o.colors) > 0 && o.preset != "" {
		return req, fmt.Errorf("%w: --color and --preset are mutually exclusive", errUsage)
	}

	switch {
	case len(o.colors) > 0:
		for _, s := range o.colors {
			c, err := gradient.ParseHex(s)
			if err != nil {
				return req, fmt.Errorf("%w: %v", errUsage, err)
			}
			req.stops = append(req.stops, c)
		}
	case o.preset != "":
		p, ok := palette.Lookup(o.preset)
		if !ok {
			return req, fmt.Errorf("%w: unknown preset %q (see 'fadeline presets')", errUsage, o.preset)
		}
		req.stops = p.Stops
	default:
		req.stops = palette.Default().Stops
	}

	mode, err := gradient.ParseBlendMode(o.mode)
	if err != nil {
		return req, fmt.Errorf("%w: %v", errUsage, err)
	}
	req.mode = mode

	if o.fixed != "" {
		c, err := gradient.ParseHex(o.fixed)
		if err != nil {
			return req, fmt.Errorf("%w: %v", errUsage, err)
		}
		req.fixed = c
		req.fixedSet = true
	}

	req.background = o.background
	req.bold = o.bold
	return req, nil
}
