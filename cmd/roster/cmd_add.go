package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"roster/internal/roster"
	"roster/internal/validate"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Output formats for the add command.
const (
	outputText = "text"
	outputYAML = "yaml"
	outputJSON = "json"
)

var (
	addOutput string
	addStrict bool
)

// addCmd validates and appends NAME:AGE pairs without the TUI
var addCmd = &cobra.Command{
	Use:   "add NAME:AGE [NAME:AGE...]",
	Short: "Add people non-interactively and print the resulting list",
	Long: `Validates each NAME:AGE pair in order and appends the accepted ones.
Rejected pairs are reported on stderr and skipped, unless --strict is set,
in which case the first rejection aborts with a non-zero exit code.

Flags must come before the first pair.

Example:
  roster add Alice:30 Bob:25
  roster add --output yaml "Mary Ann:41"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVarP(&addOutput, "output", "o", outputText, "Output format: text, yaml, json")
	addCmd.Flags().BoolVar(&addStrict, "strict", false, "Abort on the first rejected pair")
	// Flags must precede the pairs; a pair such as "-5" is then an argument.
	addCmd.Flags().SetInterspersed(false)
}

// splitPair splits on the last colon so names may contain colons.
func splitPair(arg string) (name, age string, ok bool) {
	i := strings.LastIndex(arg, ":")
	if i < 0 {
		return "", "", false
	}
	return arg[:i], arg[i+1:], true
}

func runAdd(cmd *cobra.Command, args []string) error {
	switch addOutput {
	case outputText, outputYAML, outputJSON:
	default:
		return fmt.Errorf("unknown output format %q (valid: %s, %s, %s)", addOutput, outputText, outputYAML, outputJSON)
	}

	store, err := newStore(cfg)
	if err != nil {
		return err
	}

	stderr := cmd.ErrOrStderr()
	rejected := 0
	for _, arg := range args {
		nameRaw, ageRaw, ok := splitPair(arg)
		if !ok {
			err := fmt.Errorf("%q: expected NAME:AGE", arg)
			if addStrict {
				return err
			}
			fmt.Fprintf(stderr, "skipped %v\n", err)
			rejected++
			continue
		}

		in, err := validate.Validate(nameRaw, ageRaw)
		if err != nil {
			msg := err.Error()
			if verr, ok := validate.AsError(err); ok {
				msg = verr.Title + ": " + verr.Message
			}
			logger.Debug("pair rejected", zap.String("arg", arg), zap.Error(err))
			if addStrict {
				return fmt.Errorf("%q: %s", arg, msg)
			}
			fmt.Fprintf(stderr, "skipped %q: %s\n", arg, msg)
			rejected++
			continue
		}

		store.Append(in.Name, in.Age)
	}

	logger.Debug("add finished",
		zap.Int("accepted", store.Snapshot().Len()),
		zap.Int("rejected", rejected))

	return writeRoster(cmd.OutOrStdout(), store.Snapshot(), addOutput)
}

// rosterDocument is the yaml/json shape of a printed roster.
type rosterDocument struct {
	Users []roster.PersonRecord `yaml:"users" json:"users"`
}

func writeRoster(w io.Writer, r roster.Roster, format string) error {
	doc := rosterDocument{Users: r.Records()}

	switch format {
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	default:
		for _, rec := range doc.Users {
			if _, err := fmt.Fprintln(w, rec.String()); err != nil {
				return err
			}
		}
		return nil
	}
}
