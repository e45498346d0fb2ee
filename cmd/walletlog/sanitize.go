package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/fyrsmithlabs/walletlog/internal/logging"
)

func newSanitizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sanitize [file]",
		Short: "Redact sensitive values from a JSON document",
		Long: `Redact sensitive values from a file or stdin.

JSON input is printed back as compact JSON with every value under a key
containing token, password, secret or key replaced by "[REDACTED]". Input
that is not JSON is treated as plain text and only key=value style
assignments are redacted.

Examples:
  # Sanitize a file
  walletlog sanitize payload.json

  # Sanitize from stdin
  echo '{"apiKey":"sk-1"}' | walletlog sanitize -`,
		Args: cobra.MaximumNArgs(1),
		RunE: runSanitize,
	}
}

func runSanitize(cmd *cobra.Command, args []string) error {
	content, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	if len(content) == 0 {
		return fmt.Errorf("no content to sanitize")
	}

	value, err := logging.ParseJSON(content)
	if err != nil {
		// Not JSON: redact as free text.
		_, err = io.WriteString(cmd.OutOrStdout(), logging.SanitizeString(string(content)))
		return err
	}

	out, err := json.Marshal(logging.Sanitize(value))
	if err != nil {
		return fmt.Errorf("failed to encode sanitized output: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return err
}

// readInput reads the named file, or stdin when no file or "-" is given.
func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		content, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("failed to read from stdin: %w", err)
		}
		return content, nil
	}

	content, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", args[0], err)
	}
	return content, nil
}
