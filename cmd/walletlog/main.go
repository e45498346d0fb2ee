// Package main implements the walletlog CLI for exercising the logging facade by hand.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version of the logging facade.
var version = "1.0.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// rootOptions holds flags shared by every subcommand.
type rootOptions struct {
	configPath string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "walletlog",
		Short: "Developer tool for the wallet logging facade",
		Long: `walletlog pushes records through the wallet logging facade and shows what
would reach the console and the error reporter. It also redacts JSON payloads
the same way the facade does.`,
		Version:      version,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "",
		"config file (default ~/.config/walletlog/config.yaml)")

	root.AddCommand(newSanitizeCmd())
	root.AddCommand(newEmitCmd(opts))
	root.AddCommand(newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the facade version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "walletlog "+version)
		},
	}
}
