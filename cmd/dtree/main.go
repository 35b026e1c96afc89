package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type rootCmdConfig struct {
	verbose bool
	logger  *zap.SugaredLogger
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	if err := cliParser().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func cliParser() *cobra.Command {
	config := &rootCmdConfig{}
	rootCmd := &cobra.Command{
		Use:   "dtree",
		Short: "dtree is a tool to grow ID3 decision trees",
		Long:  `A tool to grow decision trees from categorical data with the ID3 algorithm and use them to classify observations`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.logger = newLogger(config.verbose)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			config.Sync()
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&(config.verbose), "verbose", "v", false, "log progress on STDERR")
	rootCmd.AddCommand(versionCmd(), growCmd(config), classifyCmd(config), setCmd(config))
	return rootCmd
}
