package main

import (
	"os"

	"github.com/spf13/cobra"

	_ "incubator/docs"
)

// @title           Incubator API
// @version         1.0
// @description     Backend for the accelerator site: jobs, portfolio and events filtering, chat, analytics and home animations

// @BasePath  /

// @schemes   http https

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "incubator",
		Short:         "Accelerator site API",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newServeCmd(), newSeedCmd())
	return root
}
