package main

import (
	"os"

	"github.com/spf13/cobra"
)

var configPath string

func main() {
	root := &cobra.Command{
		Use:   "relichelper",
		Short: "Relic filter and status memo helper",
	}
	root.Version = version
	root.SetVersionTemplate("{{.Version}}\n")
	root.PersistentFlags().StringVar(&configPath, "config", "", "Config file path")
	root.AddCommand(initCmd())
	root.AddCommand(versionCmd())
	root.AddCommand(characterCmd())
	root.AddCommand(statCmd())
	root.AddCommand(memoCmd())
	root.AddCommand(calcCmd())
	root.AddCommand(setsCmd())
	root.AddCommand(importCmd())
	root.AddCommand(exportCmd())
	root.AddCommand(lookupCmd())
	root.AddCommand(validateCmd())
	root.AddCommand(serveCmd())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
