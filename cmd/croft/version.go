package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/croft"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of croft",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("croft version %s\n", strings.TrimSpace(croft.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
