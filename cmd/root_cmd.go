package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cinic",
	Short: "Cinic is a callback-driven .ini config parser.",
	Long:  "Cinic is a callback-driven .ini config parser. It understands sections, nested section namespaces, key=value records and bracketed lists, and reports exact line-numbered diagnostics on malformed input.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of Cinic",
	Long:  `All software has versions. This is Cinic's`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Cinic v0.1 -- HEAD")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(iniCmd)
}
