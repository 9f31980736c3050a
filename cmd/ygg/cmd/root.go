/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ygg",
	Short: "Yggdrasil - ordered associative containers",
	Long: `Yggdrasil is an in-memory ordered container library built on a B-tree.

The CLI ships the tooling around the library: a benchmark runner comparing
the tree against other dictionary types, and an interactive shell for
exploring an ordered map.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
