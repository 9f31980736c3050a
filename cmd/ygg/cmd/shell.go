/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/mythicalcodelabs/yggdrasil/pkg/btree"
)

const shellLongHelp = `Start an interactive shell over an in-memory ordered string map.

Commands:
  set <key> <value>    insert or overwrite
  get <key>            look up a key
  del <key>            delete a key
  range <from> <to>    list records with from <= key < to
  list                 list all records in order
  stats                show tree structure counters
  quit                 leave the shell`

// shellCmd represents the shell command
var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Explore an ordered map interactively",
	Long:  shellLongHelp,
	Run: func(cmd *cobra.Command, args []string) {
		runShell()
	},
}

func runShell() {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	historyFile := filepath.Join(os.TempDir(), ".ygg_history")
	if f, err := os.Open(historyFile); err == nil {
		line.ReadHistory(f)
		f.Close()
	}
	defer func() {
		if f, err := os.Create(historyFile); err == nil {
			line.WriteHistory(f)
			f.Close()
		}
	}()

	tree := btree.NewMap[string, string]()
	fmt.Println("yggdrasil shell - type 'help' for commands")

	for {
		input, err := line.Prompt("ygg> ")
		if err != nil {
			fmt.Println()
			return
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)

		fields := strings.Fields(input)
		switch fields[0] {
		case "quit", "exit":
			return
		case "help":
			fmt.Println(shellLongHelp)
		case "set":
			if len(fields) != 3 {
				fmt.Println("usage: set <key> <value>")
				continue
			}
			tree.Set(fields[1], fields[2])
		case "get":
			if len(fields) != 2 {
				fmt.Println("usage: get <key>")
				continue
			}
			c := tree.Find(fields[1])
			if c == tree.End() {
				fmt.Println("(not found)")
				continue
			}
			fmt.Println(c.Deref().Value)
		case "del":
			if len(fields) != 2 {
				fmt.Println("usage: del <key>")
				continue
			}
			if err := tree.Delete(fields[1]); err != nil {
				fmt.Println("(not found)")
			}
		case "range":
			if len(fields) != 3 {
				fmt.Println("usage: range <from> <to>")
				continue
			}
			if fields[2] < fields[1] {
				continue
			}
			for c, stop := tree.LowerBound(fields[1]), tree.LowerBound(fields[2]); c != stop; c = c.Next() {
				it := c.Deref()
				fmt.Printf("%s = %s\n", it.Key, it.Value)
			}
		case "list":
			items := tree.Items()
			for it, ok := items.Next(); ok; it, ok = items.Next() {
				fmt.Printf("%s = %s\n", it.Key, it.Value)
			}
		case "stats":
			s := tree.Stats()
			fmt.Printf("records=%d height=%d nodes=%d order=%d splits=%d merges=%d rotations=%d\n",
				s.Size, s.Height, s.Nodes, s.Order, s.Splits, s.Merges, s.Rotations)
		default:
			fmt.Printf("unknown command %q - type 'help'\n", fields[0])
		}
	}
}

func init() {
	rootCmd.AddCommand(shellCmd)
}
