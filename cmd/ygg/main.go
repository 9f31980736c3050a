/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/mythicalcodelabs/yggdrasil/cmd/ygg/cmd"

func main() {
	cmd.Execute()
}
