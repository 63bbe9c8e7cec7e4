package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-labs/internal/userdto"
)

var userCmd = &cobra.Command{
	Use:   "user <file>",
	Short: "Decode a user record and print the DTO",
	Long: `Read a user record (JSON or YAML) and print the six fields the DTO keeps:
picture, cell, country, email, gender, coordinates.

Fields missing from the record are printed as empty.

Examples:
  labs user ./user.json
  labs user -   # read from stdin`,
	Args: cobra.ExactArgs(1),
	Run:  runUser,
}

func runUser(_ *cobra.Command, args []string) {
	var (
		data []byte
		err  error
	)
	if args[0] == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(args[0])
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading record: %v\n", err)
		os.Exit(1)
	}

	dto, err := userdto.Decode(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	for _, f := range dto.Fields() {
		value := ""
		if f.Value != nil {
			value = fmt.Sprintf("%v", f.Value)
		}
		fmt.Printf("  %-12s  %s\n", f.Name, value)
	}
}
