package main

import (
	"context"
	"fmt"
	"os"

	"github.com/philipparndt/lebna/internal/console"
	"github.com/spf13/cobra"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Start an interactive calculation session",
	Long:  "Calculate triangles one by one and keep a running total until you quit.",
	Args:  cobra.NoArgs,
	Run:   runSession,
}

func init() {
	rootCmd.AddCommand(sessionCmd)
}

func runSession(cmd *cobra.Command, args []string) {
	fmt.Println("Triangle area session, type help for commands")
	session := console.NewSession(logger)
	if err := session.Run(context.Background(), os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
