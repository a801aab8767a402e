/*
Copyright 2026 Ardika Saputro.
Licensed under the Apache License, Version 2.0.
*/

package version

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ardikabs/accelctl/internal/version"
)

// NewCommand creates the "version" command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version of accelctl",
		Long:  "Print the version of accelctl",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("accelctl", version.GetVersion())
			return nil
		},
	}

	return cmd
}
