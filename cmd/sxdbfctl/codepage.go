package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/xbasekit/sxdbf/internal/codepage"
)

func init() {
	rootCmd.AddCommand(newCodePageCmd())
}

func newCodePageCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "codepage <language-driver-byte>",
		Short: "Resolve a language-driver byte to its numeric code page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCodePage(args)
		},
	}
}

func runCodePage(args []string) error {
	if err := checkArgs(args, 1, "sxdbfctl codepage <0xNN|decimal>"); err != nil {
		return err
	}
	n, err := strconv.ParseUint(args[0], 0, 8)
	if err != nil {
		return fmt.Errorf("parse driver byte %q: %w", args[0], err)
	}
	driver := byte(n)

	cp, ok := codepage.Resolve(driver)
	if !ok {
		if jsonOut {
			return printJSON(map[string]interface{}{"driver": fmt.Sprintf("0x%02x", driver), "resolved": false})
		}
		printInfo("driver 0x%02x: unmapped\n", driver)
		return nil
	}
	if jsonOut {
		return printJSON(map[string]interface{}{"driver": fmt.Sprintf("0x%02x", driver), "codePage": cp, "resolved": true})
	}
	printInfo("driver 0x%02x -> code page %d\n", driver, cp)
	return nil
}
