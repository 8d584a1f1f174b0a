package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xbasekit/sxdbf/internal/codepage"
	"github.com/xbasekit/sxdbf/internal/fileio"
	"github.com/xbasekit/sxdbf/pkg/dbf"
)

var inspectTenant string

func newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <dbf-file>",
		Short: "Decrypt a DBF file in memory and report header, field, and code-page metadata",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(args)
		},
	}
	cmd.Flags().StringVar(&inspectTenant, "tenant", "", "tenant name to resolve via --key-file (internal/tenantcfg)")
	return cmd
}

func runInspect(args []string) error {
	if err := checkArgs(args, 1, "sxdbfctl inspect <dbf-file> --tenant <name> --key-file <cfg>"); err != nil {
		return err
	}
	path := args[0]

	raw, cleanup, err := fileio.MapReadOnly(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	defer cleanup()

	// inspect never writes the file back; it only decrypts an in-memory copy
	// to report decoded fields. No key at all is still useful — the cipher
	// never fails, it just produces garbage field values for an unresolved key.
	key, err := resolveKey(inspectTenant, "")
	if err != nil {
		return err
	}

	res, err := dbf.Transform(raw, key, dbf.Decrypt)
	if err != nil {
		return fmt.Errorf("parse header of %s: %w", path, err)
	}

	cp, hasCP := codepage.Resolve(res.Header.LanguageDriver)

	if jsonOut {
		return printJSON(map[string]interface{}{
			"statusByte":     fmt.Sprintf("0x%02x", res.Header.StatusByte),
			"lastUpdate":     fmt.Sprintf("%04d-%02d-%02d", res.Header.Year, res.Header.Month, res.Header.Day),
			"recordCount":    res.Header.RecordCount,
			"headerLength":   res.Header.HeaderLength,
			"recordLength":   res.Header.RecordLength,
			"languageDriver": fmt.Sprintf("0x%02x", res.Header.LanguageDriver),
			"codePage":       cp,
			"hasEOFMarker":   res.Header.HasEOFMarker,
			"status":         res.Status,
			"fields":         res.Fields,
			"records":        res.Records,
		})
	}

	printInfo("File: %s\n", path)
	printInfo("  Status: %s\n", res.Status)
	printInfo("  Last update: %04d-%02d-%02d\n", res.Header.Year, res.Header.Month, res.Header.Day)
	printInfo("  Record count: %d\n", res.Header.RecordCount)
	printInfo("  Header length: %d\n", res.Header.HeaderLength)
	printInfo("  Record length: %d\n", res.Header.RecordLength)
	if hasCP {
		printInfo("  Code page: %d (driver 0x%02x)\n", cp, res.Header.LanguageDriver)
	} else {
		printInfo("  Code page: unmapped (driver 0x%02x)\n", res.Header.LanguageDriver)
	}
	printInfo("  Fields:\n")
	for _, f := range res.Fields {
		printInfo("    %-11s %c len=%-3d decimals=%d offset=%d\n", f.Name, f.Type, f.Length, f.DecimalPlaces, f.OffsetInRecord)
	}
	if res.Records != nil {
		printInfo("  Decoded %d record(s)\n", len(res.Records))
	}
	return nil
}
