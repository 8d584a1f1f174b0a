package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xbasekit/sxdbf/internal/fileio"
	"github.com/xbasekit/sxdbf/pkg/dbf"
)

var (
	keyText string
	tenant  string
	outPath string
)

func init() {
	decryptCmd := newTransformCmd("decrypt", "Decrypt an SX-encrypted DBF file", dbf.Decrypt)
	encryptCmd := newTransformCmd("encrypt", "Encrypt a DBF file's record payload", dbf.Encrypt)
	rootCmd.AddCommand(decryptCmd, encryptCmd, newInspectCmd())
}

func newTransformCmd(use, short string, mode dbf.Mode) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use + " <dbf-file>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransform(args, mode)
		},
	}
	cmd.Flags().StringVar(&keyText, "key", "", "raw key text, truncated/padded to 8 bytes (ignored if --tenant is set)")
	cmd.Flags().StringVar(&tenant, "tenant", "", "tenant name to resolve via --key-file (internal/tenantcfg)")
	cmd.Flags().StringVar(&outPath, "out", "", "output path (defaults to overwriting the input file)")
	return cmd
}

func runTransform(args []string, mode dbf.Mode) error {
	if err := checkArgs(args, 1, "sxdbfctl decrypt|encrypt <dbf-file> [--key <text>|--tenant <name> --key-file <cfg>]"); err != nil {
		return err
	}
	path := args[0]

	raw, cleanup, err := fileio.MapReadOnly(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	defer cleanup()

	key, err := resolveKey(tenant, keyText)
	if err != nil {
		return err
	}

	res, err := dbf.Transform(raw, key, mode)
	if err != nil {
		return fmt.Errorf("transform %s: %w", path, err)
	}

	dest := outPath
	if dest == "" {
		dest = path
	}
	if err := fileio.WriteAtomic(dest, res.Bytes); err != nil {
		return fmt.Errorf("write %s: %w", dest, err)
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"status":                res.Status,
			"recordCount":           res.Header.RecordCount,
			"payloadChecksumBefore": res.PayloadChecksumBefore,
			"payloadChecksumAfter":  res.PayloadChecksumAfter,
			"keyFingerprint":        res.KeyFingerprint,
		})
	}
	printInfo("%s: %s (%d records)\n", dest, res.Status, res.Header.RecordCount)
	return nil
}
