package main

import (
	"fmt"

	"github.com/xbasekit/sxdbf/internal/keymaterial"
	"github.com/xbasekit/sxdbf/internal/tenantcfg"
	"github.com/xbasekit/sxdbf/pkg/types"
)

// resolveKey resolves the cipher key to use, per SPEC_FULL.md §4.10: when
// --tenant is set, the key comes from the --key-file tenant config
// (internal/tenantcfg); otherwise it falls back to the raw --key text.
func resolveKey(tenant, rawKeyText string) (types.Key8, error) {
	if tenant == "" {
		return types.Key8(keymaterial.Build8(rawKeyText)), nil
	}
	if keyFile == "" {
		return types.Key8{}, fmt.Errorf("--tenant %q requires --key-file", tenant)
	}
	cfg, err := tenantcfg.Load(keyFile)
	if err != nil {
		return types.Key8{}, err
	}
	t, ok := cfg.Find(tenant)
	if !ok {
		return types.Key8{}, fmt.Errorf("tenant %q not found in %s", tenant, keyFile)
	}
	return t.Key(), nil
}
