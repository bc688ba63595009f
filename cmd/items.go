package cmd

import (
	"fmt"
	"strings"

	"github.com/etnz/networth"
)

// itemKind tells whether an id designates an asset or a liability.
type itemKind int

const (
	assetItem itemKind = iota
	liabilityItem
)

// resolveItem finds the asset or liability whose id is ref, or starts with
// ref when no id matches exactly. An ambiguous prefix is an error.
func resolveItem(data networth.FinancialData, ref string) (string, itemKind, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", 0, fmt.Errorf("missing item id")
	}
	type match struct {
		id   string
		kind itemKind
	}
	var prefixed []match
	for _, a := range data.Assets {
		if a.ID == ref {
			return a.ID, assetItem, nil
		}
		if strings.HasPrefix(a.ID, ref) {
			prefixed = append(prefixed, match{a.ID, assetItem})
		}
	}
	for _, l := range data.Liabilities {
		if l.ID == ref {
			return l.ID, liabilityItem, nil
		}
		if strings.HasPrefix(l.ID, ref) {
			prefixed = append(prefixed, match{l.ID, liabilityItem})
		}
	}
	switch len(prefixed) {
	case 0:
		return "", 0, fmt.Errorf("no asset or liability with id %q", ref)
	case 1:
		return prefixed[0].id, prefixed[0].kind, nil
	default:
		return "", 0, fmt.Errorf("id %q is ambiguous, it matches %d items", ref, len(prefixed))
	}
}
