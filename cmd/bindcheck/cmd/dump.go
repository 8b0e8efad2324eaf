package cmd

import (
	"fmt"
	"strings"

	"github.com/go-drift/bind/pkg/manifest"
)

func init() {
	RegisterCommand(&Command{
		Name:  "dump",
		Short: "Print the binding table of a manifest",
		Long: `Print the binding table of a manifest.

Shows, per owner type, each attribute's read binding and its write chain in
dispatch order. The manifest is validated first.`,
		Usage: "bindcheck dump <manifest.yaml>",
		Run:   runDump,
	})
}

func runDump(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("dump requires exactly one manifest path")
	}

	m, err := manifest.Load(args[0])
	if err != nil {
		return err
	}
	if err := m.Validate(); err != nil {
		return err
	}

	fmt.Print(formatManifest(m))
	return nil
}

// formatManifest renders the binding table, preserving manifest order so
// the printed write chains match dispatch order.
func formatManifest(m *manifest.Manifest) string {
	var b strings.Builder

	fmt.Fprintf(&b, "manifest %s", m.Version)
	if m.Module != "" {
		fmt.Fprintf(&b, " (module %s)", m.Module)
	}
	b.WriteString("\n")

	for _, obj := range m.Objects {
		fmt.Fprintf(&b, "\n%s\n", obj.Type)
		for _, attr := range attrOrder(obj) {
			fmt.Fprintf(&b, "  %s\n", attr)
			for _, bd := range obj.Bindings {
				if bd.Attr != attr {
					continue
				}
				fmt.Fprintf(&b, "    %-5s %s\n", bd.Mode, bd.Handler)
			}
		}
	}
	return b.String()
}

// attrOrder returns the object's attribute names in first-appearance order.
func attrOrder(obj manifest.ObjectSpec) []string {
	seen := make(map[string]bool)
	var order []string
	for _, bd := range obj.Bindings {
		if !seen[bd.Attr] {
			seen[bd.Attr] = true
			order = append(order, bd.Attr)
		}
	}
	return order
}
