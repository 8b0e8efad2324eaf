package cmd

import (
	"fmt"

	"github.com/go-drift/bind/pkg/manifest"
)

func init() {
	RegisterCommand(&Command{
		Name:  "check",
		Short: "Validate a binding manifest",
		Long: `Validate a binding manifest.

Loads the manifest, checks the schema version, module path, attribute
names, binding modes, and read-binding uniqueness, and reports the first
problem found. Exits non-zero on an invalid manifest.`,
		Usage: "bindcheck check <manifest.yaml>",
		Run:   runCheck,
	})
}

func runCheck(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("check requires exactly one manifest path")
	}

	m, err := manifest.Load(args[0])
	if err != nil {
		return err
	}
	if err := m.Validate(); err != nil {
		return err
	}

	bindings := 0
	for _, obj := range m.Objects {
		bindings += len(obj.Bindings)
	}
	fmt.Printf("%s: ok (%d objects, %d bindings)\n", args[0], len(m.Objects), bindings)
	return nil
}
