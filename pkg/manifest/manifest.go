// Package manifest keeps a browser extension's manifest.json icon
// declarations in sync with generated assets. Only the icon-related fields
// are interpreted; everything else round-trips untouched.
package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path"
	"sort"
	"strconv"
)

// Manifest is a loaded manifest.json. Fields are kept raw so unknown keys
// survive a load/save round trip.
type Manifest struct {
	fields map[string]json.RawMessage
}

// Load reads and parses a manifest.json file. The top level must be a JSON
// object.
func Load(p string) (*Manifest, error) {
	data, err := os.ReadFile(p)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}

	return &Manifest{fields: fields}, nil
}

// Icons returns the declared size → path map. A missing or malformed icons
// block yields an empty map.
func (m *Manifest) Icons() map[string]string {
	icons := map[string]string{}
	if raw, ok := m.fields["icons"]; ok {
		_ = json.Unmarshal(raw, &icons)
	}
	return icons
}

// SyncIcons points the manifest's icons block at the generated files in
// dir, one "<size>": "<dir>/icon<size>.png" entry per size. When the
// manifest has an action block, its default_icon is set to the same map.
func (m *Manifest) SyncIcons(dir string, sizes []int) {
	icons := make(map[string]string, len(sizes))
	for _, s := range sizes {
		icons[strconv.Itoa(s)] = path.Join(dir, fmt.Sprintf("icon%d.png", s))
	}

	raw, _ := json.Marshal(icons)
	m.fields["icons"] = raw

	if actionRaw, ok := m.fields["action"]; ok {
		var action map[string]json.RawMessage
		if err := json.Unmarshal(actionRaw, &action); err == nil {
			action["default_icon"] = raw
			merged, _ := json.Marshal(action)
			m.fields["action"] = merged
		}
	}
}

// Validate compares the declared icon sizes against the generated set and
// returns a warning per mismatch, in stable order.
func (m *Manifest) Validate(sizes []int) []string {
	declared := m.Icons()

	generated := make(map[string]bool, len(sizes))
	for _, s := range sizes {
		generated[strconv.Itoa(s)] = true
	}

	declaredSizes := make([]string, 0, len(declared))
	for size := range declared {
		declaredSizes = append(declaredSizes, size)
	}
	sort.Strings(declaredSizes)

	var warnings []string
	for _, size := range declaredSizes {
		if !generated[size] {
			warnings = append(warnings, fmt.Sprintf("manifest declares a %spx icon that was not generated", size))
		}
	}
	for _, s := range sizes {
		if _, ok := declared[strconv.Itoa(s)]; !ok {
			warnings = append(warnings, fmt.Sprintf("generated %dpx icon is not declared in the manifest", s))
		}
	}
	return warnings
}

// Save writes the manifest back to p with two-space indentation,
// overwriting the existing file.
func (m *Manifest) Save(p string) error {
	data, err := json.MarshalIndent(m.fields, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}

	if err := os.WriteFile(p, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}
