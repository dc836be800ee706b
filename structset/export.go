// SPDX-License-Identifier: MIT

package structset

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/celattice/vsim"
)

// ManifestName is the file Export writes next to the structures.
const ManifestName = "manifest.yaml"

// DefaultPrefix names exported files when ExportOptions.Prefix is empty.
const DefaultPrefix = "structure"

// ExportOptions controls Export.
type ExportOptions struct {
	// Compress writes .ascii.zst files instead of .ascii.
	Compress bool
	// Prefix starts every file name; DefaultPrefix when empty.
	Prefix string
}

// Manifest describes an exported set.
type Manifest struct {
	SetID       string          `yaml:"set_id"`
	ParentSites int             `yaml:"parent_sites"`
	Supercell   string          `yaml:"supercell,omitempty"`
	Structures  []ManifestEntry `yaml:"structures"`
}

// ManifestEntry describes one exported structure.
type ManifestEntry struct {
	Index       int    `yaml:"index"`
	File        string `yaml:"file"`
	Formula     string `yaml:"formula"`
	Sites       int    `yaml:"sites"`
	Fingerprint string `yaml:"fingerprint"`
}

// Export writes each member (vacancies removed) to dir as
// <prefix>_<index>.ascii[.zst] and then the manifest. dir is created if
// missing. The returned manifest lists files relative to dir.
func (s *Set) Export(dir string, opts ExportOptions) (*Manifest, error) {
	prefix := opts.Prefix
	if prefix == "" {
		prefix = DefaultPrefix
	}
	ext := ".ascii"
	if opts.Compress {
		ext += vsim.ZstdSuffix
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("Export: %w", err)
	}

	all := s.All()
	m := &Manifest{
		SetID:       s.id,
		ParentSites: s.parent.NumSites(),
		Structures:  make([]ManifestEntry, 0, len(all)),
	}
	if len(all) > 0 {
		m.Supercell = all[0].SuperCell().Transformation().String()
	}
	for i, st := range all {
		name := fmt.Sprintf("%s_%04d%s", prefix, i, ext)
		occ := st.Occupied()
		if err := vsim.WriteFile(filepath.Join(dir, name), occ); err != nil {
			return nil, fmt.Errorf("Export: structure %d: %w", i, err)
		}
		m.Structures = append(m.Structures, ManifestEntry{
			Index:       i,
			File:        name,
			Formula:     occ.Formula(),
			Sites:       occ.Len(),
			Fingerprint: st.Fingerprint(),
		})
	}

	data, err := yaml.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("Export: manifest: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, ManifestName), data, 0o644); err != nil {
		return nil, fmt.Errorf("Export: manifest: %w", err)
	}
	return m, nil
}

// ReadManifest loads a manifest written by Export.
func ReadManifest(dir string) (*Manifest, error) {
	data, err := os.ReadFile(filepath.Join(dir, ManifestName))
	if err != nil {
		return nil, err
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("ReadManifest: %w", err)
	}
	return &m, nil
}
