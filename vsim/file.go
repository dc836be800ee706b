// SPDX-License-Identifier: MIT

package vsim

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"

	"github.com/katalvlaran/celattice/atoms"
)

// ZstdSuffix marks compressed files.
const ZstdSuffix = ".zst"

// ReadFile reads path, decompressing it when it ends in ZstdSuffix.
func ReadFile(path string) (*atoms.Atoms, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ZstdSuffix) {
		decoder, err := zstd.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("creating zstd decoder: %w", err)
		}
		defer decoder.Close()
		r = decoder
	}

	a, err := Read(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return a, nil
}

// WriteFile writes a to path, compressing when it ends in ZstdSuffix.
func WriteFile(path string, a *atoms.Atoms) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	if !strings.HasSuffix(path, ZstdSuffix) {
		return Write(f, a)
	}
	encoder, err := zstd.NewWriter(f)
	if err != nil {
		return fmt.Errorf("creating zstd encoder: %w", err)
	}
	if err := Write(encoder, a); err != nil {
		encoder.Close()
		return err
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("closing encoder: %w", err)
	}
	return nil
}
