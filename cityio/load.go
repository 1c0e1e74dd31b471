package cityio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LoadFile reads an instance from path. Files ending in .csv are read as
// CSV and named after the file; everything else is parsed as TSPLIB.
func LoadFile(path string) (*Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("LoadFile: %w", err)
	}
	defer f.Close()

	base := filepath.Base(path)
	ext := filepath.Ext(base)

	if strings.EqualFold(ext, ".csv") {
		cities, err := ReadCSV(f)
		if err != nil {
			return nil, fmt.Errorf("LoadFile %s: %w", base, err)
		}
		return &Instance{Name: strings.TrimSuffix(base, ext), Cities: cities}, nil
	}

	inst, err := ReadTSPLIB(f)
	if err != nil {
		return nil, fmt.Errorf("LoadFile %s: %w", base, err)
	}
	if inst.Name == "" {
		inst.Name = strings.TrimSuffix(base, ext)
	}

	return inst, nil
}
