package pipeline

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Fatal input conditions, distinct from the valid "zero matching lines"
// outcome of parsing.
var (
	// ErrInputNotFound means the supplied path does not exist.
	ErrInputNotFound = errors.New("input path not found")
	// ErrNoPDFs means a directory was supplied but contains no PDF files.
	ErrNoPDFs = errors.New("no PDF files found in folder")
)

// CollectInputs resolves the input argument into an ordered list of PDF
// paths. A file is used as-is; a directory contributes its *.pdf entries
// in sorted name order.
func CollectInputs(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInputNotFound, path)
	}

	if !info.IsDir() {
		return []string{path}, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("reading input folder %s: %w", path, err)
	}

	var pdfs []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(e.Name()), ".pdf") {
			pdfs = append(pdfs, filepath.Join(path, e.Name()))
		}
	}
	if len(pdfs) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoPDFs, path)
	}

	sort.Strings(pdfs)
	return pdfs, nil
}
