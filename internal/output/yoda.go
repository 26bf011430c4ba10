// Package output renders accumulated histograms to YODA files and to
// plots.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/athete/axoplot/internal/hists"
)

// WriteYODA writes every filled cell of the set as a YODA histogram
// block. Cell paths follow /<hist>/<trigger>[/<object>].
func WriteYODA(w io.Writer, set *hists.Set) error {
	for _, name := range set.Names() {
		h, _ := set.Get(name)
		for _, cell := range h.Cells() {
			hist := h.Cell(cell.Trigger, cell.Object)
			path := "/" + name + "/" + cell.Trigger
			if h.PerObject() {
				path += "/" + cell.Object
			}
			hist.Annotation()["name"] = path

			raw, err := hist.MarshalYODA()
			if err != nil {
				return fmt.Errorf("output: marshal %q: %w", path, err)
			}
			if _, err := w.Write(raw); err != nil {
				return fmt.Errorf("output: write %q: %w", path, err)
			}
			if _, err := io.WriteString(w, "\n"); err != nil {
				return fmt.Errorf("output: write %q: %w", path, err)
			}
		}
	}
	return nil
}

// SaveYODA writes the set to the named file.
func SaveYODA(path string, set *hists.Set) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("output: create %q: %w", path, err)
	}
	defer f.Close()

	if err := WriteYODA(f, set); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("output: close %q: %w", path, err)
	}
	return nil
}
