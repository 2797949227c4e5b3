package export

import (
	"fmt"
	"os"

	"github.com/pierrec/lz4/v4"
)

// WriteCSVLZ4 writes the CSV export through an lz4 frame writer, for runs
// large enough that the plain file is unwieldy.
func WriteCSVLZ4(path string, header []string, rows [][]any) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	zw := lz4.NewWriter(f)
	if err := writeCSV(zw, header, rows); err != nil {
		zw.Close()
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := zw.Close(); err != nil {
		f.Close()
		return fmt.Errorf("failed to finish compression for %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}
