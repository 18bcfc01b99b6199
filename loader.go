package declinatio

import (
	"fmt"
	"os"

	mmap "github.com/edsrzf/mmap-go"
)

// Load reads a compiled dataset artifact from path and materializes it fully
// in memory. The file is mapped read-only to avoid a copy into a staging
// buffer before decoding, the same way SteosMorphy's analyzer maps its
// compiled dictionary. Unlike that analyzer, the mapping is unmapped before
// Load returns: every field of the returned Dataset is plain Go data (maps,
// slices, strings) with no pointers into the mapped region, so nothing
// aliases the file after decoding.
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("declinatio: open dataset %s: %w", path, err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("declinatio: stat dataset %s: %w", path, err)
	}
	if fi.Size() == 0 {
		return nil, fmt.Errorf("declinatio: dataset %s is empty", path)
	}

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("declinatio: mmap dataset %s: %w", path, err)
	}
	defer m.Unmap()

	ds, err := decodeDataset(m)
	if err != nil {
		return nil, fmt.Errorf("declinatio: load dataset %s: %w", path, err)
	}
	return ds, nil
}
