// Package romfile loads a raw, headerless ROM image off disk into a
// bus.ROM[uint16,uint8]. This core's programs carry no header or mapper,
// so loading is a plain read-the-whole-file-in.
package romfile

import (
	"os"

	"github.com/pkg/errors"

	"github.com/n-ulricksen/fantasyconsole/bus"
)

// Load reads the file at path and wraps its bytes in a bus.ROM. The vector
// table is expected to live in the last six bytes of the data, per the
// illustrative default memory map, but Load itself does no interpretation
// of the contents.
func Load(path string) (*bus.ROM[uint16, uint8], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "romfile: unable to read %s", path)
	}
	if len(data) < 6 {
		return nil, errors.Errorf("romfile: %s is too small to hold a vector table (%d bytes)", path, len(data))
	}
	return bus.NewROM[uint16, uint8](data), nil
}
