package resources

import (
	"os"

	"github.com/edsrzf/mmap-go"
)

// readMmap maps the file read-only. Rank files run to a few megabytes,
// and mapping avoids holding a second copy while parsing.
func readMmap(file *os.File) (*[]byte, error) {
	fileMmap, mmapErr := mmap.Map(file, mmap.RDONLY, 0)
	mmapBytes := (*[]byte)(&fileMmap)
	return mmapBytes, mmapErr
}
