package counter

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	// MissingBaseline is the last id reported when the counter file does
	// not exist yet (fresh install).
	MissingBaseline = 1001
	// UnparsableBaseline is the last id reported when the file exists but
	// does not hold a decimal integer.
	UnparsableBaseline = 1000
)

// Counter persists the last assigned id of a monotonic sequence in a
// single-line text file. Reads never fail; they fall back to a fixed
// baseline. Writes overwrite the whole file and the caller decides how
// severe a failure is.
type Counter struct {
	path string
}

func New(path string) *Counter {
	return &Counter{path: path}
}

func (c *Counter) ReadLast() int {
	data, err := os.ReadFile(c.path)
	if err != nil {
		return MissingBaseline
	}
	last, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return UnparsableBaseline
	}
	return last
}

func (c *Counter) WriteLast(id int) error {
	return os.WriteFile(c.path, []byte(fmt.Sprintf("%d\n", id)), 0o644)
}
