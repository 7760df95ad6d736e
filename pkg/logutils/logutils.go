package logutils

import (
	"path/filepath"
	"strconv"
)

// ShortCallerFormatter trims the caller down to its file name, e.g. "keys.go:42".
func ShortCallerFormatter(_ uintptr, file string, line int) string {
	return filepath.Base(file) + ":" + strconv.Itoa(line)
}
