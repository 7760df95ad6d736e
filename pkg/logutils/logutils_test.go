package logutils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sergeii/classicrypt/pkg/logutils"
)

func TestShortCallerFormatter(t *testing.T) {
	tests := []struct {
		name string
		file string
		line int
		want string
	}{
		{"positive case - absolute path", "/go/src/classicrypt/internal/console/console.go", 42, "console.go:42"},
		{"positive case - relative path", "pkg/cipher/shift.go", 7, "shift.go:7"},
		{"positive case - bare file", "main.go", 1, "main.go:1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := logutils.ShortCallerFormatter(0, tt.file, tt.line)
			assert.Equal(t, tt.want, got)
		})
	}
}
