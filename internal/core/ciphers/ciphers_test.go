package ciphers_test

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sergeii/classicrypt/internal/core/ciphers"
	"github.com/sergeii/classicrypt/internal/core/entities/variant"
	"github.com/sergeii/classicrypt/pkg/cipher"
)

func TestNew(t *testing.T) {
	logger := zerolog.Nop()
	tests := []struct {
		name    string
		variant variant.Variant
		key     string
		plain   string
		want    string
		wantErr error
	}{
		{"gronsfeld", variant.Gronsfeld, "БКД", "БГЕЖ", "ВНИЗ", nil},
		{"permutation", variant.Permutation, "3", "А", "Г", nil},
		{"gronsfeld rejects digit key", variant.Gronsfeld, "3", "", "", cipher.ErrInvalidCharacter},
		{"permutation rejects letter key", variant.Permutation, "БКД", "", "", cipher.ErrNonDigitKey},
		{"empty key", variant.Permutation, "", "", "", cipher.ErrEmptyKey},
		{"unknown variant", variant.Unknown, "БКД", "", "", variant.ErrUnknownVariant},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := ciphers.New(tt.variant, tt.key, &logger)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, c)
				return
			}
			require.NoError(t, err)
			got, err := c.Encrypt(tt.plain)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNew_TextFailuresLoggedAtDebug(t *testing.T) {
	tests := []struct {
		name    string
		variant variant.Variant
		key     string
		text    string
	}{
		{"gronsfeld", variant.Gronsfeld, "БКД", "привет"},
		{"permutation", variant.Permutation, "3", "abc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := zerolog.New(&buf).Level(zerolog.InfoLevel)

			c, err := ciphers.New(tt.variant, tt.key, &logger)
			require.NoError(t, err)

			_, err = c.Encrypt(tt.text)
			require.ErrorIs(t, err, cipher.ErrInvalidCharacter)
			assert.Empty(t, buf.String())

			debugLogger := logger.Level(zerolog.DebugLevel)
			c, err = ciphers.New(tt.variant, tt.key, &debugLogger)
			require.NoError(t, err)

			_, err = c.Decrypt(tt.text)
			require.ErrorIs(t, err, cipher.ErrInvalidCharacter)
			assert.Contains(t, buf.String(), `"level":"debug"`)
			assert.Contains(t, buf.String(), "Decryption failed")
		})
	}
}
