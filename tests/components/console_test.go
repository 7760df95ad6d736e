package components_test

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"

	"github.com/sergeii/classicrypt/cmd/classicrypt/application"
	"github.com/sergeii/classicrypt/cmd/classicrypt/components/console"
	"github.com/sergeii/classicrypt/internal/core/entities/variant"
	"github.com/sergeii/classicrypt/internal/metrics"
	tu "github.com/sergeii/classicrypt/internal/testutils"
	"github.com/sergeii/classicrypt/tests/testapp"
)

func TestConsole_Session(t *testing.T) {
	tests := []struct {
		name         string
		variant      variant.Variant
		input        string
		wantOutput   []string
		wantExitCode int
	}{
		{
			"positive case - gronsfeld session",
			variant.Gronsfeld,
			"БКД\n1\nБГЕЖ\n2\nВНИЗ\n0\n",
			[]string{"Encrypted text: ВНИЗ\n", "Decrypted text: БГЕЖ\n"},
			0,
		},
		{
			"positive case - permutation session",
			variant.Permutation,
			"1\n1\nABC\n0\n",
			[]string{"Encrypted text: BCD\n"},
			0,
		},
		{
			"positive case - decomposed key is accepted",
			variant.Gronsfeld,
			"Е\u0308\n1\nА\n0\n",
			[]string{"Encrypted text: Ё\n"},
			0,
		},
		{
			"rejected key",
			variant.Permutation,
			"abc\n1\nABC\n0\n",
			[]string{"Error: key must consist of digits only\n"},
			1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			var component *console.Component
			var collector *metrics.Collector

			app := fx.New(
				fx.Provide(testapp.NoLogging),
				fx.Provide(testapp.ProvideSettings),
				fx.Provide(testapp.ProvidePersistence),
				application.Module,
				fx.Supply(console.Config{
					Variant: tt.variant,
					Input:   strings.NewReader(tt.input),
					Output:  &out,
				}),
				console.Module,
				fx.NopLogger,
				fx.Populate(&component, &collector),
			)
			shutdown := app.Wait()
			tu.MustNoErr(app.Start(context.TODO()))
			defer func() {
				tu.IgnoreErr(t, app.Stop(context.TODO()))
			}()

			select {
			case <-component.Done():
			case <-time.After(time.Second):
				require.FailNow(t, "console session did not finish")
			}
			sig := <-shutdown

			assert.Equal(t, tt.wantExitCode, sig.ExitCode)
			for _, want := range tt.wantOutput {
				assert.Contains(t, out.String(), want)
			}
			assert.Equal(t, 1.0, testutil.ToFloat64(collector.ConsoleSessions))
		})
	}
}
