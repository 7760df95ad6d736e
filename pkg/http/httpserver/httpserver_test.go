package httpserver_test

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sergeii/classicrypt/pkg/http/httpserver"
)

func TestHTTPServer_ListenAndServe(t *testing.T) {
	ready := make(chan net.Addr, 1)
	svr, err := httpserver.New(
		"localhost:0", // any available port
		httpserver.WithReadTimeout(time.Second),
		httpserver.WithWriteTimeout(time.Second),
		httpserver.WithShutdownTimeout(time.Second),
		httpserver.WithHandler(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			rw.WriteHeader(http.StatusTeapot)
			rw.Write([]byte(strings.ToUpper(string(body)))) // nolint: errcheck
		})),
		httpserver.WithReadySignal(func(addr net.Addr) {
			ready <- addr
		}),
	)
	require.NoError(t, err)

	served := make(chan error, 1)
	go func() {
		served <- svr.ListenAndServe()
	}()
	addr := <-ready
	assert.Equal(t, addr.String(), svr.ListenAddr().String())

	svrURL := fmt.Sprintf("http://%s", addr)
	resp, err := http.Post(svrURL, "text/plain", strings.NewReader("шифр")) // nolint: gosec, noctx
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, 418, resp.StatusCode)
	respBody, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "ШИФР", string(respBody))

	require.NoError(t, svr.Stop(context.TODO()))
	assert.NoError(t, <-served)
}

func TestHTTPServer_New_Errors(t *testing.T) {
	_, err := httpserver.New("localhost:notaport")
	assert.Error(t, err)

	_, err = httpserver.New("localhost:0", httpserver.WithHandler(nil))
	assert.Error(t, err)
}
