package main_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	main "github.com/fwojciec/readmode/cmd/readmode"
	readmodehttp "github.com/fwojciec/readmode/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServeCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("shuts down when the context is canceled", func(t *testing.T) {
		t.Parallel()

		var logs bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&logs, nil))
		ctx, cancel := context.WithCancel(context.Background())
		deps := &main.Dependencies{
			Ctx:    ctx,
			Stdout: &bytes.Buffer{},
			Stderr: &bytes.Buffer{},
			Logger: logger,
			Server: readmodehttp.NewServer(logger),
		}

		done := make(chan error, 1)
		go func() {
			done <- (&main.ServeCmd{Addr: "127.0.0.1:0"}).Run(deps)
		}()
		cancel()

		select {
		case err := <-done:
			require.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Fatal("serve did not return after cancel")
		}
		assert.Contains(t, logs.String(), "shutting down")
	})

	t.Run("returns listen errors", func(t *testing.T) {
		t.Parallel()

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Logger: slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)),
		}

		err := (&main.ServeCmd{Addr: "not-an-address"}).Run(deps)

		assert.Error(t, err)
	})
}
