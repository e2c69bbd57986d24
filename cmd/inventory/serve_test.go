package main

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestAwaitServerReturnsListenError(t *testing.T) {
	logger := zerolog.Nop()
	listenErr := errors.New("listen tcp :8080: bind: address already in use")

	serveErr := make(chan error, 1)
	serveErr <- listenErr
	close(serveErr)

	released := false
	err := awaitServer(context.Background(), &logger, serveErr, func() error {
		released = true
		return nil
	})

	assert.ErrorIs(t, err, listenErr)
	assert.True(t, released)
}

func TestAwaitServerSignalIsCleanExit(t *testing.T) {
	logger := zerolog.Nop()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	released := false
	err := awaitServer(ctx, &logger, make(chan error), func() error {
		released = true
		return nil
	})

	assert.NoError(t, err)
	assert.True(t, released)
}

func TestAwaitServerReportsReleaseFailure(t *testing.T) {
	logger := zerolog.Nop()
	closeErr := errors.New("failed to shutdown HTTP server: context deadline exceeded")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := awaitServer(ctx, &logger, make(chan error), func() error { return closeErr })

	assert.ErrorIs(t, err, closeErr)
}
