package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewInterruptHandler(t *testing.T) {
	assert.NotNil(t, NewInterruptHandler(nil).writer)

	var buf bytes.Buffer
	h := NewInterruptHandler(&buf)
	assert.Same(t, &buf, h.writer)
	assert.False(t, h.WasInterrupted())
}

func TestInterruptHandler_Interrupt(t *testing.T) {
	var buf bytes.Buffer
	h := NewInterruptHandler(&buf)

	ctx, stop := h.HandleInterrupts(context.Background(), func() string { return "2 of 7 days closed" })
	defer stop()

	h.interrupt()
	h.interrupt()

	<-ctx.Done()
	assert.True(t, h.WasInterrupted())
	assert.Contains(t, buf.String(), "Simulation interrupted!")
	assert.Contains(t, buf.String(), "2 of 7 days closed")
	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("interrupted")))
}

func TestInterruptHandler_StopCancels(t *testing.T) {
	h := NewInterruptHandler(&bytes.Buffer{})
	ctx, stop := h.HandleInterrupts(context.Background(), nil)

	stop()

	<-ctx.Done()
	assert.False(t, h.WasInterrupted())
}
