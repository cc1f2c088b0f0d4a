package warnings

import (
	"bytes"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestSetWarningWriterRestoresAndCaptures tests the behavior of SetWarningWriter.
//
// It verifies:
//   - Original writer is restored after calling restore function
//   - Warning messages are captured by the new writer with a newline added
//   - nil writer defaults to os.Stderr
func TestSetWarningWriterRestoresAndCaptures(t *testing.T) {
	original := warnWriter

	var buf bytes.Buffer
	restore := SetWarningWriter(&buf)
	Warnf("item %d skipped", 3)
	Warnf("already terminated\n")
	restore()

	assert.Equal(t, original, warnWriter)
	assert.Equal(t, "item 3 skipped\nalready terminated\n", buf.String())

	restore = SetWarningWriter(nil)
	assert.Equal(t, os.Stderr, warnWriter)
	restore()
	assert.Equal(t, original, warnWriter)
}

// TestWarningWriterReturnsCurrent tests the behavior of WarningWriter.
func TestWarningWriterReturnsCurrent(t *testing.T) {
	original := warnWriter
	assert.Equal(t, original, WarningWriter())

	var buf bytes.Buffer
	restore := SetWarningWriter(&buf)
	assert.Equal(t, &buf, WarningWriter())
	restore()

	assert.Equal(t, original, WarningWriter())
}

// TestCollector tests line capture.
//
// It verifies:
//   - Multi-line writes are split and trimmed
//   - Messages returns a copy
//   - Reset empties the collector
func TestCollector(t *testing.T) {
	c := &Collector{}
	restore := SetWarningWriter(c)
	Warnf("first")
	restore()

	n, err := c.Write([]byte("  second \n\nthird\n"))
	assert.NoError(t, err)
	assert.Equal(t, 17, n)

	msgs := c.Messages()
	assert.Equal(t, []string{"first", "second", "third"}, msgs)
	msgs[0] = "mutated"
	assert.Equal(t, "first", c.Messages()[0])

	c.Reset()
	assert.Empty(t, c.Messages())
}

// TestCollectorConcurrentWrites tests that concurrent writers lose nothing.
func TestCollectorConcurrentWrites(t *testing.T) {
	c := &Collector{}
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = c.Write([]byte("w\n"))
		}()
	}
	wg.Wait()
	assert.Len(t, c.Messages(), 20)
}
