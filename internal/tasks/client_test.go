package tasks

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mikestefanello/backlite"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) (*Client, string) {
	t.Helper()
	dir := t.TempDir()

	cfg := DefaultConfig()
	cfg.Workers = 1

	client, err := NewClient(filepath.Join(dir, "catalog.db"), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })
	return client, dir
}

func TestNewClient_CreatesQueueDatabase(t *testing.T) {
	_, dir := newTestClient(t)

	_, err := os.Stat(filepath.Join(dir, "catalog-tasks.db"))
	assert.NoError(t, err, "tasks database should be created next to the catalog database")
}

func TestClient_StartStop(t *testing.T) {
	client, _ := newTestClient(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go client.Start(ctx)
	time.Sleep(50 * time.Millisecond)

	stopCtx, stopCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer stopCancel()

	assert.True(t, client.Stop(stopCtx), "stop should succeed gracefully")
	assert.True(t, client.Stop(stopCtx), "stopping twice is a no-op")
}

func TestClient_EnqueueAuditCleanup(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	id, err := client.EnqueueAuditCleanup(ctx, 14)
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	status, err := client.Status(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, backlite.TaskStatusPending, status)

	status, err = client.Status(ctx, "missing")
	require.NoError(t, err)
	assert.Equal(t, backlite.TaskStatusNotFound, status)
}

func TestQueueLogger(t *testing.T) {
	var buf bytes.Buffer
	l := newQueueLogger(zerolog.New(&buf))

	l.Info("task processed", "queue", "cleanup_audit_events", "id", "abc")
	l.Error("task failed", "error", "boom")

	out := buf.String()
	assert.Contains(t, out, `"component":"tasks"`)
	assert.Contains(t, out, `"queue":"cleanup_audit_events"`)
	assert.Contains(t, out, `"message":"task failed"`)
	assert.Contains(t, out, `"level":"error"`)
}

func TestTasksDBPath(t *testing.T) {
	assert.Equal(t, filepath.Join("data", "catalog-tasks.db"), TasksDBPath(filepath.Join("data", "catalog.db")))
	assert.Equal(t, "catalog-tasks", TasksDBPath("catalog"))
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, 15*time.Minute, cfg.ReleaseAfter)
	assert.Equal(t, time.Hour, cfg.CleanupInterval)
}
