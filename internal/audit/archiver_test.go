package audit

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/twmb/franz-go/pkg/kgo"
)

func TestArchiverRun_StopsCleanlyOnCancel(t *testing.T) {
	client, err := kgo.NewClient(kgo.SeedBrokers("localhost:9092"))
	require.NoError(t, err)

	archiver := &Archiver{
		client: client,
		topic:  "audit-archive",
		inbox:  make(chan Entry, 1),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, archiver.Run(ctx))
}
