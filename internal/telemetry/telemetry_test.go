package telemetry

import (
	"context"
	"ctchen222/Tic-Tac-Toe-Solo/internal/config"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func TestInitOtel_Disabled(t *testing.T) {
	shutdown, err := InitOtel(context.Background(), config.Telemetry{Enabled: false})
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}

func TestGameCounters(t *testing.T) {
	ctx := context.Background()
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	otel.SetMeterProvider(provider)
	t.Cleanup(func() { _ = provider.Shutdown(ctx) })

	RecordGameStarted(ctx)
	RecordGameStarted(ctx)
	RecordGameFinished(ctx, "x")
	RecordGameFinished(ctx, "draw")
	RecordGameFinished(ctx, "draw")
	RecordMoveRejected(ctx, "occupied")

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))

	sums := map[string]map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			data, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok, "metric %s is not an int64 sum", m.Name)
			sums[m.Name] = map[string]int64{}
			for _, dp := range data.DataPoints {
				key := ""
				for _, kv := range dp.Attributes.ToSlice() {
					key = string(kv.Key) + "=" + kv.Value.Emit()
				}
				sums[m.Name][key] += dp.Value
			}
		}
	}

	assert.Equal(t, int64(2), sums["games.started"][""])
	assert.Equal(t, int64(1), sums["games.finished"]["outcome=x"])
	assert.Equal(t, int64(2), sums["games.finished"]["outcome=draw"])
	assert.Equal(t, int64(1), sums["moves.rejected"]["reason=occupied"])
}
