package metrics

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap"
	"gozar/internal/config"
	"gozar/internal/domain"
)

func TestCollector_Links(t *testing.T) {
	c := NewCollector(prometheus.NewRegistry(), zap.NewNop())

	c.RecordLinkParsed(domain.ProtocolVLESS)
	c.RecordLinkParsed(domain.ProtocolVLESS)
	c.RecordLinkParsed(domain.ProtocolTrojan)
	c.RecordLinkRejected("domain_not_allowed")

	assert.Equal(t, 2.0, testutil.ToFloat64(c.linksParsed.WithLabelValues("vless")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.linksParsed.WithLabelValues("trojan")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.linksRejected.WithLabelValues("domain_not_allowed")))
}

func TestCollector_Compile(t *testing.T) {
	tests := []struct {
		name          string
		results       []domain.CompileResult
		wantSuccess   float64
		wantFailure   float64
		wantOutbounds float64
	}{
		{
			name: "Success sets outbound gauge",
			results: []domain.CompileResult{
				{Connections: 3, Outbounds: 5, Duration: time.Millisecond},
			},
			wantSuccess:   1,
			wantOutbounds: 5,
		},
		{
			name: "Failure keeps previous gauge",
			results: []domain.CompileResult{
				{Connections: 1, Outbounds: 3, Duration: time.Millisecond},
				{Connections: 2, Duration: time.Millisecond, Err: errors.New("bad link")},
			},
			wantSuccess:   1,
			wantFailure:   1,
			wantOutbounds: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCollector(prometheus.NewRegistry(), zap.NewNop())
			for _, r := range tt.results {
				c.RecordCompile(r)
			}

			assert.Equal(t, tt.wantSuccess, testutil.ToFloat64(c.compilations.WithLabelValues("success")))
			assert.Equal(t, tt.wantFailure, testutil.ToFloat64(c.compilations.WithLabelValues("failure")))
			assert.Equal(t, tt.wantOutbounds, testutil.ToFloat64(c.compiledOutbounds))
			assert.Equal(t, 1, testutil.CollectAndCount(c.compileDuration))
		})
	}
}

func TestCollector_Workers(t *testing.T) {
	c := NewCollector(prometheus.NewRegistry(), zap.NewNop())

	c.RecordWorkerStart("1")
	c.RecordWorkerStart("2")
	assert.Equal(t, 2.0, testutil.ToFloat64(c.activeWorkers))

	c.RecordWorkerStop("1")
	assert.Equal(t, 1.0, testutil.ToFloat64(c.activeWorkers))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.workerStarts.WithLabelValues("1")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.workerStops.WithLabelValues("1")))
	assert.Equal(t, 0.0, testutil.ToFloat64(c.workerStops.WithLabelValues("2")))
}

func TestCollector_SeparateRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		NewCollector(NewRegistry(), zap.NewNop())
		NewCollector(NewRegistry(), zap.NewNop())
	})
}

func TestServer_ServesRegistry(t *testing.T) {
	cfg := &config.Config{Metrics: config.Metrics{Addr: "127.0.0.1:0"}}

	var (
		server    *Server
		collector domain.MetricsCollector
	)
	app := fxtest.New(t,
		fx.Supply(cfg),
		fx.Provide(zap.NewNop),
		Module,
		fx.Populate(&server, &collector),
	)
	app.RequireStart()
	defer app.RequireStop()

	require.True(t, server.Enabled())
	collector.RecordLinkParsed(domain.ProtocolShadowsocks)

	resp, err := http.Get("http://" + server.Addr() + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, strings.Contains(string(body), `gozar_links_parsed_total{protocol="ss"} 1`))
}

func TestServer_DisabledWithoutAddr(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	server := NewServer(lc, &config.Config{}, prometheus.NewRegistry(), zap.NewNop())

	assert.False(t, server.Enabled())
	lc.RequireStart()
	lc.RequireStop()
}
