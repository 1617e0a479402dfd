package learnkit

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/openlearnhq/learnkit/api"
	"github.com/openlearnhq/learnkit/storage"
)

// Builder assembles a [Session]. Configure it once, call Build, and treat
// the result as immutable wiring. Construction performs no I/O.
type Builder struct {
	config     Config
	store      storage.Store
	httpClient *http.Client
	logger     zerolog.Logger
	auditSink  AuditSink

	built bool
}

// New returns a Builder seeded with [DefaultConfig].
func New() *Builder {
	return &Builder{
		config: defaultConfig(),
		logger: zerolog.Nop(),
	}
}

// WithConfig replaces the whole configuration.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cloneConfig(cfg)
	return b
}

// WithBaseURL sets the API base URL without replacing the rest of the
// configuration.
func (b *Builder) WithBaseURL(baseURL string) *Builder {
	b.config.API.BaseURL = baseURL
	return b
}

// WithStorage sets the durable backend the session persists into.
// Required.
func (b *Builder) WithStorage(store storage.Store) *Builder {
	b.store = store
	return b
}

// WithHTTPClient injects the HTTP client used for every API call. When
// omitted, a client with [APIConfig].Timeout is created.
func (b *Builder) WithHTTPClient(httpClient *http.Client) *Builder {
	b.httpClient = httpClient
	return b
}

// WithLogger attaches a structured logger. Defaults to a no-op logger.
func (b *Builder) WithLogger(logger zerolog.Logger) *Builder {
	b.logger = logger
	return b
}

// WithAuditSink attaches the sink that receives session lifecycle events.
func (b *Builder) WithAuditSink(sink AuditSink) *Builder {
	b.auditSink = sink
	return b
}

// WithMetricsEnabled toggles in-process metrics.
func (b *Builder) WithMetricsEnabled(enabled bool) *Builder {
	b.config.Metrics.Enabled = enabled
	return b
}

// WithLatencyHistograms toggles the request latency histogram.
func (b *Builder) WithLatencyHistograms(enabled bool) *Builder {
	b.config.Metrics.EnableLatencyHistograms = enabled
	return b
}

// Build validates the configuration and wires the session. A Builder is
// single-use.
func (b *Builder) Build() (*Session, error) {
	if b.built {
		return nil, errors.New("builder already used")
	}

	cfg := cloneConfig(b.config)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if b.store == nil {
		return nil, ErrStorageRequired
	}

	httpClient := b.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.API.Timeout}
	}

	session := &Session{
		config:  cfg,
		store:   b.store,
		logger:  b.logger,
		audit:   newAuditDispatcher(cfg.Audit, b.auditSink),
		metrics: NewMetrics(cfg.Metrics),
		readyCh: make(chan struct{}),
	}

	// The client pulls the bearer token live from the session, so every
	// request sees the latest credential without extra plumbing.
	session.client = api.NewClient(cfg.API.BaseURL,
		api.WithHTTPClient(httpClient),
		api.WithTokenSource(session.Token),
		api.WithUserAgent(cfg.API.UserAgent),
		api.WithLogger(b.logger),
	)

	b.built = true

	return session, nil
}
