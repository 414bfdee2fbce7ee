package analytics

import (
	"bytes"
	"context"
	"html/template"
	"sync"

	"go.uber.org/zap"
)

// ScriptBase is the gtag loader URL; the tracking id is appended as ?id=
const ScriptBase = "https://www.googletagmanager.com/gtag/js"

var tagsTmpl = template.Must(template.New("gtag").Parse(
	`<script async defer src="` + ScriptBase + `?id={{.ID}}"></script>
<script id="google-analytics-script">
window.dataLayer = window.dataLayer || [];
function gtag(){dataLayer.push(arguments);}
gtag('js', new Date());
gtag('config', {{.ID}}, {page_path: window.location.pathname});
</script>`))

// Bootstrap renders the analytics tags once and reports page views to a Sink
type Bootstrap struct {
	trackingID string
	sink       Sink
	logger     *zap.Logger

	once sync.Once
	tags template.HTML
}

// NewBootstrap creates a Bootstrap. An empty trackingID is allowed and
// yields an empty id segment in the loader URL.
func NewBootstrap(trackingID string, sink Sink, logger *zap.Logger) *Bootstrap {
	if sink == nil {
		sink = Discard
	}
	return &Bootstrap{trackingID: trackingID, sink: sink, logger: logger}
}

// TrackingID returns the configured tracking id
func (b *Bootstrap) TrackingID() string {
	return b.trackingID
}

// Tags returns the script tags placed at the end of every page body
func (b *Bootstrap) Tags() template.HTML {
	b.once.Do(func() {
		var buf bytes.Buffer
		if err := tagsTmpl.Execute(&buf, struct{ ID string }{b.trackingID}); err != nil {
			b.logger.Warn("failed to render analytics tags", zap.Error(err))
			return
		}
		b.tags = template.HTML(buf.String())
	})
	return b.tags
}

// TrackPageView pushes a config event for path. Failures are logged and dropped.
func (b *Bootstrap) TrackPageView(ctx context.Context, path string) {
	if err := b.sink.Push(ctx, PageView(b.trackingID, path)); err != nil {
		b.logger.Debug("page view dropped", zap.String("path", path), zap.Error(err))
	}
}
