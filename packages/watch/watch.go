package watch

import (
	"time"

	whttp "github.com/watchhook/watchhook/packages/http"
	"github.com/watchhook/watchhook/packages/input"
	"github.com/watchhook/watchhook/packages/xcontent"
)

// Watch is a parsed watch definition. Interval is how often the engine
// runs the input; Webhook, when present, is the request fired with the
// input's payload.
type Watch struct {
	ID       string
	Name     string
	Interval time.Duration
	Input    input.Input
	Webhook  *whttp.Request
}

// WriteTo serializes the definition back to its document form. The id is
// always emitted, even when it was generated at load time.
func (w *Watch) WriteTo(wr *xcontent.Writer) error {
	return w.writeTo(wr, false)
}

// WriteRedactedTo serializes the definition with auth secrets replaced by
// the redaction marker. For display, not for round-tripping.
func (w *Watch) WriteRedactedTo(wr *xcontent.Writer) error {
	return w.writeTo(wr, true)
}

func (w *Watch) writeTo(wr *xcontent.Writer, redact bool) error {
	wr.BeginObject()
	wr.StringField("id", w.ID)
	if w.Name != "" {
		wr.StringField("name", w.Name)
	}
	if w.Interval > 0 {
		wr.StringField("interval", w.Interval.String())
	}
	if w.Input != nil {
		wr.Field("input")
		if err := w.Input.WriteTo(wr, redact); err != nil {
			return err
		}
	}
	if w.Webhook != nil {
		wr.Field("webhook")
		writeRequest := w.Webhook.WriteTo
		if redact {
			writeRequest = w.Webhook.WriteRedactedTo
		}
		if err := writeRequest(wr); err != nil {
			return err
		}
	}
	wr.EndObject()
	return nil
}
