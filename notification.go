package headlessterm

import (
	"bytes"
	"encoding/base64"
	"strconv"
	"strings"
)

// NotificationPayload holds the fields of a desktop notification request
// (OSC 99), assembled by scanNotificationSequences ahead of the ANSI decoder
// from one or more chunks.
type NotificationPayload struct {
	ID          string
	Done        bool
	PayloadType string // "title", "body", "close", "?" (query)
	Encoding    string
	Actions     []string
	TrackClose  bool
	Timeout     int
	AppName     string
	Type        string
	IconName    string
	IconCacheID string
	Sound       string
	Urgency     int
	Occasion    string
	Data        []byte
}

// NotificationProvider handles desktop notification requests (OSC 99).
// Notify returns a response string to write back to the PTY for query
// payloads, or "" when no response is needed.
type NotificationProvider interface {
	Notify(payload *NotificationPayload) string
}

// NoopNotification ignores all notification requests.
type NoopNotification struct{}

func (NoopNotification) Notify(payload *NotificationPayload) string { return "" }

var _ NotificationProvider = NoopNotification{}

// DesktopNotification processes an OSC 99 payload and delegates to the configured provider.
func (t *Terminal) DesktopNotification(payload *NotificationPayload) {
	if t.middleware != nil && t.middleware.DesktopNotification != nil {
		t.middleware.DesktopNotification(payload, t.desktopNotificationInternal)
		return
	}
	t.desktopNotificationInternal(payload)
}

func (t *Terminal) desktopNotificationInternal(payload *NotificationPayload) {
	t.mu.RLock()
	provider := t.notificationProvider
	t.mu.RUnlock()

	if provider == nil {
		return
	}

	if response := provider.Notify(payload); response != "" {
		t.writeResponseString(response)
	}
}

// SetNotificationProvider sets the notification provider at runtime.
func (t *Terminal) SetNotificationProvider(p NotificationProvider) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.notificationProvider = p
}

// NotificationProvider returns the current notification provider.
func (t *Terminal) NotificationProvider() NotificationProvider {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.notificationProvider
}

var oscNotificationPrefix = []byte("\x1b]99;")

// scanNotificationSequences extracts OSC 99 desktop-notification requests
// ahead of the decoder, the same way scanUserVarSequences pulls OSC 1337
// SetUserVar sequences out before go-ansicode ever sees them. go-ansicode
// has no Handler callback for OSC 99 (it isn't one of the named methods
// Terminal implements), so without this prescan DesktopNotification would
// never be reachable from real input.
func (t *Terminal) scanNotificationSequences(data []byte) []byte {
	if !bytes.Contains(data, oscNotificationPrefix) {
		return data
	}

	var out []byte
	rest := data
	for {
		idx := bytes.Index(rest, oscNotificationPrefix)
		if idx < 0 {
			out = append(out, rest...)
			break
		}
		out = append(out, rest[:idx]...)
		rest = rest[idx+len(oscNotificationPrefix):]

		end, termLen := indexOSCTerminator(rest)
		if end < 0 {
			out = append(out, oscNotificationPrefix...)
			out = append(out, rest...)
			break
		}

		body := rest[:end]
		rest = rest[end+termLen:]
		t.applyNotificationChunk(body)
	}
	return out
}

// applyNotificationChunk parses one OSC 99 body: "<metadata>;<payload>"
// where metadata is a colon-separated list of key=value fields, per
// kitty's desktop notifications protocol.
func (t *Terminal) applyNotificationChunk(body []byte) {
	metadata, payload := body, []byte(nil)
	if semi := bytes.IndexByte(body, ';'); semi >= 0 {
		metadata = body[:semi]
		payload = body[semi+1:]
	}

	fields := make(map[string]string)
	for _, kv := range strings.Split(string(metadata), ":") {
		if kv == "" {
			continue
		}
		if eq := strings.IndexByte(kv, '='); eq >= 0 {
			fields[kv[:eq]] = kv[eq+1:]
		} else {
			fields[kv] = ""
		}
	}

	id := fields["i"]
	payloadType := fields["p"]
	if payloadType == "" {
		payloadType = "title"
	}

	if payloadType == "?" {
		t.DesktopNotification(&NotificationPayload{ID: id, PayloadType: "?"})
		return
	}

	raw := payload
	if fields["e"] == "1" {
		decoded, err := base64.StdEncoding.DecodeString(string(payload))
		if err != nil {
			t.Unspecified(UnspecifiedAction{Control: 'b', Intermediates: append([]byte("]99;"), metadata...)})
			return
		}
		raw = decoded
	}

	done := fields["d"] != "0"
	finished := t.accumulateNotification(id, payloadType, fields, raw, done)
	if finished != nil {
		t.DesktopNotification(finished)
	}
}

// accumulateNotification merges one chunk into the pending notification
// keyed by id (kitty allows a title/body to arrive split across several
// OSC 99 sequences, finished by d=0/d=1). It returns the completed
// payload once the final chunk arrives, nil otherwise.
func (t *Terminal) accumulateNotification(id, payloadType string, fields map[string]string, data []byte, done bool) *NotificationPayload {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.pendingNotifications == nil {
		t.pendingNotifications = make(map[string]*NotificationPayload)
	}

	p, ok := t.pendingNotifications[id]
	if !ok {
		p = &NotificationPayload{ID: id}
		t.pendingNotifications[id] = p
	}

	p.PayloadType = payloadType
	p.Type = payloadType
	p.Encoding = fields["e"]
	if a := fields["a"]; a != "" {
		p.Actions = strings.Split(a, ",")
	}
	if fields["c"] == "1" {
		p.TrackClose = true
	}
	if w := fields["w"]; w != "" {
		if n, err := strconv.Atoi(w); err == nil {
			p.Timeout = n
		}
	}
	if o := fields["o"]; o != "" {
		p.Occasion = o
	}
	if app := fields["f"]; app != "" {
		if decoded, err := base64.StdEncoding.DecodeString(app); err == nil {
			p.AppName = string(decoded)
		}
	}
	p.Data = append(p.Data, data...)

	if !done {
		return nil
	}

	delete(t.pendingNotifications, id)
	p.Done = true
	return p
}
