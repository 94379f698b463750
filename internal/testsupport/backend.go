package testsupport

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"medsum/internal/summary"
)

// Upload is what the fake backend saw on one summarize request.
type Upload struct {
	FileName    string
	ContentType string
	Body        []byte
	RequestID   string
}

// Backend is an httptest server speaking the summarize protocol.
type Backend struct {
	*httptest.Server

	mu      sync.Mutex
	status  int
	body    []byte
	uploads []Upload
	release chan struct{}
}

// NewBackend starts a backend that answers every upload with record and 200.
// It is closed when the test ends.
func NewBackend(t testing.TB, record summary.Record) *Backend {
	t.Helper()
	b := &Backend{}
	b.RespondJSON(http.StatusOK, summary.Envelope{Success: true, Data: &record})
	b.Server = httptest.NewServer(http.HandlerFunc(b.serve))
	t.Cleanup(b.Close)
	return b
}

// RespondJSON changes the reply to the JSON encoding of payload.
func (b *Backend) RespondJSON(status int, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		panic(err)
	}
	b.Respond(status, data)
}

// Respond changes the reply to a raw body.
func (b *Backend) Respond(status int, body []byte) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.status = status
	b.body = body
}

// Hold makes requests block until the returned function is called.
func (b *Backend) Hold() (release func()) {
	ch := make(chan struct{})
	b.mu.Lock()
	b.release = ch
	b.mu.Unlock()
	var once sync.Once
	return func() { once.Do(func() { close(ch) }) }
}

// Uploads returns a copy of the requests received so far.
func (b *Backend) Uploads() []Upload {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Upload(nil), b.uploads...)
}

func (b *Backend) serve(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusOK)
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"No file part"}`))
		return
	}
	data, _ := io.ReadAll(file)
	_ = file.Close()

	b.mu.Lock()
	b.uploads = append(b.uploads, Upload{
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Body:        data,
		RequestID:   r.Header.Get("X-Request-ID"),
	})
	status, body, release := b.status, b.body, b.release
	b.mu.Unlock()

	if release != nil {
		select {
		case <-release:
		case <-r.Context().Done():
			return
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
