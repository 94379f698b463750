package webui_test

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"medsum/internal/services/summarizer"
	"medsum/internal/summary"
	"medsum/internal/testsupport"
	"medsum/internal/webui"
)

func sampleRecord() summary.Record {
	return summary.Record{
		GeneralSummary: "Routine follow-up.",
		PatientDetails: "",
		Diagnosis:      summary.Entries{"Hypertension", "<b>Flu</b>"},
		Medications:    summary.Entries{"Lisinopril 10mg"},
		DoctorsNotes:   "Recheck in 3 months.",
	}
}

func newTestServer(t *testing.T, backend *testsupport.Backend, opts ...testsupport.ConfigOption) *httptest.Server {
	t.Helper()
	cfg := testsupport.NewConfig(t, append([]testsupport.ConfigOption{testsupport.WithSummarizerURL(backend.URL)}, opts...)...)
	client := summarizer.NewClient(summarizer.Config{
		BaseURL:      cfg.Summarizer.BaseURL,
		EndpointPath: cfg.Summarizer.EndpointPath,
	})
	srv, err := webui.New(cfg, client, nil)
	if err != nil {
		t.Fatalf("webui.New: %v", err)
	}
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func multipartBody(t *testing.T, name, contentType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if name != "" {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", `form-data; name="file"; filename="`+name+`"`)
		header.Set("Content-Type", contentType)
		part, err := mw.CreatePart(header)
		if err != nil {
			t.Fatalf("create part: %v", err)
		}
		if _, err := part.Write(data); err != nil {
			t.Fatalf("write part: %v", err)
		}
	} else if err := mw.WriteField("note", "no file"); err != nil {
		t.Fatalf("write field: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return &buf, mw.FormDataContentType()
}

func postUpload(t *testing.T, ts *httptest.Server, name, contentType string, data []byte) (int, string) {
	t.Helper()
	body, ct := multipartBody(t, name, contentType, data)
	resp, err := http.Post(ts.URL+"/upload", ct, body)
	if err != nil {
		t.Fatalf("post upload: %v", err)
	}
	defer resp.Body.Close()
	out, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(out)
}

func get(t *testing.T, url string) (int, string) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("get %s: %v", url, err)
	}
	defer resp.Body.Close()
	out, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(out)
}

func TestIndexRendersIdlePage(t *testing.T) {
	ts := newTestServer(t, testsupport.NewBackend(t, sampleRecord()))
	status, html := get(t, ts.URL+"/")
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	for _, want := range []string{
		`id="pdfFile"`,
		`id="dropArea"`,
		`id="heroSection" class="hero"`,
		`id="loadingSection" class="loading hidden"`,
		`id="resultSection" class="hidden"`,
		`id="errorMessage" class="error hidden"`,
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("idle page missing %q", want)
		}
	}
	if !strings.Contains(html, "lucide.createIcons") {
		t.Fatal("idle page should load icons")
	}
}

func TestUploadRendersSummary(t *testing.T) {
	backend := testsupport.NewBackend(t, sampleRecord())
	ts := newTestServer(t, backend)

	status, html := postUpload(t, ts, "report.pdf", "application/pdf", testsupport.PDFBytes(64))
	if status != http.StatusOK {
		t.Fatalf("status = %d body=%s", status, html)
	}
	for _, want := range []string{
		`id="heroSection" class="hero hidden"`,
		`id="resultSection">`,
		`<p id="resGeneralSummary">Routine follow-up.</p>`,
		`<p id="resPatientDetails">None found.</p>`,
		`<li>Hypertension</li>`,
		`<li>&lt;b&gt;Flu&lt;/b&gt;</li>`,
		`<li class="placeholder">None found.</li>`,
		"lucide.createIcons",
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("result page missing %q", want)
		}
	}
	uploads := backend.Uploads()
	if len(uploads) != 1 {
		t.Fatalf("expected one upload, got %d", len(uploads))
	}
	if uploads[0].FileName != "report.pdf" || uploads[0].ContentType != "application/pdf" {
		t.Fatalf("unexpected upload %+v", uploads[0])
	}
	if uploads[0].RequestID == "" {
		t.Fatal("expected correlation id header")
	}
}

func TestUploadRejectsNonPDF(t *testing.T) {
	backend := testsupport.NewBackend(t, sampleRecord())
	ts := newTestServer(t, backend)

	status, html := postUpload(t, ts, "notes.txt", "text/plain", []byte("hello"))
	if status != http.StatusUnsupportedMediaType {
		t.Fatalf("status = %d", status)
	}
	if !strings.Contains(html, `<span id="errorText">Please upload a valid PDF file.</span>`) {
		t.Fatalf("missing invalid-file banner")
	}
	if !strings.Contains(html, `id="errorMessage" class="error"`) {
		t.Fatal("banner should be visible")
	}
	if n := len(backend.Uploads()); n != 0 {
		t.Fatalf("expected no backend calls, got %d", n)
	}
}

func TestUploadShowsServerError(t *testing.T) {
	backend := testsupport.NewBackend(t, sampleRecord())
	backend.RespondJSON(http.StatusUnprocessableEntity, summary.Envelope{Error: "bad pdf"})
	ts := newTestServer(t, backend)

	status, html := postUpload(t, ts, "report.pdf", "application/pdf", testsupport.PDFBytes(16))
	if status != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d", status)
	}
	if !strings.Contains(html, `<span id="errorText">bad pdf</span>`) {
		t.Fatal("expected server message in banner")
	}
	if !strings.Contains(html, `id="uploadSection">`) {
		t.Fatal("upload section should be visible again")
	}
}

func TestUploadBackendFailureIsBadGateway(t *testing.T) {
	backend := testsupport.NewBackend(t, sampleRecord())
	backend.RespondJSON(http.StatusInternalServerError, summary.Envelope{Error: "model offline"})
	ts := newTestServer(t, backend)

	status, html := postUpload(t, ts, "report.pdf", "application/pdf", testsupport.PDFBytes(16))
	if status != http.StatusBadGateway {
		t.Fatalf("status = %d", status)
	}
	if !strings.Contains(html, `<span id="errorText">model offline</span>`) {
		t.Fatal("expected server message in banner")
	}
}

func TestUploadWithoutFileIsNoop(t *testing.T) {
	backend := testsupport.NewBackend(t, sampleRecord())
	ts := newTestServer(t, backend)

	status, html := postUpload(t, ts, "", "", nil)
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	if !strings.Contains(html, `id="resultSection" class="hidden"`) {
		t.Fatal("expected idle page")
	}
	if len(backend.Uploads()) != 0 {
		t.Fatal("expected no backend calls")
	}
}

func TestUploadTooLarge(t *testing.T) {
	backend := testsupport.NewBackend(t, sampleRecord())
	ts := newTestServer(t, backend, testsupport.WithMaxUploadMB(1))

	status, html := postUpload(t, ts, "big.pdf", "application/pdf", testsupport.PDFBytes(1<<20+32<<10))
	if status != http.StatusRequestEntityTooLarge {
		t.Fatalf("status = %d", status)
	}
	if !strings.Contains(html, "Failed to analyze report. ") {
		t.Fatal("expected failure banner")
	}
	if len(backend.Uploads()) != 0 {
		t.Fatal("oversized upload should not reach the backend")
	}
}

func TestResetRendersIdlePage(t *testing.T) {
	ts := newTestServer(t, testsupport.NewBackend(t, sampleRecord()))
	resp, err := http.Post(ts.URL+"/reset", "application/x-www-form-urlencoded", nil)
	if err != nil {
		t.Fatalf("post reset: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK || !strings.Contains(string(body), `id="resultSection" class="hidden"`) {
		t.Fatalf("unexpected reset response %d", resp.StatusCode)
	}
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t, testsupport.NewBackend(t, sampleRecord()))
	status, _ := get(t, ts.URL+"/healthz")
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
}

func TestStartStop(t *testing.T) {
	backend := testsupport.NewBackend(t, sampleRecord())
	cfg := testsupport.NewConfig(t, testsupport.WithSummarizerURL(backend.URL))
	srv, err := webui.New(cfg, summarizer.NewClient(summarizer.Config{BaseURL: backend.URL}), nil)
	if err != nil {
		t.Fatalf("webui.New: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := srv.Start(ctx); err != nil {
		t.Fatalf("Start: %v", err)
	}
	addr := srv.Addr()
	if addr == "" {
		t.Fatal("expected bound address")
	}
	status, _ := get(t, "http://"+addr+"/healthz")
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	srv.Stop()
	client := &http.Client{Timeout: time.Second}
	if _, err := client.Get("http://" + addr + "/healthz"); err == nil {
		t.Fatal("expected request to fail after Stop")
	}
}

func TestNewRequiresSummarizer(t *testing.T) {
	if _, err := webui.New(testsupport.NewConfig(t), nil, nil); err == nil {
		t.Fatal("expected error without summarizer")
	}
}
