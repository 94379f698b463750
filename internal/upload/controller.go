package upload

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"medsum/internal/logging"
	"medsum/internal/phase"
	"medsum/internal/services"
	"medsum/internal/services/summarizer"
	"medsum/internal/summary"
)

// PDFType is the only media type accepted for submission.
const PDFType = "application/pdf"

// File is a candidate selection from the picker or a drop.
type File struct {
	Name string
	Type string
	Body io.Reader
}

// Summarizer turns a document into a summary record.
type Summarizer interface {
	Summarize(ctx context.Context, doc summarizer.Document) (summary.Record, error)
}

// Controller drives the upload page. All binding mutations happen while
// holding mu, so hosts may call it from any goroutine.
type Controller struct {
	mu       sync.Mutex
	b        Bindings
	client   Summarizer
	logger   *slog.Logger
	newID    func() string
	state    phase.State
	inflight *Submission
}

// Option customizes the controller.
type Option func(*Controller)

// WithLogger sets the controller logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithIDGenerator overrides how submission correlation ids are minted.
func WithIDGenerator(fn func() string) Option {
	return func(c *Controller) {
		if fn != nil {
			c.newID = fn
		}
	}
}

// New validates the bindings and returns a controller showing the idle page.
func New(b Bindings, client Summarizer, opts ...Option) (*Controller, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	if client == nil {
		return nil, services.Wrap(services.ErrConfiguration, "upload", "new", "summarizer required", nil)
	}
	c := &Controller{
		b:      b,
		client: client,
		logger: logging.NewNop(),
		newID:  uuid.NewString,
		state:  phase.Initial(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = logging.NewComponentLogger(c.logger, "upload")

	c.mu.Lock()
	c.paint()
	c.setTriggersEnabled(true)
	c.mu.Unlock()
	return c, nil
}

// State returns the current display state.
func (c *Controller) State() phase.State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// OpenPicker opens the native file picker. It does nothing while a
// submission is in flight or outside the idle phase.
func (c *Controller) OpenPicker() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.inflight != nil || c.state.Phase != phase.Idle {
		return
	}
	c.b.FileInput.Open()
}

// DragEnter applies the drop affordance.
func (c *Controller) DragEnter() { c.setDragActive(true) }

// DragOver applies the drop affordance.
func (c *Controller) DragOver() { c.setDragActive(true) }

// DragLeave removes the drop affordance.
func (c *Controller) DragLeave() { c.setDragActive(false) }

// Drop removes the drop affordance and hands the dropped files to HandleFiles.
func (c *Controller) Drop(ctx context.Context, files []File) (*Submission, error) {
	c.setDragActive(false)
	return c.HandleFiles(ctx, files)
}

func (c *Controller) setDragActive(active bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.b.DropZone.SetActive(active)
}

// HandleFiles validates a selection and submits its first file. An empty
// selection is a no-op and returns (nil, nil). A file whose declared type is
// not application/pdf shows the invalid-file banner and returns
// ErrInvalidFile without any network call.
func (c *Controller) HandleFiles(ctx context.Context, files []File) (*Submission, error) {
	if len(files) == 0 {
		return nil, nil
	}
	file := files[0]
	if len(files) > 1 {
		c.logger.Debug("ignoring extra files", logging.Args(
			logging.Int("count", len(files)),
			logging.String("kept", file.Name),
		)...)
	}
	if file.Type != PDFType {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.inflight != nil {
			return nil, ErrBusy
		}
		if err := c.apply(phase.Reject(InvalidFileMessage)); err != nil {
			return nil, err
		}
		c.logger.Info("file rejected", logging.Args(
			logging.String(logging.FieldFileName, file.Name),
			logging.String("declared_type", file.Type),
			logging.String(logging.FieldEventType, "file_rejected"),
		)...)
		return nil, ErrInvalidFile
	}
	return c.Submit(ctx, file)
}

// Submit switches the page to loading, disables the triggers and posts the
// file in the background. The returned Submission completes once the page
// shows either the summary or the failure banner.
func (c *Controller) Submit(ctx context.Context, file File) (*Submission, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	c.mu.Lock()
	if c.inflight != nil {
		c.mu.Unlock()
		return nil, ErrBusy
	}
	if err := c.apply(phase.Submit()); err != nil {
		c.mu.Unlock()
		return nil, err
	}
	c.setTriggersEnabled(false)
	sub := &Submission{
		ID:       c.newID(),
		FileName: file.Name,
		started:  time.Now(),
		done:     make(chan struct{}),
	}
	c.inflight = sub
	c.mu.Unlock()

	ctx = services.WithRequestID(ctx, sub.ID)
	ctx = services.WithFileName(ctx, file.Name)
	logging.WithContext(ctx, c.logger).Info("submission started", logging.Args(
		logging.String(logging.FieldEventType, "submission_started"),
	)...)

	go c.run(ctx, sub, file)
	return sub, nil
}

func (c *Controller) run(ctx context.Context, sub *Submission, file File) {
	record, err := c.client.Summarize(ctx, summarizer.Document{
		Name:        file.Name,
		ContentType: file.Type,
		Body:        file.Body,
	})

	logger := logging.WithContext(ctx, c.logger)
	c.mu.Lock()
	if c.inflight == sub {
		c.inflight = nil
		c.setTriggersEnabled(true)
		if err != nil {
			c.fail(logger, err)
		} else {
			c.render(logger, record)
		}
	}
	c.mu.Unlock()

	sub.finish(record, err)
}

func (c *Controller) fail(logger *slog.Logger, err error) {
	message := FailureMessage(err)
	if applyErr := c.apply(phase.Fail(message)); applyErr != nil {
		logger.Error("apply failure state", logging.Args(logging.Error(applyErr))...)
		return
	}
	logging.WarnWithContext(logger, "summarize failed", "submission_failed",
		logging.Error(err),
		logging.String("failure_class", string(services.FailureClass(err))),
		logging.String(logging.FieldErrorHint, "select the file again to retry"),
		logging.String(logging.FieldImpact, "no summary was rendered"),
	)
}

func (c *Controller) render(logger *slog.Logger, record summary.Record) {
	if err := c.apply(phase.Succeed()); err != nil {
		logger.Error("apply result state", logging.Args(logging.Error(err))...)
		return
	}
	c.b.GeneralSummary.SetText(summary.Text(string(record.GeneralSummary)))
	c.b.PatientDetails.SetText(summary.Text(string(record.PatientDetails)))
	c.b.Notes.SetText(summary.Text(string(record.DoctorsNotes)))

	renderList(c.b.Diagnosis, record.Diagnosis)
	renderList(c.b.Tests, record.TestResults)
	renderList(c.b.Medications, record.Medications)

	c.b.Icons.Decorate()
	logger.Info("summary rendered", logging.Args(
		logging.String(logging.FieldEventType, "summary_rendered"),
		logging.Int("diagnosis", len(record.Diagnosis)),
		logging.Int("tests", len(record.TestResults)),
		logging.Int("medications", len(record.Medications)),
	)...)
}

// renderList replaces the contents of slot with the display items for values.
func renderList(slot ListSlot, values []string) {
	slot.Clear()
	for _, item := range summary.Items(values) {
		slot.Append(item)
	}
}

// Reset returns from the result panel to the upload panels and clears the
// picker so the same file can be chosen again. A visible error banner is
// left as is.
func (c *Controller) Reset() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.apply(phase.Reset()); err != nil {
		return err
	}
	c.b.FileInput.Clear()
	return nil
}

// apply transitions the state and repaints the panels. Callers hold mu.
func (c *Controller) apply(ev phase.Event) error {
	next, err := phase.Transition(c.state, ev)
	if err != nil {
		return err
	}
	c.state = next
	c.paint()
	return nil
}

func (c *Controller) paint() {
	v := phase.Layout(c.state)
	c.b.Hero.SetVisible(v.Hero)
	c.b.Upload.SetVisible(v.Upload)
	c.b.Loading.SetVisible(v.Loading)
	c.b.Result.SetVisible(v.Result)
	if v.Banner {
		c.b.ErrorText.SetText(c.state.Banner)
	}
	c.b.ErrorBanner.SetVisible(v.Banner)
}

func (c *Controller) setTriggersEnabled(enabled bool) {
	c.b.FileInput.SetEnabled(enabled)
	c.b.DropZone.SetEnabled(enabled)
}

// Submission tracks one in-flight upload.
type Submission struct {
	ID       string
	FileName string

	started time.Time
	done    chan struct{}
	record  summary.Record
	err     error
	elapsed time.Duration
}

// Done is closed once the page reflects the outcome.
func (s *Submission) Done() <-chan struct{} { return s.done }

// Wait blocks until the submission completes or ctx ends, returning the
// submission error.
func (s *Submission) Wait(ctx context.Context) error {
	select {
	case <-s.done:
		return s.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Result returns the record and error. It is only meaningful after Done.
func (s *Submission) Result() (summary.Record, error) {
	select {
	case <-s.done:
		return s.record, s.err
	default:
		return summary.Record{}, ErrBusy
	}
}

// Elapsed reports how long the submission took. Zero until Done.
func (s *Submission) Elapsed() time.Duration {
	select {
	case <-s.done:
		return s.elapsed
	default:
		return 0
	}
}

func (s *Submission) finish(record summary.Record, err error) {
	s.record = record
	s.err = err
	s.elapsed = time.Since(s.started)
	close(s.done)
}
