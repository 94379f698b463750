package webui

import (
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"medsum/internal/logging"
	"medsum/internal/page"
	"medsum/internal/services/summarizer"
	"medsum/internal/upload"
)

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.renderIdle(w, http.StatusOK)
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	s.renderIdle(w, http.StatusOK)
}

func (s *Server) renderIdle(w http.ResponseWriter, status int) {
	doc := page.New()
	if _, err := upload.New(doc.Bindings(), s.client, upload.WithLogger(s.logger)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.render(w, status, doc)
}

// handleUpload streams the first "file" part straight into the controller.
// A request without a file renders the idle page unchanged.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	if s.maxUpload > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, s.maxUpload)
	}

	doc := page.New()
	ctrl, err := upload.New(doc.Bindings(), s.client, upload.WithLogger(s.logger))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	reader, err := r.MultipartReader()
	if err != nil {
		s.render(w, http.StatusOK, doc)
		return
	}
	part, err := nextFilePart(reader)
	if err != nil {
		s.render(w, statusFor(err), doc)
		return
	}
	if part == nil {
		s.render(w, http.StatusOK, doc)
		return
	}
	defer part.Close()

	doc.FileInput.Select(part.FileName())
	sub, err := ctrl.HandleFiles(r.Context(), []upload.File{{
		Name: part.FileName(),
		Type: part.Header.Get("Content-Type"),
		Body: part,
	}})
	switch {
	case errors.Is(err, upload.ErrInvalidFile):
		s.render(w, http.StatusUnsupportedMediaType, doc)
		return
	case err != nil:
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	// The summarizer shares r.Context(), so this returns soon after a disconnect.
	err = sub.Wait(context.Background())
	if err != nil {
		logging.WithContext(r.Context(), s.logger).Debug("upload settled with failure", logging.Args(
			logging.String(logging.FieldCorrelationID, sub.ID),
			logging.Error(err),
		)...)
	}
	s.render(w, statusFor(err), doc)
}

// nextFilePart returns the first part named "file" that carries a file
// name, or nil when the form has none.
func nextFilePart(reader *multipart.Reader) (*multipart.Part, error) {
	for {
		part, err := reader.NextPart()
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		if part.FormName() == "file" && part.FileName() != "" {
			return part, nil
		}
		_ = part.Close()
	}
}

func statusFor(err error) int {
	if err == nil {
		return http.StatusOK
	}
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	var status *summarizer.StatusError
	if errors.As(err, &status) && status.StatusCode >= 400 && status.StatusCode < 500 {
		return status.StatusCode
	}
	return http.StatusBadGateway
}
