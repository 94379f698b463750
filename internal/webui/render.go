package webui

import (
	"bytes"
	"html/template"
	"net/http"

	"medsum/internal/logging"
	"medsum/internal/page"
	"medsum/internal/textutil"
	"medsum/internal/upload"
)

var pageTemplate = template.Must(template.New("page").Funcs(template.FuncMap{
	"plain": textutil.PlainText,
}).Parse(pageHTML))

type panelView struct {
	ID     string
	Hidden bool
}

type pageView struct {
	FileInputID string
	DropZoneID  string
	ResetID     string
	Disabled    bool

	Hero    panelView
	Upload  panelView
	Loading panelView
	Result  panelView
	Banner  panelView

	ErrorTextID string
	ErrorText   string

	Sections []page.SectionView
}

func newPageView(doc *page.Document) pageView {
	banner, _ := doc.Banner()
	return pageView{
		FileInputID: doc.FileInput.ID,
		DropZoneID:  doc.DropZone.ID,
		ResetID:     upload.IDResetButton,
		Disabled:    doc.FileInput.Disabled,
		Hero:        panelView{doc.Hero.ID, doc.Hero.Hidden},
		Upload:      panelView{doc.Upload.ID, doc.Upload.Hidden},
		Loading:     panelView{doc.Loading.ID, doc.Loading.Hidden},
		Result:      panelView{doc.Result.ID, doc.Result.Hidden},
		Banner:      panelView{doc.ErrorBanner.ID, doc.ErrorBanner.Hidden},
		ErrorTextID: doc.ErrorText.ID,
		ErrorText:   banner,
		Sections:    doc.Sections(),
	}
}

func (s *Server) render(w http.ResponseWriter, status int, doc *page.Document) {
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, newPageView(doc)); err != nil {
		s.logger.Error("render page", logging.Args(logging.Error(err))...)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}
