package web

import (
	_ "embed"
	"path/filepath"

	"github.com/rohanthewiz/element"
	"github.com/rohanthewiz/rweb"
)

//go:embed assets/js/viewer.js
var viewerJS string

//go:embed assets/css/viewer.css
var viewerCSS string

// viewerHandler serves the PDF viewer page using the element package
func viewerHandler(c rweb.Context) error {
	return c.WriteHTML(generateViewerUI(filepath.Base(eng.Root())))
}

func generateViewerUI(dirName string) string {
	b := element.NewBuilder()

	b.Html().R(
		b.Head().R(
			b.Title().T("PDFCast - Live PDF Viewer"),
			b.Meta("charset", "UTF-8"),
			b.Meta("name", "viewport", "content", "width=device-width, initial-scale=1.0"),
			b.Style().T(viewerCSS),
		),
		b.Body().R(
			b.Div("id", "app").R(
				b.Header().R(
					b.Div("class", "header-content").R(
						b.H1().T("PDFCast"),
						b.Div("class", "header-right").R(
							b.Span("class", "watched-dir").T(dirName),
							b.Span("id", "conn-status", "class", "conn-status").T("connecting"),
						),
					),
				),
				b.Div("id", "tab-strip", "class", "tab-strip").R(),
				b.Div("id", "viewer-pane", "class", "viewer-pane").R(
					// The viewer frame itself is created by viewer.js once
					// a document is selected
					b.Div("id", "empty-state", "class", "empty-state").T("Drop PDFs into the watched directory to view them here"),
				),
			),
			b.Script().T(viewerJS),
		),
	)

	return b.String()
}
