package server

import (
	"net/http"

	g "maragu.dev/gomponents"
)

var htmlContentType = []string{"text/html; charset=utf-8"}

// nodeRender adapts a gomponents node to gin's render.Render.
type nodeRender struct {
	node g.Node
}

func (r nodeRender) Render(w http.ResponseWriter) error {
	r.WriteContentType(w)
	return r.node.Render(w)
}

func (r nodeRender) WriteContentType(w http.ResponseWriter) {
	header := w.Header()
	if val := header["Content-Type"]; len(val) == 0 {
		header["Content-Type"] = htmlContentType
	}
}
