package workflow

import "github.com/hashsign/hashsign/core"

type signRequest struct {
	Signer string `json:"signer"`
}

type createResponse struct {
	ID uint `json:"id"`
}

type listResponse struct {
	Documents []documentView `json:"documents"`
}

// documentView augments the stored document with its derived state for the
// presentation layer.
type documentView struct {
	core.Document
	State       string `json:"state"`
	IsCompleted bool   `json:"isCompleted"`
}

func newDocumentView(d core.Document) documentView {
	return documentView{
		Document:    d,
		State:       d.State(),
		IsCompleted: d.IsCompleted(),
	}
}
