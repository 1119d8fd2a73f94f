package entities

// PageContent pairs the body a remote page already holds with the block this
// run appends. Existing is never rewritten; Appended carries the separator so
// that Combined always starts with the existing bytes unchanged.
type PageContent struct {
	Existing string `json:"existing"`
	Appended string `json:"appended"`
}

// Combined is the full body written back to the page.
func (p PageContent) Combined() string {
	return p.Existing + p.Appended
}
