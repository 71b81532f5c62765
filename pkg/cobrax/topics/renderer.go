package topics

// Renderer turns a topic's raw file content into terminal output. ext is the
// topic file's extension, ".md" or ".txt".
type Renderer interface {
	Render(content string, ext string) string
}

// PlainRenderer prints topics verbatim
type PlainRenderer struct{}

// Render returns content unchanged
func (r *PlainRenderer) Render(content string, ext string) string {
	return content
}
