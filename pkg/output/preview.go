package output

import (
	"github.com/charmbracelet/glamour"

	"github.com/arthur-debert/marks/pkg/manager"
)

// RenderPreview renders the markdown export of the tree for the
// terminal using glamour, falling back to the plain markdown when the
// renderer cannot be set up.
func RenderPreview(m *manager.Manager) (string, error) {
	md, err := ExportMarkdown(m)
	if err != nil {
		return "", err
	}

	renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		return md, nil
	}

	rendered, err := renderer.Render(md)
	if err != nil {
		return md, nil
	}
	return rendered, nil
}
