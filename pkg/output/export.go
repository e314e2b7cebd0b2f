package output

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/marks/pkg/bookmarks"
	"github.com/arthur-debert/marks/pkg/errors"
	"github.com/arthur-debert/marks/pkg/manager"
)

// Format names an export format
type Format string

const (
	FormatXML      Format = "xml"
	FormatYAML     Format = "yaml"
	FormatMarkdown Format = "markdown"
)

// ParseFormat validates a format name
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatXML, FormatYAML, FormatMarkdown:
		return Format(s), nil
	default:
		return "", errors.Newf(errors.ErrInvalidInput, "unknown export format %q", s)
	}
}

// Export serializes the manager's tree in the given format
func Export(m *manager.Manager, format Format) (string, error) {
	switch format {
	case FormatXML:
		return exportXML(m)
	case FormatYAML:
		return exportYAML(m)
	case FormatMarkdown:
		return ExportMarkdown(m)
	default:
		return "", errors.Newf(errors.ErrInvalidInput, "unknown export format %q", format)
	}
}

func exportXML(m *manager.Manager) (string, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	doc.SetRoot(m.State())
	doc.Indent(2)

	out, err := doc.WriteToString()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to serialize tree")
	}
	return out, nil
}

// yamlNode mirrors a tree node for YAML export
type yamlNode struct {
	ID       string     `yaml:"id"`
	Name     string     `yaml:"name"`
	Type     string     `yaml:"type"`
	URL      string     `yaml:"url,omitempty"`
	Children []yamlNode `yaml:"children,omitempty"`
}

func exportYAML(m *manager.Manager) (string, error) {
	nodes, err := yamlChildren(m.Root())
	if err != nil {
		return "", err
	}

	out, err := yaml.Marshal(nodes)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to marshal tree")
	}
	return string(out), nil
}

func yamlChildren(dir *bookmarks.Directory) ([]yamlNode, error) {
	children, err := dir.Children()
	if err != nil {
		return nil, err
	}

	nodes := make([]yamlNode, 0, len(children))
	for _, child := range children {
		node := yamlNode{
			ID:   child.ID(),
			Name: child.DisplayName(),
			Type: string(child.Type()),
		}
		switch c := child.(type) {
		case *bookmarks.Bookmark:
			node.URL = c.URL()
		case *bookmarks.Directory:
			sub, err := yamlChildren(c)
			if err != nil {
				return nil, err
			}
			node.Children = sub
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}

// ExportMarkdown renders the tree as a nested markdown list:
// directories in bold, bookmarks as links.
func ExportMarkdown(m *manager.Manager) (string, error) {
	var sb strings.Builder
	sb.WriteString("# Bookmarks\n\n")

	err := bookmarks.Walk(m.Root(), func(n bookmarks.Node, depth int) error {
		indent := strings.Repeat("  ", depth)
		switch c := n.(type) {
		case *bookmarks.Directory:
			fmt.Fprintf(&sb, "%s- **%s**\n", indent, label(c))
		case *bookmarks.Bookmark:
			fmt.Fprintf(&sb, "%s- [%s](%s)\n", indent, label(c), c.URL())
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return sb.String(), nil
}
