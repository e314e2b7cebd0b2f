package bookmarks_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/marks/pkg/bookmarks"
	"github.com/arthur-debert/marks/pkg/errors"
)

func TestNewBookmark(t *testing.T) {
	b := bookmarks.NewBookmark("go-blog", "The Go Blog", "https://go.dev/blog")

	assert.Equal(t, "go-blog", b.ID())
	assert.Equal(t, bookmarks.TypeBookmark, b.Type())
	assert.Equal(t, "The Go Blog", b.DisplayName())
	assert.Equal(t, "https://go.dev/blog", b.URL())
	assert.Nil(t, b.Parent())
}

func TestBookmarkIDDerivedFromName(t *testing.T) {
	tests := []struct {
		name        string
		displayName string
		want        string
	}{
		{
			name:        "simple name",
			displayName: "Weekly Reads",
			want:        "weekly-reads",
		},
		{
			name:        "name with punctuation",
			displayName: "Go: the language!",
			want:        "go-the-language",
		},
		{
			name:        "empty name",
			displayName: "",
			want:        "untitled",
		},
		{
			name:        "digit-leading name gets prefixed",
			displayName: "2FA Guide",
			want:        "n-2fa-guide",
		},
		{
			name:        "all-numeric name gets prefixed",
			displayName: "1984",
			want:        "n-1984",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := bookmarks.NewBookmark("", tt.displayName, "https://example.com")
			assert.Equal(t, tt.want, b.ID())
		})
	}
}

func TestValidateID(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{name: "plain slug", id: "go-blog"},
		{name: "underscore start", id: "_internal"},
		{name: "dots and digits", id: "v1.2-notes"},
		{name: "digit-leading", id: "2fa-guide", wantErr: true},
		{name: "empty", id: "", wantErr: true},
		{name: "space", id: "go blog", wantErr: true},
		{name: "slash", id: "a/b", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := bookmarks.ValidateID(tt.id)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestSettersWriteThroughToElement(t *testing.T) {
	b := bookmarks.NewBookmark("news", "News", "https://old.example.com")

	b.SetDisplayName("Tech News")
	b.SetURL("https://new.example.com")

	el := b.Element()
	assert.Equal(t, "Tech News", el.SelectAttrValue(bookmarks.AttrName, ""))
	assert.Equal(t, "https://new.example.com", el.SelectAttrValue(bookmarks.AttrURL, ""))
}

func TestElementCarriesTypeAttribute(t *testing.T) {
	b := bookmarks.NewBookmark("a", "A", "https://a.example.com")
	d := bookmarks.NewDirectory("d", "D")

	assert.Equal(t, "bookmark", b.Element().SelectAttrValue(bookmarks.AttrType, ""))
	assert.Equal(t, "directory", d.Element().SelectAttrValue(bookmarks.AttrType, ""))
}

func TestTreePath(t *testing.T) {
	root := bookmarks.NewRoot()
	work := bookmarks.NewDirectory("work", "Work")
	infra := bookmarks.NewDirectory("infra", "Infra")
	b := bookmarks.NewBookmark("runbook", "Runbook", "https://wiki.example.com/runbook")

	root.AddChild(work)
	work.AddChild(infra)
	infra.AddChild(b)

	path := b.TreePath()
	require.Len(t, path, 4)
	assert.Equal(t, "bookmarks", path[0].ID())
	assert.Equal(t, "work", path[1].ID())
	assert.Equal(t, "infra", path[2].ID())
	assert.Equal(t, "runbook", path[3].ID())
}

func TestTreePathOfRoot(t *testing.T) {
	root := bookmarks.NewRoot()

	path := root.TreePath()
	require.Len(t, path, 1)
	assert.Equal(t, bookmarks.RootID, path[0].ID())
}
