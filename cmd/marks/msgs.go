package main

// Short messages (one-liners)
const (
	MsgRootShort    = "A bookmark tree manager"
	MsgAddShort     = "Add a bookmark"
	MsgMkdirShort   = "Create a bookmark directory"
	MsgRmShort      = "Remove a bookmark or directory"
	MsgMvShort      = "Move a node to another directory"
	MsgRenameShort  = "Rename a bookmark or directory"
	MsgListShort    = "Show the bookmark tree"
	MsgFindShort    = "Fuzzy-search bookmarks by name or URL"
	MsgExportShort  = "Export the tree as xml, yaml or markdown"
	MsgImportShort  = "Import bookmarks from an XML file"
	MsgPreviewShort = "Render the tree as markdown in the terminal"
	MsgVersionShort = "Print version information"

	// Flag descriptions
	MsgFlagDir        = "Directory path to operate in, e.g. work/infra"
	MsgFlagID         = "Explicit node id (default: derived from the name)"
	MsgFlagFetchTitle = "Fetch the page title and use it as the display name"
	MsgFlagFormat     = "Export format: xml, yaml or markdown"
	MsgFlagOutput     = "Write to file instead of stdout"

	// Status messages
	MsgAdded        = "Added '%s' under '%s'\n"
	MsgDirCreated   = "Created directory '%s' under '%s'\n"
	MsgRemoved      = "Removed '%s'\n"
	MsgMoved        = "Moved '%s' to '%s'\n"
	MsgRenamed      = "Renamed '%s' to '%s'\n"
	MsgImported     = "Imported %d top-level nodes from %s\n"
	MsgNoMatches    = "No matches."
	MsgEmptyTree    = "No bookmarks yet. Add one with 'marks add <url>'."
	MsgCannotRmRoot = "cannot remove the root directory"
)

// Long messages
const (
	MsgRootLong = `marks manages a tree of bookmarks and bookmark directories.

The tree is stored as an XML document (by default in the XDG data
directory) and every command works directly against that file. Node
ids are stable slugs derived from display names, and nested nodes are
addressed by slash-separated id paths, e.g. work/infra/runbook.`

	MsgAddLong = `Add a bookmark to the tree.

The display name defaults to the URL, or to the page title when
--fetch-title is given. The node id is a slug derived from the display
name unless --id is set.`
)
