package bookmarks

// WalkFunc is called for every node visited by Walk. Depth is 0 for
// the immediate children of the starting directory.
type WalkFunc func(n Node, depth int) error

// Walk traverses the directory depth-first in document order, calling
// fn for every descendant node. The starting directory itself is not
// visited. Traversal stops at the first error, including the
// unrecognized-type failure from Children.
func Walk(dir *Directory, fn WalkFunc) error {
	return walk(dir, 0, fn)
}

func walk(dir *Directory, depth int, fn WalkFunc) error {
	children, err := dir.Children()
	if err != nil {
		return err
	}
	for _, child := range children {
		if err := fn(child, depth); err != nil {
			return err
		}
		if sub, ok := child.(*Directory); ok {
			if err := walk(sub, depth+1, fn); err != nil {
				return err
			}
		}
	}
	return nil
}
