//go:build !linux

package platform

// deviceTreeModel is only meaningful on the embedded Linux boards.
func deviceTreeModel(root string) string {
	return ""
}
