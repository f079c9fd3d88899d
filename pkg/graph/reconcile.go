package graph

import "github.com/bricklayer25/jsoncrack.com/pkg/models"

// Reconcile finds the node in a rebuilt node set whose path is
// structurally equal to the one captured before an edit. A miss is not an
// error; the caller simply leaves the selection alone.
func Reconcile(nodes []models.NodeData, path models.Path) (models.NodeData, bool) {
	for _, node := range nodes {
		if node.Path.Equal(path) {
			return node, true
		}
	}
	return models.NodeData{}, false
}
