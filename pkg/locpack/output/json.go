// Package output writes export artifacts: per-language JSON files and the
// final archive.
package output

import (
	"encoding/json"
	"os"

	"github.com/iancoleman/orderedmap"
)

// WriteDocument writes one language's export document as 2-space indented
// JSON. Key order follows insertion order, so the file mirrors the workbook's
// sheet and row order.
func WriteDocument(path string, doc *orderedmap.OrderedMap) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
