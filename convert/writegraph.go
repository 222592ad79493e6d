package convert

import (
	"encoding/json"
	"os"

	"github.com/costela/flatconv/valuenode"
)

// linkRecord is one JSON-lines row describing a presolve-DAG link, for the
// tech:writegraph debugging dump.
type linkRecord struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Kind   string `json:"kind"`
}

// writeGraph dumps every registered link as JSON-lines to path, in
// registration order.
func (conv *Converter) writeGraph(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	for _, link := range conv.presolver.Links() {
		kind := "copy"
		if _, ok := link.(*valuenode.CopyLink); !ok {
			kind = "one2many"
		}
		rec := linkRecord{
			Source: link.Source().String(),
			Target: link.Target().String(),
			Kind:   kind,
		}
		if err := enc.Encode(rec); err != nil {
			return err
		}
	}
	return nil
}
