package sink

import (
	"encoding/json"

	"github.com/plasmidmap/plasmidmap/pkg/errors"
	"github.com/plasmidmap/plasmidmap/pkg/render/circular/layout"
)

// RenderJSON serializes a computed layout as indented JSON. The output
// round-trips through ParseJSON, which external tooling can use to draw
// the map without recomputing geometry.
func RenderJSON(l *layout.Layout) ([]byte, error) {
	data, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encoding layout json")
	}
	return append(data, '\n'), nil
}

// ParseJSON decodes a layout previously rendered with RenderJSON.
func ParseJSON(data []byte) (*layout.Layout, error) {
	var l layout.Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decoding layout json")
	}
	return &l, nil
}
