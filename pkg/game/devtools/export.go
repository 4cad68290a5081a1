package devtools

import (
	"bytes"
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/goccy/go-json"

	"bsplayout/pkg/engine/geom"
	"bsplayout/pkg/game/generator"
)

// treeDumper prints BSP trees without pointer addresses so dumps of equal
// trees compare equal
var treeDumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// WriteJSON writes res as indented JSON. The split tree is left out.
func WriteJSON(w io.Writer, res *generator.Result) error {
	b, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return fmt.Errorf("encode layout: %w", err)
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}

// ReadJSON decodes a layout previously written by WriteJSON
func ReadJSON(r io.Reader) (*generator.Result, error) {
	var res generator.Result
	if err := json.NewDecoder(r).Decode(&res); err != nil {
		return nil, fmt.Errorf("decode layout: %w", err)
	}
	return &res, nil
}

// WriteSegments writes one wall segment per line as "ax,ay bx,by h|v"
func WriteSegments(w io.Writer, segs []geom.WallSegment) error {
	var buf bytes.Buffer
	for _, s := range segs {
		orient := "h"
		if s.Vertical {
			orient = "v"
		}
		fmt.Fprintf(&buf, "%d,%d %d,%d %s\n", s.A.X, s.A.Y, s.B.X, s.B.Y, orient)
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// DumpTree writes a structural dump of the split tree
func DumpTree(w io.Writer, tree *generator.Node) {
	treeDumper.Fdump(w, tree)
}
