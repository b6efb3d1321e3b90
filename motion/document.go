// SPDX-License-Identifier: MIT

package motion

import (
	"fmt"
	"io"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
	"gopkg.in/yaml.v3"
)

// Document is the YAML snapshot form of a Clip. Rotations are stored as
// [w, x, y, z]. World positions are not stored; they are derived again when
// the document is turned back into a Clip.
type Document struct {
	FrameTime float64       `yaml:"frame_time"`
	Bones     []BoneDoc     `yaml:"bones"`
	Frames    []FrameRecord `yaml:"frames"`
}

// BoneDoc is one skeleton entry of a Document.
type BoneDoc struct {
	Name   string     `yaml:"name"`
	Parent int        `yaml:"parent"`
	Offset [3]float64 `yaml:"offset,flow"`
}

// FrameRecord is one frame of a Document.
type FrameRecord struct {
	Root      [3]float64   `yaml:"root,flow"`
	Rotations [][4]float64 `yaml:"rotations,flow"`
}

// Document returns the snapshot form of c.
func (c *Clip) Document() Document {
	d := Document{
		FrameTime: c.frameTime,
		Bones:     make([]BoneDoc, c.skel.Len()),
		Frames:    make([]FrameRecord, len(c.root)),
	}
	for i, b := range c.skel.bones {
		d.Bones[i] = BoneDoc{Name: b.Name, Parent: b.Parent, Offset: [3]float64{b.Offset.X, b.Offset.Y, b.Offset.Z}}
	}
	for f := range c.root {
		p := c.root[f]
		rec := FrameRecord{Root: [3]float64{p.X, p.Y, p.Z}, Rotations: make([][4]float64, len(c.rot[f]))}
		for k, q := range c.rot[f] {
			rec.Rotations[k] = [4]float64{q.Real, q.Imag, q.Jmag, q.Kmag}
		}
		d.Frames[f] = rec
	}

	return d
}

// FromDocument builds a Clip from its snapshot form.
func FromDocument(d Document) (*Clip, error) {
	bones := make([]Bone, len(d.Bones))
	for i, b := range d.Bones {
		bones[i] = Bone{Name: b.Name, Parent: b.Parent, Offset: r3.Vec{X: b.Offset[0], Y: b.Offset[1], Z: b.Offset[2]}}
	}
	skel, err := NewSkeleton(bones)
	if err != nil {
		return nil, fmt.Errorf("motion.FromDocument: %w", err)
	}

	root := make([]r3.Vec, len(d.Frames))
	rot := make([][]quat.Number, len(d.Frames))
	for f, rec := range d.Frames {
		root[f] = r3.Vec{X: rec.Root[0], Y: rec.Root[1], Z: rec.Root[2]}
		rot[f] = make([]quat.Number, len(rec.Rotations))
		for k, q := range rec.Rotations {
			rot[f][k] = quat.Number{Real: q[0], Imag: q[1], Jmag: q[2], Kmag: q[3]}
		}
	}

	return NewClip(skel, d.FrameTime, root, rot)
}

// Encode writes c to w as a YAML Document.
func Encode(w io.Writer, c *Clip) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c.Document()); err != nil {
		return fmt.Errorf("motion.Encode: %w", err)
	}

	return enc.Close()
}

// Decode reads one YAML Document from r and builds a Clip from it.
func Decode(r io.Reader) (*Clip, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var d Document
	if err := dec.Decode(&d); err != nil {
		return nil, fmt.Errorf("motion.Decode: %w", err)
	}

	return FromDocument(d)
}
