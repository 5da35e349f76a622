package assets

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io/fs"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/qmuntal/gltf"
)

// ErrNoPositions is returned when a model has no triangle positions to read
var ErrNoPositions = errors.New("model has no positions")

// Model is a flattened triangle mesh in model space
type Model struct {
	Positions []mgl64.Vec3
	Indices   []int
	Min, Max  mgl64.Vec3
}

// HalfExtents returns the half size of the bounding box after uniform scaling
func (m *Model) HalfExtents(scale float64) mgl64.Vec3 {
	return m.Max.Sub(m.Min).Mul(0.5 * scale)
}

// Center returns the bounding box centre in model space
func (m *Model) Center() mgl64.Vec3 {
	return m.Min.Add(m.Max).Mul(0.5)
}

// LoadModel decodes a glTF file from fsys and merges all triangle primitives.
// Buffers must be embedded (GLB or data URIs).
func LoadModel(fsys fs.FS, path string) (*Model, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read model %s: %w", path, err)
	}

	var doc gltf.Document
	if err := gltf.NewDecoder(bytes.NewReader(data)).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode model %s: %w", path, err)
	}

	model := &Model{}
	for _, m := range doc.Meshes {
		for _, prim := range m.Primitives {
			if prim.Mode != gltf.PrimitiveTriangles && prim.Mode != 0 {
				continue
			}
			posIdx, ok := prim.Attributes[gltf.POSITION]
			if !ok {
				continue
			}

			positions, err := readVec3Accessor(&doc, posIdx)
			if err != nil {
				return nil, fmt.Errorf("model %s positions: %w", path, err)
			}
			base := len(model.Positions)
			model.Positions = append(model.Positions, positions...)

			if prim.Indices != nil {
				indices, err := readIndices(&doc, *prim.Indices)
				if err != nil {
					return nil, fmt.Errorf("model %s indices: %w", path, err)
				}
				for _, i := range indices {
					model.Indices = append(model.Indices, base+i)
				}
			} else {
				for i := range positions {
					model.Indices = append(model.Indices, base+i)
				}
			}
		}
	}

	if len(model.Positions) == 0 {
		return nil, fmt.Errorf("model %s: %w", path, ErrNoPositions)
	}

	model.Min = model.Positions[0]
	model.Max = model.Positions[0]
	for _, p := range model.Positions[1:] {
		for k := 0; k < 3; k++ {
			model.Min[k] = math.Min(model.Min[k], p[k])
			model.Max[k] = math.Max(model.Max[k], p[k])
		}
	}
	return model, nil
}

func bufferBytes(doc *gltf.Document, accessor *gltf.Accessor) ([]byte, int, int, error) {
	if accessor.BufferView == nil {
		return nil, 0, 0, fmt.Errorf("accessor has no buffer view")
	}
	view := doc.BufferViews[*accessor.BufferView]
	buf := doc.Buffers[view.Buffer]
	if len(buf.Data) == 0 {
		return nil, 0, 0, fmt.Errorf("buffer %d has no embedded data", view.Buffer)
	}
	return buf.Data, view.ByteOffset + accessor.ByteOffset, view.ByteStride, nil
}

func readVec3Accessor(doc *gltf.Document, idx int) ([]mgl64.Vec3, error) {
	accessor := doc.Accessors[idx]
	if accessor.Type != gltf.AccessorVec3 || accessor.ComponentType != gltf.ComponentFloat {
		return nil, fmt.Errorf("expected float VEC3, got %v/%v", accessor.Type, accessor.ComponentType)
	}
	data, start, stride, err := bufferBytes(doc, accessor)
	if err != nil {
		return nil, err
	}
	if stride == 0 {
		stride = 12
	}
	if need := start + (accessor.Count-1)*stride + 12; accessor.Count > 0 && need > len(data) {
		return nil, fmt.Errorf("accessor %d overruns buffer (%d > %d)", idx, need, len(data))
	}

	out := make([]mgl64.Vec3, accessor.Count)
	for i := range out {
		off := start + i*stride
		for j := 0; j < 3; j++ {
			bits := binary.LittleEndian.Uint32(data[off+j*4:])
			out[i][j] = float64(math.Float32frombits(bits))
		}
	}
	return out, nil
}

func readIndices(doc *gltf.Document, idx int) ([]int, error) {
	accessor := doc.Accessors[idx]
	if accessor.Type != gltf.AccessorScalar {
		return nil, fmt.Errorf("expected SCALAR indices, got %v", accessor.Type)
	}
	data, start, stride, err := bufferBytes(doc, accessor)
	if err != nil {
		return nil, err
	}

	var size int
	switch accessor.ComponentType {
	case gltf.ComponentUbyte:
		size = 1
	case gltf.ComponentUshort:
		size = 2
	case gltf.ComponentUint:
		size = 4
	default:
		return nil, fmt.Errorf("unsupported index type %v", accessor.ComponentType)
	}
	if stride == 0 {
		stride = size
	}
	if need := start + (accessor.Count-1)*stride + size; accessor.Count > 0 && need > len(data) {
		return nil, fmt.Errorf("accessor %d overruns buffer (%d > %d)", idx, need, len(data))
	}

	out := make([]int, accessor.Count)
	for i := range out {
		off := start + i*stride
		switch size {
		case 1:
			out[i] = int(data[off])
		case 2:
			out[i] = int(binary.LittleEndian.Uint16(data[off:]))
		case 4:
			out[i] = int(binary.LittleEndian.Uint32(data[off:]))
		}
	}
	return out, nil
}
