package asset

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeGLTF writes a single-primitive .gltf file with an embedded buffer.
// indices may be nil for a non-indexed primitive.
func writeGLTF(t *testing.T, dir, name string, positions [][3]float32, indices []uint16) string {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, positions))
	posLen := buf.Len()
	if indices != nil {
		require.NoError(t, binary.Write(&buf, binary.LittleEndian, indices))
	}

	views := []map[string]any{
		{"buffer": 0, "byteOffset": 0, "byteLength": posLen},
	}
	accessors := []map[string]any{
		{"bufferView": 0, "componentType": 5126, "count": len(positions), "type": "VEC3"},
	}
	prim := map[string]any{"attributes": map[string]int{"POSITION": 0}}
	if indices != nil {
		views = append(views, map[string]any{"buffer": 0, "byteOffset": posLen, "byteLength": buf.Len() - posLen})
		accessors = append(accessors, map[string]any{"bufferView": 1, "componentType": 5123, "count": len(indices), "type": "SCALAR"})
		prim["indices"] = 1
	}

	doc := map[string]any{
		"asset": map[string]any{"version": "2.0"},
		"buffers": []map[string]any{{
			"byteLength": buf.Len(),
			"uri":        "data:application/octet-stream;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()),
		}},
		"bufferViews": views,
		"accessors":   accessors,
		"meshes": []map[string]any{{
			"name":       name,
			"primitives": []map[string]any{prim},
		}},
	}

	data, err := json.Marshal(doc)
	require.NoError(t, err)

	path := filepath.Join(dir, name+".gltf")
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

// quad is the unit square in the XY plane facing +Z.
var quad = [][3]float32{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}}

var quadIndices = []uint16{0, 1, 2, 0, 2, 3}

// quadSoup is the same square as two triangles without shared vertices.
var quadSoup = [][3]float32{
	{0, 0, 0}, {1, 0, 0}, {1, 1, 0},
	{0, 0, 0}, {1, 1, 0}, {0, 1, 0},
}
