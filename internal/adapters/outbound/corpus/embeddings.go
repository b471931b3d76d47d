package corpus

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cleitonmarx/symbiont-ai-commentapp/internal/common"
	"github.com/cleitonmarx/symbiont-ai-commentapp/internal/domain"
	"github.com/sbinet/npyio"
	"github.com/vmihailenco/msgpack/v5"
)

// msgpackMatrix is the on-disk layout of a .msgpack embedding file.
type msgpackMatrix struct {
	Rows int       `msgpack:"rows"`
	Dim  int       `msgpack:"dim"`
	Data []float32 `msgpack:"data"`
}

// readEmbeddings loads the embedding matrix, choosing the decoder by file extension.
func readEmbeddings(path string) (domain.EmbeddingMatrix, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".npy":
		f, err := os.Open(path)
		if err != nil {
			return domain.EmbeddingMatrix{}, fmt.Errorf("open embeddings: %w", err)
		}
		defer f.Close() //nolint:errcheck
		return decodeNPY(f)
	case ".msgpack", ".mpk":
		data, err := os.ReadFile(path)
		if err != nil {
			return domain.EmbeddingMatrix{}, fmt.Errorf("read embeddings: %w", err)
		}
		return decodeMsgpack(data)
	default:
		return domain.EmbeddingMatrix{}, fmt.Errorf("unsupported embeddings format %q", ext)
	}
}

// decodeNPY reads a 2-D, C-ordered float32 or float64 NumPy array.
func decodeNPY(r io.Reader) (domain.EmbeddingMatrix, error) {
	npy, err := npyio.NewReader(r)
	if err != nil {
		return domain.EmbeddingMatrix{}, fmt.Errorf("read npy header: %w", err)
	}

	descr := npy.Header.Descr
	if len(descr.Shape) != 2 {
		return domain.EmbeddingMatrix{}, fmt.Errorf("embeddings must be 2-D, got shape %v", descr.Shape)
	}
	if descr.Fortran {
		return domain.EmbeddingMatrix{}, fmt.Errorf("fortran-ordered embeddings are not supported")
	}
	rows, dim := descr.Shape[0], descr.Shape[1]

	var data []float32
	switch descr.Type {
	case "<f4", "f4", "float32":
		data = make([]float32, rows*dim)
		if err := npy.Read(&data); err != nil {
			return domain.EmbeddingMatrix{}, fmt.Errorf("read npy data: %w", err)
		}
	case "<f8", "f8", "float64":
		wide := make([]float64, rows*dim)
		if err := npy.Read(&wide); err != nil {
			return domain.EmbeddingMatrix{}, fmt.Errorf("read npy data: %w", err)
		}
		data = common.ToFloat32(wide)
	default:
		return domain.EmbeddingMatrix{}, fmt.Errorf("unsupported npy dtype %q", descr.Type)
	}

	return domain.NewEmbeddingMatrix(rows, dim, data)
}

func decodeMsgpack(data []byte) (domain.EmbeddingMatrix, error) {
	var m msgpackMatrix
	if err := msgpack.Unmarshal(data, &m); err != nil {
		return domain.EmbeddingMatrix{}, fmt.Errorf("msgpack unmarshal: %w", err)
	}
	return domain.NewEmbeddingMatrix(m.Rows, m.Dim, m.Data)
}
