package integration

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/cleitonmarx/symbiont-ai-commentapp/internal/adapters/outbound/modelrunner"
	"github.com/cleitonmarx/symbiont-ai-commentapp/internal/domain"
	"github.com/goccy/go-json"
)

var corpusRecords = []domain.CommentRecord{
	{ID: "1", Text: "Your smile is my favourite song", Language: "english", Mood: "romantic", Style: "Poetic"},
	{ID: "2", Text: "Every frame of you feels like home", Language: "english", Mood: "romantic", Style: "Casual"},
	{ID: "3", Text: "This hit me right in the heart", Language: "english", Mood: "sad", Style: "Casual"},
	{ID: "4", Text: "তোমার হাসি আমার প্রিয় গান", Language: "bengali", Mood: "romantic", Style: "Poetic"},
}

var corpusEmbeddings = []float64{
	1, 0, 0,
	0.9, 0.1, 0,
	0, 1, 0,
	0, 0, 1,
}

const embeddingDim = 3

// writeCorpus writes the comment records and a float32 .npy matrix into dir.
func writeCorpus(dir string) (corpusPath, embeddingsPath string, err error) {
	data, err := json.Marshal(corpusRecords)
	if err != nil {
		return "", "", err
	}
	corpusPath = filepath.Join(dir, "comments.json")
	if err := os.WriteFile(corpusPath, data, 0o644); err != nil {
		return "", "", err
	}

	header := fmt.Sprintf("{'descr': '<f4', 'fortran_order': False, 'shape': (%d, %d), }", len(corpusRecords), embeddingDim)
	pad := (64 - (10+len(header)+1)%64) % 64
	header += string(bytes.Repeat([]byte(" "), pad)) + "\n"

	var buf bytes.Buffer
	buf.WriteString("\x93NUMPY")
	buf.Write([]byte{1, 0})
	if err := binary.Write(&buf, binary.LittleEndian, uint16(len(header))); err != nil {
		return "", "", err
	}
	buf.WriteString(header)
	for _, v := range corpusEmbeddings {
		if err := binary.Write(&buf, binary.LittleEndian, math.Float32bits(float32(v))); err != nil {
			return "", "", err
		}
	}
	embeddingsPath = filepath.Join(dir, "embeddings.npy")
	if err := os.WriteFile(embeddingsPath, buf.Bytes(), 0o644); err != nil {
		return "", "", err
	}
	return corpusPath, embeddingsPath, nil
}

// fakeModelHost serves the OpenAI-compatible chat and embedding endpoints.
type fakeModelHost struct {
	*httptest.Server
	chatCalls atomic.Int32
}

func newFakeModelHost() *fakeModelHost {
	f := &fakeModelHost{}
	mux := http.NewServeMux()
	mux.HandleFunc("POST /engines/v1/embeddings", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, modelrunner.EmbeddingsResponse{
			Object: "list",
			Usage:  modelrunner.EmbeddingsUsage{PromptTokens: 4, TotalTokens: 4},
			Data:   []modelrunner.EmbeddingData{{Embedding: []float64{1, 0, 0}, Object: "embedding"}},
		})
	})
	mux.HandleFunc("POST /v1/chat/completions", func(w http.ResponseWriter, r *http.Request) {
		f.chatCalls.Add(1)
		writeJSON(w, modelrunner.ChatResponse{
			Choices: []modelrunner.Choice{{
				Message: modelrunner.Message{
					Role: "assistant",
					Content: `{"comments":[
						{"comment":"Generated one","mood":"Romantic","style":"Poetic"},
						{"comment":"Generated two","mood":"Romantic","style":"Casual"},
						{"comment":"Generated three","mood":"Romantic","style":"Witty"},
						{"comment":"Generated four","mood":"Romantic","style":"Poetic"},
						{"comment":"Generated five","mood":"Romantic","style":"Casual"}
					]}`,
				},
			}},
		})
	})
	f.Server = httptest.NewServer(mux)
	return f
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
