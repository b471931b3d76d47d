package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/cleitonmarx/symbiont-ai-commentapp/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func fallbackCorpus(t *testing.T) *domain.Corpus {
	t.Helper()
	records := []domain.CommentRecord{
		{ID: "1", Text: "east", Language: "english", Mood: "happy"},
		{ID: "2", Text: "north", Language: "english", Mood: "happy"},
		{ID: "3", Text: "north-again", Language: "english", Mood: "happy"},
		{ID: "4", Text: "zero", Language: "english", Mood: "happy"},
		{ID: "5", Text: "bengali-north", Language: "bengali", Mood: "happy"},
	}
	emb, err := domain.NewEmbeddingMatrix(5, 2, []float32{
		1, 0,
		0, 1,
		0, 2,
		0, 0,
		0, 1,
	})
	require.NoError(t, err)
	c, err := domain.NewCorpus(records, emb)
	require.NoError(t, err)
	return c
}

func TestFallbackCommentImpl_Execute(t *testing.T) {
	tests := map[string]struct {
		params          GenerateParams
		setExpectations func(t *testing.T, repo *domain.MockCorpusRepository, enc *domain.MockSemanticEncoder)
		assertResult    func(t *testing.T, res FallbackResult)
		expectedErr     error
	}{
		"dataset-unavailable": {
			params: GenerateParams{Mood: "happy", Language: "english"},
			setExpectations: func(t *testing.T, repo *domain.MockCorpusRepository, enc *domain.MockSemanticEncoder) {
				repo.EXPECT().Corpus(mock.Anything).Return(nil, domain.NewDataUnavailableErr("corpus not loaded", nil))
			},
			assertResult: func(t *testing.T, res FallbackResult) {
				assert.Equal(t, FallbackResult{Comment: NoSuitableCommentMessage}, res)
			},
		},
		"repository-error": {
			params: GenerateParams{Mood: "happy", Language: "english"},
			setExpectations: func(t *testing.T, repo *domain.MockCorpusRepository, enc *domain.MockSemanticEncoder) {
				repo.EXPECT().Corpus(mock.Anything).Return(nil, errors.New("boom"))
			},
			expectedErr: errors.New("boom"),
		},
		"no-records": {
			params: GenerateParams{Mood: "sad", Language: "english"},
			setExpectations: func(t *testing.T, repo *domain.MockCorpusRepository, enc *domain.MockSemanticEncoder) {
				repo.EXPECT().Corpus(mock.Anything).Return(fallbackCorpus(t), nil)
			},
			assertResult: func(t *testing.T, res FallbackResult) {
				assert.Equal(t, FallbackResult{Comment: NoSuitableCommentMessage, DatasetLoaded: true}, res)
			},
		},
		"no-context-random": {
			params: GenerateParams{Mood: "HAPPY", Language: "Bengali"},
			setExpectations: func(t *testing.T, repo *domain.MockCorpusRepository, enc *domain.MockSemanticEncoder) {
				repo.EXPECT().Corpus(mock.Anything).Return(fallbackCorpus(t), nil)
			},
			assertResult: func(t *testing.T, res FallbackResult) {
				assert.Equal(t, FallbackResult{Comment: "bengali-north", Found: true, DatasetLoaded: true}, res)
			},
		},
		"context-best-cosine-first-seen": {
			params: GenerateParams{Mood: "happy", Language: "english", Context: "up north"},
			setExpectations: func(t *testing.T, repo *domain.MockCorpusRepository, enc *domain.MockSemanticEncoder) {
				repo.EXPECT().Corpus(mock.Anything).Return(fallbackCorpus(t), nil)
				enc.EXPECT().Availability().Return(domain.EncoderAvailable)
				enc.EXPECT().VectorizeQuery(mock.Anything, "embed-model", "up north").
					Return(domain.EmbeddingVector{Vector: []float64{0, 3}}, nil).Once()
			},
			assertResult: func(t *testing.T, res FallbackResult) {
				// "north" and "north-again" both score 1; the first one wins
				assert.Equal(t, "north", res.Comment)
				assert.True(t, res.Found)
			},
		},
		"context-encoder-unavailable": {
			params: GenerateParams{Mood: "happy", Language: "bengali", Context: "up north"},
			setExpectations: func(t *testing.T, repo *domain.MockCorpusRepository, enc *domain.MockSemanticEncoder) {
				repo.EXPECT().Corpus(mock.Anything).Return(fallbackCorpus(t), nil)
				enc.EXPECT().Availability().Return(domain.EncoderUnavailable("no embedding model configured"))
			},
			assertResult: func(t *testing.T, res FallbackResult) {
				assert.Equal(t, "bengali-north", res.Comment)
			},
		},
		"context-encoder-error": {
			params: GenerateParams{Mood: "happy", Language: "bengali", Context: "up north"},
			setExpectations: func(t *testing.T, repo *domain.MockCorpusRepository, enc *domain.MockSemanticEncoder) {
				repo.EXPECT().Corpus(mock.Anything).Return(fallbackCorpus(t), nil)
				enc.EXPECT().Availability().Return(domain.EncoderAvailable)
				enc.EXPECT().VectorizeQuery(mock.Anything, "embed-model", "up north").
					Return(domain.EmbeddingVector{}, errors.New("timeout"))
			},
			assertResult: func(t *testing.T, res FallbackResult) {
				assert.Equal(t, "bengali-north", res.Comment)
			},
		},
		"context-zero-query-vector": {
			params: GenerateParams{Mood: "happy", Language: "english", Context: "nothing"},
			setExpectations: func(t *testing.T, repo *domain.MockCorpusRepository, enc *domain.MockSemanticEncoder) {
				repo.EXPECT().Corpus(mock.Anything).Return(fallbackCorpus(t), nil)
				enc.EXPECT().Availability().Return(domain.EncoderAvailable)
				enc.EXPECT().VectorizeQuery(mock.Anything, "embed-model", "nothing").
					Return(domain.EmbeddingVector{Vector: []float64{0, 0}}, nil)
			},
			assertResult: func(t *testing.T, res FallbackResult) {
				assert.Contains(t, []string{"east", "north", "north-again", "zero"}, res.Comment)
				assert.True(t, res.Found)
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			repo := domain.NewMockCorpusRepository(t)
			enc := domain.NewMockSemanticEncoder(t)
			if tt.setExpectations != nil {
				tt.setExpectations(t, repo, enc)
			}

			fc := NewFallbackCommentImpl(repo, enc, newRandom(), discardLogger(), "embed-model")

			got, gotErr := fc.Execute(context.Background(), tt.params)
			assert.Equal(t, tt.expectedErr, gotErr)
			if tt.assertResult != nil {
				tt.assertResult(t, got)
			}
		})
	}
}

func TestInitFallbackComment_Initialize(t *testing.T) {
	ifc := InitFallbackComment{}

	ctx, err := ifc.Initialize(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, ctx)

	registered, err := depend.Resolve[FallbackComment]()
	assert.NoError(t, err)
	assert.NotNil(t, registered)
}
