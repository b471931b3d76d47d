package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/cleitonmarx/symbiont-ai-commentapp/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestListStylesImpl_Query(t *testing.T) {
	tests := map[string]struct {
		setExpectations func(t *testing.T, repo *domain.MockCorpusRepository)
		expected        []string
		expectedErr     error
	}{
		"success": {
			setExpectations: func(t *testing.T, repo *domain.MockCorpusRepository) {
				repo.EXPECT().Corpus(mock.Anything).Return(browseCorpus(t), nil)
			},
			expected: []string{"Casual", "Poetic"},
		},
		"dataset-unavailable": {
			setExpectations: func(t *testing.T, repo *domain.MockCorpusRepository) {
				repo.EXPECT().Corpus(mock.Anything).Return(nil, domain.NewDataUnavailableErr("corpus not loaded", nil))
			},
			expected: []string{},
		},
		"repository-error": {
			setExpectations: func(t *testing.T, repo *domain.MockCorpusRepository) {
				repo.EXPECT().Corpus(mock.Anything).Return(nil, errors.New("boom"))
			},
			expectedErr: errors.New("boom"),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			repo := domain.NewMockCorpusRepository(t)
			tt.setExpectations(t, repo)

			got, err := NewListStylesImpl(repo).Query(context.Background())
			assert.Equal(t, tt.expectedErr, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestInitListStyles_Initialize(t *testing.T) {
	ils := InitListStyles{}

	ctx, err := ils.Initialize(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, ctx)

	registered, err := depend.Resolve[ListStyles]()
	assert.NoError(t, err)
	assert.NotNil(t, registered)
}
