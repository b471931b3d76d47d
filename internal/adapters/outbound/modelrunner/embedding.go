package modelrunner

import (
	"fmt"
	"strings"
)

// QueryPrompter formats a search query the way an embedding model was trained to see it.
type QueryPrompter interface {
	QueryPrompt(query string) string
}

// queryPrompterFor returns the QueryPrompter for the model name.
func queryPrompterFor(model string) QueryPrompter {
	switch {
	case strings.Contains(model, "embeddinggemma"):
		return gemmaPrompter{}
	case strings.Contains(model, "e5"):
		return e5Prompter{}
	default:
		return plainPrompter{}
	}
}

type gemmaPrompter struct{}

func (gemmaPrompter) QueryPrompt(query string) string {
	return fmt.Sprintf("task: search result | query: %s", query)
}

// e5Prompter covers the multilingual-e5 family, which expects a "query: " prefix.
type e5Prompter struct{}

func (e5Prompter) QueryPrompt(query string) string {
	return "query: " + query
}

type plainPrompter struct{}

func (plainPrompter) QueryPrompt(query string) string {
	return query
}
