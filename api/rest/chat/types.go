package chat

import (
	"codeberg.org/path2prevention/server/internal/discovery"
	"codeberg.org/path2prevention/server/internal/llm"
)

// request payload for semantic program search
type SearchRequest struct {
	Query               string        `json:"query" binding:"required,max=2000"`
	ConversationHistory []llm.Message `json:"conversation_history,omitempty" binding:"max=100"`
	Limit               int           `json:"limit,omitempty" binding:"omitempty,min=1,max=25"`
}

// response payload: ranked matches plus intent metadata extracted from the
// query (informational, not used to filter ranking)
type SearchResponse struct {
	Results []discovery.ScoredProgram `json:"results"`
	Intent  *llm.IntentResult         `json:"intent,omitempty"`
	Count   int                       `json:"count"`
}
