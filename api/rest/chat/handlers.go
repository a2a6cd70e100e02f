package chat

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"codeberg.org/path2prevention/server/internal/discovery"
	"codeberg.org/path2prevention/server/internal/errors"
)

// SearchHandler ranks programs against a free-text query. A not-yet-built
// index yields 503 so the caller can distinguish "index not ready" from
// "no programs matched".
func SearchHandler(svc *discovery.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SearchRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		result, err := svc.SearchSemantic(c.Request.Context(), req.Query, req.ConversationHistory, req.Limit)
		if err != nil {
			switch {
			case stderrors.Is(err, discovery.ErrEmptyQuery):
				errors.BadRequest(c, "query must not be empty", nil)
			case stderrors.Is(err, discovery.ErrIndexUnavailable):
				errors.IndexUnavailable(c)
			default:
				errors.ProviderError(c, "semantic search failed", err)
			}

			return
		}

		c.JSON(http.StatusOK, SearchResponse{
			Results: result.Results,
			Intent:  result.Intent,
			Count:   len(result.Results),
		})
	}
}
