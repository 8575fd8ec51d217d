package controllers

import (
	"context"
	"fmt"
	"net/http"

	"univo/services"

	"github.com/gin-gonic/gin"
)

// SuggestionController serves the mood-aware next-task suggestion.
type SuggestionController struct {
	suggestions *services.SuggestionService
}

func NewSuggestionController(suggestions *services.SuggestionService) *SuggestionController {
	return &SuggestionController{suggestions: suggestions}
}

// SuggestNext returns a suggestion message for the user.
func (sc *SuggestionController) SuggestNext(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		respondError(c, fmt.Errorf("%w: user_id is required", services.ErrValidation))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	message, err := sc.suggestions.SuggestNext(ctx, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": message})
}
