package api

import (
	"net/http"

	"github.com/zaishu/zaishu-api/internal/api/shared"
	"github.com/zaishu/zaishu-api/internal/domain"
	"github.com/zaishu/zaishu-api/internal/store"
)

const (
	codeFeedbackMissingUserID  = 1
	codeFeedbackMissingContent = 2
)

// FeedbackHandler accepts user feedback.
type FeedbackHandler struct {
	feedback store.FeedbackStore
}

// NewFeedbackHandler creates a FeedbackHandler.
func NewFeedbackHandler(feedback store.FeedbackStore) *FeedbackHandler {
	return &FeedbackHandler{feedback: feedback}
}

// Create stores one feedback entry. userId is checked before content.
func (h *FeedbackHandler) Create(r *http.Request) (any, error) {
	p, err := shared.ParseParams(r)
	if err != nil {
		return nil, err
	}

	var req feedbackRequest
	req.UserID, _ = p.Int64("userId")
	req.Content, _ = p.String("content")

	if err := shared.ValidateRequest(&req); err != nil {
		switch shared.FirstInvalidField(err) {
		case "UserID":
			return nil, shared.Validation(codeFeedbackMissingUserID, "miss userId")
		case "Content":
			return nil, shared.Validation(codeFeedbackMissingContent, "miss content")
		}
		return nil, err
	}

	fb, err := domain.NewFeedback(req.UserID, req.Content)
	if err != nil {
		return nil, err
	}
	if err := h.feedback.Create(r.Context(), fb); err != nil {
		return nil, err
	}
	return success(), nil
}
