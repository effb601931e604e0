package http

import (
	"net/http"

	"github.com/andinaops/attendance-backend-go/internal/domain/accesstoken"
	"github.com/andinaops/attendance-backend-go/internal/handler/http/response"
	accesstokenService "github.com/andinaops/attendance-backend-go/internal/service/accesstoken"
	"github.com/go-chi/chi/v5"
)

type AccessTokenHandler interface {
	Issue(w http.ResponseWriter, r *http.Request)
}

type accessTokenHandlerImpl struct {
	tokenService accesstokenService.Service
}

func NewAccessTokenHandler(tokenService accesstokenService.Service) AccessTokenHandler {
	return &accessTokenHandlerImpl{
		tokenService: tokenService,
	}
}

// Issue implements AccessTokenHandler.
func (h *accessTokenHandlerImpl) Issue(w http.ResponseWriter, r *http.Request) {
	req := accesstoken.IssueTokenRequest{
		SiteID: chi.URLParam(r, "siteID"),
	}

	result, err := h.tokenService.Issue(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, result)
}
