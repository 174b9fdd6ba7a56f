package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dkoleda/crowdledger/internal/domain"
	"github.com/dkoleda/crowdledger/internal/dto"
	"github.com/dkoleda/crowdledger/internal/service/authservice"
	pkgauth "github.com/dkoleda/crowdledger/pkg/auth"
	"github.com/dkoleda/crowdledger/pkg/utils"
	"github.com/go-chi/chi/v5"
)

type Service interface {
	SignIn(ctx context.Context, email string, authState domain.AuthState) (string, error)
	RedeemToken(ctx context.Context, token string) (string, error)
}

type AuthHandler struct {
	authService Service
}

func New(authService Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// SignIn godoc
//
//	@Summary		Request a login link
//	@Description	Send a one-time login link to the given email and return the control phrase shown in the mail.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SigninRequestDTO	true	"Email to sign in with"
//	@Success		200		{object}	dto.SigninResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid email address"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/auth/signin [post]
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req dto.SigninRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	authState := pkgauth.StateFromContext(r.Context())
	phrase, err := h.authService.SignIn(r.Context(), req.Email, authState)
	if err != nil {
		if errors.Is(err, authservice.ErrInvalidEmail) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.SigninResponseDTO{Phrase: phrase})
}

// RedeemToken godoc
//
//	@Summary		Redeem a login link
//	@Description	Exchange the token from a login link for a session token. Marks the email as verified.
//	@Tags			Auth
//	@Produce		json
//	@Param			token	path		string	true	"Signin token from the mailed link"
//	@Success		200		{object}	dto.TokenResponseDTO
//	@Failure		401		{object}	utils.Response	"Invalid or expired token"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/auth/signin/{token} [get]
func (h *AuthHandler) RedeemToken(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	sessionToken, err := h.authService.RedeemToken(r.Context(), token)
	if err != nil {
		if errors.Is(err, authservice.ErrInvalidToken) {
			utils.RespondWithError(w, http.StatusUnauthorized, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.TokenResponseDTO{Token: sessionToken})
}

// SignOut godoc
//
//	@Summary	Sign out
//	@Tags		Auth
//	@Produce	json
//	@Success	200	{object}	utils.Response
//	@Router		/api/auth/signout [post]
func (h *AuthHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	// tokens are stateless; the client drops its copy, failures are not a thing here
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "signed out"})
}
