package pledges

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/dkoleda/crowdledger/internal/domain"
	"github.com/dkoleda/crowdledger/internal/dto"
	paymentrepo "github.com/dkoleda/crowdledger/internal/repo/payment-repo"
	"github.com/dkoleda/crowdledger/internal/service/pledgeservice"
	"github.com/dkoleda/crowdledger/internal/service/userservice"

	"github.com/dkoleda/crowdledger/internal/psp"
	"github.com/dkoleda/crowdledger/pkg/auth"
	"github.com/dkoleda/crowdledger/pkg/utils"
	"github.com/dkoleda/crowdledger/pkg/validate"
	"github.com/go-chi/chi/v5"
)

type Service interface {
	Submit(ctx context.Context, req *dto.SubmitPledgeRequestDTO, authState domain.AuthState) (*domain.Pledge, error)
	Pay(ctx context.Context, pledgeID int, payload *dto.PledgePaymentDTO, authState domain.AuthState) (*domain.Pledge, bool, error)
	Reclaim(ctx context.Context, pledgeID int, email string, authState domain.AuthState) (*domain.Pledge, error)
	GetPledges(ctx context.Context, userID int) ([]domain.Pledge, error)
}

type PledgeHandler struct {
	pledgeService Service
}

func New(pledgeService Service) *PledgeHandler {
	return &PledgeHandler{
		pledgeService: pledgeService,
	}
}

// Submit godoc
//
//	@Summary		Submit a pledge
//	@Description	Validate the selected package options and record a draft pledge. Anonymous callers must embed user data.
//	@Tags			Pledges
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SubmitPledgeRequestDTO	true	"Pledge selection"
//	@Success		201		{object}	dto.PledgeResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid selection or identity"
//	@Failure		409		{object}	utils.Response	"Email belongs to a verified user"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/pledges [post]
func (h *PledgeHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req dto.SubmitPledgeRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.User != nil && !validate.IsEmail(req.User.Email) {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid email address")
		return
	}

	authState := auth.StateFromContext(r.Context())
	pledge, err := h.pledgeService.Submit(r.Context(), &req, authState)
	if err != nil {
		switch {
		case errors.Is(err, pledgeservice.ErrInvalidSelection),
			errors.Is(err, pledgeservice.ErrCrossPackageSelection),
			errors.Is(err, pledgeservice.ErrAmountOutOfRange),
			errors.Is(err, pledgeservice.ErrTotalTooLow),
			errors.Is(err, pledgeservice.ErrReasonRequired),
			errors.Is(err, userservice.ErrIdentityConflict),
			errors.Is(err, userservice.ErrUserDataRequired):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, userservice.ErrEmailTaken):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, pledgeResponse(pledge, false))
}

// Pay godoc
//
//	@Summary		Settle a pledge
//	@Description	Charge or reconcile a pledge through one of the supported payment providers.
//	@Tags			Pledges
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int					true	"Pledge id"
//	@Param			request	body		dto.PledgePaymentDTO	true	"Payment payload"
//	@Success		200		{object}	dto.PledgeResponseDTO
//	@Failure		400		{object}	utils.Response	"Malformed payment payload"
//	@Failure		402		{object}	utils.Response	"Provider rejected the transaction"
//	@Failure		404		{object}	utils.Response	"Pledge not found"
//	@Failure		409		{object}	utils.Response	"Replay detected or pledge already settled"
//	@Failure		422		{object}	utils.Response	"Invalid card number"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/pledges/{id}/payments [post]
func (h *PledgeHandler) Pay(w http.ResponseWriter, r *http.Request) {
	pledgeID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid pledge id")
		return
	}

	var payload dto.PledgePaymentDTO
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// legacy clients send raw card numbers as the gateway source
	if payload.Method == psp.MethodStripe && isDigits(payload.SourceID) && !validate.IsLuna(payload.SourceID) {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "invalid card number")
		return
	}

	authState := auth.StateFromContext(r.Context())
	pledge, amountMismatch, err := h.pledgeService.Pay(r.Context(), pledgeID, &payload, authState)
	if err != nil {
		switch {
		case errors.Is(err, pledgeservice.ErrPledgeNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, psp.ErrReplayDetected),
			errors.Is(err, paymentrepo.ErrDuplicatePSPID),
			errors.Is(err, pledgeservice.ErrPledgeAlreadySettled):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, psp.ErrProviderRejected):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		case errors.Is(err, psp.ErrUnsupportedMethod),
			errors.Is(err, psp.ErrPayloadRequired),
			errors.Is(err, psp.ErrSourceRequired):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, pledgeResponse(pledge, amountMismatch))
}

// Reclaim godoc
//
//	@Summary		Reclaim an anonymous pledge
//	@Description	Reassign a pledge owned by an unverified placeholder user to the claiming email.
//	@Tags			Pledges
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Pledge id"
//	@Param			request	body		dto.ReclaimPledgeRequestDTO	true	"Claiming email"
//	@Success		200		{object}	dto.PledgeResponseDTO
//	@Failure		403		{object}	utils.Response	"Owner is verified or email mismatch"
//	@Failure		404		{object}	utils.Response	"Pledge not found"
//	@Failure		409		{object}	utils.Response	"Pledge already belongs to this email"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/pledges/{id}/reclaim [post]
func (h *PledgeHandler) Reclaim(w http.ResponseWriter, r *http.Request) {
	pledgeID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid pledge id")
		return
	}

	var req dto.ReclaimPledgeRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !validate.IsEmail(req.Email) {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid email address")
		return
	}

	authState := auth.StateFromContext(r.Context())
	pledge, err := h.pledgeService.Reclaim(r.Context(), pledgeID, req.Email, authState)
	if err != nil {
		switch {
		case errors.Is(err, pledgeservice.ErrPledgeNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, pledgeservice.ErrAlreadyOwner):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, pledgeservice.ErrCannotClaimVerified),
			errors.Is(err, pledgeservice.ErrEmailMismatch):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, pledgeResponse(pledge, false))
}

// GetPledges godoc
//
//	@Summary		List own pledges
//	@Tags			Pledges
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.PledgeResponseDTO
//	@Failure		204	{object}	utils.Response	"No data available"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/pledges [get]
func (h *PledgeHandler) GetPledges(w http.ResponseWriter, r *http.Request) {
	authState := auth.StateFromContext(r.Context())

	pledges, err := h.pledgeService.GetPledges(r.Context(), authState.UserID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if len(pledges) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No data available")
		return
	}

	response := make([]dto.PledgeResponseDTO, 0, len(pledges))
	for i := range pledges {
		response = append(response, pledgeResponse(&pledges[i], false))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func pledgeResponse(pledge *domain.Pledge, amountMismatch bool) dto.PledgeResponseDTO {
	options := make([]dto.PledgeOptionResponseDTO, 0, len(pledge.Options))
	for _, opt := range pledge.Options {
		options = append(options, dto.PledgeOptionResponseDTO{
			TemplateID: opt.TemplateID,
			Amount:     opt.Amount,
			Price:      opt.Price,
		})
	}
	return dto.PledgeResponseDTO{
		ID:             pledge.ID,
		PackageID:      pledge.PackageID,
		Total:          pledge.Total,
		Donation:       pledge.Donation,
		Reason:         pledge.Reason,
		Status:         pledge.Status,
		Options:        options,
		AmountMismatch: amountMismatch,
		CreatedAt:      pledge.CreatedAt.Format(time.RFC3339),
	}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
