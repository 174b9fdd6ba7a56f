package catalog

import (
	"context"
	"net/http"

	"github.com/dkoleda/crowdledger/internal/domain"
	"github.com/dkoleda/crowdledger/internal/dto"
	"github.com/dkoleda/crowdledger/pkg/utils"
)

type Service interface {
	GetPackages(ctx context.Context) ([]domain.Package, error)
	GetOptions(ctx context.Context, packageID int) ([]domain.PackageOption, error)
}

type CatalogHandler struct {
	catalogService Service
}

func New(catalogService Service) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

// GetPackages godoc
//
//	@Summary		List the catalog
//	@Description	Retrieve all packages with their priced options.
//	@Tags			Catalog
//	@Produce		json
//	@Success		200	{array}		dto.PackageResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/packages [get]
func (h *CatalogHandler) GetPackages(w http.ResponseWriter, r *http.Request) {
	packages, err := h.catalogService.GetPackages(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.PackageResponseDTO, 0, len(packages))
	for _, pkg := range packages {
		options, err := h.catalogService.GetOptions(r.Context(), pkg.ID)
		if err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		pkgDTO := dto.PackageResponseDTO{
			ID:      pkg.ID,
			Name:    pkg.Name,
			Options: make([]dto.PackageOptionResponseDTO, 0, len(options)),
		}
		for _, opt := range options {
			pkgDTO.Options = append(pkgDTO.Options, dto.PackageOptionResponseDTO{
				ID:           opt.ID,
				Name:         opt.Name,
				Price:        opt.Price,
				MinAmount:    opt.MinAmount,
				MaxAmount:    opt.MaxAmount,
				UserPrice:    opt.UserPrice,
				MinUserPrice: opt.MinUserPrice,
			})
		}
		response = append(response, pkgDTO)
	}

	utils.RespondWithJSON(w, http.StatusOK, response)
}
