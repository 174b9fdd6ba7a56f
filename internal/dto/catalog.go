package dto

type PackageOptionResponseDTO struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Price        int64  `json:"price"`
	MinAmount    int    `json:"minAmount"`
	MaxAmount    int    `json:"maxAmount"`
	UserPrice    bool   `json:"userPrice,omitempty"`
	MinUserPrice int64  `json:"minUserPrice,omitempty"`
}

type PackageResponseDTO struct {
	ID      int                        `json:"id"`
	Name    string                     `json:"name"`
	Options []PackageOptionResponseDTO `json:"options"`
}
