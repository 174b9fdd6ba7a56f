package dto

import "encoding/json"

type PledgeUserDTO struct {
	Email string `json:"email" validate:"required" example:"backer@example.com"`
	Name  string `json:"name"  validate:"required" example:"Jane Backer"`
}

type PledgeOptionDTO struct {
	TemplateID int `json:"templateId" example:"3"`
	Amount     int `json:"amount"     example:"2"`
}

type SubmitPledgeRequestDTO struct {
	Options []PledgeOptionDTO `json:"options"`
	Total   int64             `json:"total"  example:"24000"`
	Reason  string            `json:"reason,omitempty"`
	User    *PledgeUserDTO    `json:"user,omitempty"`
}

type PledgeOptionResponseDTO struct {
	TemplateID int   `json:"templateId"`
	Amount     int   `json:"amount"`
	Price      int64 `json:"price"`
}

type PledgeResponseDTO struct {
	ID             int                       `json:"id"`
	PackageID      int                       `json:"packageId"`
	Total          int64                     `json:"total"`
	Donation       int64                     `json:"donation"`
	Reason         string                    `json:"reason,omitempty"`
	Status         string                    `json:"status" example:"DRAFT"`
	Options        []PledgeOptionResponseDTO `json:"options"`
	AmountMismatch bool                      `json:"amountMismatch,omitempty"`
	CreatedAt      string                    `json:"createdAt"`
}

// PledgePaymentDTO is the settlement request for one pledge. SourceID carries
// the gateway source token; PSPPayload carries the raw provider callback for
// redirect methods.
type PledgePaymentDTO struct {
	Method     string          `json:"method" example:"PAYMENTSLIP"`
	SourceID   string          `json:"sourceId,omitempty"`
	PSPPayload json.RawMessage `json:"pspPayload,omitempty"`
}

type ReclaimPledgeRequestDTO struct {
	Email string `json:"email" example:"backer@example.com"`
}
