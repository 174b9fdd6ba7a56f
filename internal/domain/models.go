package domain

import "time"

// All monetary values are integer minor currency units (cents).

const (
	// PledgeStatusDraft прямо после submit, до любой попытки оплаты
	PledgeStatusDraft = "DRAFT"
	// PledgeStatusWaitingForPayment офлайн-платёж ожидает ручной сверки
	PledgeStatusWaitingForPayment = "WAITING_FOR_PAYMENT"
	// PledgeStatusSuccessful оплата подтверждена
	PledgeStatusSuccessful = "SUCCESSFUL"
)

const (
	PaymentStatusWaiting = "WAITING"
	PaymentStatusPaid    = "PAID"

	PaymentTypePledge = "PLEDGE"
)

type User struct {
	ID        int       `db:"id"`
	Email     string    `db:"email"`
	Name      string    `db:"name"`
	Verified  bool      `db:"verified"`
	CreatedAt time.Time `db:"created_at"`
}

type Package struct {
	ID   int    `db:"id"`
	Name string `db:"name"`
}

type PackageOption struct {
	ID           int    `db:"id"`
	PackageID    int    `db:"package_id"`
	Name         string `db:"name"`
	Price        int64  `db:"price"`
	MinAmount    int    `db:"min_amount"`
	MaxAmount    int    `db:"max_amount"`
	UserPrice    bool   `db:"user_price"`
	MinUserPrice int64  `db:"min_user_price"`
}

type Pledge struct {
	ID        int       `db:"id"`
	UserID    int       `db:"user_id"`
	PackageID int       `db:"package_id"`
	Total     int64     `db:"total"`
	Donation  int64     `db:"donation"`
	Reason    string    `db:"reason"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`

	Options []PledgeOption `db:"-"`
}

// PledgeOption snapshots the catalog price at submit time. Later catalog
// changes never alter a recorded pledge.
type PledgeOption struct {
	PledgeID   int   `db:"pledge_id"`
	TemplateID int   `db:"template_id"`
	Amount     int   `db:"amount"`
	Price      int64 `db:"price"`
}

type Payment struct {
	ID         int       `db:"id"`
	Type       string    `db:"type"`
	Method     string    `db:"method"`
	Total      int64     `db:"total"`
	Status     string    `db:"status"`
	PSPID      string    `db:"psp_id"`
	PSPPayload []byte    `db:"psp_payload"`
	CreatedAt  time.Time `db:"created_at"`
}

type PledgePayment struct {
	PledgeID    int    `db:"pledge_id"`
	PaymentID   int    `db:"payment_id"`
	PaymentType string `db:"payment_type"`
}

type PaymentSource struct {
	ID         int    `db:"id"`
	Method     string `db:"method"`
	UserID     int    `db:"user_id"`
	PSPID      string `db:"psp_id"`
	PSPPayload []byte `db:"psp_payload"`
}

type SigninToken struct {
	Token     string    `db:"token"`
	Email     string    `db:"email"`
	Phrase    string    `db:"phrase"`
	CreatedAt time.Time `db:"created_at"`
}

// AuthState is what the identity provider knows about the caller of a single
// request. Zero value means anonymous.
type AuthState struct {
	UserID int
	Email  string
}

func (a AuthState) Authenticated() bool {
	return a.UserID != 0
}
