package response

import (
	"premium-reconciler/internal/usecase/queries"
)

type OrderResponse struct {
	ID          string `json:"id"`
	Code        string `json:"code"`
	AmountTON   string `json:"amount_ton"`
	Status      string `json:"status"`
	CreatedAt   int64  `json:"created_at"`
	ConfirmedAt *int64 `json:"confirmed_at,omitempty"`
}

type PaymentLinksResponse struct {
	Native   string `json:"native"`
	Tonhub   string `json:"tonhub"`
	Telegram string `json:"telegram"`
	Explorer string `json:"explorer"`
}

type PaymentInstructionsResponse struct {
	OrderID     string               `json:"order_id"`
	Code        string               `json:"code"`
	AmountTON   string               `json:"amount_ton"`
	Destination string               `json:"destination"`
	Links       PaymentLinksResponse `json:"links"`
}

type CreateOrderResponse struct {
	Order        *OrderResponse               `json:"order"`
	Instructions *PaymentInstructionsResponse `json:"instructions"`
}

type VerifyPaymentResponse struct {
	Verified    bool                 `json:"verified"`
	Message     string               `json:"message"`
	Entitlement *EntitlementResponse `json:"entitlement"`
}

func FromOrderView(v *queries.OrderView) *OrderResponse {
	res := &OrderResponse{
		ID:        v.ID.String(),
		Code:      v.Code,
		AmountTON: v.AmountTON.String(),
		Status:    v.Status,
		CreatedAt: v.CreatedAt.Unix(),
	}
	if v.ConfirmedAt != nil {
		at := v.ConfirmedAt.Unix()
		res.ConfirmedAt = &at
	}
	return res
}

func FromOrderViews(views []*queries.OrderView) []*OrderResponse {
	res := make([]*OrderResponse, len(views))
	for i, v := range views {
		res[i] = FromOrderView(v)
	}
	return res
}

func FromPaymentInstructions(p *queries.PaymentInstructions) *PaymentInstructionsResponse {
	return &PaymentInstructionsResponse{
		OrderID:     p.OrderID.String(),
		Code:        p.Code,
		AmountTON:   p.AmountTON.String(),
		Destination: p.Destination,
		Links: PaymentLinksResponse{
			Native:   p.Links.Native,
			Tonhub:   p.Links.Tonhub,
			Telegram: p.Links.Telegram,
			Explorer: p.Links.Explorer,
		},
	}
}
