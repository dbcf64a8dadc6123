// Package payment holds the stand-in payment gateway. Nothing is charged;
// every positive amount is approved with a generated reference.
package payment

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"staycation/internal/domain"
)

type Placeholder struct{}

func NewPlaceholder() *Placeholder { return &Placeholder{} }

func (p *Placeholder) Authorize(ctx context.Context, req domain.PaymentRequest) (domain.PaymentReceipt, error) {
	if err := ctx.Err(); err != nil {
		return domain.PaymentReceipt{}, err
	}
	if req.Amount <= 0 {
		return domain.PaymentReceipt{}, fmt.Errorf("%w: amount %.2f", domain.ErrPaymentDeclined, req.Amount)
	}
	ref := "pay_" + uuid.NewString()
	log.Debug().
		Int64("user_id", req.UserID).
		Str("booking_id", req.BookingID).
		Float64("amount", req.Amount).
		Str("currency", req.Currency).
		Str("reference", ref).
		Msg("payment authorized (placeholder)")
	return domain.PaymentReceipt{Reference: ref, Approved: true}, nil
}
