package handlers

import (
	"errors"
	"strings"

	apierrors "github.com/narender/vending-machine/common/apierrors"
	"github.com/narender/vending-machine/vending-service/src/models"
	"github.com/narender/vending-machine/vending-service/src/services"
)

// toAppError translates a refusal into a business error whose details become
// top-level fields of the error body. Other errors pass through unchanged.
func toAppError(err error) error {
	var vErr *services.VendingError
	if !errors.As(err, &vErr) {
		return err
	}

	appErr := apierrors.NewBusinessError(vErr.Kind.Code(), vErr.Message, err)

	switch d := vErr.Details.(type) {
	case services.InvalidDenominationDetails:
		appErr.
			WithDetail("returnedCoin", models.FormatAmount(d.ReturnedCoin)).
			WithDetail("accepted", strings.Join(models.FormatAmounts(d.Accepted), ", "))
	case services.InsufficientFundsDetails:
		appErr.
			WithDetail("currentBalance", models.FormatAmount(d.CurrentBalance)).
			WithDetail("productPrice", models.FormatAmount(d.ProductPrice)).
			WithDetail("amountNeeded", models.FormatAmount(d.AmountNeeded))
	case services.RefundTooHighDetails:
		appErr.
			WithDetail("requestedAmount", models.FormatAmount(d.RequestedAmount)).
			WithDetail("currentBalance", models.FormatAmount(d.CurrentBalance))
	}

	return appErr
}
