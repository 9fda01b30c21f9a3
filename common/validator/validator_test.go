package validator

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apierrors "github.com/narender/vending-machine/common/apierrors"
)

type item struct {
	ID    string          `validate:"required"`
	Price decimal.Decimal `validate:"gte=0"`
	Qty   int             `validate:"gte=0"`
}

func TestValidateStruct(t *testing.T) {
	assert.Nil(t, ValidateStruct(item{ID: "A", Price: decimal.RequireFromString("1.20"), Qty: 1}))

	appErr := ValidateStruct(item{Price: decimal.RequireFromString("-0.01"), Qty: -1})
	require.NotNil(t, appErr)
	assert.Equal(t, apierrors.ErrCodeRequestValidation, appErr.Code)
	assert.Equal(t, apierrors.CategoryApplication, appErr.Category)
	assert.Contains(t, appErr.Message, "item.ID")
	assert.Contains(t, appErr.Message, "item.Price")
	assert.Contains(t, appErr.Message, "item.Qty")
}
