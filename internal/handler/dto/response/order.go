package response

import (
	"checkout-orchestrator/internal/domain/order"
	"checkout-orchestrator/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type OrderResponse struct {
	OrderID            string  `json:"orderId" copier:"ID"`
	CustomerName       string  `json:"customerName"`
	CustomerEmail      string  `json:"customerEmail"`
	ProductName        string  `json:"productName"`
	ProductPrice       float64 `json:"productPrice"`
	ProductDescription string  `json:"productDescription"`
	ImageURL           *string `json:"imageUrl,omitempty"`
}

var orderConverters = []copier.TypeConverter{
	{
		SrcType: uuid.UUID{},
		DstType: copier.String,
		Fn: func(src any) (any, error) {
			return src.(uuid.UUID).String(), nil
		},
	},
	{
		SrcType: decimal.Decimal{},
		DstType: float64(0),
		Fn: func(src any) (any, error) {
			return src.(decimal.Decimal).InexactFloat64(), nil
		},
	},
}

func FromOrder(o *order.Order) (*OrderResponse, error) {
	var res OrderResponse
	if err := copier.CopyWithOption(&res, o, copier.Option{Converters: orderConverters}); err != nil {
		return nil, errs.Wrap(err, "copy order response")
	}
	return &res, nil
}
