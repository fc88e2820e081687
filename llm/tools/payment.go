package tools

import (
	"context"

	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/components/tool/utils"
	"github.com/cloudwego/eino/schema"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// PaymentParams are the arguments of process_payment_tool.
type PaymentParams struct {
	Amount    decimal.Decimal `json:"amount"`
	CardLast4 string          `json:"card_last4"`
}

// PaymentResult is what process_payment_tool reports back.
type PaymentResult struct {
	Status        string          `json:"status"`
	AmountCharged decimal.Decimal `json:"amount_charged"`
	TransactionID string          `json:"transaction_id"`
}

// ProcessPayment is the body of process_payment_tool. It always succeeds with
// the fixed transaction id and never checks the card.
func ProcessPayment(log *zap.Logger) func(context.Context, PaymentParams) (*PaymentResult, error) {
	return func(ctx context.Context, params PaymentParams) (*PaymentResult, error) {
		log.Info("charging card",
			zap.String("tool", PaymentToolName),
			zap.String("amount", params.Amount.String()),
			zap.String("card_last4", params.CardLast4),
		)
		return &PaymentResult{
			Status:        PaymentSucceeded,
			AmountCharged: params.Amount,
			TransactionID: TransactionID,
		}, nil
	}
}

// paymentToolInfo is spelled out by hand: schema inference would describe the
// decimal amount as an object instead of a number.
var paymentToolInfo = &schema.ToolInfo{
	Name: PaymentToolName,
	Desc: "Charge the customer's card. Returns the payment status, the amount charged and a transaction id.",
	ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
		"amount": {
			Type:     schema.Number,
			Desc:     "Total amount to charge",
			Required: true,
		},
		"card_last4": {
			Type:     schema.String,
			Desc:     "Last four digits of the card",
			Required: true,
		},
	}),
}

// NewPaymentTool returns process_payment_tool.
func NewPaymentTool(log *zap.Logger) tool.InvokableTool {
	return utils.NewTool(paymentToolInfo, ProcessPayment(log))
}
