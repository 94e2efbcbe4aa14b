package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/bilegt6969/sainto-api/internal/order"
	domain "github.com/bilegt6969/sainto-api/pkg/types"
)

// OrderHandler handles order submission.
type OrderHandler struct {
	orders *order.Service
	log    *slog.Logger
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(orders *order.Service, log *slog.Logger) *OrderHandler {
	return &OrderHandler{orders: orders, log: log}
}

// Order payload types mirror the domain types with every field optional so
// that validation happens in the order service with its own messages rather
// than in schema validation.

type orderItemPayload struct {
	ProductID string  `json:"productId,omitempty"`
	Name      string  `json:"name,omitempty"`
	Size      string  `json:"size,omitempty"`
	Quantity  int     `json:"quantity,omitempty"`
	Price     float64 `json:"price,omitempty"`
}

type orderCustomerPayload struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

type orderAddressPayload struct {
	City     string `json:"city,omitempty"`
	District string `json:"district,omitempty"`
	Street   string `json:"street,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

// CreateOrderInput is the order submission payload.
type CreateOrderInput struct {
	Body struct {
		OrderID          string               `json:"orderId,omitempty"`
		OrderNumber      string               `json:"orderNumber,omitempty"`
		PaymentReference string               `json:"paymentReference,omitempty"`
		TotalAmount      float64              `json:"totalAmount,omitempty"`
		Currency         string               `json:"currency,omitempty"`
		DiscountCode     string               `json:"discountCode,omitempty"`
		Items            []orderItemPayload   `json:"items,omitempty"`
		Customer         orderCustomerPayload `json:"customer,omitempty"`
		Address          orderAddressPayload  `json:"address,omitempty"`
	}
}

// CreateOrderOutput is the response for a submitted order.
type CreateOrderOutput struct {
	Body struct {
		Success     bool   `json:"success"`
		OrderID     string `json:"orderId"`
		OrderNumber string `json:"orderNumber"`
	}
}

// CreateOrder accepts an order and dispatches it to the notification
// webhook.
func (h *OrderHandler) CreateOrder(
	ctx context.Context,
	input *CreateOrderInput,
) (*CreateOrderOutput, error) {
	o := toDomainOrder(input)

	result, err := h.orders.Create(ctx, o)
	if err != nil {
		if isValidationError(err) {
			return nil, newEnvelopeError(http.StatusBadRequest, err.Error())
		}
		h.log.Error("order submission failed", "order_id", o.OrderID, "error", err)
		return nil, newEnvelopeError(http.StatusInternalServerError, "order submission failed")
	}

	out := &CreateOrderOutput{}
	out.Body.Success = true
	out.Body.OrderID = result.OrderID
	out.Body.OrderNumber = result.OrderNumber

	return out, nil
}

func toDomainOrder(input *CreateOrderInput) *domain.Order {
	b := &input.Body

	items := make([]domain.OrderItem, 0, len(b.Items))
	for _, it := range b.Items {
		items = append(items, domain.OrderItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			Size:      it.Size,
			Quantity:  it.Quantity,
			Price:     it.Price,
		})
	}

	return &domain.Order{
		OrderID:          b.OrderID,
		OrderNumber:      b.OrderNumber,
		PaymentReference: b.PaymentReference,
		TotalAmount:      b.TotalAmount,
		Currency:         b.Currency,
		DiscountCode:     b.DiscountCode,
		Items:            items,
		Customer: domain.OrderCustomer{
			Name:  b.Customer.Name,
			Email: b.Customer.Email,
			Phone: b.Customer.Phone,
		},
		Address: domain.OrderAddress{
			City:     b.Address.City,
			District: b.Address.District,
			Street:   b.Address.Street,
			Notes:    b.Address.Notes,
		},
	}
}

func isValidationError(err error) bool {
	return errors.Is(err, order.ErrMissingOrderID) ||
		errors.Is(err, order.ErrMissingPaymentReference) ||
		errors.Is(err, order.ErrEmptyOrder) ||
		errors.Is(err, order.ErrInvalidQuantity) ||
		errors.Is(err, order.ErrInvalidDiscountCode)
}

// RegisterOrderRoutes registers order endpoints with the Huma API.
func RegisterOrderRoutes(api huma.API, h *OrderHandler) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-order",
		Method:        http.MethodPost,
		Path:          "/api/createOrder",
		Summary:       "Submit an order",
		Description:   "Validates an order and dispatches it to the notification webhook.",
		Tags:          []string{"orders"},
		DefaultStatus: http.StatusCreated,
	}, h.CreateOrder)
}
