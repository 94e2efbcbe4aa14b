package client

import (
	"context"

	domain "github.com/bilegt6969/sainto-api/pkg/types"
)

// CreateOrderRequest is the order submission payload.
type CreateOrderRequest struct {
	OrderID          string             `json:"orderId"`
	OrderNumber      string             `json:"orderNumber,omitempty"`
	PaymentReference string             `json:"paymentReference"`
	TotalAmount      float64            `json:"totalAmount"`
	Currency         string             `json:"currency,omitempty"`
	DiscountCode     string             `json:"discountCode,omitempty"`
	Items            []OrderItem        `json:"items"`
	Customer         OrderCustomer      `json:"customer"`
	Address          OrderAddressFields `json:"address"`
}

// OrderItem is a single line item in an order submission.
type OrderItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Size      string  `json:"size,omitempty"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// OrderCustomer identifies the person placing an order.
type OrderCustomer struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// OrderAddressFields is the delivery address for an order.
type OrderAddressFields struct {
	City     string `json:"city,omitempty"`
	District string `json:"district,omitempty"`
	Street   string `json:"street,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

// CreateOrderResponse is the response for a submitted order.
type CreateOrderResponse struct {
	Success     bool   `json:"success"`
	OrderID     string `json:"orderId"`
	OrderNumber string `json:"orderNumber"`
}

// CreateOrder submits an order.
func (c *Client) CreateOrder(ctx context.Context, req *CreateOrderRequest) (*CreateOrderResponse, error) {
	var resp CreateOrderResponse
	if err := c.post(ctx, "/api/createOrder", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// TrendingResponse wraps the trending sections response.
type TrendingResponse struct {
	Success  bool                     `json:"success"`
	Sections []domain.TrendingSection `json:"sections"`
}

// Trending returns the editorial trending sections.
func (c *Client) Trending(ctx context.Context) (*TrendingResponse, error) {
	var resp TrendingResponse
	if err := c.get(ctx, "/api/trending", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
