package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	domain "github.com/bilegt6969/sainto-api/pkg/types"
)

const colorOrder = 0x2ECC71

// Discord allows max 25 fields per embed; keep item lines well under that.
const maxItemLines = 20

// DiscordNotifier implements Notifier via Discord webhook.
type DiscordNotifier struct {
	webhookURL string
	client     *http.Client
}

// NewDiscordNotifier creates a new DiscordNotifier.
func NewDiscordNotifier(webhookURL string, opts ...DiscordOption) *DiscordNotifier {
	d := &DiscordNotifier{
		webhookURL: webhookURL,
		client:     http.DefaultClient,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DiscordOption configures a DiscordNotifier.
type DiscordOption func(*DiscordNotifier)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) DiscordOption {
	return func(d *DiscordNotifier) {
		d.client = c
	}
}

// discordWebhookPayload is the Discord webhook JSON structure.
type discordWebhookPayload struct {
	Embeds []discordEmbed `json:"embeds"`
}

type discordEmbed struct {
	Title       string              `json:"title"`
	Color       int                 `json:"color"`
	Description string              `json:"description,omitempty"`
	Fields      []discordEmbedField `json:"fields,omitempty"`
}

type discordEmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

// SendOrder sends a single order summary as a Discord embed.
func (d *DiscordNotifier) SendOrder(ctx context.Context, order *domain.Order) error {
	payload := discordWebhookPayload{
		Embeds: []discordEmbed{buildOrderEmbed(order)},
	}
	return d.post(ctx, payload)
}

func buildOrderEmbed(order *domain.Order) discordEmbed {
	embed := discordEmbed{
		Title:       fmt.Sprintf("New Order: %s", order.OrderNumber),
		Color:       colorOrder,
		Description: formatItems(order.Items),
		Fields: []discordEmbedField{
			{Name: "Order ID", Value: order.OrderID, Inline: true},
			{Name: "Payment Ref", Value: order.PaymentReference, Inline: true},
			{Name: "Total", Value: fmt.Sprintf("%.2f %s", order.TotalAmount, order.Currency), Inline: true},
			{Name: "Customer", Value: formatCustomer(&order.Customer), Inline: true},
		},
	}

	if addr := formatAddress(&order.Address); addr != "" {
		embed.Fields = append(embed.Fields, discordEmbedField{
			Name:  "Address",
			Value: addr,
		})
	}

	if order.DiscountCode != "" {
		embed.Fields = append(embed.Fields, discordEmbedField{
			Name:   "Discount",
			Value:  order.DiscountCode,
			Inline: true,
		})
	}

	return embed
}

func formatItems(items []domain.OrderItem) string {
	var b strings.Builder
	limit := min(len(items), maxItemLines)
	for i := range limit {
		it := &items[i]
		fmt.Fprintf(&b, "%dx %s", it.Quantity, it.Name)
		if it.Size != "" {
			fmt.Fprintf(&b, " (size %s)", it.Size)
		}
		fmt.Fprintf(&b, " - %.2f\n", it.Price)
	}
	if len(items) > maxItemLines {
		fmt.Fprintf(&b, "... and %d more items\n", len(items)-maxItemLines)
	}
	return b.String()
}

func formatCustomer(c *domain.OrderCustomer) string {
	parts := []string{c.Name}
	if c.Phone != "" {
		parts = append(parts, c.Phone)
	}
	if c.Email != "" {
		parts = append(parts, c.Email)
	}
	return strings.Join(parts, " / ")
}

func formatAddress(a *domain.OrderAddress) string {
	parts := make([]string, 0, 4)
	for _, p := range []string{a.City, a.District, a.Street, a.Notes} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

func (d *DiscordNotifier) post(ctx context.Context, payload discordWebhookPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling discord payload: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		d.webhookURL,
		bytes.NewReader(body),
	)
	if err != nil {
		return fmt.Errorf("creating discord request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending discord webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return fmt.Errorf("discord rate limited (429)")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return fmt.Errorf("discord returned %d (body unreadable)", resp.StatusCode)
		}
		return fmt.Errorf("discord returned %d: %s", resp.StatusCode, respBody)
	}

	return nil
}
