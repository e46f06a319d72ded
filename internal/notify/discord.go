package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/donaldgifford/satsearch-go/internal/metrics"
)

const (
	colorRed   = 0xE74C3C // sync failed
	colorGreen = 0x2ECC71 // sync recovered

	// maxDescription is Discord's embed description limit.
	maxDescription = 4096
)

// ErrRateLimited is returned when Discord answers 429.
var ErrRateLimited = errors.New("discord rate limited (429)")

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
	Timestamp   string              `json:"timestamp,omitempty"`
}

type discordEmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

// Notify sends event as a single Discord embed.
func (d *DiscordNotifier) Notify(ctx context.Context, event *SyncEvent) error {
	start := time.Now()
	err := d.post(ctx, discordWebhookPayload{Embeds: []discordEmbed{buildEmbed(event)}})
	metrics.NotificationDuration.Observe(time.Since(start).Seconds())

	outcome := "sent"
	if err != nil {
		outcome = "failed"
	}
	metrics.NotificationsTotal.WithLabelValues(event.Kind, outcome).Inc()
	return err
}

func buildEmbed(event *SyncEvent) discordEmbed {
	embed := discordEmbed{
		Fields: []discordEmbedField{
			{Name: "Sync ID", Value: event.SyncID, Inline: false},
			{Name: "Duration", Value: event.Duration.Round(time.Millisecond).String(), Inline: true},
		},
	}
	if !event.StartedAt.IsZero() {
		embed.Timestamp = event.StartedAt.UTC().Format(time.RFC3339)
	}

	switch event.Kind {
	case EventSyncRecovered:
		embed.Title = "Catalog mirror sync recovered"
		embed.Color = colorGreen
		embed.Description = fmt.Sprintf("Sync succeeded after %s.", plural(event.Failures, "failed sync"))
		embed.Fields = append(embed.Fields,
			discordEmbedField{Name: "Suppliers", Value: strconv.Itoa(event.Suppliers), Inline: true},
			discordEmbedField{Name: "Categories", Value: strconv.Itoa(event.Categories), Inline: true},
			discordEmbedField{Name: "Attribute Types", Value: strconv.Itoa(event.AttributeTypes), Inline: true},
		)
	default:
		embed.Title = "Catalog mirror sync failed"
		embed.Color = colorRed
		embed.Description = truncate(event.Error, maxDescription)
		embed.Fields = append(embed.Fields,
			discordEmbedField{Name: "Failures In A Row", Value: strconv.Itoa(event.Failures), Inline: true},
		)
	}

	return embed
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
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
		return ErrRateLimited
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
