package reminder

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog"
)

// LogNotifier stands in for the messaging integration: it logs the outbound
// message and reports success. Swap it for a real gateway client in
// production wiring.
type LogNotifier struct {
	logger zerolog.Logger
}

func NewLogNotifier(logger zerolog.Logger) *LogNotifier {
	return &LogNotifier{
		logger: logger.With().Str("component", "log_notifier").Logger(),
	}
}

func (n *LogNotifier) Send(
	ctx context.Context,
	recipient string,
	message string,
) (string, error) {

	n.logger.Info().
		Str("recipient", recipient).
		Str("message", message).
		Msg("outbound reminder")

	response, _ := json.Marshal(map[string]string{
		"status":  "accepted",
		"sent_at": time.Now().UTC().Format(time.RFC3339),
	})
	return string(response), nil
}

var _ Notifier = (*LogNotifier)(nil)
