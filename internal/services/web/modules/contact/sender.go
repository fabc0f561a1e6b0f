package contact

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Submission is one accepted contact message.
type Submission struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
}

// Sender delivers an accepted submission and returns a receipt id.
type Sender interface {
	Send(ctx context.Context, sub Submission) (string, error)
}

// SimulatedSender waits Delay and then accepts every submission. Nothing
// leaves the process.
type SimulatedSender struct {
	Delay  time.Duration
	Logger *zap.Logger
}

// Send blocks for the configured delay or until ctx ends.
func (s SimulatedSender) Send(ctx context.Context, sub Submission) (string, error) {
	if s.Delay > 0 {
		timer := time.NewTimer(s.Delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return "", err
	}

	receipt := uuid.NewString()
	logger := s.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Info("contact submission accepted",
		zap.String("receipt", receipt),
		zap.String("subject", sub.Subject),
		zap.Bool("has_phone", sub.Phone != ""),
		zap.Int("message_length", len(sub.Message)),
	)
	return receipt, nil
}
