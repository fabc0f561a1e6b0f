package contact

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestSimulatedSenderReturnsReceiptAndLogsWithoutPersonalData(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.InfoLevel)
	sender := SimulatedSender{Logger: zap.New(core)}
	receipt, err := sender.Send(context.Background(), Submission{
		Name:    "Ada Lovelace",
		Email:   "ada@example.com",
		Subject: "Campaign audit",
		Message: "Please call me back.",
	})
	if err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if _, err := uuid.Parse(receipt); err != nil {
		t.Fatalf("receipt %q is not a uuid: %v", receipt, err)
	}

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("log entries = %d, want 1", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["receipt"] != receipt {
		t.Fatalf("logged receipt = %v", fields["receipt"])
	}
	for _, value := range fields {
		if value == "ada@example.com" || value == "Ada Lovelace" {
			t.Fatalf("log carries personal data: %v", fields)
		}
	}
}

func TestSimulatedSenderHonorsCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	_, err := SimulatedSender{Delay: time.Hour}.Send(ctx, Submission{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Send() error = %v, want context.Canceled", err)
	}
	if time.Since(start) > time.Second {
		t.Fatal("Send() waited out the delay after cancellation")
	}
}

func TestSimulatedSenderWaitsForDelay(t *testing.T) {
	t.Parallel()

	delay := 20 * time.Millisecond
	start := time.Now()
	if _, err := (SimulatedSender{Delay: delay}).Send(context.Background(), Submission{}); err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if elapsed := time.Since(start); elapsed < delay {
		t.Fatalf("Send() returned after %v, want at least %v", elapsed, delay)
	}
}
