package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/conquerblocks/nft-marketplace/internal/adapter"
	"github.com/conquerblocks/nft-marketplace/internal/bridge"
	"github.com/conquerblocks/nft-marketplace/internal/domain"
	"github.com/conquerblocks/nft-marketplace/internal/logger"
	natsjs "github.com/conquerblocks/nft-marketplace/internal/providers/jetstream"
	"github.com/conquerblocks/nft-marketplace/internal/webhook"
)

func newEventsCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "events",
		Short: "Inspect and forward marketplace events",
	}
	cmd.AddCommand(newEventsWatchCmd(c))
	cmd.AddCommand(newEventsForwardCmd(c))
	return cmd
}

// runBridge consumes the event stream into sink until interrupted
func (c *cli) runBridge(cmd *cobra.Command, cfg bridge.Config, sink bridge.Sink) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg.NATS = natsjs.Config{
		URL:            c.cfg.NATS.URL,
		StreamName:     c.cfg.NATS.StreamName,
		MaxReconnects:  c.cfg.NATS.MaxReconnects,
		ReconnectWait:  c.cfg.NATS.ReconnectWait,
		ConnectionName: c.cfg.NATS.ConnectionName,
	}

	b, err := bridge.NewBridge(cfg, adapter.NewNatsJetStream(), sink, adapter.NewJSON())
	if err != nil {
		return err
	}
	defer b.Close()

	if err := b.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func newEventsWatchCmd(c *cli) *cobra.Command {
	var (
		consumer   string
		subject    string
		deliverNew bool
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Print the events published by the event emitter",
		Long: `Consumes the marketplace event stream and prints one JSON line per event,
e.g. marketctl events watch --subject events.marketplace.bought`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonAdapter := adapter.NewJSON()
			out := cmd.OutOrStdout()

			sink := bridge.SinkFunc(func(_ context.Context, event *domain.LedgerEvent) error {
				line, err := jsonAdapter.Marshal(event)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(out, string(line))
				return err
			})

			return c.runBridge(cmd, bridge.Config{
				ConsumerName:   consumer,
				FilterSubject:  subject,
				AckWaitTimeout: 30 * time.Second,
				MaxDeliver:     3,
				DeliverNew:     deliverNew,
			}, sink)
		},
	}

	cmd.Flags().StringVar(&consumer, "consumer", "", "durable consumer name, empty for an ephemeral consumer")
	cmd.Flags().StringVar(&subject, "subject", "", "subject filter, defaults to every event")
	cmd.Flags().BoolVar(&deliverNew, "new", false, "only print events published from now on")

	return cmd
}

func newEventsForwardCmd(c *cli) *cobra.Command {
	var maxDeliver int

	cmd := &cobra.Command{
		Use:   "forward",
		Short: "Forward events to a webhook endpoint as signed POST requests",
		Long: `Delivers every matching event to the configured webhook URL. Each request
carries an X-Webhook-Signature header, the HMAC-SHA256 of
"{timestamp}.{event_id}.{body}" keyed with the webhook secret. Events the
endpoint rejects are redelivered up to --max-deliver times.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := c.cfg.Webhook
			if cmd.Flags().Changed("url") || cfg.URL == "" {
				cfg.URL, _ = cmd.Flags().GetString("url")
			}
			if cmd.Flags().Changed("secret") || cfg.Secret == "" {
				cfg.Secret, _ = cmd.Flags().GetString("secret")
			}
			if cmd.Flags().Changed("events") {
				cfg.EventTypes, _ = cmd.Flags().GetStringSlice("events")
			}
			if cmd.Flags().Changed("consumer") {
				cfg.ConsumerName, _ = cmd.Flags().GetString("consumer")
			}

			sink, err := webhook.NewSink(webhook.Config{
				URL:        cfg.URL,
				Secret:     cfg.Secret,
				EventTypes: cfg.EventTypes,
				Timeout:    cfg.Timeout,
			}, adapter.NewHTTPClient(cfg.Timeout), adapter.NewIO(), adapter.NewJSON(), adapter.NewClock())
			if err != nil {
				return err
			}

			logger.InfoCtx(cmd.Context(), "Forwarding events to webhook",
				zap.String("url", cfg.URL),
				zap.Strings("eventTypes", cfg.EventTypes),
				zap.String("consumer", cfg.ConsumerName))

			return c.runBridge(cmd, bridge.Config{
				ConsumerName:   cfg.ConsumerName,
				AckWaitTimeout: cfg.Timeout + 30*time.Second,
				MaxDeliver:     maxDeliver,
			}, sink)
		},
	}

	cmd.Flags().String("url", "", "webhook endpoint, overrides webhook.url")
	cmd.Flags().String("secret", "", "signing secret, overrides webhook.secret")
	cmd.Flags().StringSlice("events", nil, "event types to forward, e.g. marketplace.bought, or * for all")
	cmd.Flags().String("consumer", "", "durable consumer name, overrides webhook.consumer_name")
	cmd.Flags().IntVar(&maxDeliver, "max-deliver", 5, "delivery attempts per event")

	return cmd
}
