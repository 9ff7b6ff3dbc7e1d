package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"reflect"

	"go.uber.org/zap"

	"github.com/km-arc/go-laravel-listeners/framework/app"
	"github.com/km-arc/go-laravel-listeners/framework/container"
	"github.com/km-arc/go-laravel-listeners/framework/events"
)

// ── Events ────────────────────────────────────────────────────────────────────

type StartupEvent struct{ Version string }

type UserRegistered struct{ Email string }

// ── Listeners ─────────────────────────────────────────────────────────────────

type AuditLog struct{ logger *zap.Logger }

func (a *AuditLog) OnStartup(e StartupEvent) {
	a.logger.Info("application started", zap.String("version", e.Version))
}

func (a *AuditLog) OnUserRegistered(e UserRegistered) {
	a.logger.Info("user registered", zap.String("email", e.Email))
}

type WelcomeMailer struct{ logger *zap.Logger }

func (m *WelcomeMailer) Handle(e UserRegistered) {
	m.logger.Info("sending welcome mail", zap.String("to", e.Email))
}

func listen(c *container.Container) {
	audit := container.For[*AuditLog](c).
		UsingFactory(func(c *container.Container) *AuditLog {
			return &AuditLog{logger: container.Resolve[*zap.Logger](c, "logger")}
		}).
		LifestyleSingleton()

	events.EventOf[StartupEvent](events.ListensTo(audit)).With("OnStartup")
	events.ListensTo(audit).Event(reflect.TypeFor[UserRegistered]()).With("OnUserRegistered")

	mailer := container.For[*WelcomeMailer](c).
		UsingFactory(func(c *container.Container) *WelcomeMailer {
			return &WelcomeMailer{logger: container.Resolve[*zap.Logger](c, "logger")}
		})
	events.Handles[UserRegistered](mailer)
}

func main() {
	application := app.New(nil, listen)
	application.Boot()

	// A stand-in for the event bus: fan each event out to its wirings.
	publish := func(event any) {
		for _, w := range events.ListenersFor(application.Container, reflect.TypeOf(event)) {
			if err := w.Invoke(application.Make(w.Abstract), event); err != nil {
				application.Logger().Error("dispatch failed", zap.Error(err))
			}
		}
	}
	publish(StartupEvent{Version: application.Version()})
	publish(UserRegistered{Email: "alice@example.com"})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := application.Serve(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
