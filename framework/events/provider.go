package events

import (
	"go.uber.org/zap"

	"github.com/km-arc/go-laravel-listeners/framework/container"
)

// EventServiceProvider runs listener declarations during registration, the
// Go counterpart of Laravel's EventServiceProvider::$listen.
//
//	&events.EventServiceProvider{Listen: []func(*container.Container){
//	    func(c *container.Container) {
//	        events.EventOf[UserCreated](events.ListensTo(container.For[*Mailer](c))).With("OnUserCreated")
//	    },
//	}}
type EventServiceProvider struct {
	container.BaseProvider
	Listen []func(app *container.Container)
}

func (p *EventServiceProvider) Register(app *container.Container) {
	for _, declare := range p.Listen {
		declare(app)
	}
}

func (p *EventServiceProvider) Boot(app *container.Container) {
	wirings := Collect(app)
	logger := app.Logger()
	for _, w := range wirings {
		logger.Debug("listener wired",
			zap.String("component", w.Abstract),
			zap.String("key", w.Key.String()))
	}
	logger.Info("event listeners ready", zap.Int("count", len(wirings)))
}
