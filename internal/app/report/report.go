//go:generate mockgen -source=report.go -destination=report_mock.go -package=report
package report

import (
	"time"

	"github.com/getsentry/sentry-go"

	"coinscope/internal/config"
	"coinscope/internal/config/logger"
)

// Reporter forwards integration bugs that are handled locally to an error tracker
type Reporter interface {
	Capture(err error, tags map[string]string)
	Recover(recovered any)
	Flush(timeout time.Duration) bool
}

type sentryReporter struct {
	hub *sentry.Hub
	log logger.Logger
}

// New creates a sentry reporter when a DSN is configured, otherwise a no-op
func New(cfg *config.Config, log logger.Logger) (Reporter, error) {
	if cfg.Sentry.DSN == "" {
		return NoOp(), nil
	}

	return newSentryReporter(sentry.ClientOptions{
		Dsn:              cfg.Sentry.DSN,
		Environment:      cfg.Sentry.Environment,
		Release:          config.AppName + "@" + config.Version,
		AttachStacktrace: true,
	}, log)
}

func newSentryReporter(opts sentry.ClientOptions, log logger.Logger) (Reporter, error) {
	client, err := sentry.NewClient(opts)
	if err != nil {
		return nil, err
	}

	log.Debug().Msgf("Error reporting enabled (environment: %s)", opts.Environment)

	return &sentryReporter{
		hub: sentry.NewHub(client, sentry.NewScope()),
		log: log,
	}, nil
}

func (r *sentryReporter) Capture(err error, tags map[string]string) {
	if err == nil {
		return
	}

	r.hub.WithScope(func(scope *sentry.Scope) {
		scope.SetTags(tags)
		r.hub.CaptureException(err)
	})
}

func (r *sentryReporter) Recover(recovered any) {
	if recovered == nil {
		return
	}

	r.hub.Recover(recovered)
}

func (r *sentryReporter) Flush(timeout time.Duration) bool {
	return r.hub.Flush(timeout)
}

type noOpReporter struct{}

// NoOp returns a reporter that drops everything
func NoOp() Reporter {
	return noOpReporter{}
}

func (noOpReporter) Capture(error, map[string]string) {}

func (noOpReporter) Recover(any) {}

func (noOpReporter) Flush(time.Duration) bool { return true }
