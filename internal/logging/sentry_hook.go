package logging

import (
	"errors"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
)

type sentryCapturer interface {
	CaptureException(exception error) *sentry.EventID
	CaptureMessage(message string) *sentry.EventID
}

// SentryHook forwards log entries of the selected levels to sentry.
// Entries carrying an error field are reported as exceptions.
type SentryHook struct {
	hub    sentryCapturer
	levels []logrus.Level
}

func NewSentryHook(hub sentryCapturer, levels []logrus.Level) *SentryHook {
	return &SentryHook{
		hub:    hub,
		levels: levels,
	}
}

func (h *SentryHook) Levels() []logrus.Level {
	return h.levels
}

func (h *SentryHook) Fire(entry *logrus.Entry) error {
	if errField, ok := entry.Data[logrus.ErrorKey].(error); ok {
		h.hub.CaptureException(errors.Join(errors.New(entry.Message), errField))
		return nil
	}
	h.hub.CaptureMessage(entry.Message)
	return nil
}
