package join

import (
	"context"

	"github.com/sirupsen/logrus"
)

// CodeDispatcher sends and checks one-time verification codes.
type CodeDispatcher interface {
	SendCode(ctx context.Context, destination string) error
	CheckCode(ctx context.Context, destination, code string) (bool, error)
}

// LogDispatcher stands in for a real OTP provider: it records the request
// and accepts any non-empty code.
type LogDispatcher struct {
	Log *logrus.Logger
}

func (d LogDispatcher) SendCode(_ context.Context, destination string) error {
	d.Log.WithField("destination", destination).Info("verification code requested")
	return nil
}

func (d LogDispatcher) CheckCode(_ context.Context, destination, code string) (bool, error) {
	d.Log.WithField("destination", destination).Debug("verification code checked")
	return code != "", nil
}
