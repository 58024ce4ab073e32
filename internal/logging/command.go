package logging

import (
	"time"

	"github.com/sirupsen/logrus"
)

// Wrap runs fn, logging Command.<name>.Start and then Complete or Error with
// its duration in milliseconds.
func Wrap(log *logrus.Logger, name string, fn func() error) error {
	log.Debugf("Command.%v.Start", name)
	start := time.Now()

	err := fn()
	entry := log.WithField("duration", time.Since(start).Milliseconds())
	if err != nil {
		entry.WithError(err).Errorf("Command.%v.Error", name)
		return err
	}
	entry.Infof("Command.%v.Complete", name)
	return nil
}
