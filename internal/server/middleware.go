package server

import (
	"time"

	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/google/uuid"

	"github.com/alexisbeaulieu97/zoomies/internal/logger"
)

// AccessLog tags each session with a correlation id and logs its start and end.
func AccessLog(log *logger.Logger) wish.Middleware {
	return func(next ssh.Handler) ssh.Handler {
		return func(sess ssh.Session) {
			start := time.Now()
			sessionLog := log.WithFields(map[string]any{
				"session": uuid.NewString(),
				"user":    sess.User(),
				"remote":  sess.RemoteAddr().String(),
			})

			sessionLog.Info("session started")
			next(sess)
			sessionLog.WithField("duration", time.Since(start).String()).Info("session ended")
		}
	}
}
