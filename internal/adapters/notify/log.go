package notify

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/renato0307/despertar/internal/domain"
	"github.com/renato0307/despertar/internal/logging"
	"github.com/renato0307/despertar/internal/ports"
)

// LogNotifier writes fire events and notices to the debug log and a console stream
type LogNotifier struct {
	out io.Writer
}

// Verify interface compliance at compile time
var _ ports.Notifier = (*LogNotifier)(nil)

// NewLogNotifier creates a notifier writing to out (stdout when nil)
func NewLogNotifier(out io.Writer) *LogNotifier {
	if out == nil {
		out = os.Stdout
	}
	return &LogNotifier{out: out}
}

// AlarmFired implements Notifier.AlarmFired
func (n *LogNotifier) AlarmFired(ctx context.Context, event domain.FireEvent) {
	logging.Logger.Info("Alarm fired",
		"id", event.Alarm.ID,
		"label", event.Alarm.Label,
		"time", event.Alarm.Time.String(),
		"sound", event.Alarm.SoundID,
	)
	fmt.Fprintf(n.out, "[%s] ⏰ %s\n", event.FiredAt.Format("15:04:05"), event.Message())
}

// Notify implements Notifier.Notify
func (n *LogNotifier) Notify(ctx context.Context, notice domain.Notice) {
	if notice.Level == domain.NoticeError {
		logging.Logger.Error("Notice", "message", notice.Message)
		fmt.Fprintf(n.out, "Error: %s\n", notice.Message)
		return
	}
	logging.Logger.Info("Notice", "message", notice.Message)
	fmt.Fprintln(n.out, notice.Message)
}
