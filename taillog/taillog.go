package taillog

import (
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

const defaultCapacity = 200

// check TailLog compliance to the logrus hook interface during compile time
var _ logrus.Hook = (*TailLog)(nil)

// TailLog is a logrus hook that keeps the most recent log lines in memory
// so they can be served through the API.
type TailLog struct {
	mtx      sync.Mutex
	lines    []string
	capacity int
}

func New() *TailLog {
	return &TailLog{
		capacity: defaultCapacity,
	}
}

func (t *TailLog) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (t *TailLog) Fire(entry *logrus.Entry) error {
	line, err := entry.String()
	if err != nil {
		return err
	}

	t.mtx.Lock()
	defer t.mtx.Unlock()

	t.lines = append(t.lines, strings.TrimRight(line, "\n"))
	if len(t.lines) > t.capacity {
		t.lines = t.lines[len(t.lines)-t.capacity:]
	}

	return nil
}

// Lines returns the retained log lines, oldest first.
func (t *TailLog) Lines() []string {
	t.mtx.Lock()
	defer t.mtx.Unlock()

	lines := make([]string, len(t.lines))
	copy(lines, t.lines)

	return lines
}
