// Package testutil holds helpers shared by tests across packages.
package testutil

import (
	"strings"
	"sync"
)

// LogSink collects log output written from several goroutines.
type LogSink struct {
	mu sync.Mutex
	sb strings.Builder
}

func (s *LogSink) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sb.Write(p)
}

func (s *LogSink) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sb.String()
}

// Lines returns the complete lines written so far, without trailing
// newlines. A partially written last line is left out.
func (s *LogSink) Lines() []string {
	out := s.String()
	end := strings.LastIndexByte(out, '\n')
	if end < 0 {
		return nil
	}
	return strings.Split(out[:end], "\n")
}
