package output

import (
	"fmt"
	"sync"
	"time"

	"github.com/kardolus/reviewer/tool"
)

const clearLine = "\r\033[2K"

// Progress animates a single status line while a captured command runs. With
// a previous duration on record it shows a percentage, otherwise elapsed
// time. The returned function stops the animation and clears the line.
func (p *Printer) Progress(t *tool.Tool) func() {
	if !p.terminal {
		return func() {}
	}

	estimate, _ := t.LastDuration()
	started := time.Now()
	done := make(chan struct{})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		for frame := 0; ; frame++ {
			select {
			case <-done:
				p.printf("%s", clearLine)
				return
			case <-ticker.C:
				p.printf("%s%s", clearLine, p.styles.muted.Render(progressLine(frame, time.Since(started), estimate)))
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			close(done)
			wg.Wait()
		})
	}
}

var spinnerFrames = []string{"◐", "◓", "◑", "◒"}

func progressLine(frame int, elapsed, estimate time.Duration) string {
	spinner := spinnerFrames[frame%len(spinnerFrames)]
	if estimate <= 0 {
		return fmt.Sprintf("%s %s", spinner, formatDuration(elapsed))
	}

	percent := int(elapsed * 100 / estimate)
	if percent > 99 {
		percent = 99
	}
	return fmt.Sprintf("%s %d%%", spinner, percent)
}
