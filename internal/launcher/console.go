package launcher

import "strings"

const dialogCaption = "PSR Registration Shuffler"

// dialogWriter shows every line written to it in a modal error box. A
// GUI-subsystem build has no stderr, so this is where its diagnostics go.
type dialogWriter struct {
	caption string
	show    func(caption, text string) error
}

func (w dialogWriter) Write(p []byte) (int, error) {
	text := strings.TrimSpace(string(p))
	if text == "" {
		return len(p), nil
	}
	if err := w.show(w.caption, text); err != nil {
		return 0, err
	}
	return len(p), nil
}
