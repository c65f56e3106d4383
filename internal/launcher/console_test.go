package launcher

import (
	"errors"
	"strings"
	"syscall"
	"testing"
)

type shownDialog struct {
	caption string
	text    string
}

func recordDialogs(shown *[]shownDialog) dialogWriter {
	return dialogWriter{
		caption: dialogCaption,
		show: func(caption, text string) error {
			*shown = append(*shown, shownDialog{caption, text})
			return nil
		},
	}
}

func TestDialogWriter(t *testing.T) {
	var shown []shownDialog
	w := recordDialogs(&shown)

	n, err := w.Write([]byte("  \n"))
	if err != nil || n != 3 {
		t.Fatalf("blank write = %d, %v", n, err)
	}
	if len(shown) != 0 {
		t.Fatalf("blank line shown: %+v", shown)
	}

	if _, err := w.Write([]byte("[ERROR] broken\n")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if len(shown) != 1 || shown[0].text != "[ERROR] broken" || shown[0].caption != dialogCaption {
		t.Fatalf("unexpected dialogs %+v", shown)
	}
}

func TestDialogWriterReportsFailure(t *testing.T) {
	w := dialogWriter{show: func(string, string) error { return errors.New("no desktop") }}
	if n, err := w.Write([]byte("line\n")); err == nil || n != 0 {
		t.Fatalf("Write = %d, %v; want failure", n, err)
	}
}

func TestRunFailureShownInDialog(t *testing.T) {
	var shown []shownDialog
	sp := &fakeSpawner{err: &SpawnError{Command: testCommand, Err: syscall.Errno(2)}}
	l := &Launcher{Command: testCommand, Spawner: sp, Log: NewLogger(recordDialogs(&shown))}

	if code := l.Run(); code != ExitSpawnFailed {
		t.Fatalf("Run() = %d, want %d", code, ExitSpawnFailed)
	}
	if len(shown) != 1 {
		t.Fatalf("want one dialog, got %+v", shown)
	}
	if !strings.Contains(shown[0].text, "Couldn't run the PSR Registration Shuffler: 2") {
		t.Fatalf("dialog lacks error code: %q", shown[0].text)
	}
}

func TestRunSuccessShowsNoDialog(t *testing.T) {
	var shown []shownDialog
	sp := &fakeSpawner{child: &fakeChild{pid: 1}}
	l := &Launcher{Command: testCommand, Spawner: sp, Log: NewLogger(recordDialogs(&shown))}

	if code := l.Run(); code != ExitOK {
		t.Fatalf("Run() = %d", code)
	}
	if len(shown) != 0 {
		t.Fatalf("success showed %+v", shown)
	}
}
