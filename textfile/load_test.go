package textfile

import (
	"errors"
	"os"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/stringseg"
)

func TestLoad(t *testing.T) {
	gtrace.CoreTracer = gologadapter.New()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	seg, err := Load("testdata/lorem.txt")
	if err != nil {
		t.Fatal(err.Error())
	}
	if !seg.HasValue() || seg.IsEmpty() {
		t.Fatalf("expected a non-empty segment")
	}
	want, err := os.ReadFile("testdata/lorem.txt")
	if err != nil {
		t.Fatal(err.Error())
	}
	if seg.String() != string(want) {
		t.Errorf("loaded segment does not match file content, %d vs %d bytes",
			seg.Len(), len(want))
	}
	if !seg.StartsWith("Lorem ipsum", stringseg.Ordinal) {
		t.Errorf("unexpected leading bytes: %q", seg.String()[:16])
	}
}

func TestLoadAsyncProgress(t *testing.T) {
	ld, err := LoadAsync("testdata/lorem.txt", 64)
	if err != nil {
		t.Fatal(err.Error())
	}
	ch, cancel := ld.Subscribe()
	defer cancel()
	var last Progress
	events := 0
	for m := range ch {
		p, ok := m.(Progress)
		if !ok {
			t.Fatalf("unexpected event type %T", m)
		}
		if p.Loaded < last.Loaded {
			t.Errorf("progress went backwards: %d after %d", p.Loaded, last.Loaded)
		}
		last = p
		events++
	}
	t.Logf("%d progress events, last = %d/%d", events, last.Loaded, last.Total)
	seg, err := ld.Segment()
	if err != nil {
		t.Fatal(err.Error())
	}
	// Subscribing races with a fast load; only compare against events we saw.
	if events > 0 && int64(seg.Len()) != last.Total {
		t.Errorf("segment length %d does not match reported total %d", seg.Len(), last.Total)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("testdata/no_such_file.txt"); err == nil {
		t.Errorf("expected an error for a missing file")
	}
}

func TestLoadAsyncRequiresName(t *testing.T) {
	if _, err := LoadAsync("", 0); !errors.Is(err, stringseg.ErrIllegalArguments) {
		t.Errorf("expected ErrIllegalArguments for empty name, got %v", err)
	}
}

func TestLoadDirectoryFails(t *testing.T) {
	if _, err := Load("testdata"); err == nil {
		t.Errorf("expected an error for a directory")
	}
}
