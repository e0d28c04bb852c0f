package textfile

import (
	"fmt"
	"io"
	"os"

	"github.com/guiguan/caster"
	"github.com/npillmayer/stringseg"
)

// Some constants for fragment size defaults
const (
	twoKb     = 2048
	sixKb     = 6144
	tenKb     = 10240
	hundredKb = 1024000
	oneMb     = 1048576
)

// Progress reports the state of an asynchronous file load.
type Progress struct {
	Loaded int64 // bytes loaded so far
	Total  int64 // file size in bytes
}

// Load reads a file, which must be a regular text file, and wraps its
// complete content as a whole-buffer segment. Load blocks until the file
// is read completely.
func Load(name string) (stringseg.Segment, error) {
	ld, err := LoadAsync(name, 0)
	if err != nil {
		return stringseg.Segment{}, err
	}
	return ld.Segment()
}

// Loading is a handle on a file load running in the background.
type Loading struct {
	cast *caster.Caster // broadcaster for load progress
	done chan struct{}
	seg  stringseg.Segment
	err  error
}

// LoadAsync starts reading a file in background fragments.
//
// Clients may indicate a recommended fragment length; a fragSize of 0
// lets LoadAsync pick a sensible default for the file size. Progress
// events are broadcast after every fragment (see Subscribe); the finished
// segment is picked up with Segment. Opening of the file is always done
// synchronously, so a missing or irregular file fails right here.
func LoadAsync(name string, fragSize int64) (*Loading, error) {
	if name == "" {
		return nil, stringseg.ErrIllegalArguments
	}
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("file is not a regular file")
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, err
	}
	size := fi.Size()
	if fragSize <= 0 || fragSize > tenKb {
		fragSize = defaultFragSize(size)
	}
	tracer().Debugf("loading %s: %d bytes in fragments of %d", name, size, fragSize)
	ld := &Loading{
		cast: caster.New(nil), // we will broadcast messages when fragments are loaded
		done: make(chan struct{}),
	}
	go ld.run(file, size, fragSize)
	return ld, nil
}

// Subscribe returns a channel of Progress events for this load, plus a
// cancel function to unsubscribe. The channel is closed when loading
// finishes. Subscribing after the load has finished returns a closed
// channel.
func (ld *Loading) Subscribe() (chan interface{}, func()) {
	ch, _ := ld.cast.Sub(nil, 1)
	return ch, func() { ld.cast.Unsub(ch) }
}

// Segment blocks until loading has finished and returns the complete
// file content as a whole-buffer segment, or the first I/O error.
func (ld *Loading) Segment() (stringseg.Segment, error) {
	<-ld.done
	if ld.err != nil {
		return stringseg.Segment{}, ld.err
	}
	return ld.seg, nil
}

func (ld *Loading) run(file *os.File, size, fragSize int64) {
	defer close(ld.done)
	defer ld.cast.Close()
	defer file.Close()
	buf := make([]byte, size)
	var loaded int64
	for loaded < size {
		n := min(fragSize, size-loaded)
		cnt, err := file.ReadAt(buf[loaded:loaded+n], loaded)
		loaded += int64(cnt)
		ld.cast.Pub(Progress{Loaded: loaded, Total: size})
		if err != nil && err != io.EOF {
			ld.err = fmt.Errorf("error loading text fragment: %w", err)
			return
		}
		if cnt == 0 {
			break
		}
	}
	if loaded < size {
		ld.err = fmt.Errorf("not all bytes loaded for text file")
		return
	}
	ld.seg = stringseg.FromString(string(buf))
	tracer().Debugf("loaded %d bytes", loaded)
}

// defaultFragSize picks a fragment length appropriate for the file size.
func defaultFragSize(size int64) int64 {
	switch {
	case size < 64:
		return max(size, 1)
	case size < 1024:
		return 64
	case size < tenKb:
		return 256
	case size < hundredKb:
		return 512
	case size < oneMb:
		return twoKb
	default:
		return sixKb
	}
}
