// Package audio plays the short notification cues interactive flows use to
// signal success, failure, and install progress. Quiet mode silences
// everything; unattended flows never reach this package at all.
package audio

import (
	"bytes"
	_ "embed"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
	"github.com/rs/zerolog/log"
)

//go:embed sounds/error.wav
var errorCue []byte

//go:embed sounds/success.wav
var successCue []byte

//go:embed sounds/install.wav
var installCue []byte

// Cue names the flows play.
const (
	CueError   = "error"
	CueSuccess = "success"
	CueInstall = "install"
)

var cues = map[string][]byte{
	CueError:   errorCue,
	CueSuccess: successCue,
	CueInstall: installCue,
}

var (
	speakerOnce  sync.Once
	speakerReady bool
	quiet        bool
)

// Init configures the package. When quietMode is set every Play call is a
// no-op and the speaker is never initialized.
func Init(quietMode bool) {
	quiet = quietMode
}

func ensureSpeaker(format beep.Format) {
	speakerOnce.Do(func() {
		if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10)); err != nil {
			log.Debug().Err(err).Msg("audio unavailable")
			return
		}
		speakerReady = true
	})
}

func decode(data []byte) (beep.StreamSeekCloser, beep.Format, error) {
	streamer, format, err := wav.Decode(bytes.NewReader(data))
	if err != nil {
		log.Debug().Err(err).Msg("cue could not be decoded")
		return nil, beep.Format{}, err
	}
	return streamer, format, nil
}

// Play plays a named cue and blocks until it finishes. Unknown cues and
// audio failures are silent: a missing beep must never affect a flow.
func Play(name string) {
	if quiet {
		return
	}
	data, ok := cues[name]
	if !ok {
		log.Debug().Str("cue", name).Msg("unknown cue")
		return
	}

	streamer, format, err := decode(data)
	if err != nil {
		return
	}
	defer streamer.Close()

	ensureSpeaker(format)
	if !speakerReady {
		return
	}

	done := make(chan bool)
	speaker.Play(beep.Seq(streamer, beep.Callback(func() {
		done <- true
	})))
	<-done
}

// PlayAsync plays a named cue without blocking.
func PlayAsync(name string) {
	go Play(name)
}

// StopAll stops any cue still playing.
func StopAll() {
	if !speakerReady {
		return
	}
	speaker.Clear()
}
