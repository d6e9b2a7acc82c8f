// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/ik5/audgrain/audio"
)

// DefaultBufferSize is the device buffer length. Shorter buffers react to
// knob changes faster but underrun more easily.
const DefaultBufferSize = 50 * time.Millisecond

// Player plays an audio.Source through the default output device.
type Player struct {
	ctx    *oto.Context
	player *oto.Player
	stream *Stream

	mtx     sync.Mutex
	started bool
}

// New opens the output device at the source's sample rate and channel
// count. Only one device context can exist per process.
func New(src audio.Source, gain float32, bufferSize time.Duration) (*Player, error) {
	if src.Channels() < 1 {
		return nil, audio.ErrInvalidChannels
	}
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}

	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   src.SampleRate(),
		ChannelCount: src.Channels(),
		Format:       oto.FormatFloat32LE,
		BufferSize:   bufferSize,
	})
	if err != nil {
		return nil, fmt.Errorf("opening audio device: %w", err)
	}
	<-ready

	stream := NewStream(src, gain)
	return &Player{
		ctx:    ctx,
		player: ctx.NewPlayer(stream),
		stream: stream,
	}, nil
}

// Stream exposes the reader feeding the device.
func (p *Player) Stream() *Stream { return p.stream }

func (p *Player) Play() {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	if !p.started {
		p.player.Play()
		p.started = true
	}
}

// Wait blocks until ctx is done or the source runs out.
func (p *Player) Wait(ctx context.Context) error {
	ticker := time.NewTicker(10 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := p.player.Err(); err != nil {
				return fmt.Errorf("audio output: %w", err)
			}
			if !p.player.IsPlaying() {
				return nil
			}
		}
	}
}

func (p *Player) Close() error {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	p.started = false
	if err := p.player.Close(); err != nil {
		return fmt.Errorf("closing audio output: %w", err)
	}
	return nil
}
