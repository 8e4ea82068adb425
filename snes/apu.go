package snes

import (
	"io"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const (
	apuRAMSize   = 64 * 1024
	dspRegsSize  = 128
	apuMailboxN  = 4
	timer01Every = 125
	timer2Every  = 16000
)

// apuTimer models one of the three SPC700-side timers the CPU mailbox
// protocol depends on: a counter that rolls over every `every` steps and
// increments an 8-bit output register on each rollover; the output wraps
// back to 0 on reaching target when target is non-zero. No interrupt
// delivery; see spec.md §4.4 ("no interrupt delivery in this spec").
type apuTimer struct {
	counter uint32
	target  uint32
	every   uint32
	enabled bool
	out     byte
}

func (t *apuTimer) step() {
	if !t.enabled {
		return
	}
	t.counter++
	if t.counter >= t.every {
		t.counter = 0
		t.out++
		if t.target != 0 && uint32(t.out) >= t.target {
			t.out = 0
		}
	}
}

// APU stands in for the SPC700 + DSP half of the machine. It is a stub:
// the only behavior the rest of the core observes is the four-byte CPU
// mailbox and the cycle-driven timers. No SPC700 opcode interpretation,
// no DSP sample synthesis; see spec.md §1 non-goals.
type APU struct {
	cpuToApuPorts [apuMailboxN]byte
	apuToCpuPorts [apuMailboxN]byte

	ram      [apuRAMSize]byte
	dspRegs  [dspRegsSize]byte
	timers   [3]apuTimer
	Cycles   uint64

	recorder *SampleRecorder
}

// NewAPU builds an APU stub with its three timers configured at the
// subdivisions spec.md §4.4 documents (timers 0/1 every 125 internal
// steps, timer 2 every 16000).
func NewAPU() *APU {
	a := &APU{}
	a.timers[0] = apuTimer{every: timer01Every, enabled: true}
	a.timers[1] = apuTimer{every: timer01Every, enabled: true}
	a.timers[2] = apuTimer{every: timer2Every, enabled: true}
	return a
}

func (a *APU) reset() {
	recorder := a.recorder
	*a = APU{recorder: recorder}
	a.timers[0] = apuTimer{every: timer01Every, enabled: true}
	a.timers[1] = apuTimer{every: timer01Every, enabled: true}
	a.timers[2] = apuTimer{every: timer2Every, enabled: true}
}

// readPort/writePort implement the Bus-facing apuPort contract: four
// bytes, CPU writes land in cpuToApuPorts, CPU reads observe
// apuToCpuPorts. Nothing inside the stub ever changes apuToCpuPorts on
// its own (there's no SPC700 program driving it); callers wanting to
// simulate a responding SPC700 write through setResponsePort in tests.
func (a *APU) readPort(addr uint16) byte {
	idx := addr & 0x03
	return a.apuToCpuPorts[idx]
}

func (a *APU) writePort(addr uint16, v byte) {
	idx := addr & 0x03
	a.cpuToApuPorts[idx] = v
}

func (a *APU) setResponsePort(idx int, v byte) {
	a.apuToCpuPorts[idx&0x03] = v
}

// step advances the APU's internal cycle by one; the System calls this
// every master cycle (spec.md §2, "apu.step() every cycle").
func (a *APU) step() {
	a.Cycles++
	for i := range a.timers {
		a.timers[i].step()
	}
	if a.recorder != nil && a.Cycles%uint64(timer01Every) == 0 {
		a.recorder.sample(a.timers[0].out, a.timers[1].out, a.timers[2].out)
	}
}

// SampleRecorder optionally captures the stub's per-timer "activity" as a
// mono PCM stream via go-audio/wav, the same library the teacher's nes
// package uses to dump NES APU channels for debugging. There is no real
// DSP synthesis to record (a documented non-goal); this gives the
// dependency a concrete, exercised home rather than dropping it outright.
type SampleRecorder struct {
	enc *wav.Encoder
}

// NewSampleRecorder wraps w in a mono 16-bit PCM WAV encoder at the given
// sample rate. Pass the recorder to APU.SetRecorder to start capturing;
// call Close when done to flush the WAV header.
func NewSampleRecorder(w io.WriteSeeker, sampleRate int) *SampleRecorder {
	return &SampleRecorder{
		enc: wav.NewEncoder(w, sampleRate, 16, 1, 1),
	}
}

func (r *SampleRecorder) sample(t0, t1, t2 byte) error {
	level := int(t0) + int(t1) + int(t2)
	buf := &audio.IntBuffer{
		Format: &audio.Format{NumChannels: 1, SampleRate: 44100},
		Data:   []int{level << 8},
	}
	return r.enc.Write(buf)
}

// Close flushes the WAV encoder. Safe to call on a nil *SampleRecorder.
func (r *SampleRecorder) Close() error {
	if r == nil {
		return nil
	}
	return r.enc.Close()
}

// SetRecorder attaches (or, with nil, detaches) a sample recorder. Nil by
// default: the System does not require recording to run a frame.
func (a *APU) SetRecorder(r *SampleRecorder) {
	a.recorder = r
}
