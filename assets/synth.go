package assets

import (
	"math"
	"math/rand"
)

// toneSpec describes one synthesized burst: a frequency glide under an
// exponential decay envelope, with an optional noise mix for percussive
// sounds.
type toneSpec struct {
	dur     float64 // seconds
	startHz float64
	endHz   float64
	vol     float64 // peak amplitude, 0..1
	noise   float64 // noise mix, 0..1
	decay   float64 // envelope decay rate, 1/s
}

// synthTone renders a toneSpec as 16-bit little-endian stereo PCM, the
// format the audio context consumes directly. Output is deterministic
// for a given spec; the noise source is seeded from the spec itself.
func synthTone(sampleRate int, spec toneSpec) []byte {
	n := int(spec.dur * float64(sampleRate))
	out := make([]byte, n*4)
	rng := rand.New(rand.NewSource(int64(spec.startHz)*1000 + int64(spec.dur*1e6)))

	// A brief ramp-in keeps the clip from clicking on play.
	attack := int(0.004 * float64(sampleRate))
	phase := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)
		hz := spec.startHz + (spec.endHz-spec.startHz)*t
		phase += 2 * math.Pi * hz / float64(sampleRate)

		s := math.Sin(phase)
		if spec.noise > 0 {
			s = (1-spec.noise)*s + spec.noise*(rng.Float64()*2-1)
		}

		env := math.Exp(-spec.decay * t * spec.dur)
		if i < attack {
			env *= float64(i) / float64(attack)
		}

		v := int16(s * env * spec.vol * math.MaxInt16)
		out[i*4] = byte(v)
		out[i*4+1] = byte(v >> 8)
		out[i*4+2] = byte(v)
		out[i*4+3] = byte(v >> 8)
	}
	return out
}

// appendClips joins PCM buffers end to end.
func appendClips(clips ...[]byte) []byte {
	total := 0
	for _, c := range clips {
		total += len(c)
	}
	out := make([]byte, 0, total)
	for _, c := range clips {
		out = append(out, c...)
	}
	return out
}
