package motion

// WalkFrameCount is the length of the walk cycle.
const WalkFrameCount = 6

// Sequence identifies which sprite sequence a frame belongs to.
type Sequence int

const (
	WalkSequence Sequence = iota
	FallSequence
)

func (s Sequence) String() string {
	switch s {
	case WalkSequence:
		return "walk"
	case FallSequence:
		return "fall"
	}
	return "unknown"
}

// SpriteRef selects one frame of a sprite sequence. It carries no image data.
type SpriteRef struct {
	Sequence Sequence
	Index    int
}

// FallRef is the single frame used for the whole fall.
var FallRef = SpriteRef{Sequence: FallSequence}

// FrameOf returns the frame to display for s.
func FrameOf(s State) SpriteRef {
	switch st := s.(type) {
	case Walking:
		return SpriteRef{Sequence: WalkSequence, Index: st.FrameIndex}
	case Falling:
		return st.Frame
	}
	return FallRef
}

// SpriteSet is the immutable set of frames a presenter draws from. It is
// built once at startup and shared read-only by every walker.
type SpriteSet[T any] struct {
	Walk [WalkFrameCount]T
	Fall T
}

// NewSpriteSet copies walk into a fixed-size set.
func NewSpriteSet[T any](walk [WalkFrameCount]T, fall T) SpriteSet[T] {
	return SpriteSet[T]{Walk: walk, Fall: fall}
}

// Lookup resolves ref to a frame. Out-of-range walk indexes wrap.
func (s SpriteSet[T]) Lookup(ref SpriteRef) T {
	if ref.Sequence == WalkSequence {
		i := ref.Index % WalkFrameCount
		if i < 0 {
			i += WalkFrameCount
		}
		return s.Walk[i]
	}
	return s.Fall
}
