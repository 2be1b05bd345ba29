package internal

import "github.com/pkg/errors"

// Index construction and the pair scans are deep, pure computations. Rather
// than thread errors through every helper, contract violations panic with a
// thrown value, and the public API recovers to convert them to an error.

var (
	// A consecutive pair of vertices is identical or not axis-aligned, or the
	// loop is too short to bound any area.
	ErrMalformedPolygon = errors.New("malformed polygon")
	// No pair of distinct vertices spans a rectangle inside the polygon.
	ErrNoEnclosedRectangle = errors.New("no enclosed rectangle")
	// A rectangle area does not fit in 64 bits.
	ErrOverflow = errors.New("area overflows uint64")
)

// Wrapping the error keeps recover from mistaking an unrelated error panic
// (say, from a runtime bug) for one of ours.
type thrown struct {
	err error
}

// Panic with cause wrapped in a formatted message.
func fatalf(cause error, format string, args ...interface{}) {
	panic(thrown{errors.Wrapf(cause, format, args...)})
}

func HandlePanicRecover(r interface{}) error {
	if r != nil {
		if t, ok := r.(thrown); ok {
			return t.err
		}
		panic(r)
	}
	return nil
}

// Run fn, converting a thrown panic into an error.
func Catch(fn func()) (err error) {
	defer func() {
		if recoveredErr := HandlePanicRecover(recover()); recoveredErr != nil {
			err = recoveredErr
		}
	}()
	fn()
	return nil
}
