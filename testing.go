package softassert

import "testing"

// Wrap opens a soft scope over a plain Go test. Assertions made against the
// returned T are collected instead of failing the test one at a time; the
// aggregate report runs from a t.Cleanup hook when the test ends.
//
//	func TestUserFields(t *testing.T) {
//		st := softassert.Wrap(t)
//		assert.Equal(st, "amy", user.Name)
//		assert.Equal(st, 30, user.Age)
//	}
//
// If the test fails for any other reason first (FailNow, Fatal, a panic), the
// collected soft failures are discarded and that failure reports alone.
func Wrap(t *testing.T, opts ...Option) *T {
	st := New(t, opts...)
	st.rec.Activate()
	t.Cleanup(func() {
		finishWrapped(st, t.Failed())
	})
	return st
}

func finishWrapped(st *T, hardFailed bool) {
	if hardFailed {
		st.rec.Discard()
		st.chain.steps = nil
		return
	}
	if err := st.chain.drain(); err != nil {
		st.rec.Discard()
		st.strict.Errorf("%s", err.Error())
		return
	}
	st.Report()
}
