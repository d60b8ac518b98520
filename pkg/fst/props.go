package fst

// IsSubsequential reports whether every arc carries exactly one input symbol
// and no state has two outgoing arcs on the same input symbol. Subsequential
// graphs are deterministic on their input and support the fast table-driven
// transduction path.
func (f *FST) IsSubsequential() bool {
	for i := range f.states {
		st := &f.states[i]
		if st.dead {
			continue
		}
		seen := make(map[string]struct{}, len(st.outgoing))
		for _, a := range st.outgoing {
			in := f.arcs[a].in
			if len(in) != 1 {
				return false
			}
			if _, dup := seen[in[0]]; dup {
				return false
			}
			seen[in[0]] = struct{}{}
		}
	}
	return true
}

// IsSequential reports whether the graph is subsequential and no state has a
// non-empty finalizing string.
func (f *FST) IsSequential() bool {
	for i := range f.states {
		if !f.states[i].dead && len(f.states[i].finalizing) > 0 {
			return false
		}
	}
	return f.IsSubsequential()
}
