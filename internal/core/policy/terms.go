package policy

// terms is a byte-level Aho-Corasick matcher over the banned list.
// Each state carries a dense 256-way edge table; -1 marks a missing edge
type terms struct {
	states []termState
}

type termState struct {
	next [256]int32
	fail int32
	hit  bool
}

func newState() termState {
	var s termState
	for i := range s.next {
		s.next[i] = -1
	}
	return s
}

// compileTerms builds the trie and its failure links in one pass
func compileTerms(words []string) *terms {
	m := &terms{states: []termState{newState()}}
	for _, w := range words {
		if w == "" {
			continue
		}
		cur := int32(0)
		for i := 0; i < len(w); i++ {
			b := w[i]
			if m.states[cur].next[b] == -1 {
				m.states = append(m.states, newState())
				m.states[cur].next[b] = int32(len(m.states) - 1)
			}
			cur = m.states[cur].next[b]
		}
		m.states[cur].hit = true
	}

	queue := make([]int32, 0, len(m.states))
	for b := range 256 {
		if s := m.states[0].next[b]; s != -1 {
			queue = append(queue, s)
		}
	}
	for len(queue) > 0 {
		r := queue[0]
		queue = queue[1:]
		for b := range 256 {
			s := m.states[r].next[b]
			if s == -1 {
				continue
			}
			queue = append(queue, s)
			f := m.states[r].fail
			for f != 0 && m.states[f].next[b] == -1 {
				f = m.states[f].fail
			}
			if n := m.states[f].next[b]; n != -1 {
				m.states[s].fail = n
			}
			// a suffix that is itself a term makes this state a hit too
			if m.states[m.states[s].fail].hit {
				m.states[s].hit = true
			}
		}
	}
	return m
}

// any reports whether s contains at least one term
func (m *terms) any(s string) bool {
	cur := int32(0)
	for i := 0; i < len(s); i++ {
		b := s[i]
		for cur != 0 && m.states[cur].next[b] == -1 {
			cur = m.states[cur].fail
		}
		if n := m.states[cur].next[b]; n != -1 {
			cur = n
		}
		if m.states[cur].hit {
			return true
		}
	}
	return false
}
