package compiler

// InstructionHandler receives Instruction events.
type InstructionHandler func(Instruction) error

// CommentHandler receives CommentRun events.
type CommentHandler func(CommentRun) error

// FinishHandler receives the Finish event.
type FinishHandler func() error

// Tokenizer splits source text into instructions and comment runs and
// dispatches one event per token to the registered handlers. Handlers of a
// kind are called in registration order.
type Tokenizer struct {
	onInstruction []InstructionHandler
	onComment     []CommentHandler
	onFinish      []FinishHandler
}

func NewTokenizer() *Tokenizer {
	return &Tokenizer{}
}

func (t *Tokenizer) OnInstruction(h InstructionHandler) { t.onInstruction = append(t.onInstruction, h) }
func (t *Tokenizer) OnComment(h CommentHandler) { t.onComment = append(t.onComment, h) }
func (t *Tokenizer) OnFinish(h FinishHandler) { t.onFinish = append(t.onFinish, h) }

// Listen registers g for instruction and finish events, and for comment
// events when comments is set.
func (t *Tokenizer) Listen(g Generator, comments bool) {
	t.OnInstruction(g.HandleInstruction)
	if comments {
		t.OnComment(g.HandleComment)
	}
	t.OnFinish(g.HandleFinish)
}

// dispatch delivers ev to every handler of its kind and stops at the first error.
func (t *Tokenizer) dispatch(ev Event) error {
	switch ev := ev.(type) {
	case Instruction:
		for _, h := range t.onInstruction {
			if err := h(ev); err != nil {
				return err
			}
		}
	case CommentRun:
		for _, h := range t.onComment {
			if err := h(ev); err != nil {
				return err
			}
		}
	case Finish:
		for _, h := range t.onFinish {
			if err := h(); err != nil {
				return err
			}
		}
	}
	return nil
}

// scanner tracks the current position during a single pass over src.
type scanner struct {
	src string
	pos Pos
}

func (s *scanner) done() bool { return s.pos.Offset >= len(s.src) }

func (s *scanner) peek() byte { return s.src[s.pos.Offset] }

// advance consumes one byte.
func (s *scanner) advance() {
	if s.src[s.pos.Offset] == '\n' {
		s.pos.Line++
		s.pos.Column = 1
	} else {
		s.pos.Column++
	}
	s.pos.Offset++
}

// Tokenize scans src once, left to right. Every instruction character is
// dispatched immediately; every maximal run of other characters is
// dispatched as one CommentRun; Finish follows the last character. A handler
// error aborts the scan and is returned unchanged.
func (t *Tokenizer) Tokenize(src string) error {
	s := &scanner{src: src, pos: Pos{Line: 1, Column: 1}}
	for !s.done() {
		if op, ok := LookupOp(s.peek()); ok {
			ev := Instruction{Op: op, Pos: s.pos}
			s.advance()
			if err := t.dispatch(ev); err != nil {
				return err
			}
			continue
		}

		start := s.pos
		for !s.done() {
			if _, ok := LookupOp(s.peek()); ok {
				break
			}
			s.advance()
		}
		ev := CommentRun{Text: src[start.Offset:s.pos.Offset], Start: start, End: s.pos}
		if err := t.dispatch(ev); err != nil {
			return err
		}
	}
	return t.dispatch(Finish{})
}

// Scan returns the full event stream of src.
func Scan(src string) ([]Event, error) {
	var events []Event
	t := NewTokenizer()
	t.OnInstruction(func(i Instruction) error {
		events = append(events, i)
		return nil
	})
	t.OnComment(func(c CommentRun) error {
		events = append(events, c)
		return nil
	})
	t.OnFinish(func() error {
		events = append(events, Finish{})
		return nil
	})
	if err := t.Tokenize(src); err != nil {
		return events, err
	}
	return events, nil
}
