package main

// opQueue holds pending operations with the next operation last, so that
// taking from and splicing onto the front are both appends/truncations.
type opQueue struct {
	rev []string
}

func (q opQueue) len() int { return len(q.rev) }

// shift removes and returns the front operation.
func (q *opQueue) shift() (string, bool) {
	i := len(q.rev) - 1
	if i < 0 {
		return "", false
	}
	op := q.rev[i]
	q.rev = q.rev[:i]
	return op, true
}

// pushFront splices span onto the front, so that span[0] is shifted next.
func (q *opQueue) pushFront(span ...string) {
	for i := len(span) - 1; i >= 0; i-- {
		q.rev = append(q.rev, span[i])
	}
}

// pushBack appends ops after all pending operations.
func (q *opQueue) pushBack(ops ...string) {
	if len(ops) == 0 {
		return
	}
	rev := make([]string, 0, len(ops)+len(q.rev))
	for i := len(ops) - 1; i >= 0; i-- {
		rev = append(rev, ops[i])
	}
	q.rev = append(rev, q.rev...)
}

func (q *opQueue) clear() { q.rev = q.rev[:0] }

// tokens returns a front-first copy of the pending operations.
func (q opQueue) tokens() []string {
	ops := make([]string, len(q.rev))
	for i, op := range q.rev {
		ops[len(ops)-1-i] = op
	}
	return ops
}
