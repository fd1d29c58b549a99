package chess

import (
	"container/heap"
	"fmt"
	"math"
	"sort"
)

// Move is a long-algebraic-notation (LAN) move: a (start, end, promotion?) triple. It carries
// no context about castling or en passant; that is inferred from the position at Make time.
type Move struct {
	From, To  Coordinate
	Promotion PieceKind // NoPieceKind if not a promotion
}

// ParseMove parses a move such as "e2e4" or "e7e8q".
func ParseMove(s string) (Move, error) {
	runes := []rune(s)
	if len(runes) != 4 && len(runes) != 5 {
		return Move{}, fmt.Errorf("%w: invalid move '%v'", ErrInvalidString, s)
	}

	from, err := ParseCoordinate(runes[0], runes[1])
	if err != nil {
		return Move{}, fmt.Errorf("invalid from square in '%v': %w", s, err)
	}
	to, err := ParseCoordinate(runes[2], runes[3])
	if err != nil {
		return Move{}, fmt.Errorf("invalid to square in '%v': %w", s, err)
	}

	m := Move{From: from, To: to}
	if len(runes) == 5 {
		promo, ok := ParsePieceKind(runes[4])
		if !ok || promo == Pawn || promo == King {
			return Move{}, fmt.Errorf("%w: invalid promotion letter in '%v'", ErrInvalidPromotion, s)
		}
		m.Promotion = promo
	}
	return m, nil
}

func (m Move) Equals(o Move) bool {
	return m.From == o.From && m.To == o.To && m.Promotion == o.Promotion
}

func (m Move) String() string {
	if m.Promotion != NoPieceKind {
		return fmt.Sprintf("%v%v%v", m.From, m.To, m.Promotion)
	}
	return fmt.Sprintf("%v%v", m.From, m.To)
}

// FormatMoves renders a move sequence as a space-separated LAN string.
func FormatMoves(moves []Move) string {
	var ret []string
	for _, m := range moves {
		ret = append(ret, m.String())
	}
	var sb []byte
	for i, s := range ret {
		if i > 0 {
			sb = append(sb, ' ')
		}
		sb = append(sb, s...)
	}
	return string(sb)
}

// MovePriority is a move ordering key; higher sorts first.
type MovePriority int32

// MovePriorityFn assigns an ordering key to a move, per spec.md §4.10 step 3.
type MovePriorityFn func(m Move) MovePriority

// First gives the given move the highest possible priority, falling back to fn otherwise. Used
// to place the previous iteration's principal-variation move first in the search, per
// spec.md §9 ("Move ordering via previous PV").
func First(first Move, fn MovePriorityFn) MovePriorityFn {
	return func(m Move) MovePriority {
		if first.Equals(m) {
			return math.MaxInt32
		}
		return fn(m)
	}
}

// SortByPriority stably sorts moves by descending priority.
func SortByPriority(moves []Move, fn MovePriorityFn) {
	sort.SliceStable(moves, func(i, j int) bool {
		return fn(moves[i]) > fn(moves[j])
	})
}

// MoveList is a move priority queue used to iterate moves highest-priority-first during search.
type MoveList struct {
	h moveHeap
}

func NewMoveList(moves []Move, fn MovePriorityFn) *MoveList {
	h := make(moveHeap, len(moves))
	for i, m := range moves {
		h[i] = elm{m: m, val: fn(m)}
	}
	heap.Init(&h)
	return &MoveList{h: h}
}

func (ml *MoveList) Next() (Move, bool) {
	if ml.h.Len() == 0 {
		return Move{}, false
	}
	e := heap.Pop(&ml.h).(elm)
	return e.m, true
}

func (ml *MoveList) Size() int {
	return ml.h.Len()
}

type elm struct {
	m   Move
	val MovePriority
}

type moveHeap []elm

func (h moveHeap) Len() int            { return len(h) }
func (h moveHeap) Less(i, j int) bool  { return h[i].val > h[j].val }
func (h moveHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *moveHeap) Push(x interface{}) { *h = append(*h, x.(elm)) }
func (h *moveHeap) Pop() interface{} {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]
	return e
}
