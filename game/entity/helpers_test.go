package entity

// scriptedRandom replays fixed values, reduced modulo n.
type scriptedRandom struct {
	values []int
	next   int
}

func (r *scriptedRandom) Intn(n int) int {
	if len(r.values) == 0 {
		return 0
	}
	v := r.values[r.next%len(r.values)]
	r.next++
	return v % n
}
