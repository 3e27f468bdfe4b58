package quiz

// Tally counts answers per animal. It is a value type; copies are independent.
type Tally [numAnimals]int

// Get returns the count for a. Unknown animals count as zero.
func (t Tally) Get(a Animal) int {
	if !a.Valid() {
		return 0
	}
	return t[a]
}

// Total returns the sum of all counts.
func (t Tally) Total() int {
	n := 0
	for _, v := range t {
		n += v
	}
	return n
}

// Max returns the highest count.
func (t Tally) Max() int {
	m := t[0]
	for _, v := range t[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

// Winner returns the animal with the highest count. Ties go to the animal
// declared first.
func (t Tally) Winner() Animal {
	best := Animal(0)
	for i := 1; i < numAnimals; i++ {
		if t[i] > t[best] {
			best = Animal(i)
		}
	}
	return best
}

func (t Tally) inc(a Animal) Tally {
	t[a]++
	return t
}
