package fd

import "math/bits"

const wordBits = 64

// Domain is a bitset over the candidate values [0, size) of a finite-domain
// variable.
type Domain struct {
	words []uint64
	count int
}

// NewDomain returns a full domain over [0, size).
func NewDomain(size int) Domain {
	domain := Domain{
		words: make([]uint64, (size+wordBits-1)/wordBits),
		count: size,
	}
	for value := range size {
		domain.words[value/wordBits] |= 1 << (value % wordBits)
	}
	return domain
}

func (domain *Domain) Has(value int) bool {
	word := value / wordBits
	return word < len(domain.words) && domain.words[word]&(1<<(value%wordBits)) != 0
}

// Count returns the number of values still present.
func (domain *Domain) Count() int {
	return domain.count
}

func (domain *Domain) Empty() bool {
	return domain.count == 0
}

// Fixed reports whether a single candidate value remains.
func (domain *Domain) Fixed() bool {
	return domain.count == 1
}

// Value returns the smallest value still present, or -1 on an empty domain.
func (domain *Domain) Value() int {
	for i, word := range domain.words {
		if word != 0 {
			return i*wordBits + bits.TrailingZeros64(word)
		}
	}
	return -1
}

// Values returns the remaining values in ascending order.
func (domain *Domain) Values() []int {
	values := make([]int, 0, domain.count)
	for i, word := range domain.words {
		for word != 0 {
			values = append(values, i*wordBits+bits.TrailingZeros64(word))
			word &= word - 1
		}
	}
	return values
}

// Remove drops a value and reports whether the domain shrank.
func (domain *Domain) Remove(value int) bool {
	if !domain.Has(value) {
		return false
	}
	domain.words[value/wordBits] &^= 1 << (value % wordBits)
	domain.count--
	return true
}

// Fix narrows the domain to a single value and reports whether that value
// was still available.
func (domain *Domain) Fix(value int) bool {
	if !domain.Has(value) {
		return false
	}
	for i := range domain.words {
		domain.words[i] = 0
	}
	domain.words[value/wordBits] = 1 << (value % wordBits)
	domain.count = 1
	return true
}

// Intersect keeps only the values present in both domains and reports
// whether the receiver shrank.
func (domain *Domain) Intersect(other *Domain) bool {
	changed := false
	count := 0
	for i := range domain.words {
		word := domain.words[i] & other.words[i]
		if word != domain.words[i] {
			changed = true
			domain.words[i] = word
		}
		count += bits.OnesCount64(word)
	}
	domain.count = count
	return changed
}

func (domain *Domain) Clone() Domain {
	words := make([]uint64, len(domain.words))
	copy(words, domain.words)
	return Domain{words: words, count: domain.count}
}
