// Package statistics accumulates permutation-quality measurements across
// many minted hands, for trial runs that check the dispenser's shuffle is
// behaving uniformly.
package statistics

import (
	"fmt"
	"math"
)

// Collector tracks occurrence counts and hand-to-hand agreement for a
// stream of permutations of fixed size. It is not safe for concurrent
// use; trial workers funnel their hands through a single collector.
type Collector struct {
	size  int
	hands int

	// counts[slot][value] is how many observed hands placed value at slot.
	// Under a uniform shuffle every cell converges to hands/size.
	counts [][]int

	// Agreement between consecutive hands: number of slots where the two
	// permutations coincide. For independent uniform permutations the
	// expected agreement is 1 regardless of size.
	prev        []int
	comparisons int
	sumAgree    float64
	sumAgree2   float64 // Sum of squares for variance calculation
}

// NewCollector creates a collector for permutations of the given size.
func NewCollector(size int) *Collector {
	counts := make([][]int, size)
	for i := range counts {
		counts[i] = make([]int, size)
	}
	return &Collector{
		size:   size,
		counts: counts,
	}
}

// Size returns the permutation size this collector was created for.
func (c *Collector) Size() int {
	return c.size
}

// Hands returns the number of permutations added so far.
func (c *Collector) Hands() int {
	return c.hands
}

// Add incorporates one observed hand. It rejects inputs that are not a
// permutation of [0, size), since a malformed hand would indicate a
// dispenser bug rather than bad luck.
func (c *Collector) Add(choices []int) error {
	if len(choices) != c.size {
		return fmt.Errorf("hand has %d choices, want %d", len(choices), c.size)
	}

	seen := make([]bool, c.size)
	for _, v := range choices {
		if v < 0 || v >= c.size {
			return fmt.Errorf("choice %d out of range [0,%d)", v, c.size)
		}
		if seen[v] {
			return fmt.Errorf("duplicate choice %d", v)
		}
		seen[v] = true
	}

	for slot, v := range choices {
		c.counts[slot][v]++
	}

	if c.hands > 0 {
		agree := 0
		for i, v := range choices {
			if c.prev[i] == v {
				agree++
			}
		}
		a := float64(agree)
		c.comparisons++
		c.sumAgree += a
		c.sumAgree2 += a * a
	}

	c.prev = append(c.prev[:0], choices...)
	c.hands++
	return nil
}

// MeanAgreement returns the mean number of slots on which consecutive
// hands agreed.
func (c *Collector) MeanAgreement() float64 {
	if c.comparisons == 0 {
		return 0
	}
	return c.sumAgree / float64(c.comparisons)
}

// AgreementVariance returns the sample variance of the agreement counts.
func (c *Collector) AgreementVariance() float64 {
	if c.comparisons < 2 {
		return 0
	}
	mean := c.MeanAgreement()
	return (c.sumAgree2 - float64(c.comparisons)*mean*mean) / float64(c.comparisons-1)
}

// AgreementStdError returns the standard error of the mean agreement.
func (c *Collector) AgreementStdError() float64 {
	if c.comparisons == 0 {
		return 0
	}
	return math.Sqrt(c.AgreementVariance()) / math.Sqrt(float64(c.comparisons))
}

// AgreementConfidenceInterval95 returns the 95% confidence interval for
// the mean agreement between consecutive hands.
func (c *Collector) AgreementConfidenceInterval95() (float64, float64) {
	mean := c.MeanAgreement()
	margin := 1.96 * c.AgreementStdError()
	return mean - margin, mean + margin
}

// ChiSquare returns the chi-square statistic of the slot/value occurrence
// matrix against the uniform expectation of hands/size per cell. The
// associated degrees of freedom are (size-1)^2.
func (c *Collector) ChiSquare() float64 {
	if c.hands == 0 || c.size == 0 {
		return 0
	}
	expected := float64(c.hands) / float64(c.size)
	var chi2 float64
	for _, row := range c.counts {
		for _, observed := range row {
			diff := float64(observed) - expected
			chi2 += diff * diff / expected
		}
	}
	return chi2
}

// DegreesOfFreedom returns the degrees of freedom for ChiSquare.
func (c *Collector) DegreesOfFreedom() int {
	if c.size == 0 {
		return 0
	}
	return (c.size - 1) * (c.size - 1)
}

// SlotCount returns how many observed hands placed value at slot.
func (c *Collector) SlotCount(slot, value int) int {
	return c.counts[slot][value]
}

// Validate performs consistency checks on the collected data.
func (c *Collector) Validate() error {
	for slot, row := range c.counts {
		total := 0
		for _, n := range row {
			total += n
		}
		if total != c.hands {
			return fmt.Errorf("slot %d counts sum to %d, want %d", slot, total, c.hands)
		}
	}

	wantComparisons := c.hands - 1
	if c.hands == 0 {
		wantComparisons = 0
	}
	if c.comparisons != wantComparisons {
		return fmt.Errorf("recorded %d comparisons, want %d", c.comparisons, wantComparisons)
	}

	if c.sumAgree > float64(c.comparisons*c.size) {
		return fmt.Errorf("agreement sum %f exceeds %d slots over %d comparisons",
			c.sumAgree, c.size, c.comparisons)
	}

	return nil
}
