package calorie

import (
	"math/big"
	"slices"

	"github.com/vk/adventofcode/internal/puzzle"
)

// Inventory is the list of item weights carried by one elf.
type Inventory []*big.Int

// InventoryList holds one Inventory per blank-line delimited block.
type InventoryList []Inventory

// Parse groups the integer lines of text into inventories. A blank line
// starts the next inventory; lines that are not non-negative integers are
// skipped. The result always holds at least one inventory.
func Parse(text string) InventoryList {
	list := InventoryList{}
	current := 0

	for _, line := range puzzle.Lines(text) {
		if line == "" {
			current++
		}
		for len(list) <= current {
			list = append(list, Inventory{})
		}
		if n, ok := parseWeight(line); ok {
			list[current] = append(list[current], n)
		}
	}

	if len(list) == 0 {
		// No lines at all: the group index never moved past 0.
		list = append(list, Inventory{})
	}
	return list
}

func parseWeight(s string) (*big.Int, bool) {
	if s == "" || s[0] == '-' {
		return nil, false
	}
	return new(big.Int).SetString(s, 10)
}

// Total returns the sum of all weights in the inventory.
func (inv Inventory) Total() *big.Int {
	sum := new(big.Int)
	for _, n := range inv {
		sum.Add(sum, n)
	}
	return sum
}

// Totals returns the per-inventory sums in input order.
func (l InventoryList) Totals() []*big.Int {
	totals := make([]*big.Int, len(l))
	for i, inv := range l {
		totals[i] = inv.Total()
	}
	return totals
}

// TotalMax returns the largest inventory total.
func TotalMax(l InventoryList) (*big.Int, error) {
	if len(l) == 0 {
		return nil, puzzle.EmptyInput("inventory list")
	}
	best := l[0].Total()
	for _, inv := range l[1:] {
		if t := inv.Total(); t.Cmp(best) > 0 {
			best = t
		}
	}
	return best, nil
}

// TopSum returns the sum of the n largest inventory totals, or of all of
// them when fewer than n exist.
func TopSum(l InventoryList, n int) *big.Int {
	totals := l.Totals()
	slices.SortFunc(totals, func(a, b *big.Int) int { return b.Cmp(a) })

	sum := new(big.Int)
	for _, t := range totals[:min(n, len(totals))] {
		sum.Add(sum, t)
	}
	return sum
}

// Top3Sum is the second part's answer.
func Top3Sum(l InventoryList) *big.Int {
	return TopSum(l, 3)
}
