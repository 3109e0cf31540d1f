package optimise

import "sort"

// sortIndividuals orders by descending fitness, breaking exact ties by
// comparing gene sequences lexicographically under each mode's
// tie-break rank so sorting a population is never order-dependent.
func sortIndividuals(pop []individual) {
	sort.SliceStable(pop, func(i, j int) bool {
		if pop[i].fitness != pop[j].fitness {
			return pop[i].fitness > pop[j].fitness
		}
		a, b := pop[i].genes, pop[j].genes
		for k := 0; k < len(a) && k < len(b); k++ {
			if a[k] != b[k] {
				return a[k].LessTieBreak(b[k])
			}
		}
		return false
	})
}
