package cards

// Joker is the wildcard good. It is converted into a real good at the end of
// the match.
const Joker = "Joker"

// Good is a collectible resource. Holding at least Thresholds[i] units
// earns the tier's points: 1, 1, 1 and then 2, cumulatively.
type Good struct {
	Name       string `yaml:"name"`
	Thresholds [4]int `yaml:"thresholds"`
}

var tierPoints = [4]int{1, 1, 1, 2}

// Points scores held units of the good.
func (g Good) Points(held int) int {
	total := 0
	for i, t := range g.Thresholds {
		if held >= t {
			total += tierPoints[i]
		}
	}
	return total
}
