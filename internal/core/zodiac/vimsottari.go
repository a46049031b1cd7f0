package zodiac

// VimsottariYears is the length of the full cycle in years
const VimsottariYears = 120

// vimsottariOrder is the fixed cyclic lord order used for nakshatras and every dasha level
var vimsottariOrder = [BodyCount]Body{Ketu, Venus, Sun, Moon, Mars, Rahu, Jupiter, Saturn, Mercury}

var vimsottariYears = [BodyCount]int64{
	Sun:     6,
	Moon:    10,
	Mars:    7,
	Mercury: 17,
	Jupiter: 16,
	Venus:   20,
	Saturn:  19,
	Rahu:    18,
	Ketu:    7,
}

// position of each body inside vimsottariOrder
var vimsottariIndex = func() [BodyCount]int {
	var idx [BodyCount]int
	for i, b := range vimsottariOrder {
		idx[b] = i
	}
	return idx
}()

// DashaYears returns the integer year-length of b's Mahadasha
func DashaYears(b Body) int64 {
	if !b.Valid() {
		return 0
	}
	return vimsottariYears[b]
}

// DashaOrder returns the nine lords in cyclic order starting from first
func DashaOrder(first Body) []Body {
	out := make([]Body, 0, BodyCount)
	start := vimsottariIndex[first%BodyCount]
	for i := 0; i < BodyCount; i++ {
		out = append(out, vimsottariOrder[(start+i)%BodyCount])
	}
	return out
}

// NextLord returns the lord following b in the cycle
func NextLord(b Body) Body { return vimsottariOrder[(vimsottariIndex[b%BodyCount]+1)%BodyCount] }
