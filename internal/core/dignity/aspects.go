package dignity

import "github.com/ajitrahul/chetna-sub000/internal/core/zodiac"

// aspectHouses is the graha drishti table: houses counted from the source sign (own sign = 1)
var aspectHouses = [zodiac.BodyCount][]int{
	zodiac.Sun:     {7},
	zodiac.Moon:    {7},
	zodiac.Mars:    {4, 7, 8},
	zodiac.Mercury: {7},
	zodiac.Jupiter: {5, 7, 9},
	zodiac.Venus:   {7},
	zodiac.Saturn:  {3, 7, 10},
	zodiac.Rahu:    {5, 7, 9},
	zodiac.Ketu:    {5, 7, 9},
}

// AspectHouses returns the houses b aspects, counted from its own sign
func AspectHouses(b zodiac.Body) []int {
	if !b.Valid() {
		return nil
	}
	return append([]int(nil), aspectHouses[b]...)
}

// Aspects reports whether body b placed in sign from casts an aspect on sign to
func Aspects(b zodiac.Body, from, to zodiac.Sign) bool {
	if !b.Valid() {
		return false
	}
	h := zodiac.HouseFrom(from, to)
	for _, a := range aspectHouses[b] {
		if a == h {
			return true
		}
	}
	return false
}
