package dignity

import "github.com/ajitrahul/chetna-sub000/internal/core/zodiac"

// Summary condenses a set of reports. Ties resolve to the earlier body in canonical order
type Summary struct {
	Strongest  zodiac.Body   `json:"strongest" yaml:"strongest"`
	Weakest    zodiac.Body   `json:"weakest" yaml:"weakest"`
	MostLoaded zodiac.Body   `json:"most_loaded" yaml:"most_loaded"`
	Benefics   []zodiac.Body `json:"benefics" yaml:"benefics"`
	Malefics   []zodiac.Body `json:"malefics" yaml:"malefics"`
}

// Summarize builds a Summary; it returns the zero value for no reports
func Summarize(rs []Report) Summary {
	var s Summary
	if len(rs) == 0 {
		return s
	}
	strong, weak, loaded := rs[0], rs[0], rs[0]
	for _, r := range rs {
		if r.Score > strong.Score {
			strong = r
		}
		if r.Score < weak.Score {
			weak = r
		}
		if r.Load > loaded.Load {
			loaded = r
		}
		switch r.Role {
		case FunctionalBenefic:
			s.Benefics = append(s.Benefics, r.Body)
		case FunctionalMalefic:
			s.Malefics = append(s.Malefics, r.Body)
		}
	}
	s.Strongest, s.Weakest, s.MostLoaded = strong.Body, weak.Body, loaded.Body
	return s
}
