package eval

// Weights configures the static evaluation.
type Weights struct {
	Material    int `json:"material"`     // multiplier of the per-piece base value
	ManBase     int `json:"man_base"`     // base value of a man before the multiplier
	KingBonus   int `json:"king_bonus"`   // added to ManBase for a king
	Protection  int `json:"protection"`   // per friendly piece diagonally behind a man
	Threat      int `json:"threat"`       // enemy piece two rows ahead of a man
	Center      int `json:"center"`       // multiplier of the centre-control term
	CenterBase  int `json:"center_base"`  // centre term at distance zero
	CenterStep  int `json:"center_step"`  // centre term lost per square of distance
	Advance     int `json:"advance"`      // multiplier of the advancement term
	AdvanceStep int `json:"advance_step"` // advancement per row from the home row
	BackRank    int `json:"back_rank"`    // man still on its home row
}

// DefaultWeights are the weights the engine plays with.
func DefaultWeights() Weights {
	return Weights{
		Material:    15,
		ManBase:     100,
		KingBonus:   80,
		Protection:  150,
		Threat:      100,
		Center:      3,
		CenterBase:  100,
		CenterStep:  10,
		Advance:     5,
		AdvanceStep: 10,
		BackRank:    300,
	}
}

func (w Weights) IsValid() bool {
	return w.Material > 0 &&
		w.ManBase > 0 &&
		w.KingBonus >= 0 &&
		w.Protection >= 0 &&
		w.Threat >= 0 &&
		w.Center >= 0 &&
		w.CenterStep >= 0 &&
		w.Advance >= 0 &&
		w.AdvanceStep >= 0 &&
		w.BackRank >= 0
}

// man returns the value of a man, king the value of a king.
func (w Weights) man() int  { return w.Material * w.ManBase }
func (w Weights) king() int { return w.Material * (w.ManBase + w.KingBonus) }
