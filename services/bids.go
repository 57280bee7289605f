package services

// RatedBid is a provider bid annotated with its total cost and the
// comparison flags used in the response-comparison view.
type RatedBid struct {
	QuoteLine
	Total         float64 `json:"total"`
	BestPrice     bool    `json:"best_price"`
	MostExpensive bool    `json:"most_expensive"`
}

// BidGroup holds all competing bids for one role designation.
type BidGroup struct {
	Role     string     `json:"role"`
	Bids     []RatedBid `json:"bids"`
	MinTotal float64    `json:"min_total"`
	MaxTotal float64    `json:"max_total"`
}

// GroupBids buckets raw provider bids by role designation, preserving the
// order in which each role first appears. Within a group every bid's total is
// unit cost × days; the cheapest bid(s) are flagged best price and the most
// expensive flagged accordingly. A group with a single bid gets no flags
// since a comparison needs at least two candidates. Ties at either extreme
// all receive the flag, except that a fully tied group is all best price and
// never most expensive.
func GroupBids(bids []QuoteLine) []BidGroup {
	var groups []BidGroup
	byRole := make(map[string]int)

	for _, b := range bids {
		i, ok := byRole[b.Role]
		if !ok {
			i = len(groups)
			byRole[b.Role] = i
			groups = append(groups, BidGroup{Role: b.Role})
		}
		groups[i].Bids = append(groups[i].Bids, RatedBid{
			QuoteLine: b,
			Total:     b.Total(),
		})
	}

	for gi := range groups {
		g := &groups[gi]

		g.MinTotal = g.Bids[0].Total
		g.MaxTotal = g.Bids[0].Total
		for _, rb := range g.Bids[1:] {
			if rb.Total < g.MinTotal {
				g.MinTotal = rb.Total
			}
			if rb.Total > g.MaxTotal {
				g.MaxTotal = rb.Total
			}
		}

		if len(g.Bids) < 2 {
			continue
		}
		for bi := range g.Bids {
			if g.Bids[bi].Total == g.MinTotal {
				g.Bids[bi].BestPrice = true
			}
			if g.Bids[bi].Total == g.MaxTotal && g.MaxTotal != g.MinTotal {
				g.Bids[bi].MostExpensive = true
			}
		}
	}

	return groups
}
