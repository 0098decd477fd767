package respond

import (
	"strconv"
	"strings"
)

type mediaRange struct {
	typ     string
	subtype string
	q       float64
}

// parseAccept splits an Accept header into media ranges. A bare type means type/*,
// and a missing or invalid q parameter means 1.
func parseAccept(header string) []mediaRange {
	var ranges []mediaRange
	for part := range strings.SplitSeq(header, ",") {
		params := strings.Split(strings.TrimSpace(part), ";")
		mt := strings.ToLower(strings.TrimSpace(params[0]))
		if mt == "" {
			continue
		}
		typ, subtype, found := strings.Cut(mt, "/")
		if !found {
			subtype = "*"
		}
		mr := mediaRange{typ: typ, subtype: subtype, q: 1}
		for _, p := range params[1:] {
			k, v, ok := strings.Cut(strings.TrimSpace(p), "=")
			if !ok || strings.ToLower(strings.TrimSpace(k)) != "q" {
				continue
			}
			if q, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil && q >= 0 && q <= 1 {
				mr.q = q
			}
		}
		ranges = append(ranges, mr)
	}
	return ranges
}

// matchQ returns the highest q among the most specific ranges matching application/<subtype>,
// together with their specificity rank. Both are -1 when no range matches.
func matchQ(ranges []mediaRange, subtype, suffix string) (float64, int) {
	best, bestRank := -1.0, -1
	for _, mr := range ranges {
		rank := -1
		switch {
		case mr.typ == "application" && mr.subtype == "problem+"+suffix:
			rank = 4
		case mr.typ == "application" && mr.subtype == subtype:
			rank = 3
		case mr.typ == "application" && mr.subtype == "*+"+suffix:
			rank = 2
		case mr.typ == "application" && mr.subtype == "*":
			rank = 1
		case mr.typ == "*" && mr.subtype == "*":
			rank = 0
		}
		switch {
		case rank < 0:
		case rank > bestRank:
			best, bestRank = mr.q, rank
		case rank == bestRank && mr.q > best:
			best = mr.q
		}
	}
	return best, bestRank
}

// prefersCBOR reports whether the client ranks CBOR above JSON. On equal q the more specific
// match wins, and JSON wins a full tie. JSON is also the default when neither is acceptable.
func prefersCBOR(accept string) bool {
	if strings.TrimSpace(accept) == "" {
		return false
	}
	ranges := parseAccept(accept)
	cborQ, cborRank := matchQ(ranges, "cbor", "cbor")
	jsonQ, jsonRank := matchQ(ranges, "json", "json")
	if cborQ <= 0 {
		return false
	}
	return cborQ > jsonQ || (cborQ == jsonQ && cborRank > jsonRank)
}
