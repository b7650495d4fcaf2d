package neighbours

import (
	"github.com/cognicore/lexical/pkg/lexical/corpus"
	"github.com/cognicore/lexical/pkg/lexical/stats"
	"github.com/cognicore/lexical/pkg/lexical/tokenize"
)

// PairWord is a query or neighbour known by both spelling and sound.
type PairWord struct {
	Orth tokenize.Word
	Phon tokenize.Word
}

// Phonographic keeps the orthographic neighbours whose transcription is
// itself a phonological neighbour.
func Phonographic(orthSet, phonSet []corpus.Entry, cross *corpus.CrossMap) []corpus.Entry {
	phonKeys := make(map[string]struct{}, len(phonSet))
	for _, e := range phonSet {
		phonKeys[e.Key] = struct{}{}
	}
	var out []corpus.Entry
	for _, e := range orthSet {
		phon, err := cross.Transcription(e.Key)
		if err != nil {
			continue
		}
		if _, ok := phonKeys[phon]; ok {
			out = append(out, e)
		}
	}
	return out
}

// PairedConnectivity is Connectivity where an edge needs an edit distance
// of 1 in spelling and in sound.
func PairedConnectivity(set []PairWord) stats.Float {
	return connectivity(len(set), func(i, j int) bool {
		return isNeighbour(set[i].Orth, set[j].Orth, Edit) && isNeighbour(set[i].Phon, set[j].Phon, Edit)
	})
}

// PairedNearest ranks corpus pairs whose spelling and sound distances to
// the query are equal, using that shared distance.
func PairedNearest(query PairWord, pairs *corpus.PairIndex) Ranking[corpus.Pair] {
	return rank(pairs.Pairs(), func(p corpus.Pair) (int, bool) {
		od := Distance(query.Orth, p.Orth.Word, Edit)
		pd := Distance(query.Phon, p.Phon.Word, Edit)
		return pd, od == pd
	})
}
