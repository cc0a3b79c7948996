package store

import (
	"sort"

	"playlist-server/internal/types"
)

// FoldItems folds the append-only item op log into the effective ordered
// tracklist. Ops apply in creation order: an add appends; a delete removes
// every earlier add it matches. A delete carrying an ISRC matches by ISRC;
// otherwise it matches by the full (name, artist, release, UPC, ISNI) tuple.
func FoldItems(log []ItemOp) []types.Item {
	ops := append([]ItemOp(nil), log...)
	sort.SliceStable(ops, func(i, j int) bool {
		return ops[i].Created.Before(ops[j].Created)
	})

	var items []ItemOp
	for _, op := range ops {
		switch op.Op {
		case OpAdd:
			items = append(items, op)
		case OpDelete:
			kept := items[:0]
			for _, item := range items {
				if !deleteMatches(op, item) {
					kept = append(kept, item)
				}
			}
			items = kept
		}
	}

	result := make([]types.Item, 0, len(items))
	for _, op := range items {
		result = append(result, types.Item{
			Number:      op.Number,
			Name:        op.Name,
			ArtistName:  op.ArtistName,
			ReleaseName: op.ReleaseName,
			UserHandle:  op.UserHandle,
			ISRC:        op.ISRC,
			UPC:         op.UPC,
			ISNI:        op.ISNI,
		})
	}
	return result
}

func deleteMatches(del, item ItemOp) bool {
	if del.ISRC != "" {
		return item.ISRC == del.ISRC
	}
	return item.Name == del.Name &&
		item.ArtistName == del.ArtistName &&
		item.ReleaseName == del.ReleaseName &&
		item.UPC == del.UPC &&
		item.ISNI == del.ISNI
}
