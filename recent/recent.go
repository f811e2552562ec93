// Package recent remembers looked up video identifiers and suggests them back.
// Only identifiers are stored, never the fetched records.
package recent

import (
	"strings"
	"time"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"github.com/vidinfo-cli/vidinfo/filesystem"
	"github.com/vidinfo-cli/vidinfo/key"
	"github.com/vidinfo-cli/vidinfo/where"
	"golang.org/x/exp/slices"
)

type entry struct {
	ID       string    `json:"id"`
	Rank     int       `json:"rank"`
	LastSeen time.Time `json:"last_seen"`
}

var cacher = gache.New[map[string]*entry](
	&gache.Options{
		Path:       where.Recent(),
		FileSystem: &filesystem.GacheFs{},
	},
)

func load() map[string]*entry {
	cached, expired, err := cacher.Get()
	if expired || err != nil || cached == nil {
		return make(map[string]*entry)
	}
	return cached
}

// Remember records id or bumps its rank. It does nothing when remembering is disabled.
// Identifiers are case-sensitive and stored as given, minus surrounding whitespace.
func Remember(id string) error {
	if !viper.GetBool(key.RecentRemember) {
		return nil
	}

	id = strings.TrimSpace(id)
	if id == "" {
		return nil
	}

	entries := load()
	if e, ok := entries[id]; ok {
		e.Rank++
		e.LastSeen = time.Now()
	} else {
		entries[id] = &entry{ID: id, Rank: 1, LastSeen: time.Now()}
	}

	return cacher.Set(entries)
}

// Suggest returns the best remembered identifier matching the partial input.
func Suggest(partial string) mo.Option[string] {
	suggestions := SuggestMany(partial)
	if len(suggestions) == 0 {
		return mo.None[string]()
	}
	return mo.Some(suggestions[0])
}

// SuggestMany returns remembered identifiers fuzzily matching the partial input,
// most used first, capped at the configured limit.
func SuggestMany(partial string) []string {
	partial = strings.TrimSpace(partial)

	matches := lo.Filter(lo.Values(load()), func(e *entry, _ int) bool {
		return fuzzy.MatchFold(partial, e.ID)
	})

	slices.SortFunc(matches, func(a, b *entry) int {
		if a.Rank != b.Rank {
			return b.Rank - a.Rank
		}
		return b.LastSeen.Compare(a.LastSeen)
	})

	if limit := viper.GetInt(key.RecentLimit); limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}

	return lo.Map(matches, func(e *entry, _ int) string {
		return e.ID
	})
}

// Count returns how many identifiers are remembered.
func Count() int {
	return len(load())
}

// Forget removes every remembered identifier.
func Forget() error {
	return cacher.Set(make(map[string]*entry))
}
