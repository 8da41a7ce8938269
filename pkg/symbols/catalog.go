// Package symbols owns the static table of math commands offered inside
// $...$ and $$...$$ spans, partitioned by how many brace arguments each
// command takes, and the collation used to order them.
package symbols

import (
	"sort"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// Trigger is the character that starts a math command.
const Trigger = `\`

// Arity is the number of placeholder arguments in a command's template.
type Arity int

const (
	Zero Arity = iota // \cmd
	One               // \cmd{$1}
	Two               // \cmd{$1}{$2}
)

// Arities lists every arity class in template order.
var Arities = []Arity{Zero, One, Two}

// Entry is a single catalog command.
type Entry struct {
	Name  string
	Arity Arity
}

// Label is the display text of the entry, trigger included.
func (e Entry) Label() string {
	return Trigger + e.Name
}

// Template is the insertion text for the entry. The trigger is not part of
// it since the user has already typed it.
func (e Entry) Template() string {
	switch e.Arity {
	case One:
		return e.Name + "{$1}"
	case Two:
		return e.Name + "{$1}{$2}"
	default:
		return e.Name
	}
}

// Catalog is the deduplicated command set. It is immutable once built and
// safe to share between goroutines.
type Catalog struct {
	tries        [3]*patricia.Trie
	entries      []Entry
	counts       [3]int
	environments []string
}

var (
	defaultCatalog *Catalog
	defaultOnce    sync.Once
)

// Default returns the process-wide catalog, building it on first use.
func Default() *Catalog {
	defaultOnce.Do(func() {
		defaultCatalog = Build(Categories, DefaultEnvironments)
	})
	return defaultCatalog
}

// Build unions the categories of each arity class and drops repeated names
// within a class. A name registered under two different classes keeps one
// entry per class.
func Build(categories []Category, environments []string) *Catalog {
	c := &Catalog{
		environments: append([]string(nil), environments...),
	}
	for i := range c.tries {
		c.tries[i] = patricia.NewTrie()
	}

	for _, cat := range categories {
		if cat.Arity < Zero || cat.Arity > Two {
			log.Warnf("Skipping category %q with unsupported arity %d", cat.Name, cat.Arity)
			continue
		}
		for _, name := range cat.Names {
			if name == "" {
				continue
			}
			if !c.tries[cat.Arity].Insert(patricia.Prefix(name), cat.Arity) {
				continue
			}
			c.entries = append(c.entries, Entry{Name: name, Arity: cat.Arity})
			c.counts[cat.Arity]++
		}
	}
	sortEntries(c.entries)

	log.Debugf("Built symbol catalog: %d bare, %d unary, %d binary commands",
		c.counts[Zero], c.counts[One], c.counts[Two])
	return c
}

// Entries returns every entry in collation order. The slice is a copy.
func (c *Catalog) Entries() []Entry {
	return append([]Entry(nil), c.entries...)
}

// Count returns the number of distinct names in an arity class.
func (c *Catalog) Count(a Arity) int {
	if a < Zero || a > Two {
		return 0
	}
	return c.counts[a]
}

// Len returns the total number of entries across all classes.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Contains reports whether name is registered under arity a.
func (c *Catalog) Contains(name string, a Arity) bool {
	if a < Zero || a > Two {
		return false
	}
	return c.tries[a].Get(patricia.Prefix(name)) != nil
}

// Environments returns the choices of the \begin snippet.
func (c *Catalog) Environments() []string {
	return append([]string(nil), c.environments...)
}

// EnvironmentTemplate is the \begin snippet body. The first placeholder is a
// choice over the environments, the closing \end mirrors it.
func (c *Catalog) EnvironmentTemplate() string {
	return "begin{${1|" + strings.Join(c.environments, ",") + "|}}\n\t$2\n\\end{$1}"
}

// Lookup returns the entries whose name starts with prefix, in collation
// order. A leading trigger is ignored.
func (c *Catalog) Lookup(prefix string) []Entry {
	prefix = strings.TrimPrefix(prefix, Trigger)

	var found []Entry
	for _, a := range Arities {
		err := c.tries[a].VisitSubtree(patricia.Prefix(prefix), func(p patricia.Prefix, item patricia.Item) error {
			found = append(found, Entry{Name: string(p), Arity: item.(Arity)})
			return nil
		})
		if err != nil {
			log.Errorf("Error visiting symbol trie: %v", err)
		}
	}
	sortEntries(found)
	return found
}

func sortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		ki, kj := SortKey(entries[i].Label()), SortKey(entries[j].Label())
		if ki != kj {
			return ki < kj
		}
		return entries[i].Arity < entries[j].Arity
	})
}
