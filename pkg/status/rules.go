// Package status extracts a fixed catalog of metrics from InnoDB monitor
// output. Extraction is driven by a declarative rule table: each rule names a
// slot, a pattern, and how repeated matches combine.
package status

import (
	"regexp"
)

// Cardinality decides how a rule's matches populate its slot.
type Cardinality int

const (
	Single Cardinality = iota // last match wins
	List                      // every match, in order of appearance
	Tuple                     // all groups of the last match, as one record
)

func (c Cardinality) String() string {
	switch c {
	case List:
		return "list"
	case Tuple:
		return "tuple"
	default:
		return "single"
	}
}

// MarshalText lets catalogs serialize cardinalities by name.
func (c Cardinality) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Slot names.
const (
	SlotTimestamp        = "timestamp"
	SlotTimePeriod       = "time_period"
	SlotTotalMemory      = "total_memory"
	SlotQueriesInside    = "queries_inside"
	SlotQueriesQueue     = "queries_queue"
	SlotRows             = "rows"
	SlotBufferPoolSize   = "buffer_pool_size"
	SlotBufferPoolSizes  = "buffer_pool_sizes"
	SlotLogSequence      = "log_sequence"
	SlotLogFlush         = "log_flush"
	SlotSemaphores       = "semaphores"
	SlotFKErrors         = "fk_errors"
	SlotTransactionLocks = "transaction_locks"
)

// Rule binds a pattern to a slot. Patterns with capture groups store the
// groups; patterns without groups store the whole matched fragment.
type Rule struct {
	Name        string
	Pattern     *regexp.Regexp
	Cardinality Cardinality
}

// rules is the fixed catalog. Patterns run against the joined capture text, in
// which line breaks are spaces, so fragment patterns use lazy quantifiers to
// stop at the nearest closing marker.
var rules = []Rule{
	{SlotTimestamp, regexp.MustCompile(`(\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}) (?:\S+ )?INNODB MONITOR OUTPUT`), Single},
	{SlotTimePeriod, regexp.MustCompile(`last (\d+) seconds`), Single},
	{SlotTotalMemory, regexp.MustCompile(`Total memory allocated (\d+)`), Single},
	{SlotQueriesInside, regexp.MustCompile(`(\d+) queries inside`), Single},
	{SlotQueriesQueue, regexp.MustCompile(`(\d+) queries in queue`), Single},
	{SlotRows, regexp.MustCompile(`rows inserted (\d+), updated (\d+), deleted (\d+), read (\d+)`), Tuple},
	{SlotBufferPoolSize, regexp.MustCompile(`Buffer pool size\s+(\d+)`), Single},
	{SlotBufferPoolSizes, regexp.MustCompile(`Buffer pool size\s+(\d+)`), List},
	{SlotLogSequence, regexp.MustCompile(`Log sequence number\s+(\d+)`), Single},
	{SlotLogFlush, regexp.MustCompile(`Log flushed up to\s+(\d+)`), Single},
	{SlotSemaphores, regexp.MustCompile(`--Thread .+? seconds`), List},
	{SlotFKErrors, regexp.MustCompile(`LATEST FOREIGN KEY ERROR .+? there is a record:`), List},
	{SlotTransactionLocks, regexp.MustCompile(`LOCK WAIT .+? RECORD LOCKS`), List},
}

// Rules returns a copy of the rule catalog in evaluation order.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}

// Lookup returns the rule for a slot name.
func Lookup(name string) (Rule, bool) {
	for _, r := range rules {
		if r.Name == name {
			return r, true
		}
	}
	return Rule{}, false
}

// Apply runs the rule against text. It reports false when nothing matched.
func (r Rule) Apply(text string) ([]string, bool) {
	matches := r.Pattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil, false
	}

	switch r.Cardinality {
	case List:
		values := make([]string, 0, len(matches))
		for _, m := range matches {
			values = append(values, firstGroup(m))
		}
		return values, true
	case Tuple:
		last := matches[len(matches)-1]
		if len(last) == 1 {
			return []string{last[0]}, true
		}
		values := make([]string, len(last)-1)
		copy(values, last[1:])
		return values, true
	default:
		return []string{firstGroup(matches[len(matches)-1])}, true
	}
}

func firstGroup(m []string) string {
	if len(m) > 1 {
		return m[1]
	}
	return m[0]
}
