package report

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/dkoosis/innostat/pkg/status"
)

// ReportTitle heads every report.
const ReportTitle = "INNODB STATUS PARSER"

// Section titles, in report order.
const (
	TitleTimestamp    = "REPORT TIMESTAMP"
	TitleTimePeriod   = "COLLECTION TIME PERIOD"
	TitleRowData      = "ROW DATA"
	TitleRowOps       = "ROW OPERATIONS"
	TitleBufferPool   = "BUFFER POOL SIZES"
	TitleUnflushed    = "UNFLUSHED DATA"
	TitleTotalMemory  = "TOTAL MEMORY"
	TitleThreads      = "THREADS"
	TitleTransactions = "TRANSACTION LOCKS"
	TitleFKErrors     = "FOREIGN KEY ERRORS"
)

// Section is one titled block of the report. Lines are the plain-text body;
// a line may carry embedded newlines where the layout calls for blank lines.
type Section struct {
	Title string
	Slots []string // slots the section is bound to
	Lines []string
}

// Sections builds the report body from a catalog. Sections whose slots are
// absent are left out; the time period and row operations sections are
// always present. The result depends only on the catalog.
func Sections(cat *status.Catalog, log *zap.Logger) []Section {
	if log == nil {
		log = zap.NewNop()
	}
	var out []Section

	if ts, ok := cat.Value(status.SlotTimestamp); ok {
		out = append(out, Section{
			Title: TitleTimestamp,
			Slots: []string{status.SlotTimestamp},
			Lines: []string{"\t" + ts},
		})
	}

	period, _ := cat.Value(status.SlotTimePeriod)
	out = append(out, Section{
		Title: TitleTimePeriod,
		Slots: []string{status.SlotTimePeriod},
		Lines: []string{"data collected in: " + period + " seconds"},
	})

	if rows, ok := cat.Rows(); ok {
		out = append(out, Section{
			Title: TitleRowData,
			Slots: []string{status.SlotRows},
			Lines: []string{
				"since server started/restarted:\n",
				"rows inserted: " + rows.Inserted,
				"rows updated: " + rows.Updated,
				"rows deleted: " + rows.Deleted,
				"rows read: " + rows.Read,
			},
		})
	}

	inside, _ := cat.Value(status.SlotQueriesInside)
	queue, _ := cat.Value(status.SlotQueriesQueue)
	out = append(out, Section{
		Title: TitleRowOps,
		Slots: []string{status.SlotQueriesInside, status.SlotQueriesQueue},
		Lines: []string{
			"queries inside InnoDB: " + inside,
			"queries in queue: " + queue,
		},
	})

	if size, ok := cat.Value(status.SlotBufferPoolSize); ok {
		sizes := cat.List(status.SlotBufferPoolSizes)
		if len(sizes) == 0 {
			sizes = []string{size}
		}
		out = append(out, Section{
			Title: TitleBufferPool,
			Slots: []string{status.SlotBufferPoolSize, status.SlotBufferPoolSizes},
			Lines: []string{strings.Join(sizes, "\n"), "\n(in pages)"},
		})
	}

	kb, ok, err := Unflushed(cat)
	switch {
	case err != nil:
		log.Debug("skipping unflushed data section", zap.Error(err))
	case ok:
		out = append(out, Section{
			Title: TitleUnflushed,
			Slots: []string{status.SlotLogSequence, status.SlotLogFlush},
			Lines: []string{"\n" + FormatKB(kb) + " kB data is unflushed to disk."},
		})
	}

	if mem, ok := cat.Value(status.SlotTotalMemory); ok {
		out = append(out, Section{
			Title: TitleTotalMemory,
			Slots: []string{status.SlotTotalMemory},
			Lines: []string{"total memory: " + mem + " bytes"},
		})
	}

	if sem := cat.List(status.SlotSemaphores); len(sem) > 0 {
		out = append(out, Section{
			Title: TitleThreads,
			Slots: []string{status.SlotSemaphores},
			Lines: []string{"thread waits:\n", strings.Join(sem, " | ")},
		})
	}

	if locks := cat.List(status.SlotTransactionLocks); len(locks) > 0 {
		lines := make([]string, 0, len(locks))
		for _, l := range locks {
			lines = append(lines, CleanLock(l))
		}
		out = append(out, Section{
			Title: TitleTransactions,
			Slots: []string{status.SlotTransactionLocks},
			Lines: lines,
		})
	}

	if fk := cat.List(status.SlotFKErrors); len(fk) > 0 {
		out = append(out, Section{
			Title: TitleFKErrors,
			Slots: []string{status.SlotFKErrors},
			Lines: []string{strings.Join(fk, " ")},
		})
	}

	return out
}

var lockCleaner = strings.NewReplacer(`\'`, `'`, "LOCKS", "LOCKS\n\n")

// CleanLock unescapes quotes in a lock-wait fragment and breaks the line
// after every LOCKS token.
func CleanLock(fragment string) string {
	return lockCleaner.Replace(fragment)
}

// Unflushed returns (log_sequence - log_flush) / 1024 in kilobytes.
// ok is false when either value is absent or the two are equal; err is set
// only when a value is present but not an integer.
func Unflushed(cat *status.Catalog) (kb float64, ok bool, err error) {
	seqText, seqOK := cat.Value(status.SlotLogSequence)
	flushText, flushOK := cat.Value(status.SlotLogFlush)
	if !seqOK || !flushOK || seqText == flushText {
		return 0, false, nil
	}

	seq, err := strconv.ParseInt(seqText, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("parse %s: %w", status.SlotLogSequence, err)
	}
	flush, err := strconv.ParseInt(flushText, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("parse %s: %w", status.SlotLogFlush, err)
	}
	if seq == flush {
		return 0, false, nil
	}
	return float64(seq-flush) / 1024, true, nil
}

// FormatKB formats kilobytes to four decimal places.
func FormatKB(kb float64) string {
	return strconv.FormatFloat(kb, 'f', 4, 64)
}
