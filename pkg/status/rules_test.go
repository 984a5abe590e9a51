package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRule_Apply(t *testing.T) {
	tests := []struct {
		slot string
		text string
		want []string
	}{
		{SlotTimestamp, "===== 2024-03-01 10:15:03 0x7f1c INNODB MONITOR OUTPUT =====", []string{"2024-03-01 10:15:03"}},
		{SlotTimestamp, "===== 2017-03-22 11:20:25 INNODB MONITOR OUTPUT =====", []string{"2017-03-22 11:20:25"}},
		{SlotTimePeriod, "Per second averages calculated from the last 37 seconds", []string{"37"}},
		{SlotTotalMemory, "Total large memory allocated 99 Total memory allocated 137428992", []string{"137428992"}},
		{SlotQueriesInside, "2 queries inside InnoDB, 7 queries in queue", []string{"2"}},
		{SlotQueriesQueue, "2 queries inside InnoDB, 7 queries in queue", []string{"7"}},
		{SlotRows, "Number of rows inserted 10, updated 5, deleted 2, read 100", []string{"10", "5", "2", "100"}},
		{SlotBufferPoolSize, "Buffer pool size   8191 Free buffers 6872", []string{"8191"}},
		{SlotLogSequence, "Log sequence number          204800", []string{"204800"}},
		{SlotLogFlush, "Log flushed up to            200704", []string{"200704"}},
		{SlotSemaphores, "--Thread 1 has waited at a.cc line 1 for 2 seconds the semaphore:", []string{"--Thread 1 has waited at a.cc line 1 for 2 seconds"}},
		{SlotFKErrors, "LATEST FOREIGN KEY ERROR ---- fails, there is a record: more", []string{"LATEST FOREIGN KEY ERROR ---- fails, there is a record:"}},
		{SlotTransactionLocks, "LOCK WAIT 2 lock struct(s) ---- RECORD LOCKS space id 58", []string{"LOCK WAIT 2 lock struct(s) ---- RECORD LOCKS"}},
	}

	for _, tt := range tests {
		t.Run(tt.slot, func(t *testing.T) {
			rule, ok := Lookup(tt.slot)
			require.True(t, ok)

			got, matched := rule.Apply(tt.text)
			require.True(t, matched)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRule_Apply_NoMatch(t *testing.T) {
	for _, rule := range Rules() {
		t.Run(rule.Name, func(t *testing.T) {
			got, matched := rule.Apply("nothing to see here")
			assert.False(t, matched)
			assert.Nil(t, got)
		})
	}
}

func TestRule_Apply_SingleKeepsLastMatch(t *testing.T) {
	rule, _ := Lookup(SlotLogSequence)
	got, _ := rule.Apply("Log sequence number 100 ... Log sequence number 200")
	assert.Equal(t, []string{"200"}, got)
}

func TestRule_Apply_TupleKeepsLastRecord(t *testing.T) {
	rule, _ := Lookup(SlotRows)
	got, _ := rule.Apply("rows inserted 1, updated 2, deleted 3, read 4 / rows inserted 5, updated 6, deleted 7, read 8")
	assert.Equal(t, []string{"5", "6", "7", "8"}, got)
}

func TestRule_Apply_ListKeepsOrder(t *testing.T) {
	rule, _ := Lookup(SlotSemaphores)
	got, _ := rule.Apply("--Thread 1 waited 4 seconds x --Thread 2 waited 1 seconds y --Thread 3 waited 9 seconds")
	assert.Equal(t, []string{
		"--Thread 1 waited 4 seconds",
		"--Thread 2 waited 1 seconds",
		"--Thread 3 waited 9 seconds",
	}, got)
}

func TestRule_TimestampIgnoresEndMarker(t *testing.T) {
	rule, _ := Lookup(SlotTimestamp)
	text := "2024-01-01 00:00:00 0x1 INNODB MONITOR OUTPUT deadlock at 2024-01-01 00:00:09 0x2 Transaction: END OF INNODB MONITOR OUTPUT"
	got, _ := rule.Apply(text)
	assert.Equal(t, []string{"2024-01-01 00:00:00"}, got)
}

func TestRules_ReturnsCopy(t *testing.T) {
	r := Rules()
	r[0].Name = "mutated"
	assert.Equal(t, SlotTimestamp, Rules()[0].Name)
}

func TestCardinality_String(t *testing.T) {
	assert.Equal(t, "single", Single.String())
	assert.Equal(t, "list", List.String())
	assert.Equal(t, "tuple", Tuple.String())
}
