package processor

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"voynich/internal/dictionary"
	"voynich/internal/types"
)

// "xqx lov" shifted by 3 reads "ata ory".
const shiftedSample = "xqx lov"

func TestScanReturnsAllShiftsInOrder(t *testing.T) {
	s := NewShiftScanner(dictionary.Default(), false, nil)

	results, err := s.Scan(context.Background(), "qokeedy dal chey, ory!")
	require.NoError(t, err)
	require.Len(t, results, 25)

	for i, r := range results {
		assert.Equal(t, i+1, r.Shift)
		assert.GreaterOrEqual(t, r.Matches, 0)
	}
}

func TestScanCountsDictionaryMatches(t *testing.T) {
	s := NewShiftScanner(dictionary.Default(), false, nil)

	results, err := s.Scan(context.Background(), "XQX Lov xqx")
	require.NoError(t, err)

	for _, r := range results {
		want := 0
		if r.Shift == 3 {
			want = 3
		}
		assert.Equal(t, want, r.Matches, "shift %d", r.Shift)
	}
}

func TestScanExcludesIdentityShift(t *testing.T) {
	s := NewShiftScanner(dictionary.Default(), false, nil)

	results, err := s.Scan(context.Background(), "ata ory")
	require.NoError(t, err)

	for _, r := range results {
		assert.Zero(t, r.Matches, "shift %d", r.Shift)
	}
}

func TestScanParallelMatchesSequential(t *testing.T) {
	dict := dictionary.Default()
	text := shiftedSample + " qmk wkz"

	sequential, err := NewShiftScanner(dict, false, nil).Scan(context.Background(), text)
	require.NoError(t, err)
	parallel, err := NewShiftScanner(dict, true, nil).Scan(context.Background(), text)
	require.NoError(t, err)

	if diff := cmp.Diff(sequential, parallel); diff != "" {
		t.Errorf("parallel scan mismatch (-sequential +parallel):\n%s", diff)
	}
}

func TestScanCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, parallel := range []bool{false, true} {
		_, err := NewShiftScanner(dictionary.Default(), parallel, nil).Scan(ctx, shiftedSample)
		assert.ErrorIs(t, err, context.Canceled, "parallel=%v", parallel)
	}
}

func TestScanEmptyText(t *testing.T) {
	results, err := NewShiftScanner(dictionary.Default(), false, nil).Scan(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, results, 25)
}

func TestBest(t *testing.T) {
	tests := []struct {
		name    string
		results []types.ShiftResult
		want    types.ShiftResult
	}{
		{"Empty", nil, types.ShiftResult{}},
		{"All zero picks first", []types.ShiftResult{{Shift: 1, Matches: 0}, {Shift: 2, Matches: 0}}, types.ShiftResult{Shift: 1}},
		{"Highest wins", []types.ShiftResult{{Shift: 1, Matches: 1}, {Shift: 2, Matches: 4}, {Shift: 3, Matches: 2}}, types.ShiftResult{Shift: 2, Matches: 4}},
		{"Tie keeps lowest shift", []types.ShiftResult{{Shift: 1, Matches: 0}, {Shift: 2, Matches: 3}, {Shift: 3, Matches: 3}}, types.ShiftResult{Shift: 2, Matches: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Best(tt.results))
		})
	}
}

func TestShiftResultString(t *testing.T) {
	assert.Equal(t, "Shift 3: 2 matches found.", types.ShiftResult{Shift: 3, Matches: 2}.String())
}

func TestScanWarnsAboutMixedCaseWords(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	dict := dictionary.Table{"ata": {"father"}, "Ory": {"story"}}

	results, err := NewShiftScanner(dict, false, zap.New(core)).Scan(context.Background(), "xqx lov")
	require.NoError(t, err)
	assert.Equal(t, 1, results[2].Matches)

	warnings := logs.FilterMessage("Dictionary words with upper-case letters never match shifted tokens").All()
	require.Len(t, warnings, 1)
	assert.Equal(t, []interface{}{"Ory"}, warnings[0].ContextMap()["words"])
}

func TestScanDoesNotWarnForLowerCaseDictionary(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)

	_, err := NewShiftScanner(dictionary.Default(), false, zap.New(core)).Scan(context.Background(), "xqx")
	require.NoError(t, err)
	assert.Zero(t, logs.Len())
}
