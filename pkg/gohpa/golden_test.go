package gohpa

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/d21d3q/gohpa/internal/testutil"
)

func TestGoldenPayloads(t *testing.T) {
	fixtures := []string{
		"sendsaf/multi_message",
		"balance/two_frames",
	}
	for _, name := range fixtures {
		t.Run(name, func(t *testing.T) {
			raw := testutil.LoadPayload(t, name+".txt")
			resp := MapResponse(raw)

			var expected map[string]any
			testutil.LoadJSON(t, name+".json", &expected)
			if diff := cmp.Diff(expected, roundTrip(t, resp.Map())); diff != "" {
				t.Fatalf("response mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGoldenSendSAFAccessors(t *testing.T) {
	resp := MapResponse(testutil.LoadPayload(t, "sendsaf/multi_message.txt"))
	sets := resp.FieldSets("sendSAF")
	require.Len(t, sets, 4)

	count, err := sets[0].Int("numberTransactions")
	require.NoError(t, err)
	require.Equal(t, int64(2), count)

	records, ok := resp.Data["sendSAF"].Group("approvedSafRecords")
	require.True(t, ok)
	require.Len(t, records, 2)
	hosts, err := NewFieldSet(records[1]).Strings("hostResponse")
	require.NoError(t, err)
	require.Equal(t, []string{"APPROVAL", "PARTIAL"}, hosts)
}

// roundTrip converts typed values such as []string into their JSON-decoded
// equivalents so they compare against fixtures.
func roundTrip(t *testing.T, v map[string]any) map[string]any {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out))
	return out
}
