package vrpio

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/katalvlaran/cvrp-lns/cvrpsol"
)

// Result is the single JSON record the CLI prints to stdout on success:
// instance name, wall-clock run time, final cost, and the route token
// stream. encoding/json is the one sanctioned ambient stdlib dependency
// here — this record has no other consumer or schema evolution pressure
// that would justify a dedicated serialization library.
type Result struct {
	Instance string  `json:"Instance"`
	Time     float64 `json:"Time"`
	Result   float64 `json:"Result"`
	Solution string  `json:"Solution"`
}

// NewResult builds a Result from a finished solution, the instance's base
// name, and the elapsed wall-clock duration of the run.
func NewResult(instanceName string, sol *cvrpsol.Solution, elapsed time.Duration) Result {
	return Result{
		Instance: instanceName,
		Time:     elapsed.Seconds(),
		Result:   sol.Cost,
		Solution: tokensToString(sol.Tokens()),
	}
}

// Encode marshals r as a single compact JSON line.
func (r Result) Encode() ([]byte, error) {
	return json.Marshal(r)
}

func tokensToString(tokens []int) string {
	parts := make([]string, len(tokens))
	for i, t := range tokens {
		parts[i] = strconv.Itoa(t)
	}
	return strings.Join(parts, " ")
}
