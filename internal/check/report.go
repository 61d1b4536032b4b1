// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package check

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"text/tabwriter"
)

// ULP is an error measured in units in the last place. Infinite values
// marshal to the JSON string "+Inf".
type ULP float64

func (u ULP) MarshalJSON() ([]byte, error) {
	if math.IsInf(float64(u), 0) || math.IsNaN(float64(u)) {
		return json.Marshal(u.String())
	}
	return json.Marshal(float64(u))
}

func (u ULP) String() string {
	return strconv.FormatFloat(float64(u), 'g', 4, 64)
}

// WriteText prints r as an aligned table.
func (r *Report) WriteText(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "cpu: %s\ndetected backend: %s\nlimit: %s ulp\n\n", r.CPU, r.Detected, r.Limit); err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "FUNCTION\tBACKEND\tSAMPLES\tMAX\tMEAN\tP99\tNANS\tSTATUS\tWORST INPUT")
	for _, res := range r.Results {
		status := "ok"
		if !res.Passed {
			status = "FAIL"
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\t%s\t%d\t%s\t%s\n",
			res.Function, res.Backend, res.Samples, res.MaxULP, res.MeanULP, res.P99ULP, res.NaNs, status, res.Worst)
	}
	return tw.Flush()
}

// WriteJSON prints r as indented JSON.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
