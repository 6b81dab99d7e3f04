package corpus

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// codeList renders one item as its numeric codes.
func codeList(c Case) [][]int {
	out := make([][]int, len(c))
	for i, it := range c {
		codes := it.Codes()
		out[i] = make([]int, len(codes))
		for j, code := range codes {
			out[i][j] = int(code)
		}
	}

	return out
}

// Encode writes cases as canonical JSON: numeric codes, one case per line.
// Decode(Encode(x)) yields x for any list of valid cases.
func Encode(w io.Writer, cases []Case) error {
	bw := bufio.NewWriter(w)
	if len(cases) == 0 {
		bw.WriteString("[]\n")
		return bw.Flush()
	}

	bw.WriteString("[\n")
	for i, c := range cases {
		line, err := json.Marshal(codeList(c))
		if err != nil {
			return fmt.Errorf("corpus: case %d: %w", i, err)
		}
		bw.WriteString("  ")
		bw.Write(line)
		if i < len(cases)-1 {
			bw.WriteByte(',')
		}
		bw.WriteByte('\n')
	}
	bw.WriteString("]\n")

	return bw.Flush()
}

// Save writes cases to path, replacing any existing file.
func Save(path string, cases []Case) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("corpus: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("corpus: %w", cerr)
		}
	}()

	return Encode(f, cases)
}
