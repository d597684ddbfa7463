// Package codestats computes per-buffer line statistics using SCC, for
// display next to the language decision.
package codestats

import (
	"sync"

	"github.com/boyter/scc/v3/processor"
)

var initOnce sync.Once

// Stats holds line statistics for one document buffer.
type Stats struct {
	Lines      int64 `json:"lines"`
	Code       int64 `json:"code"`
	Comments   int64 `json:"comments"`
	Blanks     int64 `json:"blanks"`
	Complexity int64 `json:"complexity"`
}

// Analyze counts lines, comments and complexity for a buffer. The filename is
// only used to pick SCC's comment/code grammar; unknown filenames still get a
// total line count.
func Analyze(filename string, content string) Stats {
	initOnce.Do(func() {
		processor.ProcessConstants()
	})

	sccLangs, _ := processor.DetectLanguage(filename)
	sccLang := ""
	if len(sccLangs) > 0 {
		sccLang = sccLangs[0]
	}

	filejob := &processor.FileJob{
		Filename: filename,
		Language: sccLang,
		Content:  []byte(content),
		Bytes:    int64(len(content)),
	}
	processor.CountStats(filejob)

	return Stats{
		Lines:      filejob.Lines,
		Code:       filejob.Code,
		Comments:   filejob.Comment,
		Blanks:     filejob.Blank,
		Complexity: filejob.Complexity,
	}
}
