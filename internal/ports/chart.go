package ports

import (
	"io"

	"github.com/baditaflorin/go_corpus_bench/internal/core/domain"
)

// ChartWriter renders a timing table as an image.
type ChartWriter interface {
	WriteChart(w io.Writer, table *domain.TimingTable) error
}
