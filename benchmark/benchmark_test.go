package benchmark

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/baditaflorin/go_corpus_bench/internal/adapters/logger"
	"github.com/baditaflorin/go_corpus_bench/internal/adapters/normalizer"
	"github.com/baditaflorin/go_corpus_bench/internal/core/corpus"
	"github.com/baditaflorin/go_corpus_bench/internal/core/timing"
	"github.com/baditaflorin/go_corpus_bench/internal/core/wordcount"
)

// generateText creates a text of the specified size by repeating a sample text
func generateText(size int) []byte {
	if size <= 0 {
		return nil
	}

	sample := "Doubt thou the stars are fire; Doubt that the sun doth move; " +
		"Doubt truth to be a liar; But never doubt I love. " +
		"In time we hate that which we often fear. "
	var sb strings.Builder
	sb.Grow(size + len(sample))

	for sb.Len() < size {
		sb.WriteString(sample)
	}

	return []byte(sb.String()[:size])
}

var sizes = []int{64 * 1024, 1024 * 1024, 8 * 1024 * 1024}

func BenchmarkNormalize(b *testing.B) {
	n := normalizer.NewDefaultNormalizer()
	for _, size := range sizes {
		src := generateText(size)
		dst := make([]byte, 0, size)
		b.Run(fmt.Sprintf("Size_%d", size), func(b *testing.B) {
			b.SetBytes(int64(size))
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				dst = n.Normalize(dst, src)
			}
		})
	}
}

func BenchmarkWriteRepeated(b *testing.B) {
	ctx := context.Background()
	content := generateText(1024 * 1024)
	for _, repeat := range []int{1, 10, 100} {
		b.Run(fmt.Sprintf("Repeat_%d", repeat), func(b *testing.B) {
			b.SetBytes(int64(len(content) * repeat))
			for i := 0; i < b.N; i++ {
				if _, err := corpus.WriteRepeated(ctx, io.Discard, content, repeat); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkCount(b *testing.B) {
	ctx := context.Background()
	counter, err := wordcount.NewCounter(wordcount.DefaultConfig(), logger.NewDiscardLogger())
	if err != nil {
		b.Fatal(err)
	}

	data := bytes.ToLower(generateText(8 * 1024 * 1024))
	for _, threads := range []int{1, 2, 4, 8, 16} {
		b.Run(fmt.Sprintf("Threads_%d", threads), func(b *testing.B) {
			b.SetBytes(int64(len(data)))
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := counter.Count(ctx, data, threads); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkParseTiming(b *testing.B) {
	var sb strings.Builder
	for i := 1; i <= 1000; i++ {
		sb.WriteString(fmt.Sprintf("%d %d.%03d %d.%03d\n", i%64+1, 800/(i%64+1), i%1000, 1300/(i%64+1), i%997))
	}
	table := sb.String()

	b.SetBytes(int64(len(table)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := timing.Parse(strings.NewReader(table)); err != nil {
			b.Fatal(err)
		}
	}
}
