package transcribe

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/subedit/subedit/internal/media"
)

// TranscribeChunks transcribes audio chunks in parallel, shifts each
// chunk's word timestamps by its offset in the source, and merges the
// results in source order. Concurrency defaults to 3 when non-positive.
func TranscribeChunks(ctx context.Context, t Transcriber, chunks []media.ChunkInfo, concurrency int) (*Result, error) {
	if len(chunks) == 0 {
		return &Result{}, nil
	}
	if concurrency <= 0 {
		concurrency = 3
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	results := make([]*Result, len(chunks))
	for i, chunk := range chunks {
		i, chunk := i, chunk
		g.Go(func() error {
			res, err := t.Transcribe(ctx, chunk.Path)
			if err != nil {
				return fmt.Errorf("chunk %d failed: %w", chunk.Index, err)
			}
			for j := range res.Words {
				res.Words[j].Start += chunk.Start
				res.Words[j].End += chunk.Start
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := &Result{Duration: chunks[len(chunks)-1].End}
	var texts []string
	for _, res := range results {
		merged.Words = append(merged.Words, res.Words...)
		if res.Text != "" {
			texts = append(texts, res.Text)
		}
		if merged.Language == "" {
			merged.Language = res.Language
		}
	}
	merged.Text = strings.Join(texts, " ")

	return merged, nil
}
