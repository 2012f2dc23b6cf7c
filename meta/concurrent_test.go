package meta

import (
	"sync"
	"testing"
)

// TestConcurrentSearch runs every query from many goroutines against shared
// engines. Run with -race to check the search state pool.
func TestConcurrentSearch(t *testing.T) {
	patterns := []string{
		"hello",     // UseLiteral
		"a(b|c)*d",  // UseDFA with memchr prefilter
		"(a|b)*abb", // UseDFA with byte set prefilter
		".*x",       // UseDFA, no prefilter
	}
	inputs := []string{
		"hello world",
		"xxabcbcdxx",
		"babaabbabb",
		"no x here, or is there",
		"",
	}

	for _, pattern := range patterns {
		for _, cfg := range []Config{DefaultConfig(), func() Config {
			c := DefaultConfig()
			c.MaxDFAStates = 3 // force cache clears and fallbacks
			return c
		}()} {
			engine := mustCompile(t, pattern, cfg)

			// Expected results computed serially.
			type result struct {
				isMatch bool
				spans   []span
			}
			want := make([]result, len(inputs))
			for i, in := range inputs {
				want[i] = result{engine.IsMatch([]byte(in)), spans(engine.FindAll([]byte(in)))}
			}

			const goroutines = 32
			const iterations = 50
			var wg sync.WaitGroup
			errs := make(chan string, goroutines)
			for g := 0; g < goroutines; g++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					for j := 0; j < iterations; j++ {
						for i, in := range inputs {
							if engine.IsMatch([]byte(in)) != want[i].isMatch {
								errs <- pattern + ": IsMatch(" + in + ") changed"
								return
							}
							got := spans(engine.FindAll([]byte(in)))
							if len(got) != len(want[i].spans) {
								errs <- pattern + ": FindAll(" + in + ") changed"
								return
							}
						}
					}
				}()
			}
			wg.Wait()
			close(errs)
			for msg := range errs {
				t.Error(msg)
			}
		}
	}
}
