// SPDX-FileCopyrightText: 2022 The margaret Authors
//
// SPDX-License-Identifier: MIT

package seqobsv_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssbc/objpack/internal/seqobsv"
)

func ExampleObservable_Inc() {
	sobs := seqobsv.New(0)
	fmt.Println(sobs.Value())
	fmt.Println(sobs.Inc())
	fmt.Println(sobs.Inc())

	// Output:
	// 0
	// 1
	// 2
}

func TestWaitFor(t *testing.T) {
	r := require.New(t)

	sobs := seqobsv.New(3)
	select {
	case <-sobs.WaitFor(2):
	default:
		r.Fail("past values are reached already")
	}

	ch := sobs.WaitFor(5)
	sobs.Inc()
	select {
	case <-ch:
		r.Fail("closed too early")
	default:
	}

	sobs.Set(10)
	<-ch
	sobs.Set(7)
	r.Equal(uint64(10), sobs.Value(), "never goes back")
}

func TestWaitConcurrent(t *testing.T) {
	sobs := seqobsv.New(0)

	var wg sync.WaitGroup
	for i := 1; i <= 50; i++ {
		wg.Add(1)
		go func(want uint64) {
			defer wg.Done()
			<-sobs.WaitFor(want)
			assert.GreaterOrEqual(t, sobs.Value(), want)
		}(uint64(i))
	}

	go func() {
		for i := 0; i < 50; i++ {
			sobs.Inc()
		}
	}()
	wg.Wait()
}
