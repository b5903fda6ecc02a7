package main

import (
	"strconv"
	"sync"
)

type WG struct {
	sync.WaitGroup
}

func (wg *WG) Go(f func()) {
	wg.Add(1)
	go func() {
		defer wg.Done()
		f()
	}()
}

func formatMedian(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
