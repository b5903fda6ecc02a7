package medianheap

import "time"

// Lesser is the ordering capability every stored value must have: a
// strict less-than against another value of the same type, forming a
// total order.
type Lesser[T any] interface {
	Less(T) bool
}

// Value is what a MedianHeap stores. Beyond the total order it needs
// pairwise averaging, used to compute the median of an even number of
// elements. Average must be commutative and return the same type.
// Integer types floor the result.
type Value[T any] interface {
	Lesser[T]
	Average(T) T
}

type Int int
type Int64 int64
type Uint64 uint64
type Float32 float32
type Float64 float64
type Duration time.Duration

func (v Int) Less(other Int) bool         { return v < other }
func (v Int64) Less(other Int64) bool     { return v < other }
func (v Uint64) Less(other Uint64) bool   { return v < other }
func (v Float32) Less(other Float32) bool { return v < other }
func (v Float64) Less(other Float64) bool { return v < other }

func (v Duration) Less(other Duration) bool { return v < other }

func (v Int) Average(other Int) Int             { return (v + other) / 2 }
func (v Int64) Average(other Int64) Int64       { return (v + other) / 2 }
func (v Uint64) Average(other Uint64) Uint64    { return (v + other) / 2 }
func (v Float32) Average(other Float32) Float32 { return (v + other) / 2 }
func (v Float64) Average(other Float64) Float64 { return (v + other) / 2 }

func (v Duration) Average(other Duration) Duration { return (v + other) / 2 }
