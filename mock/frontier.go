package mock

import "github.com/fwojciec/mailscout"

var _ mailscout.URLFrontier = (*URLFrontier)(nil)

// URLFrontier is a mock implementation of mailscout.URLFrontier.
type URLFrontier struct {
	PushHighFn func(url string)
	PushLowFn  func(url string)
	PopFn      func() (string, bool)
	LenFn      func() int
}

func (f *URLFrontier) PushHigh(url string) {
	f.PushHighFn(url)
}

func (f *URLFrontier) PushLow(url string) {
	f.PushLowFn(url)
}

func (f *URLFrontier) Pop() (string, bool) {
	return f.PopFn()
}

func (f *URLFrontier) Len() int {
	return f.LenFn()
}
