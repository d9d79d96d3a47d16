package ratestat

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCounter(t *testing.T) {
	Convey("Observe", t, func() {
		Convey("the first observation records a zero rate", func() {
			c := NewCounter()
			c.Observe(time.Now())
			So(c.Rate(), ShouldEqual, 0.0)
		})

		Convey("two observations a second apart report two rounds per second", func() {
			c := NewCounter()
			start := time.Now()
			c.Observe(start)
			c.Observe(start.Add(time.Second))
			So(c.Rate(), ShouldAlmostEqual, 2.0, 0.01)
		})

		Convey("is safe for concurrent observers", func() {
			c := NewCounter()
			start := time.Now()
			done := make(chan struct{})
			for i := 0; i < 50; i++ {
				go func(i int) {
					c.Observe(start.Add(time.Duration(i) * time.Millisecond))
					done <- struct{}{}
				}(i)
			}
			for i := 0; i < 50; i++ {
				<-done
			}
			So(c.Rate(), ShouldBeGreaterThanOrEqualTo, 0.0)
		})
	})
}
