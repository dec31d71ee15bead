package main

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/theapemachine/qsim"
)

func TestRenderTally(t *testing.T) {
	Convey("Given a tally", t, func() {
		tally := qsim.Tally{"00": 6, "01": 0, "10": 0, "11": 4}

		Convey("Every basis string should be listed with its count", func() {
			out := renderTally(tally, 10)
			So(out, ShouldContainSubstring, "counts (10 shots)")
			So(out, ShouldContainSubstring, "00")
			So(out, ShouldContainSubstring, "60.00%")
			So(out, ShouldContainSubstring, "40.00%")
			So(out, ShouldContainSubstring, "0.00%")
		})

		Convey("Zero shots should not divide by zero", func() {
			out := renderTally(qsim.Tally{"0": 0, "1": 0}, 0)
			So(out, ShouldContainSubstring, "counts (0 shots)")
		})

		Convey("The chart should be written as a PNG", func() {
			path := filepath.Join(t.TempDir(), "counts.png")
			So(plotTally(tally, path), ShouldBeNil)

			info, err := os.Stat(path)
			So(err, ShouldBeNil)
			So(info.Size(), ShouldBeGreaterThan, 0)
		})
	})
}
