package geom_test

import (
	"fmt"
	"math"

	"deedles.dev/xangle/geom"
)

func ExampleAngle_Add() {
	a := geom.Deg(90).Add(geom.Deg(300))
	fmt.Println(a)
	fmt.Println(a.Text("rad"))
	fmt.Println(a.Equal(geom.Deg(30)))
	// Output:
	// 390.0°
	// 6.81 rad
	// true
}

func ExampleAngle_Equal() {
	fmt.Println(geom.Deg(180).Equal(geom.Rad(math.Pi)))
	// Output: true
}

func ExampleUnion() {
	a := geom.RangeOf(0, 10, geom.Degrees, true, true)
	b := geom.RangeOf(5, 20, geom.Degrees, true, false)
	c := geom.RangeOf(100, 110, geom.Degrees, true, true)

	fmt.Println(geom.Union(&a, &b))
	fmt.Println(geom.Union(&c, &a))
	// Output:
	// [[0.0°, 20.0°)]
	// [[0.0°, 10.0°] [100.0°, 110.0°]]
}

func ExampleRange_ContainsRange() {
	r := geom.RangeOf(math.Pi/2, 6*math.Pi, geom.Radians, true, true)
	o := geom.RangeOf(2, 4, geom.Radians, true, true)
	fmt.Println(r.Length() > geom.Tau)
	fmt.Println(r.ContainsRange(&o))
	// Output:
	// true
	// true
}
