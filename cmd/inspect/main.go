// Command inspect prints the determinant, inverse and decomposition of a 4x4
// matrix given as 16 row-major numbers.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/language"

	"vecmath/numerics"
)

func main() {
	f32 := flag.Bool("f32", false, "Evaluate in float32 instead of float64")
	lang := flag.String("lang", "", "Locale for number formatting (default: from environment)")
	verb := flag.String("verb", "", "fmt verb for components, e.g. %.3f")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: inspect [flags] m11 m12 ... m44\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	// Accept "1,0,0,0 0,1,0,0 ..." as well as 16 separate arguments.
	fields := strings.FieldsFunc(strings.Join(flag.Args(), " "), func(r rune) bool {
		return r == ' ' || r == ',' || r == ';' || r == '\t'
	})
	if len(fields) != 16 {
		flag.Usage()
		os.Exit(2)
	}

	var vals [16]float64
	for i, s := range fields {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: element %d: %v\n", i+1, err)
			os.Exit(1)
		}
		vals[i] = v
	}

	tag := language.English
	if *lang != "" {
		t, err := language.Parse(*lang)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: locale %q: %v\n", *lang, err)
			os.Exit(1)
		}
		tag = t
	}

	if *f32 {
		report(fromRows(toFloat32(vals[:])), tag, *verb, *lang != "")
		return
	}
	report(fromRows(vals[:]), tag, *verb, *lang != "")
}

func report[T numerics.Float](m numerics.Mat4[T], tag language.Tag, verb string, explicit bool) {
	text := func(s interface {
		Text(language.Tag, string) string
		String() string
	}) string {
		if explicit || verb != "" {
			return s.Text(tag, verb)
		}
		return s.String()
	}

	fmt.Printf("Matrix:      %s\n", text(m))
	fmt.Printf("Determinant: %v\n", m.Determinant())
	fmt.Printf("Identity:    %v\n", m.IsIdentity())

	if inv, ok := m.Invert(); ok {
		fmt.Printf("Inverse:     %s\n", text(inv))
	} else {
		fmt.Println("Inverse:     singular")
	}

	scale, rot, trans, ok := m.Decompose()
	if !ok {
		fmt.Println("Decompose:   failed (shear or projective part)")
		return
	}
	fmt.Printf("Scale:       %s\n", text(scale))
	fmt.Printf("Rotation:    %s\n", text(rot))
	fmt.Printf("Translation: %s\n", text(trans))
}

func fromRows[T numerics.Float](vs []T) numerics.Mat4[T] {
	return numerics.Mat4FromRows(
		numerics.Vec4FromSlice(vs[0:4]),
		numerics.Vec4FromSlice(vs[4:8]),
		numerics.Vec4FromSlice(vs[8:12]),
		numerics.Vec4FromSlice(vs[12:16]),
	)
}

func toFloat32(vs []float64) []float32 {
	out := make([]float32, len(vs))
	for i, v := range vs {
		out[i] = float32(v)
	}
	return out
}
