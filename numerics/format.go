package numerics

import (
	"os"
	"strconv"
	"strings"
	"sync"
	"unsafe"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ambientLocale is read once from the POSIX locale variables.
var ambientLocale = sync.OnceValue(func() language.Tag {
	for _, key := range []string{"LC_ALL", "LC_NUMERIC", "LANG"} {
		v := os.Getenv(key)
		if v == "" {
			continue
		}
		if v == "C" || v == "POSIX" {
			break
		}
		// de_DE.UTF-8 -> de-DE
		v, _, _ = strings.Cut(v, ".")
		if tag, err := language.Parse(strings.ReplaceAll(v, "_", "-")); err == nil {
			return tag
		}
		break
	}
	return language.English
})

type textFormatter struct {
	p    *message.Printer
	verb string // empty means shortest round-trip form
	sep  string
	dec  string
	bits int // precision of the source type
}

func newTextFormatter[T Float](tag language.Tag, verb string) textFormatter {
	p := message.NewPrinter(tag)
	var zero T
	return textFormatter{
		p:    p,
		verb: verb,
		sep:  groupSeparator(p),
		dec:  decimalSeparator(p),
		bits: int(unsafe.Sizeof(zero)) * 8,
	}
}

// groupSeparator extracts the digit-group separator the locale uses.
func groupSeparator(p *message.Printer) string {
	sep := strings.Trim(p.Sprintf("%d", 1000), "0123456789")
	if sep == "" {
		return ","
	}
	return sep
}

// decimalSeparator extracts the radix mark the locale uses.
func decimalSeparator(p *message.Printer) string {
	dec := strings.Trim(p.Sprintf("%.1f", 1.5), "0123456789")
	if dec == "" {
		return "."
	}
	return dec
}

// num formats x with the verb, or by default as the shortest string that
// reads back to the same value at the source precision, with the locale's
// radix mark and no digit grouping.
func (f textFormatter) num(x float64) string {
	if f.verb != "" {
		return f.p.Sprintf(f.verb, x)
	}
	s := strconv.FormatFloat(x, 'g', -1, f.bits)
	if f.dec != "." {
		s = strings.Replace(s, ".", f.dec, 1)
	}
	return s
}

func (f textFormatter) list(open, end string, xs ...float64) string {
	var b strings.Builder
	b.WriteString(open)
	for i, x := range xs {
		if i > 0 {
			b.WriteString(f.sep)
			b.WriteByte(' ')
		}
		b.WriteString(f.num(x))
	}
	b.WriteString(end)
	return b.String()
}

// named renders {N1:v1 N2:v2 ...}.
func (f textFormatter) named(names []string, xs ...float64) string {
	var b strings.Builder
	b.WriteByte('{')
	for i, x := range xs {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(names[i])
		b.WriteByte(':')
		b.WriteString(f.num(x))
	}
	b.WriteByte('}')
	return b.String()
}

// Text formats v as <X, Y> using the group separator of tag between
// components. Numbers use verb, or the shortest round-trip form when verb
// is empty.
func (v Vec2[T]) Text(tag language.Tag, verb string) string {
	return newTextFormatter[T](tag, verb).list("<", ">", float64(v.X), float64(v.Y))
}

func (v Vec2[T]) String() string { return v.Text(ambientLocale(), "") }

func (v Vec3[T]) Text(tag language.Tag, verb string) string {
	return newTextFormatter[T](tag, verb).list("<", ">", float64(v.X), float64(v.Y), float64(v.Z))
}

func (v Vec3[T]) String() string { return v.Text(ambientLocale(), "") }

func (v Vec4[T]) Text(tag language.Tag, verb string) string {
	return newTextFormatter[T](tag, verb).list("<", ">",
		float64(v.X), float64(v.Y), float64(v.Z), float64(v.W))
}

func (v Vec4[T]) String() string { return v.Text(ambientLocale(), "") }

func (q Quat[T]) Text(tag language.Tag, verb string) string {
	return newTextFormatter[T](tag, verb).named([]string{"X", "Y", "Z", "W"},
		float64(q.X), float64(q.Y), float64(q.Z), float64(q.W))
}

func (q Quat[T]) String() string { return q.Text(ambientLocale(), "") }

func (p Plane[T]) Text(tag language.Tag, verb string) string {
	f := newTextFormatter[T](tag, verb)
	return "{Normal:" + p.Normal.Text(tag, verb) + " D:" + f.num(float64(p.D)) + "}"
}

func (p Plane[T]) String() string { return p.Text(ambientLocale(), "") }

var mat3x2Rows = [3][]string{{"M11", "M12"}, {"M21", "M22"}, {"M31", "M32"}}

// Text formats m as { {M11:.. M12:..} {M21:.. M22:..} {M31:.. M32:..} }.
func (m Mat3x2[T]) Text(tag language.Tag, verb string) string {
	f := newTextFormatter[T](tag, verb)
	rows := [3][2]T{{m.M11, m.M12}, {m.M21, m.M22}, {m.M31, m.M32}}
	var b strings.Builder
	b.WriteString("{ ")
	for i, r := range rows {
		b.WriteString(f.named(mat3x2Rows[i], float64(r[0]), float64(r[1])))
		b.WriteByte(' ')
	}
	b.WriteByte('}')
	return b.String()
}

func (m Mat3x2[T]) String() string { return m.Text(ambientLocale(), "") }

var mat4Rows = [4][]string{
	{"M11", "M12", "M13", "M14"},
	{"M21", "M22", "M23", "M24"},
	{"M31", "M32", "M33", "M34"},
	{"M41", "M42", "M43", "M44"},
}

// Text formats m as { {M11:.. M12:.. M13:.. M14:..} ... {M41:.. M44:..} }.
func (m Mat4[T]) Text(tag language.Tag, verb string) string {
	f := newTextFormatter[T](tag, verb)
	var b strings.Builder
	b.WriteString("{ ")
	for i := range mat4Rows {
		r := m.Row(i)
		b.WriteString(f.named(mat4Rows[i], float64(r.X), float64(r.Y), float64(r.Z), float64(r.W)))
		b.WriteByte(' ')
	}
	b.WriteByte('}')
	return b.String()
}

func (m Mat4[T]) String() string { return m.Text(ambientLocale(), "") }
