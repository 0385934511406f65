package cfmt_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/cfmt"
)

func directive(text string, spec cfmt.Specifier) cfmt.Element {
	return cfmt.Element{Kind: cfmt.Directive, Text: text, Spec: spec}
}

func verbatim(text string) cfmt.Element {
	return cfmt.Element{Kind: cfmt.Verbatim, Text: text}
}

func TestParse(t *testing.T) {
	t.Parallel()

	six := cfmt.Literal(6)
	tests := map[string]struct {
		in   string
		want cfmt.Template
	}{
		"empty": {in: "", want: nil},
		"verbatim": {
			in:   "just text",
			want: cfmt.Template{verbatim("just text")},
		},
		"single": {
			in: "%d",
			want: cfmt.Template{
				directive("%d", cfmt.Specifier{Precision: six, Conversion: cfmt.DecInt}),
			},
		},
		"surrounded": {
			in: "a%db",
			want: cfmt.Template{
				verbatim("a"),
				directive("%d", cfmt.Specifier{Precision: six, Conversion: cfmt.DecInt}),
				verbatim("b"),
			},
		},
		"adjacent": {
			in: "%s%c",
			want: cfmt.Template{
				directive("%s", cfmt.Specifier{Precision: cfmt.Literal(math.MaxInt32), Conversion: cfmt.String}),
				directive("%c", cfmt.Specifier{Precision: six, Conversion: cfmt.Char}),
			},
		},
		"all flags": {
			in: "%#0- +12.3f",
			want: cfmt.Template{
				directive("%#0- +12.3f", cfmt.Specifier{
					AltForm: true, ZeroPad: true, LeftAdjust: true, SpaceSign: true, ForceSign: true,
					Width: cfmt.Literal(12), Precision: cfmt.Literal(3), HasPrecision: true,
					Conversion: cfmt.FixedLower,
				}),
			},
		},
		"repeated flags": {
			in: "%00012d",
			want: cfmt.Template{
				directive("%00012d", cfmt.Specifier{ZeroPad: true, Width: cfmt.Literal(12), Precision: six, Conversion: cfmt.DecInt}),
			},
		},
		"stars": {
			in: "%*.*e",
			want: cfmt.Template{
				directive("%*.*e", cfmt.Specifier{
					Width: cfmt.FromArgument, Precision: cfmt.FromArgument, HasPrecision: true,
					Conversion: cfmt.SciLower,
				}),
			},
		},
		"bare dot": {
			in: "%.s",
			want: cfmt.Template{
				directive("%.s", cfmt.Specifier{Precision: cfmt.Literal(0), HasPrecision: true, Conversion: cfmt.String}),
			},
		},
		"length modifiers": {
			in: "%hhd%hd%lld%ld%qd%Lf%jd%zd%Zd%td",
			want: cfmt.Template{
				directive("%hhd", cfmt.Specifier{Precision: six, Conversion: cfmt.DecInt}),
				directive("%hd", cfmt.Specifier{Precision: six, Conversion: cfmt.DecInt}),
				directive("%lld", cfmt.Specifier{Precision: six, Conversion: cfmt.DecInt}),
				directive("%ld", cfmt.Specifier{Precision: six, Conversion: cfmt.DecInt}),
				directive("%qd", cfmt.Specifier{Precision: six, Conversion: cfmt.DecInt}),
				directive("%Lf", cfmt.Specifier{Precision: six, Conversion: cfmt.FixedLower}),
				directive("%jd", cfmt.Specifier{Precision: six, Conversion: cfmt.DecInt}),
				directive("%zd", cfmt.Specifier{Precision: six, Conversion: cfmt.DecInt}),
				directive("%Zd", cfmt.Specifier{Precision: six, Conversion: cfmt.DecInt}),
				directive("%td", cfmt.Specifier{Precision: six, Conversion: cfmt.DecInt}),
			},
		},
		"pointer": {
			in: "%p",
			want: cfmt.Template{
				directive("%p", cfmt.Specifier{AltForm: true, Precision: six, Conversion: cfmt.HexLower}),
			},
		},
		"aliases": {
			in: "%i%u%C%S",
			want: cfmt.Template{
				directive("%i", cfmt.Specifier{Precision: six, Conversion: cfmt.DecInt}),
				directive("%u", cfmt.Specifier{Precision: six, Conversion: cfmt.DecInt}),
				directive("%C", cfmt.Specifier{Precision: six, Conversion: cfmt.Char}),
				directive("%S", cfmt.Specifier{Precision: cfmt.Literal(math.MaxInt32), Conversion: cfmt.String}),
			},
		},
		"percent with width": {
			in: "100%5%",
			want: cfmt.Template{
				verbatim("100"),
				directive("%5%", cfmt.Specifier{Width: cfmt.Literal(5), Precision: six, Conversion: cfmt.Percent}),
			},
		},
		"huge width clamps": {
			in: "%99999999999d",
			want: cfmt.Template{
				directive("%99999999999d", cfmt.Specifier{Width: cfmt.Literal(math.MaxInt32), Precision: six, Conversion: cfmt.DecInt}),
			},
		},
	}

	for name, tc := range tests {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := cfmt.Parse(tc.in)
			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tc.in, diff)
			}
		})
	}
}

func TestParseConcatenatesToInput(t *testing.T) {
	t.Parallel()
	for _, in := range []string{"", "x", "%d", "a %-5s b %%c %#x\n", "%*.*f%%"} {
		tmpl, err := cfmt.Parse(in)
		require.NoError(t, err)
		var joined string
		for _, e := range tmpl {
			joined += e.Text
		}
		assert.Equal(t, in, joined)
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		in     string
		offset string
	}{
		"dangling percent":   {in: "abc%", offset: "offset 3"},
		"unknown conversion": {in: "%d and %y", offset: "offset 7"},
		"only flags":         {in: "%-08", offset: "offset 0"},
		"only modifier":      {in: "x%ll", offset: "offset 1"},
		"two modifiers":      {in: "%hld", offset: "offset 0"},
		"size_t only once":   {in: "%zzd", offset: "offset 0"},
		"go verb":            {in: "%v", offset: "offset 0"},
		"star after dot":     {in: "%.5*d", offset: "offset 0"},
	}
	for name, tc := range tests {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := cfmt.Parse(tc.in)
			require.ErrorIs(t, err, cfmt.ErrParse)
			assert.Contains(t, err.Error(), tc.offset)
		})
	}
}

func TestConversions(t *testing.T) {
	t.Parallel()
	tmpl := cfmt.MustParse("a %d b %s c %%")
	specs := tmpl.Conversions()
	require.Len(t, specs, 3)
	assert.Equal(t, cfmt.DecInt, specs[0].Conversion)
	assert.Equal(t, cfmt.String, specs[1].Conversion)
	assert.Equal(t, cfmt.Percent, specs[2].Conversion)
}

func TestConversionString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "d", cfmt.DecInt.String())
	assert.Equal(t, "X", cfmt.HexUpper.String())
	assert.Equal(t, "%", cfmt.Percent.String())
	assert.Equal(t, "Conversion(99)", cfmt.Conversion(99).String())
	assert.True(t, cfmt.HexFloatUpper.Upper())
	assert.False(t, cfmt.QuotedString.Upper())
}
